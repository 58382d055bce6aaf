package http

import "github.com/labstack/echo/v4"

type Handlers struct {
	Health      *Handler
	Loans       *LoanHandler
	Workflow    *WorkflowHandler
	Simulations *SimulationHandler
	Plafonds    *PlafondHandler
}

// RegisterRoutes mounts every route on e. Mutating routes are wrapped with
// idem when it is non-nil.
func RegisterRoutes(e *echo.Echo, h Handlers, idem echo.MiddlewareFunc) {
	var mw []echo.MiddlewareFunc
	if idem != nil {
		mw = append(mw, idem)
	}

	e.GET("/health", h.Health.Health)

	e.POST("/loans", h.Loans.Submit, mw...)
	e.GET("/loans", h.Loans.List)
	e.GET("/loans/:id", h.Loans.Get)
	e.GET("/customers/:id/eligible-plafonds", h.Loans.EligiblePlafonds)

	e.POST("/loans/:id/review", h.Workflow.Review, mw...)
	e.POST("/loans/:id/approval", h.Workflow.Approval, mw...)
	e.POST("/loans/:id/disbursement", h.Workflow.Disburse, mw...)

	e.POST("/simulations", h.Simulations.Simulate)

	e.GET("/plafonds", h.Plafonds.List)
	e.GET("/plafonds/active", h.Plafonds.ListActive)
	e.GET("/plafonds/eligible", h.Plafonds.Eligible)
	e.GET("/plafonds/:id", h.Plafonds.Get)
	e.POST("/plafonds", h.Plafonds.Create, mw...)
	e.PUT("/plafonds/:id", h.Plafonds.Update, mw...)
	e.PATCH("/plafonds/:id/toggle", h.Plafonds.Toggle, mw...)
	e.DELETE("/plafonds/:id", h.Plafonds.Delete, mw...)
	e.POST("/plafonds/:id/restore", h.Plafonds.Restore, mw...)
}
