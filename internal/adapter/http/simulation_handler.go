package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loanflow/internal/usecase/eligibility"
)

type SimulationHandler struct{ engine *eligibility.Engine }

func NewSimulationHandler(e *eligibility.Engine) *SimulationHandler {
	return &SimulationHandler{engine: e}
}

type simulateReq struct {
	Amount    decimal.Decimal `json:"amount" validate:"dgt=0,dec2"`
	Tenor     int             `json:"tenor" validate:"gt=0,lte=360"`
	PlafondID *uint64         `json:"plafond_id" validate:"omitempty,gt=0"`
}

func (h *SimulationHandler) Simulate(c echo.Context) error {
	var req simulateReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.engine.Simulate(c.Request().Context(), eligibility.SimulationInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
