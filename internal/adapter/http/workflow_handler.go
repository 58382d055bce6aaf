package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"loanflow/internal/usecase/workflow"
)

type WorkflowHandler struct{ uc *workflow.Usecase }

func NewWorkflowHandler(uc *workflow.Usecase) *WorkflowHandler { return &WorkflowHandler{uc: uc} }

type reviewReq struct {
	Action string `json:"action" validate:"required,oneof=APPROVE REJECT"`
	Notes  string `json:"notes" validate:"max=500"`
}

// actions are matched case-insensitively
func (r *reviewReq) normalize() { r.Action = strings.ToUpper(strings.TrimSpace(r.Action)) }

type approvalReq struct {
	Approved *bool  `json:"approved" validate:"required"`
	Notes    string `json:"notes" validate:"max=500"`
}

type disbursementReq struct {
	BankAccount string `json:"bank_account" validate:"required"`
	Notes       string `json:"notes" validate:"max=500"`
}

// target resolves the loan id and acting user shared by every workflow route.
func target(c echo.Context) (loanID, actor uint64, err error) {
	if loanID, err = pathID(c); err != nil {
		return 0, 0, err
	}
	if actor, err = actorID(c); err != nil {
		return 0, 0, err
	}
	return loanID, actor, nil
}

func (h *WorkflowHandler) Review(c echo.Context) error {
	loanID, actor, err := target(c)
	if err != nil {
		return writeError(c, err)
	}
	var req reviewReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	l, err := h.uc.ActOnReview(c.Request().Context(), workflow.ReviewInput{
		LoanID:   loanID,
		ActorID:  actor,
		Decision: workflow.Decision(req.Action),
		Notes:    req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *WorkflowHandler) Approval(c echo.Context) error {
	loanID, actor, err := target(c)
	if err != nil {
		return writeError(c, err)
	}
	var req approvalReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	l, err := h.uc.ActOnApproval(c.Request().Context(), workflow.ApprovalInput{
		LoanID:   loanID,
		ActorID:  actor,
		Approved: *req.Approved,
		Notes:    req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *WorkflowHandler) Disburse(c echo.Context) error {
	loanID, actor, err := target(c)
	if err != nil {
		return writeError(c, err)
	}
	var req disbursementReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	l, err := h.uc.Disburse(c.Request().Context(), workflow.DisburseInput{
		LoanID:      loanID,
		ActorID:     actor,
		BankAccount: req.BankAccount,
		Notes:       req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}
