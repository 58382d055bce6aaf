package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loanflow/internal/domain/apperr"
	domain "loanflow/internal/domain/loan"
	"loanflow/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type submitLoanReq struct {
	CustomerID   uint64          `json:"customer_id" validate:"required"`
	PlafondID    uint64          `json:"plafond_id" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"dgt=0,dec2"`
	TenureMonths int             `json:"tenure_months" validate:"gt=0,lte=360"`
	Purpose      string          `json:"purpose" validate:"max=500"`
}

func (h *LoanHandler) Submit(c echo.Context) error {
	var req submitLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	l, err := h.uc.Submit(c.Request().Context(), loan.SubmitInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LoanHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetWithHistory(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// List filters by customer_id or status. With both, the customer's loans are
// narrowed to the status.
func (h *LoanHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	rawCustomer, rawStatus := c.QueryParam("customer_id"), c.QueryParam("status")
	status := domain.Status(rawStatus)
	if rawStatus != "" && !status.Valid() {
		return writeError(c, apperr.Newf(apperr.KindValidation, "unknown status %q", rawStatus))
	}

	if rawCustomer == "" {
		if rawStatus == "" {
			return writeError(c, apperr.New(apperr.KindValidation, "customer_id or status is required"))
		}
		out, err := h.uc.ListByStatus(ctx, status)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}

	customerID, err := strconv.ParseUint(rawCustomer, 10, 64)
	if err != nil || customerID == 0 {
		return writeError(c, apperr.New(apperr.KindValidation, "customer_id must be a positive integer"))
	}
	out, err := h.uc.ListByCustomer(ctx, customerID)
	if err != nil {
		return writeError(c, err)
	}
	if rawStatus != "" {
		filtered := out[:0]
		for _, l := range out {
			if l.Status == status {
				filtered = append(filtered, l)
			}
		}
		out = filtered
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) EligiblePlafonds(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.EligiblePlafonds(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
