package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loanflow/internal/domain/apperr"
	"loanflow/internal/usecase/eligibility"
	"loanflow/internal/usecase/plafond"
)

type PlafondHandler struct {
	uc     *plafond.Usecase
	engine *eligibility.Engine
}

func NewPlafondHandler(uc *plafond.Usecase, e *eligibility.Engine) *PlafondHandler {
	return &PlafondHandler{uc: uc, engine: e}
}

type plafondReq struct {
	MinIncome    decimal.Decimal `json:"min_income" validate:"dgt=0,dec2"`
	MaxAmount    decimal.Decimal `json:"max_amount" validate:"dgt=0,dec2"`
	TenorMonth   int             `json:"tenor_month" validate:"gt=0,lte=360"`
	InterestRate decimal.Decimal `json:"interest_rate" validate:"dgte=0,dlte=100,dec2"`
	IsActive     *bool           `json:"is_active"`
}

func (h *PlafondHandler) List(c echo.Context) error {
	out, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlafondHandler) ListActive(c echo.Context) error {
	out, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlafondHandler) Eligible(c echo.Context) error {
	income, err := decimal.NewFromString(c.QueryParam("income"))
	if err != nil {
		return writeError(c, apperr.New(apperr.KindValidation, "income must be a decimal number"))
	}
	out, err := h.engine.SelectEligiblePlafonds(c.Request().Context(), income)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlafondHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlafondHandler) Create(c echo.Context) error {
	var req plafondReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.Create(c.Request().Context(), plafond.RuleInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlafondHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	var req plafondReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.Update(c.Request().Context(), id, plafond.RuleInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlafondHandler) Toggle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	p, err := h.uc.Toggle(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlafondHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	actor, err := actorID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Request().Context(), id, actor); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlafondHandler) Restore(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	p, err := h.uc.Restore(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
