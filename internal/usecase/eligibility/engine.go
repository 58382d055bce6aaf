package eligibility

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"loanflow/internal/domain/apperr"
	"loanflow/internal/domain/plafond"
)

// Catalog is the read side of the plafond catalog the engine matches against.
type Catalog interface {
	Get(ctx context.Context, id uint64) (*plafond.Plafond, error)
	ListByIncome(ctx context.Context, income decimal.Decimal) ([]plafond.Plafond, error)
	ListByTenor(ctx context.Context, tenor int) ([]plafond.Plafond, error)
}

type Engine struct{ catalog Catalog }

func NewEngine(c Catalog) *Engine { return &Engine{catalog: c} }

// SelectEligiblePlafonds returns the active, non-deleted plafonds whose income
// floor is at most income, ascending by floor. An empty result is not an error.
func (e *Engine) SelectEligiblePlafonds(ctx context.Context, income decimal.Decimal) ([]plafond.Plafond, error) {
	if income.IsNegative() {
		return nil, apperr.New(apperr.KindValidation, "monthly income must not be negative")
	}
	return e.catalog.ListByIncome(ctx, income)
}

// ValidateSubmission checks a loan request against the chosen plafond, read
// fresh from storage. It returns the interest rate to freeze on the loan.
func (e *Engine) ValidateSubmission(ctx context.Context, in SubmissionInput) (decimal.Decimal, error) {
	if err := validateTerms(in.Amount, in.TenureMonths); err != nil {
		return decimal.Zero, err
	}

	p, err := e.usablePlafond(ctx, in.PlafondID)
	if err != nil {
		return decimal.Zero, err
	}

	if in.CustomerIncome.IsNegative() {
		return decimal.Zero, apperr.New(apperr.KindValidation, "monthly income must not be negative")
	}
	if !p.EligibleFor(in.CustomerIncome) {
		return decimal.Zero, apperr.Newf(apperr.KindIneligiblePlafond,
			"plafond %d is not eligible for monthly income %s", p.ID, in.CustomerIncome.StringFixed(currencyScale))
	}

	if err := checkAmount(p, in.Amount); err != nil {
		return decimal.Zero, err
	}
	if err := checkTenor(p, in.TenureMonths); err != nil {
		return decimal.Zero, err
	}
	return p.InterestRate, nil
}

// Simulate prices a loan against an explicit plafond, or against the
// lowest-rate plafond offering exactly the requested tenor and enough headroom.
func (e *Engine) Simulate(ctx context.Context, in SimulationInput) (*SimulationResult, error) {
	if err := validateTerms(in.Amount, in.Tenor); err != nil {
		return nil, err
	}

	var selected *plafond.Plafond
	if in.PlafondID != nil {
		p, err := e.usablePlafond(ctx, *in.PlafondID)
		if err != nil {
			return nil, err
		}
		// tenor is checked before amount here, unlike submission
		if err := checkTenor(p, in.Tenor); err != nil {
			return nil, err
		}
		if err := checkAmount(p, in.Amount); err != nil {
			return nil, err
		}
		selected = p
	} else {
		candidates, err := e.catalog.ListByTenor(ctx, in.Tenor)
		if err != nil {
			return nil, err
		}
		selected = cheapest(candidates, in.Amount)
		if selected == nil {
			return nil, apperr.New(apperr.KindNoSuitablePlafond,
				"no suitable plafond found for the requested amount and tenor")
		}
	}

	plan := Calculate(in.Amount, selected.InterestRate, in.Tenor)
	return &SimulationResult{
		PlafondID:          selected.ID,
		LoanAmount:         in.Amount,
		TenorMonth:         in.Tenor,
		InterestRate:       selected.InterestRate,
		TotalInterest:      plan.TotalInterest,
		TotalPayment:       plan.TotalPayment,
		MonthlyInstallment: plan.MonthlyInstallment,
	}, nil
}

// usablePlafond resolves id to a plafond that may back a new loan.
func (e *Engine) usablePlafond(ctx context.Context, id uint64) (*plafond.Plafond, error) {
	p, err := e.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "plafond not found with id: %d", id)
		}
		return nil, err
	}
	if p.IsDeleted {
		return nil, apperr.Newf(apperr.KindNotFound, "plafond not found with id: %d", id)
	}
	if !p.IsActive {
		return nil, apperr.Newf(apperr.KindPlafondInactive, "plafond %d is not active", id)
	}
	return p, nil
}

func validateTerms(amount decimal.Decimal, tenor int) error {
	if !amount.IsPositive() {
		return apperr.New(apperr.KindValidation, "amount must be greater than 0")
	}
	if tenor <= 0 || tenor > plafond.MaxTenorMonths {
		return apperr.Newf(apperr.KindValidation, "tenor must be between 1 and %d months", plafond.MaxTenorMonths)
	}
	return nil
}

func checkAmount(p *plafond.Plafond, amount decimal.Decimal) error {
	if amount.GreaterThan(p.MaxAmount) {
		return apperr.Newf(apperr.KindAmountExceedsLimit,
			"loan amount (%s) exceeds maximum allowed (%s) for plafond %d",
			amount.StringFixed(currencyScale), p.MaxAmount.StringFixed(currencyScale), p.ID)
	}
	return nil
}

func checkTenor(p *plafond.Plafond, tenor int) error {
	if tenor > p.TenorMonth {
		return apperr.Newf(apperr.KindTenorExceedsLimit,
			"loan tenure (%d months) exceeds maximum allowed (%d months) for plafond %d",
			tenor, p.TenorMonth, p.ID)
	}
	return nil
}

// cheapest picks the lowest interest rate among plafonds covering amount.
// Ties keep the earlier plafond in catalog order.
func cheapest(candidates []plafond.Plafond, amount decimal.Decimal) *plafond.Plafond {
	var best *plafond.Plafond
	for i := range candidates {
		p := &candidates[i]
		if !p.Matchable() || p.MaxAmount.LessThan(amount) {
			continue
		}
		if best == nil || p.InterestRate.LessThan(best.InterestRate) {
			best = p
		}
	}
	return best
}
