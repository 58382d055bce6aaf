package loan

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"loanflow/internal/domain/apperr"
	"loanflow/internal/domain/customer"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/notify"
	"loanflow/internal/domain/plafond"
	"loanflow/internal/domain/uow"
	"loanflow/internal/usecase/eligibility"
)

// Eligibility is the part of the eligibility engine submission depends on.
type Eligibility interface {
	SelectEligiblePlafonds(ctx context.Context, income decimal.Decimal) ([]plafond.Plafond, error)
	ValidateSubmission(ctx context.Context, in eligibility.SubmissionInput) (decimal.Decimal, error)
}

type Usecase struct {
	repos     uow.Repos
	customers customer.Repository
	elig      Eligibility
	notifier  *notify.Dispatcher
	now       func() time.Time
}

// NewUsecase wires loan intake and read access. Only the Loans, Reviews,
// Approvals and Disbursements repositories of r are used.
func NewUsecase(r uow.Repos, customers customer.Repository, elig Eligibility, d *notify.Dispatcher) *Usecase {
	return &Usecase{
		repos:     r,
		customers: customers,
		elig:      elig,
		notifier:  d,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Submit creates a SUBMITTED loan after checking it against the customer's
// eligible plafonds. The plafond's rate is frozen onto the loan.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*loan.Loan, error) {
	if in.CustomerID == 0 || in.PlafondID == 0 {
		return nil, apperr.New(apperr.KindValidation, "customer id and plafond id are required")
	}
	purpose := strings.TrimSpace(in.Purpose)
	if utf8.RuneCountInString(purpose) > maxPurposeLen {
		return nil, apperr.Newf(apperr.KindValidation, "purpose must be at most %d characters", maxPurposeLen)
	}

	c, err := u.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	rate, err := u.elig.ValidateSubmission(ctx, eligibility.SubmissionInput{
		PlafondID:      in.PlafondID,
		Amount:         in.Amount,
		TenureMonths:   in.TenureMonths,
		CustomerIncome: c.MonthlyIncome,
	})
	if err != nil {
		return nil, err
	}

	now := u.now()
	l := &loan.Loan{
		CustomerID:   in.CustomerID,
		PlafondID:    in.PlafondID,
		Amount:       in.Amount,
		TenureMonths: in.TenureMonths,
		InterestRate: rate,
		Purpose:      purpose,
		Status:       loan.StatusSubmitted,
		SubmittedAt:  now,
	}
	if err := u.repos.Loans.Create(ctx, l); err != nil {
		return nil, err
	}

	base := notify.Event{LoanID: l.ID, CustomerID: l.CustomerID, Amount: l.Amount, OccurredAt: now}
	customerEvt, staffEvt := base, base
	customerEvt.Type = notify.TypeLoanSubmitted
	staffEvt.Type = notify.TypeLoanNew
	u.notifier.Dispatch(ctx, customerEvt, staffEvt)
	return l, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*loan.Loan, error) {
	return u.repos.Loans.GetByID(ctx, id)
}

// GetWithHistory returns the loan and whichever stage records exist.
func (u *Usecase) GetWithHistory(ctx context.Context, id uint64) (*LoanWithHistory, error) {
	l, err := u.repos.Loans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := u.withHistory(ctx, *l)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByCustomer returns the customer's loans with their stage records,
// newest submission first.
func (u *Usecase) ListByCustomer(ctx context.Context, customerID uint64) ([]LoanWithHistory, error) {
	loans, err := u.repos.Loans.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return u.attachHistory(ctx, loans)
}

// ListByStatus returns loans in one workflow stage with their stage records,
// oldest first.
func (u *Usecase) ListByStatus(ctx context.Context, status loan.Status) ([]LoanWithHistory, error) {
	if !status.Valid() {
		return nil, apperr.Newf(apperr.KindValidation, "unknown loan status %q", status)
	}
	loans, err := u.repos.Loans.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return u.attachHistory(ctx, loans)
}

func (u *Usecase) attachHistory(ctx context.Context, loans []loan.Loan) ([]LoanWithHistory, error) {
	out := make([]LoanWithHistory, 0, len(loans))
	for _, l := range loans {
		h, err := u.withHistory(ctx, l)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

// withHistory looks up each stage record of l; missing stages stay nil.
func (u *Usecase) withHistory(ctx context.Context, l loan.Loan) (LoanWithHistory, error) {
	out := LoanWithHistory{Loan: l}
	var err error

	if out.Review, err = u.repos.Reviews.GetByLoanID(ctx, l.ID); absent(err) {
		out.Review = nil
	} else if err != nil {
		return LoanWithHistory{}, err
	}
	if out.Approval, err = u.repos.Approvals.GetByLoanID(ctx, l.ID); absent(err) {
		out.Approval = nil
	} else if err != nil {
		return LoanWithHistory{}, err
	}
	if out.Disbursement, err = u.repos.Disbursements.GetByLoanID(ctx, l.ID); absent(err) {
		out.Disbursement = nil
	} else if err != nil {
		return LoanWithHistory{}, err
	}
	return out, nil
}

// EligiblePlafonds lists the plafonds a customer currently qualifies for.
func (u *Usecase) EligiblePlafonds(ctx context.Context, customerID uint64) ([]plafond.Plafond, error) {
	c, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return u.elig.SelectEligiblePlafonds(ctx, c.MonthlyIncome)
}

func absent(err error) bool { return err != nil && errors.Is(err, apperr.ErrNotFound) }
