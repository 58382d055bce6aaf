package uow

import (
	"context"

	"loanflow/internal/domain/approval"
	"loanflow/internal/domain/disbursement"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/plafond"
	"loanflow/internal/domain/review"
)

// Repos are bound to one transaction.
type Repos struct {
	Loans         loan.Repository
	Plafonds      plafond.Repository
	Reviews       review.Repository
	Approvals     approval.Repository
	Disbursements disbursement.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: load the loan inside the tx, then pass it in
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
}
