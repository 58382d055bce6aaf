package disbursementmock

import (
	"context"

	domain "loanflow/internal/domain/disbursement"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, d *domain.Disbursement) error
	GetByLoanIDFn    func(ctx context.Context, loanID uint64) (*domain.Disbursement, error)
	ExistsByLoanIDFn func(ctx context.Context, loanID uint64) (bool, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Disbursement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID uint64) (*domain.Disbursement, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ExistsByLoanID(ctx context.Context, loanID uint64) (bool, error) {
	if m.ExistsByLoanIDFn != nil {
		return m.ExistsByLoanIDFn(ctx, loanID)
	}
	return false, nil
}
