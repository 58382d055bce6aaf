package customermock

import (
	"context"

	domain "loanflow/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Customer, error)
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
