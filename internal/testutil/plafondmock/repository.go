package plafondmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "loanflow/internal/domain/plafond"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset list queries return an empty catalog.
type Repo struct {
	CreateFn       func(ctx context.Context, p *domain.Plafond) error
	SaveFn         func(ctx context.Context, p *domain.Plafond) error
	GetByIDFn      func(ctx context.Context, id uint64) (*domain.Plafond, error)
	ListAllFn      func(ctx context.Context) ([]domain.Plafond, error)
	ListActiveFn   func(ctx context.Context) ([]domain.Plafond, error)
	ListByIncomeFn func(ctx context.Context, income decimal.Decimal) ([]domain.Plafond, error)
	ListByTenorFn  func(ctx context.Context, tenor int) ([]domain.Plafond, error)
	ExistsRuleFn   func(ctx context.Context, r domain.Rule, excludeID uint64) (bool, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Plafond) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Plafond) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Plafond, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Plafond, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return []domain.Plafond{}, nil
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Plafond, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return []domain.Plafond{}, nil
}

func (m *Repo) ListByIncome(ctx context.Context, income decimal.Decimal) ([]domain.Plafond, error) {
	if m.ListByIncomeFn != nil {
		return m.ListByIncomeFn(ctx, income)
	}
	return []domain.Plafond{}, nil
}

func (m *Repo) ListByTenor(ctx context.Context, tenor int) ([]domain.Plafond, error) {
	if m.ListByTenorFn != nil {
		return m.ListByTenorFn(ctx, tenor)
	}
	return []domain.Plafond{}, nil
}

func (m *Repo) ExistsRule(ctx context.Context, r domain.Rule, excludeID uint64) (bool, error) {
	if m.ExistsRuleFn != nil {
		return m.ExistsRuleFn(ctx, r, excludeID)
	}
	return false, nil
}
