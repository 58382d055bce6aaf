package plafond

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, p *Plafond) error
	Save(ctx context.Context, p *Plafond) error

	// GetByID resolves soft-deleted rows too; callers decide whether they may be used.
	GetByID(ctx context.Context, id uint64) (*Plafond, error)

	// Non-deleted rows, ascending by min_income.
	ListAll(ctx context.Context) ([]Plafond, error)
	// Active, non-deleted rows, ascending by min_income.
	ListActive(ctx context.Context) ([]Plafond, error)
	// Active, non-deleted rows with min_income <= income, ascending by min_income.
	ListByIncome(ctx context.Context, income decimal.Decimal) ([]Plafond, error)
	// Active, non-deleted rows with tenor_month = tenor, in catalog (id) order.
	ListByTenor(ctx context.Context, tenor int) ([]Plafond, error)

	// ExistsRule reports whether another row (id != excludeID) shares the rule key.
	ExistsRule(ctx context.Context, r Rule, excludeID uint64) (bool, error)
}

// Cache keys name a query shape, never an individual row.
const (
	CacheKeyAll    = "all"
	CacheKeyActive = "active"
)

func CacheKeyByIncome(income decimal.Decimal) string { return "byIncome:" + income.String() }

// Cache holds read views of the catalog. Any catalog write must call InvalidateAll.
type Cache interface {
	GetList(ctx context.Context, key string) ([]Plafond, bool, error)
	SetList(ctx context.Context, key string, list []Plafond) error
	InvalidateAll(ctx context.Context) error
}
