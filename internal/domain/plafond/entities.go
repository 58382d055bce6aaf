package plafond

import (
	"time"

	"github.com/shopspring/decimal"

	"loanflow/internal/domain/apperr"
)

const MaxTenorMonths = 360

var (
	ErrNotFound   = apperr.New(apperr.KindNotFound, "plafond not found")
	ErrDuplicate  = apperr.New(apperr.KindDuplicatePlafond, "plafond with same min income, max amount, and tenor already exists")
	ErrNotDeleted = apperr.New(apperr.KindValidation, "plafond is not deleted")
)

// Table: plafonds. Rows are never hard-deleted.
type Plafond struct {
	ID           uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MinIncome    decimal.Decimal `gorm:"column:min_income;type:decimal(18,2);not null;index:idx_plafonds_min_income" json:"min_income"`
	MaxAmount    decimal.Decimal `gorm:"column:max_amount;type:decimal(18,2);not null" json:"max_amount"`
	TenorMonth   int             `gorm:"column:tenor_month;not null;index:idx_plafonds_tenor" json:"tenor_month"`
	InterestRate decimal.Decimal `gorm:"column:interest_rate;type:decimal(5,2);not null" json:"interest_rate"`
	IsActive     bool            `gorm:"column:is_active;not null" json:"is_active"`
	IsDeleted    bool            `gorm:"column:is_deleted;not null" json:"is_deleted"`
	DeletedAt    *time.Time      `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
	DeletedBy    *uint64         `gorm:"column:deleted_by" json:"deleted_by,omitempty"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Plafond) TableName() string { return "plafonds" }

// Rule is the mutable part of a plafond as supplied by an administrator.
type Rule struct {
	MinIncome    decimal.Decimal
	MaxAmount    decimal.Decimal
	TenorMonth   int
	InterestRate decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Validate enforces the catalog row invariants.
func (r Rule) Validate() error {
	switch {
	case !r.MinIncome.IsPositive():
		return apperr.New(apperr.KindValidation, "min income must be greater than 0")
	case !r.MaxAmount.IsPositive():
		return apperr.New(apperr.KindValidation, "max amount must be greater than 0")
	case r.TenorMonth <= 0:
		return apperr.New(apperr.KindValidation, "tenor month must be greater than 0")
	case r.TenorMonth > MaxTenorMonths:
		return apperr.Newf(apperr.KindValidation, "tenor month cannot exceed %d months", MaxTenorMonths)
	case r.InterestRate.IsNegative():
		return apperr.New(apperr.KindValidation, "interest rate must be 0 or greater")
	case r.InterestRate.GreaterThan(hundred):
		return apperr.New(apperr.KindValidation, "interest rate cannot exceed 100%")
	}
	return nil
}

// Apply copies the rule onto p without touching lifecycle flags.
func (r Rule) Apply(p *Plafond) {
	p.MinIncome = r.MinIncome
	p.MaxAmount = r.MaxAmount
	p.TenorMonth = r.TenorMonth
	p.InterestRate = r.InterestRate
}

// Matchable reports whether p may take part in eligibility or simulation matching.
func (p *Plafond) Matchable() bool { return p.IsActive && !p.IsDeleted }

// EligibleFor reports whether a customer with the given monthly income qualifies for p.
func (p *Plafond) EligibleFor(income decimal.Decimal) bool {
	return p.Matchable() && p.MinIncome.LessThanOrEqual(income)
}

// SoftDelete marks p deleted by actorID and deactivates it.
func (p *Plafond) SoftDelete(actorID uint64, at time.Time) {
	p.IsDeleted = true
	p.IsActive = false
	p.DeletedAt = &at
	p.DeletedBy = &actorID
}

// Restore clears delete markers. Activation is left to an explicit toggle.
func (p *Plafond) Restore() error {
	if !p.IsDeleted {
		return ErrNotDeleted
	}
	p.IsDeleted = false
	p.DeletedAt = nil
	p.DeletedBy = nil
	return nil
}
