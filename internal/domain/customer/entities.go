package customer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"loanflow/internal/domain/apperr"
)

var ErrNotFound = apperr.New(apperr.KindNotFound, "customer profile not found")

// Table: customers. Owned by the profile service; read-only here.
type Customer struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FullName      string          `gorm:"column:full_name;size:150" json:"full_name"`
	Email         string          `gorm:"column:email;size:150" json:"email"`
	MonthlyIncome decimal.Decimal `gorm:"column:monthly_income;type:decimal(18,2);not null" json:"monthly_income"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*Customer, error)
}
