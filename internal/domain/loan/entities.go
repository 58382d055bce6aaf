package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"loanflow/internal/domain/apperr"
)

type Status string

const (
	StatusSubmitted   Status = "SUBMITTED"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
	StatusDisbursed   Status = "DISBURSED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected, StatusDisbursed:
		return true
	}
	return false
}

// Terminal statuses accept no further actions.
func (s Status) Terminal() bool { return s == StatusRejected || s == StatusDisbursed }

var ErrNotFound = apperr.New(apperr.KindNotFound, "loan not found")

// Table: loans. Loans are financial records and are never deleted.
type Loan struct {
	ID           uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CustomerID   uint64          `gorm:"column:customer_id;not null;index:idx_loans_customer" json:"customer_id"`
	PlafondID    uint64          `gorm:"column:plafond_id;not null" json:"plafond_id"`
	Amount       decimal.Decimal `gorm:"column:loan_amount;type:decimal(18,2);not null" json:"amount"`
	TenureMonths int             `gorm:"column:tenor_month;not null" json:"tenure_months"`
	// Copied from the plafond at submission; never recomputed.
	InterestRate decimal.Decimal `gorm:"column:interest_rate;type:decimal(5,2);not null" json:"interest_rate"`
	Purpose      string          `gorm:"column:purpose;size:500" json:"purpose"`
	Status       Status          `gorm:"column:status;size:20;not null;index:idx_loans_status" json:"status"`
	SubmittedAt  time.Time       `gorm:"column:submission_date;not null" json:"submitted_at"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }
