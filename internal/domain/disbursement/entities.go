package disbursement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"loanflow/internal/domain/apperr"
)

const StatusCompleted = "COMPLETED"

const maxBankAccountLen = 100

var (
	ErrNotFound         = apperr.New(apperr.KindNotFound, "disbursement not found")
	ErrAlreadyDisbursed = apperr.New(apperr.KindAlreadyDisbursed, "loan has already been disbursed")
)

// Table: loan_disbursements. Exactly zero or one row per loan.
type Disbursement struct {
	ID          uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LoanID      uint64          `gorm:"column:loan_id;not null;uniqueIndex:ux_loan_disbursements_loan_id" json:"loan_id"`
	DisbursedBy uint64          `gorm:"column:disbursed_by;not null" json:"disbursed_by"`
	Amount      decimal.Decimal `gorm:"column:disbursement_amount;type:decimal(18,2);not null" json:"amount"`
	BankAccount string          `gorm:"column:bank_account;size:100;not null" json:"bank_account"`
	Status      string          `gorm:"column:status;size:30;not null" json:"status"`
	Notes       string          `gorm:"column:disbursement_notes;size:500" json:"notes,omitempty"`
	DisbursedAt time.Time       `gorm:"column:disbursement_date;not null" json:"disbursed_at"`
}

func (Disbursement) TableName() string { return "loan_disbursements" }

// NormalizeBankAccount trims the account and rejects empty or oversized values.
func NormalizeBankAccount(raw string) (string, error) {
	acct := strings.TrimSpace(raw)
	if acct == "" {
		return "", apperr.New(apperr.KindValidation, "bank account is required for disbursement")
	}
	if len(acct) > maxBankAccountLen {
		return "", apperr.Newf(apperr.KindValidation, "bank account must be at most %d characters", maxBankAccountLen)
	}
	return acct, nil
}
