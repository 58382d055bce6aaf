package approval

import (
	"time"

	"loanflow/internal/domain/apperr"
)

type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

var (
	ErrNotFound        = apperr.New(apperr.KindNotFound, "approval not found")
	ErrAlreadyApproved = apperr.New(apperr.KindAlreadyApproved, "loan already has an approval decision")
)

// Table: loan_approvals. The approval decision is final for acceptance or rejection.
type Approval struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LoanID     uint64    `gorm:"column:loan_id;not null;uniqueIndex:ux_loan_approvals_loan_id" json:"loan_id"`
	ApprovedBy uint64    `gorm:"column:approved_by;not null" json:"approved_by"`
	Status     Decision  `gorm:"column:approval_status;size:30;not null" json:"status"`
	Notes      string    `gorm:"column:approval_notes;size:500" json:"notes,omitempty"`
	ApprovedAt time.Time `gorm:"column:approved_at;not null" json:"approved_at"`
}

func (Approval) TableName() string { return "loan_approvals" }
