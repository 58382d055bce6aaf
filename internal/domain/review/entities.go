package review

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
	ErrNotFound        = apperr.New(apperr.KindNotFound, "review not found")
	ErrAlreadyReviewed = apperr.New(apperr.KindAlreadyReviewed, "loan has already been reviewed")
)

// Table: loan_reviews. At most one row per loan; rows are never updated.
type Review struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LoanID     uint64    `gorm:"column:loan_id;not null;uniqueIndex:ux_loan_reviews_loan_id" json:"loan_id"`
	ReviewedBy uint64    `gorm:"column:reviewed_by;not null" json:"reviewed_by"`
	Status     Decision  `gorm:"column:review_status;size:30;not null" json:"status"`
	Notes      string    `gorm:"column:review_notes;size:500" json:"notes,omitempty"`
	ReviewedAt time.Time `gorm:"column:reviewed_at;not null" json:"reviewed_at"`
}

func (Review) TableName() string { return "loan_reviews" }
