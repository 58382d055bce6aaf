package loan

import (
	"github.com/shopspring/decimal"

	"loanflow/internal/domain/approval"
	"loanflow/internal/domain/disbursement"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/review"
)

const maxPurposeLen = 500

type SubmitInput struct {
	CustomerID   uint64
	PlafondID    uint64
	Amount       decimal.Decimal
	TenureMonths int
	Purpose      string
}

// LoanWithHistory is a loan plus the stage records written so far.
// Stages that have not happened are omitted.
type LoanWithHistory struct {
	loan.Loan
	Review       *review.Review             `json:"review,omitempty"`
	Approval     *approval.Approval         `json:"approval,omitempty"`
	Disbursement *disbursement.Disbursement `json:"disbursement,omitempty"`
}
