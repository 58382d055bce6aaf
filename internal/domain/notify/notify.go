package notify

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Type names a workflow event. Channel selection (email, push, in-app) is
// decided by the consumer, not here.
type Type string

const (
	// Customer-facing.
	TypeLoanSubmitted Type = "LOAN_SUBMISSION"
	TypeLoanApproved  Type = "LOAN_APPROVED"
	TypeLoanRejected  Type = "LOAN_REJECTED"
	TypeLoanDisbursed Type = "LOAN_DISBURSED"

	// Staff queues.
	TypeLoanNew              Type = "LOAN_NEW"
	TypeReadyForApproval     Type = "READY_FOR_APPROVAL"
	TypeReadyForDisbursement Type = "READY_FOR_DISBURSEMENT"
)

type Event struct {
	ID          string          `json:"id"`
	Type        Type            `json:"type"`
	LoanID      uint64          `json:"loan_id"`
	CustomerID  uint64          `json:"customer_id"`
	ActorID     uint64          `json:"actor_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	BankAccount string          `json:"bank_account,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// Notifier publishes workflow events. It is called only after the state
// change is committed; its errors never undo that change.
type Notifier interface {
	Notify(ctx context.Context, e Event) error
}
