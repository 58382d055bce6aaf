package workflow

import "loanflow/internal/domain/apperr"

// Decision is a reviewer's verdict.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

const maxNotesLen = 500

type ReviewInput struct {
	LoanID   uint64
	ActorID  uint64
	Decision Decision
	Notes    string
}

type ApprovalInput struct {
	LoanID   uint64
	ActorID  uint64
	Approved bool
	Notes    string
}

type DisburseInput struct {
	LoanID      uint64
	ActorID     uint64
	BankAccount string
	Notes       string
}

func validateActor(actorID uint64) error {
	if actorID == 0 {
		return apperr.New(apperr.KindValidation, "actor id is required")
	}
	return nil
}

func validateNotes(notes string) error {
	if len([]rune(notes)) > maxNotesLen {
		return apperr.Newf(apperr.KindValidation, "notes must be at most %d characters", maxNotesLen)
	}
	return nil
}
