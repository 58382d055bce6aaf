package loan

import "loanflow/internal/domain/apperr"

// Action is a role-specific command against a loan.
type Action string

const (
	// ActionReviewPass hands the loan to the approval stage; it is not a final approval.
	ActionReviewPass   Action = "REVIEW_APPROVE"
	ActionReviewReject Action = "REVIEW_REJECT"
	ActionApprove      Action = "APPROVE"
	ActionDecline      Action = "DECLINE"
	ActionDisburse     Action = "DISBURSE"
)

var transitions = map[Status]map[Action]Status{
	StatusSubmitted: {
		ActionReviewPass:   StatusUnderReview,
		ActionReviewReject: StatusRejected,
	},
	StatusUnderReview: {
		ActionApprove: StatusApproved,
		ActionDecline: StatusRejected,
	},
	StatusApproved: {
		ActionDisburse: StatusDisbursed,
	},
}

// Next returns the status reached by applying a to a loan in status from.
func Next(from Status, a Action) (Status, error) {
	if to, ok := transitions[from][a]; ok {
		return to, nil
	}
	return "", InvalidTransition(from, a)
}

// InvalidTransition builds the error returned when a is not legal in status from.
func InvalidTransition(from Status, a Action) error {
	return apperr.Newf(apperr.KindInvalidStateTransition,
		"cannot apply %s: loan is in %s status", a, from)
}
