package apperr

import (
	"errors"
	"fmt"
)

// Kind is the stable, caller-facing category of a workflow error.
type Kind string

const (
	KindNotFound               Kind = "NOT_FOUND"
	KindValidation             Kind = "VALIDATION"
	KindPlafondInactive        Kind = "PLAFOND_INACTIVE"
	KindIneligiblePlafond      Kind = "INELIGIBLE_PLAFOND"
	KindAmountExceedsLimit     Kind = "AMOUNT_EXCEEDS_LIMIT"
	KindTenorExceedsLimit      Kind = "TENOR_EXCEEDS_LIMIT"
	KindInvalidStateTransition Kind = "INVALID_STATE_TRANSITION"
	KindAlreadyReviewed        Kind = "ALREADY_REVIEWED"
	KindAlreadyApproved        Kind = "ALREADY_APPROVED"
	KindAlreadyDisbursed       Kind = "ALREADY_DISBURSED"
	KindNoSuitablePlafond      Kind = "NO_SUITABLE_PLAFOND"
	KindDuplicatePlafond       Kind = "DUPLICATE_PLAFOND"
	KindInternal               Kind = "INTERNAL"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Err == nil:
		return string(e.Kind)
	case e.Err == nil:
		return e.Message
	case e.Message == "":
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match against a kind sentinel (an *Error without a message),
// so errors.Is(err, apperr.ErrNotFound) holds for every NOT_FOUND error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Kind sentinels.
var (
	ErrNotFound               = &Error{Kind: KindNotFound}
	ErrValidation             = &Error{Kind: KindValidation}
	ErrPlafondInactive        = &Error{Kind: KindPlafondInactive}
	ErrIneligiblePlafond      = &Error{Kind: KindIneligiblePlafond}
	ErrAmountExceedsLimit     = &Error{Kind: KindAmountExceedsLimit}
	ErrTenorExceedsLimit      = &Error{Kind: KindTenorExceedsLimit}
	ErrInvalidStateTransition = &Error{Kind: KindInvalidStateTransition}
	ErrAlreadyReviewed        = &Error{Kind: KindAlreadyReviewed}
	ErrAlreadyApproved        = &Error{Kind: KindAlreadyApproved}
	ErrAlreadyDisbursed       = &Error{Kind: KindAlreadyDisbursed}
	ErrNoSuitablePlafond      = &Error{Kind: KindNoSuitablePlafond}
	ErrDuplicatePlafond       = &Error{Kind: KindDuplicatePlafond}
)

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
