package workflow

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"loanflow/internal/domain/apperr"
	"loanflow/internal/domain/approval"
	"loanflow/internal/domain/disbursement"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/notify"
	"loanflow/internal/domain/review"
	"loanflow/internal/domain/uow"
)

// Usecase drives loans through review, approval and disbursement. Each
// action runs in one transaction: the loan row is locked, the transition is
// checked, the status is moved with a compare-and-set and the stage record is
// written. Notifications go out only after commit.
type Usecase struct {
	uow      uow.UnitOfWork
	notifier *notify.Dispatcher
	log      *slog.Logger
	now      func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, d *notify.Dispatcher, log *slog.Logger) *Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{uow: tx, notifier: d, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// ActOnReview applies a reviewer's verdict to a SUBMITTED loan. Passing
// review moves the loan to UNDER_REVIEW; it is not an approval.
func (u *Usecase) ActOnReview(ctx context.Context, in ReviewInput) (*loan.Loan, error) {
	var (
		action   loan.Action
		decision review.Decision
	)
	switch in.Decision {
	case DecisionApprove:
		action, decision = loan.ActionReviewPass, review.DecisionApproved
	case DecisionReject:
		action, decision = loan.ActionReviewReject, review.DecisionRejected
	default:
		return nil, apperr.Newf(apperr.KindValidation, "review decision must be %s or %s", DecisionApprove, DecisionReject)
	}
	if err := validateActor(in.ActorID); err != nil {
		return nil, err
	}
	notes := strings.TrimSpace(in.Notes)
	if err := validateNotes(notes); err != nil {
		return nil, err
	}

	var updated *loan.Loan
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		now := u.now()
		if err := u.advance(ctx, r, l, action, now); err != nil {
			return err
		}
		updated = l
		return r.Reviews.Create(ctx, &review.Review{
			LoanID:     l.ID,
			ReviewedBy: in.ActorID,
			Status:     decision,
			Notes:      notes,
			ReviewedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	evt := u.event(updated, in.ActorID, notes)
	if action == loan.ActionReviewPass {
		evt.Type = notify.TypeReadyForApproval
	} else {
		evt.Type = notify.TypeLoanRejected
	}
	u.notifier.Dispatch(ctx, evt)
	return updated, nil
}

// ActOnApproval records the final accept/decline decision for a loan UNDER_REVIEW.
func (u *Usecase) ActOnApproval(ctx context.Context, in ApprovalInput) (*loan.Loan, error) {
	action, decision := loan.ActionDecline, approval.DecisionRejected
	if in.Approved {
		action, decision = loan.ActionApprove, approval.DecisionApproved
	}
	if err := validateActor(in.ActorID); err != nil {
		return nil, err
	}
	notes := strings.TrimSpace(in.Notes)
	if err := validateNotes(notes); err != nil {
		return nil, err
	}

	var updated *loan.Loan
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		now := u.now()
		if err := u.advance(ctx, r, l, action, now); err != nil {
			return err
		}
		updated = l
		return r.Approvals.Create(ctx, &approval.Approval{
			LoanID:     l.ID,
			ApprovedBy: in.ActorID,
			Status:     decision,
			Notes:      notes,
			ApprovedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	evt := u.event(updated, in.ActorID, notes)
	if action == loan.ActionApprove {
		customerEvt, staffEvt := evt, evt
		customerEvt.Type = notify.TypeLoanApproved
		staffEvt.Type = notify.TypeReadyForDisbursement
		u.notifier.Dispatch(ctx, customerEvt, staffEvt)
	} else {
		evt.Type = notify.TypeLoanRejected
		u.notifier.Dispatch(ctx, evt)
	}
	return updated, nil
}

// Disburse pays out an APPROVED loan. A loan that already has a disbursement
// record reports AlreadyDisbursed, so a retried payout never creates a second row.
func (u *Usecase) Disburse(ctx context.Context, in DisburseInput) (*loan.Loan, error) {
	if err := validateActor(in.ActorID); err != nil {
		return nil, err
	}
	acct, err := disbursement.NormalizeBankAccount(in.BankAccount)
	if err != nil {
		return nil, err
	}
	notes := strings.TrimSpace(in.Notes)
	if err := validateNotes(notes); err != nil {
		return nil, err
	}

	var updated *loan.Loan
	err = u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		done, err := r.Disbursements.ExistsByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if done {
			return disbursement.ErrAlreadyDisbursed
		}

		now := u.now()
		if err := u.advance(ctx, r, l, loan.ActionDisburse, now); err != nil {
			return err
		}
		updated = l
		return r.Disbursements.Create(ctx, &disbursement.Disbursement{
			LoanID:      l.ID,
			DisbursedBy: in.ActorID,
			Amount:      l.Amount,
			BankAccount: acct,
			Status:      disbursement.StatusCompleted,
			Notes:       notes,
			DisbursedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	evt := u.event(updated, in.ActorID, notes)
	evt.Type = notify.TypeLoanDisbursed
	evt.BankAccount = acct
	u.notifier.Dispatch(ctx, evt)
	return updated, nil
}

// advance checks the transition and moves the loan's status only if it has
// not changed since it was read.
func (u *Usecase) advance(ctx context.Context, r uow.Repos, l *loan.Loan, a loan.Action, at time.Time) error {
	to, err := loan.Next(l.Status, a)
	if err != nil {
		return err
	}
	ok, err := r.Loans.UpdateStatus(ctx, l.ID, l.Status, to, at)
	if err != nil {
		return err
	}
	if !ok {
		current := l.Status
		if fresh, err := r.Loans.GetByID(ctx, l.ID); err == nil {
			current = fresh.Status
		}
		return loan.InvalidTransition(current, a)
	}

	u.log.Info("loan status changed", "loan_id", l.ID, "action", a, "from", l.Status, "to", to)
	l.Status = to
	l.UpdatedAt = at
	return nil
}

func (u *Usecase) event(l *loan.Loan, actorID uint64, notes string) notify.Event {
	return notify.Event{
		LoanID:     l.ID,
		CustomerID: l.CustomerID,
		ActorID:    actorID,
		Amount:     l.Amount,
		Notes:      notes,
		OccurredAt: l.UpdatedAt,
	}
}
