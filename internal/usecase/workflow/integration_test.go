package workflow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loanflow/internal/adapter/repository/mysql"
	"loanflow/internal/domain/apperr"
	"loanflow/internal/domain/disbursement"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/notify"
	"loanflow/internal/testutil/notifymock"
	"loanflow/internal/testutil/testdb"
)

func seedLoan(t *testing.T, repo loan.Repository, status loan.Status) *loan.Loan {
	t.Helper()
	l := &loan.Loan{
		CustomerID:   11,
		PlafondID:    1,
		Amount:       decimal.RequireFromString("10000000"),
		TenureMonths: 12,
		InterestRate: decimal.RequireFromString("1.5"),
		Status:       status,
		SubmittedAt:  time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), l); err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return l
}

type dbFixture struct {
	db    *gorm.DB
	loans *mysql.LoanRepository
	disbs *mysql.DisbursementRepository
}

func (f dbFixture) disbursementRows(t *testing.T, loanID uint64) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(&disbursement.Disbursement{}).Where("loan_id = ?", loanID).Count(&n).Error; err != nil {
		t.Fatalf("count disbursements: %v", err)
	}
	return n
}

func newDBUsecase(t *testing.T) (*Usecase, dbFixture, *notifymock.Recorder) {
	t.Helper()
	db := testdb.Open(t)
	rec := &notifymock.Recorder{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := NewUsecase(mysql.NewGormUoW(db), notify.NewDispatcher(rec, log, time.Second), log)
	return uc, dbFixture{db: db, loans: mysql.NewLoanRepository(db), disbs: mysql.NewDisbursementRepository(db)}, rec
}

func TestIntegration_FullWorkflow(t *testing.T) {
	uc, f, rec := newDBUsecase(t)
	ctx := context.Background()
	l := seedLoan(t, f.loans, loan.StatusSubmitted)

	if _, err := uc.ActOnReview(ctx, ReviewInput{LoanID: l.ID, ActorID: 2, Decision: DecisionApprove}); err != nil {
		t.Fatalf("review: %v", err)
	}
	if _, err := uc.ActOnApproval(ctx, ApprovalInput{LoanID: l.ID, ActorID: 3, Approved: true}); err != nil {
		t.Fatalf("approval: %v", err)
	}
	if _, err := uc.Disburse(ctx, DisburseInput{LoanID: l.ID, ActorID: 4, BankAccount: "BCA-001"}); err != nil {
		t.Fatalf("disburse: %v", err)
	}

	got, err := f.loans.GetByID(ctx, l.ID)
	if err != nil || got.Status != loan.StatusDisbursed {
		t.Fatalf("final status: %v %+v", err, got)
	}
	d, err := f.disbs.GetByLoanID(ctx, l.ID)
	if err != nil || d.BankAccount != "BCA-001" || !d.Amount.Equal(l.Amount) {
		t.Fatalf("disbursement: %v %+v", err, d)
	}
	want := []notify.Type{notify.TypeReadyForApproval, notify.TypeLoanApproved, notify.TypeReadyForDisbursement, notify.TypeLoanDisbursed}
	if !sameTypes(rec.Types(), want...) {
		t.Fatalf("events = %v", rec.Types())
	}

	// A second review on a finished loan is rejected and writes nothing.
	_, err = uc.ActOnReview(ctx, ReviewInput{LoanID: l.ID, ActorID: 2, Decision: DecisionReject})
	if !errors.Is(err, apperr.ErrInvalidStateTransition) {
		t.Fatalf("late review: want INVALID_STATE_TRANSITION, got %v", err)
	}
}

func TestIntegration_DisburseTwiceLeavesOneRow(t *testing.T) {
	uc, f, _ := newDBUsecase(t)
	ctx := context.Background()
	l := seedLoan(t, f.loans, loan.StatusApproved)

	if _, err := uc.Disburse(ctx, DisburseInput{LoanID: l.ID, ActorID: 4, BankAccount: "1"}); err != nil {
		t.Fatalf("first disburse: %v", err)
	}
	_, err := uc.Disburse(ctx, DisburseInput{LoanID: l.ID, ActorID: 4, BankAccount: "1"})
	if !errors.Is(err, apperr.ErrAlreadyDisbursed) {
		t.Fatalf("second disburse: want ALREADY_DISBURSED, got %v", err)
	}

	if n := f.disbursementRows(t, l.ID); n != 1 {
		t.Fatalf("disbursement rows = %d, want 1", n)
	}
}

func TestIntegration_ConcurrentDisburseOneWins(t *testing.T) {
	uc, f, _ := newDBUsecase(t)
	ctx := context.Background()
	l := seedLoan(t, f.loans, loan.StatusApproved)

	const workers = 4
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Disburse(ctx, DisburseInput{LoanID: l.ID, ActorID: 4, BankAccount: "1"})
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, apperr.ErrAlreadyDisbursed), errors.Is(err, apperr.ErrInvalidStateTransition):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("successful disbursements = %d, want 1", ok)
	}
	if n := f.disbursementRows(t, l.ID); n != 1 {
		t.Fatalf("disbursement rows = %d, want 1", n)
	}
}
