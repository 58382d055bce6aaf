package loanmock

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "loanflow/internal/domain/loan"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{ID: 1}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != l {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, l); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{ID: 2}

	m := &Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domain.Loan, error) {
			if id != 2 {
				t.Fatalf("GetByID id mismatch: got %d", id)
			}
			return want, nil
		},
	}
	got, err := m.GetByID(ctx, 2)
	if err != nil || got != want {
		t.Fatalf("GetByID: got %+v, %v", got, err)
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	got, err = m.GetByID(ctx, 2)
	if err != context.Canceled {
		t.Fatalf("GetByID default: want context.Canceled, got %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID default: want nil loan, got %+v", got)
	}
}

func TestRepo_Lists_DefaultCanceled(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}
	if _, err := m.ListByCustomer(ctx, 1); err != context.Canceled {
		t.Fatalf("ListByCustomer default: %v", err)
	}
	if _, err := m.ListByStatus(ctx, domain.StatusSubmitted); err != context.Canceled {
		t.Fatalf("ListByStatus default: %v", err)
	}
}

func TestRepo_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// Default applies the change.
	ok, err := (&Repo{}).UpdateStatus(ctx, 1, domain.StatusSubmitted, domain.StatusUnderReview, at)
	if err != nil || !ok {
		t.Fatalf("UpdateStatus default: ok=%v err=%v", ok, err)
	}

	m := &Repo{
		UpdateStatusFn: func(_ context.Context, id uint64, from, to domain.Status, gotAt time.Time) (bool, error) {
			if id != 9 || from != domain.StatusApproved || to != domain.StatusDisbursed || !gotAt.Equal(at) {
				t.Fatalf("UpdateStatus args: %d %s %s %v", id, from, to, gotAt)
			}
			return false, nil
		},
	}
	ok, err = m.UpdateStatus(ctx, 9, domain.StatusApproved, domain.StatusDisbursed, at)
	if err != nil || ok {
		t.Fatalf("UpdateStatus: ok=%v err=%v", ok, err)
	}
}
