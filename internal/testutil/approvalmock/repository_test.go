package approvalmock

import (
	"context"
	"errors"
	"testing"

	domain "loanflow/internal/domain/approval"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	a := &domain.Approval{LoanID: 123}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Approval) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("ctx mismatch")
			}
			if got != a {
				t.Fatalf("arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, a); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, a); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_GetByLoanID(t *testing.T) {
	ctx := context.Background()
	want := &domain.Approval{ID: 2, LoanID: 456}

	called := false
	m := &Repo{
		GetByLoanIDFn: func(gotCtx context.Context, id uint64) (*domain.Approval, error) {
			called = true
			if id != 456 {
				t.Fatalf("loanID mismatch: got %d", id)
			}
			return want, nil
		},
	}
	got, err := m.GetByLoanID(ctx, 456)
	if err != nil {
		t.Fatalf("GetByLoanID: unexpected err %v", err)
	}
	if got != want {
		t.Fatalf("GetByLoanID: want %+v, got %+v", want, got)
	}
	if !called {
		t.Fatalf("GetByLoanIDFn not called")
	}

	// Default (nil func) → not found
	m = &Repo{}
	got, err = m.GetByLoanID(ctx, 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByLoanID default: want ErrNotFound, got %v", err)
	}
	if got != nil {
		t.Fatalf("GetByLoanID default: want nil, got %+v", got)
	}
}
