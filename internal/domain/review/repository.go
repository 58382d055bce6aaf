package review

import "context"

type Repository interface {
	// Create inserts the review; the unique loan_id index rejects a second one.
	Create(ctx context.Context, r *Review) error
	GetByLoanID(ctx context.Context, loanID uint64) (*Review, error)
}
