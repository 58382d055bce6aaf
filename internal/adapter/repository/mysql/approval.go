package mysql

import (
	"context"

	approvalDomain "loanflow/internal/domain/approval"

	"gorm.io/gorm"
)

type ApprovalRepository struct{ db *gorm.DB }

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository { return &ApprovalRepository{db: db} }

func (r *ApprovalRepository) Create(ctx context.Context, a *approvalDomain.Approval) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isDuplicateKey(err) {
			return approvalDomain.ErrAlreadyApproved
		}
		return err
	}
	return nil
}

func (r *ApprovalRepository) GetByLoanID(ctx context.Context, loanID uint64) (*approvalDomain.Approval, error) {
	var out approvalDomain.Approval
	if err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out).Error; err != nil {
		return nil, notFound(err, approvalDomain.ErrNotFound)
	}
	return &out, nil
}
