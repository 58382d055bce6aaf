package mysql

import (
	"context"

	disbDomain "loanflow/internal/domain/disbursement"

	"gorm.io/gorm"
)

type DisbursementRepository struct{ db *gorm.DB }

func NewDisbursementRepository(db *gorm.DB) *DisbursementRepository {
	return &DisbursementRepository{db: db}
}

func (r *DisbursementRepository) Create(ctx context.Context, d *disbDomain.Disbursement) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		if isDuplicateKey(err) {
			return disbDomain.ErrAlreadyDisbursed
		}
		return err
	}
	return nil
}

func (r *DisbursementRepository) GetByLoanID(ctx context.Context, loanID uint64) (*disbDomain.Disbursement, error) {
	var out disbDomain.Disbursement
	if err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out).Error; err != nil {
		return nil, notFound(err, disbDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *DisbursementRepository) ExistsByLoanID(ctx context.Context, loanID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&disbDomain.Disbursement{}).
		Where("loan_id = ?", loanID).
		Count(&n).Error
	return n > 0, err
}
