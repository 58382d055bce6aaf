package mysql

import (
	"context"

	plafondDomain "loanflow/internal/domain/plafond"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PlafondRepository struct{ db *gorm.DB }

func NewPlafondRepository(db *gorm.DB) *PlafondRepository { return &PlafondRepository{db: db} }

func (r *PlafondRepository) Create(ctx context.Context, p *plafondDomain.Plafond) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PlafondRepository) Save(ctx context.Context, p *plafondDomain.Plafond) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PlafondRepository) GetByID(ctx context.Context, id uint64) (*plafondDomain.Plafond, error) {
	var out plafondDomain.Plafond
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, notFound(err, plafondDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *PlafondRepository) ListAll(ctx context.Context) ([]plafondDomain.Plafond, error) {
	var out []plafondDomain.Plafond
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("min_income ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *PlafondRepository) ListActive(ctx context.Context) ([]plafondDomain.Plafond, error) {
	var out []plafondDomain.Plafond
	err := r.matchable(ctx).
		Order("min_income ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *PlafondRepository) ListByIncome(ctx context.Context, income decimal.Decimal) ([]plafondDomain.Plafond, error) {
	var out []plafondDomain.Plafond
	err := r.matchable(ctx).
		Where("min_income <= ?", income).
		Order("min_income ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *PlafondRepository) ListByTenor(ctx context.Context, tenor int) ([]plafondDomain.Plafond, error) {
	var out []plafondDomain.Plafond
	err := r.matchable(ctx).
		Where("tenor_month = ?", tenor).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// ExistsRule counts soft-deleted rows as well: a deleted rule is restored, not recreated.
func (r *PlafondRepository) ExistsRule(ctx context.Context, rule plafondDomain.Rule, excludeID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&plafondDomain.Plafond{}).
		Where("min_income = ? AND max_amount = ? AND tenor_month = ? AND id <> ?",
			rule.MinIncome, rule.MaxAmount, rule.TenorMonth, excludeID).
		Count(&n).Error
	return n > 0, err
}

func (r *PlafondRepository) matchable(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Where("is_active = ? AND is_deleted = ?", true, false)
}
