package plafond

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"loanflow/internal/domain/apperr"
	domain "loanflow/internal/domain/plafond"
)

// Usecase manages the plafond catalog. Reads go through the cache when one
// is configured; every write evicts all cached views.
type Usecase struct {
	repo  domain.Repository
	cache domain.Cache
	log   *slog.Logger
	now   func() time.Time
}

func NewUsecase(r domain.Repository, c domain.Cache, log *slog.Logger) *Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Usecase{repo: r, cache: c, log: log, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) ListAll(ctx context.Context) ([]domain.Plafond, error) {
	return u.cached(ctx, domain.CacheKeyAll, u.repo.ListAll)
}

func (u *Usecase) ListActive(ctx context.Context) ([]domain.Plafond, error) {
	return u.cached(ctx, domain.CacheKeyActive, u.repo.ListActive)
}

// ListByIncome returns the eligible set for a monthly income.
func (u *Usecase) ListByIncome(ctx context.Context, income decimal.Decimal) ([]domain.Plafond, error) {
	return u.cached(ctx, domain.CacheKeyByIncome(income), func(ctx context.Context) ([]domain.Plafond, error) {
		return u.repo.ListByIncome(ctx, income)
	})
}

func (u *Usecase) ListByTenor(ctx context.Context, tenor int) ([]domain.Plafond, error) {
	return u.repo.ListByTenor(ctx, tenor)
}

// Get resolves a plafond by id, including soft-deleted rows.
func (u *Usecase) Get(ctx context.Context, id uint64) (*domain.Plafond, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *Usecase) Create(ctx context.Context, in RuleInput) (*domain.Plafond, error) {
	rule := in.rule()
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if err := u.ensureUnique(ctx, rule, 0); err != nil {
		return nil, err
	}

	p := &domain.Plafond{IsActive: true}
	rule.Apply(p)
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	u.evict(ctx)
	u.log.Info("plafond created", "plafond_id", p.ID, "tenor_month", p.TenorMonth)
	return p, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in RuleInput) (*domain.Plafond, error) {
	p, err := u.live(ctx, id)
	if err != nil {
		return nil, err
	}
	rule := in.rule()
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if err := u.ensureUnique(ctx, rule, id); err != nil {
		return nil, err
	}

	rule.Apply(p)
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	u.evict(ctx)
	u.log.Info("plafond updated", "plafond_id", p.ID)
	return p, nil
}

// Toggle flips the active flag of a non-deleted plafond.
func (u *Usecase) Toggle(ctx context.Context, id uint64) (*domain.Plafond, error) {
	p, err := u.live(ctx, id)
	if err != nil {
		return nil, err
	}
	p.IsActive = !p.IsActive
	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	u.evict(ctx)
	u.log.Info("plafond toggled", "plafond_id", p.ID, "is_active", p.IsActive)
	return p, nil
}

// Delete soft-deletes a plafond. Loans already bound to it keep their frozen terms.
func (u *Usecase) Delete(ctx context.Context, id, actorID uint64) error {
	p, err := u.live(ctx, id)
	if err != nil {
		return err
	}
	p.SoftDelete(actorID, u.now())
	if err := u.repo.Save(ctx, p); err != nil {
		return err
	}
	u.evict(ctx)
	u.log.Info("plafond deleted", "plafond_id", p.ID, "actor_id", actorID)
	return nil
}

func (u *Usecase) Restore(ctx context.Context, id uint64) (*domain.Plafond, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Restore(); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	u.evict(ctx)
	u.log.Info("plafond restored", "plafond_id", p.ID)
	return p, nil
}

// live loads a plafond that has not been soft-deleted.
func (u *Usecase) live(ctx context.Context, id uint64) (*domain.Plafond, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsDeleted {
		return nil, apperr.Newf(apperr.KindNotFound, "plafond not found with id: %d", id)
	}
	return p, nil
}

func (u *Usecase) ensureUnique(ctx context.Context, r domain.Rule, excludeID uint64) error {
	dup, err := u.repo.ExistsRule(ctx, r, excludeID)
	if err != nil {
		return err
	}
	if dup {
		return domain.ErrDuplicate
	}
	return nil
}

// cached serves key from the cache, falling back to load on a miss or a cache
// failure. Cache errors are logged and never reach the caller.
func (u *Usecase) cached(ctx context.Context, key string, load func(context.Context) ([]domain.Plafond, error)) ([]domain.Plafond, error) {
	if u.cache != nil {
		list, ok, err := u.cache.GetList(ctx, key)
		if err != nil {
			u.log.Warn("plafond cache read failed", "key", key, "error", err)
		} else if ok {
			return list, nil
		}
	}

	list, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Plafond{}
	}
	if u.cache != nil {
		if err := u.cache.SetList(ctx, key, list); err != nil {
			u.log.Warn("plafond cache write failed", "key", key, "error", err)
		}
	}
	return list, nil
}

func (u *Usecase) evict(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateAll(ctx); err != nil {
		u.log.Error("plafond cache eviction failed", "error", err)
	}
}

func (in RuleInput) rule() domain.Rule {
	return domain.Rule{
		MinIncome:    in.MinIncome,
		MaxAmount:    in.MaxAmount,
		TenorMonth:   in.TenorMonth,
		InterestRate: in.InterestRate,
	}
}
