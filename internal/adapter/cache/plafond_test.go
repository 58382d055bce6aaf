package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"loanflow/internal/domain/plafond"
)

func newTestCache(t *testing.T) (*PlafondCache, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewPlafondCache(rdb, 10*time.Minute), s, rdb
}

func TestPlafondCache_SetThenGet(t *testing.T) {
	c, s, _ := newTestCache(t)
	ctx := context.Background()

	if _, ok, err := c.GetList(ctx, plafond.CacheKeyActive); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	list := []plafond.Plafond{{
		ID:           1,
		MinIncome:    decimal.RequireFromString("5000000"),
		MaxAmount:    decimal.RequireFromString("50000000"),
		TenorMonth:   12,
		InterestRate: decimal.RequireFromString("1.5"),
		IsActive:     true,
	}}
	if err := c.SetList(ctx, plafond.CacheKeyActive, list); err != nil {
		t.Fatalf("SetList: %v", err)
	}
	if ttl := s.TTL("plafonds:active"); ttl != 10*time.Minute {
		t.Fatalf("ttl = %v", ttl)
	}

	got, ok, err := c.GetList(ctx, plafond.CacheKeyActive)
	if err != nil || !ok {
		t.Fatalf("GetList: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].ID != 1 || !got[0].InterestRate.Equal(decimal.RequireFromString("1.5")) {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestPlafondCache_EmptyListIsAHit(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()
	key := plafond.CacheKeyByIncome(decimal.RequireFromString("100"))

	if err := c.SetList(ctx, key, nil); err != nil {
		t.Fatal(err)
	}
	got, ok, err := c.GetList(ctx, key)
	if err != nil || !ok || len(got) != 0 {
		t.Fatalf("empty result must be cached: got=%v ok=%v err=%v", got, ok, err)
	}
}

func TestPlafondCache_InvalidateAllOnlyTouchesCatalog(t *testing.T) {
	c, s, _ := newTestCache(t)
	ctx := context.Background()

	for _, k := range []string{plafond.CacheKeyAll, plafond.CacheKeyActive, plafond.CacheKeyByIncome(decimal.NewFromInt(5000000))} {
		if err := c.SetList(ctx, k, []plafond.Plafond{{ID: 1}}); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Set("idemp:other", "keep"); err != nil {
		t.Fatal(err)
	}

	if err := c.InvalidateAll(ctx); err != nil {
		t.Fatalf("InvalidateAll: %v", err)
	}
	for _, k := range []string{"plafonds:all", "plafonds:active", "plafonds:byIncome:5000000"} {
		if s.Exists(k) {
			t.Fatalf("key %s survived invalidation", k)
		}
	}
	if !s.Exists("idemp:other") {
		t.Fatalf("unrelated key was evicted")
	}

	// Invalidating an empty cache is fine.
	if err := c.InvalidateAll(ctx); err != nil {
		t.Fatalf("second InvalidateAll: %v", err)
	}
}

func TestPlafondCache_CorruptEntryIsMiss(t *testing.T) {
	c, s, _ := newTestCache(t)
	if err := s.Set("plafonds:all", "{not json"); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.GetList(context.Background(), plafond.CacheKeyAll); ok || err != nil {
		t.Fatalf("corrupt entry: ok=%v err=%v", ok, err)
	}
}

func TestNop(t *testing.T) {
	var c plafond.Cache = Nop{}
	ctx := context.Background()
	_ = c.SetList(ctx, plafond.CacheKeyAll, []plafond.Plafond{{ID: 1}})
	if _, ok, _ := c.GetList(ctx, plafond.CacheKeyAll); ok {
		t.Fatalf("Nop must always miss")
	}
	if err := c.InvalidateAll(ctx); err != nil {
		t.Fatal(err)
	}
}
