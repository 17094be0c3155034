//go:build integration
// +build integration

package test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	goProof "github.com/MrEthical07/goProof"
)

func newThrottleEngine(t *testing.T, rdb *redis.Client, maxAttempts int) *goProof.Engine {
	t.Helper()

	cfg := goProof.Config{
		Keys: goProof.KeysConfig{
			AzureSecret: []byte(azureSecret),
			OktaSecret:  []byte(oktaSecret),
		},
		Throttle: goProof.ThrottleConfig{
			Enabled:     true,
			RedisPrefix: "apt",
			MaxAttempts: maxAttempts,
			Window:      time.Minute,
		},
	}

	engine, err := goProof.New().WithConfig(cfg).WithRedis(rdb).Build()
	if err != nil {
		t.Fatalf("build engine failed: %v", err)
	}
	t.Cleanup(engine.Close)
	return engine
}

func TestThrottleRejectsAfterBudget(t *testing.T) {
	_, rdb := newTestRedis(t)
	engine := newThrottleEngine(t, rdb, 3)

	token, _ := azureAdminToken(t)
	ctx := goProof.WithClientIP(context.Background(), "203.0.113.9")

	for i := 0; i < 3; i++ {
		if _, err := engine.TryListApps(ctx, token); err != nil {
			t.Fatalf("attempt %d failed: %v", i, err)
		}
	}

	if _, err := engine.TryListApps(ctx, token); !errors.Is(err, goProof.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if _, err := engine.TryDeleteApp(ctx, token); !errors.Is(err, goProof.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestThrottleIsPerIP(t *testing.T) {
	_, rdb := newTestRedis(t)
	engine := newThrottleEngine(t, rdb, 1)

	token, _ := azureAdminToken(t)
	first := goProof.WithClientIP(context.Background(), "203.0.113.10")
	second := goProof.WithClientIP(context.Background(), "203.0.113.11")

	if _, err := engine.TryListApps(first, token); err != nil {
		t.Fatalf("first IP failed: %v", err)
	}
	if _, err := engine.TryListApps(first, token); !errors.Is(err, goProof.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited for exhausted IP, got %v", err)
	}
	if _, err := engine.TryListApps(second, token); err != nil {
		t.Fatalf("fresh IP must not be throttled: %v", err)
	}
}

func TestThrottleWindowExpires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	engine := newThrottleEngine(t, rdb, 1)

	token, _ := azureAdminToken(t)
	ctx := goProof.WithClientIP(context.Background(), "203.0.113.12")

	if _, err := engine.TryListApps(ctx, token); err != nil {
		t.Fatalf("first attempt failed: %v", err)
	}
	if _, err := engine.TryListApps(ctx, token); !errors.Is(err, goProof.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := engine.TryListApps(ctx, token); err != nil {
		t.Fatalf("expected budget to reset after the window, got %v", err)
	}
}

func TestThrottleMissingClientIPPasses(t *testing.T) {
	_, rdb := newTestRedis(t)
	engine := newThrottleEngine(t, rdb, 1)

	token, _ := azureAdminToken(t)

	for i := 0; i < 5; i++ {
		if _, err := engine.TryListApps(context.Background(), token); err != nil {
			t.Fatalf("attempt %d without client IP failed: %v", i, err)
		}
	}
}
