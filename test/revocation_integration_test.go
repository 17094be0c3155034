//go:build integration
// +build integration

package test

import (
	"context"
	"errors"
	"testing"
	"time"

	goProof "github.com/MrEthical07/goProof"
)

func TestRevokedTokenFailsBothOperations(t *testing.T) {
	_, rdb := newTestRedis(t)
	engine := newRevocationEngine(t, rdb, false)
	ctx := context.Background()

	token, jti := azureAdminToken(t)

	if _, err := engine.TryListApps(ctx, token); err != nil {
		t.Fatalf("list before revocation failed: %v", err)
	}
	if _, err := engine.TryDeleteApp(ctx, token); err != nil {
		t.Fatalf("delete before revocation failed: %v", err)
	}

	if err := engine.RevokeToken(ctx, jti, time.Hour); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	if _, err := engine.TryListApps(ctx, token); !errors.Is(err, goProof.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked from list, got %v", err)
	}
	if _, err := engine.TryDeleteApp(ctx, token); !errors.Is(err, goProof.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked from delete, got %v", err)
	}
}

func TestRevocationEntryExpires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	engine := newRevocationEngine(t, rdb, false)
	ctx := context.Background()

	token, jti := oktaToken(t)

	if err := engine.RevokeToken(ctx, jti, time.Minute); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if _, err := engine.TryListApps(ctx, token); !errors.Is(err, goProof.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := engine.TryListApps(ctx, token); err != nil {
		t.Fatalf("expected token to verify after denylist expiry, got %v", err)
	}
}

func TestRevocationOnlyHitsTheRevokedToken(t *testing.T) {
	_, rdb := newTestRedis(t)
	engine := newRevocationEngine(t, rdb, false)
	ctx := context.Background()

	revokedToken, revokedJTI := azureAdminToken(t)
	otherToken, _ := azureAdminToken(t)

	if err := engine.RevokeToken(ctx, revokedJTI, time.Hour); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	if _, err := engine.TryListApps(ctx, revokedToken); !errors.Is(err, goProof.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
	if _, err := engine.TryListApps(ctx, otherToken); err != nil {
		t.Fatalf("unrevoked token must still verify: %v", err)
	}
}

func TestRevocationBackendDownFailOpen(t *testing.T) {
	mr, rdb := newTestRedis(t)
	engine := newRevocationEngine(t, rdb, false)
	ctx := context.Background()

	token, _ := azureAdminToken(t)
	mr.Close()

	if _, err := engine.TryListApps(ctx, token); err != nil {
		t.Fatalf("fail-open engine must let the token through, got %v", err)
	}
}

func TestRevocationBackendDownFailClosed(t *testing.T) {
	mr, rdb := newTestRedis(t)
	engine := newRevocationEngine(t, rdb, true)
	ctx := context.Background()

	token, _ := azureAdminToken(t)
	mr.Close()

	if _, err := engine.TryListApps(ctx, token); !errors.Is(err, goProof.ErrRevocationUnavailable) {
		t.Fatalf("expected ErrRevocationUnavailable, got %v", err)
	}
	if _, err := engine.TryDeleteApp(ctx, token); !errors.Is(err, goProof.ErrRevocationUnavailable) {
		t.Fatalf("expected ErrRevocationUnavailable, got %v", err)
	}
}

func TestRevokeWithDisabledRevocation(t *testing.T) {
	cfg := goProof.Config{
		Keys: goProof.KeysConfig{
			AzureSecret: []byte(azureSecret),
			OktaSecret:  []byte(oktaSecret),
		},
	}
	engine, err := goProof.New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("build engine failed: %v", err)
	}
	t.Cleanup(engine.Close)

	if err := engine.RevokeToken(context.Background(), "some-jti", time.Hour); !errors.Is(err, goProof.ErrRevocationDisabled) {
		t.Fatalf("expected ErrRevocationDisabled, got %v", err)
	}
}
