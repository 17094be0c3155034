package goProof

import (
	"strings"
	"testing"
	"time"
)

func TestConfigValidateRequiresBothSecrets(t *testing.T) {
	cfg := testConfig()
	cfg.Keys.AzureSecret = nil

	if err := validateConfig(cfg); err == nil || !strings.Contains(err.Error(), "azure") {
		t.Fatalf("expected azure secret rejection, got %v", err)
	}

	cfg = testConfig()
	cfg.Keys.OktaSecret = nil

	if err := validateConfig(cfg); err == nil || !strings.Contains(err.Error(), "okta") {
		t.Fatalf("expected okta secret rejection, got %v", err)
	}
}

func TestConfigValidateLeewayBounds(t *testing.T) {
	cfg := testConfig()
	cfg.Keys.Leeway = -time.Second

	if err := validateConfig(cfg); err == nil {
		t.Fatal("expected negative leeway rejection")
	}

	cfg.Keys.Leeway = 5 * time.Minute
	if err := validateConfig(cfg); err == nil {
		t.Fatal("expected oversized leeway rejection")
	}

	cfg.Keys.Leeway = 30 * time.Second
	if err := validateConfig(cfg); err != nil {
		t.Fatalf("expected 30s leeway to validate, got %v", err)
	}
}

func TestConfigValidateRevocationNeedsPrefix(t *testing.T) {
	cfg := testConfig()
	cfg.Revocation.Enabled = true
	cfg.Revocation.RedisPrefix = ""

	if err := validateConfig(cfg); err == nil || !strings.Contains(err.Error(), "prefix") {
		t.Fatalf("expected prefix rejection, got %v", err)
	}
}

func TestBuilderRevocationEnabledWithoutRedisFails(t *testing.T) {
	cfg := testConfig()
	cfg.Revocation.Enabled = true

	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Fatal("expected Build to fail without a redis client")
	}
}

func TestBuilderRejectsReuse(t *testing.T) {
	b := New().WithConfig(testConfig())

	engine, err := b.Build()
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	if _, err := b.Build(); err == nil {
		t.Fatal("expected second Build on the same builder to fail")
	}
}

func TestBuilderDefaultsApplied(t *testing.T) {
	engine, err := New().WithConfig(testConfig()).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	if !engine.metrics.Enabled() {
		t.Fatal("expected metrics enabled by default")
	}
	if engine.revocation != nil {
		t.Fatal("expected revocation disabled by default")
	}
}
