package goProof

import (
	"errors"
	"time"
)

// Config defines a public type used by goProof APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Keys       KeysConfig
	Revocation RevocationConfig
	Throttle   ThrottleConfig
	Audit      AuditConfig
	Metrics    MetricsConfig
}

// KeysConfig defines a public type used by goProof APIs.
//
// KeysConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type KeysConfig struct {
	AzureSecret []byte
	OktaSecret  []byte
	Leeway      time.Duration
}

// RevocationConfig defines a public type used by goProof APIs.
//
// Revocation is consulted at the trust boundary, before any proof is
// minted. A proof already issued is never invalidated; see docs/engine.md.
//
// RevocationConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RevocationConfig struct {
	Enabled     bool
	RedisPrefix string
	// FailClosed rejects tokens when the revocation backend is
	// unreachable instead of letting them through unchecked.
	FailClosed bool
}

// ThrottleConfig defines a public type used by goProof APIs.
//
// The throttle counts authorization attempts per client IP in a Redis
// window. It is advisory: a missing client IP or an unreachable backend
// passes attempts unthrottled.
//
// ThrottleConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ThrottleConfig struct {
	Enabled     bool
	RedisPrefix string
	MaxAttempts int
	Window      time.Duration
}

// AuditConfig defines a public type used by goProof APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by goProof APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		Revocation: RevocationConfig{RedisPrefix: "apr"},
		Throttle:   ThrottleConfig{RedisPrefix: "apt", MaxAttempts: 100, Window: time.Minute},
		Audit:      AuditConfig{BufferSize: 256, DropIfFull: true},
		Metrics:    MetricsConfig{Enabled: true},
	}
}

func validateConfig(cfg Config) error {
	if len(cfg.Keys.AzureSecret) == 0 {
		return errors.New("azure verification secret is required")
	}
	if len(cfg.Keys.OktaSecret) == 0 {
		return errors.New("okta verification secret is required")
	}
	if cfg.Keys.Leeway < 0 || cfg.Keys.Leeway > 2*time.Minute {
		return errors.New("invalid leeway configuration")
	}
	if cfg.Revocation.Enabled && cfg.Revocation.RedisPrefix == "" {
		return errors.New("revocation requires a redis prefix")
	}
	if cfg.Throttle.Enabled {
		if cfg.Throttle.RedisPrefix == "" {
			return errors.New("throttle requires a redis prefix")
		}
		if cfg.Throttle.MaxAttempts <= 0 || cfg.Throttle.Window <= 0 {
			return errors.New("invalid throttle window configuration")
		}
	}
	if cfg.Audit.Enabled && cfg.Audit.BufferSize < 0 {
		return errors.New("invalid audit buffer size")
	}
	return nil
}
