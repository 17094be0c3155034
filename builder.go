package goProof

import (
	"errors"

	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by goProof APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config    Config
	redis     *redis.Client
	auditSink AuditSink

	built bool
}

// New starts an engine builder with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithRedis attaches the Redis client backing the revocation denylist.
// Required when revocation is enabled, ignored otherwise.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithAuditSink attaches the sink receiving authorization decisions.
// Ignored unless auditing is enabled.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// Build validates the configuration and assembles the [Engine].
//
// Build may return an error when input validation, dependency calls, or security checks fail.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	if err := validateConfig(b.config); err != nil {
		return nil, err
	}
	if b.config.Revocation.Enabled && b.redis == nil {
		return nil, errors.New("revocation requires a redis client")
	}
	if b.config.Throttle.Enabled && b.redis == nil {
		return nil, errors.New("throttle requires a redis client")
	}

	azureKey, err := NewKey[Azure](b.config.Keys.AzureSecret, b.config.Keys.Leeway)
	if err != nil {
		return nil, err
	}
	oktaKey, err := NewKey[Okta](b.config.Keys.OktaSecret, b.config.Keys.Leeway)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		config:   b.config,
		azureKey: azureKey,
		oktaKey:  oktaKey,
		metrics:  NewMetrics(b.config.Metrics),
		audit:    newAuditDispatcher(b.config.Audit, b.auditSink),
	}
	if b.config.Revocation.Enabled {
		e.revocation = newRevocationStore(b.redis, b.config.Revocation.RedisPrefix)
	}
	if b.config.Throttle.Enabled {
		e.throttle = newAttemptLimiter(b.redis, b.config.Throttle)
	}

	b.built = true
	return e, nil
}
