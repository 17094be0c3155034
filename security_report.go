package goProof

import "time"

// SecurityReport summarizes the engine's effective security posture for
// operators and startup logging. It carries no secrets.
type SecurityReport struct {
	SigningAlgorithm  string
	Leeway            time.Duration
	RevocationEnabled bool
	RevocationClosed  bool
	ThrottleActive    bool
	ThrottleBudget    int
	AuditEnabled      bool
	MetricsEnabled    bool
	LatencyHistograms bool
}

// SecurityReport reports the configuration the engine was built with.
func (e *Engine) SecurityReport() SecurityReport {
	if e == nil {
		return SecurityReport{}
	}

	return SecurityReport{
		SigningAlgorithm:  "HS256",
		Leeway:            e.config.Keys.Leeway,
		RevocationEnabled: e.revocation != nil,
		RevocationClosed:  e.revocation != nil && e.config.Revocation.FailClosed,
		ThrottleActive:    e.throttle != nil,
		ThrottleBudget:    e.config.Throttle.MaxAttempts,
		AuditEnabled:      e.audit != nil,
		MetricsEnabled:    e.metrics.Enabled(),
		LatencyHistograms: e.metrics.Enabled() && e.config.Metrics.EnableLatencyHistograms,
	}
}
