package goProof

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/MrEthical07/goProof/name"
	"github.com/MrEthical07/goProof/proof"
	"github.com/MrEthical07/goProof/prop"
)

// Engine defines a public type used by goProof APIs.
//
// Engine runs the proof-carrying authorization flows: each entry point
// brands the raw token string, pushes it through the verification trust
// boundary, derives the required permission proof, and only then calls the
// gated operation. The gated operations themselves are public and demand
// the proofs in their signatures, so they cannot be reached any other way.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config     Config
	azureKey   Key[Azure]
	oktaKey    Key[Okta]
	revocation *revocationStore
	throttle   *attemptLimiter
	metrics    *Metrics
	audit      *auditDispatcher
	closed     atomic.Bool
}

// Decision describes a granted authorization for callers that only need
// the verdict, such as the HTTP middleware.
type Decision struct {
	DecisionID string
	Permission Permission
	Issuer     string
	TokenID    string
}

// TryListApps verifies the token against both configured issuers, derives
// a [CanViewApps] proof from the issuance disjunction, and lists the apps.
//
// TryListApps may return an error when input validation, dependency calls, or security checks fail.
// TryListApps does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) TryListApps(ctx context.Context, tokenStr string) ([]string, error) {
	if e == nil || e.closed.Load() {
		return nil, ErrEngineClosed
	}
	if err := e.checkThrottle(ctx); err != nil {
		e.auditDecision(ctx, PermViewApps, TokenOf{}, err)
		return nil, err
	}
	start := time.Now()
	defer func() { e.metrics.Observe(MetricAuthorizeLatency, time.Since(start)) }()

	return name.WithErr(tokenStr, func(tok name.Named[string]) ([]string, error) {
		t, issued, err := e.verifyEither(ctx, tok)
		if err != nil {
			e.recordDenial(err)
			e.metrics.Inc(MetricListAppsDenied)
			e.auditDecision(ctx, PermViewApps, t, err)
			return nil, err
		}
		e.metrics.Inc(MetricVerifySuccess)

		can := CanViewAppsFrom(issued)
		apps := e.ListApps(t, can)

		e.metrics.Inc(MetricListAppsGranted)
		e.auditDecision(ctx, PermViewApps, t, nil)
		return apps, nil
	})
}

// TryDeleteApp verifies the token, establishes the admin role in the
// issuer's claim shape, derives a [CanDeleteApp] proof, and deletes the
// app.
//
// TryDeleteApp may return an error when input validation, dependency calls, or security checks fail.
// TryDeleteApp does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) TryDeleteApp(ctx context.Context, tokenStr string) (string, error) {
	if e == nil || e.closed.Load() {
		return "", ErrEngineClosed
	}
	if err := e.checkThrottle(ctx); err != nil {
		e.auditDecision(ctx, PermDeleteApp, TokenOf{}, err)
		return "", err
	}
	start := time.Now()
	defer func() { e.metrics.Observe(MetricAuthorizeLatency, time.Since(start)) }()

	return name.WithErr(tokenStr, func(tok name.Named[string]) (string, error) {
		t, can, err := e.deleteProof(ctx, tok)
		if err != nil {
			e.recordDenial(err)
			e.metrics.Inc(MetricDeleteAppDenied)
			e.auditDecision(ctx, PermDeleteApp, t, err)
			return "", err
		}
		e.metrics.Inc(MetricVerifySuccess)

		result := e.DeleteApp(t, can)

		e.metrics.Inc(MetricDeleteAppGranted)
		e.auditDecision(ctx, PermDeleteApp, t, nil)
		return result, nil
	})
}

// Authorize runs the proof flow for perm and reports the verdict without
// executing the gated operation. The HTTP middleware guards are built on
// it.
//
// Authorize may return an error when input validation, dependency calls, or security checks fail.
// Authorize does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Authorize(ctx context.Context, tokenStr string, perm Permission) (*Decision, error) {
	if e == nil || e.closed.Load() {
		return nil, ErrEngineClosed
	}
	if err := e.checkThrottle(ctx); err != nil {
		e.auditDecision(ctx, perm, TokenOf{}, err)
		return nil, err
	}
	start := time.Now()
	defer func() { e.metrics.Observe(MetricAuthorizeLatency, time.Since(start)) }()

	return name.WithErr(tokenStr, func(tok name.Named[string]) (*Decision, error) {
		var t TokenOf
		var err error

		switch perm {
		case PermViewApps:
			var issued proof.About[prop.Or[IssuedBy[Azure], IssuedBy[Okta]]]
			t, issued, err = e.verifyEither(ctx, tok)
			if err == nil {
				CanViewAppsFrom(issued).MustFor(t.Name())
			}
		case PermDeleteApp:
			var can proof.About[CanDeleteApp]
			t, can, err = e.deleteProof(ctx, tok)
			if err == nil {
				can.MustFor(t.Name())
			}
		default:
			return nil, ErrUnknownPermission
		}

		if err != nil {
			e.recordDenial(err)
			e.auditDecision(ctx, perm, t, err)
			return nil, err
		}
		e.metrics.Inc(MetricVerifySuccess)
		e.auditDecision(ctx, perm, t, nil)

		return &Decision{
			DecisionID: uuid.NewString(),
			Permission: perm,
			Issuer:     t.issuer(),
			TokenID:    t.ID(),
		}, nil
	})
}

// ListApps is the gated listing operation. The proof parameter is the
// authorization: it can only be produced by [CanViewAppsFrom] over a
// verified issuance proof, and it must be about this exact token.
func (e *Engine) ListApps(t TokenOf, can proof.About[CanViewApps]) []string {
	can.MustFor(t.Name())
	return []string{"app1", "app2"}
}

// DeleteApp is the gated deletion operation, demanding a [CanDeleteApp]
// proof about this exact token.
func (e *Engine) DeleteApp(t TokenOf, can proof.About[CanDeleteApp]) string {
	can.MustFor(t.Name())
	return "Nuke it to the ground"
}

// RevokeToken denylists a token id ("jti") for ttl. Tokens carrying it
// fail verification with [ErrTokenRevoked] until the entry expires.
// Proofs minted before the revocation are unaffected; see docs/engine.md.
//
// RevokeToken may return an error when input validation, dependency calls, or security checks fail.
func (e *Engine) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if e == nil || e.closed.Load() {
		return ErrEngineClosed
	}
	if e.revocation == nil {
		return ErrRevocationDisabled
	}
	if tokenID == "" {
		return errors.New("empty token id")
	}
	return e.revocation.Revoke(ctx, tokenID, ttl)
}

// MetricsSnapshot returns a copy of the engine metrics, for the exporters
// under metrics/export.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}, Histograms: map[MetricID][]uint64{}}
	}
	return e.metrics.Snapshot()
}

// AuditDropped reports audit events lost to dispatcher backpressure.
func (e *Engine) AuditDropped() uint64 {
	if e == nil {
		return 0
	}
	return e.audit.Dropped()
}

// Close drains the audit dispatcher and rejects further operations.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.closed.CompareAndSwap(false, true) {
		e.audit.Close()
	}
}

// verifyIssuer is the revocation-aware verification step. When the token
// turns out to be revoked the freshly minted issuance proof is discarded
// here and never escapes the boundary.
func verifyIssuer[I Issuer](ctx context.Context, e *Engine, key Key[I], tok name.Named[string]) (TokenOf, proof.About[IssuedBy[I]], error) {
	t, p, err := VerifyToken(key, tok)
	if err != nil {
		return TokenOf{}, proof.About[IssuedBy[I]]{}, err
	}
	if err := e.checkRevocation(ctx, t); err != nil {
		return t, proof.About[IssuedBy[I]]{}, err
	}
	return t, p, nil
}

func (e *Engine) checkThrottle(ctx context.Context) error {
	if e.throttle == nil {
		return nil
	}
	if err := e.throttle.Enforce(ctx, clientIPFromContext(ctx)); err != nil {
		e.metrics.Inc(MetricRateLimited)
		return err
	}
	return nil
}

func (e *Engine) checkRevocation(ctx context.Context, t TokenOf) error {
	if e.revocation == nil {
		return nil
	}
	id := t.ID()
	if id == "" {
		// Tokens without a jti cannot be revoked individually.
		return nil
	}

	revoked, err := e.revocation.IsRevoked(ctx, id)
	if err != nil {
		if e.config.Revocation.FailClosed {
			return err
		}
		return nil
	}
	if revoked {
		return ErrTokenRevoked
	}
	return nil
}

// verifyEither tries Azure first, then Okta, and lifts whichever issuance
// proof it obtains into the disjunction [CanViewAppsFrom] requires.
func (e *Engine) verifyEither(ctx context.Context, tok name.Named[string]) (TokenOf, proof.About[prop.Or[IssuedBy[Azure], IssuedBy[Okta]]], error) {
	t, azure, err := verifyIssuer(ctx, e, e.azureKey, tok)
	if err == nil {
		p := azure.MustFor(tok.Name())
		return t, proof.Bind(tok.Name(), proof.OrL[IssuedBy[Okta]](p)), nil
	}
	if errors.Is(err, ErrTokenRevoked) || errors.Is(err, ErrRevocationUnavailable) {
		return t, proof.About[prop.Or[IssuedBy[Azure], IssuedBy[Okta]]]{}, err
	}

	t, okta, err := verifyIssuer(ctx, e, e.oktaKey, tok)
	if err != nil {
		return t, proof.About[prop.Or[IssuedBy[Azure], IssuedBy[Okta]]]{}, err
	}
	p := okta.MustFor(tok.Name())
	return t, proof.Bind(tok.Name(), proof.OrR[IssuedBy[Azure]](p)), nil
}

// deleteProof establishes the admin role under whichever issuer verified
// the token. A token that verifies but lacks the role fails with
// [ErrNoRole]; a token neither issuer accepts fails with
// [ErrTokenInvalid].
func (e *Engine) deleteProof(ctx context.Context, tok name.Named[string]) (TokenOf, proof.About[CanDeleteApp], error) {
	t, azure, err := verifyIssuer(ctx, e, e.azureKey, tok)
	if err == nil {
		hasAdmin, roleErr := HasAzureRole(t, Admin{}, azure)
		if roleErr != nil {
			return t, proof.About[CanDeleteApp]{}, roleErr
		}
		return t, CanDeleteAppFrom(hasAdmin), nil
	}
	if errors.Is(err, ErrTokenRevoked) || errors.Is(err, ErrRevocationUnavailable) {
		return t, proof.About[CanDeleteApp]{}, err
	}

	t, okta, err := verifyIssuer(ctx, e, e.oktaKey, tok)
	if err != nil {
		return t, proof.About[CanDeleteApp]{}, err
	}
	hasAdmin, roleErr := HasOktaRole(t, Admin{}, okta)
	if roleErr != nil {
		return t, proof.About[CanDeleteApp]{}, roleErr
	}
	return t, CanDeleteAppFrom(hasAdmin), nil
}

func (e *Engine) recordDenial(err error) {
	switch {
	case errors.Is(err, ErrNoRole):
		e.metrics.Inc(MetricRoleDenied)
	case errors.Is(err, ErrTokenRevoked):
		e.metrics.Inc(MetricTokenRevoked)
	case errors.Is(err, ErrRevocationUnavailable):
		e.metrics.Inc(MetricRevocationUnavailable)
	default:
		e.metrics.Inc(MetricVerifyFailure)
	}
}

func (e *Engine) auditDecision(ctx context.Context, perm Permission, t TokenOf, decisionErr error) {
	if e.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp:  time.Now(),
		DecisionID: uuid.NewString(),
		Permission: perm.String(),
		IP:         clientIPFromContext(ctx),
		Success:    decisionErr == nil,
	}
	if decisionErr != nil {
		event.Error = decisionErr.Error()
	}
	if t.claims != nil {
		event.TokenID = t.ID()
		event.Issuer = t.issuer()
	}

	e.audit.Emit(ctx, event)
}

func (t TokenOf) issuer() string {
	iss, _ := t.claims["iss"].(string)
	return iss
}
