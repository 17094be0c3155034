package internaldefs

import (
	goProof "github.com/MrEthical07/goProof"
)

// CounterDef defines a public type used by goProof APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goProof.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goProof APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goProof.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the authorization engine.
var CounterDefs = []CounterDef{
	{ID: goProof.MetricVerifySuccess, Name: "goproof_verify_success_total", Help: "Token verifications that minted a proof."},
	{ID: goProof.MetricVerifyFailure, Name: "goproof_verify_failure_total", Help: "Token verifications rejected before any proof was minted."},
	{ID: goProof.MetricRoleDenied, Name: "goproof_role_denied_total", Help: "Verified tokens denied for a missing role claim."},
	{ID: goProof.MetricTokenRevoked, Name: "goproof_token_revoked_total", Help: "Verifications rejected by the revocation denylist."},
	{ID: goProof.MetricRevocationUnavailable, Name: "goproof_revocation_unavailable_total", Help: "Revocation lookups that failed against the backend."},
	{ID: goProof.MetricListAppsGranted, Name: "goproof_list_apps_granted_total", Help: "Granted list-apps decisions."},
	{ID: goProof.MetricListAppsDenied, Name: "goproof_list_apps_denied_total", Help: "Denied list-apps decisions."},
	{ID: goProof.MetricDeleteAppGranted, Name: "goproof_delete_app_granted_total", Help: "Granted delete-app decisions."},
	{ID: goProof.MetricDeleteAppDenied, Name: "goproof_delete_app_denied_total", Help: "Denied delete-app decisions."},
	{ID: goProof.MetricRateLimited, Name: "goproof_rate_limited_total", Help: "Authorization attempts rejected by the per-IP throttle."},
}

// HistogramDefs is an exported constant or variable used by the authorization engine.
var HistogramDefs = []HistogramDef{
	{ID: goProof.MetricAuthorizeLatency, Name: "goproof_authorize_latency_seconds", Help: "Authorization decision latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the authorization engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the authorization engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw snapshot slice to the fixed
// bucket count.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the running totals the
// exposition formats require.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
