// Package prometheus provides Prometheus collectors for goProof metrics.
//
// [NewPrometheusExporter] accepts an [goProof.Engine] and exposes an [http.Handler]
// that renders all goProof counters and histograms in Prometheus text exposition format.
// Counter names are prefixed goproof_*_total; the single histogram is
// goproof_authorize_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
