// Package middleware exposes HTTP middleware adapters that gate routes on
// goProof.Engine authorization decisions.
//
// # Guards
//
//   - [Guard] — requires an arbitrary [goProof.Permission].
//   - [RequireViewApps] — requires the view-apps permission.
//   - [RequireDeleteApp] — requires the delete-app permission.
//
// Each guard reads the Authorization bearer token, calls Engine.Authorize,
// and injects the granted [goProof.Decision] into the request context.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Engine calls. It does NOT
// run the proof flows itself — all decisions are delegated to
// Engine.Authorize, and no proof value ever crosses into handler code (a
// proof is only valid inside the naming extent it was minted in).
//
// # What this package must NOT do
//
//   - Parse or create JWTs directly (delegates to Engine).
//   - Access Redis (Engine handles I/O).
//   - Make authorization decisions beyond pass/reject from Engine.Authorize.
package middleware
