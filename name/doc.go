// Package name implements unique value branding: an opaque, unforgeable
// [Name] minted per dynamic invocation of [With], paired with an arbitrary
// value as a [Named]. A brand ties later assertions ("this token passed
// verification") to one specific runtime instance rather than to any value
// that happens to be structurally equal.
//
// Go has no invariant lifetime parameters, so brand distinctness cannot be
// enforced purely at compile time the way the classic "ghosts of departed
// proofs" encoding does. Instead every [With] call mints an id from a
// process-wide generation counter, and the trust boundary (proof.About)
// checks the id on every use, failing fast on mismatch. Two calls to [With]
// always produce distinct brands, even nested calls or iterations of the
// same loop body with identical values.
//
// # Architecture boundaries
//
// This package is a pure in-memory mechanism with no I/O and no
// dependencies outside the standard library.
//
// # What this package must NOT do
//
//   - Export a way to construct or alter a [Name] outside of [With].
//   - Access the network, clocks, or any store.
//   - Import goProof, proof, or prop (no import cycles).
package name
