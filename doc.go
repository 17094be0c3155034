// Package goProof provides proof-carrying authorization: business
// operations take compile-time proof tokens as parameters, so calling them
// without having performed the corresponding runtime check is a type error,
// not a missing if-statement.
//
// The proof machinery lives in the leaf packages name, prop, and proof.
// This package is the worked consumer: a JWT authorization [Engine] that
// verifies tokens from configured issuers (Azure, Okta), mints proofs like
// [IssuedBy] and [HasRole] only after the checks succeed, derives
// permissions ([CanViewApps], [CanDeleteApp]) through the propositional
// combinators, and gates the sensitive operations on those proofs.
//
// The package is designed for concurrent server workloads: Engine methods
// are safe to call from multiple goroutines after construction through
// [New] or [Builder.Build].
//
// # Architecture boundaries
//
// goProof is the public surface. It exposes [Engine], [Builder], [Config],
// the proposition markers, and the verification functions that mint proofs.
// The proof core under name/, prop/, and proof/ never imports this package.
//
// # What this package must NOT do
//
//   - Mint a proof on any path that did not perform the claimed check.
//     proof.Axiom and proof.Bind appear only in verification functions and
//     in permission constructors that carry a subject forward.
//   - Expose Redis clients or revocation encoding details in its public API.
//   - Let a proof outlive the name.With extent it was minted in.
//
// # Performance contract
//
// Proof bookkeeping is free: every Proof is zero-size and every combinator
// is a no-op. The runtime cost of an authorization decision is one JWT
// parse plus, when revocation is enabled, one Redis round-trip.
package goProof
