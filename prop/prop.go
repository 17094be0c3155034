// Package prop defines the proposition shapes the proof system can hold
// witnesses of. Every type here is a phantom marker: it is never
// instantiated at runtime and exists only to index [proof.Proof].
//
// Consumers define their own domain propositions the same way — zero-size
// marker structs, optionally generic over further markers (an issuer, a
// role) so the type system keeps unrelated facts apart.
//
// # What this package must NOT do
//
//   - Declare methods, state, or constructors on any shape.
//   - Import proof, name, or goProof (no import cycles).
package prop

// True is the trivially provable proposition.
type True struct{}

// False is the unprovable proposition; a proof of it marks a contradiction.
type False struct{}

// And is the conjunction of P and Q.
type And[P, Q any] struct{}

// Or is the disjunction of P and Q. Which disjunct holds is not tracked at
// runtime; see proof.OrElim.
type Or[P, Q any] struct{}

// Not is the negation of P.
type Not[P any] struct{}

// Impl is the implication from P to Q.
type Impl[P, Q any] struct{}
