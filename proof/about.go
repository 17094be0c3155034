package proof

import (
	"errors"
	"fmt"

	"github.com/MrEthical07/goProof/name"
)

// ErrSubjectMismatch is returned by [About.For] when a proof is presented
// against a brand other than the one it was bound to.
var ErrSubjectMismatch = errors.New("proof is not about this subject")

// About ties a proof of P to the specific branded value the proposition is
// about. It is the runtime-checked stand-in for indexing the proposition
// itself by a type-level name: without it, a proof established for one
// token could gate an operation on a different token.
//
// About values are copyable like bare proofs; the subject travels with
// every copy.
//
//	Docs: docs/proof.md
type About[P any] struct {
	subject name.Name
	proof   Proof[P]
}

// Bind attaches subject n to p. Bind is axiom-tier: pairing a proof with a
// subject asserts that the proof is about that subject, so it belongs only
// at verification boundaries and in constructors that carry a subject
// forward from an already-bound proof.
func Bind[P any](n name.Name, p Proof[P]) About[P] {
	return About[P]{subject: n, proof: p}
}

// Subject returns the brand this proof is about. A consumer constructor
// deriving a new proposition about the same value re-binds under
// Subject().
func (a About[P]) Subject() name.Name {
	return a.subject
}

// For detaches the bare proof after checking that it is about n. A zero
// subject never matches: an About that was never bound proves nothing
// about anything.
func (a About[P]) For(n name.Name) (Proof[P], error) {
	if a.subject.IsZero() || a.subject != n {
		return Proof[P]{}, ErrSubjectMismatch
	}
	return a.proof, nil
}

// MustFor is [For] with a fail-fast panic. A subject mismatch at a gated
// operation means a proof was forged or swapped between unrelated values —
// a programmer error, not a recoverable condition.
func (a About[P]) MustFor(n name.Name) Proof[P] {
	p, err := a.For(n)
	if err != nil {
		panic(fmt.Sprintf("proof: %v", err))
	}
	return p
}
