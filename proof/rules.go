package proof

import "github.com/MrEthical07/goProof/prop"

// T proves trivial truth.
func T() Proof[prop.True] {
	return Axiom[prop.True]()
}

// NonContra derives, from any proof of P, that P and not-P cannot hold at
// the same time (law of non-contradiction).
func NonContra[P any](_ Proof[P]) Proof[prop.Not[prop.And[P, prop.Not[P]]]] {
	return Axiom[prop.Not[prop.And[P, prop.Not[P]]]]()
}

// And introduces a conjunction from proofs of both components.
func And[P, Q any](_ Proof[P], _ Proof[Q]) Proof[prop.And[P, Q]] {
	return Axiom[prop.And[P, Q]]()
}

// ElimL extracts the left component of a conjunction.
func ElimL[P, Q any](_ Proof[prop.And[P, Q]]) Proof[P] {
	return Axiom[P]()
}

// ElimR extracts the right component of a conjunction.
func ElimR[P, Q any](_ Proof[prop.And[P, Q]]) Proof[Q] {
	return Axiom[Q]()
}

// Elim extracts both components of a conjunction without forcing a choice.
func Elim[P, Q any](pq Proof[prop.And[P, Q]]) (Proof[P], Proof[Q]) {
	return ElimL(pq), ElimR(pq)
}

// OrL introduces a disjunction from its left side. The right disjunct is
// not inferable from the argument, so it is the leading type parameter:
//
//	proof.OrL[Q](p)
func OrL[Q, P any](_ Proof[P]) Proof[prop.Or[P, Q]] {
	return Axiom[prop.Or[P, Q]]()
}

// OrR introduces a disjunction from its right side. The left disjunct is
// the leading type parameter:
//
//	proof.OrR[P](q)
func OrR[P, Q any](_ Proof[Q]) Proof[prop.Or[P, Q]] {
	return Axiom[prop.Or[P, Q]]()
}

// OrElim eliminates a disjunction by case analysis: if R follows from P and
// R follows from Q, then R follows from P-or-Q.
//
// NEITHER closure is invoked. The system does not know at runtime which
// disjunct holds, so it cannot pick a branch to run; the result is produced
// directly as a trusted derivation. The closures exist only to force both
// derivations to type-check at R. Side effects placed in them will never
// execute.
func OrElim[P, Q, R any](
	_ Proof[prop.Or[P, Q]],
	_ func(Proof[P]) Proof[R],
	_ func(Proof[Q]) Proof[R],
) Proof[R] {
	return Axiom[R]()
}

// Implication reifies a derivation of Q from P as a standalone implication
// proof. The derivation closure is NOT invoked; it only fixes the types.
func Implication[P, Q any](_ func(Proof[P]) Proof[Q]) Proof[prop.Impl[P, Q]] {
	return Axiom[prop.Impl[P, Q]]()
}

// ModusPonens applies an implication to a proof of its antecedent.
func ModusPonens[P, Q any](_ Proof[prop.Impl[P, Q]], _ Proof[P]) Proof[Q] {
	return Axiom[Q]()
}

// IntroNot introduces a negation from a refutation: if falsehood follows
// from P, not-P holds. The refutation closure is NOT invoked; it only
// fixes the types.
func IntroNot[P any](_ func(Proof[P]) Proof[prop.False]) Proof[prop.Not[P]] {
	return Axiom[prop.Not[P]]()
}

// Absurd derives any proposition from a proof of falsehood (ex falso
// quodlibet). Reaching it means an axiom upstream was minted wrongly.
func Absurd[P any](_ Proof[prop.False]) Proof[P] {
	return Axiom[P]()
}
