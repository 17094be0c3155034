// Package proof implements zero-size proof tokens over the proposition
// shapes in package prop, plus the checked [About] wrapper that ties a
// proof to one specific branded value from package name.
//
// A [Proof] carries no runtime data: constructing, copying, and combining
// proofs costs nothing and never fails. All inference rules are total. The
// single trusted primitive is [Axiom]; every rule funnels through it.
//
// # Trust model
//
// The proof system makes no runtime correctness guarantee by itself.
// [Axiom] is public, exactly as in the classic "ghosts of departed proofs"
// construction, because boundary code must be able to mint a proof after
// performing a real check. Calling it without having performed the claimed
// check is a soundness bug, not a runtime error. Go additionally permits
// constructing the zero value of any struct, so a Proof can be forged by
// writing proof.Proof[P]{} — this sits at the same trust tier as calling
// Axiom directly and is covered by the same contract: mint proofs only at a
// verification boundary.
//
// # Unexecuted closures
//
// [OrElim], [Implication], and [IntroNot] accept closures that are NEVER
// invoked. The system does not track at runtime which disjunct of an Or
// holds, so case-analysis cannot actually branch; the closures exist solely
// to force both derivations to type-check. Never put side effects or
// runtime computation in them.
//
// # What this package must NOT do
//
//   - Perform I/O, allocate, or inspect proposition types at runtime.
//   - Import goProof or any consumer package.
package proof
