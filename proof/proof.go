package proof

// Proof is a zero-size witness that proposition P holds. P is a phantom
// index: it is never instantiated and Proof values carry no runtime data.
// Proofs are freely copyable — holding one asserts a fact, not a resource.
//
//	Docs: docs/proof.md
type Proof[P any] struct{}

// Axiom mints a proof of P unconditionally. It is the system's sole trusted
// primitive: the caller, not the type system, is responsible for having
// established P through a real runtime check or external invariant before
// calling it. Misuse subverts every proof derived downstream.
//
//	Docs: docs/proof.md
func Axiom[P any]() Proof[P] {
	return Proof[P]{}
}

// Sorry mints a proof of P exactly like [Axiom], but signals "placeholder".
// It exists so a proof chain under construction can be stubbed and still
// type-check. A completed proof chain must never contain a Sorry call;
// grep for it before shipping.
func Sorry[P any]() Proof[P] {
	return Proof[P]{}
}
