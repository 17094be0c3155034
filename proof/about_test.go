package proof

import (
	"errors"
	"testing"

	"github.com/MrEthical07/goProof/name"
)

func TestBindAndForSameSubject(t *testing.T) {
	name.With("token", func(tok name.Named[string]) struct{} {
		a := Bind(tok.Name(), Axiom[propA]())

		if a.Subject() != tok.Name() {
			t.Fatal("Bind must record the subject brand")
		}

		p, err := a.For(tok.Name())
		if err != nil {
			t.Fatalf("For against own subject failed: %v", err)
		}
		var _ Proof[propA] = p
		return struct{}{}
	})
}

func TestForRejectsForeignSubject(t *testing.T) {
	first := name.With("token", func(tok name.Named[string]) name.Name { return tok.Name() })

	name.With("token", func(other name.Named[string]) struct{} {
		a := Bind(first, Axiom[propA]())

		if _, err := a.For(other.Name()); !errors.Is(err, ErrSubjectMismatch) {
			t.Fatalf("expected ErrSubjectMismatch for foreign brand, got %v", err)
		}
		return struct{}{}
	})
}

func TestZeroAboutMatchesNothing(t *testing.T) {
	var a About[propA]

	if _, err := a.For(name.Name{}); !errors.Is(err, ErrSubjectMismatch) {
		t.Fatalf("zero About must not match even a zero Name, got %v", err)
	}

	name.With("v", func(n name.Named[string]) struct{} {
		if _, err := a.For(n.Name()); !errors.Is(err, ErrSubjectMismatch) {
			t.Fatalf("zero About must not match a minted brand, got %v", err)
		}
		return struct{}{}
	})
}

func TestMustForPanicsOnMismatch(t *testing.T) {
	foreign := name.With("a", func(n name.Named[string]) name.Name { return n.Name() })
	a := name.With("b", func(n name.Named[string]) About[propA] {
		return Bind(n.Name(), Axiom[propA]())
	})

	defer func() {
		if recover() == nil {
			t.Fatal("MustFor must panic on subject mismatch")
		}
	}()
	a.MustFor(foreign)
}

func TestAboutCopiesKeepSubject(t *testing.T) {
	name.With("v", func(n name.Named[string]) struct{} {
		a := Bind(n.Name(), Axiom[propA]())
		b := a
		if b.Subject() != a.Subject() {
			t.Fatal("copying an About must keep the subject")
		}
		if _, err := b.For(n.Name()); err != nil {
			t.Fatalf("copied About must still match: %v", err)
		}
		return struct{}{}
	})
}
