package goProof

import "github.com/MrEthical07/goProof/proof"

// HasAzureRole checks whether an Azure-issued token carries role in its
// "roles" array claim. Requiring a proof of IssuedBy[Azure] about the same
// token keeps the claim-shape check honest: the "roles" array is Azure's
// convention, and this function cannot be reached with a token verified by
// anyone else.
//
// HasAzureRole returns [ErrNoRole] when the claim is absent or does not
// contain the role.
func HasAzureRole[R Role](t TokenOf, role R, issued proof.About[IssuedBy[Azure]]) (proof.About[HasRole[R]], error) {
	if _, err := issued.For(t.Name()); err != nil {
		return proof.About[HasRole[R]]{}, err
	}

	entries, ok := t.claims["roles"].([]interface{})
	if !ok {
		return proof.About[HasRole[R]]{}, ErrNoRole
	}
	for _, entry := range entries {
		if s, ok := entry.(string); ok && s == role.RoleName() {
			return proof.Bind(t.Name(), proof.Axiom[HasRole[R]]()), nil
		}
	}

	return proof.About[HasRole[R]]{}, ErrNoRole
}

// HasOktaRole checks whether an Okta-issued token carries role as a
// boolean claim named after the role, Okta's convention.
//
// HasOktaRole returns [ErrNoRole] when the claim is absent, not a boolean,
// or false.
func HasOktaRole[R Role](t TokenOf, role R, issued proof.About[IssuedBy[Okta]]) (proof.About[HasRole[R]], error) {
	if _, err := issued.For(t.Name()); err != nil {
		return proof.About[HasRole[R]]{}, err
	}

	if granted, ok := t.claims[role.RoleName()].(bool); ok && granted {
		return proof.Bind(t.Name(), proof.Axiom[HasRole[R]]()), nil
	}

	return proof.About[HasRole[R]]{}, ErrNoRole
}
