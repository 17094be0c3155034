package goProof

import (
	"github.com/MrEthical07/goProof/proof"
	"github.com/MrEthical07/goProof/prop"
)

// CanViewAppsFrom grants view access to any token issued by either
// configured provider. The disjunction proof carries the token's brand
// forward, so the permission stays tied to that one token.
func CanViewAppsFrom(issued proof.About[prop.Or[IssuedBy[Azure], IssuedBy[Okta]]]) proof.About[CanViewApps] {
	return proof.Bind(issued.Subject(), proof.Axiom[CanViewApps]())
}

// CanDeleteAppFrom grants delete access to a token proven to carry the
// admin role.
func CanDeleteAppFrom(hasAdmin proof.About[HasRole[Admin]]) proof.About[CanDeleteApp] {
	return proof.Bind(hasAdmin.Subject(), proof.Axiom[CanDeleteApp]())
}
