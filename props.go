package goProof

// Domain propositions. All of these are phantom markers in the sense of
// package prop: never instantiated, only used to index proof.Proof and
// proof.About. Each is about one specific token, which is why every proof
// of them travels as a proof.About bound to the token's brand.

// IssuedBy[I] states that a token's signature verified against the key
// configured for issuer I and its "iss" claim named I.
type IssuedBy[I Issuer] struct{}

// HasRole[R] states that a token carries role R in the claim shape its
// issuer uses for roles.
type HasRole[R Role] struct{}

// CanViewApps states that the bearer of a token may list applications.
type CanViewApps struct{}

// CanDeleteApp states that the bearer of a token may delete applications.
type CanDeleteApp struct{}
