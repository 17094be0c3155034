package goProof

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrEthical07/goProof/name"
	"github.com/MrEthical07/goProof/proof"
)

// Key defines a public type used by goProof APIs.
//
// Key holds the HS256 verification material for issuer I. The issuer is a
// type parameter, not a field, so a key can only ever mint proofs of
// IssuedBy for its own issuer.
//
// Key instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Key[I Issuer] struct {
	secret []byte
	leeway time.Duration
}

// NewKey builds the verification key for issuer I.
//
// NewKey may return an error when input validation fails.
func NewKey[I Issuer](secret []byte, leeway time.Duration) (Key[I], error) {
	if len(secret) == 0 {
		return Key[I]{}, errors.New("empty verification secret")
	}
	if leeway < 0 || leeway > 2*time.Minute {
		return Key[I]{}, errors.New("invalid leeway configuration")
	}
	return Key[I]{secret: secret, leeway: leeway}, nil
}

// TokenOf is a verified token branded with the name of the raw token
// string it was parsed from. It can only be produced by [VerifyToken], so
// holding one means the signature and issuer checks already passed.
type TokenOf struct {
	name   name.Name
	claims jwt.MapClaims
}

// Name returns the brand of the token this value was verified from.
func (t TokenOf) Name() name.Name {
	return t.name
}

// Claims returns the verified claim set. Callers must treat it as
// read-only.
func (t TokenOf) Claims() jwt.MapClaims {
	return t.claims
}

// ID returns the "jti" claim, or "" when absent. Revocation and audit key
// off it.
func (t TokenOf) ID() string {
	id, _ := t.claims["jti"].(string)
	return id
}

// VerifyToken is the trust boundary of the package: it parses and verifies
// the branded token string against key and, only on success, mints a proof
// that the token was issued by I, bound to the token's brand.
//
// VerifyToken performs real checks before calling proof.Axiom — signature,
// algorithm allow-list, issuer claim, and (when present) the registered
// time claims with the key's configured leeway. On any failure it returns
// an error wrapping [ErrTokenInvalid] and no proof exists.
func VerifyToken[I Issuer](key Key[I], token name.Named[string]) (TokenOf, proof.About[IssuedBy[I]], error) {
	var issuer I

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer.IssuerName()),
	}
	if key.leeway > 0 {
		options = append(options, jwt.WithLeeway(key.leeway))
	}

	parser := jwt.NewParser(options...)
	claims := jwt.MapClaims{}
	parsed, err := parser.ParseWithClaims(token.Value(), claims, func(t *jwt.Token) (interface{}, error) {
		return key.secret, nil
	})
	if err != nil {
		return TokenOf{}, proof.About[IssuedBy[I]]{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return TokenOf{}, proof.About[IssuedBy[I]]{}, ErrTokenInvalid
	}

	verified := TokenOf{name: token.Name(), claims: claims}
	return verified, proof.Bind(token.Name(), proof.Axiom[IssuedBy[I]]()), nil
}
