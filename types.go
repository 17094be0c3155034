package goProof

// Issuer is implemented by the zero-size issuer markers. IssuerName must
// return the exact "iss" claim value tokens from that provider carry.
//
// Issuer markers double as phantom type indexes: [IssuedBy] is generic over
// the marker type, so a proof of "issued by Azure" can never stand in for
// "issued by Okta".
type Issuer interface {
	IssuerName() string
}

// Azure marks tokens issued by the Azure identity provider.
type Azure struct{}

// IssuerName implements [Issuer].
func (Azure) IssuerName() string { return "azure" }

// Okta marks tokens issued by the Okta identity provider.
type Okta struct{}

// IssuerName implements [Issuer].
func (Okta) IssuerName() string { return "okta" }

// Role is implemented by zero-size role markers. Like [Issuer], role
// markers serve both as runtime lookups (RoleName selects the claim to
// check) and as phantom indexes of [HasRole].
type Role interface {
	RoleName() string
}

// Admin is the administrative role marker.
type Admin struct{}

// RoleName implements [Role].
func (Admin) RoleName() string { return "admin" }

// Permission selects a gated operation for [Engine.Authorize] and the
// middleware guards.
//
// Permission instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Permission uint8

const (
	// PermViewApps is an exported constant or variable used by the authorization engine.
	PermViewApps Permission = iota
	// PermDeleteApp is an exported constant or variable used by the authorization engine.
	PermDeleteApp
)

// String returns the audit/metric label of the permission.
func (p Permission) String() string {
	switch p {
	case PermViewApps:
		return "view_apps"
	case PermDeleteApp:
		return "delete_app"
	default:
		return "unknown"
	}
}
