package goProof

import "errors"

var (
	// ErrTokenInvalid is an exported constant or variable used by the authorization engine.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrNoRole is an exported constant or variable used by the authorization engine.
	ErrNoRole = errors.New("required role absent")
	// ErrTokenRevoked is an exported constant or variable used by the authorization engine.
	ErrTokenRevoked = errors.New("token revoked")
	// ErrRevocationUnavailable is an exported constant or variable used by the authorization engine.
	ErrRevocationUnavailable = errors.New("revocation backend unavailable")
	// ErrRevocationDisabled is an exported constant or variable used by the authorization engine.
	ErrRevocationDisabled = errors.New("revocation disabled")
	// ErrRateLimited is an exported constant or variable used by the authorization engine.
	ErrRateLimited = errors.New("too many authorization attempts")
	// ErrUnknownPermission is an exported constant or variable used by the authorization engine.
	ErrUnknownPermission = errors.New("unknown permission")
	// ErrEngineClosed is an exported constant or variable used by the authorization engine.
	ErrEngineClosed = errors.New("engine closed")
)
