package types

import "errors"

var (
	ErrorAuthRequired        = errors.New("auth_required")
	ErrorGeneric             = errors.New("generic_error")
	ErrorInvalidCredentials  = errors.New("invalid_credentials")
	ErrorInvalidInput        = errors.New("invalid_input")
	ErrorStorageUnavailable  = errors.New("storage_unavailable")
	ErrorUpstreamError       = errors.New("upstream_error")
	ErrorUpstreamUnavailable = errors.New("upstream_unavailable")
	ErrorUnrecognisedBackend = errors.New("unrecognised_backend")

	ErrorClientMarshalInput    = errors.New("__client_marshal_input")
	ErrorClientRequestCreation = errors.New("__client_request_creation")

	// ErrorJwtTokenExpired indicates the token has expired
	ErrorJwtTokenExpired = errors.New("jwt_token_expired")
	// ErrorJwtTokenSignature indicates token signature validation failed
	ErrorJwtTokenSignature = errors.New("jwt_token_signature")
	// ErrorJwtClaims indicates that the claim data couldn't be parsed
	ErrorJwtClaimsInvalid = errors.New("jwt_claims_invalid")
)
