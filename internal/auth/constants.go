package auth

import "time"

// Token defaults
const (
	// DefaultTokenTTL is the lifetime of an access token
	DefaultTokenTTL = 1 * time.Hour

	// DefaultIssuer is the iss claim of tokens this service issues
	DefaultIssuer = "lithos-protocol"

	// MinSecretLength is the shortest accepted HMAC secret
	MinSecretLength = 32
)

// Error messages
const (
	ErrMsgSecretTooShort     = "jwt secret must be at least %d bytes"
	ErrMsgSignFailed         = "failed to sign token: %w"
	ErrMsgInvalidToken       = "invalid or expired token"
	ErrMsgInvalidSubject     = "token subject is not an account address"
	ErrMsgMissingBearerToken = "missing bearer token"
)
