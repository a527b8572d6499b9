package config

// Storage backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// MinJWTSecretLength is the shortest accepted HMAC secret
const MinJWTSecretLength = 32

// Example values from .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
	ExampleJWTSecret  = "generate_with_openssl_rand_hex_32_jwt_secret"
)

// Error messages
const (
	ErrMsgParseEnv          = "parse env: %w"
	ErrMsgAPIKeyRequired    = "API_KEY environment variable must be set for security"
	ErrMsgJWTSecretTooShort = "JWT_SECRET must be at least %d bytes"
	ErrMsgInvalidPort       = "invalid PORT value: %d"
	ErrMsgInvalidBackend    = "invalid STORAGE_BACKEND %q (want memory or postgres)"
	ErrMsgInvalidRateLimit  = "RATE_LIMIT_PER_MINUTE must be positive, got %d"
	ErrMsgAddressRequired   = "%s must be set"
	ErrMsgInvalidAddress    = "%s is not a hex account address: %q"
	ErrMsgZeroAddress       = "%s must not be the zero address"
)
