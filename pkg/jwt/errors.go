package jwt

import "errors"

var (
	// ErrSecretRequired is returned by Sign when no signing secret is configured.
	ErrSecretRequired = errors.New("jwt: signing secret is required")
	// ErrInvalidOption is returned when a configured option value cannot be used.
	ErrInvalidOption = errors.New("jwt: invalid option")
	// ErrUnsupportedAlgorithm is returned for algorithms other than HS256, HS384 and HS512.
	ErrUnsupportedAlgorithm = errors.New("jwt: unsupported algorithm")
	// ErrInvalidClaims is returned by Sign for a claim set no verifier would accept.
	ErrInvalidClaims = errors.New("jwt: invalid claims")
	// ErrInvalidToken describes why a token was rejected. Verify never returns it.
	ErrInvalidToken = errors.New("jwt: invalid token")
)
