package jwt

import "time"

const (
	// DefaultExpiresIn is applied when the options do not set expiresIn.
	DefaultExpiresIn = 30 * 24 * time.Hour

	AlgorithmHS256 = "HS256"
	AlgorithmHS384 = "HS384"
	AlgorithmHS512 = "HS512"

	// DefaultAlgorithm is applied when the options do not set algorithm.
	DefaultAlgorithm = AlgorithmHS256
)

// Normalised option keys. Keys from configuration are lower-cased and
// stripped of '_' and '-' before lookup, so expiresIn, expires_in and
// EXPIRES-IN all land on optExpiresIn.
const (
	optExpiresIn      = "expiresin"
	optNotBefore      = "notbefore"
	optClockTolerance = "clocktolerance"
	optAlgorithm      = "algorithm"
	optIssuer         = "issuer"
	optSubject        = "subject"
	optKeyID          = "keyid"
	optAudience       = "audience"
)
