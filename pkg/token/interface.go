package token

// Generator mints opaque random tokens (API keys, invite tokens, reset links).
// Implementations are safe for concurrent use.
type Generator interface {
	// Generate returns a lowercase hex token built from ByteLength random bytes.
	Generate() (string, error)
}
