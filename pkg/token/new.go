package token

import (
	"crypto/rand"
	"io"
)

type implGenerator struct {
	reader io.Reader
}

// New returns a Generator reading from crypto/rand.
func New() Generator {
	return &implGenerator{reader: rand.Reader}
}

// NewWithReader returns a Generator reading from r. r must be a
// cryptographically secure source; it is exposed for tests.
func NewWithReader(r io.Reader) Generator {
	return &implGenerator{reader: r}
}
