package token

import (
	"encoding/hex"
	"fmt"
	"io"
)

// Generate implements Generator.
func (g *implGenerator) Generate() (string, error) {
	buf := make([]byte, ByteLength)
	if _, err := io.ReadFull(g.reader, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomness, err)
	}
	return hex.EncodeToString(buf), nil
}
