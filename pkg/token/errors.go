package token

import "errors"

// ErrRandomness is returned when the random source cannot deliver ByteLength bytes.
var ErrRandomness = errors.New("token: secure random source unavailable")
