package jwt

import (
	"time"

	"admin-auth-srv/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// RawConfig is the admin auth configuration section as it was loaded:
// a secret and a loosely typed options map.
type RawConfig struct {
	Secret  string
	Options map[string]any
}

// Source hands out the current admin auth section. It is read on every
// Sign and Verify call and must be safe for concurrent readers.
type Source interface {
	AdminAuth() RawConfig
}

// SourceFunc adapts a function to Source.
type SourceFunc func() RawConfig

// AdminAuth implements Source.
func (f SourceFunc) AdminAuth() RawConfig { return f() }

// Options are the recognised signing and verification options.
type Options struct {
	ExpiresIn      time.Duration
	NotBefore      time.Duration
	ClockTolerance time.Duration
	Algorithm      string
	Issuer         string
	Subject        string
	KeyID          string
	Audience       []string
}

// SigningConfig is the resolved secret plus options.
type SigningConfig struct {
	Secret  string
	Options Options
}

// Payload is the decoded content of a valid token.
type Payload struct {
	model.ClaimSet
	IssuedAt  time.Time
	ExpiresAt time.Time
	TokenID   string
	Issuer    string
}

// DecodeResult is the outcome of Verify. Payload is nil whenever IsValid is false.
type DecodeResult struct {
	Payload *Payload
	IsValid bool
}

type claims struct {
	UserID  int64   `json:"id"`
	Regions []int64 `json:"regions"`
	jwt.RegisteredClaims
}
