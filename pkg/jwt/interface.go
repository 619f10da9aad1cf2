package jwt

import (
	"time"

	"admin-auth-srv/internal/model"
)

// Manager signs claim sets into compact HMAC tokens and verifies them back.
// Implementations are safe for concurrent use.
type Manager interface {
	// Sign returns a signed token for claims. It fails with ErrSecretRequired
	// when no secret is configured and with ErrInvalidOption when the
	// configured options cannot be used.
	Sign(claims model.ClaimSet) (string, error)
	// Verify never fails: any rejected token yields DecodeResult{IsValid: false}.
	Verify(token string) DecodeResult
	// Parse is Verify with the rejection reason: ErrInvalidToken for bad
	// tokens, or the configuration error that prevented checking at all.
	Parse(token string) (*Payload, error)
}

type implManager struct {
	resolver Resolver
	now      func() time.Time
}

// ManagerOption customises a Manager.
type ManagerOption func(*implManager)

// WithClock replaces time.Now for issuing and checking temporal claims.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *implManager) {
		if now != nil {
			m.now = now
		}
	}
}

// New returns a Manager that resolves its configuration through r on every call.
func New(r Resolver, opts ...ManagerOption) Manager {
	m := &implManager{
		resolver: r,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
