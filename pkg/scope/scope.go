package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"admin-auth-srv/internal/model"
	"admin-auth-srv/pkg/jwt"
)

// NewScope builds a model.Scope from a verified payload.
func NewScope(p jwt.Payload) model.Scope {
	regions := make([]int64, len(p.Regions))
	copy(regions, p.Regions)
	return model.Scope{
		UserID:  p.ID,
		Regions: regions,
		JTI:     p.TokenID,
	}
}

// FromResult returns the scope of a valid DecodeResult.
func FromResult(res jwt.DecodeResult) (model.Scope, bool) {
	if !res.IsValid || res.Payload == nil {
		return model.Scope{}, false
	}
	return NewScope(*res.Payload), true
}

// CreateScopeHeader encodes scope as a base64 JSON header value for
// internal hops that already trust the caller.
func CreateScopeHeader(sc model.Scope) (string, error) {
	data, err := json.Marshal(sc)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// ParseScopeHeader decodes a value produced by CreateScopeHeader.
func ParseScopeHeader(header string) (model.Scope, error) {
	data, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrInvalidScopeHeader, err)
	}
	var sc model.Scope
	if err := json.Unmarshal(data, &sc); err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrInvalidScopeHeader, err)
	}
	if len(sc.Regions) == 0 {
		return model.Scope{}, ErrEmptyRegions
	}
	return sc, nil
}

// SetPayloadToContext attaches a verified payload to ctx.
func SetPayloadToContext(ctx context.Context, p jwt.Payload) context.Context {
	return context.WithValue(ctx, PayloadCtxKey{}, p)
}

// GetPayloadFromContext returns the payload stored by SetPayloadToContext.
func GetPayloadFromContext(ctx context.Context) (jwt.Payload, bool) {
	p, ok := ctx.Value(PayloadCtxKey{}).(jwt.Payload)
	return p, ok
}

// SetScopeToContext attaches sc to ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	return sc, ok
}

// GetUserIDFromContext returns the admin user id of the scope in ctx.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	sc, ok := GetScopeFromContext(ctx)
	if !ok {
		return 0, false
	}
	return sc.UserID, true
}

// GetRegionsFromContext returns the regions of the scope in ctx.
func GetRegionsFromContext(ctx context.Context) ([]int64, bool) {
	sc, ok := GetScopeFromContext(ctx)
	if !ok {
		return nil, false
	}
	return sc.Regions, true
}
