package admintoken

import (
	"context"

	"admin-auth-srv/internal/model"
	"admin-auth-srv/pkg/jwt"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// CreateToken returns a 40 character opaque random token.
	CreateToken(ctx context.Context) (string, error)
	// BuildClaims looks up the regions of identity. Identities without any
	// region row get model.DefaultRegion.
	BuildClaims(ctx context.Context, identity model.Identity) (model.ClaimSet, error)
	// CreateJWT builds the claims of identity and signs them.
	CreateJWT(ctx context.Context, identity model.Identity) (string, error)
	// DecodeJWT reports whether token is valid and, if so, its payload.
	DecodeJWT(ctx context.Context, token string) jwt.DecodeResult
	// TokenOptions returns the signing configuration currently in effect.
	TokenOptions(ctx context.Context) (jwt.SigningConfig, error)
}
