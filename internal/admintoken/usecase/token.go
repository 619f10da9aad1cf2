package usecase

import (
	"context"
	"errors"
	"fmt"

	"admin-auth-srv/internal/admintoken"
	"admin-auth-srv/internal/admintoken/repository"
	"admin-auth-srv/internal/model"
	"admin-auth-srv/pkg/jwt"
)

func (uc *usecase) CreateToken(ctx context.Context) (string, error) {
	tok, err := uc.tokens.Generate()
	if err != nil {
		uc.l.Errorf(ctx, "internal.admintoken.usecase.CreateToken.Generate: %v", err)
		return "", err
	}
	return tok, nil
}

func (uc *usecase) BuildClaims(ctx context.Context, identity model.Identity) (model.ClaimSet, error) {
	if identity.ID <= 0 {
		return model.ClaimSet{}, fmt.Errorf("%w: id must be positive, got %d", admintoken.ErrInvalidIdentity, identity.ID)
	}

	regions, err := uc.repo.ListRegions(ctx, repository.ListRegionsOptions{UserID: identity.ID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.admintoken.usecase.BuildClaims.ListRegions: %v", err)
		return model.ClaimSet{}, fmt.Errorf("%w: %w", admintoken.ErrRegionLookup, err)
	}

	// No assignment rows means the baseline region, not "no access".
	if len(regions) == 0 {
		uc.l.Debugf(ctx, "internal.admintoken.usecase.BuildClaims: user %d has no regions, using default region %d", identity.ID, model.DefaultRegion)
	}

	return model.NewClaimSet(identity.ID, regions), nil
}

func (uc *usecase) CreateJWT(ctx context.Context, identity model.Identity) (string, error) {
	claims, err := uc.BuildClaims(ctx, identity)
	if err != nil {
		return "", err
	}

	signed, err := uc.jwt.Sign(claims)
	if err != nil {
		uc.l.Errorf(ctx, "internal.admintoken.usecase.CreateJWT.Sign: %v", err)
		return "", err
	}

	return signed, nil
}

func (uc *usecase) DecodeJWT(ctx context.Context, token string) jwt.DecodeResult {
	payload, err := uc.jwt.Parse(token)
	if err != nil {
		if errors.Is(err, jwt.ErrInvalidToken) {
			uc.l.Debugf(ctx, "internal.admintoken.usecase.DecodeJWT.Parse: %v", err)
		} else {
			uc.l.Errorf(ctx, "internal.admintoken.usecase.DecodeJWT.Parse: %v", err)
		}
		return jwt.DecodeResult{}
	}
	return jwt.DecodeResult{Payload: payload, IsValid: true}
}

func (uc *usecase) TokenOptions(ctx context.Context) (jwt.SigningConfig, error) {
	cfg, err := uc.resolver.Resolve()
	if err != nil {
		uc.l.Errorf(ctx, "internal.admintoken.usecase.TokenOptions.Resolve: %v", err)
		return cfg, err
	}
	return cfg, nil
}
