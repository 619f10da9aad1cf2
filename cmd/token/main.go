package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"admin-auth-srv/config"
	"admin-auth-srv/internal/admintoken"
	"admin-auth-srv/internal/admintoken/usecase"
	"admin-auth-srv/internal/model"
	"admin-auth-srv/pkg/jwt"
	"admin-auth-srv/pkg/log"
	"admin-auth-srv/pkg/scope"
	"admin-auth-srv/pkg/token"
)

// minSecretLen mirrors the length below which HMAC secrets are easy to brute force.
const minSecretLen = 32

type flags struct {
	opaque bool
	check  bool
	userID int64
	verify string
	header string
}

type verifyOutput struct {
	IsValid   bool       `json:"isValid"`
	ID        int64      `json:"id,omitempty"`
	Regions   []int64    `json:"regions,omitempty"`
	IssuedAt  *time.Time `json:"issuedAt,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	TokenID   string     `json:"jti,omitempty"`
	Baseline  bool       `json:"baseline,omitempty"`
	Header    string     `json:"scopeHeader,omitempty"`
}

func main() {
	var f flags
	configPath := flag.String("config", "", "path to admin-auth-config.yaml (default: search ./config, ., /etc/admin-auth/)")
	flag.BoolVar(&f.opaque, "opaque", false, "print a new opaque random token")
	flag.BoolVar(&f.check, "check", false, "ping PostgreSQL and exit")
	flag.Int64Var(&f.userID, "user", 0, "print a signed admin token for this user id")
	flag.StringVar(&f.verify, "verify", "", "verify a signed admin token and print its payload")
	flag.StringVar(&f.header, "scope", "", "decode an internal scope header and print it")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := logger.With(context.Background(), "cmd", "token")

	os.Exit(run(ctx, logger, cfg, f, os.Stdout))
}

func run(ctx context.Context, logger log.Logger, cfg *config.Config, f flags, w io.Writer) int {
	// cfg is never written after Load, so the section can be shared by every call.
	adminAuth := cfg.AdminAuth
	resolver := jwt.NewResolver(jwt.SourceFunc(func() jwt.RawConfig {
		return jwt.RawConfig{Secret: adminAuth.Secret, Options: adminAuth.Options}
	}))

	st := newStore(logger, cfg.Postgres)
	defer st.Close(ctx)

	uc := usecase.New(logger, st, resolver, jwt.New(resolver), token.New())
	warnWeakSecret(ctx, logger, uc)

	switch {
	case f.opaque:
		tok, err := uc.CreateToken(ctx)
		if err != nil {
			logger.Errorf(ctx, "Failed to generate token: %v", err)
			return 1
		}
		fmt.Fprintln(w, tok)

	case f.check:
		if err := st.Check(ctx); err != nil {
			logger.Errorf(ctx, "Store check failed: %v", err)
			return 1
		}
		fmt.Fprintln(w, "ok")

	case f.verify != "":
		out, err := verifyReport(ctx, uc, f.verify)
		if err != nil {
			logger.Errorf(ctx, "Failed to describe token: %v", err)
			return 1
		}
		if err := writeJSON(w, out); err != nil {
			logger.Errorf(ctx, "Failed to encode result: %v", err)
			return 1
		}
		if !out.IsValid {
			return 1
		}

	case f.header != "":
		sc, err := scope.ParseScopeHeader(f.header)
		if err != nil {
			logger.Errorf(ctx, "Failed to decode scope header: %v", err)
			return 1
		}
		if err := writeJSON(w, sc); err != nil {
			logger.Errorf(ctx, "Failed to encode result: %v", err)
			return 1
		}

	case f.userID != 0:
		signed, err := uc.CreateJWT(ctx, model.Identity{ID: f.userID})
		if err != nil {
			logger.Errorf(ctx, "Failed to create token for user %d: %v", f.userID, err)
			return 1
		}
		fmt.Fprintln(w, signed)

	default:
		flag.Usage()
		return 2
	}
	return 0
}

func warnWeakSecret(ctx context.Context, logger log.Logger, uc admintoken.UseCase) {
	sc, err := uc.TokenOptions(ctx)
	if err != nil {
		logger.Warnf(ctx, "server.admin.auth.options are invalid, signing and verification will fail: %v", err)
	}
	if l := len(sc.Secret); l == 0 {
		logger.Warn(ctx, "server.admin.auth.secret is empty: signing will fail and every token will be rejected")
	} else if l < minSecretLen {
		logger.Warnf(ctx, "server.admin.auth.secret is %d characters, use at least %d", l, minSecretLen)
	}
}

// verifyReport decodes tok and describes the payload and scope it grants.
func verifyReport(ctx context.Context, uc admintoken.UseCase, tok string) (verifyOutput, error) {
	res := uc.DecodeJWT(ctx, tok)
	sc, ok := scope.FromResult(res)
	if !ok {
		return verifyOutput{}, nil
	}
	ctx = scope.SetPayloadToContext(ctx, *res.Payload)
	ctx = scope.SetScopeToContext(ctx, sc)
	return describe(ctx)
}

func describe(ctx context.Context) (verifyOutput, error) {
	p, ok := scope.GetPayloadFromContext(ctx)
	if !ok {
		return verifyOutput{}, nil
	}
	out := verifyOutput{
		IsValid:   true,
		IssuedAt:  &p.IssuedAt,
		ExpiresAt: &p.ExpiresAt,
		TokenID:   p.TokenID,
	}
	out.ID, _ = scope.GetUserIDFromContext(ctx)
	out.Regions, _ = scope.GetRegionsFromContext(ctx)

	if sc, ok := scope.GetScopeFromContext(ctx); ok {
		out.Baseline = sc.IsBaseline()
		h, err := scope.CreateScopeHeader(sc)
		if err != nil {
			return verifyOutput{}, err
		}
		out.Header = h
	}
	return out, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
