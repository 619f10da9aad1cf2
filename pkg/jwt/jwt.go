package jwt

import (
	"fmt"

	"admin-auth-srv/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func signingMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	switch alg {
	case AlgorithmHS256:
		return jwt.SigningMethodHS256, nil
	case AlgorithmHS384:
		return jwt.SigningMethodHS384, nil
	case AlgorithmHS512:
		return jwt.SigningMethodHS512, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
}

// validateClaims holds for every claim set Sign emits and Parse accepts:
// a positive id and non-negative regions.
func validateClaims(cs model.ClaimSet) error {
	if cs.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidClaims, cs.ID)
	}
	for _, r := range cs.Regions {
		if r < 0 {
			return fmt.Errorf("%w: negative region %d", ErrInvalidClaims, r)
		}
	}
	return nil
}

// Sign implements Manager.
func (m *implManager) Sign(cs model.ClaimSet) (string, error) {
	cfg, err := m.resolver.Resolve()
	if err != nil {
		return "", err
	}
	if cfg.Secret == "" {
		return "", ErrSecretRequired
	}

	method, err := signingMethod(cfg.Options.Algorithm)
	if err != nil {
		return "", err
	}

	cs = model.NewClaimSet(cs.ID, cs.Regions)
	if err := validateClaims(cs); err != nil {
		return "", err
	}

	now := m.now()
	c := claims{
		UserID:  cs.ID,
		Regions: cs.Regions,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Options.Issuer,
			Subject:   cfg.Options.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.Options.ExpiresIn)),
			ID:        uuid.NewString(),
		},
	}
	if len(cfg.Options.Audience) > 0 {
		c.Audience = jwt.ClaimStrings(cfg.Options.Audience)
	}
	if cfg.Options.NotBefore > 0 {
		c.NotBefore = jwt.NewNumericDate(now.Add(cfg.Options.NotBefore))
	}

	token := jwt.NewWithClaims(method, c)
	if cfg.Options.KeyID != "" {
		token.Header["kid"] = cfg.Options.KeyID
	}

	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// Verify implements Manager.
func (m *implManager) Verify(token string) DecodeResult {
	payload, err := m.Parse(token)
	if err != nil {
		return DecodeResult{}
	}
	return DecodeResult{Payload: payload, IsValid: true}
}

// Parse implements Manager.
func (m *implManager) Parse(tokenString string) (*Payload, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	cfg, err := m.resolver.Resolve()
	if err != nil {
		return nil, err
	}
	if cfg.Secret == "" {
		return nil, ErrSecretRequired
	}

	secret := []byte(cfg.Secret)
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, t.Header["alg"])
		}
		return secret, nil
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, keyFunc, m.parserOptions(cfg.Options)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("%w: token is not valid", ErrInvalidToken)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}
	if len(c.Regions) == 0 {
		return nil, fmt.Errorf("%w: missing regions claim", ErrInvalidToken)
	}
	cs := model.ClaimSet{ID: c.UserID, Regions: c.Regions}
	if err := validateClaims(cs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	p := &Payload{
		ClaimSet: cs,
		TokenID:  c.ID,
		Issuer:   c.Issuer,
	}
	if c.IssuedAt != nil {
		p.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		p.ExpiresAt = c.ExpiresAt.Time
	}
	return p, nil
}

func (m *implManager) parserOptions(opts Options) []jwt.ParserOption {
	alg := opts.Algorithm
	if alg == "" {
		alg = DefaultAlgorithm
	}

	po := []jwt.ParserOption{
		jwt.WithValidMethods([]string{alg}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	}
	if opts.ClockTolerance > 0 {
		po = append(po, jwt.WithLeeway(opts.ClockTolerance))
	}
	if opts.Issuer != "" {
		po = append(po, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Subject != "" {
		po = append(po, jwt.WithSubject(opts.Subject))
	}
	if len(opts.Audience) > 0 {
		// The token must name the first configured audience.
		po = append(po, jwt.WithAudience(opts.Audience[0]))
	}
	return po
}
