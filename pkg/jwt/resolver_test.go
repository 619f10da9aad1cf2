package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_MissingSection(t *testing.T) {
	for name, src := range map[string]Source{
		"nil source":    nil,
		"empty section": SourceFunc(func() RawConfig { return RawConfig{} }),
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := NewResolver(src).Resolve()
			require.NoError(t, err)
			assert.Empty(t, cfg.Secret)
			assert.Equal(t, DefaultOptions(), cfg.Options)
		})
	}
}

func TestResolve_UserOptionsOverrideDefaults(t *testing.T) {
	src := SourceFunc(func() RawConfig {
		return RawConfig{
			Secret:  "s3cret",
			Options: map[string]any{"expiresIn": "12h", "issuer": "admin"},
		}
	})

	cfg, err := NewResolver(src).Resolve()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, 12*time.Hour, cfg.Options.ExpiresIn)
	assert.Equal(t, AlgorithmHS256, cfg.Options.Algorithm)
	assert.Equal(t, "admin", cfg.Options.Issuer)
}

func TestResolve_Idempotent(t *testing.T) {
	src := SourceFunc(func() RawConfig {
		return RawConfig{Secret: "s3cret", Options: map[string]any{"audience": []any{"a"}}}
	})
	r := NewResolver(src)

	first, err := r.Resolve()
	require.NoError(t, err)
	second, err := r.Resolve()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_InvalidOptions(t *testing.T) {
	src := SourceFunc(func() RawConfig {
		return RawConfig{Secret: "s3cret", Options: map[string]any{"expiresIn": "never"}}
	})

	cfg, err := NewResolver(src).Resolve()
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, DefaultOptions(), cfg.Options)
}
