package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOptions(t *testing.T) {
	tcs := map[string]struct {
		raw  map[string]any
		want Options
	}{
		"nil map keeps defaults": {
			raw:  nil,
			want: DefaultOptions(),
		},
		"go duration": {
			raw:  map[string]any{"expiresIn": "2h"},
			want: Options{ExpiresIn: 2 * time.Hour, Algorithm: AlgorithmHS256},
		},
		"day shorthand": {
			raw:  map[string]any{"expiresIn": "7d"},
			want: Options{ExpiresIn: 7 * 24 * time.Hour, Algorithm: AlgorithmHS256},
		},
		"long unit with space": {
			raw:  map[string]any{"expiresIn": "2 days"},
			want: Options{ExpiresIn: 48 * time.Hour, Algorithm: AlgorithmHS256},
		},
		"integer seconds": {
			raw:  map[string]any{"expiresIn": 3600},
			want: Options{ExpiresIn: time.Hour, Algorithm: AlgorithmHS256},
		},
		"numeric string seconds": {
			raw:  map[string]any{"expiresIn": "10"},
			want: Options{ExpiresIn: 10 * time.Second, Algorithm: AlgorithmHS256},
		},
		"fractional seconds": {
			raw:  map[string]any{"expiresIn": 1.5},
			want: Options{ExpiresIn: 1500 * time.Millisecond, Algorithm: AlgorithmHS256},
		},
		"viper lower-cased and snake keys": {
			raw: map[string]any{
				"expiresin":       "1m",
				"clock_tolerance": "5s",
				"not-before":      "30s",
			},
			want: Options{
				ExpiresIn:      time.Minute,
				ClockTolerance: 5 * time.Second,
				NotBefore:      30 * time.Second,
				Algorithm:      AlgorithmHS256,
			},
		},
		"algorithm is upper-cased": {
			raw:  map[string]any{"algorithm": "hs512"},
			want: Options{ExpiresIn: DefaultExpiresIn, Algorithm: AlgorithmHS512},
		},
		"string claims": {
			raw: map[string]any{"issuer": "admin", "subject": "panel", "keyid": "k1"},
			want: Options{
				ExpiresIn: DefaultExpiresIn,
				Algorithm: AlgorithmHS256,
				Issuer:    "admin",
				Subject:   "panel",
				KeyID:     "k1",
			},
		},
		"single audience": {
			raw:  map[string]any{"audience": "backoffice"},
			want: Options{ExpiresIn: DefaultExpiresIn, Algorithm: AlgorithmHS256, Audience: []string{"backoffice"}},
		},
		"audience list": {
			raw:  map[string]any{"audience": []any{"a", " b ", ""}},
			want: Options{ExpiresIn: DefaultExpiresIn, Algorithm: AlgorithmHS256, Audience: []string{"a", "b"}},
		},
		"nil value keeps default": {
			raw:  map[string]any{"expiresIn": nil},
			want: DefaultOptions(),
		},
		"unknown keys ignored": {
			raw:  map[string]any{"mutatePayload": true},
			want: DefaultOptions(),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := MergeOptions(DefaultOptions(), tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMergeOptions_Invalid(t *testing.T) {
	tcs := map[string]map[string]any{
		"garbage duration":   {"expiresIn": "soon"},
		"unknown unit":       {"expiresIn": "3 fortnights"},
		"zero expiry":        {"expiresIn": 0},
		"negative expiry":    {"expiresIn": "-1h"},
		"negative notBefore": {"notBefore": -5},
		"bool duration":      {"expiresIn": true},
		"empty duration":     {"clockTolerance": "  "},
		"asymmetric alg":     {"algorithm": "RS256"},
		"none alg":           {"algorithm": "none"},
		"map as issuer":      {"issuer": map[string]any{"a": 1}},
	}

	for name, raw := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := MergeOptions(DefaultOptions(), raw)
			assert.ErrorIs(t, err, ErrInvalidOption)
			assert.Equal(t, DefaultOptions(), got)
		})
	}
}

func TestMergeOptions_UnsupportedAlgorithmIsMatchable(t *testing.T) {
	_, err := MergeOptions(DefaultOptions(), map[string]any{"algorithm": "ES256"})
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestMergeOptions_DoesNotMutateBase(t *testing.T) {
	base := DefaultOptions()
	base.Audience = []string{"origin"}

	got, err := MergeOptions(base, map[string]any{"audience": "other", "expiresIn": "1h"})
	require.NoError(t, err)

	assert.Equal(t, []string{"other"}, got.Audience)
	assert.Equal(t, time.Hour, got.ExpiresIn)
	assert.Equal(t, []string{"origin"}, base.Audience)
	assert.Equal(t, DefaultExpiresIn, base.ExpiresIn)

	again, err := MergeOptions(DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultExpiresIn, again.ExpiresIn)
}

func TestMergeOptions_DoesNotAliasRawSlice(t *testing.T) {
	aud := []string{"a", "b"}
	got, err := MergeOptions(DefaultOptions(), map[string]any{"audience": aud})
	require.NoError(t, err)

	got.Audience[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, aud)
}

func TestParseDuration(t *testing.T) {
	tcs := map[string]struct {
		in   any
		want time.Duration
	}{
		"duration value": {in: 3 * time.Minute, want: 3 * time.Minute},
		"30d":            {in: "30d", want: 30 * 24 * time.Hour},
		"1w":             {in: "1w", want: 7 * 24 * time.Hour},
		"1y":             {in: "1y", want: 8766 * time.Hour},
		"500ms":          {in: "500ms", want: 500 * time.Millisecond},
		"1h30m":          {in: "1h30m", want: 90 * time.Minute},
		"1.5h":           {in: "1.5h", want: 90 * time.Minute},
		"upper case":     {in: "2 Hours", want: 2 * time.Hour},
		"int64":          {in: int64(60), want: time.Minute},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := parseDuration(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
