package jwt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// DefaultOptions returns the built-in options: 30 day expiry, HS256.
func DefaultOptions() Options {
	return Options{
		ExpiresIn: DefaultExpiresIn,
		Algorithm: DefaultAlgorithm,
	}
}

// MergeOptions lays raw over base key by key. Keys present in raw win, keys
// absent from raw (or set to nil) keep the base value. Unknown keys are
// ignored. base is never modified.
func MergeOptions(base Options, raw map[string]any) (Options, error) {
	out := base
	out.Audience = append([]string(nil), base.Audience...)

	for key, value := range raw {
		if value == nil {
			continue
		}

		var err error
		switch normalizeKey(key) {
		case optExpiresIn:
			out.ExpiresIn, err = parseDuration(value)
			if err == nil && out.ExpiresIn <= 0 {
				err = fmt.Errorf("must be positive, got %s", out.ExpiresIn)
			}
		case optNotBefore:
			out.NotBefore, err = parseDuration(value)
			if err == nil && out.NotBefore < 0 {
				err = fmt.Errorf("must not be negative, got %s", out.NotBefore)
			}
		case optClockTolerance:
			out.ClockTolerance, err = parseDuration(value)
			if err == nil && out.ClockTolerance < 0 {
				err = fmt.Errorf("must not be negative, got %s", out.ClockTolerance)
			}
		case optAlgorithm:
			out.Algorithm, err = parseAlgorithm(value)
		case optIssuer:
			out.Issuer, err = cast.ToStringE(value)
		case optSubject:
			out.Subject, err = cast.ToStringE(value)
		case optKeyID:
			out.KeyID, err = cast.ToStringE(value)
		case optAudience:
			out.Audience, err = parseAudience(value)
		default:
			continue
		}
		if err != nil {
			return base, fmt.Errorf("%w: %s: %w", ErrInvalidOption, key, err)
		}
	}

	return out, nil
}

func normalizeKey(key string) string {
	return strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(key)))
}

func parseAlgorithm(value any) (string, error) {
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", err
	}
	alg := strings.ToUpper(strings.TrimSpace(s))
	if _, err := signingMethod(alg); err != nil {
		return "", err
	}
	return alg, nil
}

func parseAudience(value any) ([]string, error) {
	if s, ok := value.(string); ok {
		if s = strings.TrimSpace(s); s == "" {
			return nil, nil
		}
		return []string{s}, nil
	}
	aud, err := cast.ToStringSliceE(value)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(aud))
	for _, a := range aud {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out, nil
}

var durationPattern = regexp.MustCompile(`^(-?(?:\d+)?\.?\d+)\s*([a-z]+)$`)

var durationUnits = map[string]time.Duration{
	"ms": time.Millisecond, "msec": time.Millisecond, "msecs": time.Millisecond,
	"millisecond": time.Millisecond, "milliseconds": time.Millisecond,
	"s": time.Second, "sec": time.Second, "secs": time.Second,
	"second": time.Second, "seconds": time.Second,
	"m": time.Minute, "min": time.Minute, "mins": time.Minute,
	"minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hrs": time.Hour,
	"hour": time.Hour, "hours": time.Hour,
	"d": 24 * time.Hour, "day": 24 * time.Hour, "days": 24 * time.Hour,
	"w": 7 * 24 * time.Hour, "week": 7 * 24 * time.Hour, "weeks": 7 * 24 * time.Hour,
	"y": 8766 * time.Hour, "yr": 8766 * time.Hour, "yrs": 8766 * time.Hour,
	"year": 8766 * time.Hour, "years": 8766 * time.Hour,
}

// parseDuration accepts a time.Duration, a number of seconds, a Go duration
// string ("1h30m") or a single-unit shorthand ("30d", "2 days", "1.5h").
func parseDuration(value any) (time.Duration, error) {
	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case string:
		return parseDurationString(v)
	case bool:
		return 0, fmt.Errorf("cannot use %v as a duration", v)
	}

	secs, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, err
	}
	return secondsToDuration(secs)
}

func parseDurationString(s string) (time.Duration, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return secondsToDuration(secs)
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("cannot parse duration %q", s)
	}
	unit, ok := durationUnits[m[2]]
	if !ok {
		return 0, fmt.Errorf("unknown duration unit %q", m[2])
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse duration %q: %w", s, err)
	}
	return scale(n, unit)
}

func secondsToDuration(secs float64) (time.Duration, error) {
	return scale(secs, time.Second)
}

func scale(n float64, unit time.Duration) (time.Duration, error) {
	d := n * float64(unit)
	if math.IsNaN(d) || math.IsInf(d, 0) || math.Abs(d) >= math.MaxInt64 {
		return 0, fmt.Errorf("duration out of range")
	}
	return time.Duration(d), nil
}
