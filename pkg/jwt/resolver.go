package jwt

// Resolver produces the SigningConfig used by one Sign or Verify call.
type Resolver interface {
	Resolve() (SigningConfig, error)
}

type implResolver struct {
	src Source
}

// NewResolver returns a Resolver reading src on every call. A nil src
// behaves like a missing configuration section.
func NewResolver(src Source) Resolver {
	return implResolver{src: src}
}

// Resolve merges the configured options over DefaultOptions. A missing
// section or an empty secret is not an error here; only option values that
// cannot be parsed are.
func (r implResolver) Resolve() (SigningConfig, error) {
	var raw RawConfig
	if r.src != nil {
		raw = r.src.AdminAuth()
	}

	opts, err := MergeOptions(DefaultOptions(), raw.Options)
	if err != nil {
		return SigningConfig{Secret: raw.Secret, Options: DefaultOptions()}, err
	}

	return SigningConfig{Secret: raw.Secret, Options: opts}, nil
}
