package scope

// Context key types.
type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)
