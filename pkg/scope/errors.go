package scope

import "errors"

var (
	// ErrInvalidScopeHeader is returned when a scope header cannot be decoded.
	ErrInvalidScopeHeader = errors.New("scope: invalid scope header")
	// ErrEmptyRegions is returned for a scope header without regions.
	ErrEmptyRegions = errors.New("scope: scope has no regions")
)
