package admintoken

import "errors"

var (
	ErrInvalidIdentity = errors.New("invalid identity")
	ErrRegionLookup    = errors.New("region lookup failed")
)
