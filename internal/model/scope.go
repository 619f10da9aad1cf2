package model

import "slices"

// Scope is the authorization context recovered from a valid admin token.
type Scope struct {
	UserID  int64   `json:"user_id"`
	Regions []int64 `json:"regions"`
	JTI     string  `json:"jti"`
}

// HasRegion reports whether the scope was granted region id.
func (s Scope) HasRegion(id int64) bool {
	return slices.Contains(s.Regions, id)
}

// IsBaseline reports whether the scope only carries the default region.
func (s Scope) IsBaseline() bool {
	return len(s.Regions) == 1 && s.Regions[0] == DefaultRegion
}
