package model

// DefaultRegion is the region assigned to an identity that has no explicit
// region rows. It means "use the baseline region", not "unknown".
const DefaultRegion int64 = 0

// ClaimSet is what a signed admin token carries besides its temporal claims.
// Regions is never empty once built.
type ClaimSet struct {
	ID      int64   `json:"id"`
	Regions []int64 `json:"regions"`
}

// NewClaimSet builds a ClaimSet for id, preserving the order of regions.
// An empty regions slice collapses to []int64{DefaultRegion}.
func NewClaimSet(id int64, regions []int64) ClaimSet {
	if len(regions) == 0 {
		return ClaimSet{ID: id, Regions: []int64{DefaultRegion}}
	}
	rs := make([]int64, len(regions))
	copy(rs, regions)
	return ClaimSet{ID: id, Regions: rs}
}
