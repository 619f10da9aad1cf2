package repository

// ListRegionsOptions contains options for listing the regions of a user.
type ListRegionsOptions struct {
	UserID int64
}
