package model

// Identity is the administrator a token is issued for.
type Identity struct {
	ID int64 `json:"id"`
}
