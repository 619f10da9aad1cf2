package repository

import "errors"

// ErrStore wraps every failure of the authorization store.
var ErrStore = errors.New("authorization store failure")
