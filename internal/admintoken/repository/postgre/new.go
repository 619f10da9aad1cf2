package postgres

import (
	"database/sql"
	"time"

	"admin-auth-srv/internal/admintoken/repository"
	pkgLog "admin-auth-srv/pkg/log"
)

type implRepository struct {
	l            pkgLog.Logger
	db           *sql.DB
	queryTimeout time.Duration
}

var _ repository.Repository = &implRepository{}

// Option configures the repository.
type Option func(*implRepository)

// WithQueryTimeout bounds every store query. Zero leaves the caller's
// context untouched.
func WithQueryTimeout(d time.Duration) Option {
	return func(r *implRepository) {
		r.queryTimeout = d
	}
}

func New(l pkgLog.Logger, db *sql.DB, opts ...Option) *implRepository {
	r := &implRepository{
		l:  l,
		db: db,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
