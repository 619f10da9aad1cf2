package main

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"admin-auth-srv/config"
	"admin-auth-srv/config/postgre"
	"admin-auth-srv/internal/admintoken/repository"
	"admin-auth-srv/internal/admintoken/repository/postgre"
	"admin-auth-srv/pkg/log"
)

// store connects to PostgreSQL on first use, so modes that never read
// regions run without a database.
type store struct {
	l    log.Logger
	cfg  config.PostgresConfig
	once sync.Once
	db   *sql.DB
	repo repository.Repository
	err  error
}

func newStore(l log.Logger, cfg config.PostgresConfig) *store {
	return &store{l: l, cfg: cfg}
}

func (s *store) conn(ctx context.Context) (*sql.DB, error) {
	s.once.Do(func() {
		s.db, s.err = postgre.Connect(ctx, s.l, s.cfg)
		if s.err == nil {
			s.repo = postgres.New(s.l, s.db, postgres.WithQueryTimeout(s.cfg.QueryTimeout))
		}
	})
	return s.db, s.err
}

// ListRegions implements repository.Repository.
func (s *store) ListRegions(ctx context.Context, opts repository.ListRegionsOptions) ([]int64, error) {
	if _, err := s.conn(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrStore, err)
	}
	return s.repo.ListRegions(ctx, opts)
}

// Check connects if needed and pings the database.
func (s *store) Check(ctx context.Context) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	return postgre.HealthCheck(ctx, db)
}

// Close releases the pool if one was opened.
func (s *store) Close(ctx context.Context) {
	if s.db == nil {
		return
	}
	// Disconnect logs its own failure; nothing else to do on the way out.
	_ = postgre.Disconnect(ctx, s.l, s.db)
}
