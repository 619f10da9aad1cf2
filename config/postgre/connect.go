package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"admin-auth-srv/config"
	pkgLog "admin-auth-srv/pkg/log"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Connect opens the authorization store and pings it within
// cfg.ConnectTimeout. The returned pool is owned by the caller.
func Connect(ctx context.Context, l pkgLog.Logger, cfg config.PostgresConfig) (*sql.DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	l.Infof(ctx, "config.postgre.Connect: connecting to %s:%d/%s (sslmode=%s)", cfg.Host, cfg.Port, cfg.DBName, sslMode(cfg))

	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		l.Errorf(ctx, "config.postgre.Connect.Open: %v", err)
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(connectCtx); err != nil {
		_ = db.Close()
		l.Errorf(ctx, "config.postgre.Connect.PingContext: %v", err)
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return db, nil
}

// Disconnect closes db. A nil db is a no-op.
func Disconnect(ctx context.Context, l pkgLog.Logger, db *sql.DB) error {
	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		l.Errorf(ctx, "config.postgre.Disconnect.Close: %v", err)
		return fmt.Errorf("failed to close PostgreSQL connection: %w", err)
	}
	return nil
}

// HealthCheck pings db.
func HealthCheck(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("PostgreSQL client not initialized")
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL health check failed: %w", err)
	}
	return nil
}

// DSN renders cfg as a lib/pq connection URL.
func DSN(cfg config.PostgresConfig) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   "/" + cfg.DBName,
	}
	if cfg.User != "" {
		if cfg.Password != "" {
			u.User = url.UserPassword(cfg.User, cfg.Password)
		} else {
			u.User = url.User(cfg.User)
		}
	}
	q := url.Values{}
	q.Set("sslmode", sslMode(cfg))
	u.RawQuery = q.Encode()
	return u.String()
}

func sslMode(cfg config.PostgresConfig) string {
	if cfg.SSLMode == "" {
		return "disable"
	}
	return cfg.SSLMode
}
