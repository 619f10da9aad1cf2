package postgre

import (
	"context"
	"database/sql"
	"testing"

	"admin-auth-srv/config"
	pkgLog "admin-auth-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	tcs := map[string]struct {
		cfg  config.PostgresConfig
		want string
	}{
		"full": {
			cfg:  config.PostgresConfig{Host: "db", Port: 5432, User: "admin", Password: "p@ss word", DBName: "backoffice", SSLMode: "require"},
			want: "postgres://admin:p%40ss%20word@db:5432/backoffice?sslmode=require",
		},
		"no password": {
			cfg:  config.PostgresConfig{Host: "db", Port: 5432, User: "admin", DBName: "backoffice"},
			want: "postgres://admin@db:5432/backoffice?sslmode=disable",
		},
		"no user": {
			cfg:  config.PostgresConfig{Host: "localhost", Port: 6432, DBName: "x", SSLMode: "verify-full"},
			want: "postgres://localhost:6432/x?sslmode=verify-full",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, DSN(tc.cfg))
		})
	}
}

func TestHealthCheck(t *testing.T) {
	assert.Error(t, HealthCheck(context.Background(), nil))

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	assert.NoError(t, HealthCheck(context.Background(), db))

	mock.ExpectPing().WillReturnError(sql.ErrConnDone)
	assert.ErrorIs(t, HealthCheck(context.Background(), db), sql.ErrConnDone)
}

func TestDisconnect(t *testing.T) {
	l := pkgLog.NewNop()
	assert.NoError(t, Disconnect(context.Background(), l, nil))

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	assert.NoError(t, Disconnect(context.Background(), l, db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
