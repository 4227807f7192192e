// Package store opens database sessions for the provisioner. A session is
// acquired per operation and must be closed by the caller.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amrit110/moonshot-ui/internal/common"
	"github.com/amrit110/moonshot-ui/internal/repositories/users"
)

// Session is an exclusive handle on the database for one operation.
type Session interface {
	// InTx runs fn with a users repository bound to a transaction that is
	// committed when fn returns nil and rolled back otherwise.
	InTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error

	// Close releases the underlying connection.
	Close() error
}

// Connector establishes sessions.
type Connector interface {
	Connect(ctx context.Context) (Session, error)
}

// Options tune how sessions are established.
type Options struct {
	// Migrate creates the users table when it is missing.
	Migrate bool
	// ConnectTimeout bounds the initial ping. Zero means no extra bound.
	ConnectTimeout time.Duration
}

// NewConnector picks the backend from the DSN scheme:
//
//	postgres://…, postgresql://…  PostgreSQL through pgx
//	sqlite://<path>, file:<path>  SQLite through gorm
func NewConnector(dsn string, opts Options) (Connector, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewPostgresConnector(dsn, opts), nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return newSQLiteConnector(strings.TrimPrefix(dsn, "sqlite://"), dsn, opts)
	case strings.HasPrefix(dsn, "file:"):
		return newSQLiteConnector(strings.TrimPrefix(dsn, "file:"), dsn, opts)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrorUnsupportedDSN, redact(dsn))
	}
}

func newSQLiteConnector(path, dsn string, opts Options) (Connector, error) {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return nil, fmt.Errorf("%w: %q has no file path", common.ErrorUnsupportedDSN, dsn)
	}
	return NewGormConnector(path, opts), nil
}

func withConnectTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// redact hides everything between "://" and "@" so credentials do not end up
// in error messages.
func redact(dsn string) string {
	scheme := strings.Index(dsn, "://")
	at := strings.LastIndexByte(dsn, '@')
	if scheme < 0 || at < scheme {
		return dsn
	}
	return dsn[:scheme+3] + "***" + dsn[at:]
}
