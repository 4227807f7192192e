package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amrit110/moonshot-ui/internal/dbx"
	"github.com/amrit110/moonshot-ui/internal/migrations"
	"github.com/amrit110/moonshot-ui/internal/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// openDB and gooseUpContext are seams for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// PostgresConnector opens a dedicated single-connection *sql.DB per session.
type PostgresConnector struct {
	dsn  string
	opts Options
}

func NewPostgresConnector(dsn string, opts Options) *PostgresConnector {
	return &PostgresConnector{dsn: dsn, opts: opts}
}

func (c *PostgresConnector) Connect(ctx context.Context) (Session, error) {
	db, err := openDB(c.dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(1)

	pingCtx, cancel := withConnectTimeout(ctx, c.opts.ConnectTimeout)
	defer cancel()

	// sql.Open is lazy, the ping is what actually connects
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db connect error: %w", err)
	}

	if c.opts.Migrate {
		if err := runMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	return &sqlSession{db: db}, nil
}

// runMigrations applies the embedded goose migrations.
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

type sqlSession struct {
	db *sql.DB
}

func (s *sqlSession) InTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, users.NewPostgresRepository(tx))
	})
}

func (s *sqlSession) Close() error {
	return s.db.Close()
}
