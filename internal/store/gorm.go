package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/amrit110/moonshot-ui/internal/models"
	"github.com/amrit110/moonshot-ui/internal/repositories/users"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormConnector opens the SQLite file at path through gorm. Without Migrate
// the file must already exist; with Migrate it is created and the users
// table is auto-migrated.
type GormConnector struct {
	path string
	opts Options
}

func NewGormConnector(path string, opts Options) *GormConnector {
	return &GormConnector{path: path, opts: opts}
}

// dsn builds a SQLite URI filename. Path segments are percent-encoded since
// SQLite decodes them and treats a raw '#' or '%' as URI syntax.
func (c *GormConnector) dsn() string {
	mode := "rw"
	if c.opts.Migrate {
		mode = "rwc"
	}
	segments := strings.Split(c.path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return "file:" + strings.Join(segments, "/") + "?mode=" + mode + "&_busy_timeout=5000"
}

func (c *GormConnector) Connect(ctx context.Context) (Session, error) {
	db, err := gorm.Open(sqlite.Open(c.dsn()), &gorm.Config{
		Logger:                 logger.Discard,
		TranslateError:         true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	pingCtx, cancel := withConnectTimeout(ctx, c.opts.ConnectTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("db connect error: %w", err)
	}

	if c.opts.Migrate {
		if err := db.WithContext(ctx).AutoMigrate(&models.User{}); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	return &gormSession{db: db, sqlDB: sqlDB}, nil
}

type gormSession struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func (s *gormSession) InTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, users.NewGormRepository(tx))
	})
}

func (s *gormSession) Close() error {
	return s.sqlDB.Close()
}
