package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"log/slog"

	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"

	_ "github.com/go-sql-driver/mysql"

	"github.com/funnelgen/funnelgen-manager/internal/dependency"
)

// Config defines configurations to connect database
type Config struct {
	DSN                string `mapstructure:"dsn"`
	Automigrate        bool   `mapstructure:"automigrate"`
	MaxOpenConnections int    `mapstructure:"max_open_connections"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections"`
}

// MYSQLStore implements methods to access MYSQL database
type MYSQLStore struct {
	// db is used for executing queries
	db    dependency.DB
	txDB  txDB
	ts    time.Time
	close context.CancelFunc
}

// New connects to the database, applies migrations and returns a new
// MYSQLStore object.
func New(ctx context.Context, cfg Config) (*MYSQLStore, error) {
	d, err := sqlx.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("couldn't open database : %v", err)
	}

	if cfg.MaxOpenConnections > 0 {
		d.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		d.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	d.SetConnMaxLifetime(2 * time.Minute)
	d.SetConnMaxIdleTime(30 * time.Second)

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := d.PingContext(pingCtx); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Automigrate {
		slog.Default().InfoContext(ctx, "applying migrations")
		if err := Migrate(d.Unsafe().DB); err != nil {
			d.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	ctx, c := context.WithCancel(ctx)
	ss := &MYSQLStore{
		db:    d,
		close: c,
	}

	go func() {
		<-ctx.Done()
		d.Close()
	}()

	return ss, nil
}

//go:embed sql
var fs embed.FS

func Migrate(db *sql.DB) error {
	m := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "sql",
	}
	n, err := migrate.Exec(db, "mysql", m, migrate.Up)
	if err != nil {
		return fmt.Errorf("can't apply migrations: %w", err)
	}
	slog.Default().Info("migrations applied", slog.Int("count", n))
	return nil
}

// Close closes the underlying database connection.
func (ms *MYSQLStore) Close() {
	if ms.close != nil {
		ms.close()
	}
}
