package repository

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema.sql
var schemaFS embed.FS

const (
	defaultDSN         = "file:viralscope.db?cache=shared&mode=rwc&_txlock=immediate"
	defaultMaxConns    = 2
	defaultBusyTimeout = 5 * time.Second
)

// Config defines the sqlite cache database
type Config struct {
	DSN         string
	MaxConns    int           // pool size, forced to 1 for in-memory databases
	BusyTimeout time.Duration // how long a writer waits on a locked database
}

// Open opens the cache database, tunes it for a handful of small rows rewritten
// every few hours and makes sure the cache table exists
func Open(ctx context.Context, cfg Config) (*CacheRepository, error) {
	if cfg.DSN == "" {
		cfg.DSN = defaultDSN
	}
	if cfg.MaxConns <= 0 {
		cfg.MaxConns = defaultMaxConns
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = defaultBusyTimeout
	}
	if inMemory(cfg.DSN) {
		cfg.MaxConns = 1 // every connection to :memory: is a separate database
	}

	db, err := sqlx.Open("sqlite", withPragmas(cfg.DSN, cfg.BusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// the whole cache is a few rows, keep connections open for the process lifetime
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxConns)
	db.SetConnMaxLifetime(0)

	// journal mode is stored in the database file, one connection is enough
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable wal: %w", err)
	}

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return NewCacheRepository(db), nil
}

// withPragmas adds per-connection pragmas to the DSN, so every pooled connection gets them
func withPragmas(dsn string, busyTimeout time.Duration) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)", dsn, sep, busyTimeout.Milliseconds())
}

func inMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// initSchema creates the cache table if it doesn't exist
func initSchema(ctx context.Context, db *sqlx.DB) error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}
