// Package database wraps the shared *sql.DB connection pool used by every
// repository. Postgres is reached through the pgx stdlib driver so that
// watermill-sql can publish inside the same *sql.Tx as business writes;
// SQLite (modernc, pure Go) backs local development and tests.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/config"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/logger"
)

const pingTimeout = 5 * time.Second

// Database owns the connection pool and remembers which driver opened it.
type Database struct {
	db     *sql.DB
	driver string
}

// Open connects to the storage backend selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (*Database, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.DSN(), log)
	case config.DriverPostgres, "":
		return NewPool(ctx, cfg.DSN(), log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// NewPool opens a Postgres pool via pgx and verifies connectivity.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	d := &Database{db: db, driver: config.DriverPostgres}
	if err := d.verify(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info("postgres pool opened", "max_open_conns", 20)
	return d, nil
}

// OpenSQLite opens a SQLite database and configures pragmas. A single
// connection is used so ":memory:" databases are shared by every query.
func OpenSQLite(ctx context.Context, path string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	d := &Database{db: db, driver: config.DriverSQLite}
	if err := d.verify(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info("sqlite database opened", "path", path)
	return d, nil
}

func (d *Database) verify(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := d.db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping %s: %w", d.driver, err)
	}
	return nil
}

// DB returns the underlying pool for non-transactional queries.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Driver reports the driver name (config.DriverPostgres or config.DriverSQLite).
func (d *Database) Driver() string {
	return d.driver
}

// WithTx runs fn inside a transaction. fn's error (or a panic) rolls back;
// otherwise the transaction is committed.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping checks database health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close closes the pool.
func (d *Database) Close() {
	_ = d.db.Close()
}
