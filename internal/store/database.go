package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by repositories when a lookup matches no rows
var ErrNotFound = errors.New("not found")

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Database wraps the Atlas PostgreSQL connection pool
type Database struct {
	conn *sql.DB
	log  *logrus.Entry
}

// NewDatabase opens and pings the Atlas database
func NewDatabase(dsn string, log *logrus.Entry) (*Database, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{
		conn: db,
		log:  log.WithField("component", "store"),
	}, nil
}

// NewDatabaseFromConn wraps an already opened pool
func NewDatabaseFromConn(conn *sql.DB, log *logrus.Entry) *Database {
	return &Database{
		conn: conn,
		log:  log.WithField("component", "store"),
	}
}

// Execer is satisfied by both *sql.DB and *sql.Tx
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// WithTx runs fn inside one transaction. The transaction is committed when
// fn returns nil and rolled back otherwise.
func (db *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for queries
func (db *Database) DB() *sql.DB {
	return db.conn
}

// MigrationNames lists the embedded migrations in apply order
func MigrationNames() ([]string, error) {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	for i, n := range names {
		names[i] = n[len("migrations/"):]
	}
	sort.Strings(names)
	return names, nil
}

// RunMigrations applies every embedded migration not yet recorded
func (db *Database) RunMigrations(ctx context.Context) error {
	db.log.Info("Running database migrations...")

	if _, err := db.conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	names, err := MigrationNames()
	if err != nil {
		return fmt.Errorf("listing migrations: %w", err)
	}

	for _, name := range names {
		if err := db.runMigration(ctx, name); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", name, err)
		}
	}

	db.log.Info("✓ All migrations completed successfully")
	return nil
}

func (db *Database) runMigration(ctx context.Context, name string) error {
	var exists bool
	err := db.conn.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", name).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		db.log.Debugf("  ⊘ Skipping %s (already applied)", name)
		return nil
	}

	content, err := migrationFiles.ReadFile("migrations/" + name)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	err = db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
		_, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", name)
		return err
	})
	if err != nil {
		return err
	}

	db.log.Infof("  ✓ Applied %s", name)
	return nil
}

// HealthCheck performs a health check on the database
func (db *Database) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return db.conn.PingContext(ctx)
}
