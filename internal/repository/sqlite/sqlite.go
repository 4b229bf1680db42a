package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clearclause/clearclause/internal/domain"
	"github.com/clearclause/clearclause/internal/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection and provides access to repositories.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Foreign keys are enforced process-wide. No cross-table references
	// exist on the users table yet, but the logs table has one.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all pending migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.SqlDB)
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

// Users returns the user repository.
func (d *DB) Users() domain.UserRepository {
	return NewUserRepository(d)
}

// SimplificationLogs returns the simplification log repository.
func (d *DB) SimplificationLogs() domain.SimplificationLogRepository {
	return NewSimplificationLogRepository(d)
}

// Glossary returns the glossary repository.
func (d *DB) Glossary() domain.GlossaryRepository {
	return NewGlossaryRepository(d)
}
