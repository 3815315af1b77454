// Package storage opens the tracker's SQLite database and makes sure the
// schema exists before anything else touches it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/dailytracker/internal/filex"
	_ "modernc.org/sqlite"
)

// Migrator applies the schema to an open database.
type Migrator interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
}

var defaultPragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
}

// BuildDSN appends the pragmas the tracker relies on (foreign keys, busy
// timeout) unless the caller already set pragmas explicitly.
func BuildDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(defaultPragmas, "&")
}

func isMemory(dsn string) bool {
	return strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// filePath extracts the file name from a plain path or a file: URI DSN.
func filePath(dsn string) string {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	return path
}

// InitDatabase opens dsn with the sqlite driver and runs the migrator.
// An in-memory database lives only as long as its connection, so the pool
// is pinned to one connection in that case.
func InitDatabase(ctx context.Context, dsn string, m Migrator) (*sql.DB, error) {
	if !isMemory(dsn) {
		if err := filex.EnsureParentDir(filePath(dsn)); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", BuildDSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if isMemory(dsn) {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
