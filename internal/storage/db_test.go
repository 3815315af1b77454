package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/dailytracker/internal/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingMigrator struct{}

func (failingMigrator) RunMigrations(context.Context, *sql.DB) error {
	return errors.New("no schema")
}

func TestBuildDSN(t *testing.T) {
	assert.Equal(t, "tracker.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", BuildDSN("tracker.db"))
	assert.Equal(t, "file:x.db?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", BuildDSN("file:x.db?cache=shared"))
	assert.Equal(t, "a.db?_pragma=journal_mode(WAL)", BuildDSN("a.db?_pragma=journal_mode(WAL)"))
}

func TestInitDatabase_FileIsReusable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "data", "tracker.db")
	m := repomanager.NewSQLiteRepositoryManager()

	db, err := InitDatabase(ctx, dsn, m)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO users (id, username, password_hash) VALUES ('u1', 'alice', 'h')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// reopening runs migrations again without touching data
	db, err = InitDatabase(ctx, dsn, m)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestFilePath(t *testing.T) {
	assert.Equal(t, "data/x.db", filePath("data/x.db"))
	assert.Equal(t, "data/x.db", filePath("file:data/x.db?cache=shared"))
}

func TestInitDatabase_ForeignKeysEnforced(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, ":memory:", repomanager.NewSQLiteRepositoryManager())
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT INTO tasks (user_id, task, category, due_date) VALUES ('ghost', 't', 'Goals', '2026-10-16')`)
	require.Error(t, err, "tasks.user_id must reference an existing user")
}

func TestInitDatabase_MigrationErrorClosesDB(t *testing.T) {
	_, err := InitDatabase(context.Background(), ":memory:", failingMigrator{})
	require.EqualError(t, err, "no schema")
}
