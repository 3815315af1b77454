package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/dailytracker/internal/repositories/items"
	"github.com/dmitrijs2005/dailytracker/internal/repositories/metadata"
	"github.com/dmitrijs2005/dailytracker/internal/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var m RepositoryManager = NewSQLiteRepositoryManager()

	assert.IsType(t, &users.SQLiteRepository{}, m.Users(db))
	assert.IsType(t, &items.SQLiteRepository{}, m.Items(db))
	assert.IsType(t, &metadata.SQLiteRepository{}, m.Metadata(db))
}

func TestRunMigrations_PropagatesGooseError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return errors.New("boom")
	}

	err = NewSQLiteRepositoryManager().RunMigrations(context.Background(), db)
	require.ErrorContains(t, err, "migrations: boom")
	assert.Equal(t, ".", gotDir)
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n))
	return n > 0
}

func TestRunMigrations_CreatesSchemaAndIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	m := NewSQLiteRepositoryManager()
	ctx := context.Background()

	require.NoError(t, m.RunMigrations(ctx, db))
	require.NoError(t, m.RunMigrations(ctx, db), "second run must be a no-op")

	for _, table := range []string{"users", "tasks", "metadata", "goose_db_version"} {
		assert.True(t, tableExists(t, db, table), table)
	}
}
