package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/config"
	"github.com/dmitrijs2005/dailytracker/internal/cryptox"
	"github.com/dmitrijs2005/dailytracker/internal/logging"
	"github.com/dmitrijs2005/dailytracker/internal/repositories/repomanager"
	"github.com/dmitrijs2005/dailytracker/internal/storage"
	"github.com/stretchr/testify/require"
)

var fastParams = cryptox.Params{Time: 1, Memory: 8 * 1024, Threads: 1, SaltLen: 16, KeyLen: 32}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:", repomanager.NewSQLiteRepositoryManager())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

func insertUser(t *testing.T, db *sql.DB, id, name string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO users (id, username, password_hash) VALUES (?, ?, 'x')`, id, name)
	require.NoError(t, err)
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, k).Scan(&v))
	return v
}

func newUserService(db *sql.DB) *UserService {
	s := NewUserService(db, repomanager.NewSQLiteRepositoryManager(), logging.Discard())
	s.hashParams = fastParams
	return s
}

func newItemService(db *sql.DB) *ItemService {
	return NewItemService(db, repomanager.NewSQLiteRepositoryManager(), testConfig(), logging.Discard())
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }
