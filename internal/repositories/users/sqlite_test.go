package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/dailytracker/internal/common"
	"github.com/dmitrijs2005/dailytracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newRepoWithMock(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), mock
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

const (
	insertQuery = `^INSERT\s+INTO\s+users\s*\(id,\s*username,\s*password_hash\)\s*VALUES\s*\(\?,\s*\?,\s*\?\)$`
	selectQuery = `^SELECT\s+id,\s*username,\s*password_hash\s+FROM\s+users\s+WHERE\s+username\s*=\s*\?$`
)

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(insertQuery).
		WithArgs("u-1", "alice", "hash").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), &models.User{ID: "u-1", UserName: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(insertQuery).
		WithArgs("u-1", "alice", "hash").
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.User{ID: "u-1", UserName: "alice", PasswordHash: "hash"})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
	assert.False(t, errors.Is(err, common.ErrorAlreadyExists))
}

func TestCreate_DuplicateUsername(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{ID: "u-1", UserName: "alice", PasswordHash: "h1"}))

	err := repo.Create(ctx, &models.User{ID: "u-2", UserName: "alice", PasswordHash: "h2"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID, "duplicate registration must not overwrite")
	assert.Equal(t, "h1", got.PasswordHash)
}

func TestCreate_UsernameIsCaseSensitive(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{ID: "u-1", UserName: "alice", PasswordHash: "h"}))
	require.NoError(t, repo.Create(ctx, &models.User{ID: "u-2", UserName: "Alice", PasswordHash: "h"}))
}

func TestGetUserByLogin_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
		AddRow("u-1", "alice", "hash")
	mock.ExpectQuery(selectQuery).WithArgs("alice").WillReturnRows(rows)

	got, err := repo.GetUserByLogin(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: "u-1", UserName: "alice", PasswordHash: "hash"}, got)
}

func TestGetUserByLogin_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectQuery).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByLogin(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetUserByLogin_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectQuery).WithArgs("alice").WillReturnError(errors.New("db err"))

	_, err := repo.GetUserByLogin(context.Background(), "alice")
	require.Error(t, err)
	assert.Regexp(t, `db error: .*db err`, err.Error())
}
