package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/dailytracker/internal/dbx"
	"github.com/dmitrijs2005/dailytracker/internal/repositories/items"
	"github.com/dmitrijs2005/dailytracker/internal/repositories/metadata"
	"github.com/dmitrijs2005/dailytracker/internal/repositories/users"
)

// RepositoryManager vends repositories bound to a handle (*sql.DB or *sql.Tx)
// and owns schema initialization.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Items(db dbx.DBTX) items.Repository
	Metadata(db dbx.DBTX) metadata.Repository
}
