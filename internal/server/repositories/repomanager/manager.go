package repomanager

import (
	"context"
	"database/sql"

	"github.com/vkazmin/accountd/internal/dbx"
	"github.com/vkazmin/accountd/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (a connection pool or
// a transaction) and owns schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
