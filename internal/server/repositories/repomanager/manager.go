package repomanager

import (
	"context"
	"database/sql"

	"sweetshop/internal/dbx"
	"sweetshop/internal/server/repositories/sweets"
	"sweetshop/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DB handle
// (or transaction) and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sweets(db dbx.DBTX) sweets.Repository
}
