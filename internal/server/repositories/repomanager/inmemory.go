package repomanager

import (
	"context"
	"database/sql"

	"sweetshop/internal/dbx"
	"sweetshop/internal/server/repositories/sweets"
	"sweetshop/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends shared in-memory repositories. The DBTX
// arguments are ignored; state lives in the manager itself.
type InMemoryRepositoryManager struct {
	users  *users.InMemoryRepository
	sweets *sweets.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:  users.NewInMemoryRepository(),
		sweets: sweets.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Sweets(db dbx.DBTX) sweets.Repository {
	return m.sweets
}
