// Package sweets provides PostgreSQL-backed and in-memory repositories for
// the sweet catalog, including the atomic stock-adjustment primitive.
package sweets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"sweetshop/internal/common"
	"sweetshop/internal/dbx"
	"sweetshop/internal/server/models"
)

// PostgresRepository implements sweet storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, sweet *models.Sweet) (*models.Sweet, error) {
	if sweet.ID == "" {
		sweet.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO sweets (id, name, category, price, quantity)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity).Scan(&sweet.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sweet, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Sweet, error) {
	query :=
		`SELECT id, name, category, price, quantity, created_at FROM sweets
		 WHERE id = $1
		 `

	sweet := &models.Sweet{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sweet.ID, &sweet.Name, &sweet.Category, &sweet.Price, &sweet.Quantity, &sweet.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sweet, nil
}

// List returns all sweets in creation order, ties broken by id, so listings
// are deterministic for a fixed store state.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Sweet, error) {
	query :=
		`SELECT id, name, category, price, quantity, created_at FROM sweets
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select sweets: %w", err)
	}
	defer rows.Close()

	var result []*models.Sweet
	for rows.Next() {
		var item models.Sweet
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Category, &item.Price, &item.Quantity, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, sweet *models.Sweet) (*models.Sweet, error) {
	query :=
		`UPDATE sweets SET name = $2, category = $3, price = $4, quantity = $5
		 WHERE id = $1
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity).Scan(&sweet.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sweet, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sweets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// AdjustQuantity relies on a single conditional UPDATE: the row is locked for
// the span of the statement, so two concurrent purchases can never both read
// the same pre-decrement quantity. The quantity guard keeps the result
// non-negative before commit.
func (r *PostgresRepository) AdjustQuantity(ctx context.Context, id string, delta int) (*models.Sweet, error) {
	query :=
		`UPDATE sweets SET quantity = quantity + $2
		 WHERE id = $1 AND quantity + $2 >= 0
		 RETURNING id, name, category, price, quantity, created_at
		 `

	sweet := &models.Sweet{}
	err := r.db.QueryRowContext(ctx, query, id, delta).Scan(
		&sweet.ID, &sweet.Name, &sweet.Category, &sweet.Price, &sweet.Quantity, &sweet.CreatedAt)

	if err == nil {
		return sweet, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("db error: %w", err)
	}

	// The guard rejected the write: tell a missing row apart from depleted stock.
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, common.ErrorInsufficientStock
}
