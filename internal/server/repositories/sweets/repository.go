package sweets

import (
	"context"

	"sweetshop/internal/server/models"
)

// Repository is the durable keyed collection of sweets. AdjustQuantity is the
// atomic read-modify-write primitive; all stock mutations go through it so
// the quantity never drops below zero.
type Repository interface {
	Create(ctx context.Context, sweet *models.Sweet) (*models.Sweet, error)
	GetByID(ctx context.Context, id string) (*models.Sweet, error)
	List(ctx context.Context) ([]*models.Sweet, error)
	Update(ctx context.Context, sweet *models.Sweet) (*models.Sweet, error)
	Delete(ctx context.Context, id string) error

	// AdjustQuantity atomically applies delta to the item's quantity. A delta
	// that would leave the quantity negative fails with
	// common.ErrorInsufficientStock and leaves the row unchanged; an unknown
	// id fails with common.ErrorNotFound.
	AdjustQuantity(ctx context.Context, id string, delta int) (*models.Sweet, error)
}
