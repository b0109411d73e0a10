package services

import (
	"context"
	"database/sql"
	"strings"

	"sweetshop/internal/common"
	"sweetshop/internal/server/models"
	"sweetshop/internal/server/repositories/repomanager"
)

// SweetUpdate carries the optional fields of a partial update.
// Nil means "leave untouched".
type SweetUpdate struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int
}

// SweetFilter holds the optional search criteria. An empty/nil field matches
// everything for that dimension.
type SweetFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// SweetService implements the catalog operations and the purchase/restock
// business rules on top of the repository's atomic adjust primitive.
type SweetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewSweetService constructs a SweetService over the given repositories.
func NewSweetService(db *sql.DB, m repomanager.RepositoryManager) *SweetService {
	return &SweetService{db: db, repomanager: m}
}

func (s *SweetService) Create(ctx context.Context, name, category string, price float64, quantity int) (*models.Sweet, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.InvalidArgument("Name cannot be blank")
	}
	if strings.TrimSpace(category) == "" {
		return nil, common.InvalidArgument("Category cannot be blank")
	}
	if price < 0 {
		return nil, common.InvalidArgument("Price cannot be negative")
	}
	if quantity < 0 {
		return nil, common.InvalidArgument("Quantity cannot be negative")
	}

	sweet := &models.Sweet{Name: name, Category: category, Price: price, Quantity: quantity}
	return s.repomanager.Sweets(s.db).Create(ctx, sweet)
}

func (s *SweetService) GetByID(ctx context.Context, id string) (*models.Sweet, error) {
	return s.repomanager.Sweets(s.db).GetByID(ctx, id)
}

func (s *SweetService) List(ctx context.Context) ([]*models.Sweet, error) {
	return s.repomanager.Sweets(s.db).List(ctx)
}

// Search applies the conjunction of the predicates whose corresponding filter
// field is present to the full listing. With no fields set it is equivalent
// to List, in the same order.
func (s *SweetService) Search(ctx context.Context, filter SweetFilter) ([]*models.Sweet, error) {
	all, err := s.repomanager.Sweets(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	match := buildFilter(filter)
	result := make([]*models.Sweet, 0, len(all))
	for _, sweet := range all {
		if match(sweet) {
			result = append(result, sweet)
		}
	}
	return result, nil
}

// buildFilter composes the optional criteria into a single predicate.
func buildFilter(f SweetFilter) func(*models.Sweet) bool {
	var preds []func(*models.Sweet) bool

	if f.Name != "" {
		name := strings.ToLower(f.Name)
		preds = append(preds, func(s *models.Sweet) bool {
			return strings.Contains(strings.ToLower(s.Name), name)
		})
	}
	if f.Category != "" {
		category := strings.ToLower(f.Category)
		preds = append(preds, func(s *models.Sweet) bool {
			return strings.Contains(strings.ToLower(s.Category), category)
		})
	}
	if f.MinPrice != nil {
		min := *f.MinPrice
		preds = append(preds, func(s *models.Sweet) bool { return s.Price >= min })
	}
	if f.MaxPrice != nil {
		max := *f.MaxPrice
		preds = append(preds, func(s *models.Sweet) bool { return s.Price <= max })
	}

	return func(s *models.Sweet) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

// Update changes only the fields present in upd. A present-but-blank name or
// category and a present negative price or quantity are rejected before any
// write happens.
func (s *SweetService) Update(ctx context.Context, id string, upd SweetUpdate) (*models.Sweet, error) {
	repo := s.repomanager.Sweets(s.db)

	sweet, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return nil, common.InvalidArgument("Name cannot be blank")
		}
		sweet.Name = *upd.Name
	}
	if upd.Category != nil {
		if strings.TrimSpace(*upd.Category) == "" {
			return nil, common.InvalidArgument("Category cannot be blank")
		}
		sweet.Category = *upd.Category
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, common.InvalidArgument("Price cannot be negative")
		}
		sweet.Price = *upd.Price
	}
	if upd.Quantity != nil {
		if *upd.Quantity < 0 {
			return nil, common.InvalidArgument("Quantity cannot be negative")
		}
		sweet.Quantity = *upd.Quantity
	}

	return repo.Update(ctx, sweet)
}

func (s *SweetService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Sweets(s.db).Delete(ctx, id)
}

// Purchase decrements the stock by quantity. The decrement is atomic with
// respect to any other mutation of the same item, so two concurrent
// purchases can never overdraw.
func (s *SweetService) Purchase(ctx context.Context, id string, quantity int) (*models.Sweet, error) {
	if quantity <= 0 {
		return nil, common.InvalidArgument("Quantity must be greater than 0")
	}
	return s.repomanager.Sweets(s.db).AdjustQuantity(ctx, id, -quantity)
}

// Restock increments the stock by quantity.
func (s *SweetService) Restock(ctx context.Context, id string, quantity int) (*models.Sweet, error) {
	if quantity <= 0 {
		return nil, common.InvalidArgument("Restock quantity must be greater than 0")
	}
	return s.repomanager.Sweets(s.db).AdjustQuantity(ctx, id, quantity)
}
