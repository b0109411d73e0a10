package sweets

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"sweetshop/internal/common"
	"sweetshop/internal/server/models"
)

// record pairs a sweet with its own lock. Mutations on one item hold only
// that item's lock, so operations on distinct ids never block each other.
type record struct {
	mu    sync.Mutex
	sweet models.Sweet
	seq   uint64
}

// InMemoryRepository keeps the catalog in process memory. The outer RWMutex
// guards the map itself; per-record mutexes serialize read-modify-write
// spans on a single item.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*record
	nextSeq uint64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[string]*record)}
}

func (r *InMemoryRepository) Create(ctx context.Context, sweet *models.Sweet) (*models.Sweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *sweet
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	stored.CreatedAt = time.Now()

	r.nextSeq++
	r.records[stored.ID] = &record{sweet: stored, seq: r.nextSeq}

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.Sweet, error) {
	rec, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	out := rec.sweet
	rec.mu.Unlock()
	return &out, nil
}

// List snapshots the catalog in creation order. A concurrently mutated item
// shows either its pre- or post-mutation state, never a partial write.
func (r *InMemoryRepository) List(ctx context.Context) ([]*models.Sweet, error) {
	r.mu.RLock()
	recs := make([]*record, 0, len(r.records))
	for _, rec := range r.records {
		recs = append(recs, rec)
	}
	r.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	result := make([]*models.Sweet, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		out := rec.sweet
		rec.mu.Unlock()
		result = append(result, &out)
	}
	return result, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, sweet *models.Sweet) (*models.Sweet, error) {
	rec, err := r.lookup(sweet.ID)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	created := rec.sweet.CreatedAt
	rec.sweet = *sweet
	rec.sweet.CreatedAt = created

	out := rec.sweet
	return &out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *InMemoryRepository) AdjustQuantity(ctx context.Context, id string, delta int) (*models.Sweet, error) {
	rec, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	next := rec.sweet.Quantity + delta
	if next < 0 {
		return nil, common.ErrorInsufficientStock
	}
	rec.sweet.Quantity = next

	out := rec.sweet
	return &out, nil
}

func (r *InMemoryRepository) lookup(id string) (*record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rec, nil
}
