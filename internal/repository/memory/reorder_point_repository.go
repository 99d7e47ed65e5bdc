package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/repository"
)

// ReorderPointRepository is an in-memory ReorderPointRepository.
type ReorderPointRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]domain.ReorderPoint
	byPair  map[string]uuid.UUID
}

var _ repository.ReorderPointRepository = (*ReorderPointRepository)(nil)

// NewReorderPointRepository creates an empty in-memory repository.
func NewReorderPointRepository() *ReorderPointRepository {
	return &ReorderPointRepository{
		records: make(map[uuid.UUID]domain.ReorderPoint),
		byPair:  make(map[string]uuid.UUID),
	}
}

func (r *ReorderPointRepository) Create(ctx context.Context, rp *domain.ReorderPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rp.ID] = *rp
	r.byPair[rp.PairKey()] = rp.ID
	return nil
}

func (r *ReorderPointRepository) Update(ctx context.Context, rp *domain.ReorderPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rp.ID]; !ok {
		return domain.ErrNotFound("reorder point", rp.ID.String())
	}
	r.records[rp.ID] = *rp
	return nil
}

func (r *ReorderPointRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReorderPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rp, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound("reorder point", id.String())
	}
	return &rp, nil
}

func (r *ReorderPointRepository) GetByPair(ctx context.Context, itemID, locationID string) (*domain.ReorderPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPair[itemID+"|"+locationID]
	if !ok {
		return nil, domain.ErrNotFound("reorder point", itemID+"/"+locationID)
	}
	rp := r.records[id]
	return &rp, nil
}

func (r *ReorderPointRepository) List(ctx context.Context, filter domain.Filter) ([]domain.ReorderPoint, int, error) {
	filter = filter.Normalize()

	r.mu.RLock()
	matched := make([]domain.ReorderPoint, 0, len(r.records))
	for _, rp := range r.records {
		if !matchItem(rp.ItemLocation, filter.ItemQuery) ||
			!matchLocation(rp.ItemLocation, filter.LocationQuery) {
			continue
		}
		if !matchDateRange(rp.LastCalculated, filter.CalculatedFrom, filter.CalculatedTo) {
			continue
		}
		matched = append(matched, rp)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	total := len(matched)
	return paginate(matched, filter), total, nil
}
