package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/repository"
)

// SafetyStockRepository is an in-memory SafetyStockRepository.
type SafetyStockRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]domain.SafetyStockCalculation
	byPair  map[string]uuid.UUID
}

var _ repository.SafetyStockRepository = (*SafetyStockRepository)(nil)

// NewSafetyStockRepository creates an empty in-memory repository.
func NewSafetyStockRepository() *SafetyStockRepository {
	return &SafetyStockRepository{
		records: make(map[uuid.UUID]domain.SafetyStockCalculation),
		byPair:  make(map[string]uuid.UUID),
	}
}

func (r *SafetyStockRepository) Create(ctx context.Context, calc *domain.SafetyStockCalculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[calc.ID] = *calc
	r.byPair[calc.PairKey()] = calc.ID
	return nil
}

func (r *SafetyStockRepository) Update(ctx context.Context, calc *domain.SafetyStockCalculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[calc.ID]; !ok {
		return domain.ErrNotFound("safety stock calculation", calc.ID.String())
	}
	r.records[calc.ID] = *calc
	return nil
}

func (r *SafetyStockRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SafetyStockCalculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	calc, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound("safety stock calculation", id.String())
	}
	return &calc, nil
}

func (r *SafetyStockRepository) GetByPair(ctx context.Context, itemID, locationID string) (*domain.SafetyStockCalculation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPair[itemID+"|"+locationID]
	if !ok {
		return nil, domain.ErrNotFound("safety stock calculation", itemID+"/"+locationID)
	}
	calc := r.records[id]
	return &calc, nil
}

func (r *SafetyStockRepository) List(ctx context.Context, filter domain.Filter) ([]domain.SafetyStockCalculation, int, error) {
	filter = filter.Normalize()

	r.mu.RLock()
	matched := make([]domain.SafetyStockCalculation, 0, len(r.records))
	for _, calc := range r.records {
		if !matchItem(calc.ItemLocation, filter.ItemQuery) ||
			!matchLocation(calc.ItemLocation, filter.LocationQuery) {
			continue
		}
		if filter.ServiceLevel != nil && calc.ServiceLevel != *filter.ServiceLevel {
			continue
		}
		if !matchDateRange(calc.LastCalculated, filter.CalculatedFrom, filter.CalculatedTo) {
			continue
		}
		matched = append(matched, calc)
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
