package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/repository"
)

// ClassificationRepository is an in-memory ClassificationRepository.
type ClassificationRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]domain.InventoryClassification
	byPair  map[string]uuid.UUID
}

var _ repository.ClassificationRepository = (*ClassificationRepository)(nil)

// NewClassificationRepository creates an empty in-memory repository.
func NewClassificationRepository() *ClassificationRepository {
	return &ClassificationRepository{
		records: make(map[uuid.UUID]domain.InventoryClassification),
		byPair:  make(map[string]uuid.UUID),
	}
}

func (r *ClassificationRepository) Create(ctx context.Context, cls *domain.InventoryClassification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[cls.ID] = *cls
	r.byPair[cls.PairKey()] = cls.ID
	return nil
}

func (r *ClassificationRepository) Update(ctx context.Context, cls *domain.InventoryClassification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[cls.ID]; !ok {
		return domain.ErrNotFound("classification", cls.ID.String())
	}
	r.records[cls.ID] = *cls
	return nil
}

func (r *ClassificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryClassification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cls, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound("classification", id.String())
	}
	return &cls, nil
}

func (r *ClassificationRepository) GetByPair(ctx context.Context, itemID, locationID string) (*domain.InventoryClassification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPair[itemID+"|"+locationID]
	if !ok {
		return nil, domain.ErrNotFound("classification", itemID+"/"+locationID)
	}
	cls := r.records[id]
	return &cls, nil
}

func (r *ClassificationRepository) List(ctx context.Context, filter domain.Filter) ([]domain.InventoryClassification, int, error) {
	filter = filter.Normalize()

	r.mu.RLock()
	matched := make([]domain.InventoryClassification, 0, len(r.records))
	for _, cls := range r.records {
		if !matchItem(cls.ItemLocation, filter.ItemQuery) ||
			!matchLocation(cls.ItemLocation, filter.LocationQuery) {
			continue
		}
		if filter.ABCClass != "" && string(cls.ABCClass) != filter.ABCClass {
			continue
		}
		if filter.XYZClass != "" && string(cls.XYZClass) != filter.XYZClass {
			continue
		}
		if filter.CombinedClass != "" && cls.CombinedClass != filter.CombinedClass {
			continue
		}
		if !matchDateRange(cls.LastCalculated, filter.CalculatedFrom, filter.CalculatedTo) {
			continue
		}
		matched = append(matched, cls)
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

func (r *ClassificationRepository) ListByCombinedClass(ctx context.Context, combinedClass string) ([]domain.InventoryClassification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []domain.InventoryClassification
	for _, cls := range r.records {
		if cls.CombinedClass == combinedClass {
			matched = append(matched, cls)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PairKey() < matched[j].PairKey()
	})
	return matched, nil
}

func (r *ClassificationRepository) ClassSummary(ctx context.Context) ([]domain.ClassSummary, error) {
	r.mu.RLock()
	counts := make(map[string]int)
	for _, cls := range r.records {
		counts[cls.CombinedClass]++
	}
	r.mu.RUnlock()

	summaries := make([]domain.ClassSummary, 0, len(counts))
	for class, count := range counts {
		summaries = append(summaries, domain.ClassSummary{CombinedClass: class, Count: count})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CombinedClass < summaries[j].CombinedClass
	})
	return summaries, nil
}
