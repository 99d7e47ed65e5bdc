package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/repository"
)

// PolicyRepository is an in-memory PolicyRepository.
type PolicyRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]domain.InventoryPolicy
	byPair  map[string]uuid.UUID
}

var _ repository.PolicyRepository = (*PolicyRepository)(nil)

// NewPolicyRepository creates an empty in-memory repository.
func NewPolicyRepository() *PolicyRepository {
	return &PolicyRepository{
		records: make(map[uuid.UUID]domain.InventoryPolicy),
		byPair:  make(map[string]uuid.UUID),
	}
}

func (r *PolicyRepository) Create(ctx context.Context, p *domain.InventoryPolicy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[p.ID] = *p
	r.byPair[p.PairKey()] = p.ID
	return nil
}

func (r *PolicyRepository) Update(ctx context.Context, p *domain.InventoryPolicy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[p.ID]; !ok {
		return domain.ErrNotFound("inventory policy", p.ID.String())
	}
	r.records[p.ID] = *p
	return nil
}

func (r *PolicyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryPolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound("inventory policy", id.String())
	}
	return &p, nil
}

func (r *PolicyRepository) GetByPair(ctx context.Context, itemID, locationID string) (*domain.InventoryPolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPair[itemID+"|"+locationID]
	if !ok {
		return nil, domain.ErrNotFound("inventory policy", itemID+"/"+locationID)
	}
	p := r.records[id]
	return &p, nil
}

func (r *PolicyRepository) List(ctx context.Context, filter domain.Filter) ([]domain.InventoryPolicy, int, error) {
	filter = filter.Normalize()

	r.mu.RLock()
	matched := make([]domain.InventoryPolicy, 0, len(r.records))
	for _, p := range r.records {
		if !matchItem(p.ItemLocation, filter.ItemQuery) ||
			!matchLocation(p.ItemLocation, filter.LocationQuery) {
			continue
		}
		if filter.PolicyType != "" && string(p.PolicyType) != filter.PolicyType {
			continue
		}
		if filter.ServiceLevel != nil && p.ServiceLevel != *filter.ServiceLevel {
			continue
		}
		if filter.CombinedClass != "" && p.CombinedClass != filter.CombinedClass {
			continue
		}
		if !matchDateRange(p.LastReviewed, filter.CalculatedFrom, filter.CalculatedTo) {
			continue
		}
		matched = append(matched, p)
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
