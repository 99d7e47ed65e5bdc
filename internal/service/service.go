// Package service implements the optimization orchestrator: uniform
// create/read/update/bulk operations over the calculators and classifier,
// enforcing recalculation-on-change invariants and manual-override
// precedence. All audit fields are stamped here, never in the engine.
package service

import (
	"sync"
	"time"

	"github.com/opsuite/invopt/backend-go/internal/cache"
	"github.com/opsuite/invopt/backend-go/internal/config"
	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/repository"
)

// OptimizationService coordinates the calculation engine and the stores.
// Writes to a single (item, location) pair are serialized on a per-pair
// lock; different pairs proceed in parallel.
type OptimizationService struct {
	safetyStocks    repository.SafetyStockRepository
	reorderPoints   repository.ReorderPointRepository
	classifications repository.ClassificationRepository
	policies        repository.PolicyRepository
	cache           cache.ClassificationCache
	defaults        config.EngineConfig
	locks           pairLocks
	now             func() time.Time
}

// NewOptimizationService wires the orchestrator. A nil cache disables
// classification summary caching.
func NewOptimizationService(
	safetyStocks repository.SafetyStockRepository,
	reorderPoints repository.ReorderPointRepository,
	classifications repository.ClassificationRepository,
	policies repository.PolicyRepository,
	cacheImpl cache.ClassificationCache,
	defaults config.EngineConfig,
) *OptimizationService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopClassificationCache()
	}
	if defaults.DefaultReviewPeriodDays <= 0 {
		defaults.DefaultReviewPeriodDays = 30
	}
	if defaults.DefaultXThreshold <= 0 {
		defaults.DefaultXThreshold = 0.5
	}
	if defaults.DefaultYThreshold <= defaults.DefaultXThreshold {
		defaults.DefaultYThreshold = defaults.DefaultXThreshold * 2
	}
	if defaults.DefaultAThreshold <= 0 {
		defaults.DefaultAThreshold = 0.8
	}
	if defaults.DefaultBThreshold <= defaults.DefaultAThreshold {
		defaults.DefaultBThreshold = 0.95
	}
	if defaults.BulkWorkers <= 0 {
		defaults.BulkWorkers = 8
	}

	return &OptimizationService{
		safetyStocks:    safetyStocks,
		reorderPoints:   reorderPoints,
		classifications: classifications,
		policies:        policies,
		cache:           cacheImpl,
		defaults:        defaults,
		now:             time.Now,
	}
}

// pairLocks serializes writes per (item, location) pair.
type pairLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lock acquires the pair's mutex and returns its unlock function.
func (l *pairLocks) lock(key string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// validatePair checks that a request names both halves of the pair.
func validatePair(il domain.ItemLocation) error {
	if il.ItemID == "" {
		return domain.ErrInvalidInput("item_id", "item id is required")
	}
	if il.LocationID == "" {
		return domain.ErrInvalidInput("location_id", "location id is required")
	}
	return nil
}
