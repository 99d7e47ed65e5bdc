// internal/service/service_test.go
package service

import (
	"time"

	"github.com/opsuite/invopt/backend-go/internal/cache"
	"github.com/opsuite/invopt/backend-go/internal/config"
	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/repository/memory"
)

// newTestService builds an orchestrator over the in-memory stores with the
// stock engine defaults and a controllable clock.
func newTestService() (*OptimizationService, *clock) {
	svc := NewOptimizationService(
		memory.NewSafetyStockRepository(),
		memory.NewReorderPointRepository(),
		memory.NewClassificationRepository(),
		memory.NewPolicyRepository(),
		cache.NewNoopClassificationCache(),
		config.EngineConfig{},
	)
	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc.now = c.Now
	return svc, c
}

// clock is a manually advanced time source.
type clock struct {
	t time.Time
}

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func pair(itemID, locationID string) domain.ItemLocation {
	return domain.ItemLocation{
		ItemID:     itemID,
		ItemCode:   itemID,
		ItemName:   "Item " + itemID,
		LocationID: locationID,
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
