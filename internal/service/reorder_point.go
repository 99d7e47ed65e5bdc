package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/engine"
)

// CalculateReorderPoint creates (or replaces, for an existing pair) the
// reorder point record. With the manual override active the manual value
// wins over the formula result.
func (s *OptimizationService) CalculateReorderPoint(ctx context.Context, input domain.ReorderPointInput) (*domain.ReorderPoint, error) {
	if err := validatePair(input.ItemLocation); err != nil {
		return nil, err
	}
	if input.AverageDailyDemand < 0 {
		return nil, domain.ErrInvalidInput("average_daily_demand", "average daily demand must not be negative")
	}
	if input.LeadTimeDays < 0 {
		return nil, domain.ErrInvalidInput("lead_time_days", "lead time must not be negative")
	}
	if input.SafetyStock < 0 {
		return nil, domain.ErrInvalidInput("safety_stock", "safety stock must not be negative")
	}

	unlock := s.locks.lock(input.PairKey())
	defer unlock()

	value, err := engine.ResolveReorderPoint(input.ManualOverride, input.ManualValue,
		input.AverageDailyDemand, input.LeadTimeDays, input.SafetyStock)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rp := &domain.ReorderPoint{
		ID:                 uuid.New(),
		ItemLocation:       input.ItemLocation,
		AverageDailyDemand: input.AverageDailyDemand,
		LeadTimeDays:       input.LeadTimeDays,
		SafetyStock:        input.SafetyStock,
		ManualOverride:     input.ManualOverride,
		ManualValue:        input.ManualValue,
		ReorderPoint:       value,
		CreatedBy:          input.CreatedBy,
		CreatedAt:          now,
		LastCalculated:     now,
	}

	if existing, err := s.reorderPoints.GetByPair(ctx, input.ItemID, input.LocationID); err == nil {
		rp.ID = existing.ID
		rp.CreatedAt = existing.CreatedAt
		if rp.CreatedBy == "" {
			rp.CreatedBy = existing.CreatedBy
		}
		if err := s.reorderPoints.Update(ctx, rp); err != nil {
			return nil, err
		}
		return rp, nil
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	if err := s.reorderPoints.Create(ctx, rp); err != nil {
		return nil, err
	}
	return rp, nil
}

// UpdateReorderPoint applies a partial update. The override rule is
// evaluated against the post-update override flag: active means the manual
// value (stored or newly supplied) wins; inactive means the formula is
// re-evaluated over the merged inputs, even when none of them changed in
// this call. A stale manual value never survives switching the override off.
func (s *OptimizationService) UpdateReorderPoint(ctx context.Context, id uuid.UUID, update domain.ReorderPointUpdate) (*domain.ReorderPoint, error) {
	rp, err := s.reorderPoints.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(rp.PairKey())
	defer unlock()

	rp, err = s.reorderPoints.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.AverageDailyDemand != nil {
		if *update.AverageDailyDemand < 0 {
			return nil, domain.ErrInvalidInput("average_daily_demand", "average daily demand must not be negative")
		}
		rp.AverageDailyDemand = *update.AverageDailyDemand
	}
	if update.LeadTimeDays != nil {
		if *update.LeadTimeDays < 0 {
			return nil, domain.ErrInvalidInput("lead_time_days", "lead time must not be negative")
		}
		rp.LeadTimeDays = *update.LeadTimeDays
	}
	if update.SafetyStock != nil {
		if *update.SafetyStock < 0 {
			return nil, domain.ErrInvalidInput("safety_stock", "safety stock must not be negative")
		}
		rp.SafetyStock = *update.SafetyStock
	}
	if update.ManualOverride != nil {
		rp.ManualOverride = *update.ManualOverride
	}
	if update.ManualValue != nil {
		rp.ManualValue = update.ManualValue
	}

	value, err := engine.ResolveReorderPoint(rp.ManualOverride, rp.ManualValue,
		rp.AverageDailyDemand, rp.LeadTimeDays, rp.SafetyStock)
	if err != nil {
		return nil, err
	}
	rp.ReorderPoint = value
	rp.LastCalculated = s.now()

	if err := s.reorderPoints.Update(ctx, rp); err != nil {
		return nil, err
	}
	return rp, nil
}

// GetReorderPoint returns the record by id.
func (s *OptimizationService) GetReorderPoint(ctx context.Context, id uuid.UUID) (*domain.ReorderPoint, error) {
	return s.reorderPoints.GetByID(ctx, id)
}

// ListReorderPoints returns a page of records matching the filter.
func (s *OptimizationService) ListReorderPoints(ctx context.Context, filter domain.Filter) (domain.Page[domain.ReorderPoint], error) {
	filter = filter.Normalize()
	items, total, err := s.reorderPoints.List(ctx, filter)
	if err != nil {
		return domain.Page[domain.ReorderPoint]{}, err
	}
	return domain.NewPage(items, total, filter), nil
}
