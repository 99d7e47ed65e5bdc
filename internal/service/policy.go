package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/engine"
)

// AssignPolicy creates or replaces the replenishment policy for a pair.
// Missing fields are defaulted before validation: the reorder point is
// derived from the pair's stored safety stock and demand when available, the
// target stock level falls back to the max quantity, and review/order cadence
// falls back to the combined-class template.
func (s *OptimizationService) AssignPolicy(ctx context.Context, input domain.PolicyInput) (*domain.InventoryPolicy, error) {
	if err := validatePair(input.ItemLocation); err != nil {
		return nil, err
	}
	if _, err := engine.ZScore(input.ServiceLevel); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(input.PairKey())
	defer unlock()

	return s.assignPolicyLocked(ctx, input)
}

// assignPolicyLocked runs the assignment with the pair lock already held.
func (s *OptimizationService) assignPolicyLocked(ctx context.Context, input domain.PolicyInput) (*domain.InventoryPolicy, error) {
	now := s.now()
	p := &domain.InventoryPolicy{
		ID:                 uuid.New(),
		ItemLocation:       input.ItemLocation,
		PolicyType:         input.PolicyType,
		MinQuantity:        input.MinQuantity,
		MaxQuantity:        input.MaxQuantity,
		ReorderPoint:       input.ReorderPoint,
		TargetStockLevel:   input.TargetStockLevel,
		OrderQuantity:      input.OrderQuantity,
		OrderFrequencyDays: input.OrderFrequencyDays,
		LeadTimeDays:       input.LeadTimeDays,
		ServiceLevel:       input.ServiceLevel,
		ReviewPeriodDays:   input.ReviewPeriodDays,
		CreatedBy:          input.CreatedBy,
		CreatedAt:          now,
		LastReviewed:       now,
	}

	// The policy is tagged with the class it was assigned under, when the
	// pair has been classified.
	if cls, err := s.classifications.GetByPair(ctx, input.ItemID, input.LocationID); err == nil {
		p.CombinedClass = cls.CombinedClass
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	if p.ReorderPoint == nil {
		if ss, err := s.safetyStocks.GetByPair(ctx, input.ItemID, input.LocationID); err == nil {
			derived, err := engine.ReorderPoint(ss.DemandAverage, ss.LeadTimeDays, float64(ss.SafetyStock))
			if err != nil {
				return nil, err
			}
			value := float64(derived)
			p.ReorderPoint = &value
			if p.LeadTimeDays == 0 {
				p.LeadTimeDays = ss.LeadTimeDays
			}
		} else if !domain.IsNotFound(err) {
			return nil, err
		}
	}
	if p.TargetStockLevel == nil && p.MaxQuantity != nil {
		target := *p.MaxQuantity
		p.TargetStockLevel = &target
	}
	if defaults, ok := engine.DefaultsForClass(p.CombinedClass); ok {
		if p.ReviewPeriodDays == 0 {
			p.ReviewPeriodDays = defaults.ReviewPeriodDays
		}
		if p.OrderFrequencyDays == 0 {
			p.OrderFrequencyDays = defaults.OrderFrequencyDays
		}
	}
	if p.ReviewPeriodDays == 0 {
		p.ReviewPeriodDays = s.defaults.DefaultReviewPeriodDays
	}

	if err := engine.ValidatePolicy(p); err != nil {
		return nil, err
	}

	// Policies are never deleted: an assignment to an already-covered pair
	// supersedes the stored policy in place.
	if existing, err := s.policies.GetByPair(ctx, input.ItemID, input.LocationID); err == nil {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		if p.CreatedBy == "" {
			p.CreatedBy = existing.CreatedBy
		}
		if err := s.policies.Update(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	if err := s.policies.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePolicy applies a partial update and re-validates the ordering
// invariants over the merged policy.
func (s *OptimizationService) UpdatePolicy(ctx context.Context, id uuid.UUID, update domain.PolicyUpdate) (*domain.InventoryPolicy, error) {
	p, err := s.policies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(p.PairKey())
	defer unlock()

	p, err = s.policies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.PolicyType != nil {
		p.PolicyType = *update.PolicyType
	}
	if update.ServiceLevel != nil {
		if _, err := engine.ZScore(*update.ServiceLevel); err != nil {
			return nil, err
		}
		p.ServiceLevel = *update.ServiceLevel
	}
	if update.MinQuantity != nil {
		p.MinQuantity = update.MinQuantity
	}
	if update.MaxQuantity != nil {
		p.MaxQuantity = update.MaxQuantity
	}
	if update.ReorderPoint != nil {
		p.ReorderPoint = update.ReorderPoint
	}
	if update.TargetStockLevel != nil {
		p.TargetStockLevel = update.TargetStockLevel
	}
	if update.OrderQuantity != nil {
		p.OrderQuantity = update.OrderQuantity
	}
	if update.OrderFrequencyDays != nil {
		p.OrderFrequencyDays = *update.OrderFrequencyDays
	}
	if update.LeadTimeDays != nil {
		p.LeadTimeDays = *update.LeadTimeDays
	}
	if update.ReviewPeriodDays != nil {
		if *update.ReviewPeriodDays <= 0 {
			return nil, domain.ErrInvalidInput("review_period_days", "review period must be positive")
		}
		p.ReviewPeriodDays = *update.ReviewPeriodDays
	}

	if err := engine.ValidatePolicy(p); err != nil {
		return nil, err
	}
	p.LastReviewed = s.now()

	if err := s.policies.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPolicy returns the record by id.
func (s *OptimizationService) GetPolicy(ctx context.Context, id uuid.UUID) (*domain.InventoryPolicy, error) {
	return s.policies.GetByID(ctx, id)
}

// ListPolicies returns a page of records matching the filter.
func (s *OptimizationService) ListPolicies(ctx context.Context, filter domain.Filter) (domain.Page[domain.InventoryPolicy], error) {
	filter = filter.Normalize()
	items, total, err := s.policies.List(ctx, filter)
	if err != nil {
		return domain.Page[domain.InventoryPolicy]{}, err
	}
	return domain.NewPage(items, total, filter), nil
}
