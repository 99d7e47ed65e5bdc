package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/engine"
)

// CalculateSafetyStock creates (or replaces, for an existing pair) the safety
// stock calculation and persists the derived value.
func (s *OptimizationService) CalculateSafetyStock(ctx context.Context, input domain.SafetyStockInput) (*domain.SafetyStockCalculation, error) {
	if err := validatePair(input.ItemLocation); err != nil {
		return nil, err
	}
	if input.DemandAverage < 0 {
		return nil, domain.ErrInvalidInput("demand_average", "demand average must not be negative")
	}
	if input.LeadTimeVariability < 0 {
		return nil, domain.ErrInvalidInput("lead_time_variability", "lead time variability must not be negative")
	}
	if input.ReviewPeriodDays < 0 {
		return nil, domain.ErrInvalidInput("review_period_days", "review period must be positive")
	}
	if input.ReviewPeriodDays == 0 {
		input.ReviewPeriodDays = s.defaults.DefaultReviewPeriodDays
	}
	if input.CalculationMethod == "" {
		input.CalculationMethod = domain.MethodNormalApproximation
	}

	unlock := s.locks.lock(input.PairKey())
	defer unlock()

	safetyStock, err := engine.SafetyStock(input.CalculationMethod, input.ServiceLevel, input.LeadTimeDays, input.DemandVariability)
	if err != nil {
		return nil, err
	}

	now := s.now()
	calc := &domain.SafetyStockCalculation{
		ID:                  uuid.New(),
		ItemLocation:        input.ItemLocation,
		ServiceLevel:        input.ServiceLevel,
		LeadTimeDays:        input.LeadTimeDays,
		LeadTimeVariability: input.LeadTimeVariability,
		DemandAverage:       input.DemandAverage,
		DemandVariability:   input.DemandVariability,
		ReviewPeriodDays:    input.ReviewPeriodDays,
		CalculationMethod:   input.CalculationMethod,
		SafetyStock:         safetyStock,
		CreatedBy:           input.CreatedBy,
		CreatedAt:           now,
		LastCalculated:      now,
		NextReview:          now.AddDate(0, 0, input.ReviewPeriodDays),
	}

	// One record per pair: a repeated calculation request replaces the
	// stored inputs, keeping the original identity and audit trail.
	if existing, err := s.safetyStocks.GetByPair(ctx, input.ItemID, input.LocationID); err == nil {
		calc.ID = existing.ID
		calc.CreatedAt = existing.CreatedAt
		if calc.CreatedBy == "" {
			calc.CreatedBy = existing.CreatedBy
		}
		if err := s.safetyStocks.Update(ctx, calc); err != nil {
			return nil, err
		}
		return calc, nil
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	if err := s.safetyStocks.Create(ctx, calc); err != nil {
		return nil, err
	}
	return calc, nil
}

// UpdateSafetyStock applies a partial update. Fields not supplied keep their
// stored value; the derived safety stock is recomputed from the merged
// inputs before the write commits, so it can never go stale.
func (s *OptimizationService) UpdateSafetyStock(ctx context.Context, id uuid.UUID, update domain.SafetyStockUpdate) (*domain.SafetyStockCalculation, error) {
	calc, err := s.safetyStocks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(calc.PairKey())
	defer unlock()

	// Reload under the pair lock so concurrent updates cannot interleave.
	calc, err = s.safetyStocks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.ServiceLevel != nil {
		calc.ServiceLevel = *update.ServiceLevel
	}
	if update.LeadTimeDays != nil {
		calc.LeadTimeDays = *update.LeadTimeDays
	}
	if update.LeadTimeVariability != nil {
		if *update.LeadTimeVariability < 0 {
			return nil, domain.ErrInvalidInput("lead_time_variability", "lead time variability must not be negative")
		}
		calc.LeadTimeVariability = *update.LeadTimeVariability
	}
	if update.DemandAverage != nil {
		if *update.DemandAverage < 0 {
			return nil, domain.ErrInvalidInput("demand_average", "demand average must not be negative")
		}
		calc.DemandAverage = *update.DemandAverage
	}
	if update.DemandVariability != nil {
		calc.DemandVariability = *update.DemandVariability
	}
	if update.ReviewPeriodDays != nil {
		if *update.ReviewPeriodDays <= 0 {
			return nil, domain.ErrInvalidInput("review_period_days", "review period must be positive")
		}
		calc.ReviewPeriodDays = *update.ReviewPeriodDays
	}
	if update.CalculationMethod != nil {
		calc.CalculationMethod = *update.CalculationMethod
	}

	safetyStock, err := engine.SafetyStock(calc.CalculationMethod, calc.ServiceLevel, calc.LeadTimeDays, calc.DemandVariability)
	if err != nil {
		return nil, err
	}
	calc.SafetyStock = safetyStock

	now := s.now()
	calc.LastCalculated = now
	calc.NextReview = now.AddDate(0, 0, calc.ReviewPeriodDays)

	if err := s.safetyStocks.Update(ctx, calc); err != nil {
		return nil, err
	}
	return calc, nil
}

// GetSafetyStock returns the calculation by id.
func (s *OptimizationService) GetSafetyStock(ctx context.Context, id uuid.UUID) (*domain.SafetyStockCalculation, error) {
	return s.safetyStocks.GetByID(ctx, id)
}

// ListSafetyStocks returns a page of calculations matching the filter.
func (s *OptimizationService) ListSafetyStocks(ctx context.Context, filter domain.Filter) (domain.Page[domain.SafetyStockCalculation], error) {
	filter = filter.Normalize()
	items, total, err := s.safetyStocks.List(ctx, filter)
	if err != nil {
		return domain.Page[domain.SafetyStockCalculation]{}, err
	}
	return domain.NewPage(items, total, filter), nil
}
