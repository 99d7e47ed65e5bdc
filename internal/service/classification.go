package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/engine"
)

// ClassifyInventory creates (or replaces, for an existing pair) the ABC/XYZ
// classification. Threshold fields left unset are filled from the engine
// defaults and snapshotted onto the record.
func (s *OptimizationService) ClassifyInventory(ctx context.Context, input domain.ClassificationInput) (*domain.InventoryClassification, error) {
	if err := validatePair(input.ItemLocation); err != nil {
		return nil, err
	}
	if input.AnnualConsumptionValue.IsNegative() {
		return nil, domain.ErrInvalidInput("annual_consumption_value", "annual consumption value must not be negative")
	}
	if input.AnnualConsumptionQuantity < 0 {
		return nil, domain.ErrInvalidInput("annual_consumption_quantity", "annual consumption quantity must not be negative")
	}
	if input.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput("unit_cost", "unit cost must not be negative")
	}
	if input.ConsumptionVariability < 0 {
		return nil, domain.ErrInvalidInput("consumption_variability", "consumption variability must not be negative")
	}

	abcThresholds := domain.ABCThresholds{
		AThreshold: s.defaults.DefaultAThreshold,
		BThreshold: s.defaults.DefaultBThreshold,
	}
	if input.ABCThresholds != nil {
		abcThresholds = *input.ABCThresholds
	}
	xyzThresholds := domain.XYZThresholds{
		XThreshold: s.defaults.DefaultXThreshold,
		YThreshold: s.defaults.DefaultYThreshold,
	}
	if input.XYZThresholds != nil {
		xyzThresholds = *input.XYZThresholds
	}

	// Inputs and snapshotted thresholds are range-checked even when the
	// manual override bypasses the classification formulas.
	if abcThresholds.AThreshold <= 0 || abcThresholds.BThreshold <= abcThresholds.AThreshold || abcThresholds.BThreshold > 1 {
		return nil, domain.ErrInvalidInput("abc_thresholds", "thresholds must satisfy 0 < a < b <= 1")
	}
	if xyzThresholds.XThreshold <= 0 || xyzThresholds.YThreshold <= xyzThresholds.XThreshold {
		return nil, domain.ErrInvalidInput("xyz_thresholds", "thresholds must satisfy 0 < x < y")
	}

	unlock := s.locks.lock(input.PairKey())
	defer unlock()

	var (
		abc domain.ABCClass
		xyz domain.XYZClass
		err error
	)
	if input.ManualOverride {
		abc, xyz, err = engine.SplitCombinedClass(input.ManualClass)
		if err != nil {
			return nil, err
		}
	} else {
		abc, err = engine.ClassifyABC(input.AnnualConsumptionValue)
		if err != nil {
			return nil, err
		}
		xyz, err = engine.ClassifyXYZ(input.ConsumptionVariability, xyzThresholds)
		if err != nil {
			return nil, err
		}
	}

	now := s.now()
	cls := &domain.InventoryClassification{
		ID:                        uuid.New(),
		ItemLocation:              input.ItemLocation,
		AnnualConsumptionValue:    input.AnnualConsumptionValue,
		AnnualConsumptionQuantity: input.AnnualConsumptionQuantity,
		UnitCost:                  input.UnitCost,
		ConsumptionVariability:    input.ConsumptionVariability,
		ABCThresholds:             abcThresholds,
		XYZThresholds:             xyzThresholds,
		ManualOverride:            input.ManualOverride,
		ManualClass:               input.ManualClass,
		ABCClass:                  abc,
		XYZClass:                  xyz,
		CombinedClass:             string(abc) + string(xyz),
		CreatedBy:                 input.CreatedBy,
		CreatedAt:                 now,
		LastCalculated:            now,
	}

	if existing, err := s.classifications.GetByPair(ctx, input.ItemID, input.LocationID); err == nil {
		cls.ID = existing.ID
		cls.CreatedAt = existing.CreatedAt
		if cls.CreatedBy == "" {
			cls.CreatedBy = existing.CreatedBy
		}
		if err := s.classifications.Update(ctx, cls); err != nil {
			return nil, err
		}
		s.invalidateClassCache(ctx)
		return cls, nil
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	if err := s.classifications.Create(ctx, cls); err != nil {
		return nil, err
	}
	s.invalidateClassCache(ctx)
	return cls, nil
}

// UpdateClassification applies a partial update. A class component is
// recomputed only when its numeric input was supplied and the override is
// off; dropping the override recomputes both components from the stored
// inputs. The combined class always equals abc + xyz afterwards.
func (s *OptimizationService) UpdateClassification(ctx context.Context, id uuid.UUID, update domain.ClassificationUpdate) (*domain.InventoryClassification, error) {
	cls, err := s.classifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(cls.PairKey())
	defer unlock()

	cls, err = s.classifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	overrideWas := cls.ManualOverride

	if update.AnnualConsumptionValue != nil {
		if update.AnnualConsumptionValue.IsNegative() {
			return nil, domain.ErrInvalidInput("annual_consumption_value", "annual consumption value must not be negative")
		}
		cls.AnnualConsumptionValue = *update.AnnualConsumptionValue
	}
	if update.AnnualConsumptionQuantity != nil {
		if *update.AnnualConsumptionQuantity < 0 {
			return nil, domain.ErrInvalidInput("annual_consumption_quantity", "annual consumption quantity must not be negative")
		}
		cls.AnnualConsumptionQuantity = *update.AnnualConsumptionQuantity
	}
	if update.UnitCost != nil {
		if update.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput("unit_cost", "unit cost must not be negative")
		}
		cls.UnitCost = *update.UnitCost
	}
	if update.ConsumptionVariability != nil {
		if *update.ConsumptionVariability < 0 {
			return nil, domain.ErrInvalidInput("consumption_variability", "consumption variability must not be negative")
		}
		cls.ConsumptionVariability = *update.ConsumptionVariability
	}
	if update.ManualOverride != nil {
		cls.ManualOverride = *update.ManualOverride
	}
	if update.ManualClass != nil {
		cls.ManualClass = *update.ManualClass
	}

	switch {
	case cls.ManualOverride:
		abc, xyz, err := engine.SplitCombinedClass(cls.ManualClass)
		if err != nil {
			return nil, err
		}
		cls.ABCClass, cls.XYZClass = abc, xyz
	case overrideWas:
		// Override dropped: both components come back under formula control.
		abc, err := engine.ClassifyABC(cls.AnnualConsumptionValue)
		if err != nil {
			return nil, err
		}
		xyz, err := engine.ClassifyXYZ(cls.ConsumptionVariability, cls.XYZThresholds)
		if err != nil {
			return nil, err
		}
		cls.ABCClass, cls.XYZClass = abc, xyz
	default:
		if update.AnnualConsumptionValue != nil {
			abc, err := engine.ClassifyABC(cls.AnnualConsumptionValue)
			if err != nil {
				return nil, err
			}
			cls.ABCClass = abc
		}
		if update.ConsumptionVariability != nil {
			xyz, err := engine.ClassifyXYZ(cls.ConsumptionVariability, cls.XYZThresholds)
			if err != nil {
				return nil, err
			}
			cls.XYZClass = xyz
		}
	}
	cls.CombinedClass = string(cls.ABCClass) + string(cls.XYZClass)
	cls.LastCalculated = s.now()

	if err := s.classifications.Update(ctx, cls); err != nil {
		return nil, err
	}
	s.invalidateClassCache(ctx)
	return cls, nil
}

// GetClassification returns the record by id.
func (s *OptimizationService) GetClassification(ctx context.Context, id uuid.UUID) (*domain.InventoryClassification, error) {
	return s.classifications.GetByID(ctx, id)
}

// ListClassifications returns a page of records matching the filter.
func (s *OptimizationService) ListClassifications(ctx context.Context, filter domain.Filter) (domain.Page[domain.InventoryClassification], error) {
	filter = filter.Normalize()
	items, total, err := s.classifications.List(ctx, filter)
	if err != nil {
		return domain.Page[domain.InventoryClassification]{}, err
	}
	return domain.NewPage(items, total, filter), nil
}

// ClassSummary returns the combined-class distribution, served from cache
// when warm.
func (s *OptimizationService) ClassSummary(ctx context.Context) ([]domain.ClassSummary, error) {
	if summaries, ok, err := s.cache.GetClassSummary(ctx); err == nil && ok {
		return summaries, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("classification: cache get summary failed")
	}

	summaries, err := s.classifications.ClassSummary(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetClassSummary(ctx, summaries); err != nil {
		log.Warn().Err(err).Msg("classification: cache set summary failed")
	}
	return summaries, nil
}

func (s *OptimizationService) invalidateClassCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("classification: cache invalidate failed")
	}
}
