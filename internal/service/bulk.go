package service

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/engine"
)

// bulkOverIDs fans work out over record ids with bounded parallelism.
// Per-item taxonomy failures (validation, unknown id) are logged and skipped;
// anything else aborts the batch. Updated counts only successful writes.
func (s *OptimizationService) bulkOverIDs(ctx context.Context, ids []uuid.UUID, op string, fn func(ctx context.Context, id uuid.UUID) error) (domain.BulkResult, error) {
	var updated atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.defaults.BulkWorkers)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := fn(ctx, id); err != nil {
				if domain.IsValidation(err) || domain.IsNotFound(err) {
					log.Warn().Err(err).Str("op", op).Str("id", id.String()).Msg("bulk: skipping record")
					return nil
				}
				return err
			}
			updated.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.BulkResult{}, err
	}

	return domain.BulkResult{Processed: len(ids), Updated: int(updated.Load())}, nil
}

// BulkCalculateSafetyStock recomputes the stored calculations for the given
// ids from their current inputs.
func (s *OptimizationService) BulkCalculateSafetyStock(ctx context.Context, ids []uuid.UUID) (domain.BulkResult, error) {
	return s.bulkOverIDs(ctx, ids, "safety_stock", func(ctx context.Context, id uuid.UUID) error {
		_, err := s.UpdateSafetyStock(ctx, id, domain.SafetyStockUpdate{})
		return err
	})
}

// BulkCalculateReorderPoints recomputes the stored reorder points for the
// given ids, honoring each record's manual override.
func (s *OptimizationService) BulkCalculateReorderPoints(ctx context.Context, ids []uuid.UUID) (domain.BulkResult, error) {
	return s.bulkOverIDs(ctx, ids, "reorder_point", func(ctx context.Context, id uuid.UUID) error {
		_, err := s.UpdateReorderPoint(ctx, id, domain.ReorderPointUpdate{})
		return err
	})
}

// BulkClassifyInventory re-derives the stored classifications for the given
// ids from their current inputs.
func (s *OptimizationService) BulkClassifyInventory(ctx context.Context, ids []uuid.UUID) (domain.BulkResult, error) {
	return s.bulkOverIDs(ctx, ids, "classification", func(ctx context.Context, id uuid.UUID) error {
		cls, err := s.classifications.GetByID(ctx, id)
		if err != nil {
			return err
		}

		unlock := s.locks.lock(cls.PairKey())
		defer unlock()

		cls, err = s.classifications.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if cls.ManualOverride {
			abc, xyz, err := engine.SplitCombinedClass(cls.ManualClass)
			if err != nil {
				return err
			}
			cls.ABCClass, cls.XYZClass = abc, xyz
		} else {
			abc, err := engine.ClassifyABC(cls.AnnualConsumptionValue)
			if err != nil {
				return err
			}
			xyz, err := engine.ClassifyXYZ(cls.ConsumptionVariability, cls.XYZThresholds)
			if err != nil {
				return err
			}
			cls.ABCClass, cls.XYZClass = abc, xyz
		}
		cls.CombinedClass = string(cls.ABCClass) + string(cls.XYZClass)
		cls.LastCalculated = s.now()

		if err := s.classifications.Update(ctx, cls); err != nil {
			return err
		}
		s.invalidateClassCache(ctx)
		return nil
	})
}

// BulkAssignPolicies applies one policy template to every pair currently
// bearing the combined class. A malformed class selector fails the whole
// call; per-pair validation failures are skipped and reported through the
// counts only.
func (s *OptimizationService) BulkAssignPolicies(ctx context.Context, combinedClass string, template domain.PolicyTemplate) (domain.BulkResult, error) {
	if _, _, err := engine.SplitCombinedClass(combinedClass); err != nil {
		return domain.BulkResult{}, domain.ErrInvalidInput("combined_class", "invalid class selector "+combinedClass)
	}
	if _, err := engine.ZScore(template.ServiceLevel); err != nil {
		return domain.BulkResult{}, err
	}

	classifications, err := s.classifications.ListByCombinedClass(ctx, combinedClass)
	if err != nil {
		return domain.BulkResult{}, err
	}

	var updated atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.defaults.BulkWorkers)
	for _, cls := range classifications {
		cls := cls
		g.Go(func() error {
			input := domain.PolicyInput{
				ItemLocation:       cls.ItemLocation,
				PolicyType:         template.PolicyType,
				ServiceLevel:       template.ServiceLevel,
				MinQuantity:        template.MinQuantity,
				MaxQuantity:        template.MaxQuantity,
				OrderQuantity:      template.OrderQuantity,
				OrderFrequencyDays: template.OrderFrequencyDays,
				ReviewPeriodDays:   template.ReviewPeriodDays,
				CreatedBy:          template.CreatedBy,
			}

			unlock := s.locks.lock(cls.PairKey())
			defer unlock()

			if _, err := s.assignPolicyLocked(gctx, input); err != nil {
				if domain.IsValidation(err) {
					log.Warn().Err(err).Str("pair", cls.PairKey()).Msg("bulk assign: skipping pair")
					return nil
				}
				return err
			}
			updated.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.BulkResult{}, err
	}

	return domain.BulkResult{Processed: len(classifications), Updated: int(updated.Load())}, nil
}
