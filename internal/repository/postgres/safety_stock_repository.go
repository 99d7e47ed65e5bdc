package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/repository"
)

const safetyStockColumns = `
	id, item_id, item_code, item_name, location_id, location_name,
	service_level, lead_time_days, lead_time_variability, demand_average,
	demand_variability, review_period_days, calculation_method, safety_stock,
	created_by, created_at, last_calculated, next_review
`

type safetyStockRepository struct {
	db *sqlx.DB
}

func NewSafetyStockRepository(db *sqlx.DB) repository.SafetyStockRepository {
	return &safetyStockRepository{db: db}
}

func (r *safetyStockRepository) Create(ctx context.Context, calc *domain.SafetyStockCalculation) error {
	query := `
		INSERT INTO safety_stock_calculations (` + safetyStockColumns + `)
		VALUES (
			:id, :item_id, :item_code, :item_name, :location_id, :location_name,
			:service_level, :lead_time_days, :lead_time_variability, :demand_average,
			:demand_variability, :review_period_days, :calculation_method, :safety_stock,
			:created_by, :created_at, :last_calculated, :next_review
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, calc); err != nil {
		return fmt.Errorf("error creating safety stock calculation: %w", err)
	}
	return nil
}

func (r *safetyStockRepository) Update(ctx context.Context, calc *domain.SafetyStockCalculation) error {
	query := `
		UPDATE safety_stock_calculations SET
			service_level = :service_level,
			lead_time_days = :lead_time_days,
			lead_time_variability = :lead_time_variability,
			demand_average = :demand_average,
			demand_variability = :demand_variability,
			review_period_days = :review_period_days,
			calculation_method = :calculation_method,
			safety_stock = :safety_stock,
			last_calculated = :last_calculated,
			next_review = :next_review
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, calc)
	if err != nil {
		return fmt.Errorf("error updating safety stock calculation: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return domain.ErrNotFound("safety stock calculation", calc.ID.String())
	}
	return nil
}

func (r *safetyStockRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SafetyStockCalculation, error) {
	query := `SELECT ` + safetyStockColumns + ` FROM safety_stock_calculations WHERE id = $1`

	var calc domain.SafetyStockCalculation
	if err := r.db.GetContext(ctx, &calc, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("safety stock calculation", id.String())
		}
		return nil, fmt.Errorf("error getting safety stock calculation: %w", err)
	}
	return &calc, nil
}

func (r *safetyStockRepository) GetByPair(ctx context.Context, itemID, locationID string) (*domain.SafetyStockCalculation, error) {
	query := `SELECT ` + safetyStockColumns + ` FROM safety_stock_calculations WHERE item_id = $1 AND location_id = $2`

	var calc domain.SafetyStockCalculation
	if err := r.db.GetContext(ctx, &calc, query, itemID, locationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("safety stock calculation", itemID+"/"+locationID)
		}
		return nil, fmt.Errorf("error getting safety stock calculation by pair: %w", err)
	}
	return &calc, nil
}

func (r *safetyStockRepository) List(ctx context.Context, filter domain.Filter) ([]domain.SafetyStockCalculation, int, error) {
	filter = filter.Normalize()

	var b filterBuilder
	b.addPairFilters(filter)
	if filter.ServiceLevel != nil {
		b.add("service_level = $%d", *filter.ServiceLevel)
	}
	b.addCalculatedRange(filter, "last_calculated")

	var total int
	countQuery := `SELECT COUNT(*) FROM safety_stock_calculations` + b.whereClause()
	if err := r.db.GetContext(ctx, &total, countQuery, b.args...); err != nil {
		return nil, 0, fmt.Errorf("error counting safety stock calculations: %w", err)
	}

	query := `SELECT ` + safetyStockColumns + ` FROM safety_stock_calculations` +
		b.whereClause() + ` ORDER BY created_at, id` + limitOffset(filter)

	calcs := make([]domain.SafetyStockCalculation, 0, filter.PageSize)
	if err := r.db.SelectContext(ctx, &calcs, query, b.args...); err != nil {
		return nil, 0, fmt.Errorf("error listing safety stock calculations: %w", err)
	}
	return calcs, total, nil
}
