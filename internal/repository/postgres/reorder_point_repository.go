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

const reorderPointColumns = `
	id, item_id, item_code, item_name, location_id, location_name,
	average_daily_demand, lead_time_days, safety_stock, manual_override,
	manual_value, reorder_point, created_by, created_at, last_calculated
`

type reorderPointRepository struct {
	db *sqlx.DB
}

func NewReorderPointRepository(db *sqlx.DB) repository.ReorderPointRepository {
	return &reorderPointRepository{db: db}
}

func (r *reorderPointRepository) Create(ctx context.Context, rp *domain.ReorderPoint) error {
	query := `
		INSERT INTO reorder_points (` + reorderPointColumns + `)
		VALUES (
			:id, :item_id, :item_code, :item_name, :location_id, :location_name,
			:average_daily_demand, :lead_time_days, :safety_stock, :manual_override,
			:manual_value, :reorder_point, :created_by, :created_at, :last_calculated
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, rp); err != nil {
		return fmt.Errorf("error creating reorder point: %w", err)
	}
	return nil
}

func (r *reorderPointRepository) Update(ctx context.Context, rp *domain.ReorderPoint) error {
	query := `
		UPDATE reorder_points SET
			average_daily_demand = :average_daily_demand,
			lead_time_days = :lead_time_days,
			safety_stock = :safety_stock,
			manual_override = :manual_override,
			manual_value = :manual_value,
			reorder_point = :reorder_point,
			last_calculated = :last_calculated
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, rp)
	if err != nil {
		return fmt.Errorf("error updating reorder point: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return domain.ErrNotFound("reorder point", rp.ID.String())
	}
	return nil
}

func (r *reorderPointRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReorderPoint, error) {
	query := `SELECT ` + reorderPointColumns + ` FROM reorder_points WHERE id = $1`

	var rp domain.ReorderPoint
	if err := r.db.GetContext(ctx, &rp, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("reorder point", id.String())
		}
		return nil, fmt.Errorf("error getting reorder point: %w", err)
	}
	return &rp, nil
}

func (r *reorderPointRepository) GetByPair(ctx context.Context, itemID, locationID string) (*domain.ReorderPoint, error) {
	query := `SELECT ` + reorderPointColumns + ` FROM reorder_points WHERE item_id = $1 AND location_id = $2`

	var rp domain.ReorderPoint
	if err := r.db.GetContext(ctx, &rp, query, itemID, locationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("reorder point", itemID+"/"+locationID)
		}
		return nil, fmt.Errorf("error getting reorder point by pair: %w", err)
	}
	return &rp, nil
}

func (r *reorderPointRepository) List(ctx context.Context, filter domain.Filter) ([]domain.ReorderPoint, int, error) {
	filter = filter.Normalize()

	var b filterBuilder
	b.addPairFilters(filter)
	b.addCalculatedRange(filter, "last_calculated")

	var total int
	countQuery := `SELECT COUNT(*) FROM reorder_points` + b.whereClause()
	if err := r.db.GetContext(ctx, &total, countQuery, b.args...); err != nil {
		return nil, 0, fmt.Errorf("error counting reorder points: %w", err)
	}

	query := `SELECT ` + reorderPointColumns + ` FROM reorder_points` +
		b.whereClause() + ` ORDER BY created_at, id` + limitOffset(filter)

	rps := make([]domain.ReorderPoint, 0, filter.PageSize)
	if err := r.db.SelectContext(ctx, &rps, query, b.args...); err != nil {
		return nil, 0, fmt.Errorf("error listing reorder points: %w", err)
	}
	return rps, total, nil
}
