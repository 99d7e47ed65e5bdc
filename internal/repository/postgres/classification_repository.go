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

const classificationColumns = `
	id, item_id, item_code, item_name, location_id, location_name,
	annual_consumption_value, annual_consumption_quantity, unit_cost,
	consumption_variability, abc_a_threshold, abc_b_threshold,
	xyz_x_threshold, xyz_y_threshold, manual_override, manual_class,
	abc_class, xyz_class, combined_class, created_by, created_at, last_calculated
`

type classificationRepository struct {
	db *sqlx.DB
}

func NewClassificationRepository(db *sqlx.DB) repository.ClassificationRepository {
	return &classificationRepository{db: db}
}

func (r *classificationRepository) Create(ctx context.Context, cls *domain.InventoryClassification) error {
	query := `
		INSERT INTO inventory_classifications (` + classificationColumns + `)
		VALUES (
			:id, :item_id, :item_code, :item_name, :location_id, :location_name,
			:annual_consumption_value, :annual_consumption_quantity, :unit_cost,
			:consumption_variability, :abc_a_threshold, :abc_b_threshold,
			:xyz_x_threshold, :xyz_y_threshold, :manual_override, :manual_class,
			:abc_class, :xyz_class, :combined_class, :created_by, :created_at, :last_calculated
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, cls); err != nil {
		return fmt.Errorf("error creating classification: %w", err)
	}
	return nil
}

func (r *classificationRepository) Update(ctx context.Context, cls *domain.InventoryClassification) error {
	query := `
		UPDATE inventory_classifications SET
			annual_consumption_value = :annual_consumption_value,
			annual_consumption_quantity = :annual_consumption_quantity,
			unit_cost = :unit_cost,
			consumption_variability = :consumption_variability,
			abc_a_threshold = :abc_a_threshold,
			abc_b_threshold = :abc_b_threshold,
			xyz_x_threshold = :xyz_x_threshold,
			xyz_y_threshold = :xyz_y_threshold,
			manual_override = :manual_override,
			manual_class = :manual_class,
			abc_class = :abc_class,
			xyz_class = :xyz_class,
			combined_class = :combined_class,
			last_calculated = :last_calculated
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, cls)
	if err != nil {
		return fmt.Errorf("error updating classification: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return domain.ErrNotFound("classification", cls.ID.String())
	}
	return nil
}

func (r *classificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryClassification, error) {
	query := `SELECT ` + classificationColumns + ` FROM inventory_classifications WHERE id = $1`

	var cls domain.InventoryClassification
	if err := r.db.GetContext(ctx, &cls, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("classification", id.String())
		}
		return nil, fmt.Errorf("error getting classification: %w", err)
	}
	return &cls, nil
}

func (r *classificationRepository) GetByPair(ctx context.Context, itemID, locationID string) (*domain.InventoryClassification, error) {
	query := `SELECT ` + classificationColumns + ` FROM inventory_classifications WHERE item_id = $1 AND location_id = $2`

	var cls domain.InventoryClassification
	if err := r.db.GetContext(ctx, &cls, query, itemID, locationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("classification", itemID+"/"+locationID)
		}
		return nil, fmt.Errorf("error getting classification by pair: %w", err)
	}
	return &cls, nil
}

func (r *classificationRepository) List(ctx context.Context, filter domain.Filter) ([]domain.InventoryClassification, int, error) {
	filter = filter.Normalize()

	var b filterBuilder
	b.addPairFilters(filter)
	if filter.ABCClass != "" {
		b.add("abc_class = $%d", filter.ABCClass)
	}
	if filter.XYZClass != "" {
		b.add("xyz_class = $%d", filter.XYZClass)
	}
	if filter.CombinedClass != "" {
		b.add("combined_class = $%d", filter.CombinedClass)
	}
	b.addCalculatedRange(filter, "last_calculated")

	var total int
	countQuery := `SELECT COUNT(*) FROM inventory_classifications` + b.whereClause()
	if err := r.db.GetContext(ctx, &total, countQuery, b.args...); err != nil {
		return nil, 0, fmt.Errorf("error counting classifications: %w", err)
	}

	query := `SELECT ` + classificationColumns + ` FROM inventory_classifications` +
		b.whereClause() + ` ORDER BY created_at, id` + limitOffset(filter)

	classifications := make([]domain.InventoryClassification, 0, filter.PageSize)
	if err := r.db.SelectContext(ctx, &classifications, query, b.args...); err != nil {
		return nil, 0, fmt.Errorf("error listing classifications: %w", err)
	}
	return classifications, total, nil
}

func (r *classificationRepository) ListByCombinedClass(ctx context.Context, combinedClass string) ([]domain.InventoryClassification, error) {
	query := `SELECT ` + classificationColumns + `
		FROM inventory_classifications
		WHERE combined_class = $1
		ORDER BY item_id, location_id`

	var classifications []domain.InventoryClassification
	if err := r.db.SelectContext(ctx, &classifications, query, combinedClass); err != nil {
		return nil, fmt.Errorf("error listing classifications by class: %w", err)
	}
	return classifications, nil
}

func (r *classificationRepository) ClassSummary(ctx context.Context) ([]domain.ClassSummary, error) {
	query := `
		SELECT combined_class, COUNT(*) as count
		FROM inventory_classifications
		GROUP BY combined_class
		ORDER BY combined_class
	`

	var summaries []domain.ClassSummary
	if err := r.db.SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("error getting class summary: %w", err)
	}
	return summaries, nil
}
