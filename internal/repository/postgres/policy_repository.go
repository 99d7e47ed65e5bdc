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

const policyColumns = `
	id, item_id, item_code, item_name, location_id, location_name,
	policy_type, min_quantity, max_quantity, reorder_point, target_stock_level,
	order_quantity, order_frequency_days, lead_time_days, service_level,
	review_period_days, combined_class, created_by, created_at, last_reviewed
`

type policyRepository struct {
	db *sqlx.DB
}

func NewPolicyRepository(db *sqlx.DB) repository.PolicyRepository {
	return &policyRepository{db: db}
}

func (r *policyRepository) Create(ctx context.Context, p *domain.InventoryPolicy) error {
	query := `
		INSERT INTO inventory_policies (` + policyColumns + `)
		VALUES (
			:id, :item_id, :item_code, :item_name, :location_id, :location_name,
			:policy_type, :min_quantity, :max_quantity, :reorder_point, :target_stock_level,
			:order_quantity, :order_frequency_days, :lead_time_days, :service_level,
			:review_period_days, :combined_class, :created_by, :created_at, :last_reviewed
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("error creating inventory policy: %w", err)
	}
	return nil
}

func (r *policyRepository) Update(ctx context.Context, p *domain.InventoryPolicy) error {
	query := `
		UPDATE inventory_policies SET
			policy_type = :policy_type,
			min_quantity = :min_quantity,
			max_quantity = :max_quantity,
			reorder_point = :reorder_point,
			target_stock_level = :target_stock_level,
			order_quantity = :order_quantity,
			order_frequency_days = :order_frequency_days,
			lead_time_days = :lead_time_days,
			service_level = :service_level,
			review_period_days = :review_period_days,
			combined_class = :combined_class,
			last_reviewed = :last_reviewed
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("error updating inventory policy: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return domain.ErrNotFound("inventory policy", p.ID.String())
	}
	return nil
}

func (r *policyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryPolicy, error) {
	query := `SELECT ` + policyColumns + ` FROM inventory_policies WHERE id = $1`

	var p domain.InventoryPolicy
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("inventory policy", id.String())
		}
		return nil, fmt.Errorf("error getting inventory policy: %w", err)
	}
	return &p, nil
}

func (r *policyRepository) GetByPair(ctx context.Context, itemID, locationID string) (*domain.InventoryPolicy, error) {
	query := `SELECT ` + policyColumns + ` FROM inventory_policies WHERE item_id = $1 AND location_id = $2`

	var p domain.InventoryPolicy
	if err := r.db.GetContext(ctx, &p, query, itemID, locationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound("inventory policy", itemID+"/"+locationID)
		}
		return nil, fmt.Errorf("error getting inventory policy by pair: %w", err)
	}
	return &p, nil
}

func (r *policyRepository) List(ctx context.Context, filter domain.Filter) ([]domain.InventoryPolicy, int, error) {
	filter = filter.Normalize()

	var b filterBuilder
	b.addPairFilters(filter)
	if filter.PolicyType != "" {
		b.add("policy_type = $%d", filter.PolicyType)
	}
	if filter.ServiceLevel != nil {
		b.add("service_level = $%d", *filter.ServiceLevel)
	}
	if filter.CombinedClass != "" {
		b.add("combined_class = $%d", filter.CombinedClass)
	}
	b.addCalculatedRange(filter, "last_reviewed")

	var total int
	countQuery := `SELECT COUNT(*) FROM inventory_policies` + b.whereClause()
	if err := r.db.GetContext(ctx, &total, countQuery, b.args...); err != nil {
		return nil, 0, fmt.Errorf("error counting inventory policies: %w", err)
	}

	query := `SELECT ` + policyColumns + ` FROM inventory_policies` +
		b.whereClause() + ` ORDER BY created_at, id` + limitOffset(filter)

	policies := make([]domain.InventoryPolicy, 0, filter.PageSize)
	if err := r.db.SelectContext(ctx, &policies, query, b.args...); err != nil {
		return nil, 0, fmt.Errorf("error listing inventory policies: %w", err)
	}
	return policies, total, nil
}
