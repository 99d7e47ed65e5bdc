// internal/repository/repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

// SafetyStockRepository stores safety stock calculations, one per
// (item, location) pair.
type SafetyStockRepository interface {
	Create(ctx context.Context, calc *domain.SafetyStockCalculation) error
	Update(ctx context.Context, calc *domain.SafetyStockCalculation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SafetyStockCalculation, error)
	GetByPair(ctx context.Context, itemID, locationID string) (*domain.SafetyStockCalculation, error)
	List(ctx context.Context, filter domain.Filter) ([]domain.SafetyStockCalculation, int, error)
}

// ReorderPointRepository stores reorder points, one per pair.
type ReorderPointRepository interface {
	Create(ctx context.Context, rp *domain.ReorderPoint) error
	Update(ctx context.Context, rp *domain.ReorderPoint) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReorderPoint, error)
	GetByPair(ctx context.Context, itemID, locationID string) (*domain.ReorderPoint, error)
	List(ctx context.Context, filter domain.Filter) ([]domain.ReorderPoint, int, error)
}

// ClassificationRepository stores ABC/XYZ classifications, one per pair.
type ClassificationRepository interface {
	Create(ctx context.Context, cls *domain.InventoryClassification) error
	Update(ctx context.Context, cls *domain.InventoryClassification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryClassification, error)
	GetByPair(ctx context.Context, itemID, locationID string) (*domain.InventoryClassification, error)
	List(ctx context.Context, filter domain.Filter) ([]domain.InventoryClassification, int, error)
	ListByCombinedClass(ctx context.Context, combinedClass string) ([]domain.InventoryClassification, error)
	ClassSummary(ctx context.Context) ([]domain.ClassSummary, error)
}

// PolicyRepository stores replenishment policies, one per pair. Policies are
// only ever created or updated, never deleted.
type PolicyRepository interface {
	Create(ctx context.Context, p *domain.InventoryPolicy) error
	Update(ctx context.Context, p *domain.InventoryPolicy) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryPolicy, error)
	GetByPair(ctx context.Context, itemID, locationID string) (*domain.InventoryPolicy, error)
	List(ctx context.Context, filter domain.Filter) ([]domain.InventoryPolicy, int, error)
}
