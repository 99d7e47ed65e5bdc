// internal/engine/policy.go
package engine

import (
	"fmt"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

// ClassPolicyDefaults carries the per-class template values used when a
// policy field is not supplied explicitly.
type ClassPolicyDefaults struct {
	PolicyType         domain.PolicyType
	ServiceLevel       float64
	ReviewPeriodDays   int
	OrderFrequencyDays int
}

// classDefaults maps combined ABC×XYZ classes to replenishment defaults.
// High-value stable items get tight service levels and frequent review;
// low-value erratic items get periodic review on a long cycle.
var classDefaults = map[string]ClassPolicyDefaults{
	"AX": {PolicyType: domain.PolicyReorderPoint, ServiceLevel: 0.99, ReviewPeriodDays: 7, OrderFrequencyDays: 7},
	"AY": {PolicyType: domain.PolicyReorderPoint, ServiceLevel: 0.99, ReviewPeriodDays: 7, OrderFrequencyDays: 14},
	"AZ": {PolicyType: domain.PolicyPeriodicReview, ServiceLevel: 0.95, ReviewPeriodDays: 14, OrderFrequencyDays: 14},
	"BX": {PolicyType: domain.PolicyMinMax, ServiceLevel: 0.95, ReviewPeriodDays: 14, OrderFrequencyDays: 14},
	"BY": {PolicyType: domain.PolicyMinMax, ServiceLevel: 0.95, ReviewPeriodDays: 14, OrderFrequencyDays: 30},
	"BZ": {PolicyType: domain.PolicyPeriodicReview, ServiceLevel: 0.90, ReviewPeriodDays: 30, OrderFrequencyDays: 30},
	"CX": {PolicyType: domain.PolicyKanban, ServiceLevel: 0.90, ReviewPeriodDays: 30, OrderFrequencyDays: 30},
	"CY": {PolicyType: domain.PolicyPeriodicReview, ServiceLevel: 0.90, ReviewPeriodDays: 30, OrderFrequencyDays: 60},
	"CZ": {PolicyType: domain.PolicyPeriodicReview, ServiceLevel: 0.90, ReviewPeriodDays: 60, OrderFrequencyDays: 90},
}

// DefaultsForClass returns the template defaults for a combined class.
func DefaultsForClass(combinedClass string) (ClassPolicyDefaults, bool) {
	d, ok := classDefaults[combinedClass]
	return d, ok
}

// usesOrderingInvariant reports whether the policy type populates the
// min/reorder/max/target band and must satisfy the ordering constraints.
func usesOrderingInvariant(t domain.PolicyType) bool {
	return t == domain.PolicyMinMax || t == domain.PolicyReorderPoint
}

// ValidatePolicy checks field ranges and, for policy types that use the
// quantity band, the ordering invariants
// min <= reorderPoint <= max and reorderPoint <= target <= max.
// Constraints involving an unpopulated field are skipped.
func ValidatePolicy(p *domain.InventoryPolicy) error {
	switch p.PolicyType {
	case domain.PolicyMinMax, domain.PolicyReorderPoint, domain.PolicyPeriodicReview, domain.PolicyKanban:
	default:
		return domain.ErrInvalidInput("policy_type", "unknown policy type "+string(p.PolicyType))
	}

	for field, v := range map[string]*float64{
		"min_quantity":       p.MinQuantity,
		"max_quantity":       p.MaxQuantity,
		"reorder_point":      p.ReorderPoint,
		"target_stock_level": p.TargetStockLevel,
		"order_quantity":     p.OrderQuantity,
	} {
		if v != nil && *v < 0 {
			return domain.ErrInvalidInput(field, "quantity must not be negative")
		}
	}

	if !usesOrderingInvariant(p.PolicyType) {
		return nil
	}

	if p.MinQuantity != nil && p.MaxQuantity != nil && *p.MinQuantity > *p.MaxQuantity {
		return domain.ErrPolicyConstraint(fmt.Sprintf("min quantity %.2f exceeds max quantity %.2f", *p.MinQuantity, *p.MaxQuantity))
	}
	if p.MinQuantity != nil && p.ReorderPoint != nil && *p.MinQuantity > *p.ReorderPoint {
		return domain.ErrPolicyConstraint(fmt.Sprintf("min quantity %.2f exceeds reorder point %.2f", *p.MinQuantity, *p.ReorderPoint))
	}
	if p.ReorderPoint != nil && p.MaxQuantity != nil && *p.ReorderPoint > *p.MaxQuantity {
		return domain.ErrPolicyConstraint(fmt.Sprintf("reorder point %.2f exceeds max quantity %.2f", *p.ReorderPoint, *p.MaxQuantity))
	}
	if p.ReorderPoint != nil && p.TargetStockLevel != nil && *p.ReorderPoint > *p.TargetStockLevel {
		return domain.ErrPolicyConstraint(fmt.Sprintf("reorder point %.2f exceeds target stock level %.2f", *p.ReorderPoint, *p.TargetStockLevel))
	}
	if p.TargetStockLevel != nil && p.MaxQuantity != nil && *p.TargetStockLevel > *p.MaxQuantity {
		return domain.ErrPolicyConstraint(fmt.Sprintf("target stock level %.2f exceeds max quantity %.2f", *p.TargetStockLevel, *p.MaxQuantity))
	}

	return nil
}
