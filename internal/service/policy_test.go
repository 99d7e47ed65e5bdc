// internal/service/policy_test.go
package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

func TestAssignPolicy(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p, err := svc.AssignPolicy(ctx, domain.PolicyInput{
		ItemLocation: pair("ITM-1", "LOC-1"),
		PolicyType:   domain.PolicyMinMax,
		ServiceLevel: 0.95,
		MinQuantity:  floatPtr(10),
		ReorderPoint: floatPtr(40),
		MaxQuantity:  floatPtr(100),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PolicyMinMax, p.PolicyType)
	// Target stock level falls back to the max quantity.
	require.NotNil(t, p.TargetStockLevel)
	assert.Equal(t, 100.0, *p.TargetStockLevel)
	// No classification on record yet, so no class tag and the global
	// review default applies.
	assert.Empty(t, p.CombinedClass)
	assert.Equal(t, 30, p.ReviewPeriodDays)
}

func TestAssignPolicyOrderingViolation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AssignPolicy(ctx, domain.PolicyInput{
		ItemLocation: pair("ITM-1", "LOC-1"),
		PolicyType:   domain.PolicyMinMax,
		ServiceLevel: 0.95,
		MinQuantity:  floatPtr(100),
		MaxQuantity:  floatPtr(50),
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindPolicyConstraintViolation, domain.KindOf(err))
}

func TestAssignPolicyDerivesFromPairRecords(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	il := pair("ITM-1", "LOC-1")

	_, err := svc.CalculateSafetyStock(ctx, domain.SafetyStockInput{
		ItemLocation: il,
		ServiceLevel: 0.95, LeadTimeDays: 9, DemandAverage: 20, DemandVariability: 10,
	})
	require.NoError(t, err)

	_, err = svc.ClassifyInventory(ctx, domain.ClassificationInput{
		ItemLocation:           il,
		AnnualConsumptionValue: decimal.NewFromInt(250_000),
		ConsumptionVariability: 0.2,
	})
	require.NoError(t, err)

	p, err := svc.AssignPolicy(ctx, domain.PolicyInput{
		ItemLocation: il,
		PolicyType:   domain.PolicyReorderPoint,
		ServiceLevel: 0.99,
	})
	require.NoError(t, err)

	assert.Equal(t, "AX", p.CombinedClass)
	// Derived reorder point: 20 * 9 + 50 = 230, lead time carried over.
	require.NotNil(t, p.ReorderPoint)
	assert.Equal(t, 230.0, *p.ReorderPoint)
	assert.Equal(t, 9.0, p.LeadTimeDays)
	// Cadence comes from the AX class template.
	assert.Equal(t, 7, p.ReviewPeriodDays)
	assert.Equal(t, 7, p.OrderFrequencyDays)
}

func TestAssignPolicySupersedesExisting(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	il := pair("ITM-1", "LOC-1")

	first, err := svc.AssignPolicy(ctx, domain.PolicyInput{
		ItemLocation: il,
		PolicyType:   domain.PolicyPeriodicReview,
		ServiceLevel: 0.90,
		CreatedBy:    "planner",
	})
	require.NoError(t, err)

	second, err := svc.AssignPolicy(ctx, domain.PolicyInput{
		ItemLocation: il,
		PolicyType:   domain.PolicyKanban,
		ServiceLevel: 0.95,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, "planner", second.CreatedBy)
	assert.Equal(t, domain.PolicyKanban, second.PolicyType)

	page, err := svc.ListPolicies(ctx, domain.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestUpdatePolicy(t *testing.T) {
	svc, clk := newTestService()
	ctx := context.Background()

	p, err := svc.AssignPolicy(ctx, domain.PolicyInput{
		ItemLocation: pair("ITM-1", "LOC-1"),
		PolicyType:   domain.PolicyMinMax,
		ServiceLevel: 0.95,
		MinQuantity:  floatPtr(10),
		ReorderPoint: floatPtr(40),
		MaxQuantity:  floatPtr(100),
	})
	require.NoError(t, err)

	clk.Advance(1)

	updated, err := svc.UpdatePolicy(ctx, p.ID, domain.PolicyUpdate{
		ReorderPoint: floatPtr(60),
	})
	require.NoError(t, err)
	assert.Equal(t, 60.0, *updated.ReorderPoint)
	assert.True(t, updated.LastReviewed.After(p.LastReviewed))

	// Merged state must still satisfy the ordering invariants.
	_, err = svc.UpdatePolicy(ctx, p.ID, domain.PolicyUpdate{
		MaxQuantity: floatPtr(50),
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindPolicyConstraintViolation, domain.KindOf(err))

	_, err = svc.UpdatePolicy(ctx, p.ID, domain.PolicyUpdate{
		ServiceLevel: floatPtr(0.5),
	})
	assert.Equal(t, domain.KindUnsupportedServiceLevel, domain.KindOf(err))

	stored, err := svc.GetPolicy(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, *stored.MaxQuantity)
	assert.Equal(t, 0.95, stored.ServiceLevel)
}
