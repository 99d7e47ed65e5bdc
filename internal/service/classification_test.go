// internal/service/classification_test.go
package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

func TestClassifyInventory(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cls, err := svc.ClassifyInventory(ctx, domain.ClassificationInput{
		ItemLocation:           pair("ITM-1", "LOC-1"),
		AnnualConsumptionValue: decimal.NewFromInt(250_000),
		ConsumptionVariability: 0.3,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ClassA, cls.ABCClass)
	assert.Equal(t, domain.ClassX, cls.XYZClass)
	assert.Equal(t, "AX", cls.CombinedClass)
	// Defaults are snapshotted onto the record.
	assert.Equal(t, 0.5, cls.XYZThresholds.XThreshold)
	assert.Equal(t, 1.0, cls.XYZThresholds.YThreshold)
	assert.Equal(t, 0.8, cls.ABCThresholds.AThreshold)
	assert.Equal(t, 0.95, cls.ABCThresholds.BThreshold)
}

func TestClassifyInventoryCustomThresholds(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cls, err := svc.ClassifyInventory(ctx, domain.ClassificationInput{
		ItemLocation:           pair("ITM-1", "LOC-1"),
		AnnualConsumptionValue: decimal.NewFromInt(50_000),
		ConsumptionVariability: 0.6,
		XYZThresholds:          &domain.XYZThresholds{XThreshold: 0.7, YThreshold: 1.5},
	})
	require.NoError(t, err)

	assert.Equal(t, "BX", cls.CombinedClass)
	assert.Equal(t, 0.7, cls.XYZThresholds.XThreshold)
}

func TestClassifyInventoryManualOverride(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cls, err := svc.ClassifyInventory(ctx, domain.ClassificationInput{
		ItemLocation:           pair("ITM-1", "LOC-1"),
		AnnualConsumptionValue: decimal.NewFromInt(5_000),
		ConsumptionVariability: 1.8,
		ManualOverride:         true,
		ManualClass:            "ax",
	})
	require.NoError(t, err)

	// Manual class wins over what the inputs would compute, normalized.
	assert.Equal(t, domain.ClassA, cls.ABCClass)
	assert.Equal(t, domain.ClassX, cls.XYZClass)
	assert.Equal(t, "AX", cls.CombinedClass)

	_, err = svc.ClassifyInventory(ctx, domain.ClassificationInput{
		ItemLocation:   pair("ITM-2", "LOC-1"),
		ManualOverride: true,
		ManualClass:    "QQ",
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
}

func TestClassifyInventoryRangeChecksApplyUnderOverride(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input domain.ClassificationInput
	}{
		{
			name: "negative consumption value",
			input: domain.ClassificationInput{
				ItemLocation:           pair("ITM-1", "LOC-1"),
				AnnualConsumptionValue: decimal.NewFromInt(-500),
				ManualOverride:         true,
				ManualClass:            "AX",
			},
		},
		{
			name: "negative variability",
			input: domain.ClassificationInput{
				ItemLocation:           pair("ITM-1", "LOC-1"),
				ConsumptionVariability: -0.4,
				ManualOverride:         true,
				ManualClass:            "AX",
			},
		},
		{
			name: "inverted xyz thresholds",
			input: domain.ClassificationInput{
				ItemLocation:   pair("ITM-1", "LOC-1"),
				XYZThresholds:  &domain.XYZThresholds{XThreshold: 1.0, YThreshold: 0.5},
				ManualOverride: true,
				ManualClass:    "AX",
			},
		},
		{
			name: "inverted abc thresholds",
			input: domain.ClassificationInput{
				ItemLocation:   pair("ITM-1", "LOC-1"),
				ABCThresholds:  &domain.ABCThresholds{AThreshold: 0.9, BThreshold: 0.5},
				ManualOverride: true,
				ManualClass:    "AX",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ClassifyInventory(ctx, tt.input)
			require.Error(t, err)
			assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
		})
	}

	// Nothing was persisted, so a later override drop has clean inputs to
	// recompute from.
	page, err := svc.ListClassifications(ctx, domain.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
}

func TestUpdateClassificationComponentwise(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cls, err := svc.ClassifyInventory(ctx, domain.ClassificationInput{
		ItemLocation:           pair("ITM-1", "LOC-1"),
		AnnualConsumptionValue: decimal.NewFromInt(250_000),
		ConsumptionVariability: 0.3,
	})
	require.NoError(t, err)
	require.Equal(t, "AX", cls.CombinedClass)

	// Only the variability changes: ABC keeps its stored letter.
	updated, err := svc.UpdateClassification(ctx, cls.ID, domain.ClassificationUpdate{
		ConsumptionVariability: floatPtr(1.4),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ClassA, updated.ABCClass)
	assert.Equal(t, domain.ClassZ, updated.XYZClass)
	assert.Equal(t, "AZ", updated.CombinedClass)

	// Only the consumption value changes: XYZ keeps its stored letter.
	newValue := decimal.NewFromInt(5_000)
	updated, err = svc.UpdateClassification(ctx, cls.ID, domain.ClassificationUpdate{
		AnnualConsumptionValue: &newValue,
	})
	require.NoError(t, err)
	assert.Equal(t, "CZ", updated.CombinedClass)
}

func TestUpdateClassificationOverrideLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cls, err := svc.ClassifyInventory(ctx, domain.ClassificationInput{
		ItemLocation:           pair("ITM-1", "LOC-1"),
		AnnualConsumptionValue: decimal.NewFromInt(250_000),
		ConsumptionVariability: 0.3,
	})
	require.NoError(t, err)
	require.Equal(t, "AX", cls.CombinedClass)

	// Manual override pins the class regardless of the stored inputs.
	manual := "CZ"
	pinned, err := svc.UpdateClassification(ctx, cls.ID, domain.ClassificationUpdate{
		ManualOverride: boolPtr(true),
		ManualClass:    &manual,
	})
	require.NoError(t, err)
	assert.Equal(t, "CZ", pinned.CombinedClass)

	// Input changes while pinned do not move the class.
	still, err := svc.UpdateClassification(ctx, cls.ID, domain.ClassificationUpdate{
		ConsumptionVariability: floatPtr(0.1),
	})
	require.NoError(t, err)
	assert.Equal(t, "CZ", still.CombinedClass)

	// Dropping the override recomputes both components from stored inputs.
	released, err := svc.UpdateClassification(ctx, cls.ID, domain.ClassificationUpdate{
		ManualOverride: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "AX", released.CombinedClass)
}

func TestClassSummary(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	inputs := []struct {
		itemID string
		value  int64
		cv     float64
	}{
		{"ITM-1", 250_000, 0.2},
		{"ITM-2", 180_000, 0.3},
		{"ITM-3", 50_000, 1.4},
	}
	for _, in := range inputs {
		_, err := svc.ClassifyInventory(ctx, domain.ClassificationInput{
			ItemLocation:           pair(in.itemID, "LOC-1"),
			AnnualConsumptionValue: decimal.NewFromInt(in.value),
			ConsumptionVariability: in.cv,
		})
		require.NoError(t, err)
	}

	summaries, err := svc.ClassSummary(ctx)
	require.NoError(t, err)

	counts := map[string]int{}
	for _, s := range summaries {
		counts[s.CombinedClass] = s.Count
	}
	assert.Equal(t, 2, counts["AX"])
	assert.Equal(t, 1, counts["BZ"])
}
