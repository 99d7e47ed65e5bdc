// internal/engine/policy_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func TestDefaultsForClass(t *testing.T) {
	for _, class := range []string{"AX", "AY", "AZ", "BX", "BY", "BZ", "CX", "CY", "CZ"} {
		d, ok := DefaultsForClass(class)
		require.True(t, ok, "missing defaults for %s", class)
		assert.NotEmpty(t, d.PolicyType)
		assert.Positive(t, d.ReviewPeriodDays)
		assert.Positive(t, d.OrderFrequencyDays)
		_, err := ZScore(d.ServiceLevel)
		assert.NoError(t, err, "defaults for %s reference an unsupported service level", class)
	}

	_, ok := DefaultsForClass("DX")
	assert.False(t, ok)

	ax, _ := DefaultsForClass("AX")
	assert.Equal(t, domain.PolicyReorderPoint, ax.PolicyType)
	assert.Equal(t, 0.99, ax.ServiceLevel)

	cz, _ := DefaultsForClass("CZ")
	assert.Equal(t, domain.PolicyPeriodicReview, cz.PolicyType)
	assert.Equal(t, 0.90, cz.ServiceLevel)
}

func TestValidatePolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   domain.InventoryPolicy
		wantKind domain.ErrorKind
	}{
		{
			name: "valid min max band",
			policy: domain.InventoryPolicy{
				PolicyType:  domain.PolicyMinMax,
				MinQuantity: fptr(10), ReorderPoint: fptr(40), TargetStockLevel: fptr(80), MaxQuantity: fptr(100),
			},
		},
		{
			name: "valid with unpopulated fields",
			policy: domain.InventoryPolicy{
				PolicyType:   domain.PolicyReorderPoint,
				ReorderPoint: fptr(40),
			},
		},
		{
			name: "min exceeds max",
			policy: domain.InventoryPolicy{
				PolicyType:  domain.PolicyMinMax,
				MinQuantity: fptr(100), MaxQuantity: fptr(50),
			},
			wantKind: domain.KindPolicyConstraintViolation,
		},
		{
			name: "reorder point above max",
			policy: domain.InventoryPolicy{
				PolicyType:   domain.PolicyReorderPoint,
				ReorderPoint: fptr(120), MaxQuantity: fptr(100),
			},
			wantKind: domain.KindPolicyConstraintViolation,
		},
		{
			name: "reorder point above target",
			policy: domain.InventoryPolicy{
				PolicyType:   domain.PolicyReorderPoint,
				ReorderPoint: fptr(90), TargetStockLevel: fptr(80),
			},
			wantKind: domain.KindPolicyConstraintViolation,
		},
		{
			name: "target above max",
			policy: domain.InventoryPolicy{
				PolicyType:       domain.PolicyMinMax,
				TargetStockLevel: fptr(120), MaxQuantity: fptr(100),
			},
			wantKind: domain.KindPolicyConstraintViolation,
		},
		{
			name: "periodic review skips ordering checks",
			policy: domain.InventoryPolicy{
				PolicyType:  domain.PolicyPeriodicReview,
				MinQuantity: fptr(100), MaxQuantity: fptr(50),
			},
		},
		{
			name: "kanban skips ordering checks",
			policy: domain.InventoryPolicy{
				PolicyType:   domain.PolicyKanban,
				ReorderPoint: fptr(120), MaxQuantity: fptr(100),
			},
		},
		{
			name: "negative quantity",
			policy: domain.InventoryPolicy{
				PolicyType:  domain.PolicyMinMax,
				MinQuantity: fptr(-5),
			},
			wantKind: domain.KindInvalidInput,
		},
		{
			name:     "unknown policy type",
			policy:   domain.InventoryPolicy{PolicyType: "JIT"},
			wantKind: domain.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePolicy(&tt.policy)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
		})
	}
}
