// internal/engine/safetystock_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

func TestSafetyStock(t *testing.T) {
	tests := []struct {
		name              string
		method            domain.CalculationMethod
		serviceLevel      float64
		leadTimeDays      float64
		demandVariability float64
		want              int
		wantKind          domain.ErrorKind
	}{
		{
			name:         "95 percent nine day lead time",
			method:       domain.MethodNormalApproximation,
			serviceLevel: 0.95, leadTimeDays: 9, demandVariability: 10,
			// 1.65 * 3 * 10 = 49.5, rounds half-up to 50
			want: 50,
		},
		{
			name:         "99 percent four day lead time",
			method:       domain.MethodNormalApproximation,
			serviceLevel: 0.99, leadTimeDays: 4, demandVariability: 15,
			// 2.33 * 2 * 15 = 69.9
			want: 70,
		},
		{
			name:         "90 percent exact integer",
			method:       domain.MethodNormalApproximation,
			serviceLevel: 0.90, leadTimeDays: 4, demandVariability: 25,
			// 1.28 * 2 * 25 = 64
			want: 64,
		},
		{
			name:         "empty method defaults to normal approximation",
			method:       "",
			serviceLevel: 0.95, leadTimeDays: 9, demandVariability: 10,
			want: 50,
		},
		{
			name:         "poisson tag evaluates normal approximation",
			method:       domain.MethodPoisson,
			serviceLevel: 0.99, leadTimeDays: 4, demandVariability: 15,
			want: 70,
		},
		{
			name:         "empirical tag evaluates normal approximation",
			method:       domain.MethodEmpirical,
			serviceLevel: 0.99, leadTimeDays: 4, demandVariability: 15,
			want: 70,
		},
		{
			name:         "zero variability yields zero stock",
			method:       domain.MethodNormalApproximation,
			serviceLevel: 0.95, leadTimeDays: 16, demandVariability: 0,
			want: 0,
		},
		{
			name:         "zero lead time yields zero stock",
			method:       domain.MethodNormalApproximation,
			serviceLevel: 0.95, leadTimeDays: 0, demandVariability: 10,
			want: 0,
		},
		{
			name:         "unknown method",
			method:       "MONTE_CARLO",
			serviceLevel: 0.95, leadTimeDays: 9, demandVariability: 10,
			wantKind: domain.KindInvalidInput,
		},
		{
			name:         "unsupported service level",
			method:       domain.MethodNormalApproximation,
			serviceLevel: 0.975, leadTimeDays: 9, demandVariability: 10,
			wantKind: domain.KindUnsupportedServiceLevel,
		},
		{
			name:         "negative lead time",
			method:       domain.MethodNormalApproximation,
			serviceLevel: 0.95, leadTimeDays: -1, demandVariability: 10,
			wantKind: domain.KindInvalidInput,
		},
		{
			name:         "negative variability",
			method:       domain.MethodNormalApproximation,
			serviceLevel: 0.95, leadTimeDays: 9, demandVariability: -0.5,
			wantKind: domain.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafetyStock(tt.method, tt.serviceLevel, tt.leadTimeDays, tt.demandVariability)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 50, roundHalfUp(49.5))
	assert.Equal(t, 49, roundHalfUp(49.4999))
	assert.Equal(t, 70, roundHalfUp(69.9))
	assert.Equal(t, 0, roundHalfUp(0))
	assert.Equal(t, 1, roundHalfUp(0.5))
}
