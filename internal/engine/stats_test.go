// internal/engine/stats_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

func TestZScore(t *testing.T) {
	tests := []struct {
		name         string
		serviceLevel float64
		want         float64
		wantErr      bool
	}{
		{name: "90 percent", serviceLevel: 0.90, want: 1.28},
		{name: "95 percent", serviceLevel: 0.95, want: 1.65},
		{name: "99 percent", serviceLevel: 0.99, want: 2.33},
		{name: "unsupported 97 percent", serviceLevel: 0.97, wantErr: true},
		{name: "zero", serviceLevel: 0, wantErr: true},
		{name: "above one", serviceLevel: 1.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := ZScore(tt.serviceLevel)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.KindUnsupportedServiceLevel, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, z)
		})
	}
}

func TestSupportedServiceLevels(t *testing.T) {
	assert.Equal(t, []float64{0.90, 0.95, 0.99}, SupportedServiceLevels())
}
