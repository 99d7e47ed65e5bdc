// internal/engine/stats.go
package engine

import (
	"sort"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

// zScores maps a target service level to its one-tailed normal-distribution
// critical value. Immutable after init; safe for concurrent reads.
var zScores = map[float64]float64{
	0.90: 1.28,
	0.95: 1.65,
	0.99: 2.33,
}

// ZScore returns the z-score for a supported service level.
func ZScore(serviceLevel float64) (float64, error) {
	z, ok := zScores[serviceLevel]
	if !ok {
		return 0, domain.ErrUnsupportedServiceLevel(serviceLevel)
	}
	return z, nil
}

// SupportedServiceLevels returns the supported levels in ascending order.
func SupportedServiceLevels() []float64 {
	levels := make([]float64, 0, len(zScores))
	for level := range zScores {
		levels = append(levels, level)
	}
	sort.Float64s(levels)
	return levels
}
