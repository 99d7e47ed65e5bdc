// internal/engine/safetystock.go
package engine

import (
	"math"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

// SafetyStock computes the safety stock for the given method.
//
// NORMAL_APPROXIMATION: round(z * sqrt(leadTime) * demandVariability).
// POISSON and EMPIRICAL are accepted method tags whose dedicated variants
// have not landed yet; both currently evaluate the normal approximation.
func SafetyStock(method domain.CalculationMethod, serviceLevel, leadTimeDays, demandVariability float64) (int, error) {
	switch method {
	case domain.MethodNormalApproximation, domain.MethodPoisson, domain.MethodEmpirical, "":
	default:
		return 0, domain.ErrInvalidInput("calculation_method", "unknown calculation method "+string(method))
	}

	if leadTimeDays < 0 {
		return 0, domain.ErrInvalidInput("lead_time_days", "lead time must not be negative")
	}
	if demandVariability < 0 {
		return 0, domain.ErrInvalidInput("demand_variability", "demand variability must not be negative")
	}

	z, err := ZScore(serviceLevel)
	if err != nil {
		return 0, err
	}

	return roundHalfUp(z * math.Sqrt(leadTimeDays) * demandVariability), nil
}
