// internal/engine/reorder.go
package engine

import "github.com/opsuite/invopt/backend-go/internal/domain"

// ReorderPoint computes round(averageDailyDemand * leadTime + safetyStock).
func ReorderPoint(averageDailyDemand, leadTimeDays, safetyStock float64) (int, error) {
	if averageDailyDemand < 0 {
		return 0, domain.ErrInvalidInput("average_daily_demand", "average daily demand must not be negative")
	}
	if leadTimeDays < 0 {
		return 0, domain.ErrInvalidInput("lead_time_days", "lead time must not be negative")
	}
	if safetyStock < 0 {
		return 0, domain.ErrInvalidInput("safety_stock", "safety stock must not be negative")
	}

	return roundHalfUp(averageDailyDemand*leadTimeDays + safetyStock), nil
}

// ResolveReorderPoint applies the manual-override precedence rule: when the
// override is active the manual value wins over the formula, whatever the
// other inputs are.
func ResolveReorderPoint(manualOverride bool, manualValue *float64, averageDailyDemand, leadTimeDays, safetyStock float64) (int, error) {
	if manualOverride {
		if manualValue == nil {
			return 0, domain.ErrInvalidInput("manual_value", "manual override requires a manual value")
		}
		if *manualValue < 0 {
			return 0, domain.ErrInvalidInput("manual_value", "manual value must not be negative")
		}
		return roundHalfUp(*manualValue), nil
	}

	return ReorderPoint(averageDailyDemand, leadTimeDays, safetyStock)
}
