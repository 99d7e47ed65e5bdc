// internal/domain/inputs.go
package domain

import "github.com/shopspring/decimal"

// SafetyStockInput creates a safety stock calculation for a pair.
type SafetyStockInput struct {
	ItemLocation
	ServiceLevel        float64           `json:"service_level"`
	LeadTimeDays        float64           `json:"lead_time_days"`
	LeadTimeVariability float64           `json:"lead_time_variability"`
	DemandAverage       float64           `json:"demand_average"`
	DemandVariability   float64           `json:"demand_variability"`
	ReviewPeriodDays    int               `json:"review_period_days"`
	CalculationMethod   CalculationMethod `json:"calculation_method"`
	CreatedBy           string            `json:"created_by"`
}

// SafetyStockUpdate is a partial update; nil fields keep their stored value.
// Supplying any formula input triggers recalculation before the write commits.
type SafetyStockUpdate struct {
	ServiceLevel        *float64           `json:"service_level"`
	LeadTimeDays        *float64           `json:"lead_time_days"`
	LeadTimeVariability *float64           `json:"lead_time_variability"`
	DemandAverage       *float64           `json:"demand_average"`
	DemandVariability   *float64           `json:"demand_variability"`
	ReviewPeriodDays    *int               `json:"review_period_days"`
	CalculationMethod   *CalculationMethod `json:"calculation_method"`
}

// ReorderPointInput creates a reorder point for a pair.
type ReorderPointInput struct {
	ItemLocation
	AverageDailyDemand float64  `json:"average_daily_demand"`
	LeadTimeDays       float64  `json:"lead_time_days"`
	SafetyStock        float64  `json:"safety_stock"`
	ManualOverride     bool     `json:"manual_override"`
	ManualValue        *float64 `json:"manual_value"`
	CreatedBy          string   `json:"created_by"`
}

// ReorderPointUpdate is a partial update. The override rule is evaluated
// against the post-update value of ManualOverride.
type ReorderPointUpdate struct {
	AverageDailyDemand *float64 `json:"average_daily_demand"`
	LeadTimeDays       *float64 `json:"lead_time_days"`
	SafetyStock        *float64 `json:"safety_stock"`
	ManualOverride     *bool    `json:"manual_override"`
	ManualValue        *float64 `json:"manual_value"`
}

// ClassificationInput creates a classification for a pair. Threshold fields
// left zero are filled from the engine defaults and snapshotted onto the
// record.
type ClassificationInput struct {
	ItemLocation
	AnnualConsumptionValue    decimal.Decimal `json:"annual_consumption_value"`
	AnnualConsumptionQuantity float64         `json:"annual_consumption_quantity"`
	UnitCost                  decimal.Decimal `json:"unit_cost"`
	ConsumptionVariability    float64         `json:"consumption_variability"`
	ABCThresholds             *ABCThresholds  `json:"abc_thresholds"`
	XYZThresholds             *XYZThresholds  `json:"xyz_thresholds"`
	ManualOverride            bool            `json:"manual_override"`
	ManualClass               string          `json:"manual_class"`
	CreatedBy                 string          `json:"created_by"`
}

// ClassificationUpdate is a partial update. A class component is recomputed
// only when its numeric input is supplied (or the manual override is
// dropped); un-supplied components keep their stored letter.
type ClassificationUpdate struct {
	AnnualConsumptionValue    *decimal.Decimal `json:"annual_consumption_value"`
	AnnualConsumptionQuantity *float64         `json:"annual_consumption_quantity"`
	UnitCost                  *decimal.Decimal `json:"unit_cost"`
	ConsumptionVariability    *float64         `json:"consumption_variability"`
	ManualOverride            *bool            `json:"manual_override"`
	ManualClass               *string          `json:"manual_class"`
}

// PolicyInput creates or replaces the policy for a pair.
type PolicyInput struct {
	ItemLocation
	PolicyType         PolicyType `json:"policy_type"`
	ServiceLevel       float64    `json:"service_level"`
	MinQuantity        *float64   `json:"min_quantity"`
	MaxQuantity        *float64   `json:"max_quantity"`
	ReorderPoint       *float64   `json:"reorder_point"`
	TargetStockLevel   *float64   `json:"target_stock_level"`
	OrderQuantity      *float64   `json:"order_quantity"`
	OrderFrequencyDays int        `json:"order_frequency_days"`
	LeadTimeDays       float64    `json:"lead_time_days"`
	ReviewPeriodDays   int        `json:"review_period_days"`
	CreatedBy          string     `json:"created_by"`
}

// PolicyUpdate is a partial update to an existing policy.
type PolicyUpdate struct {
	PolicyType         *PolicyType `json:"policy_type"`
	ServiceLevel       *float64    `json:"service_level"`
	MinQuantity        *float64    `json:"min_quantity"`
	MaxQuantity        *float64    `json:"max_quantity"`
	ReorderPoint       *float64    `json:"reorder_point"`
	TargetStockLevel   *float64    `json:"target_stock_level"`
	OrderQuantity      *float64    `json:"order_quantity"`
	OrderFrequencyDays *int        `json:"order_frequency_days"`
	LeadTimeDays       *float64    `json:"lead_time_days"`
	ReviewPeriodDays   *int        `json:"review_period_days"`
}

// PolicyTemplate is the bulk-assignment payload applied to every pair bearing
// a combined class.
type PolicyTemplate struct {
	PolicyType         PolicyType `json:"policy_type"`
	ServiceLevel       float64    `json:"service_level"`
	MinQuantity        *float64   `json:"min_quantity"`
	MaxQuantity        *float64   `json:"max_quantity"`
	OrderQuantity      *float64   `json:"order_quantity"`
	OrderFrequencyDays int        `json:"order_frequency_days"`
	ReviewPeriodDays   int        `json:"review_period_days"`
	CreatedBy          string     `json:"created_by"`
}
