// internal/domain/models.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceLevel values supported out of the box. The z-score table in the
// engine package is the source of truth; these constants exist for seeding
// and documentation.
const (
	ServiceLevel90 = 0.90
	ServiceLevel95 = 0.95
	ServiceLevel99 = 0.99
)

// CalculationMethod selects the safety stock formula variant.
type CalculationMethod string

const (
	MethodNormalApproximation CalculationMethod = "NORMAL_APPROXIMATION"
	MethodPoisson             CalculationMethod = "POISSON"
	MethodEmpirical           CalculationMethod = "EMPIRICAL"
)

// ABCClass ranks an item by annual consumption value (A = high, C = low).
type ABCClass string

// XYZClass ranks an item by demand variability (X = stable, Z = erratic).
type XYZClass string

const (
	ClassA ABCClass = "A"
	ClassB ABCClass = "B"
	ClassC ABCClass = "C"

	ClassX XYZClass = "X"
	ClassY XYZClass = "Y"
	ClassZ XYZClass = "Z"
)

// PolicyType identifies the replenishment policy family.
type PolicyType string

const (
	PolicyMinMax         PolicyType = "MIN_MAX"
	PolicyReorderPoint   PolicyType = "REORDER_POINT"
	PolicyPeriodicReview PolicyType = "PERIODIC_REVIEW"
	PolicyKanban         PolicyType = "KANBAN"
)

// ItemLocation identifies the (item, location) pair a record belongs to.
// ItemCode/ItemName/LocationName are denormalized for filtering.
type ItemLocation struct {
	ItemID       string `json:"item_id" db:"item_id"`
	ItemCode     string `json:"item_code" db:"item_code"`
	ItemName     string `json:"item_name" db:"item_name"`
	LocationID   string `json:"location_id" db:"location_id"`
	LocationName string `json:"location_name" db:"location_name"`
}

// PairKey returns the serialization key for the pair. All writes to the same
// pair are ordered on this key.
func (il ItemLocation) PairKey() string {
	return il.ItemID + "|" + il.LocationID
}

// SafetyStockCalculation holds the inputs and derived safety stock for a pair.
// SafetyStock is never stale relative to its own inputs: every mutation of a
// formula input recomputes it before the write commits.
type SafetyStockCalculation struct {
	ID uuid.UUID `json:"id" db:"id"`
	ItemLocation
	ServiceLevel        float64           `json:"service_level" db:"service_level"`
	LeadTimeDays        float64           `json:"lead_time_days" db:"lead_time_days"`
	LeadTimeVariability float64           `json:"lead_time_variability" db:"lead_time_variability"`
	DemandAverage       float64           `json:"demand_average" db:"demand_average"`
	DemandVariability   float64           `json:"demand_variability" db:"demand_variability"`
	ReviewPeriodDays    int               `json:"review_period_days" db:"review_period_days"`
	CalculationMethod   CalculationMethod `json:"calculation_method" db:"calculation_method"`
	SafetyStock         int               `json:"safety_stock" db:"safety_stock"`
	CreatedBy           string            `json:"created_by" db:"created_by"`
	CreatedAt           time.Time         `json:"created_at" db:"created_at"`
	LastCalculated      time.Time         `json:"last_calculated" db:"last_calculated"`
	NextReview          time.Time         `json:"next_review" db:"next_review"`
}

// ReorderPoint holds the inputs and derived reorder point for a pair.
// When ManualOverride is set the derived value tracks ManualValue; switching
// the override off recomputes from the stored inputs immediately.
type ReorderPoint struct {
	ID uuid.UUID `json:"id" db:"id"`
	ItemLocation
	AverageDailyDemand float64   `json:"average_daily_demand" db:"average_daily_demand"`
	LeadTimeDays       float64   `json:"lead_time_days" db:"lead_time_days"`
	SafetyStock        float64   `json:"safety_stock" db:"safety_stock"`
	ManualOverride     bool      `json:"manual_override" db:"manual_override"`
	ManualValue        *float64  `json:"manual_value,omitempty" db:"manual_value"`
	ReorderPoint       int       `json:"reorder_point" db:"reorder_point"`
	CreatedBy          string    `json:"created_by" db:"created_by"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	LastCalculated     time.Time `json:"last_calculated" db:"last_calculated"`
}

// ABCThresholds are cumulative-value fractions for the portfolio-level Pareto
// classification. They are snapshotted onto each record; the per-item formula
// uses fixed absolute bands instead.
type ABCThresholds struct {
	AThreshold float64 `json:"a_threshold" db:"abc_a_threshold"`
	BThreshold float64 `json:"b_threshold" db:"abc_b_threshold"`
}

// XYZThresholds are coefficient-of-variation cutoffs. Boundaries are
// inclusive: variability == XThreshold classifies as X.
type XYZThresholds struct {
	XThreshold float64 `json:"x_threshold" db:"xyz_x_threshold"`
	YThreshold float64 `json:"y_threshold" db:"xyz_y_threshold"`
}

// InventoryClassification holds ABC/XYZ demand classification for a pair.
type InventoryClassification struct {
	ID uuid.UUID `json:"id" db:"id"`
	ItemLocation
	AnnualConsumptionValue    decimal.Decimal `json:"annual_consumption_value" db:"annual_consumption_value"`
	AnnualConsumptionQuantity float64         `json:"annual_consumption_quantity" db:"annual_consumption_quantity"`
	UnitCost                  decimal.Decimal `json:"unit_cost" db:"unit_cost"`
	ConsumptionVariability    float64         `json:"consumption_variability" db:"consumption_variability"`
	ABCThresholds
	XYZThresholds
	ManualOverride bool      `json:"manual_override" db:"manual_override"`
	ManualClass    string    `json:"manual_class,omitempty" db:"manual_class"`
	ABCClass       ABCClass  `json:"abc_class" db:"abc_class"`
	XYZClass       XYZClass  `json:"xyz_class" db:"xyz_class"`
	CombinedClass  string    `json:"combined_class" db:"combined_class"`
	CreatedBy      string    `json:"created_by" db:"created_by"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	LastCalculated time.Time `json:"last_calculated" db:"last_calculated"`
}

// InventoryPolicy is the replenishment rule set for a pair. Policies are never
// deleted, only superseded by update; LastReviewed moves on every mutation.
type InventoryPolicy struct {
	ID uuid.UUID `json:"id" db:"id"`
	ItemLocation
	PolicyType         PolicyType `json:"policy_type" db:"policy_type"`
	MinQuantity        *float64   `json:"min_quantity,omitempty" db:"min_quantity"`
	MaxQuantity        *float64   `json:"max_quantity,omitempty" db:"max_quantity"`
	ReorderPoint       *float64   `json:"reorder_point,omitempty" db:"reorder_point"`
	TargetStockLevel   *float64   `json:"target_stock_level,omitempty" db:"target_stock_level"`
	OrderQuantity      *float64   `json:"order_quantity,omitempty" db:"order_quantity"`
	OrderFrequencyDays int        `json:"order_frequency_days" db:"order_frequency_days"`
	LeadTimeDays       float64    `json:"lead_time_days" db:"lead_time_days"`
	ServiceLevel       float64    `json:"service_level" db:"service_level"`
	ReviewPeriodDays   int        `json:"review_period_days" db:"review_period_days"`
	CombinedClass      string     `json:"combined_class" db:"combined_class"`
	CreatedBy          string     `json:"created_by" db:"created_by"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	LastReviewed       time.Time  `json:"last_reviewed" db:"last_reviewed"`
}

// BulkResult reports aggregate counts for a bulk operation. Updated never
// exceeds Processed; per-item validation failures reduce Updated only.
type BulkResult struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
}

// ClassSummary is the count of pairs holding one combined class.
type ClassSummary struct {
	CombinedClass string `json:"combined_class" db:"combined_class"`
	Count         int    `json:"count" db:"count"`
}
