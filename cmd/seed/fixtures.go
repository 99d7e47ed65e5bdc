// backend-go/cmd/seed/fixtures.go
package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/opsuite/invopt/backend-go/internal/domain"
	"github.com/opsuite/invopt/backend-go/internal/engine"
)

// fixtureRow is one deterministic demo pair. Derived fields are computed
// through the engine at load time so the seeded records are never stale.
type fixtureRow struct {
	itemID, itemCode, itemName string
	locationID, locationName   string
	serviceLevel               float64
	leadTimeDays               float64
	demandAverage              float64
	demandVariability          float64
	annualValue                int64
	variability                float64
}

// Ten pairs: seven classify as AX, three land elsewhere.
var fixtureRows = []fixtureRow{
	{"ITM-001", "PMP-4100", "Hydraulic Pump 4100", "LOC-01", "Rotterdam DC", 0.95, 9, 20, 10, 250_000, 0.2},
	{"ITM-002", "BRG-2205", "Spherical Bearing 2205", "LOC-01", "Rotterdam DC", 0.95, 4, 35, 8, 180_000, 0.3},
	{"ITM-003", "VLV-0077", "Check Valve 77mm", "LOC-01", "Rotterdam DC", 0.99, 4, 12, 15, 140_000, 0.4},
	{"ITM-004", "FLT-9903", "Inline Filter 9903", "LOC-02", "Lyon Hub", 0.95, 9, 18, 6, 120_000, 0.45},
	{"ITM-005", "MTR-5520", "Servo Motor 5520", "LOC-02", "Lyon Hub", 0.99, 16, 9, 12, 300_000, 0.1},
	{"ITM-006", "CPL-1140", "Shaft Coupling 1140", "LOC-02", "Lyon Hub", 0.90, 9, 25, 9, 110_000, 0.35},
	{"ITM-007", "SNS-8800", "Pressure Sensor 8800", "LOC-03", "Gdansk Depot", 0.95, 4, 40, 11, 160_000, 0.25},
	{"ITM-008", "GSK-0019", "Flange Gasket 19", "LOC-03", "Gdansk Depot", 0.90, 4, 60, 20, 45_000, 0.8},
	{"ITM-009", "HSE-3302", "Hydraulic Hose 3302", "LOC-03", "Gdansk Depot", 0.90, 9, 15, 18, 8_500, 1.6},
	{"ITM-010", "SCR-7755", "Torx Screw Assortment", "LOC-01", "Rotterdam DC", 0.90, 4, 90, 30, 6_200, 0.9},
}

func loadFixtures(c *cli.Context) error {
	db := dbFrom(c)
	now := time.Now().UTC()
	reviewPeriod := 30

	for _, row := range fixtureRows {
		safetyStock, err := engine.SafetyStock(domain.MethodNormalApproximation, row.serviceLevel, row.leadTimeDays, row.demandVariability)
		if err != nil {
			return fmt.Errorf("fixture %s: %w", row.itemID, err)
		}
		reorderPoint, err := engine.ReorderPoint(row.demandAverage, row.leadTimeDays, float64(safetyStock))
		if err != nil {
			return fmt.Errorf("fixture %s: %w", row.itemID, err)
		}
		abc, err := engine.ClassifyABC(decimal.NewFromInt(row.annualValue))
		if err != nil {
			return fmt.Errorf("fixture %s: %w", row.itemID, err)
		}
		xyz, err := engine.ClassifyXYZ(row.variability, engine.DefaultXYZThresholds)
		if err != nil {
			return fmt.Errorf("fixture %s: %w", row.itemID, err)
		}

		_, err = db.ExecContext(c.Context, `
			INSERT INTO safety_stock_calculations (
				id, item_id, item_code, item_name, location_id, location_name,
				service_level, lead_time_days, lead_time_variability, demand_average,
				demand_variability, review_period_days, calculation_method, safety_stock,
				created_by, created_at, last_calculated, next_review
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,0,$9,$10,$11,$12,$13,'seed',$14,$14,$15)
			ON CONFLICT (item_id, location_id) DO NOTHING`,
			uuid.New(), row.itemID, row.itemCode, row.itemName, row.locationID, row.locationName,
			row.serviceLevel, row.leadTimeDays, row.demandAverage, row.demandVariability,
			reviewPeriod, string(domain.MethodNormalApproximation), safetyStock,
			now, now.AddDate(0, 0, reviewPeriod),
		)
		if err != nil {
			return fmt.Errorf("fixture %s: safety stock insert: %w", row.itemID, err)
		}

		_, err = db.ExecContext(c.Context, `
			INSERT INTO reorder_points (
				id, item_id, item_code, item_name, location_id, location_name,
				average_daily_demand, lead_time_days, safety_stock, manual_override,
				manual_value, reorder_point, created_by, created_at, last_calculated
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,FALSE,NULL,$10,'seed',$11,$11)
			ON CONFLICT (item_id, location_id) DO NOTHING`,
			uuid.New(), row.itemID, row.itemCode, row.itemName, row.locationID, row.locationName,
			row.demandAverage, row.leadTimeDays, float64(safetyStock), reorderPoint, now,
		)
		if err != nil {
			return fmt.Errorf("fixture %s: reorder point insert: %w", row.itemID, err)
		}

		_, err = db.ExecContext(c.Context, `
			INSERT INTO inventory_classifications (
				id, item_id, item_code, item_name, location_id, location_name,
				annual_consumption_value, annual_consumption_quantity, unit_cost,
				consumption_variability, abc_a_threshold, abc_b_threshold,
				xyz_x_threshold, xyz_y_threshold, manual_override, manual_class,
				abc_class, xyz_class, combined_class, created_by, created_at, last_calculated
			) VALUES ($1,$2,$3,$4,$5,$6,$7,0,0,$8,$9,$10,$11,$12,FALSE,'',$13,$14,$15,'seed',$16,$16)
			ON CONFLICT (item_id, location_id) DO NOTHING`,
			uuid.New(), row.itemID, row.itemCode, row.itemName, row.locationID, row.locationName,
			row.annualValue, row.variability,
			engine.DefaultABCThresholds.AThreshold, engine.DefaultABCThresholds.BThreshold,
			engine.DefaultXYZThresholds.XThreshold, engine.DefaultXYZThresholds.YThreshold,
			string(abc), string(xyz), string(abc)+string(xyz), now,
		)
		if err != nil {
			return fmt.Errorf("fixture %s: classification insert: %w", row.itemID, err)
		}
	}

	fmt.Printf("loaded %d fixture pairs\n", len(fixtureRows))
	return nil
}
