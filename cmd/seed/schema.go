// backend-go/cmd/seed/schema.go
package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS safety_stock_calculations (
		id UUID PRIMARY KEY,
		item_id TEXT NOT NULL,
		item_code TEXT NOT NULL DEFAULT '',
		item_name TEXT NOT NULL DEFAULT '',
		location_id TEXT NOT NULL,
		location_name TEXT NOT NULL DEFAULT '',
		service_level DOUBLE PRECISION NOT NULL,
		lead_time_days DOUBLE PRECISION NOT NULL,
		lead_time_variability DOUBLE PRECISION NOT NULL DEFAULT 0,
		demand_average DOUBLE PRECISION NOT NULL DEFAULT 0,
		demand_variability DOUBLE PRECISION NOT NULL DEFAULT 0,
		review_period_days INTEGER NOT NULL,
		calculation_method TEXT NOT NULL,
		safety_stock INTEGER NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		last_calculated TIMESTAMPTZ NOT NULL,
		next_review TIMESTAMPTZ NOT NULL,
		UNIQUE (item_id, location_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reorder_points (
		id UUID PRIMARY KEY,
		item_id TEXT NOT NULL,
		item_code TEXT NOT NULL DEFAULT '',
		item_name TEXT NOT NULL DEFAULT '',
		location_id TEXT NOT NULL,
		location_name TEXT NOT NULL DEFAULT '',
		average_daily_demand DOUBLE PRECISION NOT NULL,
		lead_time_days DOUBLE PRECISION NOT NULL,
		safety_stock DOUBLE PRECISION NOT NULL,
		manual_override BOOLEAN NOT NULL DEFAULT FALSE,
		manual_value DOUBLE PRECISION,
		reorder_point INTEGER NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		last_calculated TIMESTAMPTZ NOT NULL,
		UNIQUE (item_id, location_id)
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_classifications (
		id UUID PRIMARY KEY,
		item_id TEXT NOT NULL,
		item_code TEXT NOT NULL DEFAULT '',
		item_name TEXT NOT NULL DEFAULT '',
		location_id TEXT NOT NULL,
		location_name TEXT NOT NULL DEFAULT '',
		annual_consumption_value NUMERIC(18,4) NOT NULL,
		annual_consumption_quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
		unit_cost NUMERIC(18,4) NOT NULL DEFAULT 0,
		consumption_variability DOUBLE PRECISION NOT NULL,
		abc_a_threshold DOUBLE PRECISION NOT NULL,
		abc_b_threshold DOUBLE PRECISION NOT NULL,
		xyz_x_threshold DOUBLE PRECISION NOT NULL,
		xyz_y_threshold DOUBLE PRECISION NOT NULL,
		manual_override BOOLEAN NOT NULL DEFAULT FALSE,
		manual_class TEXT NOT NULL DEFAULT '',
		abc_class TEXT NOT NULL,
		xyz_class TEXT NOT NULL,
		combined_class TEXT NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		last_calculated TIMESTAMPTZ NOT NULL,
		UNIQUE (item_id, location_id)
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_policies (
		id UUID PRIMARY KEY,
		item_id TEXT NOT NULL,
		item_code TEXT NOT NULL DEFAULT '',
		item_name TEXT NOT NULL DEFAULT '',
		location_id TEXT NOT NULL,
		location_name TEXT NOT NULL DEFAULT '',
		policy_type TEXT NOT NULL,
		min_quantity DOUBLE PRECISION,
		max_quantity DOUBLE PRECISION,
		reorder_point DOUBLE PRECISION,
		target_stock_level DOUBLE PRECISION,
		order_quantity DOUBLE PRECISION,
		order_frequency_days INTEGER NOT NULL DEFAULT 0,
		lead_time_days DOUBLE PRECISION NOT NULL DEFAULT 0,
		service_level DOUBLE PRECISION NOT NULL,
		review_period_days INTEGER NOT NULL,
		combined_class TEXT NOT NULL DEFAULT '',
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		last_reviewed TIMESTAMPTZ NOT NULL,
		UNIQUE (item_id, location_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_classifications_combined_class
		ON inventory_classifications (combined_class)`,
}

func createSchema(c *cli.Context) error {
	db := dbFrom(c)
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(c.Context, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	fmt.Println("schema ready")
	return nil
}
