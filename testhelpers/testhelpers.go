// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"autoshield/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestJob creates a repair job record and returns it.
func CreateTestJob(t *testing.T, app *pocketbase.PocketBase, customerName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("repair_jobs")
	if err != nil {
		t.Fatalf("failed to find repair_jobs collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer_name", customerName)
	record.Set("customer_email", "test@example.com")
	record.Set("vehicle", "2025 Audi Q5")
	record.Set("status", "in_progress")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test job: %v", err)
	}

	return record
}

// CreateTestEstimate creates an estimate record with sensible claim fields
// and returns it.
func CreateTestEstimate(t *testing.T, app *pocketbase.PocketBase, claimNumber string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("estimates")
	if err != nil {
		t.Fatalf("failed to find estimates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company_name", "AutoShield Insurance Companies")
	record.Set("claim_number", claimNumber)
	record.Set("workfile_id", "WF-TEST")
	record.Set("written_by", "Test Estimator")
	record.Set("insured", "Test Insured")
	record.Set("inspection_location", "Test Shop, Oakland, CA")
	record.Set("vehicle_year", 2025)
	record.Set("vehicle_make", "AUDI")
	record.Set("vehicle_model", "Q5")
	record.Set("vehicle_vin", "WA1TEST0000000000")
	record.Set("type_of_loss", "Collision")
	record.Set("date_of_loss", "05/14/2025")
	record.Set("point_of_impact", "01 Right Front")
	record.Set("deductible", 1000.00)
	record.Set("default_labor_rate", 80.00)
	record.Set("default_paint_rate", 80.00)
	record.Set("sales_tax_rate", 0.1075)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test estimate: %v", err)
	}

	return record
}

// CreateTestLineItem creates an estimate line item record and returns it.
func CreateTestLineItem(t *testing.T, app *pocketbase.PocketBase, estimateID string, line int, desc string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("estimate_line_items")
	if err != nil {
		t.Fatalf("failed to find estimate_line_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("estimate", estimateID)
	record.Set("line", line)
	record.Set("oper", "Repl")
	record.Set("desc", desc)
	record.Set("qty", 1)
	record.Set("part_cost", 52.92)
	record.Set("labor_hours", 0.2)
	record.Set("paint_hours", 0.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test line item: %v", err)
	}

	return record
}
