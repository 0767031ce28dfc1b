package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type jobDef struct {
	customerName  string
	customerEmail string
	vehicle       string
	status        string
}

type lineItemDef struct {
	line       int
	oper       string
	desc       string
	partNumber string
	qty        int
	partCost   float64
	laborHours float64
	paintHours float64
}

// Seed populates the collections with a realistic sample claim so the app is
// usable out of the box. It is safe to call on every startup because it
// returns early if any repair job records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if repair jobs already exist ───────────────
	jobsCol, err := app.FindCollectionByNameOrId("repair_jobs")
	if err != nil {
		return fmt.Errorf("seed: could not find repair_jobs collection: %w", err)
	}
	existing, err := app.FindAllRecords(jobsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query repair_jobs: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: repair_jobs collection is empty – inserting seed data …")

	estimatesCol, err := app.FindCollectionByNameOrId("estimates")
	if err != nil {
		return fmt.Errorf("seed: could not find estimates collection: %w", err)
	}
	lineItemsCol, err := app.FindCollectionByNameOrId("estimate_line_items")
	if err != nil {
		return fmt.Errorf("seed: could not find estimate_line_items collection: %w", err)
	}

	// ── repair jobs ──────────────────────────────────────────────────
	jobs := []jobDef{
		{"Avery Collins", "avery.collins@example.com", "2025 Audi Q5", "in_progress"},
		{"Morgan Reyes", "morgan.reyes@example.com", "2022 BMW X5", "waiting_for_parts"},
		{"Jordan Blake", "jordan.blake@example.com", "2019 Ford F-150", "completed"},
	}

	var firstJobID string
	for i, j := range jobs {
		r := core.NewRecord(jobsCol)
		r.Set("customer_name", j.customerName)
		r.Set("customer_email", j.customerEmail)
		r.Set("vehicle", j.vehicle)
		r.Set("status", j.status)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save repair job %q: %w", j.customerName, err)
		}
		if i == 0 {
			firstJobID = r.Id
		}
	}

	// ── sample estimate ──────────────────────────────────────────────
	est := core.NewRecord(estimatesCol)
	est.Set("repair_job", firstJobID)
	est.Set("company_name", "AutoShield Insurance Companies")
	est.Set("claim_number", "CA-2025-1042")
	est.Set("workfile_id", "WF-88213")
	est.Set("written_by", "A. Navarro, License Number: 4471802")
	est.Set("insured", "Avery Collins")
	est.Set("inspection_location", "Bayline Auto Repair, Oakland, CA")
	est.Set("vehicle_year", 2025)
	est.Set("vehicle_make", "AUDI")
	est.Set("vehicle_model", "Q5 Premium Quattro TFSI")
	est.Set("vehicle_vin", "WA1BNAFY3P2100482")
	est.Set("vehicle_color", "Black")
	est.Set("vehicle_odometer", 109)
	est.Set("type_of_loss", "Collision")
	est.Set("date_of_loss", "05/14/2025 0830")
	est.Set("point_of_impact", "01 Right Front")
	est.Set("deductible", 1000.00)
	est.Set("default_labor_rate", 80.00)
	est.Set("default_paint_rate", 80.00)
	est.Set("feather_prime_and_block_hours", 0.6)
	est.Set("feather_prime_and_block_rate", 80.0)
	est.Set("paint_supplies_hours", 7.6)
	est.Set("paint_supply_rate", 55.0)
	est.Set("misc_charges", 180.00)
	est.Set("other_charges", 5.00)
	est.Set("sales_tax_rate", 0.1075)
	if err := app.Save(est); err != nil {
		return fmt.Errorf("seed: save estimate: %w", err)
	}

	items := []lineItemDef{
		{2, "R&I", "R&I bumper assy", "8MA807065AGRU", 1, 0.0, 2.0, 0.0},
		{3, "Rpr", "Rpr Bumper cover (bumper code 2K5)", "8MA807065AGRU", 1, 0.0, 3.2, 3.0},
		{7, "Repl", "RT Air duct", "8MA1217649B9", 1, 52.92, 0.2, 0.0},
		{8, "Repl", "RT Outer grille (bumper code 2K3,2K7)", "8MA807682A3FZ", 1, 181.67, 0.1, 0.0},
		{15, "R&I", "RT headlamp assy", "8MA941774A", 1, 0.0, 0.6, 0.0},
		{17, "Rpr", "Rpr RT Fender", "8MA821106STL", 1, 0.0, 4.7, 2.4},
		{30, "Scan", "Pre-Repair Scan", "", 1, 0.0, 0.5, 0.0},
		{31, "Scan", "Post-Repair Scan", "", 1, 0.0, 0.5, 0.0},
	}
	for _, it := range items {
		r := core.NewRecord(lineItemsCol)
		r.Set("estimate", est.Id)
		r.Set("line", it.line)
		r.Set("oper", it.oper)
		r.Set("desc", it.desc)
		if it.partNumber != "" {
			r.Set("part_number", it.partNumber)
		}
		r.Set("qty", it.qty)
		r.Set("part_cost", it.partCost)
		r.Set("labor_hours", it.laborHours)
		r.Set("paint_hours", it.paintHours)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save line item %d: %w", it.line, err)
		}
	}

	log.Printf("seed: inserted %d repair jobs and 1 estimate with %d line items", len(jobs), len(items))
	return nil
}
