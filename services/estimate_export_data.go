package services

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"

	"autoshield/config"
)

// EstimateExportData is everything the claim document renderers need:
// the immutable estimate record, its computed totals, and the display
// timestamps. Renderers treat all of it as read-only.
type EstimateExportData struct {
	Estimate EstimateRecord
	Totals   EstimateTotals

	// GeneratedAt is the header timestamp, formatted in the shop timezone.
	GeneratedAt string
	// ReportDate is the document date (MM/DD/YYYY).
	ReportDate string
}

// BuildEstimateExportData loads an estimate and its ordered line items from
// the store, fills record-level gaps from the shop configuration, computes
// totals, and returns the render-ready bundle.
func BuildEstimateExportData(app *pocketbase.PocketBase, cfg *config.Config, estimateID string) (*EstimateExportData, error) {
	rec, err := app.FindRecordById("estimates", estimateID)
	if err != nil {
		return nil, fmt.Errorf("estimate not found: %w", err)
	}

	estimate := EstimateRecord{
		CompanyName:        rec.GetString("company_name"),
		ClaimNumber:        rec.GetString("claim_number"),
		WorkfileID:         rec.GetString("workfile_id"),
		WrittenBy:          rec.GetString("written_by"),
		Insured:            rec.GetString("insured"),
		InspectionLocation: rec.GetString("inspection_location"),
		Vehicle: VehicleInfo{
			Year:     rec.GetInt("vehicle_year"),
			Make:     rec.GetString("vehicle_make"),
			Model:    rec.GetString("vehicle_model"),
			VIN:      rec.GetString("vehicle_vin"),
			Color:    rec.GetString("vehicle_color"),
			Odometer: rec.GetInt("vehicle_odometer"),
		},
		Loss: LossInfo{
			TypeOfLoss:    rec.GetString("type_of_loss"),
			DateOfLoss:    rec.GetString("date_of_loss"),
			PointOfImpact: rec.GetString("point_of_impact"),
			Deductible:    rec.GetFloat("deductible"),
		},
		DefaultLaborRate:       rec.GetFloat("default_labor_rate"),
		DefaultPaintRate:       rec.GetFloat("default_paint_rate"),
		FeatherPrimeBlockHours: rec.GetFloat("feather_prime_and_block_hours"),
		FeatherPrimeBlockRate:  rec.GetFloat("feather_prime_and_block_rate"),
		PaintSuppliesHours:     rec.GetFloat("paint_supplies_hours"),
		PaintSupplyRate:        rec.GetFloat("paint_supply_rate"),
		MiscCharges:            rec.GetFloat("misc_charges"),
		OtherCharges:           rec.GetFloat("other_charges"),
		SalesTaxRate:           rec.GetFloat("sales_tax_rate"),
	}

	// Shop config backfills identity and rates the record leaves unset.
	if estimate.CompanyName == "" {
		estimate.CompanyName = cfg.CompanyName
	}
	if estimate.WrittenBy == "" {
		estimate.WrittenBy = cfg.WrittenBy
	}
	if estimate.DefaultLaborRate == 0 {
		estimate.DefaultLaborRate = cfg.DefaultLaborRate
	}
	if estimate.DefaultPaintRate == 0 {
		estimate.DefaultPaintRate = cfg.DefaultPaintRate
	}
	if estimate.SalesTaxRate == 0 {
		estimate.SalesTaxRate = cfg.SalesTaxRate
	}

	itemRecords, err := app.FindRecordsByFilter(
		"estimate_line_items",
		"estimate = {:estimateId}",
		"line",
		0,
		0,
		map[string]any{"estimateId": estimateID},
	)
	if err != nil {
		log.Printf("estimate_export: could not fetch line items for estimate %s: %v", estimateID, err)
		itemRecords = nil
	}

	for _, item := range itemRecords {
		li := LineItem{
			Line:       item.GetInt("line"),
			Oper:       item.GetString("oper"),
			Desc:       item.GetString("desc"),
			PartNumber: item.GetString("part_number"),
			Qty:        item.GetInt("qty"),
			PartCost:   item.GetFloat("part_cost"),
			LaborHours: item.GetFloat("labor_hours"),
			PaintHours: item.GetFloat("paint_hours"),
		}
		// A stored rate of zero means "use the estimate default"; the store
		// cannot express an explicit zero override.
		if r := item.GetFloat("labor_rate"); r > 0 {
			li.LaborRate = &r
		}
		if r := item.GetFloat("paint_rate"); r > 0 {
			li.PaintRate = &r
		}
		estimate.LineItems = append(estimate.LineItems, li)
	}

	totals, err := ComputeTotals(estimate)
	if err != nil {
		return nil, fmt.Errorf("compute totals for estimate %s: %w", estimateID, err)
	}

	now := time.Now()
	loc := cfg.Location()

	return &EstimateExportData{
		Estimate:    estimate,
		Totals:      totals,
		GeneratedAt: FormatTimestamp(now, loc),
		ReportDate:  FormatReportDate(now, loc),
	}, nil
}
