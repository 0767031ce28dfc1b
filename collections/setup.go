package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the repair_jobs, estimates,
// estimate_line_items, job_messages and assessments collections exist.
func Setup(app *pocketbase.PocketBase) {
	repairJobs := ensureCollection(app, "repair_jobs", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "customer_email", Required: true})
		c.Fields.Add(&core.TextField{Name: "vehicle", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"in_progress", "waiting_for_parts", "completed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	estimates := ensureCollection(app, "estimates", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "repair_job",
			Required:      false,
			CollectionId:  repairJobs.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "company_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "claim_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "workfile_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "written_by", Required: false})
		c.Fields.Add(&core.TextField{Name: "insured", Required: true})
		c.Fields.Add(&core.TextField{Name: "inspection_location", Required: false})
		c.Fields.Add(&core.NumberField{Name: "vehicle_year", Required: false})
		c.Fields.Add(&core.TextField{Name: "vehicle_make", Required: true})
		c.Fields.Add(&core.TextField{Name: "vehicle_model", Required: true})
		c.Fields.Add(&core.TextField{Name: "vehicle_vin", Required: false})
		c.Fields.Add(&core.TextField{Name: "vehicle_color", Required: false})
		c.Fields.Add(&core.NumberField{Name: "vehicle_odometer", Required: false})
		c.Fields.Add(&core.TextField{Name: "type_of_loss", Required: true})
		c.Fields.Add(&core.TextField{Name: "date_of_loss", Required: false})
		c.Fields.Add(&core.TextField{Name: "point_of_impact", Required: false})
		c.Fields.Add(&core.NumberField{Name: "deductible", Required: false})
		c.Fields.Add(&core.NumberField{Name: "default_labor_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "default_paint_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "feather_prime_and_block_hours", Required: false})
		c.Fields.Add(&core.NumberField{Name: "feather_prime_and_block_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "paint_supplies_hours", Required: false})
		c.Fields.Add(&core.NumberField{Name: "paint_supply_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "misc_charges", Required: false})
		c.Fields.Add(&core.NumberField{Name: "other_charges", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sales_tax_rate", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "estimate_line_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "estimate",
			Required:      true,
			CollectionId:  estimates.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "line", Required: true})
		c.Fields.Add(&core.TextField{Name: "oper", Required: true})
		c.Fields.Add(&core.TextField{Name: "desc", Required: true})
		c.Fields.Add(&core.TextField{Name: "part_number", Required: false})
		c.Fields.Add(&core.NumberField{Name: "qty", Required: true})
		c.Fields.Add(&core.NumberField{Name: "part_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "labor_hours", Required: false})
		c.Fields.Add(&core.NumberField{Name: "labor_rate", Required: false})
		c.Fields.Add(&core.NumberField{Name: "paint_hours", Required: false})
		c.Fields.Add(&core.NumberField{Name: "paint_rate", Required: false})
	})

	ensureCollection(app, "job_messages", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "repair_job",
			Required:      true,
			CollectionId:  repairJobs.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "posted_by", Required: true})
		c.Fields.Add(&core.TextField{Name: "subject", Required: false})
		c.Fields.Add(&core.TextField{Name: "body", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "posted_at", OnCreate: true})
	})

	ensureCollection(app, "assessments", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "repair_job",
			Required:      true,
			CollectionId:  repairJobs.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "assessment_id", Required: true})
		c.Fields.Add(&core.BoolField{Name: "damage_detected", Required: false})
		c.Fields.Add(&core.TextField{Name: "damage_severity", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_estimated_repair_hours", Required: false})
		c.Fields.Add(&core.JSONField{Name: "payload", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
