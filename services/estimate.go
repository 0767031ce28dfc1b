// Package services holds the estimate totals calculator and the claim
// document renderers (PDF and Excel).
package services

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// VehicleInfo describes the insured vehicle on an estimate.
type VehicleInfo struct {
	Year     int    `json:"year"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	VIN      string `json:"vin"`
	Color    string `json:"color"`
	Odometer int    `json:"odometer"`
}

func (v VehicleInfo) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Make, validation.Required),
		validation.Field(&v.Model, validation.Required),
		validation.Field(&v.Odometer, validation.Min(0)),
	)
}

// LossInfo describes the loss event the claim covers.
type LossInfo struct {
	TypeOfLoss    string  `json:"type_of_loss"`
	DateOfLoss    string  `json:"date_of_loss"`
	PointOfImpact string  `json:"point_of_impact"`
	Deductible    float64 `json:"deductible"`
}

func (l LossInfo) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.TypeOfLoss, validation.Required),
		validation.Field(&l.Deductible, validation.Min(0.0)),
	)
}

// LineItem is one billable repair operation on the estimate. LaborRate and
// PaintRate are optional; a nil rate falls back to the estimate's default
// rate, while an explicit zero is used as-is (and suppresses the labor or
// paint cell in the rendered document).
type LineItem struct {
	Line       int      `json:"line"`
	Oper       string   `json:"oper"`
	Desc       string   `json:"desc"`
	PartNumber string   `json:"part_number"`
	Qty        int      `json:"qty"`
	PartCost   float64  `json:"part_cost"`
	LaborHours float64  `json:"labor_hours"`
	LaborRate  *float64 `json:"labor_rate,omitempty"`
	PaintHours float64  `json:"paint_hours"`
	PaintRate  *float64 `json:"paint_rate,omitempty"`
}

func (li LineItem) Validate() error {
	return validation.ValidateStruct(&li,
		validation.Field(&li.Oper, validation.Required),
		validation.Field(&li.Desc, validation.Required),
		validation.Field(&li.Qty, validation.Min(1)),
		validation.Field(&li.PartCost, validation.Min(0.0)),
		validation.Field(&li.LaborHours, validation.Min(0.0)),
		validation.Field(&li.LaborRate, validation.Min(0.0)),
		validation.Field(&li.PaintHours, validation.Min(0.0)),
		validation.Field(&li.PaintRate, validation.Min(0.0)),
	)
}

// EffectiveLaborRate resolves the labor rate for this item: the item's own
// rate when set, otherwise the given default.
func (li LineItem) EffectiveLaborRate(defaultRate float64) float64 {
	if li.LaborRate != nil {
		return *li.LaborRate
	}
	return defaultRate
}

// EffectivePaintRate resolves the paint rate for this item: the item's own
// rate when set, otherwise the given default.
func (li LineItem) EffectivePaintRate(defaultRate float64) float64 {
	if li.PaintRate != nil {
		return *li.PaintRate
	}
	return defaultRate
}

// ExtendedPartPrice is the part cost multiplied by quantity.
func (li LineItem) ExtendedPartPrice() float64 {
	return li.PartCost * float64(li.Qty)
}

// EstimateRecord is the immutable input to the totals calculator and the
// document renderers. Line item order is display-significant and preserved.
type EstimateRecord struct {
	CompanyName        string `json:"company_name"`
	ClaimNumber        string `json:"claim_number"`
	WorkfileID         string `json:"workfile_id"`
	WrittenBy          string `json:"written_by"`
	Insured            string `json:"insured"`
	InspectionLocation string `json:"inspection_location"`

	Vehicle VehicleInfo `json:"vehicle"`
	Loss    LossInfo    `json:"loss"`

	DefaultLaborRate float64 `json:"default_labor_rate"`
	DefaultPaintRate float64 `json:"default_paint_rate"`

	LineItems []LineItem `json:"line_items"`

	FeatherPrimeBlockHours float64 `json:"feather_prime_and_block_hours"`
	FeatherPrimeBlockRate  float64 `json:"feather_prime_and_block_rate"`
	PaintSuppliesHours     float64 `json:"paint_supplies_hours"`
	PaintSupplyRate        float64 `json:"paint_supply_rate"`

	MiscCharges  float64 `json:"misc_charges"`
	OtherCharges float64 `json:"other_charges"`

	// SalesTaxRate is a fraction (0.1075 = 10.75%), applied to parts only.
	SalesTaxRate float64 `json:"sales_tax_rate"`
}

// Validate checks the estimate preconditions. Nested vehicle, loss and line
// item values are validated through their own Validate methods, so a failure
// identifies the offending field.
func (e EstimateRecord) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.CompanyName, validation.Required),
		validation.Field(&e.ClaimNumber, validation.Required),
		validation.Field(&e.WorkfileID, validation.Required),
		validation.Field(&e.Insured, validation.Required),
		validation.Field(&e.Vehicle),
		validation.Field(&e.Loss),
		validation.Field(&e.DefaultLaborRate, validation.Min(0.0)),
		validation.Field(&e.DefaultPaintRate, validation.Min(0.0)),
		validation.Field(&e.LineItems),
		validation.Field(&e.FeatherPrimeBlockHours, validation.Min(0.0)),
		validation.Field(&e.FeatherPrimeBlockRate, validation.Min(0.0)),
		validation.Field(&e.PaintSuppliesHours, validation.Min(0.0)),
		validation.Field(&e.PaintSupplyRate, validation.Min(0.0)),
		validation.Field(&e.MiscCharges, validation.Min(0.0)),
		validation.Field(&e.OtherCharges, validation.Min(0.0)),
		validation.Field(&e.SalesTaxRate, validation.Min(0.0), validation.Max(1.0)),
	)
}
