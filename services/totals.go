package services

import (
	"fmt"
	"math"
)

// EstimateTotals holds every derived financial total for an estimate. All
// monetary and hour fields are rounded to 2 decimal places when the struct is
// built; downstream rendering must not re-round them. SalesTaxRate is the
// configuration fraction, returned unrounded.
type EstimateTotals struct {
	PartsSubtotal float64

	BodyLaborHours   float64
	BodyLaborAmount  float64
	AvgBodyLaborRate float64

	PaintHours       float64
	PaintLaborAmount float64
	AvgPaintRate     float64

	FPBHours  float64
	FPBAmount float64

	PaintSuppliesHours  float64
	PaintSuppliesAmount float64

	Misc  float64
	Other float64

	Subtotal     float64
	SalesTaxRate float64
	SalesTax     float64

	TotalCostOfRepairs float64
	Deductible         float64
	// NetCostOfRepairs may be negative when the deductible exceeds the total;
	// that is a displayable outcome, not an error.
	NetCostOfRepairs float64
}

// ComputeTotals derives all financial totals from an estimate. It is a pure
// function: same input, same output, no side effects. The estimate is
// validated first; a validation failure returns before any computation.
func ComputeTotals(e EstimateRecord) (EstimateTotals, error) {
	if err := e.Validate(); err != nil {
		return EstimateTotals{}, fmt.Errorf("invalid estimate: %w", err)
	}

	var (
		partsSubtotal   float64
		bodyLaborHours  float64
		bodyLaborAmount float64
		paintHours      float64
		paintAmount     float64
	)

	for _, item := range e.LineItems {
		partsSubtotal += item.ExtendedPartPrice()

		laborRate := item.EffectiveLaborRate(e.DefaultLaborRate)
		paintRate := item.EffectivePaintRate(e.DefaultPaintRate)

		bodyLaborHours += item.LaborHours
		bodyLaborAmount += item.LaborHours * laborRate
		paintHours += item.PaintHours
		paintAmount += item.PaintHours * paintRate
	}

	fpbAmount := e.FeatherPrimeBlockHours * e.FeatherPrimeBlockRate
	paintSuppliesAmount := e.PaintSuppliesHours * e.PaintSupplyRate

	subtotal := partsSubtotal + bodyLaborAmount + paintAmount +
		fpbAmount + paintSuppliesAmount + e.MiscCharges + e.OtherCharges

	// Tax base is parts only, never labor or flat charges.
	salesTax := partsSubtotal * e.SalesTaxRate

	totalCost := subtotal + salesTax
	netCost := totalCost - e.Loss.Deductible

	// Weighted-average rates for display. With zero hours the default rate is
	// a sensible stand-in and avoids dividing by zero.
	avgBodyLaborRate := e.DefaultLaborRate
	if bodyLaborHours > 0 {
		avgBodyLaborRate = bodyLaborAmount / bodyLaborHours
	}
	avgPaintRate := e.DefaultPaintRate
	if paintHours > 0 {
		avgPaintRate = paintAmount / paintHours
	}

	return EstimateTotals{
		PartsSubtotal: round2(partsSubtotal),

		BodyLaborHours:   round2(bodyLaborHours),
		BodyLaborAmount:  round2(bodyLaborAmount),
		AvgBodyLaborRate: round2(avgBodyLaborRate),

		PaintHours:       round2(paintHours),
		PaintLaborAmount: round2(paintAmount),
		AvgPaintRate:     round2(avgPaintRate),

		FPBHours:  round2(e.FeatherPrimeBlockHours),
		FPBAmount: round2(fpbAmount),

		PaintSuppliesHours:  round2(e.PaintSuppliesHours),
		PaintSuppliesAmount: round2(paintSuppliesAmount),

		Misc:  round2(e.MiscCharges),
		Other: round2(e.OtherCharges),

		Subtotal:     round2(subtotal),
		SalesTaxRate: e.SalesTaxRate,
		SalesTax:     round2(salesTax),

		TotalCostOfRepairs: round2(totalCost),
		Deductible:         round2(e.Loss.Deductible),
		NetCostOfRepairs:   round2(netCost),
	}, nil
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
