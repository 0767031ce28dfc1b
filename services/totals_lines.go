package services

import "fmt"

// TotalsLineKind tags how a totals-block line is displayed.
type TotalsLineKind int

const (
	// LineSuppressed means the line is omitted from the document entirely.
	LineSuppressed TotalsLineKind = iota
	// LineBare shows only the label and amount.
	LineBare
	// LineDetailed shows the label with hours and an hourly rate.
	LineDetailed
)

// TotalsLine is one row of the totals block. Renderers fold over a slice of
// these and never branch on amounts themselves.
type TotalsLine struct {
	Kind   TotalsLineKind
	Label  string
	Hours  float64
	Rate   float64
	Amount float64
	Bold   bool
	// Paren renders the amount parenthesized (the deductible line).
	Paren bool
}

// DisplayLabel returns the label text for the line, including hours and rate
// for detailed lines ("Body Labor 11.80 hrs @ $80.00 /hr").
func (tl TotalsLine) DisplayLabel() string {
	if tl.Kind == LineDetailed {
		return fmt.Sprintf("%s %.2f hrs @ $%.2f /hr", tl.Label, tl.Hours, tl.Rate)
	}
	return tl.Label
}

// DisplayAmount returns the formatted currency amount for the line.
func (tl TotalsLine) DisplayAmount() string {
	if tl.Paren {
		return fmt.Sprintf("($%.2f)", tl.Amount)
	}
	return FormatUSD(tl.Amount)
}

// laborTotalsLine builds a labor aggregate line: detailed with hours and the
// weighted-average rate when the amount is positive, bare otherwise. A zero
// amount still shows the line, just without "0.00 hrs @ ..." noise.
func laborTotalsLine(label string, hours, avgRate, amount float64) TotalsLine {
	if amount > 0 {
		return TotalsLine{Kind: LineDetailed, Label: label, Hours: hours, Rate: avgRate, Amount: amount}
	}
	return TotalsLine{Kind: LineBare, Label: label, Amount: amount}
}

// flatChargeLine builds a flat hours-times-rate line (feather prime and
// block, paint supplies). A zero amount suppresses the line entirely,
// regardless of any configured rate.
func flatChargeLine(label string, hours, rate, amount float64) TotalsLine {
	if amount > 0 {
		return TotalsLine{Kind: LineDetailed, Label: label, Hours: hours, Rate: rate, Amount: amount}
	}
	return TotalsLine{Kind: LineSuppressed}
}

// BuildTotalsLines assembles the ordered totals block for an estimate.
// Suppressed entries stay in the slice so renderers share one skip rule.
func BuildTotalsLines(e EstimateRecord, t EstimateTotals) []TotalsLine {
	taxLabel := fmt.Sprintf("Sales Tax $%.2f @ %.4f %%", t.PartsSubtotal, t.SalesTaxRate*100)

	return []TotalsLine{
		{Kind: LineBare, Label: "Parts", Amount: t.PartsSubtotal},
		laborTotalsLine("Body Labor", t.BodyLaborHours, t.AvgBodyLaborRate, t.BodyLaborAmount),
		laborTotalsLine("Paint Labor", t.PaintHours, t.AvgPaintRate, t.PaintLaborAmount),
		flatChargeLine("Feather Prime and Block", t.FPBHours, e.FeatherPrimeBlockRate, t.FPBAmount),
		flatChargeLine("Paint Supplies", t.PaintSuppliesHours, e.PaintSupplyRate, t.PaintSuppliesAmount),
		{Kind: LineBare, Label: "Miscellaneous", Amount: t.Misc},
		{Kind: LineBare, Label: "Other Charges", Amount: t.Other},
		{Kind: LineBare, Label: "Subtotal", Amount: t.Subtotal, Bold: true},
		{Kind: LineBare, Label: taxLabel, Amount: t.SalesTax},
		{Kind: LineBare, Label: "Total Cost of Repairs", Amount: t.TotalCostOfRepairs, Bold: true},
		{Kind: LineBare, Label: "Less: Deductible", Amount: t.Deductible, Paren: true},
		{Kind: LineBare, Label: "Net Cost of Repairs", Amount: t.NetCostOfRepairs, Bold: true},
	}
}

// LaborCellText formats the combined hours-and-amount cell for a line item
// ("0.20 hrs = $16.00"). The cell is blank unless both hours and the
// effective rate are positive, so zero-hour or zero-rate items never show a
// misleading "0.00 hrs = $0.00".
func LaborCellText(hours, rate float64) string {
	if hours > 0 && rate > 0 {
		return fmt.Sprintf("%.2f hrs = $%.2f", hours, hours*rate)
	}
	return ""
}
