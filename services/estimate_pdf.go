package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// regulatoryNotice is appended unconditionally after the totals block.
const regulatoryNotice = "FOR YOUR PROTECTION CALIFORNIA LAW REQUIRES THE FOLLOWING TO APPEAR ON THIS FORM: " +
	"ANY PERSON WHO KNOWINGLY PRESENTS FALSE OR FRAUDULENT CLAIM FOR THE PAYMENT OF A LOSS " +
	"IS GUILTY OF A CRIME AND MAY BE SUBJECT TO FINES AND CONFINEMENT IN STATE PRISON."

// GenerateEstimatePDF renders the claim document for an estimate using
// maroto/v2: a letter-sized, paginated PDF with a repeating page header, a
// page-number footer, and the identification, line-item, totals and
// regulatory notice sections. It returns the raw PDF bytes or an error; a
// layout-stage fault never yields partial output.
func GenerateEstimatePDF(data *EstimateExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.Letter).
		WithLeftMargin(13).
		WithTopMargin(10).
		WithRightMargin(13).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	if err := registerClaimHeader(m, data); err != nil {
		return nil, fmt.Errorf("failed to register claim header: %w", err)
	}

	addClaimIdentification(m, data)
	addLineItemsTable(m, data.Estimate)
	addTotalsBlock(m, data)
	addRegulatoryNotice(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate estimate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// registerClaimHeader installs the running page header: company name on the
// left, document kind, author and generation timestamp on the right.
func registerClaimHeader(m core.Maroto, data *EstimateExportData) error {
	meta := fmt.Sprintf("Estimate of Record    Written By: %s    %s",
		data.Estimate.WrittenBy, data.GeneratedAt)

	return m.RegisterHeader(
		row.New(8).Add(
			col.New(5).Add(
				text.New(data.Estimate.CompanyName, props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(7).Add(
				text.New(meta, props.Text{
					Size:  7,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
		row.New(3),
	)
}

// addClaimIdentification adds the document title, the claim metadata line,
// and the insured/vehicle/loss info grid.
func addClaimIdentification(m core.Maroto, data *EstimateExportData) {
	est := data.Estimate

	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New("Estimate of Record", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	meta := fmt.Sprintf("Claim #: %s    Workfile ID: %s    Date: %s",
		est.ClaimNumber, est.WorkfileID, data.ReportDate)
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(meta, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(2))

	vehicle := fmt.Sprintf("%d %s %s", est.Vehicle.Year, est.Vehicle.Make, est.Vehicle.Model)
	infoRows := []struct{ label1, value1, label2, value2 string }{
		{"Insured:", est.Insured, "Inspection Location:", est.InspectionLocation},
		{"Type of Loss:", est.Loss.TypeOfLoss, "Date of Loss:", est.Loss.DateOfLoss},
		{"Point of Impact:", est.Loss.PointOfImpact, "Deductible:", FormatUSD(est.Loss.Deductible)},
		{"Vehicle:", vehicle, "VIN:", est.Vehicle.VIN},
	}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}
	rowBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, ir := range infoRows {
		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: rowBg}
		}

		colLabel1 := col.New(2).Add(text.New(ir.label1, labelStyle))
		colValue1 := col.New(4).Add(text.New(ir.value1, valueStyle))
		colLabel2 := col.New(3).Add(text.New(ir.label2, labelStyle))
		colValue2 := col.New(3).Add(text.New(ir.value2, valueStyle))

		if cellStyle != nil {
			colLabel1 = colLabel1.WithStyle(cellStyle)
			colValue1 = colValue1.WithStyle(cellStyle)
			colLabel2 = colLabel2.WithStyle(cellStyle)
			colValue2 = colValue2.WithStyle(cellStyle)
		}

		m.AddRows(row.New(6).Add(colLabel1, colValue1, colLabel2, colValue2))
	}

	m.AddRows(row.New(4))
}

// addLineItemsTable adds the repair line-item table. Row order matches the
// estimate's line item order; no sorting or grouping.
func addLineItemsTable(m core.Maroto, est EstimateRecord) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("Oper", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Part Number", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Ext Price $", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Labor", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Paint", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, item := range est.LineItems {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		laborText := LaborCellText(item.LaborHours, item.EffectiveLaborRate(est.DefaultLaborRate))
		paintText := LaborCellText(item.PaintHours, item.EffectivePaintRate(est.DefaultPaintRate))

		colOper := col.New(1).Add(text.New(item.Oper, bodyText))
		colDesc := col.New(4).Add(text.New(item.Desc, bodyTextLeft))
		colPart := col.New(2).Add(text.New(item.PartNumber, bodyText))
		colQty := col.New(1).Add(text.New(fmt.Sprintf("%d", item.Qty), bodyText))
		colExt := col.New(1).Add(text.New(fmt.Sprintf("%.2f", item.ExtendedPartPrice()), bodyTextRight))
		colLabor := col.New(2).Add(text.New(laborText, bodyTextRight))
		colPaint := col.New(1).Add(text.New(paintText, bodyTextRight))

		if cellStyle != nil {
			colOper = colOper.WithStyle(cellStyle)
			colDesc = colDesc.WithStyle(cellStyle)
			colPart = colPart.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colExt = colExt.WithStyle(cellStyle)
			colLabor = colLabor.WithStyle(cellStyle)
			colPaint = colPaint.WithStyle(cellStyle)
		}

		m.AddRows(
			row.New(7).Add(colOper, colDesc, colPart, colQty, colExt, colLabor, colPaint),
		)
	}

	m.AddRows(row.New(4))
}

// addTotalsBlock folds over the prepared totals lines; suppressed lines are
// skipped, everything else is label left, amount right.
func addTotalsBlock(m core.Maroto, data *EstimateExportData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	for _, line := range BuildTotalsLines(data.Estimate, data.Totals) {
		if line.Kind == LineSuppressed {
			continue
		}

		style := fontstyle.Normal
		size := 8.0
		if line.Bold {
			style = fontstyle.Bold
			size = 9.0
		}

		labelStyle := props.Text{Size: size, Style: style, Align: align.Right}
		valueStyle := props.Text{Size: size, Style: style, Align: align.Right}

		m.AddRows(
			row.New(6).Add(
				col.New(9).Add(text.New(line.DisplayLabel(), labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(line.DisplayAmount(), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addRegulatoryNotice appends the fixed legal disclaimer in small print.
func addRegulatoryNotice(m core.Maroto) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(regulatoryNotice, props.Text{
					Size:  6,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)
}
