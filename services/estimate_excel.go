package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateEstimateExcel renders the claim document as an Excel worksheet and
// returns the file contents as a byte slice. It carries the same sections and
// suppression rules as the PDF rendition.
func GenerateEstimateExcel(data *EstimateExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Estimate"

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through G).
	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{8, 42, 18, 6, 12, 20, 20}
	for i, column := range columns {
		if err := f.SetColWidth(sheetName, column, column, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", column, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 10},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	totalsLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create totals label style: %w", err)
	}

	totalsBoldStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create totals bold style: %w", err)
	}

	noticeStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 8, Italic: true},
		Alignment: &excelize.Alignment{WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create notice style: %w", err)
	}

	est := data.Estimate

	// ── Header Rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(est.CompanyName))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge subtitle: %w", err)
	}
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Estimate of Record    Written By: %s    %s",
		est.WrittenBy, data.GeneratedAt))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge claim meta: %w", err)
	}
	f.SetCellValue(sheetName, "A3", fmt.Sprintf("Claim #: %s    Workfile ID: %s    Date: %s",
		est.ClaimNumber, est.WorkfileID, data.ReportDate))
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Identification Grid (rows 5-8) ──────────────────────────────────

	infoRows := []struct{ label1, value1, label2, value2 string }{
		{"Insured:", est.Insured, "Inspection Location:", est.InspectionLocation},
		{"Type of Loss:", est.Loss.TypeOfLoss, "Date of Loss:", est.Loss.DateOfLoss},
		{"Point of Impact:", est.Loss.PointOfImpact, "Deductible:", FormatUSD(est.Loss.Deductible)},
		{"Vehicle:", fmt.Sprintf("%d %s %s", est.Vehicle.Year, est.Vehicle.Make, est.Vehicle.Model), "VIN:", est.Vehicle.VIN},
	}
	row := 5
	for _, ir := range infoRows {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, ir.label1)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(ir.value1))
		f.SetCellValue(sheetName, "C"+rowStr, ir.label2)
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(ir.value2))
		row++
	}

	// ── Line Items ──────────────────────────────────────────────────────

	row++
	headerRow := fmt.Sprintf("%d", row)
	headers := []string{"Oper", "Description", "Part Number", "Qty", "Ext Price $", "Labor", "Paint"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s%s", columns[i], headerRow), h)
	}
	f.SetCellStyle(sheetName, "A"+headerRow, lastCol+headerRow, headerStyle)
	row++

	for _, item := range est.LineItems {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(item.Oper))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(item.Desc))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(item.PartNumber))
		f.SetCellValue(sheetName, "D"+rowStr, item.Qty)
		f.SetCellValue(sheetName, "E"+rowStr, fmt.Sprintf("%.2f", item.ExtendedPartPrice()))
		f.SetCellValue(sheetName, "F"+rowStr, LaborCellText(item.LaborHours, item.EffectiveLaborRate(est.DefaultLaborRate)))
		f.SetCellValue(sheetName, "G"+rowStr, LaborCellText(item.PaintHours, item.EffectivePaintRate(est.DefaultPaintRate)))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, itemStyle)

		row++
	}

	// ── Totals ──────────────────────────────────────────────────────────

	row++
	for _, line := range BuildTotalsLines(est, data.Totals) {
		if line.Kind == LineSuppressed {
			continue
		}
		rowStr := fmt.Sprintf("%d", row)

		style := totalsLabelStyle
		if line.Bold {
			style = totalsBoldStyle
		}

		f.SetCellValue(sheetName, "E"+rowStr, line.DisplayLabel())
		if err := f.MergeCell(sheetName, "E"+rowStr, "F"+rowStr); err != nil {
			return nil, fmt.Errorf("merge totals label: %w", err)
		}
		f.SetCellStyle(sheetName, "E"+rowStr, "F"+rowStr, style)
		f.SetCellValue(sheetName, "G"+rowStr, line.DisplayAmount())
		f.SetCellStyle(sheetName, "G"+rowStr, "G"+rowStr, style)

		row++
	}

	// ── Regulatory Notice ───────────────────────────────────────────────

	row++
	noticeRow := fmt.Sprintf("%d", row)
	if err := f.MergeCell(sheetName, "A"+noticeRow, lastCol+noticeRow); err != nil {
		return nil, fmt.Errorf("merge notice: %w", err)
	}
	f.SetCellValue(sheetName, "A"+noticeRow, regulatoryNotice)
	f.SetCellStyle(sheetName, "A"+noticeRow, lastCol+noticeRow, noticeStyle)
	if err := f.SetRowHeight(sheetName, row, 40); err != nil {
		return nil, fmt.Errorf("set notice row height: %w", err)
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
