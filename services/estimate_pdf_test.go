package services

import (
	"bytes"
	"testing"
)

func sampleExportData(t *testing.T) *EstimateExportData {
	t.Helper()
	est := sampleEstimate()
	totals, err := ComputeTotals(est)
	if err != nil {
		t.Fatalf("ComputeTotals() error = %v", err)
	}
	return &EstimateExportData{
		Estimate:    est,
		Totals:      totals,
		GeneratedAt: "06/03/2025 02:14:05 PM",
		ReportDate:  "06/03/2025",
	}
}

func TestGenerateEstimatePDF_CompleteData(t *testing.T) {
	result, err := GenerateEstimatePDF(sampleExportData(t))
	if err != nil {
		t.Fatalf("GenerateEstimatePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateEstimatePDF() returned empty bytes")
	}
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Errorf("output does not start with PDF magic, got %q", result[:8])
	}
}

func TestGenerateEstimatePDF_NoLineItems(t *testing.T) {
	data := sampleExportData(t)
	data.Estimate.LineItems = nil
	totals, err := ComputeTotals(data.Estimate)
	if err != nil {
		t.Fatalf("ComputeTotals() error = %v", err)
	}
	data.Totals = totals

	result, err := GenerateEstimatePDF(data)
	if err != nil {
		t.Fatalf("GenerateEstimatePDF() error = %v", err)
	}
	if !bytes.HasPrefix(result, []byte("%PDF-")) {
		t.Error("output without line items should still be a valid PDF")
	}
}

func TestGenerateEstimatePDF_ManyLineItems(t *testing.T) {
	data := sampleExportData(t)

	// Enough rows to spill past one letter page; the repeating header and
	// page-number footer must not break generation.
	base := data.Estimate.LineItems
	for i := 0; i < 15; i++ {
		data.Estimate.LineItems = append(data.Estimate.LineItems, base...)
	}
	totals, err := ComputeTotals(data.Estimate)
	if err != nil {
		t.Fatalf("ComputeTotals() error = %v", err)
	}
	data.Totals = totals

	result, err := GenerateEstimatePDF(data)
	if err != nil {
		t.Fatalf("GenerateEstimatePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("multi-page output is empty")
	}
}
