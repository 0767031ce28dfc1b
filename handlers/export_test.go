package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autoshield/config"
	"autoshield/testhelpers"
)

func testConfig() *config.Config {
	return &config.Config{
		CompanyName:      "AutoShield Insurance Companies",
		WrittenBy:        "Test Estimator",
		DefaultLaborRate: 80.00,
		DefaultPaintRate: 80.00,
		SalesTaxRate:     0.1075,
		Timezone:         "UTC",
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "CA-2025-1042", "CA-2025-1042"},
		{"spaces", "claim 1042", "claim-1042"},
		{"slashes", "a/b\\c", "a-b-c"},
		{"colons", "12:30", "12-30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.input); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHandleEstimateExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "CA-2025-1042")
	testhelpers.CreateTestLineItem(t, app, est.Id, 1, "RT Air duct")

	req := httptest.NewRequest(http.MethodGet, "/estimates/"+est.Id+"/export/pdf", nil)
	req.SetPathValue("id", est.Id)
	rec := httptest.NewRecorder()

	if err := HandleEstimateExportPDF(app, testConfig())(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "Claim_Report_CA-2025-1042.pdf") {
		t.Errorf("Content-Disposition = %q, want claim report filename", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("body is not a PDF")
	}
}

func TestHandleEstimateExportPDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/estimates/missing/export/pdf", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	if err := HandleEstimateExportPDF(app, testConfig())(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleEstimateExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "CA-2025-1042")
	testhelpers.CreateTestLineItem(t, app, est.Id, 1, "RT Air duct")

	req := httptest.NewRequest(http.MethodGet, "/estimates/"+est.Id+"/export/excel", nil)
	req.SetPathValue("id", est.Id)
	rec := httptest.NewRecorder()

	if err := HandleEstimateExportExcel(app, testConfig())(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	wantCT := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if ct := rec.Header().Get("Content-Type"); ct != wantCT {
		t.Errorf("Content-Type = %q, want %q", ct, wantCT)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "Claim_Report_CA-2025-1042.xlsx") {
		t.Errorf("Content-Disposition = %q, want claim report filename", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("body is empty")
	}
}

func TestHandleEstimateExportExcel_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/estimates/missing/export/excel", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	if err := HandleEstimateExportExcel(app, testConfig())(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
