// Package handlers wires the HTTP surface of the AutoShield claims app:
// repair job listing, job messages, damage assessments, and claim report
// downloads.
package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"autoshield/config"
	"autoshield/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleEstimateExportPDF returns a handler that generates and downloads the
// claim report PDF for an estimate.
func HandleEstimateExportPDF(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing estimate ID")
		}

		data, err := services.BuildEstimateExportData(app, cfg, id)
		if err != nil {
			log.Printf("estimate_export: failed to build data for %s: %v", id, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		pdfBytes, err := services.GenerateEstimatePDF(data)
		if err != nil {
			log.Printf("estimate_export: failed to generate PDF: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate claim report")
		}

		filename := fmt.Sprintf("Claim_Report_%s.pdf", sanitizeFilename(data.Estimate.ClaimNumber))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleEstimateExportExcel returns a handler that generates and downloads
// the claim report as an Excel workbook.
func HandleEstimateExportExcel(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing estimate ID")
		}

		data, err := services.BuildEstimateExportData(app, cfg, id)
		if err != nil {
			log.Printf("estimate_export: failed to build data for %s: %v", id, err)
			return e.String(http.StatusNotFound, "Estimate not found")
		}

		excelBytes, err := services.GenerateEstimateExcel(data)
		if err != nil {
			log.Printf("estimate_export: failed to generate Excel: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate claim report")
		}

		filename := fmt.Sprintf("Claim_Report_%s.xlsx", sanitizeFilename(data.Estimate.ClaimNumber))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(excelBytes)
		return nil
	}
}
