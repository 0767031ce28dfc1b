package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"autoshield/services"
)

// HandleAssessmentSave returns a handler that accepts a damage assessment
// record for a repair job. The payload is parsed and validated exactly once;
// the decoded record is stored alongside the raw JSON and echoed back.
func HandleAssessmentSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("jobId")
		if jobID == "" {
			return e.String(http.StatusBadRequest, "Missing job ID")
		}

		if _, err := app.FindRecordById("repair_jobs", jobID); err != nil {
			log.Printf("assessment: job not found %s: %v", jobID, err)
			return e.String(http.StatusNotFound, "Repair job not found")
		}

		raw, err := io.ReadAll(e.Request.Body)
		if err != nil {
			return e.String(http.StatusBadRequest, "Could not read request body")
		}

		assessment, err := services.ParseAssessment(raw)
		if err != nil {
			log.Printf("assessment: rejected payload for job %s: %v", jobID, err)
			return e.String(http.StatusBadRequest, err.Error())
		}

		col, err := app.FindCollectionByNameOrId("assessments")
		if err != nil {
			log.Printf("assessment: could not find assessments collection: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec := core.NewRecord(col)
		rec.Set("repair_job", jobID)
		rec.Set("assessment_id", assessment.AssessmentID)
		rec.Set("damage_detected", assessment.DamageDetected)
		rec.Set("damage_severity", assessment.DamageSeverity)
		rec.Set("total_estimated_repair_hours", assessment.TotalEstimatedRepairHours)
		rec.Set("payload", string(raw))
		if err := app.Save(rec); err != nil {
			log.Printf("assessment: could not save assessment for job %s: %v", jobID, err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, assessment)
	}
}

// HandleAssessmentView returns a handler that echoes the most recent
// assessment for a repair job.
func HandleAssessmentView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("jobId")
		if jobID == "" {
			return e.String(http.StatusBadRequest, "Missing job ID")
		}

		records, err := app.FindRecordsByFilter(
			"assessments",
			"repair_job = {:jobId}",
			"-created", 1, 0,
			map[string]any{"jobId": jobID},
		)
		if err != nil || len(records) == 0 {
			return e.String(http.StatusNotFound, "No assessment recorded for this job")
		}

		assessment, err := services.ParseAssessment([]byte(records[0].GetString("payload")))
		if err != nil {
			log.Printf("assessment: stored payload for job %s no longer parses: %v", jobID, err)
			return e.String(http.StatusInternalServerError, "Stored assessment is unreadable")
		}

		return e.JSON(http.StatusOK, assessment)
	}
}
