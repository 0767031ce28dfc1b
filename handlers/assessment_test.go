package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autoshield/services"
	"autoshield/testhelpers"
)

const testAssessmentJSON = `{
	"assessment_id": "DA-2025-00871",
	"damage_detected": true,
	"damage_severity": "Moderate",
	"total_estimated_repair_hours": 17.2,
	"parts_to_repair": [
		{"part_name": "Front bumper cover", "condition": "Scratched", "action": "Repair", "estimated_labor_hours": 3.2}
	]
}`

func TestHandleAssessmentSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	job := testhelpers.CreateTestJob(t, app, "Avery Collins")

	req := httptest.NewRequest(http.MethodPost, "/jobs/"+job.Id+"/assessment", strings.NewReader(testAssessmentJSON))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("jobId", job.Id)
	rec := httptest.NewRecorder()

	if err := HandleAssessmentSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}

	var a services.DamageAssessment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if a.AssessmentID != "DA-2025-00871" {
		t.Errorf("AssessmentID = %q", a.AssessmentID)
	}
	if len(a.PartsToRepair) != 1 {
		t.Errorf("PartsToRepair len = %d, want 1", len(a.PartsToRepair))
	}

	// Stored record keeps the decoded fields plus the raw payload.
	records, err := app.FindRecordsByFilter(
		"assessments", "repair_job = {:jobId}", "-created", 0, 0,
		map[string]any{"jobId": job.Id},
	)
	if err != nil || len(records) != 1 {
		t.Fatalf("stored assessments = %d (err %v), want 1", len(records), err)
	}
	if got := records[0].GetString("damage_severity"); got != "Moderate" {
		t.Errorf("stored severity = %q", got)
	}
	if !records[0].GetBool("damage_detected") {
		t.Error("stored damage_detected should be true")
	}
}

func TestHandleAssessmentSave_Invalid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	job := testhelpers.CreateTestJob(t, app, "Avery Collins")

	tests := []struct {
		name     string
		jobID    string
		body     string
		wantCode int
	}{
		{"unknown job", "missing", testAssessmentJSON, http.StatusNotFound},
		{"broken json", job.Id, `{"assessment_id": `, http.StatusBadRequest},
		{"missing id", job.Id, `{"damage_detected": false}`, http.StatusBadRequest},
		{"bad severity", job.Id, `{"assessment_id": "DA-1", "damage_detected": true, "damage_severity": "Totaled"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/jobs/"+tt.jobID+"/assessment", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("jobId", tt.jobID)
			rec := httptest.NewRecorder()

			if err := HandleAssessmentSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
				t.Fatalf("handler error = %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleAssessmentView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	job := testhelpers.CreateTestJob(t, app, "Avery Collins")

	saveReq := httptest.NewRequest(http.MethodPost, "/jobs/"+job.Id+"/assessment", strings.NewReader(testAssessmentJSON))
	saveReq.Header.Set("Content-Type", "application/json")
	saveReq.SetPathValue("jobId", job.Id)
	saveRec := httptest.NewRecorder()
	if err := HandleAssessmentSave(app)(newTestRequestEvent(app, saveReq, saveRec)); err != nil {
		t.Fatalf("save: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+job.Id+"/assessment", nil)
	req.SetPathValue("jobId", job.Id)
	rec := httptest.NewRecorder()

	if err := HandleAssessmentView(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var a services.DamageAssessment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if a.AssessmentID != "DA-2025-00871" || a.TotalEstimatedRepairHours != 17.2 {
		t.Errorf("assessment = %+v", a)
	}
}

func TestHandleAssessmentView_NoneRecorded(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	job := testhelpers.CreateTestJob(t, app, "Avery Collins")

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+job.Id+"/assessment", nil)
	req.SetPathValue("jobId", job.Id)
	rec := httptest.NewRecorder()

	if err := HandleAssessmentView(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
