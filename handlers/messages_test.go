package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autoshield/testhelpers"
)

func TestHandleMessageCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	job := testhelpers.CreateTestJob(t, app, "Avery Collins")

	body := `{"posted_by": "service-advisor", "subject": "Parts update", "body": "Bumper cover arrived."}`
	req := httptest.NewRequest(http.MethodPost, "/jobs/"+job.Id+"/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("jobId", job.Id)
	rec := httptest.NewRecorder()

	if err := HandleMessageCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}

	var item MessageItem
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if item.ID == "" {
		t.Error("created message has no ID")
	}
	if item.PostedBy != "service-advisor" || item.Body != "Bumper cover arrived." {
		t.Errorf("message = %+v", item)
	}
}

func TestHandleMessageCreate_Invalid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	job := testhelpers.CreateTestJob(t, app, "Avery Collins")

	tests := []struct {
		name     string
		jobID    string
		body     string
		wantCode int
	}{
		{"missing posted_by", job.Id, `{"body": "hello"}`, http.StatusBadRequest},
		{"missing body", job.Id, `{"posted_by": "x"}`, http.StatusBadRequest},
		{"unknown job", "missing", `{"posted_by": "x", "body": "hello"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/jobs/"+tt.jobID+"/messages", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("jobId", tt.jobID)
			rec := httptest.NewRecorder()

			if err := HandleMessageCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
				t.Fatalf("handler error = %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleMessageList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	job := testhelpers.CreateTestJob(t, app, "Avery Collins")

	for _, body := range []string{"first", "second"} {
		payload := `{"posted_by": "advisor", "body": "` + body + `"}`
		req := httptest.NewRequest(http.MethodPost, "/jobs/"+job.Id+"/messages", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.SetPathValue("jobId", job.Id)
		rec := httptest.NewRecorder()
		if err := HandleMessageCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+job.Id+"/messages", nil)
	req.SetPathValue("jobId", job.Id)
	rec := httptest.NewRecorder()

	if err := HandleMessageList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var items []MessageItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d messages, want 2", len(items))
	}
	for _, it := range items {
		if it.JobID != job.Id {
			t.Errorf("message job = %q, want %q", it.JobID, job.Id)
		}
	}
}

func TestHandleMessageList_EmptyJob(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	job := testhelpers.CreateTestJob(t, app, "Avery Collins")

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+job.Id+"/messages", nil)
	req.SetPathValue("jobId", job.Id)
	rec := httptest.NewRecorder()

	if err := HandleMessageList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	var items []MessageItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d messages, want 0", len(items))
	}
}
