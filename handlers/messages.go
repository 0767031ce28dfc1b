package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// MessageItem is the JSON shape of one job message.
type MessageItem struct {
	ID       string `json:"id"`
	JobID    string `json:"job_id"`
	PostedBy string `json:"posted_by"`
	PostedAt string `json:"posted_at"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

type messageCreateRequest struct {
	PostedBy string `json:"posted_by"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

// HandleMessageList returns a handler that lists the messages of a repair
// job, newest first.
func HandleMessageList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("jobId")
		if jobID == "" {
			return e.String(http.StatusBadRequest, "Missing job ID")
		}

		records, err := app.FindRecordsByFilter(
			"job_messages",
			"repair_job = {:jobId}",
			"-posted_at", 0, 0,
			map[string]any{"jobId": jobID},
		)
		if err != nil {
			log.Printf("messages: could not query messages for job %s: %v", jobID, err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		items := make([]MessageItem, 0, len(records))
		for _, rec := range records {
			items = append(items, MessageItem{
				ID:       rec.Id,
				JobID:    rec.GetString("repair_job"),
				PostedBy: rec.GetString("posted_by"),
				PostedAt: rec.GetString("posted_at"),
				Subject:  rec.GetString("subject"),
				Body:     rec.GetString("body"),
			})
		}

		return e.JSON(http.StatusOK, items)
	}
}

// HandleMessageCreate returns a handler that adds a message to a repair job.
func HandleMessageCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobID := e.Request.PathValue("jobId")
		if jobID == "" {
			return e.String(http.StatusBadRequest, "Missing job ID")
		}

		if _, err := app.FindRecordById("repair_jobs", jobID); err != nil {
			log.Printf("messages: job not found %s: %v", jobID, err)
			return e.String(http.StatusNotFound, "Repair job not found")
		}

		var req messageCreateRequest
		if err := e.BindBody(&req); err != nil {
			return e.String(http.StatusBadRequest, "Invalid message body")
		}
		if req.PostedBy == "" || req.Body == "" {
			return e.String(http.StatusBadRequest, "posted_by and body are required")
		}

		col, err := app.FindCollectionByNameOrId("job_messages")
		if err != nil {
			log.Printf("messages: could not find job_messages collection: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec := core.NewRecord(col)
		rec.Set("repair_job", jobID)
		rec.Set("posted_by", req.PostedBy)
		rec.Set("subject", req.Subject)
		rec.Set("body", req.Body)
		if err := app.Save(rec); err != nil {
			log.Printf("messages: could not save message for job %s: %v", jobID, err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, MessageItem{
			ID:       rec.Id,
			JobID:    jobID,
			PostedBy: req.PostedBy,
			PostedAt: rec.GetString("posted_at"),
			Subject:  req.Subject,
			Body:     req.Body,
		})
	}
}
