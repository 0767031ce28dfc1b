package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// JobListItem is the JSON shape of one repair job in the listing.
type JobListItem struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Vehicle       string `json:"vehicle"`
	Status        string `json:"status"`
}

// HandleJobList returns a handler that lists repair jobs, optionally
// filtered by the customer_email query parameter.
func HandleJobList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		jobsCol, err := app.FindCollectionByNameOrId("repair_jobs")
		if err != nil {
			log.Printf("jobs: could not find repair_jobs collection: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var records []*core.Record
		if email := e.Request.URL.Query().Get("customer_email"); email != "" {
			records, err = app.FindRecordsByFilter(
				jobsCol,
				"customer_email = {:email}",
				"-created", 0, 0,
				map[string]any{"email": email},
			)
		} else {
			records, err = app.FindAllRecords(jobsCol)
		}
		if err != nil {
			log.Printf("jobs: could not query repair jobs: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		items := make([]JobListItem, 0, len(records))
		for _, rec := range records {
			items = append(items, JobListItem{
				ID:            rec.Id,
				CustomerName:  rec.GetString("customer_name"),
				CustomerEmail: rec.GetString("customer_email"),
				Vehicle:       rec.GetString("vehicle"),
				Status:        rec.GetString("status"),
			})
		}

		return e.JSON(http.StatusOK, items)
	}
}
