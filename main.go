package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"autoshield/collections"
	"autoshield/config"
	"autoshield/handlers"
)

func main() {
	cfg := config.MustLoad()
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Repair jobs ──────────────────────────────────────────
		se.Router.GET("/jobs", handlers.HandleJobList(app))

		// ── Job messages ─────────────────────────────────────────
		se.Router.GET("/jobs/{jobId}/messages", handlers.HandleMessageList(app))
		se.Router.POST("/jobs/{jobId}/messages", handlers.HandleMessageCreate(app))

		// ── Damage assessments ───────────────────────────────────
		se.Router.GET("/jobs/{jobId}/assessment", handlers.HandleAssessmentView(app))
		se.Router.POST("/jobs/{jobId}/assessment", handlers.HandleAssessmentSave(app))

		// ── Claim report downloads ───────────────────────────────
		se.Router.GET("/estimates/{id}/export/pdf", handlers.HandleEstimateExportPDF(app, cfg))
		se.Router.GET("/estimates/{id}/export/excel", handlers.HandleEstimateExportExcel(app, cfg))

		// Redirect home to the job listing
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/jobs")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
