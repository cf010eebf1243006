package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/collections"
	"quotationdesk/handlers"
)

const staticDir = "./static"

func main() {
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
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS(staticDir), false))

		// ── Quotation CRUD ───────────────────────────────────────
		se.Router.GET("/api/quotations", handlers.HandleQuotationList(app))
		se.Router.POST("/api/quotations", handlers.HandleQuotationCreate(app))

		// Register export (before /{id} so "export" is not matched as an ID)
		se.Router.GET("/api/quotations/export/excel", handlers.HandleQuotationRegisterExcel(app))

		se.Router.GET("/api/quotations/{id}", handlers.HandleQuotationGet(app))
		se.Router.POST("/api/quotations/{id}/update", handlers.HandleQuotationUpdate(app))
		se.Router.DELETE("/api/quotations/{id}", handlers.HandleQuotationDelete(app))

		// ── Quotation documents ──────────────────────────────────
		se.Router.GET("/api/quotations/{id}/export/pdf", handlers.HandleQuotationExportPDF(app, staticDir))
		se.Router.GET("/api/quotations/{id}/preview", handlers.HandleQuotationPreview(app))

		// ── Price overrides ──────────────────────────────────────
		se.Router.GET("/api/temp", handlers.HandleOverrideList(app))
		se.Router.POST("/api/temp", handlers.HandleOverrideSave(app))

		// ── Settings ─────────────────────────────────────────────
		se.Router.GET("/api/settings", handlers.HandleSettingsGet(app))
		se.Router.POST("/api/settings", handlers.HandleSettingsSave(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
