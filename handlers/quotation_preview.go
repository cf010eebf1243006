package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
	"quotationdesk/templates"
)

// HandleQuotationPreview returns a handler that renders a quotation as an
// HTML page. The preview runs the same document pipeline as the PDF export,
// so pagination, ordering and totals match the download exactly.
func HandleQuotationPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		opts := documentOptionsFromRequest(e)
		doc, err := services.BuildQuotationDocument(app, id, opts)
		if err != nil {
			log.Printf("quotation_preview: %v", err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		component := templates.QuotationPreview(doc)
		if err := component.Render(e.Request.Context(), e.Response); err != nil {
			log.Printf("quotation_preview: render failed for %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Failed to render preview")
		}
		return nil
	}
}
