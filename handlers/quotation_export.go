package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// HandleQuotationExportPDF returns a handler that renders a quotation as a
// PDF download. staticDir is the fallback location for the company logo.
func HandleQuotationExportPDF(app *pocketbase.PocketBase, staticDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		opts := documentOptionsFromRequest(e)
		doc, err := services.BuildQuotationDocument(app, id, opts)
		if err != nil {
			log.Printf("quotation_export: %v", err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		logo := services.ResolveLogo(services.LoadSettings(app), staticDir)

		pdfBytes, err := services.GenerateQuotationPDF(doc, logo)
		if err != nil {
			log.Printf("quotation_export: pdf generation failed for %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF. Please try again.")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
		e.Response.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
		e.Response.WriteHeader(http.StatusOK)
		if _, err := e.Response.Write(pdfBytes); err != nil {
			log.Printf("quotation_export: write response failed: %v", err)
		}
		return nil
	}
}
