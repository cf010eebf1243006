package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationList returns a handler that lists all quotations, newest
// first.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotations", "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("quotation_list: could not fetch quotations: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotations")
		}

		out := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			out = append(out, quotationResponse(rec))
		}
		return e.JSON(http.StatusOK, out)
	}
}

// HandleQuotationGet returns a handler that fetches one quotation by record
// id.
func HandleQuotationGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		rec, err := app.FindRecordById("quotations", id)
		if err != nil {
			log.Printf("quotation_get: not found %s: %v", id, err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}
		return e.JSON(http.StatusOK, quotationResponse(rec))
	}
}
