package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationUpdate returns a handler that replaces a quotation's
// content from a JSON payload. The quotation_id itself never changes on
// update.
func HandleQuotationUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		rec, err := app.FindRecordById("quotations", id)
		if err != nil {
			log.Printf("quotation_update: not found %s: %v", id, err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		payload, err := decodeQuotationPayload(e)
		if err != nil {
			log.Printf("quotation_update: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		if errs := validateQuotationPayload(payload); len(errs) > 0 {
			return e.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
		}

		applyQuotationPayload(rec, payload)

		if err := app.Save(rec); err != nil {
			log.Printf("quotation_update: save failed %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, quotationResponse(rec))
	}
}

// HandleQuotationDelete returns a handler that deletes a quotation.
func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		rec, err := app.FindRecordById("quotations", id)
		if err != nil {
			log.Printf("quotation_delete: not found %s: %v", id, err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("quotation_delete: delete failed %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.NoContent(http.StatusNoContent)
	}
}
