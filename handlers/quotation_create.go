package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// HandleQuotationCreate returns a handler that creates a quotation from a
// JSON payload. A missing quotationId is assigned from the yearly sequence.
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		payload, err := decodeQuotationPayload(e)
		if err != nil {
			log.Printf("quotation_create: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		if errs := validateQuotationPayload(payload); len(errs) > 0 {
			return e.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
		}

		col, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			log.Printf("quotation_create: collection not found: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if payload.QuotationID == "" {
			payload.QuotationID = services.GenerateQuotationID(app, time.Now())
		}

		rec := core.NewRecord(col)
		rec.Set("quotation_id", payload.QuotationID)
		applyQuotationPayload(rec, payload)

		if err := app.Save(rec); err != nil {
			log.Printf("quotation_create: save failed: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusCreated, quotationResponse(rec))
	}
}
