package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// HandleOverrideList returns a handler that lists every price override,
// most recently updated first.
func HandleOverrideList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("price_overrides", "id != ''", "-updated", 0, 0)
		if err != nil {
			log.Printf("override_store: could not fetch overrides: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load price overrides")
		}

		out := make([]services.PriceOverride, 0, len(records))
		for _, rec := range records {
			out = append(out, overrideResponse(rec))
		}
		return e.JSON(http.StatusOK, out)
	}
}

// HandleOverrideSave returns a handler that upserts a price override keyed
// by product id. Saving a product that already has an override replaces the
// previous entry instead of stacking a second one.
func HandleOverrideSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var o services.PriceOverride
		if err := json.NewDecoder(e.Request.Body).Decode(&o); err != nil {
			log.Printf("override_store: invalid body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}
		if o.ProductID == "" {
			return e.String(http.StatusBadRequest, "Missing product ID")
		}
		o.Price = services.ClampPrice(o.Price)
		o.TotalPrice = services.ClampPrice(o.TotalPrice)

		rec, err := app.FindFirstRecordByFilter("price_overrides",
			"product_id = {:pid}", map[string]any{"pid": o.ProductID})
		if err != nil {
			col, colErr := app.FindCollectionByNameOrId("price_overrides")
			if colErr != nil {
				log.Printf("override_store: collection not found: %v", colErr)
				return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			rec = core.NewRecord(col)
		}

		rec.Set("product_id", o.ProductID)
		rec.Set("product_name", o.ProductName)
		rec.Set("type", o.Type)
		rec.Set("price", o.Price)
		rec.Set("gst", o.GST)
		rec.Set("total_price", o.TotalPrice)
		rec.Set("description", o.Description)
		rec.Set("added_by", o.AddedBy)

		if err := app.Save(rec); err != nil {
			log.Printf("override_store: save failed for %s: %v", o.ProductID, err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, overrideResponse(rec))
	}
}
