package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// HandleSettingsGet returns a handler that serves the effective settings,
// which is the stored record overlaid onto the defaults.
func HandleSettingsGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, services.LoadSettings(app))
	}
}

// HandleSettingsSave returns a handler that upserts the singleton settings
// record from a JSON payload.
func HandleSettingsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var s services.Settings
		if err := json.NewDecoder(e.Request.Body).Decode(&s); err != nil {
			log.Printf("settings: invalid body: %v", err)
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		rec, err := app.FindFirstRecordByFilter("app_settings", "id != ''")
		if err != nil {
			col, colErr := app.FindCollectionByNameOrId("app_settings")
			if colErr != nil {
				log.Printf("settings: collection not found: %v", colErr)
				return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			rec = core.NewRecord(col)
		}

		rec.Set("brand", s.Brand)
		rec.Set("company_gst_id", s.CompanyGSTID)
		rec.Set("company_address", s.CompanyAddress)
		rec.Set("company_email", s.CompanyEmail)
		rec.Set("company_phone", s.CompanyPhone)
		rec.Set("validity_days", s.ValidityDays)
		rec.Set("pdf_theme", s.PDFTheme)
		rec.Set("font_primary", s.FontPrimary)
		rec.Set("font_secondary", s.FontSecondary)
		rec.Set("font_tertiary", s.FontTertiary)
		rec.Set("logo_path", s.LogoPath)
		rec.Set("item_type_order", s.ItemTypeOrder)
		rec.Set("type_filters", s.TypeFilters)
		rec.Set("custom_themes", s.CustomThemes)

		if err := app.Save(rec); err != nil {
			log.Printf("settings: save failed: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, services.LoadSettings(app))
	}
}
