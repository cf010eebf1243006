package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// Seed creates the singleton app_settings record when none exists, so the
// document pipeline has a stored configuration to read on a fresh install.
// The stored values mirror the hard-coded defaults the pipeline falls back
// to when this record is missing.
func Seed(app *pocketbase.PocketBase) error {
	existing, err := app.FindFirstRecordByFilter("app_settings", "id != ''")
	if err == nil && existing != nil {
		return nil
	}

	col, err := app.FindCollectionByNameOrId("app_settings")
	if err != nil {
		return fmt.Errorf("app_settings collection not found: %w", err)
	}

	defaults := services.DefaultSettings()

	rec := core.NewRecord(col)
	rec.Set("brand", defaults.Brand)
	rec.Set("company_address", defaults.CompanyAddress)
	rec.Set("company_email", defaults.CompanyEmail)
	rec.Set("company_phone", defaults.CompanyPhone)
	rec.Set("validity_days", defaults.ValidityDays)
	rec.Set("pdf_theme", defaults.PDFTheme)
	rec.Set("item_type_order", defaults.ItemTypeOrder)

	if err := app.Save(rec); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	return nil
}
