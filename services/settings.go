package services

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Settings is the process-wide document generation configuration, fetched per
// document generation.
type Settings struct {
	Brand          string           `json:"brand"`
	CompanyGSTID   string           `json:"companyGstId"`
	CompanyAddress string           `json:"companyAddress"`
	CompanyEmail   string           `json:"companyEmail"`
	CompanyPhone   string           `json:"companyPhone"`
	ValidityDays   int              `json:"validityDays"`
	PDFTheme       string           `json:"pdfTheme"`
	ItemTypeOrder  []string         `json:"quotationItemTypeOrder"`
	TypeFilters    []string         `json:"quotationTypeFilters"`
	FontPrimary    string           `json:"fontPrimary"`
	FontSecondary  string           `json:"fontSecondary"`
	FontTertiary   string           `json:"fontTertiary"`
	LogoPath       string           `json:"logoPath"`
	CustomThemes   map[string]Theme `json:"customThemes,omitempty"`
}

// DefaultSettings returns the hard-coded fallback used when the settings
// record cannot be loaded.
func DefaultSettings() Settings {
	return Settings{
		Brand:          "Vertex Computers",
		CompanyAddress: "2nd Floor, MG Road, Bengaluru, Karnataka 560001",
		CompanyEmail:   "sales@vertexcomputers.in",
		CompanyPhone:   "9880012345",
		ValidityDays:   7,
		PDFTheme:       "default",
		ItemTypeOrder:  append([]string(nil), DefaultTypeOrder...),
	}
}

// LoadSettings fetches the app_settings record, falling back to the defaults
// on any failure. A settings fetch failure never aborts document generation.
func LoadSettings(app *pocketbase.PocketBase) Settings {
	rec, err := app.FindFirstRecordByFilter("app_settings", "id != ''")
	if err != nil {
		log.Printf("settings: record not available, using defaults: %v", err)
		return DefaultSettings()
	}
	return settingsFromRecord(rec)
}

// settingsFromRecord overlays a stored settings record onto the defaults, so
// fields the record leaves empty keep their fallback values.
func settingsFromRecord(rec *core.Record) Settings {
	s := DefaultSettings()
	if v := rec.GetString("brand"); v != "" {
		s.Brand = v
	}
	s.CompanyGSTID = rec.GetString("company_gst_id")
	if v := rec.GetString("company_address"); v != "" {
		s.CompanyAddress = v
	}
	if v := rec.GetString("company_email"); v != "" {
		s.CompanyEmail = v
	}
	if v := rec.GetString("company_phone"); v != "" {
		s.CompanyPhone = v
	}
	if v := rec.GetInt("validity_days"); v > 0 {
		s.ValidityDays = v
	}
	if v := rec.GetString("pdf_theme"); v != "" {
		s.PDFTheme = v
	}
	s.FontPrimary = rec.GetString("font_primary")
	s.FontSecondary = rec.GetString("font_secondary")
	s.FontTertiary = rec.GetString("font_tertiary")
	s.LogoPath = rec.GetString("logo_path")

	var order []string
	if err := rec.UnmarshalJSONField("item_type_order", &order); err == nil && len(order) > 0 {
		s.ItemTypeOrder = order
	}
	var filters []string
	if err := rec.UnmarshalJSONField("type_filters", &filters); err == nil {
		s.TypeFilters = filters
	}
	var custom map[string]Theme
	if err := rec.UnmarshalJSONField("custom_themes", &custom); err == nil {
		s.CustomThemes = custom
	}
	return s
}
