package services

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// LoadQuotation fetches a quotation record and converts it to the domain
// shape. A missing quotation is the one fetch failure that aborts document
// generation.
func LoadQuotation(app *pocketbase.PocketBase, id string) (Quotation, error) {
	rec, err := app.FindRecordById("quotations", id)
	if err != nil {
		return Quotation{}, fmt.Errorf("quotation not found: %w", err)
	}
	return QuotationFromRecord(rec), nil
}

// QuotationFromRecord maps a stored quotations record onto the domain shape.
// Unparseable items degrade to an empty list rather than failing the record.
func QuotationFromRecord(rec *core.Record) Quotation {
	q := Quotation{
		ID:              rec.Id,
		QuotationID:     rec.GetString("quotation_id"),
		DateCreated:     rec.GetString("date_created"),
		ImageURL:        rec.GetString("image_url"),
		DiscountPercent: rec.GetFloat("discount_percent"),
		CreatedBy:       rec.GetString("created_by"),
		ValidityDays:    rec.GetInt("validity_days"),
		Customer: Customer{
			Name:    rec.GetString("customer_name"),
			Phone:   rec.GetString("customer_phone"),
			Email:   rec.GetString("customer_email"),
			Address: rec.GetString("customer_address"),
		},
	}
	if err := rec.UnmarshalJSONField("items", &q.Items); err != nil {
		log.Printf("export_data: quotation %s has unparseable items: %v", rec.Id, err)
	}
	return q
}

// LoadOverrides fetches every price override keyed by product id. Records are
// read oldest first so the latest write per product wins. Failure is
// non-fatal: documents then render from stored prices.
func LoadOverrides(app *pocketbase.PocketBase) map[string]PriceOverride {
	records, err := app.FindRecordsByFilter("price_overrides", "id != ''", "updated", 0, 0)
	if err != nil {
		log.Printf("export_data: could not fetch price overrides: %v", err)
		return nil
	}
	list := make([]PriceOverride, 0, len(records))
	for _, rec := range records {
		list = append(list, OverrideFromRecord(rec))
	}
	return OverrideMap(list)
}

// OverrideFromRecord maps a stored price_overrides record onto the domain
// shape.
func OverrideFromRecord(rec *core.Record) PriceOverride {
	return PriceOverride{
		ProductID:   rec.GetString("product_id"),
		ProductName: rec.GetString("product_name"),
		Type:        rec.GetString("type"),
		Price:       rec.GetFloat("price"),
		GST:         rec.GetFloat("gst"),
		TotalPrice:  rec.GetFloat("total_price"),
		Description: rec.GetString("description"),
		AddedBy:     rec.GetString("added_by"),
	}
}

// BuildQuotationDocument runs the full pipeline for a stored quotation:
// quotation fetch (fatal when missing), settings and override fetches (both
// best-effort), then the document build. The PDF exporter and the HTML
// preview both consume the result, keeping the two paths identical.
func BuildQuotationDocument(app *pocketbase.PocketBase, id string, opts DocumentOptions) (Document, error) {
	q, err := LoadQuotation(app, id)
	if err != nil {
		return Document{}, err
	}
	settings := LoadSettings(app)
	overrides := LoadOverrides(app)
	return BuildDocument(q, settings, overrides, opts), nil
}
