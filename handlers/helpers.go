// Package handlers wires the REST surface of the quotation dashboard onto
// PocketBase request events. One file per route; services hold the logic.
package handlers

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// quotationPayload is the JSON body accepted by the create and update
// endpoints.
type quotationPayload struct {
	QuotationID     string              `json:"quotationId"`
	DateCreated     string              `json:"dateCreated"`
	Customer        services.Customer   `json:"customer"`
	Items           []services.LineItem `json:"items"`
	Images          []string            `json:"images"`
	DiscountPercent float64             `json:"discountPercent"`
	CreatedBy       string              `json:"createdBy"`
	ValidityDays    int                 `json:"validityDays"`
}

// decodeQuotationPayload reads and normalizes the request body: negative
// prices are clamped to zero and quantities default to 1 at entry.
func decodeQuotationPayload(e *core.RequestEvent) (*quotationPayload, error) {
	var p quotationPayload
	if err := json.NewDecoder(e.Request.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	for i := range p.Items {
		p.Items[i].Price = services.ClampPrice(p.Items[i].Price)
		if p.Items[i].Quantity < 1 {
			p.Items[i].Quantity = 1
		}
	}
	return &p, nil
}

// validateQuotationPayload returns a field → message map of validation
// errors; empty means valid.
func validateQuotationPayload(p *quotationPayload) map[string]string {
	errs := make(map[string]string)
	if p.Customer.Name == "" {
		errs["customer.name"] = "Customer name is required"
	}
	if !phonePattern.MatchString(p.Customer.Phone) {
		errs["customer.phone"] = "Phone must be exactly 10 digits"
	}
	for i, item := range p.Items {
		if item.GSTRate < 0 || item.GSTRate > 100 {
			errs[fmt.Sprintf("items.%d.gstRate", i)] = "GST rate must be between 0 and 100"
		}
	}
	return errs
}

// applyQuotationPayload writes the payload onto a quotations record. Totals
// are recomputed from the items before saving; the stored values are
// advisory and the document pipeline recomputes them again at render time.
func applyQuotationPayload(rec *core.Record, p *quotationPayload) {
	if p.DateCreated == "" {
		p.DateCreated = time.Now().Format("2006-01-02")
	}
	rec.Set("date_created", p.DateCreated)
	rec.Set("customer_name", p.Customer.Name)
	rec.Set("customer_phone", p.Customer.Phone)
	rec.Set("customer_email", p.Customer.Email)
	rec.Set("customer_address", p.Customer.Address)
	rec.Set("items", p.Items)
	if len(p.Images) > 0 {
		rec.Set("image_url", p.Images[0])
	} else {
		rec.Set("image_url", "")
	}
	rec.Set("discount_percent", p.DiscountPercent)
	rec.Set("created_by", p.CreatedBy)
	rec.Set("validity_days", p.ValidityDays)

	totals := services.CalcQuotationTotals(p.Items, p.DiscountPercent)
	rec.Set("sub_total", totals.SubTotal)
	rec.Set("discount_amount", totals.DiscountAmount)
	rec.Set("total_gst_amount", totals.TotalGSTAmount)
	rec.Set("grand_total", totals.GrandTotal)
}

// quotationResponse maps a quotations record onto the API response shape.
func quotationResponse(rec *core.Record) map[string]any {
	q := services.QuotationFromRecord(rec)
	images := []string{}
	if q.ImageURL != "" {
		images = append(images, q.ImageURL)
	}
	return map[string]any{
		"id":              q.ID,
		"quotationId":     q.QuotationID,
		"dateCreated":     q.DateCreated,
		"customer":        q.Customer,
		"items":           q.Items,
		"images":          images,
		"subTotal":        rec.GetFloat("sub_total"),
		"discountPercent": q.DiscountPercent,
		"discountAmount":  rec.GetFloat("discount_amount"),
		"totalGstAmount":  rec.GetFloat("total_gst_amount"),
		"grandTotal":      rec.GetFloat("grand_total"),
		"createdBy":       q.CreatedBy,
		"validityDays":    q.ValidityDays,
	}
}

// overrideResponse maps a price_overrides record onto the API response shape.
func overrideResponse(rec *core.Record) services.PriceOverride {
	return services.OverrideFromRecord(rec)
}

// documentOptionsFromRequest reads the table variant from the query string.
// "detailed" is the owner/admin variant with the Unit Price column.
func documentOptionsFromRequest(e *core.RequestEvent) services.DocumentOptions {
	return services.DocumentOptions{
		ShowUnitPrice: e.Request.URL.Query().Get("variant") == "detailed",
	}
}
