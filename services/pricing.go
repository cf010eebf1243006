// Package services implements the quotation document pipeline: totals
// calculation, price override resolution, category ordering, the paginated
// document model and the PDF/Excel exporters.
package services

// LineItem is one product entry on a quotation.
type LineItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	GSTRate     float64 `json:"gstRate"`
	Description string  `json:"description,omitempty"`
}

// QuotationTotals holds the aggregated money values for a quotation.
type QuotationTotals struct {
	SubTotal           float64
	DiscountAmount     float64
	TotalAfterDiscount float64
	TotalGSTAmount     float64
	GrandTotal         float64
}

// CalcLineAmount returns the pre-GST amount of one line (unit price * qty).
func CalcLineAmount(price float64, quantity int) float64 {
	return price * float64(quantity)
}

// CalcQuotationTotals computes subtotal, discount, GST and grand total from a
// list of line items. GST is computed on the pre-discount line amount; the
// discount does not reduce the GST base. No rounding is applied here; display
// formatting rounds to 2 decimals at presentation only.
func CalcQuotationTotals(items []LineItem, discountPercent float64) QuotationTotals {
	var t QuotationTotals
	for _, item := range items {
		amount := CalcLineAmount(item.Price, item.Quantity)
		t.SubTotal += amount
		t.TotalGSTAmount += amount * item.GSTRate / 100
	}
	t.DiscountAmount = t.SubTotal * discountPercent / 100
	t.TotalAfterDiscount = t.SubTotal - t.DiscountAmount
	t.GrandTotal = t.TotalAfterDiscount + t.TotalGSTAmount
	return t
}

// ClampPrice clamps negative price inputs to zero. Applied at entry so all
// stored monetary values are non-negative.
func ClampPrice(price float64) float64 {
	if price < 0 {
		return 0
	}
	return price
}
