package services

import (
	"fmt"
	"regexp"
	"strings"
)

// ItemsPerPage is the fixed number of line items on a printed page.
const ItemsPerPage = 8

// TotalPages returns the printable page count for an item count. An empty
// quotation still produces one page.
func TotalPages(itemCount int) int {
	if itemCount <= 0 {
		return 1
	}
	return (itemCount + ItemsPerPage - 1) / ItemsPerPage
}

// Customer identifies the recipient of a quotation.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Quotation is the domain shape consumed by the document pipeline.
type Quotation struct {
	ID              string
	QuotationID     string
	DateCreated     string
	Customer        Customer
	Items           []LineItem
	ImageURL        string
	DiscountPercent float64
	CreatedBy       string
	ValidityDays    int
}

// DocumentOptions selects the table variant rendered for a role. The
// owner/admin variant adds a Unit Price column; the default variant shows
// only the line amount.
type DocumentOptions struct {
	ShowUnitPrice bool
}

// PageSpec identifies one printable page of a document.
type PageSpec struct {
	PageIndex  int
	PerPage    int
	TotalPages int
	IsLastPage bool
}

// DocumentLine is one rendered row of the item table. SNo continues across
// pages from the global item sequence.
type DocumentLine struct {
	SNo         int
	Type        string
	Description string
	Qty         int
	UnitPrice   float64
	Amount      float64
}

// HeaderBlock carries the company info and "Quotation to" block shown at the
// top of the document.
type HeaderBlock struct {
	Brand           string
	CompanyGSTID    string
	CompanyAddress  string
	CompanyEmail    string
	CompanyPhone    string
	Title           string
	CustomerLine    string
	CustomerAddress string
	DateCreated     string
	ImageURL        string
}

// TotalsBlock is the compact totals box on the last page. Discount and GST
// amounts are computed but not displayed here.
type TotalsBlock struct {
	SubTotalExclGST float64
	GrandTotal      float64
}

// FooterBlock carries the terms and page label shown at the bottom of the
// last page.
type FooterBlock struct {
	PageLabel      string
	ValidityNotice string
	WarrantyTerms  string
	SourcingNote   string
}

// DocumentPage is one printable page: its item slice plus the structural
// blocks visible on it.
type DocumentPage struct {
	Spec       PageSpec
	ShowHeader bool
	ShowFooter bool
	ShowTotals bool
	Header     HeaderBlock
	Lines      []DocumentLine
	Totals     TotalsBlock
	Footer     FooterBlock
}

// Document is the fully resolved, themed and paginated quotation document.
type Document struct {
	Quotation Quotation
	Theme     Theme
	Fonts     DocumentFonts
	Options   DocumentOptions
	Totals    QuotationTotals
	Pages     []DocumentPage
	Filename  string
}

// BuildDocument assembles the document model for a quotation: overrides
// resolved, items category-sorted once before pagination, totals recomputed
// from the resolved items. Stored totals are never trusted.
//
// Visibility rules: a single-page document shows header, table, totals and
// footer together. A multi-page document shows the header only on page 0 and
// the totals and footer only on the last page; every page shows its own item
// slice with S.No continuing the global sequence.
func BuildDocument(q Quotation, settings Settings, overrides map[string]PriceOverride, opts DocumentOptions) Document {
	order := settings.ItemTypeOrder
	if len(order) == 0 {
		order = DefaultTypeOrder
	}

	items := ResolveOverrides(q.Items, overrides)
	items = SortItemsByCategory(items, order)
	totals := CalcQuotationTotals(items, q.DiscountPercent)

	validityDays := q.ValidityDays
	if validityDays <= 0 {
		validityDays = settings.ValidityDays
	}

	header := HeaderBlock{
		Brand:           settings.Brand,
		CompanyGSTID:    settings.CompanyGSTID,
		CompanyAddress:  settings.CompanyAddress,
		CompanyEmail:    settings.CompanyEmail,
		CompanyPhone:    settings.CompanyPhone,
		Title:           "Quotation",
		CustomerLine:    joinNonEmpty([]string{q.Customer.Name, q.Customer.Phone, q.Customer.Email}, " | "),
		CustomerAddress: q.Customer.Address,
		DateCreated:     q.DateCreated,
		ImageURL:        q.ImageURL,
	}

	n := len(items)
	totalPages := TotalPages(n)
	pages := make([]DocumentPage, 0, totalPages)

	for p := 0; p < totalPages; p++ {
		start := p * ItemsPerPage
		end := min(start+ItemsPerPage, n)

		spec := PageSpec{
			PageIndex:  p,
			PerPage:    ItemsPerPage,
			TotalPages: totalPages,
			IsLastPage: p == totalPages-1,
		}

		var lines []DocumentLine
		for i, item := range items[start:end] {
			lines = append(lines, DocumentLine{
				SNo:         start + i + 1,
				Type:        item.Type,
				Description: lineDescription(item),
				Qty:         item.Quantity,
				UnitPrice:   item.Price,
				Amount:      CalcLineAmount(item.Price, item.Quantity),
			})
		}

		page := DocumentPage{
			Spec:       spec,
			ShowHeader: p == 0,
			ShowFooter: spec.IsLastPage,
			ShowTotals: spec.IsLastPage,
			Lines:      lines,
		}
		if page.ShowHeader {
			page.Header = header
		}
		if page.ShowTotals {
			page.Totals = TotalsBlock{
				SubTotalExclGST: totals.TotalAfterDiscount,
				GrandTotal:      totals.GrandTotal,
			}
		}
		if page.ShowFooter {
			page.Footer = buildFooter(spec, validityDays)
		}
		pages = append(pages, page)
	}

	return Document{
		Quotation: q,
		Theme:     ResolveTheme(settings.PDFTheme, settings.CustomThemes),
		Fonts:     ResolveFonts(settings.FontPrimary, settings.FontSecondary, settings.FontTertiary),
		Options:   opts,
		Totals:    totals,
		Pages:     pages,
		Filename:  QuotationFilename(q.Customer.Name, q.QuotationID),
	}
}

// lineDescription renders the description column: product name, with the
// optional free-text description appended.
func lineDescription(item LineItem) string {
	if item.Description == "" {
		return item.ProductName
	}
	if item.ProductName == "" {
		return item.Description
	}
	return item.ProductName + " - " + item.Description
}

// buildFooter assembles the fixed terms copy. The page label only appears on
// multi-page documents.
func buildFooter(spec PageSpec, validityDays int) FooterBlock {
	label := ""
	if spec.TotalPages > 1 {
		label = fmt.Sprintf("Page %d of %d", spec.PageIndex+1, spec.TotalPages)
	}
	return FooterBlock{
		PageLabel:      label,
		ValidityNotice: fmt.Sprintf("This quotation is valid for %d days from the date of issue.", validityDays),
		WarrantyTerms:  "All products carry the manufacturer's standard warranty. Installation support is available during business hours.",
		SourcingNote:   "Products are sourced from authorized distributors. Availability and prices are subject to change without notice.",
	}
}

var (
	filenameUnsafe      = regexp.MustCompile(`[^A-Za-z0-9_]+`)
	repeatedUnderscores = regexp.MustCompile(`_{2,}`)
)

// QuotationFilename derives the download filename for a quotation PDF. The
// customer name is reduced to [A-Za-z0-9_] with collapsed underscores; when
// nothing survives, the quotation id stands in for the name.
func QuotationFilename(customerName, quotationID string) string {
	name := filenameUnsafe.ReplaceAllString(strings.TrimSpace(customerName), "_")
	name = repeatedUnderscores.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = quotationID
	}
	return fmt.Sprintf("Quotation_%s_%s.pdf", name, quotationID)
}

// joinNonEmpty joins the non-empty parts with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
