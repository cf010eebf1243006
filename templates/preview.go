// Package templates renders the HTML preview of a quotation document. The
// preview consumes the same document model as the PDF exporter so the two
// outputs stay in lockstep.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"quotationdesk/services"
)

// QuotationPreview renders a paginated quotation document as a printable
// HTML page. Each document page becomes one ".page" block so browser print
// breaks match the PDF page breaks.
func QuotationPreview(doc services.Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.WriteString("<title>")
		b.WriteString(templ.EscapeString(doc.Filename))
		b.WriteString("</title>")
		writeStyles(&b, doc)
		b.WriteString("</head><body>")

		for _, page := range doc.Pages {
			writePage(&b, doc, page)
		}

		b.WriteString("</body></html>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeStyles(b *strings.Builder, doc services.Document) {
	theme := doc.Theme
	fonts := doc.Fonts
	b.WriteString("<style>")
	fmt.Fprintf(b, "body{font-family:%s;margin:0;background:#f5f5f5;}", fonts.Primary.CSS)
	fmt.Fprintf(b, ".page{background:#fff;max-width:800px;margin:16px auto;padding:32px;border:1px solid %s;page-break-after:always;}", theme.Border)
	fmt.Fprintf(b, ".brand{color:%s;font-size:28px;font-weight:bold;}", theme.Primary)
	fmt.Fprintf(b, ".title{color:%s;font-size:20px;text-align:right;font-family:%s;}", theme.Secondary, fonts.Secondary.CSS)
	fmt.Fprintf(b, ".company{font-size:12px;color:#444;font-family:%s;}", fonts.Tertiary.CSS)
	fmt.Fprintf(b, ".customer{margin:12px 0;padding:8px;background:%s;}", theme.PastelBg)
	b.WriteString("table{width:100%;border-collapse:collapse;font-size:13px;}")
	fmt.Fprintf(b, "th{background:%s;color:#fff;padding:6px 8px;text-align:left;}", theme.Primary)
	fmt.Fprintf(b, "td{border:1px solid %s;padding:6px 8px;}", theme.Border)
	fmt.Fprintf(b, "tr:nth-child(even) td{background:%s;}", theme.PastelBg)
	b.WriteString(".totals{margin-top:12px;text-align:right;font-size:14px;}")
	fmt.Fprintf(b, ".grand{color:%s;font-weight:bold;font-size:16px;}", theme.Accent)
	b.WriteString(".footer{margin-top:24px;font-size:11px;color:#555;}")
	b.WriteString(".pagelabel{text-align:right;font-size:10px;color:#999;margin-top:8px;}")
	b.WriteString("@media print{body{background:#fff;}.page{border:none;margin:0;}}")
	b.WriteString("</style>")
}

func writePage(b *strings.Builder, doc services.Document, page services.DocumentPage) {
	b.WriteString("<div class=\"page\">")

	if page.ShowHeader {
		writeHeader(b, page.Header)
	}

	writeTable(b, page.Lines, doc.Options)

	if page.ShowTotals {
		b.WriteString("<div class=\"totals\">")
		fmt.Fprintf(b, "<div>Subtotal (excl. GST): %s</div>",
			templ.EscapeString(services.FormatINR(page.Totals.SubTotalExclGST)))
		fmt.Fprintf(b, "<div class=\"grand\">Grand Total: %s</div>",
			templ.EscapeString(services.FormatINR(page.Totals.GrandTotal)))
		b.WriteString("</div>")
	}

	if page.ShowFooter {
		writeFooter(b, page.Footer)
	}

	if page.Footer.PageLabel != "" {
		fmt.Fprintf(b, "<div class=\"pagelabel\">%s</div>", templ.EscapeString(page.Footer.PageLabel))
	}

	b.WriteString("</div>")
}

func writeHeader(b *strings.Builder, h services.HeaderBlock) {
	b.WriteString("<div class=\"brand\">")
	b.WriteString(templ.EscapeString(h.Brand))
	b.WriteString("</div>")
	b.WriteString("<div class=\"title\">")
	b.WriteString(templ.EscapeString(strings.ToUpper(h.Title)))
	b.WriteString("</div>")
	b.WriteString("<div class=\"company\">")
	b.WriteString(templ.EscapeString(h.CompanyAddress))
	if h.CompanyEmail != "" || h.CompanyPhone != "" {
		b.WriteString("<br>")
		b.WriteString(templ.EscapeString(joinParts(h.CompanyEmail, h.CompanyPhone)))
	}
	if h.CompanyGSTID != "" {
		b.WriteString("<br>GSTIN: ")
		b.WriteString(templ.EscapeString(h.CompanyGSTID))
	}
	b.WriteString("</div>")

	b.WriteString("<div class=\"customer\"><strong>Quotation to:</strong> ")
	b.WriteString(templ.EscapeString(h.CustomerLine))
	if h.CustomerAddress != "" {
		b.WriteString("<br>")
		b.WriteString(templ.EscapeString(h.CustomerAddress))
	}
	if h.DateCreated != "" {
		b.WriteString("<br>Date: ")
		b.WriteString(templ.EscapeString(h.DateCreated))
	}
	b.WriteString("</div>")
}

func writeTable(b *strings.Builder, lines []services.DocumentLine, opts services.DocumentOptions) {
	b.WriteString("<table><thead><tr>")
	b.WriteString("<th>S.No</th><th>Type</th><th>Description</th><th>Qty</th>")
	if opts.ShowUnitPrice {
		b.WriteString("<th>Unit Price</th>")
	}
	b.WriteString("<th>Amount</th>")
	b.WriteString("</tr></thead><tbody>")

	if len(lines) == 0 {
		cols := 5
		if opts.ShowUnitPrice {
			cols = 6
		}
		fmt.Fprintf(b, "<tr><td colspan=\"%d\">No items</td></tr>", cols)
	}
	for _, line := range lines {
		b.WriteString("<tr>")
		fmt.Fprintf(b, "<td>%d</td>", line.SNo)
		fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(line.Type))
		fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(line.Description))
		fmt.Fprintf(b, "<td>%d</td>", line.Qty)
		if opts.ShowUnitPrice {
			fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(services.FormatINR(line.UnitPrice)))
		}
		fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(services.FormatINR(line.Amount)))
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
}

func writeFooter(b *strings.Builder, f services.FooterBlock) {
	b.WriteString("<div class=\"footer\"><strong>TERMS</strong><br>")
	b.WriteString(templ.EscapeString(f.ValidityNotice))
	b.WriteString("<br>")
	b.WriteString(templ.EscapeString(f.WarrantyTerms))
	b.WriteString("<br>")
	b.WriteString(templ.EscapeString(f.SourcingNote))
	b.WriteString("</div>")
}

func joinParts(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " | ")
}
