package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF renders the paginated document model into a single
// PDF. Each DocumentPage becomes exactly one physical A4 page, appended in
// increasing page-index order; block visibility follows the model, so the
// header appears where the model says and nowhere else. The logo (optional)
// is placed on the first page only.
func GenerateQuotationPDF(doc Document, logo []byte) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	for _, pg := range doc.Pages {
		m.AddPages(page.New().Add(buildPageRows(doc, pg, logo)...))
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}
	return generated.GetBytes(), nil
}

// buildPageRows assembles the maroto rows for one document page in block
// order: header, item table, totals, footer.
func buildPageRows(doc Document, pg DocumentPage, logo []byte) []core.Row {
	var rows []core.Row
	if pg.ShowHeader {
		rows = append(rows, headerRows(doc, pg.Header, logo)...)
	}
	rows = append(rows, tableRows(doc, pg)...)
	if pg.ShowTotals {
		rows = append(rows, totalsRows(doc, pg.Totals)...)
	}
	if pg.ShowFooter {
		rows = append(rows, footerRows(doc, pg.Footer)...)
	}
	return rows
}

// headerRows renders the brand line, company info and "Quotation to" block.
func headerRows(doc Document, h HeaderBlock, logo []byte) []core.Row {
	primary := hexToColor(doc.Theme.Primary)
	secondary := hexToColor(doc.Theme.Secondary)
	muted := &props.Color{Red: 100, Green: 100, Blue: 100}

	brandCols := 8
	top := row.New(14)
	if len(logo) > 0 {
		brandCols = 6
		top.Add(col.New(2).Add(image.NewFromBytes(logo, extension.Png, props.Rect{
			Percent: 90,
		})))
	}
	top.Add(
		col.New(brandCols).Add(text.New(h.Brand, props.Text{
			Size:   15,
			Style:  fontstyle.Bold,
			Align:  align.Left,
			Family: doc.Fonts.Primary.PDF,
			Color:  primary,
		})),
		col.New(4).Add(text.New(h.Title, props.Text{
			Size:   14,
			Style:  fontstyle.Bold,
			Align:  align.Right,
			Family: doc.Fonts.Primary.PDF,
			Color:  secondary,
		})),
	)
	rows := []core.Row{top}

	companyLine := joinNonEmpty([]string{h.CompanyAddress, h.CompanyEmail, h.CompanyPhone}, " | ")
	rows = append(rows, row.New(6).Add(
		col.New(12).Add(text.New(companyLine, props.Text{
			Size:   8,
			Align:  align.Left,
			Family: doc.Fonts.Secondary.PDF,
			Color:  muted,
		})),
	))
	if h.CompanyGSTID != "" {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New("GSTIN: "+h.CompanyGSTID, props.Text{
				Size:   8,
				Align:  align.Left,
				Family: doc.Fonts.Secondary.PDF,
				Color:  muted,
			})),
		))
	}

	rows = append(rows, row.New(3))

	rows = append(rows, row.New(6).Add(
		col.New(8).Add(text.New("QUOTATION TO", props.Text{
			Size:   7,
			Style:  fontstyle.Bold,
			Align:  align.Left,
			Family: doc.Fonts.Secondary.PDF,
			Color:  muted,
		})),
		col.New(4).Add(text.New("Date: "+h.DateCreated, props.Text{
			Size:   8,
			Align:  align.Right,
			Family: doc.Fonts.Secondary.PDF,
		})),
	))
	rows = append(rows, row.New(6).Add(
		col.New(12).Add(text.New(h.CustomerLine, props.Text{
			Size:   9,
			Style:  fontstyle.Bold,
			Align:  align.Left,
			Family: doc.Fonts.Primary.PDF,
		})),
	))
	if h.CustomerAddress != "" {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New(h.CustomerAddress, props.Text{
				Size:   8,
				Align:  align.Left,
				Family: doc.Fonts.Secondary.PDF,
			})),
		))
	}

	rows = append(rows, row.New(3))
	return rows
}

// tableRows renders the item table header and this page's item slice. Rows
// alternate the theme's pastel background; an empty quotation renders one
// "No items" placeholder row.
func tableRows(doc Document, pg DocumentPage) []core.Row {
	headerBg := hexToColor(doc.Theme.Primary)
	headerText := props.Text{
		Size:   7,
		Style:  fontstyle.Bold,
		Align:  align.Center,
		Family: doc.Fonts.Tertiary.PDF,
		Color:  &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := &props.Cell{BackgroundColor: headerBg}

	descCols := 6
	if doc.Options.ShowUnitPrice {
		descCols = 4
	}

	header := row.New(8)
	header.Add(
		col.New(1).Add(text.New("S.No", headerText)).WithStyle(headerCell),
		col.New(2).Add(text.New("Type", headerTextLeft)).WithStyle(headerCell),
		col.New(descCols).Add(text.New("Description", headerTextLeft)).WithStyle(headerCell),
		col.New(1).Add(text.New("Qty", headerText)).WithStyle(headerCell),
	)
	if doc.Options.ShowUnitPrice {
		header.Add(col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(headerCell))
	}
	header.Add(col.New(2).Add(text.New("Amount", headerText)).WithStyle(headerCell))

	rows := []core.Row{header}

	if len(pg.Lines) == 0 {
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(text.New("No items", props.Text{
				Size:   8,
				Align:  align.Center,
				Family: doc.Fonts.Tertiary.PDF,
				Color:  &props.Color{Red: 120, Green: 120, Blue: 120},
			})),
		))
		return rows
	}

	altBg := hexToColor(doc.Theme.PastelBg)
	for i, line := range pg.Lines {
		bodyText := props.Text{Size: 7, Align: align.Center, Family: doc.Fonts.Tertiary.PDF}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left, Family: doc.Fonts.Tertiary.PDF}
		bodyTextRight := props.Text{Size: 7, Align: align.Right, Family: doc.Fonts.Tertiary.PDF}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		cols := []core.Col{
			col.New(1).Add(text.New(strconv.Itoa(line.SNo), bodyText)),
			col.New(2).Add(text.New(line.Type, bodyTextLeft)),
			col.New(descCols).Add(text.New(line.Description, bodyTextLeft)),
			col.New(1).Add(text.New(strconv.Itoa(line.Qty), bodyText)),
		}
		if doc.Options.ShowUnitPrice {
			cols = append(cols, col.New(2).Add(text.New(FormatINR(line.UnitPrice), bodyTextRight)))
		}
		cols = append(cols, col.New(2).Add(text.New(FormatINR(line.Amount), bodyTextRight)))

		if cellStyle != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}
		rows = append(rows, row.New(7).Add(cols...))
	}

	rows = append(rows, row.New(2))
	return rows
}

// totalsRows renders the compact totals box: post-discount subtotal and
// grand total. Discount and GST amounts stay internal to the model.
func totalsRows(doc Document, totals TotalsBlock) []core.Row {
	summaryCell := &props.Cell{BackgroundColor: hexToColor(doc.Theme.PastelBg)}
	labelStyle := props.Text{
		Size:   8,
		Style:  fontstyle.Bold,
		Align:  align.Right,
		Family: doc.Fonts.Secondary.PDF,
	}
	valueStyle := props.Text{
		Size:   8,
		Align:  align.Right,
		Family: doc.Fonts.Secondary.PDF,
	}

	grandCell := &props.Cell{BackgroundColor: hexToColor(doc.Theme.Primary)}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}
	grandLabel := labelStyle
	grandLabel.Size = 9
	grandLabel.Color = white
	grandValue := grandLabel

	return []core.Row{
		row.New(7).Add(
			col.New(9).Add(text.New("Subtotal (excl. GST)", labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatINR(totals.SubTotalExclGST), valueStyle)).WithStyle(summaryCell),
		),
		row.New(8).Add(
			col.New(9).Add(text.New("Grand Total", grandLabel)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatINR(totals.GrandTotal), grandValue)).WithStyle(grandCell),
		),
		row.New(3),
	}
}

// footerRows renders the terms copy and, on multi-page documents, the page
// label.
func footerRows(doc Document, f FooterBlock) []core.Row {
	muted := &props.Color{Red: 100, Green: 100, Blue: 100}
	termStyle := props.Text{
		Size:   7,
		Align:  align.Left,
		Family: doc.Fonts.Tertiary.PDF,
		Color:  muted,
	}

	rows := []core.Row{
		row.New(5).Add(
			col.New(12).Add(text.New("TERMS", props.Text{
				Size:   7,
				Style:  fontstyle.Bold,
				Align:  align.Left,
				Family: doc.Fonts.Secondary.PDF,
				Color:  hexToColor(doc.Theme.Secondary),
			})),
		),
		row.New(5).Add(col.New(12).Add(text.New(f.ValidityNotice, termStyle))),
		row.New(5).Add(col.New(12).Add(text.New(f.WarrantyTerms, termStyle))),
		row.New(5).Add(col.New(12).Add(text.New(f.SourcingNote, termStyle))),
	}
	if f.PageLabel != "" {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New(f.PageLabel, props.Text{
				Size:   7,
				Align:  align.Right,
				Family: doc.Fonts.Tertiary.PDF,
				Color:  muted,
			})),
		))
	}
	return rows
}

// hexToColor converts a "#rrggbb" string into a maroto color. Invalid values
// return nil so the library falls back to its default.
func hexToColor(hex string) *props.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return nil
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil
	}
	return &props.Color{
		Red:   int(v >> 16 & 0xff),
		Green: int(v >> 8 & 0xff),
		Blue:  int(v & 0xff),
	}
}
