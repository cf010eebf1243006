package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RegisterRow is one quotation in the register export. Totals are the
// recomputed values, not the stored ones.
type RegisterRow struct {
	QuotationID    string
	CustomerName   string
	CustomerPhone  string
	DateCreated    string
	ItemCount      int
	SubTotal       float64
	DiscountAmount float64
	GSTAmount      float64
	GrandTotal     float64
	CreatedBy      string
}

// GenerateRegisterExcel creates the quotation register workbook and returns
// its contents as a byte slice.
func GenerateRegisterExcel(rows []RegisterRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Quotations"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	lastCol := columns[len(columns)-1]

	widths := []float64{14, 28, 14, 14, 8, 16, 16, 16, 16, 14}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	// Row 1: title merged across all columns.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Quotation Register")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// Row 3: column headers.
	headers := []string{
		"Quotation ID", "Customer", "Phone", "Date", "Items",
		"Subtotal", "Discount", "GST", "Grand Total", "Created By",
	}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s3", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	// Data rows from row 4.
	rowNum := 4
	for _, r := range rows {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.QuotationID))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.CustomerName))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.CustomerPhone))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.DateCreated))
		f.SetCellValue(sheetName, "E"+rowStr, r.ItemCount)
		f.SetCellValue(sheetName, "F"+rowStr, FormatINR(r.SubTotal))
		f.SetCellValue(sheetName, "G"+rowStr, FormatINR(r.DiscountAmount))
		f.SetCellValue(sheetName, "H"+rowStr, FormatINR(r.GSTAmount))
		f.SetCellValue(sheetName, "I"+rowStr, FormatINR(r.GrandTotal))
		f.SetCellValue(sheetName, "J"+rowStr, sanitizeExcelCell(r.CreatedBy))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, bodyStyle)
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildRegisterRow converts a quotation into its register row, recomputing
// totals from the items so the register matches what a fresh document would
// show.
func BuildRegisterRow(q Quotation) RegisterRow {
	totals := CalcQuotationTotals(q.Items, q.DiscountPercent)
	return RegisterRow{
		QuotationID:    q.QuotationID,
		CustomerName:   q.Customer.Name,
		CustomerPhone:  q.Customer.Phone,
		DateCreated:    q.DateCreated,
		ItemCount:      len(q.Items),
		SubTotal:       totals.SubTotal,
		DiscountAmount: totals.DiscountAmount,
		GSTAmount:      totals.TotalGSTAmount,
		GrandTotal:     totals.GrandTotal,
		CreatedBy:      q.CreatedBy,
	}
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +,
// -, @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders for all four cell sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
