package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateRegisterExcel(t *testing.T) {
	rows := []RegisterRow{
		{
			QuotationID:   "Q-2026-001",
			CustomerName:  "Asha Traders",
			CustomerPhone: "9876543210",
			DateCreated:   "2026-08-28",
			ItemCount:     3,
			SubTotal:      50000,
			GSTAmount:     9000,
			GrandTotal:    59000,
			CreatedBy:     "owner",
		},
		{
			QuotationID:  "Q-2026-002",
			CustomerName: "=cmd|injection",
		},
	}

	out, err := GenerateRegisterExcel(rows)
	if err != nil {
		t.Fatalf("GenerateRegisterExcel() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	t.Run("title and headers", func(t *testing.T) {
		title, _ := f.GetCellValue("Quotations", "A1")
		if title != "Quotation Register" {
			t.Errorf("A1 = %q, want Quotation Register", title)
		}
		header, _ := f.GetCellValue("Quotations", "A3")
		if header != "Quotation ID" {
			t.Errorf("A3 = %q, want Quotation ID", header)
		}
	})

	t.Run("data rows", func(t *testing.T) {
		id, _ := f.GetCellValue("Quotations", "A4")
		if id != "Q-2026-001" {
			t.Errorf("A4 = %q, want Q-2026-001", id)
		}
		total, _ := f.GetCellValue("Quotations", "I4")
		if total != "₹59,000.00" {
			t.Errorf("I4 = %q, want ₹59,000.00", total)
		}
	})

	t.Run("formula injection neutralized", func(t *testing.T) {
		name, _ := f.GetCellValue("Quotations", "B5")
		if name != "'=cmd|injection" {
			t.Errorf("B5 = %q, want quoted value", name)
		}
	})
}

func TestBuildRegisterRow(t *testing.T) {
	q := testQuotation(2)
	q.DiscountPercent = 10

	row := BuildRegisterRow(q)

	if row.QuotationID != q.QuotationID {
		t.Errorf("QuotationID = %q, want %q", row.QuotationID, q.QuotationID)
	}
	if row.ItemCount != 2 {
		t.Errorf("ItemCount = %d, want 2", row.ItemCount)
	}
	// 2 items at 1000, 18% GST, 10% discount: totals recomputed from items.
	if row.SubTotal != 2000 {
		t.Errorf("SubTotal = %v, want 2000", row.SubTotal)
	}
	if row.DiscountAmount != 200 {
		t.Errorf("DiscountAmount = %v, want 200", row.DiscountAmount)
	}
	if row.GSTAmount != 360 {
		t.Errorf("GSTAmount = %v, want 360", row.GSTAmount)
	}
	if row.GrandTotal != 2160 {
		t.Errorf("GrandTotal = %v, want 2160", row.GrandTotal)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expect string
	}{
		{"plain text", "Asha Traders", "Asha Traders"},
		{"equals prefixed", "=SUM(A1)", "'=SUM(A1)"},
		{"plus prefixed", "+1234", "'+1234"},
		{"at prefixed", "@cmd", "'@cmd"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.in); got != tt.expect {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.expect)
			}
		})
	}
}
