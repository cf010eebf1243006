package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// formatQuotationID constructs the quotation id from its components.
func formatQuotationID(year int, sequence int) string {
	return fmt.Sprintf("Q-%d-%03d", year, sequence)
}

// GenerateQuotationID creates the next sequential quotation id, e.g.
// "Q-2026-014". The sequence restarts each calendar year and counts existing
// quotations with the year prefix.
func GenerateQuotationID(app *pocketbase.PocketBase, now time.Time) string {
	prefix := fmt.Sprintf("Q-%d-", now.Year())

	existing, err := app.FindRecordsByFilter(
		"quotations",
		"quotation_id ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		existing = nil
	}

	return formatQuotationID(now.Year(), len(existing)+1)
}
