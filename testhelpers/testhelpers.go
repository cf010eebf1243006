// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/collections"
	"quotationdesk/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestQuotation creates a quotation record with the given customer name
// and items, and returns it.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, customerName string, items []services.LineItem) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation_id", "Q-2026-001")
	record.Set("date_created", "2026-08-28")
	record.Set("customer_name", customerName)
	record.Set("customer_phone", "9876543210")
	record.Set("items", items)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestOverride creates a price override record for a product and
// returns it.
func CreateTestOverride(t *testing.T, app *pocketbase.PocketBase, productID string, price, gst float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("price_overrides")
	if err != nil {
		t.Fatalf("failed to find price_overrides collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("product_id", productID)
	record.Set("product_name", "Test Product")
	record.Set("type", "processor")
	record.Set("price", price)
	record.Set("gst", gst)
	record.Set("added_by", "tester")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test override: %v", err)
	}

	return record
}

// CreateTestSettings creates the app_settings record with the given brand
// and returns it.
func CreateTestSettings(t *testing.T, app *pocketbase.PocketBase, brand string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("app_settings")
	if err != nil {
		t.Fatalf("failed to find app_settings collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("brand", brand)
	record.Set("company_address", "Test Address")
	record.Set("validity_days", 14)
	record.Set("pdf_theme", "green")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test settings: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// TestItems returns a small fixed item list for document and handler tests.
func TestItems() []services.LineItem {
	return []services.LineItem{
		{ProductID: "cpu-1", ProductName: "Ryzen 5 7600", Type: "processor", Price: 18000, Quantity: 1, GSTRate: 18},
		{ProductID: "gpu-1", ProductName: "RTX 4060", Type: "graphic card", Price: 28000, Quantity: 1, GSTRate: 18},
		{ProductID: "ram-1", ProductName: "16GB DDR5", Type: "ram", Price: 4500, Quantity: 2, GSTRate: 18},
	}
}
