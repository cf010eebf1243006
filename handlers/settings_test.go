package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quotationdesk/services"
	"quotationdesk/testhelpers"
)

func TestHandleSettingsGet(t *testing.T) {
	t.Run("defaults when no record", func(t *testing.T) {
		app := testhelpers.NewTestApp(t)
		req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
		w := httptest.NewRecorder()

		if err := HandleSettingsGet(app)(newTestRequestEvent(app, req, w)); err != nil {
			t.Fatalf("handler error: %v", err)
		}

		var got services.Settings
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response JSON: %v", err)
		}
		if got.Brand != services.DefaultSettings().Brand {
			t.Errorf("Brand = %q, want default", got.Brand)
		}
	})

	t.Run("stored settings returned", func(t *testing.T) {
		app := testhelpers.NewTestApp(t)
		testhelpers.CreateTestSettings(t, app, "Nova PC World")

		req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
		w := httptest.NewRecorder()
		if err := HandleSettingsGet(app)(newTestRequestEvent(app, req, w)); err != nil {
			t.Fatalf("handler error: %v", err)
		}

		var got services.Settings
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response JSON: %v", err)
		}
		if got.Brand != "Nova PC World" {
			t.Errorf("Brand = %q, want Nova PC World", got.Brand)
		}
	})
}

func TestHandleSettingsSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	body := `{
		"brand": "Nova PC World",
		"companyGstId": "29ABCDE1234F1Z5",
		"validityDays": 21,
		"pdfTheme": "teal",
		"quotationItemTypeOrder": ["monitor", "processor"]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/settings", strings.NewReader(body))
	w := httptest.NewRecorder()
	if err := HandleSettingsSave(app)(newTestRequestEvent(app, req, w)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	got := services.LoadSettings(app)
	if got.Brand != "Nova PC World" {
		t.Errorf("Brand = %q", got.Brand)
	}
	if got.CompanyGSTID != "29ABCDE1234F1Z5" {
		t.Errorf("CompanyGSTID = %q", got.CompanyGSTID)
	}
	if got.ValidityDays != 21 {
		t.Errorf("ValidityDays = %d, want 21", got.ValidityDays)
	}
	if len(got.ItemTypeOrder) != 2 || got.ItemTypeOrder[0] != "monitor" {
		t.Errorf("ItemTypeOrder = %v", got.ItemTypeOrder)
	}

	t.Run("second save updates the singleton", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/settings",
			strings.NewReader(`{"brand": "Renamed", "validityDays": 21}`))
		w := httptest.NewRecorder()
		if err := HandleSettingsSave(app)(newTestRequestEvent(app, req, w)); err != nil {
			t.Fatalf("handler error: %v", err)
		}

		records, err := app.FindRecordsByFilter("app_settings", "id != ''", "", 0, 0)
		if err != nil || len(records) != 1 {
			t.Fatalf("got %d settings records, want 1 (err: %v)", len(records), err)
		}
		if got := records[0].GetString("brand"); got != "Renamed" {
			t.Errorf("brand = %q, want Renamed", got)
		}
	})
}
