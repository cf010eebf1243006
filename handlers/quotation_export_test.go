package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quotationdesk/testhelpers"
)

func TestHandleQuotationExportPDF(t *testing.T) {
	t.Run("exports existing quotation", func(t *testing.T) {
		app := testhelpers.NewTestApp(t)
		rec := testhelpers.CreateTestQuotation(t, app, "Asha Traders", testhelpers.TestItems())

		req := httptest.NewRequest(http.MethodGet, "/api/quotations/"+rec.Id+"/export/pdf", nil)
		req.SetPathValue("id", rec.Id)
		w := httptest.NewRecorder()

		if err := HandleQuotationExportPDF(app, t.TempDir())(newTestRequestEvent(app, req, w)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
			t.Errorf("response is not a PDF")
		}
		if got := w.Header().Get("Content-Type"); got != "application/pdf" {
			t.Errorf("Content-Type = %q", got)
		}
		cd := w.Header().Get("Content-Disposition")
		if !strings.Contains(cd, "Quotation_Asha_Traders_Q-2026-001.pdf") {
			t.Errorf("Content-Disposition = %q", cd)
		}
	})

	t.Run("missing quotation returns 404", func(t *testing.T) {
		app := testhelpers.NewTestApp(t)
		req := httptest.NewRequest(http.MethodGet, "/api/quotations/missing123/export/pdf", nil)
		req.SetPathValue("id", "missing123")
		w := httptest.NewRecorder()

		if err := HandleQuotationExportPDF(app, t.TempDir())(newTestRequestEvent(app, req, w)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}

func TestHandleQuotationRegisterExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestQuotation(t, app, "Asha Traders", testhelpers.TestItems())

	req := httptest.NewRequest(http.MethodGet, "/api/quotations/export/excel", nil)
	w := httptest.NewRecorder()

	if err := HandleQuotationRegisterExcel(app)(newTestRequestEvent(app, req, w)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	// XLSX files are zip archives.
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Errorf("response is not an xlsx archive")
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "Quotation_Register_") {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestHandleQuotationPreview(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := testhelpers.CreateTestQuotation(t, app, "Asha Traders", testhelpers.TestItems())

	req := httptest.NewRequest(http.MethodGet, "/api/quotations/"+rec.Id+"/preview", nil)
	req.SetPathValue("id", rec.Id)
	w := httptest.NewRecorder()

	if err := HandleQuotationPreview(app)(newTestRequestEvent(app, req, w)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"Asha Traders",
		"Ryzen 5 7600",
		"Grand Total",
	)
}
