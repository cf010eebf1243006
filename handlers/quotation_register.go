package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationdesk/services"
)

// HandleQuotationRegisterExcel returns a handler that exports every
// quotation as an Excel register, newest first.
func HandleQuotationRegisterExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotations", "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("quotation_register: could not fetch quotations: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotations")
		}

		rows := make([]services.RegisterRow, 0, len(records))
		for _, rec := range records {
			rows = append(rows, services.BuildRegisterRow(services.QuotationFromRecord(rec)))
		}

		excelBytes, err := services.GenerateRegisterExcel(rows)
		if err != nil {
			log.Printf("quotation_register: excel generation failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file. Please try again.")
		}

		filename := fmt.Sprintf("Quotation_Register_%s.xlsx", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Header().Set("Content-Length", fmt.Sprintf("%d", len(excelBytes)))
		e.Response.WriteHeader(http.StatusOK)
		if _, err := e.Response.Write(excelBytes); err != nil {
			log.Printf("quotation_register: write response failed: %v", err)
		}
		return nil
	}
}
