package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"workorderfifo/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// exportFilename builds the suggested download name, keyed by the production
// ticket number.
func exportFilename(result *services.ProcessResult, ext string) string {
	ticket := sanitizeFilename(result.Header.ProductionTicketNr)
	if ticket == "" {
		ticket = "workorder"
	}
	return fmt.Sprintf("picking_list_%s.%s", ticket, ext)
}

// lookupOrder resolves the token path value against the store.
func lookupOrder(store *services.OrderStore, e *core.RequestEvent) (*services.ProcessResult, error) {
	token := e.Request.PathValue("token")
	if token == "" {
		return nil, e.String(http.StatusBadRequest, "Missing work order token")
	}
	result, ok := store.Get(token)
	if !ok {
		return nil, e.String(http.StatusNotFound, "Work order not found or expired; upload it again")
	}
	return result, nil
}

// HandlePickingListCSV returns a handler that downloads the picking list as CSV.
// Route: GET /workorders/{token}/export/csv
func HandlePickingListCSV(store *services.OrderStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, err := lookupOrder(store, e)
		if result == nil {
			return err
		}

		csvBytes, err := services.PickingListCSV(result)
		if err != nil {
			log.Printf("export_csv: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate CSV file")
		}

		e.Response.Header().Set("Content-Type", "text/csv")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(result, "csv")))
		e.Response.Write(csvBytes)
		return nil
	}
}

// HandlePickingListExcel returns a handler that downloads the picking list as xlsx.
// Route: GET /workorders/{token}/export/xlsx
func HandlePickingListExcel(store *services.OrderStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, err := lookupOrder(store, e)
		if result == nil {
			return err
		}

		xlsxBytes, err := services.PickingListExcel(result)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(result, "xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandlePickingListPDF returns a handler that downloads the picking list as PDF.
// Route: GET /workorders/{token}/export/pdf
func HandlePickingListPDF(store *services.OrderStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, err := lookupOrder(store, e)
		if result == nil {
			return err
		}

		pdfBytes, err := services.PickingListPDF(result)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(result, "pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}
