package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"workorderfifo/services"
	"workorderfifo/templates"
)

// HandleUploadPage renders the upload form.
// Route: GET /
func HandleUploadPage() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		active := GetActiveOrder(e.Request)

		isHTMX := e.Request.Header.Get("HX-Request") == "true"
		if isHTMX {
			return templates.UploadForm(active).Render(e.Request.Context(), e.Response)
		}
		return templates.UploadPage(active).Render(e.Request.Context(), e.Response)
	}
}

// HandleWorkOrderProcess receives an uploaded work order, runs the FIFO
// pipeline, stores the result, and renders the results view.
// Route: POST /workorders
func HandleWorkOrderProcess(store *services.OrderStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		lowerName := strings.ToLower(header.Filename)
		if !strings.HasSuffix(lowerName, ".xlsx") && !strings.HasSuffix(lowerName, ".xls") {
			return ErrorToast(e, http.StatusBadRequest, "Unsupported file format: must be .xlsx or .xls")
		}

		result, err := services.ProcessWorkOrder(file)
		if err != nil {
			return workOrderErrorToast(e, header.Filename, err)
		}

		token := store.Put(result)
		setActiveOrderCookie(e, token)
		log.Printf("processed work order %s: %d rows, %d components, %d shortages",
			result.Header.ProductionTicketNr, result.Stats.TotalRows,
			result.Stats.TotalComponents, result.Stats.ShortageCount)

		data := templates.OrderView{Token: token, Result: result}

		isHTMX := e.Request.Header.Get("HX-Request") == "true"
		if isHTMX {
			e.Response.Header().Set("HX-Push-Url", "/workorders/"+token)
			return templates.ResultsContent(data).Render(e.Request.Context(), e.Response)
		}
		return templates.ResultsPage(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleWorkOrderView re-renders a previously processed work order.
// Route: GET /workorders/{token}
func HandleWorkOrderView(store *services.OrderStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, err := lookupOrder(store, e)
		if result == nil {
			return err
		}

		data := templates.OrderView{Token: e.Request.PathValue("token"), Result: result}

		isHTMX := e.Request.Header.Get("HX-Request") == "true"
		if isHTMX {
			return templates.ResultsContent(data).Render(e.Request.Context(), e.Response)
		}
		return templates.ResultsPage(data).Render(e.Request.Context(), e.Response)
	}
}

// workOrderErrorToast maps pipeline errors onto user-facing toasts, keeping
// the structural / empty-file distinction.
func workOrderErrorToast(e *core.RequestEvent, filename string, err error) error {
	var missing *services.MissingColumnError
	switch {
	case errors.As(err, &missing):
		log.Printf("upload %s: %v", filename, err)
		return ErrorToast(e, http.StatusUnprocessableEntity,
			fmt.Sprintf("The file is missing the required column %q", missing.Column))
	case errors.Is(err, services.ErrNoComponentRows):
		log.Printf("upload %s: empty data section", filename)
		return ErrorToast(e, http.StatusUnprocessableEntity,
			"The work order contains no component rows")
	default:
		log.Printf("upload %s: %v", filename, err)
		return ErrorToast(e, http.StatusUnprocessableEntity,
			"Could not read the file as an Excel work order")
	}
}
