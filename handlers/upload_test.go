package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workorderfifo/services"
	"workorderfifo/testhelpers"
)

func TestHandleUploadPage(t *testing.T) {
	handler := HandleUploadPage()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Upload Work Order") {
		t.Error("expected the upload form")
	}
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("expected the full page shell for a non-HTMX request")
	}
}

func TestHandleUploadPage_HTMXPartial(t *testing.T) {
	handler := HandleUploadPage()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
		t.Error("HTMX request should get the bare form, not the page shell")
	}
}

func TestHandleWorkOrderProcess_Success(t *testing.T) {
	store := services.NewOrderStore(0)
	handler := HandleWorkOrderProcess(store)

	file := testhelpers.BuildWorkOrderFile(t, testhelpers.WorkOrderSpec{
		Rows: [][]string{
			testhelpers.ComponentRow("COMP-X", "X1", "15082026", "10", "5"),
			testhelpers.ComponentRow("COMP-X", "X2", "01122026", "10", "3"),
		},
	})

	req := uploadRequest(t, "WO 00000086.xlsx", file)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Work Order 86") {
		t.Error("expected the results view with the ticket number")
	}
	if !strings.Contains(body, "PICK FIRST") {
		t.Error("expected a priority batch in the picking list")
	}
	if !strings.Contains(body, "Stock Shortages") {
		t.Error("expected the shortage table (5+3 against 10 required)")
	}

	// The processed order must be downloadable via the cookie token.
	var token string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "active_order" {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("expected the active_order cookie to be set")
	}
	if _, ok := store.Get(token); !ok {
		t.Error("cookie token does not resolve against the store")
	}
}

func TestHandleWorkOrderProcess_MissingColumn(t *testing.T) {
	store := services.NewOrderStore(0)
	handler := HandleWorkOrderProcess(store)

	file := testhelpers.BuildWorkOrderFile(t, testhelpers.WorkOrderSpec{
		Columns: testhelpers.WithoutColumn("Component"),
		Rows: [][]string{
			testhelpers.ComponentRow("COMP-X", "X1", "15082026", "10", "5"),
		},
	})

	req := uploadRequest(t, "wo.xlsx", file)
	rec := httptest.NewRecorder()

	handler(newTestRequestEvent(req, rec))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	trigger := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trigger, "Component") {
		t.Errorf("expected the toast to name the missing column, got %q", trigger)
	}
}

func TestHandleWorkOrderProcess_EmptyFile(t *testing.T) {
	store := services.NewOrderStore(0)
	handler := HandleWorkOrderProcess(store)

	file := testhelpers.BuildWorkOrderFile(t, testhelpers.WorkOrderSpec{})
	req := uploadRequest(t, "wo.xlsx", file)
	rec := httptest.NewRecorder()

	handler(newTestRequestEvent(req, rec))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	trigger := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trigger, "no component rows") {
		t.Errorf("expected the empty-file toast, got %q", trigger)
	}
}

func TestHandleWorkOrderProcess_WrongExtension(t *testing.T) {
	store := services.NewOrderStore(0)
	handler := HandleWorkOrderProcess(store)

	req := uploadRequest(t, "workorder.pdf", []byte("junk"))
	rec := httptest.NewRecorder()

	handler(newTestRequestEvent(req, rec))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleWorkOrderProcess_NoFile(t *testing.T) {
	store := services.NewOrderStore(0)
	handler := HandleWorkOrderProcess(store)

	req := httptest.NewRequest(http.MethodPost, "/workorders", strings.NewReader("plain body"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	handler(newTestRequestEvent(req, rec))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleWorkOrderView(t *testing.T) {
	store, token, _ := storedSampleOrder(t)
	handler := HandleWorkOrderView(store)

	req := httptest.NewRequest(http.MethodGet, "/workorders/"+token, nil)
	req.SetPathValue("token", token)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "FIFO Picking List") {
		t.Error("expected the picking list section")
	}
}

func TestHandleWorkOrderView_UnknownToken(t *testing.T) {
	store := services.NewOrderStore(0)
	handler := HandleWorkOrderView(store)

	req := httptest.NewRequest(http.MethodGet, "/workorders/nope", nil)
	req.SetPathValue("token", "nope")
	rec := httptest.NewRecorder()

	handler(newTestRequestEvent(req, rec))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestWorkOrderErrorToast_UnreadableFile(t *testing.T) {
	store := services.NewOrderStore(0)
	handler := HandleWorkOrderProcess(store)

	req := uploadRequest(t, "wo.xlsx", []byte("not a workbook"))
	rec := httptest.NewRecorder()

	handler(newTestRequestEvent(req, rec))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	trigger := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trigger, "Could not read") {
		t.Errorf("expected the unreadable-file toast, got %q", trigger)
	}
}
