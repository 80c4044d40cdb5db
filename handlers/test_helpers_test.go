package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"workorderfifo/services"
	"workorderfifo/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

// uploadRequest builds a multipart POST carrying an xlsx work order file.
func uploadRequest(t *testing.T, filename string, file []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(file); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/workorders", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// storedSampleOrder processes the standard fixture and stores it, returning
// the store, token and result.
func storedSampleOrder(t *testing.T) (*services.OrderStore, string, *services.ProcessResult) {
	t.Helper()

	file := testhelpers.BuildWorkOrderFile(t, testhelpers.WorkOrderSpec{
		Rows: [][]string{
			testhelpers.ComponentRow("COMP-X", "X-NEW", "01122026", "10", "3"),
			testhelpers.ComponentRow("COMP-X", "X-OLD", "15082026", "10", "5"),
			testhelpers.ComponentRow("COMP-B", "B1", "01092026", "2", "4"),
		},
	})
	result, err := services.ProcessWorkOrder(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("process fixture: %v", err)
	}

	store := services.NewOrderStore(0)
	token := store.Put(result)
	return store, token, result
}
