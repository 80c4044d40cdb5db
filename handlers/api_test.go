package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"workorderfifo/services"
)

func TestHandleWorkOrderJSON(t *testing.T) {
	store, token, result := storedSampleOrder(t)
	handler := HandleWorkOrderJSON(store)

	req := httptest.NewRequest(http.MethodGet, "/api/workorders/"+token, nil)
	req.SetPathValue("token", token)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}

	var doc orderDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if doc.Header.ProductionTicketNr != result.Header.ProductionTicketNr {
		t.Errorf("ticket = %q, want %q", doc.Header.ProductionTicketNr, result.Header.ProductionTicketNr)
	}
	if doc.Stats != result.Stats {
		t.Errorf("stats = %+v, want %+v", doc.Stats, result.Stats)
	}
	if len(doc.Summaries) != len(result.Summaries) {
		t.Fatalf("summaries = %d, want %d", len(doc.Summaries), len(result.Summaries))
	}
	for i, s := range result.Summaries {
		if doc.Summaries[i].Component != s.Component {
			t.Errorf("summary %d component = %q, want %q", i, doc.Summaries[i].Component, s.Component)
		}
		if doc.Summaries[i].Shortage != s.Shortage {
			t.Errorf("summary %d shortage = %v, want %v", i, doc.Summaries[i].Shortage, s.Shortage)
		}
	}
}

func TestHandleWorkOrderJSON_UnknownToken(t *testing.T) {
	store := services.NewOrderStore(0)
	handler := HandleWorkOrderJSON(store)

	req := httptest.NewRequest(http.MethodGet, "/api/workorders/gone", nil)
	req.SetPathValue("token", "gone")
	rec := httptest.NewRecorder()

	handler(newTestRequestEvent(req, rec))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
