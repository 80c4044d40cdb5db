package handlers

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/pocketbase/pocketbase/core"

	"workorderfifo/services"
)

// orderDocument is the JSON shape of a processed work order summary.
type orderDocument struct {
	Header    headerDocument      `json:"header"`
	Stats     services.OrderStats `json:"stats"`
	Summaries []summaryDocument   `json:"components"`
}

type headerDocument struct {
	ProductionTicketNr string  `json:"production_ticket_nr"`
	Wording            string  `json:"wording"`
	ProductCode        string  `json:"product_code"`
	BatchNr            string  `json:"batch_nr"`
	Manager            string  `json:"manager"`
	QuantityLaunched   float64 `json:"quantity_launched"`
	StartDate          string  `json:"start_date"`
}

type summaryDocument struct {
	Component      string  `json:"component"`
	Description    string  `json:"description"`
	Required       float64 `json:"required"`
	Available      float64 `json:"available"`
	BatchCount     int     `json:"batch_count"`
	EarliestExpiry string  `json:"earliest_expiry,omitempty"`
	Sufficient     bool    `json:"sufficient"`
	Shortage       float64 `json:"shortage"`
}

// HandleWorkOrderJSON serves the header, stats and per-component summaries
// of a processed work order as JSON.
// Route: GET /api/workorders/{token}
func HandleWorkOrderJSON(store *services.OrderStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		result, err := lookupOrder(store, e)
		if result == nil {
			return err
		}

		doc := orderDocument{
			Header: headerDocument{
				ProductionTicketNr: result.Header.ProductionTicketNr,
				Wording:            result.Header.Wording,
				ProductCode:        result.Header.ProductCode,
				BatchNr:            result.Header.BatchNr,
				Manager:            result.Header.Manager,
				QuantityLaunched:   result.Header.QuantityLaunched,
				StartDate:          result.Header.StartDate,
			},
			Stats:     result.Stats,
			Summaries: make([]summaryDocument, 0, len(result.Summaries)),
		}
		for _, s := range result.Summaries {
			doc.Summaries = append(doc.Summaries, summaryDocument{
				Component:      s.Component,
				Description:    s.Description,
				Required:       s.Required,
				Available:      s.Available,
				BatchCount:     s.BatchCount,
				EarliestExpiry: services.FormatExpiry(s.EarliestExpiry),
				Sufficient:     s.Sufficient,
				Shortage:       s.Shortage,
			})
		}

		body, err := json.Marshal(doc)
		if err != nil {
			return e.String(http.StatusInternalServerError, "Failed to serialize work order")
		}

		e.Response.Header().Set("Content-Type", "application/json")
		e.Response.Write(body)
		return nil
	}
}
