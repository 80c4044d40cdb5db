package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"workorderfifo/services"
)

// OrderView carries everything the results view needs: the processed order
// and the store token its download links are keyed by.
type OrderView struct {
	Token  string
	Result *services.ProcessResult
}

// ResultsPage is the full results page.
func ResultsPage(data OrderView) templ.Component {
	title := fmt.Sprintf("Work Order %s", data.Result.Header.ProductionTicketNr)
	return Layout(title, ResultsContent(data))
}

// ResultsContent renders the header summary, shortage table and picking list
// for a processed work order. Served standalone for HTMX swaps.
func ResultsContent(data OrderView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeSummary(w, data); err != nil {
			return err
		}
		if err := writeShortages(w, data.Result); err != nil {
			return err
		}
		return writePickingList(w, data)
	})
}

func writeSummary(w io.Writer, data OrderView) error {
	h := data.Result.Header
	stats := data.Result.Stats

	if _, err := fmt.Fprintf(w, `<section class="card">
<h1>Work Order %s</h1>
<div class="metrics">
<div class="metric"><span class="label">Product Code</span><span class="value">%s</span></div>
<div class="metric"><span class="label">Wording</span><span class="value">%s</span></div>
<div class="metric"><span class="label">Batch Nr</span><span class="value">%s</span></div>
<div class="metric"><span class="label">Manager</span><span class="value">%s</span></div>
<div class="metric"><span class="label">Quantity Launched</span><span class="value">%s</span></div>
<div class="metric"><span class="label">Start Date</span><span class="value">%s</span></div>
<div class="metric"><span class="label">Components</span><span class="value">%d</span></div>
<div class="metric"><span class="label">Rows</span><span class="value">%d</span></div>
</div>`,
		esc(h.ProductionTicketNr), esc(h.ProductCode), esc(h.Wording), esc(h.BatchNr),
		esc(h.Manager), esc(services.FormatQuantity(h.QuantityLaunched)), esc(h.StartDate),
		stats.TotalComponents, stats.TotalRows); err != nil {
		return err
	}

	if stats.UnparsedDates > 0 {
		if _, err := fmt.Fprintf(w, `<p class="warning">%d DLUO cell(s) could not be parsed; those batches are sorted last within their component.</p>`,
			stats.UnparsedDates); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, `</section>`)
	return err
}

func writeShortages(w io.Writer, result *services.ProcessResult) error {
	shortages := result.Shortages()
	if len(shortages) == 0 {
		_, err := io.WriteString(w, `<section class="card success">All components have sufficient stock.</section>`)
		return err
	}

	if _, err := fmt.Fprintf(w, `<section class="card warning-card">
<h2>Stock Shortages (%d)</h2>
<table class="data-table">
<thead><tr><th>Component</th><th>Description</th><th>Required</th><th>Available</th><th>Shortage</th></tr></thead>
<tbody>`, len(shortages)); err != nil {
		return err
	}

	for _, s := range shortages {
		if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td class="num">%s</td><td class="num">%s</td><td class="num shortage">%s</td></tr>`,
			esc(s.Component), esc(s.Description),
			esc(services.FormatQuantity(s.Required)),
			esc(services.FormatQuantity(s.Available)),
			esc(services.FormatQuantity(s.Shortage))); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, `</tbody></table></section>`)
	return err
}

func writePickingList(w io.Writer, data OrderView) error {
	if _, err := fmt.Fprintf(w, `<section class="card">
<h2>FIFO Picking List</h2>
<div class="actions">
<a class="btn" href="/workorders/%[1]s/export/csv">Download CSV</a>
<a class="btn" href="/workorders/%[1]s/export/xlsx">Download Excel</a>
<a class="btn" href="/workorders/%[1]s/export/pdf">Download PDF</a>
</div>
<table class="data-table">
<thead><tr><th>Component</th><th>Description</th><th>Batch Nr</th><th>DLUO</th><th>Available</th><th>Required</th><th>Warehouse</th><th>Location</th><th>Rank</th><th>Priority</th></tr></thead>
<tbody>`, esc(data.Token)); err != nil {
		return err
	}

	for _, entry := range data.Result.PickingList {
		rowClass := ""
		priority := ""
		if entry.Priority {
			rowClass = ` class="priority"`
			priority = "PICK FIRST"
		}
		expiry := services.FormatExpiry(entry.Expiry)
		if expiry == "" {
			expiry = "unknown"
		}

		if _, err := fmt.Fprintf(w, `<tr%s><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td><td>%s</td><td class="num">%d</td><td>%s</td></tr>`,
			rowClass, esc(entry.Component), esc(entry.Description), esc(entry.BatchNr), esc(expiry),
			esc(services.FormatQuantity(entry.AvailableQuantity)),
			esc(services.FormatQuantity(entry.QuantityRequired)),
			esc(services.FormatQuantity(entry.WarehouseStock)),
			esc(entry.DepotLocation), entry.Rank, priority); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, `</tbody></table>
<p class="hint"><a href="/">Process another work order</a></p>
</section>`)
	return err
}
