// Package templates holds the templ components for the work order
// processor's small UI: an upload form and the processed results view.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// esc escapes a dynamic value for HTML output.
func esc(s string) string {
	return html.EscapeString(s)
}

// Layout wraps page content in the HTML shell with the HTMX runtime and
// stylesheet.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/app.css">
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head>
<body>
<header class="topbar"><a href="/" class="brand">FIFO Work Order Processor</a></header>
<main id="content" class="container">`, esc(title)); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>
<div id="toast-container"></div>
<script src="/static/toast.js"></script>
</body>
</html>`)
		return err
	})
}

// ActiveOrder identifies the most recently processed work order for the
// current browser, resolved from the active_order cookie.
type ActiveOrder struct {
	Token    string
	TicketNr string
}

// UploadForm renders the work order upload form. Posted via HTMX so parse
// errors surface as toasts without a page reload. active may be nil.
func UploadForm(active *ActiveOrder) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="card upload-card">
<h1>Upload Work Order</h1>
<p class="hint">Excel work order exported by the plant system (.xlsx), data starting at row 5.
Batches are sorted oldest DLUO first and shortages are flagged.</p>
<form hx-post="/workorders" hx-encoding="multipart/form-data" hx-target="#content" hx-swap="innerHTML">
<input type="file" name="file" accept=".xlsx,.xls" required>
<button type="submit" class="btn btn-primary">Process</button>
</form>`); err != nil {
			return err
		}
		if active != nil {
			if _, err := fmt.Fprintf(w, `<p class="hint">Last processed: <a href="/workorders/%s">Work Order %s</a></p>`,
				esc(active.Token), esc(active.TicketNr)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// UploadPage is the full upload page.
func UploadPage(active *ActiveOrder) templ.Component {
	return Layout("FIFO Work Order Processor", UploadForm(active))
}
