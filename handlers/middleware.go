package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"workorderfifo/services"
	"workorderfifo/templates"
)

type contextKey string

const ActiveOrderKey contextKey = "activeOrder"

// activeOrderCookie tracks the browser's most recently processed work order
// so the upload page can link back to it.
const activeOrderCookie = "active_order"

// GetActiveOrder extracts the active work order reference from the request
// context. Returns nil when no valid order is tracked.
func GetActiveOrder(r *http.Request) *templates.ActiveOrder {
	if val, ok := r.Context().Value(ActiveOrderKey).(*templates.ActiveOrder); ok {
		return val
	}
	return nil
}

// ActiveOrderMiddleware reads the active_order cookie, resolves the token
// against the store, and places an ActiveOrder reference in the request
// context. Tokens that no longer resolve (expired or restarted process)
// clear the cookie.
func ActiveOrderMiddleware(store *services.OrderStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var active *templates.ActiveOrder

		cookie, err := e.Request.Cookie(activeOrderCookie)
		if err == nil && cookie.Value != "" {
			if result, ok := store.Get(cookie.Value); ok {
				active = &templates.ActiveOrder{
					Token:    cookie.Value,
					TicketNr: result.Header.ProductionTicketNr,
				}
			} else {
				http.SetCookie(e.Response, &http.Cookie{
					Name:   activeOrderCookie,
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
			}
		}

		if active != nil {
			ctx := context.WithValue(e.Request.Context(), ActiveOrderKey, active)
			e.Request = e.Request.WithContext(ctx)
		}

		return e.Next()
	}
}

// setActiveOrderCookie records a freshly processed order as the browser's
// active one.
func setActiveOrderCookie(e *core.RequestEvent, token string) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     activeOrderCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(30 * 60),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
