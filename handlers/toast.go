package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

const (
	toastEvent  = "showToast"
	flashCookie = "flash_toast"
)

// SetToast queues a toast for the browser. HTMX requests receive it through
// the HX-Trigger header, merged with any event already set there; full page
// loads pick it up from a short-lived flash cookie read by the page script.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	payload := map[string]string{"message": message, "type": toastType}
	addTrigger(e, toastEvent, payload)
	if !isHTMX(e) {
		setFlash(e, payload)
	}
}

// hxNavigate answers an HTMX request with a full page navigation (HX-Redirect
// or HX-Refresh). The queued toast moves to the flash cookie so it is shown
// on the page that loads next instead of the one being left.
func hxNavigate(e *core.RequestEvent, header, value string) {
	if toast, ok := takeTrigger(e, toastEvent); ok && isHTMX(e) {
		setFlash(e, toast)
	}
	e.Response.Header().Set(header, value)
}

func isHTMX(e *core.RequestEvent) bool {
	return e.Request != nil && e.Request.Header.Get("HX-Request") == "true"
}

func setFlash(e *core.RequestEvent, payload any) {
	cookieVal, err := json.Marshal(payload)
	if err != nil {
		log.Printf("toast: failed to marshal flash cookie: %v", err)
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(string(cookieVal)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // read by the page script
		SameSite: http.SameSiteLaxMode,
	})
}

// takeTrigger removes event from the HX-Trigger JSON object and returns its
// payload.
func takeTrigger(e *core.RequestEvent, event string) (json.RawMessage, bool) {
	existing := e.Response.Header().Get("HX-Trigger")
	if existing == "" {
		return nil, false
	}
	var triggers map[string]json.RawMessage
	if err := json.Unmarshal([]byte(existing), &triggers); err != nil {
		return nil, false
	}
	payload, ok := triggers[event]
	if !ok {
		return nil, false
	}
	delete(triggers, event)
	if len(triggers) == 0 {
		e.Response.Header().Del("HX-Trigger")
		return payload, true
	}
	data, err := json.Marshal(triggers)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return payload, true
	}
	e.Response.Header().Set("HX-Trigger", string(data))
	return payload, true
}

// addTrigger sets event in the HX-Trigger JSON object. A header that is not
// a JSON object is replaced.
func addTrigger(e *core.RequestEvent, event string, payload any) {
	triggers := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &triggers); err != nil {
			log.Printf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
			triggers = map[string]any{}
		}
	}
	triggers[event] = payload

	data, err := json.Marshal(triggers)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))
}

// ErrorToast sets an error toast and prevents HTMX from swapping the error text into the DOM.
// It sets HX-Reswap: none so the response body is ignored by HTMX, while the HX-Trigger
// header still fires the toast event.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
