package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func newToastEvent() (*core.RequestEvent, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	e.Response = rec
	return e, rec
}

// decodeTriggers parses the HX-Trigger header of rec.
func decodeTriggers(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	return parsed
}

func decodeToast(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	raw, ok := decodeTriggers(t, rec)["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}
	var toast map[string]string
	if err := json.Unmarshal(raw, &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}
	return toast
}

func TestSetToast_Messages(t *testing.T) {
	tests := []struct {
		name      string
		toastType string
		message   string
	}{
		{"success", "success", "Saved"},
		{"error", "error", "Export failed"},
		{"quotes", "info", `Client "Acme" saved`},
		{"angle brackets", "warning", `<script>alert("xss")</script>`},
		{"newline", "info", "line1\nline2"},
		{"accents", "success", "Proposition enregistrée"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newToastEvent()
			SetToast(e, tt.toastType, tt.message)

			toast := decodeToast(t, rec)
			if toast["message"] != tt.message {
				t.Errorf("message = %q, want %q", toast["message"], tt.message)
			}
			if toast["type"] != tt.toastType {
				t.Errorf("type = %q, want %q", toast["type"], tt.toastType)
			}
		})
	}
}

func TestSetToast_MergesWithExisting(t *testing.T) {
	e, rec := newToastEvent()
	rec.Header().Set("HX-Trigger", `{"refreshPreview":{"step":"budget"}}`)

	SetToast(e, "success", "Merged toast")

	parsed := decodeTriggers(t, rec)
	var other map[string]string
	if err := json.Unmarshal(parsed["refreshPreview"], &other); err != nil {
		t.Fatalf("existing event lost or invalid: %v", err)
	}
	if other["step"] != "budget" {
		t.Errorf("existing event payload = %v", other)
	}
	if toast := decodeToast(t, rec); toast["message"] != "Merged toast" {
		t.Errorf("message = %q", toast["message"])
	}
}

func TestSetToast_OverwritesInvalidExisting(t *testing.T) {
	e, rec := newToastEvent()
	rec.Header().Set("HX-Trigger", "notValidJSON")

	SetToast(e, "error", "Overwritten")

	parsed := decodeTriggers(t, rec)
	if len(parsed) != 1 {
		t.Errorf("expected only showToast, got %v", parsed)
	}
	decodeToast(t, rec)
}

func TestSetToast_FlashCookie(t *testing.T) {
	e, rec := newToastEvent()
	SetToast(e, "success", "New proposal started")

	var flash *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash_toast" {
			flash = c
		}
	}
	if flash == nil {
		t.Fatal("expected flash_toast cookie")
	}
	raw, err := url.QueryUnescape(flash.Value)
	if err != nil {
		t.Fatalf("cookie value not query-escaped: %v", err)
	}
	var toast map[string]string
	if err := json.Unmarshal([]byte(raw), &toast); err != nil {
		t.Fatalf("cookie is not JSON: %v", err)
	}
	if toast["message"] != "New proposal started" || toast["type"] != "success" {
		t.Errorf("flash toast = %v", toast)
	}
}

func flashToast(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name != flashCookie {
			continue
		}
		raw, err := url.QueryUnescape(c.Value)
		if err != nil {
			t.Fatalf("cookie value not query-escaped: %v", err)
		}
		var toast map[string]string
		if err := json.Unmarshal([]byte(raw), &toast); err != nil {
			t.Fatalf("cookie is not JSON: %v", err)
		}
		return toast
	}
	return nil
}

func TestSetToast_HTMXSkipsFlashCookie(t *testing.T) {
	e, rec := newToastEvent()
	e.Request.Header.Set("HX-Request", "true")

	SetToast(e, "success", "Saved")

	decodeToast(t, rec)
	if toast := flashToast(t, rec); toast != nil {
		t.Errorf("HTMX swap should not leave a flash cookie, got %v", toast)
	}
}

func TestHXNavigate_MovesToastToFlashCookie(t *testing.T) {
	e, rec := newToastEvent()
	e.Request.Header.Set("HX-Request", "true")
	addTrigger(e, "refreshGantt", true)
	SetToast(e, "success", "Inserted into Context")

	hxNavigate(e, "HX-Refresh", "true")

	if rec.Header().Get("HX-Refresh") != "true" {
		t.Error("expected HX-Refresh")
	}
	triggers := decodeTriggers(t, rec)
	if _, ok := triggers["showToast"]; ok {
		t.Error("toast should leave HX-Trigger before a full reload")
	}
	if _, ok := triggers["refreshGantt"]; !ok {
		t.Error("other triggers should be kept")
	}
	toast := flashToast(t, rec)
	if toast["message"] != "Inserted into Context" || toast["type"] != "success" {
		t.Errorf("flash toast = %v", toast)
	}
}

func TestHXNavigate_WithoutToast(t *testing.T) {
	e, rec := newToastEvent()
	hxNavigate(e, "HX-Redirect", "/steps/client")

	if rec.Header().Get("HX-Redirect") != "/steps/client" {
		t.Errorf("HX-Redirect = %q", rec.Header().Get("HX-Redirect"))
	}
	if rec.Header().Get("HX-Trigger") != "" {
		t.Error("no trigger expected")
	}
	if toast := flashToast(t, rec); toast != nil {
		t.Errorf("no flash cookie expected, got %v", toast)
	}
}

func TestErrorToast(t *testing.T) {
	tests := []struct {
		name string
		code int
		msg  string
	}{
		{"bad request", http.StatusBadRequest, "Client name is required"},
		{"not found", http.StatusNotFound, "Step not found"},
		{"server error", http.StatusInternalServerError, "Export failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newToastEvent()
			if err := ErrorToast(e, tt.code, tt.msg); err != nil {
				t.Fatalf("ErrorToast returned error: %v", err)
			}
			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
			if rec.Header().Get("HX-Reswap") != "none" {
				t.Error("expected HX-Reswap: none")
			}
			if rec.Body.String() != tt.msg {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.msg)
			}
			if toast := decodeToast(t, rec); toast["type"] != "error" || toast["message"] != tt.msg {
				t.Errorf("toast = %v", toast)
			}
		})
	}
}
