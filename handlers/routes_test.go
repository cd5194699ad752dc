package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/router"
)

func newTestMux(t *testing.T, store *SessionStore) http.Handler {
	t.Helper()
	r := router.NewRouter(func(w http.ResponseWriter, req *http.Request) (*core.RequestEvent, router.EventCleanupFunc) {
		e := new(core.RequestEvent)
		e.Response = w
		e.Request = req
		return e, nil
	})
	RegisterRoutes(r, nil, store, nil)
	mux, err := r.BuildMux()
	if err != nil {
		t.Fatalf("BuildMux: %v", err)
	}
	return mux
}

func hasSessionCookie(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			return true
		}
	}
	return false
}

func TestRegisterRoutes_MetricsDoesNotCreateSession(t *testing.T) {
	store := NewSessionStore()
	mux := newTestMux(t, store)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if store.Len() != 0 {
		t.Errorf("store has %d sessions after /metrics, want 0", store.Len())
	}
	if hasSessionCookie(rec) {
		t.Error("/metrics should not set a session cookie")
	}
}

func TestRegisterRoutes_WizardRoutesCreateSession(t *testing.T) {
	store := NewSessionStore()
	mux := newTestMux(t, store)

	form := url.Values{"lang": {"en"}}
	req := httptest.NewRequest(http.MethodPost, "/language", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if store.Len() != 1 {
		t.Errorf("store has %d sessions, want 1", store.Len())
	}
	if !hasSessionCookie(rec) {
		t.Error("wizard route should set the session cookie")
	}
}
