package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"proposalgen/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newTestSession registers a session holding d.
func newTestSession(t *testing.T, store *SessionStore, d services.ProposalData) *Session {
	t.Helper()
	s := store.Create(d.Language)
	p, err := services.NewProposalFromData(d)
	if err != nil {
		t.Fatalf("NewProposalFromData: %v", err)
	}
	s.proposal = p
	return s
}

// formRequest builds a form POST carrying the session cookie.
func formRequest(method, target string, s *Session, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if s != nil {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: s.ID})
	}
	return req
}
