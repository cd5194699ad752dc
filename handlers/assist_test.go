package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"proposalgen/config"
	"proposalgen/services"
	"proposalgen/testhelpers"
)

// stubClient records the last request and answers with a fixed reply or error.
type stubClient struct {
	reply string
	err   error
	got   services.CompletionRequest
	calls int
}

func (c *stubClient) Complete(_ context.Context, req services.CompletionRequest) (string, error) {
	c.calls++
	c.got = req
	return c.reply, c.err
}

func stubFactory(c *stubClient) (ClientFactory, *string) {
	var usedKey string
	return func(apiKey string) (services.CompletionClient, error) {
		usedKey = apiKey
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}
		return c, nil
	}, &usedKey
}

func apiSession(t *testing.T, store *SessionStore) *Session {
	t.Helper()
	d := testhelpers.SampleProposal()
	d.Assist = services.AssistSettings{Mode: services.AssistModeAPI, APIKey: "sk-test"}
	return newTestSession(t, store, d)
}

func TestHandleAssistSettings(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()
	s := newTestSession(t, store, testhelpers.SampleProposal())

	form := url.Values{"skill": {"marketing"}, "mode": {"api"}, "api_key": {"  sk-new  "}}
	req := formRequest(http.MethodPost, "/assist/settings", s, form)
	rec := httptest.NewRecorder()
	if err := HandleAssistSettings(store)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	d := s.Snapshot()
	if d.Assist.Mode != services.AssistModeAPI || d.Assist.APIKey != "sk-new" {
		t.Errorf("assist settings = %+v", d.Assist)
	}
	if s.conversation.Skill != services.SkillMarketing {
		t.Errorf("skill = %q, want marketing", s.conversation.Skill)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `hx-post="/assist/send"`, `type="password"`)
}

func TestHandleAssistSettings_KeepsKeyWhenBlank(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()
	s := apiSession(t, store)

	form := url.Values{"skill": {"proposal"}, "mode": {"api"}, "api_key": {""}}
	req := formRequest(http.MethodPost, "/assist/settings", s, form)
	rec := httptest.NewRecorder()
	if err := HandleAssistSettings(store)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := s.Snapshot().Assist.APIKey; got != "sk-test" {
		t.Errorf("API key = %q, want it unchanged", got)
	}
}

func TestHandleAssistSettings_UnknownSkill(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()
	s := newTestSession(t, store, testhelpers.SampleProposal())

	req := formRequest(http.MethodPost, "/assist/settings", s, url.Values{"skill": {"poet"}})
	rec := httptest.NewRecorder()
	if err := HandleAssistSettings(store)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if s.conversation.Skill != services.SkillScientific {
		t.Errorf("skill changed to %q", s.conversation.Skill)
	}
}

func TestHandleAssistSend_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()
	s := apiSession(t, store)
	client := &stubClient{reply: "Polymer <b>context</b> paragraph"}
	factory, usedKey := stubFactory(client)

	req := formRequest(http.MethodPost, "/assist/send", s, url.Values{"message": {"Write the context"}})
	rec := httptest.NewRecorder()
	if err := HandleAssistSend(store, factory)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if *usedKey != "sk-test" {
		t.Errorf("factory got key %q", *usedKey)
	}
	if client.calls != 1 {
		t.Fatalf("expected one call, got %d", client.calls)
	}
	last := client.got.Messages[len(client.got.Messages)-1]
	if last.Role != services.RoleUser || last.Content != "Write the context" {
		t.Errorf("last request message = %+v", last)
	}
	if client.got.System == "" {
		t.Error("expected a system prompt")
	}

	if len(s.conversation.Messages) != 2 || s.lastFailed {
		t.Errorf("conversation = %+v, lastFailed = %t", s.conversation.Messages, s.lastFailed)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Polymer &lt;b&gt;context&lt;/b&gt; paragraph", `hx-post="/assist/apply"`)
	testhelpers.AssertHTMLNotContains(t, body, "<b>context</b>")
}

func TestHandleAssistSend_FailureIsRecorded(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()
	s := apiSession(t, store)
	client := &stubClient{err: &services.CompletionError{Status: 401, Message: "invalid x-api-key"}}
	factory, _ := stubFactory(client)

	req := formRequest(http.MethodPost, "/assist/send", s, url.Values{"message": {"Hello"}})
	rec := httptest.NewRecorder()
	if err := HandleAssistSend(store, factory)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected the panel to render, got %d", rec.Code)
	}
	if client.calls != 1 {
		t.Errorf("expected exactly one attempt, got %d", client.calls)
	}
	if !s.lastFailed {
		t.Error("lastFailed should be set")
	}
	reply, _ := s.conversation.LastReply()
	if reply != "Error: invalid x-api-key" {
		t.Errorf("recorded reply = %q", reply)
	}
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "invalid x-api-key") {
		t.Errorf("expected an error toast, got %q", rec.Header().Get("HX-Trigger"))
	}
	testhelpers.AssertHTMLNotContains(t, rec.Body.String(), `hx-post="/assist/apply"`)
}

func TestHandleAssistSend_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		message string
	}{
		{"blank message", "sk-test", "   "},
		{"missing key", "", "Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			store := NewSessionStore()
			d := testhelpers.SampleProposal()
			d.Assist = services.AssistSettings{Mode: services.AssistModeAPI, APIKey: tt.apiKey}
			s := newTestSession(t, store, d)
			client := &stubClient{reply: "unused"}
			factory, _ := stubFactory(client)

			req := formRequest(http.MethodPost, "/assist/send", s, url.Values{"message": {tt.message}})
			rec := httptest.NewRecorder()
			if err := HandleAssistSend(store, factory)(newTestRequestEvent(app, req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if client.calls != 0 {
				t.Errorf("client should not be called, got %d calls", client.calls)
			}
			if len(s.conversation.Messages) != 0 {
				t.Errorf("nothing should be recorded, got %+v", s.conversation.Messages)
			}
		})
	}
}

func TestManualPromptAndPaste(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()
	s := newTestSession(t, store, testhelpers.SampleProposal())

	req := formRequest(http.MethodPost, "/assist/prompt", s, url.Values{"message": {"Draft the need"}})
	rec := httptest.NewRecorder()
	if err := HandleAssistPrompt(store)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("prompt handler error: %v", err)
	}
	if !strings.Contains(s.pendingPrompt, "Draft the need") {
		t.Errorf("pending prompt does not contain the request: %q", s.pendingPrompt)
	}
	if len(s.conversation.Messages) != 0 {
		t.Error("manual prompt must not record anything")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `hx-post="/assist/paste"`, "Prompt ready to copy")

	// Blank paste is refused and keeps the pending prompt.
	req = formRequest(http.MethodPost, "/assist/paste", s, url.Values{"response": {"  "}})
	rec = httptest.NewRecorder()
	if err := HandleAssistPaste(store)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("paste handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest || s.pendingPrompt == "" {
		t.Errorf("blank paste: code %d, pending %q", rec.Code, s.pendingPrompt)
	}

	req = formRequest(http.MethodPost, "/assist/paste", s, url.Values{"response": {"The client needs X."}})
	rec = httptest.NewRecorder()
	if err := HandleAssistPaste(store)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("paste handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	msgs := s.conversation.Messages
	if len(msgs) != 2 || msgs[0].Content != "Draft the need" || msgs[1].Content != "The client needs X." {
		t.Errorf("conversation = %+v", msgs)
	}
	if s.pendingPrompt != "" || s.pendingInput != "" {
		t.Error("pending prompt should be cleared")
	}
}

func TestHandleAssistApply(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()
	s := newTestSession(t, store, testhelpers.SampleProposal())
	s.conversation.PasteResponse("write", "New generation text")

	req := formRequest(http.MethodPost, "/assist/apply", s, url.Values{"target": {"generation"}})
	rec := httptest.NewRecorder()
	if err := HandleAssistApply(store)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := s.Snapshot().Methodology.Generation; got != "New generation text" {
		t.Errorf("generation = %q", got)
	}
	if rec.Header().Get("HX-Refresh") != "true" {
		t.Error("expected HX-Refresh")
	}
}

func TestHandleAssistApply_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *Session)
		target string
		code   int
	}{
		{"no reply", func(s *Session) {}, "context", http.StatusBadRequest},
		{"failed call", func(s *Session) {
			s.conversation.Record("hi", "", errors.New("timeout"))
			s.lastFailed = true
		}, "context", http.StatusBadRequest},
		{"unknown target", func(s *Session) {
			s.conversation.PasteResponse("hi", "text")
		}, "budget", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			store := NewSessionStore()
			s := newTestSession(t, store, testhelpers.SampleProposal())
			before := s.Snapshot().Context
			tt.setup(s)

			req := formRequest(http.MethodPost, "/assist/apply", s, url.Values{"target": {tt.target}})
			rec := httptest.NewRecorder()
			if err := HandleAssistApply(store)(newTestRequestEvent(app, req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.code {
				t.Errorf("expected %d, got %d", tt.code, rec.Code)
			}
			if got := s.Snapshot().Context; got != before {
				t.Errorf("context changed to %q", got)
			}
		})
	}
}

func TestHandleAssistClear(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()
	s := newTestSession(t, store, testhelpers.SampleProposal())
	s.conversation.Skill = services.SkillProposal
	s.conversation.PasteResponse("a", "b")
	s.pendingPrompt = "prompt"

	req := formRequest(http.MethodPost, "/assist/clear", s, nil)
	rec := httptest.NewRecorder()
	if err := HandleAssistClear(store)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(s.conversation.Messages) != 0 || s.pendingPrompt != "" {
		t.Error("conversation should be empty")
	}
	if s.conversation.Skill != services.SkillProposal {
		t.Error("skill should survive a clear")
	}
}

func TestNewClientFactory(t *testing.T) {
	cfg := config.AssistConfig{
		BaseURL:   "http://localhost:9999",
		APIKey:    "sk-config",
		Model:     "test-model",
		MaxTokens: 512,
		Timeout:   5 * time.Second,
	}
	c, err := NewClientFactory(cfg)("")
	if err != nil {
		t.Fatalf("factory error: %v", err)
	}
	ac, ok := c.(*services.AnthropicClient)
	if !ok {
		t.Fatalf("expected *services.AnthropicClient, got %T", c)
	}
	if ac.APIKey != "sk-config" || ac.BaseURL != cfg.BaseURL || ac.Model != "test-model" ||
		ac.MaxTokens != 512 || ac.HTTP.Timeout != 5*time.Second {
		t.Errorf("client = %+v", ac)
	}

	c, err = NewClientFactory(cfg)("sk-session")
	if err != nil {
		t.Fatalf("factory error: %v", err)
	}
	if c.(*services.AnthropicClient).APIKey != "sk-session" {
		t.Error("session key should win over the configured one")
	}

	if _, err := NewClientFactory(config.AssistConfig{})(""); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestHandleAssistSend_RefusedInManualMode(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()
	d := testhelpers.SampleProposal()
	d.Assist = services.AssistSettings{Mode: services.AssistModeManual, APIKey: "sk-test"}
	s := newTestSession(t, store, d)
	client := &stubClient{reply: "unused"}
	factory, _ := stubFactory(client)

	req := formRequest(http.MethodPost, "/assist/send", s, url.Values{"message": {"Hello"}})
	rec := httptest.NewRecorder()
	if err := HandleAssistSend(store, factory)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if client.calls != 0 {
		t.Errorf("manual mode must not reach the client, got %d calls", client.calls)
	}
	if len(s.conversation.Messages) != 0 {
		t.Errorf("nothing should be recorded, got %+v", s.conversation.Messages)
	}
	if got := decodeToast(t, rec)["message"]; got != "Direct sending is disabled in manual mode" {
		t.Errorf("toast = %q", got)
	}
}

func TestHandleAssistApply_ToastInProposalLanguage(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()
	d := testhelpers.SampleProposal()
	d.Language = services.LangFR
	s := newTestSession(t, store, d)
	s.conversation.PasteResponse("write", "Nouveau contexte")

	req := formRequest(http.MethodPost, "/assist/apply", s, url.Values{"target": {"context"}})
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	if err := HandleAssistApply(store)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	toast := flashToast(t, rec)
	if toast["message"] != "Inséré dans Contexte" || toast["type"] != "success" {
		t.Errorf("flash toast = %v", toast)
	}
}
