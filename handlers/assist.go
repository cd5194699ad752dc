package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"proposalgen/config"
	"proposalgen/i18n"
	"proposalgen/services"
	"proposalgen/templates"
)

// ErrMissingAPIKey is returned when direct mode has no key from the session
// settings or the configuration.
var ErrMissingAPIKey = errors.New("an API key is required for direct mode")

// ClientFactory builds the completion client used for one direct-mode call.
type ClientFactory func(apiKey string) (services.CompletionClient, error)

// NewClientFactory returns a factory using cfg for the endpoint, model and
// limits. The session key wins over the configured one.
func NewClientFactory(cfg config.AssistConfig) ClientFactory {
	return func(apiKey string) (services.CompletionClient, error) {
		if apiKey == "" {
			apiKey = cfg.APIKey
		}
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}
		c := services.NewAnthropicClient(apiKey)
		if cfg.BaseURL != "" {
			c.BaseURL = cfg.BaseURL
		}
		if cfg.Model != "" {
			c.Model = cfg.Model
		}
		if cfg.MaxTokens > 0 {
			c.MaxTokens = cfg.MaxTokens
		}
		if cfg.Timeout > 0 {
			c.HTTP.Timeout = cfg.Timeout
		}
		return c, nil
	}
}

func assistView(s *Session) templates.AssistView {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.proposal.Snapshot()
	_, hasReply := s.conversation.LastReply()
	return templates.AssistView{
		Lang:          d.Language,
		Mode:          d.Assist.Mode,
		HasKey:        d.Assist.APIKey != "",
		Skill:         s.conversation.Skill,
		Messages:      append([]services.Message(nil), s.conversation.Messages...),
		Prompt:        s.pendingPrompt,
		PendingInput:  s.pendingInput,
		CanApply:      hasReply && !s.lastFailed,
		DefaultTarget: services.TargetContext,
	}
}

func renderAssist(e *core.RequestEvent, s *Session) error {
	return templates.AssistPanel(assistView(s)).Render(e.Request.Context(), e.Response)
}

// HandleAssistSettings stores the persona, the mode and optionally a new API key.
func HandleAssistSettings(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.invalidForm"))
		}
		skill, err := services.ParseSkill(e.Request.FormValue("skill"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.unknownSkill"))
		}
		patch := services.AssistPatch{}
		if m := services.AssistMode(e.Request.FormValue("mode")); m != "" {
			patch.Mode = &m
		}
		if key := strings.TrimSpace(e.Request.FormValue("api_key")); key != "" {
			patch.APIKey = &key
		}

		s.mu.Lock()
		s.proposal.SetAssistSettings(patch)
		s.conversation.Skill = skill
		s.mu.Unlock()
		return renderAssist(e, s)
	}
}

// HandleAssistSend performs one direct-mode exchange. The session lock is
// released during the network call; a failure is recorded in the transcript
// and never retried. Sessions in manual mode are refused.
func HandleAssistSend(store *SessionStore, newClient ClientFactory) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.invalidForm"))
		}
		message := e.Request.FormValue("message")

		s.mu.Lock()
		d := s.proposal.Snapshot()
		req, err := s.conversation.Request(message, d.Language)
		s.mu.Unlock()
		lang := string(d.Language)

		if d.Assist.Mode != services.AssistModeAPI {
			assistRequests.WithLabelValues("api", "rejected").Inc()
			return ErrorToast(e, http.StatusBadRequest, i18n.T(lang, "errors.manualMode"))
		}
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, i18n.T(lang, "errors.emptyMessage"))
		}

		client, err := newClient(d.Assist.APIKey)
		if err != nil {
			assistRequests.WithLabelValues("api", "rejected").Inc()
			if errors.Is(err, ErrMissingAPIKey) {
				return ErrorToast(e, http.StatusBadRequest, i18n.T(lang, "errors.missingApiKey"))
			}
			log.Printf("assist: client setup failed for session %s: %v", s.ID, err)
			return ErrorToast(e, http.StatusInternalServerError, i18n.T(lang, "errors.internal"))
		}

		start := time.Now()
		reply, err := client.Complete(e.Request.Context(), req)
		assistDuration.Observe(time.Since(start).Seconds())

		s.mu.Lock()
		s.conversation.Record(message, reply, err)
		s.lastFailed = err != nil
		s.mu.Unlock()

		if err != nil {
			log.Printf("assist: completion failed for session %s: %v", s.ID, err)
			assistRequests.WithLabelValues("api", "error").Inc()
			SetToast(e, "error", err.Error())
		} else {
			assistRequests.WithLabelValues("api", "ok").Inc()
		}
		return renderAssist(e, s)
	}
}

// HandleAssistPrompt builds the manual-mode prompt to copy into an external
// assistant. Nothing is sent anywhere.
func HandleAssistPrompt(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.invalidForm"))
		}
		message := e.Request.FormValue("message")
		if strings.TrimSpace(message) == "" {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.emptyMessage"))
		}

		s.mu.Lock()
		lang := s.proposal.Snapshot().Language
		s.pendingPrompt = s.conversation.ManualPrompt(message, lang)
		s.pendingInput = message
		s.mu.Unlock()

		assistRequests.WithLabelValues("manual", "prompt").Inc()
		return renderAssist(e, s)
	}
}

// HandleAssistPaste records the answer pasted back from the external assistant.
func HandleAssistPaste(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.invalidForm"))
		}
		s.mu.Lock()
		message := e.Request.FormValue("message")
		if message == "" {
			message = s.pendingInput
		}
		ok := s.conversation.PasteResponse(message, e.Request.FormValue("response"))
		if ok {
			s.pendingPrompt, s.pendingInput, s.lastFailed = "", "", false
		}
		s.mu.Unlock()

		if !ok {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.emptyResponse"))
		}
		assistRequests.WithLabelValues("manual", "ok").Inc()
		return renderAssist(e, s)
	}
}

// HandleAssistApply writes the last assistant reply into the chosen field and
// asks the page to reload so the step form shows it.
func HandleAssistApply(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.invalidForm"))
		}
		target, err := services.ParseAssistTarget(e.Request.FormValue("target"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.unknownTarget"))
		}

		s.mu.Lock()
		reply, ok := s.conversation.LastReply()
		if ok && !s.lastFailed {
			err = services.ApplyAssistText(s.proposal, target, reply)
		}
		failed := s.lastFailed
		s.mu.Unlock()

		switch {
		case !ok || failed:
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.noReply"))
		case err != nil:
			log.Printf("assist: apply to %s failed: %v", target, err)
			return ErrorToast(e, http.StatusInternalServerError, s.T("errors.internal"))
		}

		lang := s.Snapshot().Language
		SetToast(e, "success", i18n.Tf(string(lang), "toast.inserted", "field", templates.AssistTargetLabel(lang, target)))
		hxNavigate(e, "HX-Refresh", "true")
		return renderAssist(e, s)
	}
}

func HandleAssistClear(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		s.mu.Lock()
		s.conversation.Clear()
		s.pendingPrompt, s.pendingInput, s.lastFailed = "", "", false
		s.mu.Unlock()
		return renderAssist(e, s)
	}
}
