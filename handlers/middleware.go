package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/text/language"

	"proposalgen/services"
)

type contextKey string

const SessionKey contextKey = "session"

// GetSession extracts the wizard session stored by SessionMiddleware.
func GetSession(r *http.Request) *Session {
	if val, ok := r.Context().Value(SessionKey).(*Session); ok {
		return val
	}
	return nil
}

// SessionMiddleware resolves the proposal_session cookie into a Session and
// stores it in the request context for handlers and templates.
func SessionMiddleware(store *SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := store.Resolve(e)
		ctx := context.WithValue(e.Request.Context(), SessionKey, s)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}

// sessionFor prefers the session placed by the middleware and falls back to
// resolving the cookie directly.
func sessionFor(e *core.RequestEvent, store *SessionStore) *Session {
	if s := GetSession(e.Request); s != nil {
		return s
	}
	return store.Resolve(e)
}

var supportedLanguages = language.NewMatcher([]language.Tag{
	language.French,
	language.English,
})

// detectLanguage picks the wizard locale from an Accept-Language header.
// French is the default when nothing matches.
func detectLanguage(header string) services.Language {
	if header == "" {
		return services.LangFR
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return services.LangFR
	}
	_, idx, conf := supportedLanguages.Match(tags...)
	if conf == language.No {
		return services.LangFR
	}
	if idx == 1 {
		return services.LangEN
	}
	return services.LangFR
}
