package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"

	"proposalgen/i18n"
	"proposalgen/services"
)

const sessionCookie = "proposal_session"

// Session is one browser's wizard: its proposal and assistant transcript.
// Every access goes through mu so the proposal keeps a single writer.
type Session struct {
	ID string

	mu            sync.Mutex
	proposal      *services.Proposal
	conversation  *services.Conversation
	pendingInput  string
	pendingPrompt string
	lastFailed    bool
	lastSeen      time.Time
}

// With runs fn while holding the session lock.
func (s *Session) With(fn func(p *services.Proposal, c *services.Conversation)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.proposal, s.conversation)
}

// Snapshot returns an immutable copy of the proposal for rendering.
func (s *Session) Snapshot() services.ProposalData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.proposal.Snapshot()
}

// T resolves a UI string in the proposal language, substituting {name}
// placeholders from pairs. It takes the session lock.
func (s *Session) T(key string, pairs ...string) string {
	return i18n.Tf(string(s.Snapshot().Language), key, pairs...)
}

// SessionStore keeps the in-memory sessions. Nothing survives a restart.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Get returns the session with id, if any.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if ok {
		s.lastSeen = st.now()
	}
	return s, ok
}

// Create registers a fresh session whose proposal starts in lang.
func (st *SessionStore) Create(lang services.Language) *Session {
	p := services.NewProposal()
	p.SetLanguage(lang)
	s := &Session{
		ID:           uuid.NewString(),
		proposal:     p,
		conversation: services.NewConversation(),
		lastSeen:     st.now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	sessionsActive.Set(float64(len(st.sessions)))
	st.mu.Unlock()
	return s
}

// Len reports the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many went.
func (st *SessionStore) Sweep(maxIdle time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	cutoff := st.now().Add(-maxIdle)
	n := 0
	for id, s := range st.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			n++
		}
	}
	sessionsActive.Set(float64(len(st.sessions)))
	if n > 0 {
		log.Printf("session: swept %d idle sessions, %d left", n, len(st.sessions))
	}
	return n
}

// Resolve returns the caller's session, creating one and setting the cookie
// when the request carries no known session id.
func (st *SessionStore) Resolve(e *core.RequestEvent) *Session {
	if c, err := e.Request.Cookie(sessionCookie); err == nil && c.Value != "" {
		if s, ok := st.Get(c.Value); ok {
			return s
		}
		log.Printf("session: unknown session %s, starting a new one", c.Value)
	}
	s := st.Create(detectLanguage(e.Request.Header.Get("Accept-Language")))
	http.SetCookie(e.Response, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// Later reads in the same request see the new session.
	e.Request.AddCookie(&http.Cookie{Name: sessionCookie, Value: s.ID})
	return s
}
