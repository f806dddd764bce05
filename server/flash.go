package server

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	log "github.com/sirupsen/logrus"
)

const flashSessionName = "app-session"

// newFlashStore builds the cookie store for post-redirect flash messages.
// The identity session never lives here; that is the sessions table. With
// no configured key a random one is generated, so flashes are lost across
// restarts but nothing breaks.
func newFlashStore(secretKey string) *sessions.CookieStore {
	key := []byte(secretKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// addFlash queues a one-shot message for the next rendered page.
func (s *Server) addFlash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := s.flash.Get(r, flashSessionName)
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		log.WithError(err).Warn("failed to save flash session")
	}
}

// popFlashes drains queued messages.
func (s *Server) popFlashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := s.flash.Get(r, flashSessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(r, w); err != nil {
			log.WithError(err).Warn("failed to save flash session")
		}
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
