package server

import (
	"net/http"

	"tasmeem/internal"
	"tasmeem/pkg/types"

	"github.com/gorilla/sessions"
)

func (s *Service) session(r *http.Request) *sessions.Session {
	session, err := s.sessions.Get(r, s.config.CookieName)
	if err != nil {
		s.logger.WithError(err).Debug("starting a fresh session")
	}
	return session
}

func (s *Service) saveSession(w http.ResponseWriter, r *http.Request, session *sessions.Session) {
	if err := session.Save(r, w); err != nil {
		s.logger.WithError(err).Error("failed to save session")
	}
}

func (s *Service) addFlash(w http.ResponseWriter, r *http.Request, kind, message string) {
	session := s.session(r)
	session.AddFlash(types.Flash{Type: kind, Message: message})
	s.saveSession(w, r, session)
}

func (s *Service) takeFlashes(w http.ResponseWriter, r *http.Request) []types.Flash {
	session := s.session(r)

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}

	flashes := make([]types.Flash, 0, len(raw))
	for _, f := range raw {
		if fm, ok := f.(types.Flash); ok {
			flashes = append(flashes, fm)
		}
	}

	s.saveSession(w, r, session)
	return flashes
}

// wizardID is the id of the visitor's intake draft, empty when none was started.
func (s *Service) wizardID(r *http.Request) string {
	id, _ := s.session(r).Values[internal.SESSION_KEY_WIZARD_ID].(string)
	return id
}

func (s *Service) setWizardID(w http.ResponseWriter, r *http.Request, id string) {
	session := s.session(r)
	if current, _ := session.Values[internal.SESSION_KEY_WIZARD_ID].(string); current == id {
		return
	}

	if id == "" {
		delete(session.Values, internal.SESSION_KEY_WIZARD_ID)
	} else {
		session.Values[internal.SESSION_KEY_WIZARD_ID] = id
	}
	s.saveSession(w, r, session)
}
