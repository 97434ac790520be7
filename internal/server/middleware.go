package server

import (
	"context"
	"mime"
	"net/http"
	"strings"
	"time"

	"tasmeem/internal"
	"tasmeem/internal/i18n"
	"tasmeem/pkg/types"

	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const (
	contextKeyLanguage    contextKey = "language"
	contextKeyUserID      contextKey = "user_id"
	contextKeyEmail       contextKey = "email"
	contextKeyAccessToken contextKey = "access_token"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// LanguageMiddleware resolves the visitor's language from the session, falling
// back to the configured default.
func (s *Service) LanguageMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := s.language

		session, err := s.sessions.Get(r, s.config.CookieName)
		if err != nil {
			s.logger.WithError(err).Debug("discarding unreadable session")
		}
		if stored, ok := session.Values[internal.SESSION_KEY_LANGUAGE].(string); ok {
			lang = i18n.ParseOr(stored, lang)
		}

		ctx := context.WithValue(r.Context(), contextKeyLanguage, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) languageFromContext(ctx context.Context) i18n.Language {
	if lang, ok := ctx.Value(contextKeyLanguage).(i18n.Language); ok {
		return lang
	}
	return s.language
}

// RequireAdmin lets a request through only with a verified access token whose
// user has an admin row. A signed-in user without one is signed out.
func (s *Service) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accessToken, ok := s.accessToken(r)
		if !ok {
			s.redirectToLogin(w, r)
			return
		}

		identity, err := s.auth.Verify(ctx, accessToken)
		if err != nil {
			s.logger.WithError(err).Info("admin session rejected")
			s.clearAccessTokenCookie(w)
			s.redirectToLogin(w, r)
			return
		}

		isAdmin, err := s.admins.IsAdmin(ctx, identity.UserID)
		if err != nil {
			s.logger.WithError(err).WithField("user_id", identity.UserID).Error("failed to check admin row")
			s.signOut(ctx, w, accessToken)
			s.addFlash(w, r, types.FlashError, i18n.T(s.languageFromContext(ctx), "admin.loginFailed"))
			s.redirectToLogin(w, r)
			return
		}

		if !isAdmin {
			s.logger.WithField("user_id", identity.UserID).Warn("non-admin user reached admin area")
			s.signOut(ctx, w, accessToken)
			s.addFlash(w, r, types.FlashError, i18n.T(s.languageFromContext(ctx), "admin.noAccess"))
			s.redirectToLogin(w, r)
			return
		}

		ctx = context.WithValue(ctx, contextKeyUserID, identity.UserID)
		ctx = context.WithValue(ctx, contextKeyEmail, identity.Email)
		ctx = context.WithValue(ctx, contextKeyAccessToken, accessToken)

		s.logger.WithFields(logrus.Fields{
			"user_id": identity.UserID,
			"email":   identity.Email,
		}).Debug("authenticated admin")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LimitUploads caps multipart bodies at MaxUploadMB and parses them before
// any later middleware reads a form value.
func (s *Service) LimitUploads(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if r.Method != http.MethodPost || mediaType != "multipart/form-data" {
			next.ServeHTTP(w, r)
			return
		}

		maxBytes := s.config.MaxUploadMB << 20
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			s.logger.WithError(err).WithField("path", r.URL.Path).Warn("rejected multipart body")
			http.Error(w, "upload too large or malformed", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if path != "/" && strings.HasSuffix(path, "/") {
			newURL := *r.URL
			newURL.Path = strings.TrimSuffix(path, "/")

			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}
