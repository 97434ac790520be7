package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tasmeem/internal"
	"tasmeem/internal/auth"
	"tasmeem/internal/i18n"
	"tasmeem/pkg/types"
)

type LoginPageData struct {
	types.BasePageData
	Email string
}

func (s *Service) handleGetAdminLogin(w http.ResponseWriter, r *http.Request) {
	lang := s.languageFromContext(r.Context())

	data := &LoginPageData{
		BasePageData: types.BasePageData{Title: i18n.T(lang, "admin.panel")},
	}

	if err := s.renderTemplate(w, r, "page.admin.login", data); err != nil {
		s.logger.WithError(err).Error("failed to render admin login page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostAdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := s.languageFromContext(ctx)

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	session, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.WithError(err).Error("failed to sign in admin")
		}
		s.addFlash(w, r, types.FlashError, i18n.T(lang, "admin.loginFailed"))
		s.redirectToLogin(w, r)
		return
	}

	isAdmin, err := s.admins.IsAdmin(ctx, session.UserID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", session.UserID).Error("failed to check admin row")
		s.signOut(ctx, w, session.AccessToken)
		s.addFlash(w, r, types.FlashError, i18n.T(lang, "admin.loginFailed"))
		s.redirectToLogin(w, r)
		return
	}

	if !isAdmin {
		s.logger.WithField("user_id", session.UserID).Warn("non-admin sign in refused")
		s.signOut(ctx, w, session.AccessToken)
		s.addFlash(w, r, types.FlashError, i18n.T(lang, "admin.noAccess"))
		s.redirectToLogin(w, r)
		return
	}

	encryptedToken, err := s.cookie.Encode(internal.COOKIE_ACCESS_TOKEN_NAME, session.AccessToken)
	if err != nil {
		s.logger.WithError(err).Error("failed to encrypt access token")
		s.internalServerError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     internal.COOKIE_ACCESS_TOKEN_NAME,
		Value:    encryptedToken,
		HttpOnly: true,
		Secure:   s.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   session.ExpiresIn,
		Path:     "/",
	})

	s.addFlash(w, r, types.FlashSuccess, i18n.T(lang, "admin.loginOK"))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Service) handlePostAdminLogout(w http.ResponseWriter, r *http.Request) {
	if accessToken, ok := s.accessToken(r); ok {
		s.signOut(r.Context(), w, accessToken)
	} else {
		s.clearAccessTokenCookie(w)
	}

	s.redirectToLogin(w, r)
}

// accessToken decrypts the access token cookie.
func (s *Service) accessToken(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(internal.COOKIE_ACCESS_TOKEN_NAME)
	if err != nil {
		return "", false
	}

	var accessToken string
	if err := s.cookie.Decode(internal.COOKIE_ACCESS_TOKEN_NAME, cookie.Value, &accessToken); err != nil {
		s.logger.WithError(err).Warn("failed to decrypt access token")
		return "", false
	}

	return accessToken, accessToken != ""
}

// signOut ends the provider session and clears the cookie. A provider failure
// is logged; the cookie is cleared regardless.
func (s *Service) signOut(ctx context.Context, w http.ResponseWriter, accessToken string) {
	if err := s.auth.SignOut(ctx, accessToken); err != nil {
		s.logger.WithError(err).Warn("failed to sign out of auth provider")
	}
	s.clearAccessTokenCookie(w)
}

func (s *Service) clearAccessTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     internal.COOKIE_ACCESS_TOKEN_NAME,
		Value:    "",
		HttpOnly: true,
		Secure:   s.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}
