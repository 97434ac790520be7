package server

import (
	"context"
	"embed"
	"encoding/base64"
	"encoding/gob"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"tasmeem/internal/admin"
	"tasmeem/internal/auth"
	"tasmeem/internal/bootstrap"
	"tasmeem/internal/i18n"
	"tasmeem/internal/intake"
	"tasmeem/internal/utils"
	"tasmeem/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

func init() {
	gob.Register(types.Flash{})
}

// Authenticator is the remote auth provider.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*auth.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	Verify(ctx context.Context, accessToken string) (*auth.Identity, error)
}

type AdminDirectory interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

type AdminCreator interface {
	CreateAdmin(ctx context.Context, bearer string, credentials func() (bootstrap.Credentials, error)) (*types.AdminUser, error)
}

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	templates *template.Template

	drafts      *intake.Drafts
	submissions admin.SubmissionSource
	admins      AdminDirectory
	auth        Authenticator
	setup       AdminCreator

	cookie   *securecookie.SecureCookie
	sessions *sessions.CookieStore
	language i18n.Language

	handler http.Handler
	server  *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	drafts *intake.Drafts,
	submissions admin.SubmissionSource,
	admins AdminDirectory,
	authenticator Authenticator,
	setup AdminCreator,
) (*Service, error) {
	mux := flow.New()

	hashKey, err := base64.StdEncoding.DecodeString(config.CookieHashKey)
	if err != nil {
		return nil, fmt.Errorf("decode cookie hash key: %w", err)
	}
	blockKey, err := base64.StdEncoding.DecodeString(config.CookieBlockKey)
	if err != nil {
		return nil, fmt.Errorf("decode cookie block key: %w", err)
	}
	csrfKey, err := base64.StdEncoding.DecodeString(config.CSRFKey)
	if err != nil {
		return nil, fmt.Errorf("decode csrf key: %w", err)
	}

	sessionStore := sessions.NewCookieStore(hashKey, blockKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = config.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	sessionStore.Options.MaxAge = config.SessionMaxAgeSec

	s := &Service{
		logger:      logger,
		config:      config,
		drafts:      drafts,
		submissions: submissions,
		admins:      admins,
		auth:        authenticator,
		setup:       setup,
		cookie:      securecookie.New(hashKey, blockKey),
		sessions:    sessionStore,
		language:    i18n.ParseOr(config.DefaultLanguage, i18n.Default),
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux, csrfKey)
	s.handler = mux

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.ServerPort),
		Handler:           mux,
		ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed handler for in-process use.
func (s *Service) Handler() http.Handler {
	return s.handler
}

func (s *Service) buildRouter(r *flow.Mux, csrfKey []byte) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)
	r.HandleFunc("/setup-admin", s.handleSetupAdmin, http.MethodPost, http.MethodOptions)

	r.Group(func(r *flow.Mux) {
		r.Use(s.LimitUploads)
		if len(csrfKey) > 0 {
			r.Use(csrf.Protect(
				csrfKey,
				csrf.Secure(s.config.CookieSecure),
				csrf.Path("/"),
				csrf.ErrorHandler(http.HandlerFunc(s.handleCSRFFailure)),
			))
		}
		r.Use(s.LanguageMiddleware)

		r.HandleFunc("/", s.handleHome, http.MethodGet)
		r.HandleFunc("/language", s.handlePostLanguage, http.MethodPost)

		r.HandleFunc("/register", s.handleGetRegister, http.MethodGet)
		r.HandleFunc("/register", s.handlePostRegister, http.MethodPost)
		r.HandleFunc("/register/files", s.handlePostRegisterFiles, http.MethodPost)
		r.HandleFunc("/register/files/remove", s.handlePostRegisterFilesRemove, http.MethodPost)
		r.HandleFunc("/register/files/:category/:index", s.handleGetRegisterFile, http.MethodGet)

		r.HandleFunc("/admin/login", s.handleGetAdminLogin, http.MethodGet)
		r.HandleFunc("/admin/login", s.handlePostAdminLogin, http.MethodPost)
		r.HandleFunc("/admin/logout", s.handlePostAdminLogout, http.MethodPost)

		r.Group(func(r *flow.Mux) {
			r.Use(s.RequireAdmin)

			r.HandleFunc("/admin", s.handleGetAdmin, http.MethodGet)
			r.HandleFunc("/admin/submissions/:id", s.handleGetAdminSubmission, http.MethodGet)
			r.HandleFunc("/admin/submissions/:id/status", s.handlePostAdminSubmissionStatus, http.MethodPost)
		})
	})

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"t": func(lang, key string) string {
			return i18n.T(i18n.ParseOr(lang, i18n.Default), key)
		},
		"tx": func(text i18n.Text, lang string) string {
			return text.In(i18n.ParseOr(lang, i18n.Default))
		},
		"add": func(a, b int) int {
			return a + b
		},
		"deref": utils.PtrString,
		"derefOr": func(s *string, defaultVal string) string {
			if s == nil || *s == "" {
				return defaultVal
			}
			return *s
		},
		"date": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
		"datetime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
		"projectLabel": func(p types.ProjectType, lang string) string {
			return intake.ProjectTypeLabel(p).In(i18n.ParseOr(lang, i18n.Default))
		},
		"statusLabel": func(st types.SubmissionStatus, lang string) string {
			return intake.StatusLabels[st].In(i18n.ParseOr(lang, i18n.Default))
		},
		"optionLabel": func(options []intake.Option, value *string, lang string) string {
			if value == nil || *value == "" {
				return "-"
			}
			return intake.OptionLabel(options, *value).In(i18n.ParseOr(lang, i18n.Default))
		},
		"kb": func(size int64) int64 {
			return size / 1024
		},
		"fieldArgs":  fieldArgs,
		"selectArgs": selectArgs,
		"uploadArgs": uploadArgs,
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
