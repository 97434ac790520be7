package server

import (
	"bytes"
	"html/template"
	"net/http"

	"tasmeem/internal/intake"
	"tasmeem/pkg/types"

	"github.com/gorilla/csrf"
)

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	return s.renderTemplateStatus(w, r, http.StatusOK, templateName, data)
}

func (s *Service) renderTemplateStatus(w http.ResponseWriter, r *http.Request, status int, templateName string, data any) error {
	ctx := r.Context()
	lang := s.languageFromContext(ctx)

	userID, _ := ctx.Value(contextKeyUserID).(string)
	userEmail, _ := ctx.Value(contextKeyEmail).(string)

	if setter, ok := data.(types.NavbarDataSetter); ok {
		setter.SetNavbarData(types.NavbarData{
			Lang:        lang.String(),
			Dir:         lang.Dir(),
			OtherLang:   lang.Other().String(),
			CurrentPath: r.URL.RequestURI(),
			CSRFField:   csrf.TemplateField(r),
			Flashes:     s.takeFlashes(w, r),
			IsAdmin:     userID != "",
			AdminEmail:  userEmail,
		})
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

type fieldView struct {
	Name        string
	Type        string
	Label       string
	Placeholder string
	Value       string
	Errors      map[string]string
	Lang        string
}

func fieldArgs(name, inputType, label, placeholder, value string, errs map[string]string, lang string) fieldView {
	return fieldView{Name: name, Type: inputType, Label: label, Placeholder: placeholder, Value: value, Errors: errs, Lang: lang}
}

type selectView struct {
	Name    string
	Label   string
	Options []intake.Option
	Value   string
	Errors  map[string]string
	Lang    string
}

func selectArgs(name, label string, options []intake.Option, value string, errs map[string]string, lang string) selectView {
	return selectView{Name: name, Label: label, Options: options, Value: value, Errors: errs, Lang: lang}
}

type uploadView struct {
	Category  string
	Label     string
	Subtitle  string
	Files     []intake.StagedFile
	MaxFiles  int
	CSRFField template.HTML
	Lang      string
}

func uploadArgs(category, label, subtitle string, files []intake.StagedFile, maxFiles int, csrfField template.HTML, lang string) uploadView {
	return uploadView{Category: category, Label: label, Subtitle: subtitle, Files: files, MaxFiles: maxFiles, CSRFField: csrfField, Lang: lang}
}
