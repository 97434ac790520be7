package server

import (
	"errors"
	"net/http"

	"tasmeem/internal/admin"
	"tasmeem/internal/i18n"
	"tasmeem/internal/intake"
	"tasmeem/pkg/types"
)

type AdminPageData struct {
	types.BasePageData
	Submissions []*types.Submission
	Stats       admin.Stats
	Statuses    []types.SubmissionStatus
	Detail      *admin.Detail
	AreaSizes   []intake.Option
	Budgets     []intake.Option
	Timelines   []intake.Option
	Loaded      bool
	Error       string
}

func (s *Service) adminPageData(console *admin.Console, lang i18n.Language) *AdminPageData {
	return &AdminPageData{
		BasePageData: types.BasePageData{Title: i18n.T(lang, "admin.dashboard")},
		Submissions:  console.Submissions(),
		Stats:        console.Stats(),
		Statuses:     types.SubmissionStatuses,
		AreaSizes:    intake.AreaSizeOptions,
		Budgets:      intake.BudgetOptions,
		Timelines:    intake.TimelineOptions,
	}
}

func (s *Service) renderAdmin(w http.ResponseWriter, r *http.Request, data *AdminPageData) {
	if err := s.renderTemplate(w, r, "page.admin", data); err != nil {
		s.logger.WithError(err).Error("failed to render admin page")
		s.internalServerError(w)
	}
}

func (s *Service) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := s.languageFromContext(ctx)

	console := admin.NewConsole(s.submissions)
	err := console.Refresh(ctx)

	data := s.adminPageData(console, lang)
	data.Loaded = err == nil
	if err != nil {
		s.logger.WithError(err).Error("failed to load submissions")
		data.Error = i18n.T(lang, "admin.loadFailed")
	}

	s.renderAdmin(w, r, data)
}

func (s *Service) handleGetAdminSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := s.languageFromContext(ctx)
	id := r.PathValue("id")

	console := admin.NewConsole(s.submissions)
	if err := console.Refresh(ctx); err != nil {
		s.logger.WithError(err).Error("failed to load submissions")
		data := s.adminPageData(console, lang)
		data.Error = i18n.T(lang, "admin.loadFailed")
		s.renderAdmin(w, r, data)
		return
	}

	detail, ok := console.Detail(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	data := s.adminPageData(console, lang)
	data.Loaded = true
	data.Detail = detail
	s.renderAdmin(w, r, data)
}

// handlePostAdminSubmissionStatus redirects to the dashboard after a
// successful update, which then fetches the list once. A failed update
// renders the error without fetching.
func (s *Service) handlePostAdminSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := s.languageFromContext(ctx)
	id := r.PathValue("id")
	status := types.SubmissionStatus(r.FormValue("status"))

	console := admin.NewConsole(s.submissions)
	if err := console.SetStatus(ctx, id, status); err != nil {
		s.logger.WithError(err).WithField("submission_id", id).Error("failed to update submission status")

		code := http.StatusBadGateway
		if errors.Is(err, admin.ErrUnknownStatus) {
			code = http.StatusBadRequest
		}

		data := s.adminPageData(console, lang)
		data.Error = i18n.T(lang, "admin.updateFailed") + ": " + remoteMessage(err)
		if err := s.renderTemplateStatus(w, r, code, "page.admin", data); err != nil {
			s.logger.WithError(err).Error("failed to render admin page")
			s.internalServerError(w)
		}
		return
	}

	s.addFlash(w, r, types.FlashSuccess, i18n.T(lang, "admin.statusUpdated"))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
