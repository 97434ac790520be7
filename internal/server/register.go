package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"tasmeem/internal/i18n"
	"tasmeem/internal/intake"
	"tasmeem/pkg/types"
)

type QuestionView struct {
	intake.Question
	Selected string
	Checked  map[string]bool
}

type RegisterPageData struct {
	types.BasePageData
	Step         int
	Progress     intake.Progress
	Form         intake.FormData
	FieldErrors  map[string]string
	Error        string
	ProjectTypes []intake.ProjectTypeOption
	AreaSizes    []intake.Option
	Budgets      []intake.Option
	Timelines    []intake.Option
	Questions    []QuestionView
	Inspiration  []intake.StagedFile
	CurrentSpace []intake.StagedFile
	MaxFiles     int
	IsFirstStep  bool
	IsLastStep   bool
}

// registerPageData snapshots the wizard so the page can be rendered after
// the draft lock is released.
func registerPageData(wz *intake.Wizard, lang i18n.Language) *RegisterPageData {
	data := &RegisterPageData{
		BasePageData: types.BasePageData{Title: i18n.T(lang, "nav.startProject")},
		Step:         int(wz.CurrentStep),
		Progress:     wz.Progress(),
		Form:         wz.Data,
		FieldErrors:  make(map[string]string, len(wz.Errors)),
		ProjectTypes: intake.ProjectTypeOptions,
		AreaSizes:    intake.AreaSizeOptions,
		Budgets:      intake.BudgetOptions,
		Timelines:    intake.TimelineOptions,
		Inspiration:  append([]intake.StagedFile(nil), wz.StagedFiles(intake.CategoryInspiration)...),
		CurrentSpace: append([]intake.StagedFile(nil), wz.StagedFiles(intake.CategoryCurrentSpace)...),
		MaxFiles:     intake.MaxStagedFiles,
		IsFirstStep:  wz.CurrentStep == intake.StepIdentity,
		IsLastStep:   wz.CurrentStep == intake.StepImages,
	}

	for k, v := range wz.Errors {
		data.FieldErrors[k] = v
	}

	answers := make(types.Answers, len(wz.Data.Answers))
	for k, v := range wz.Data.Answers {
		answers[k] = v
	}
	data.Form.Answers = answers

	for _, q := range wz.Questions() {
		view := QuestionView{Question: q, Checked: map[string]bool{}}
		if answer, ok := answers[q.ID]; ok {
			view.Selected = answer.Value
			for _, v := range answer.Values {
				view.Checked[v] = true
			}
		}
		data.Questions = append(data.Questions, view)
	}

	return data
}

// applyStep merges the posted fields of the wizard's current step.
func applyStep(wz *intake.Wizard, values url.Values) error {
	switch wz.CurrentStep {
	case intake.StepIdentity:
		var in intake.Identity
		if err := decoder.Decode(&in, values); err != nil {
			return err
		}
		wz.UpdateIdentity(in)
	case intake.StepCategory:
		var in intake.Category
		if err := decoder.Decode(&in, values); err != nil {
			return err
		}
		wz.UpdateCategory(in)
	case intake.StepSizing:
		var in intake.Sizing
		if err := decoder.Decode(&in, values); err != nil {
			return err
		}
		wz.UpdateSizing(in)
	case intake.StepQuestionnaire:
		wz.ApplyAnswers(values)
	}
	return nil
}

func (s *Service) handleGetRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := s.languageFromContext(ctx)

	var data *RegisterPageData
	id, _ := s.drafts.With(ctx, s.wizardID(r), func(wz *intake.Wizard) error {
		data = registerPageData(wz, lang)
		return nil
	})
	s.setWizardID(w, r, id)

	if err := s.renderTemplate(w, r, "page.register", data); err != nil {
		s.logger.WithError(err).Error("failed to render register page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := s.languageFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	action := r.PostForm.Get("action")
	postedStep, _ := strconv.Atoi(r.PostForm.Get("step"))

	var (
		transition = intake.Stayed
		moved      bool
		submitErr  error
		data       *RegisterPageData
	)

	id, err := s.drafts.With(ctx, s.wizardID(r), func(wz *intake.Wizard) error {
		// A form posted from a step the wizard has since left is ignored.
		if postedStep != int(wz.CurrentStep) {
			moved = true
			return nil
		}

		if err := applyStep(wz, r.PostForm); err != nil {
			return err
		}

		if action == "back" {
			wz.Retreat()
			moved = true
			return nil
		}

		transition, submitErr = wz.Advance(ctx, lang)
		if transition == intake.Stayed {
			data = registerPageData(wz, lang)
		}
		return nil
	})
	if err != nil {
		s.logger.WithError(err).Warn("failed to decode register step")
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	switch {
	case transition == intake.Submitted:
		s.logger.WithField("draft_id", id).Info("intake submitted")
		s.setWizardID(w, r, "")
		s.addFlash(w, r, types.FlashSuccess, i18n.T(lang, "wizard.submitted"))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case moved, transition == intake.Advanced:
		s.setWizardID(w, r, id)
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	s.setWizardID(w, r, id)

	if submitErr != nil {
		s.logger.WithError(submitErr).WithField("draft_id", id).Error("failed to submit intake")
		data.Error = fmt.Sprintf("%s: %s", i18n.T(lang, "wizard.submitFailed"), remoteMessage(submitErr))
	}

	if err := s.renderTemplate(w, r, "page.register", data); err != nil {
		s.logger.WithError(err).Error("failed to render register page with errors")
		s.internalServerError(w)
		return
	}
}

// remoteMessage is the innermost error message, the one the remote call gave.
func remoteMessage(err error) string {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err.Error()
		}
		err = inner
	}
}
