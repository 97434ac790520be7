package intake

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"tasmeem/internal/i18n"
	"tasmeem/pkg/types"
)

type Step int

const (
	StepIdentity Step = iota + 1
	StepCategory
	StepSizing
	StepQuestionnaire
	StepImages

	TotalSteps = int(StepImages)
)

// Transition is what Advance did.
type Transition int

const (
	Stayed Transition = iota
	Advanced
	Submitted
)

var (
	ErrSubmitInFlight = errors.New("submission already in progress")
	ErrFileNotStaged  = errors.New("file not staged")
	ErrAlreadyDone    = errors.New("intake already submitted")
)

// Submitter inserts a completed intake into the submissions table.
type Submitter interface {
	CreateSubmission(ctx context.Context, submission *types.Submission) error
}

// Wizard is the state of one visitor's walk through the intake form.
type Wizard struct {
	ID           string
	CurrentStep  Step
	Data         FormData
	Errors       map[string]string
	IsSubmitting bool
	Completed    bool

	submitter  Submitter
	blobs      BlobStore
	blobPrefix string
}

func NewWizard(id string, submitter Submitter, blobs BlobStore, blobPrefix string) *Wizard {
	return &Wizard{
		ID:          id,
		CurrentStep: StepIdentity,
		Data:        newFormData(),
		Errors:      map[string]string{},
		submitter:   submitter,
		blobs:       blobs,
		blobPrefix:  blobPrefix,
	}
}

func (w *Wizard) UpdateIdentity(in Identity) {
	w.Data.Identity = in
}

func (w *Wizard) UpdateCategory(in Category) {
	w.Data.Category = in
}

func (w *Wizard) UpdateSizing(in Sizing) {
	w.Data.Sizing = in
}

// ApplyAnswers merges the posted questionnaire for the selected project type.
func (w *Wizard) ApplyAnswers(form url.Values) {
	w.Data.Answers = ApplyAnswers(w.Data.Answers, w.Questions(), form)
}

// Questions is the question set for the currently selected project type.
func (w *Wizard) Questions() []Question {
	return QuestionsFor(w.Data.ProjectType)
}

// Advance validates the current step. On errors the wizard stays put with
// Errors populated; otherwise it moves forward, or submits from the last step.
// A non-nil error is only returned when submitting failed.
func (w *Wizard) Advance(ctx context.Context, lang i18n.Language) (Transition, error) {
	if w.IsSubmitting {
		return Stayed, ErrSubmitInFlight
	}
	if w.Completed {
		return Stayed, ErrAlreadyDone
	}

	errs := ValidateStep(w.CurrentStep, w.Data, lang)
	if len(errs) > 0 {
		w.Errors = errs
		return Stayed, nil
	}

	w.Errors = map[string]string{}

	if int(w.CurrentStep) < TotalSteps {
		w.CurrentStep++
		return Advanced, nil
	}

	if err := w.Submit(ctx); err != nil {
		return Stayed, err
	}
	return Submitted, nil
}

// Retreat steps back without validating.
func (w *Wizard) Retreat() {
	if w.CurrentStep > StepIdentity {
		w.CurrentStep--
	}
	w.Errors = map[string]string{}
}

// Submit sends the non-image fields as one insert. The wizard is left as it
// was on failure so the visitor can try again.
func (w *Wizard) Submit(ctx context.Context) error {
	w.IsSubmitting = true
	defer func() { w.IsSubmitting = false }()

	submission := w.Data.Submission()
	if err := w.submitter.CreateSubmission(ctx, submission); err != nil {
		return fmt.Errorf("submit intake: %w", err)
	}
	w.Completed = true
	return nil
}

// Progress describes the current step for the progress bar.
func (w *Wizard) Progress() Progress {
	return NewProgress(w.CurrentStep)
}
