package admin

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tasmeem/internal/i18n"
	"tasmeem/internal/intake"
	"tasmeem/pkg/types"
)

var ErrUnknownStatus = errors.New("unknown submission status")

// SubmissionSource is the remote submissions table as seen by the console.
type SubmissionSource interface {
	Submissions(ctx context.Context) ([]*types.Submission, error)
	UpdateSubmissionStatus(ctx context.Context, id string, status types.SubmissionStatus) error
}

// Console is the admin's view of the submissions list. One is built per
// request; the list only changes through Refresh.
type Console struct {
	source      SubmissionSource
	submissions []*types.Submission
}

func NewConsole(source SubmissionSource) *Console {
	return &Console{source: source}
}

// Refresh replaces the list with the newest-first contents of the table. On
// failure the list is left as it was.
func (c *Console) Refresh(ctx context.Context) error {
	submissions, err := c.source.Submissions(ctx)
	if err != nil {
		return fmt.Errorf("load submissions: %w", err)
	}
	c.submissions = submissions
	return nil
}

func (c *Console) Submissions() []*types.Submission {
	return c.submissions
}

// SetStatus changes one submission's status in the table without touching
// the loaded list.
func (c *Console) SetStatus(ctx context.Context, id string, status types.SubmissionStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	if err := c.source.UpdateSubmissionStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update status of %s: %w", id, err)
	}
	return nil
}

// UpdateStatus is SetStatus followed by one Refresh. Nothing is reloaded when
// the update fails.
func (c *Console) UpdateStatus(ctx context.Context, id string, status types.SubmissionStatus) error {
	if err := c.SetStatus(ctx, id, status); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

type Stats struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
}

func (c *Console) Stats() Stats {
	s := Stats{Total: len(c.submissions)}
	for _, sub := range c.submissions {
		switch sub.Status {
		case types.SubmissionStatusPending:
			s.Pending++
		case types.SubmissionStatusInProgress:
			s.InProgress++
		case types.SubmissionStatusCompleted:
			s.Completed++
		}
	}
	return s
}

type AnswerLine struct {
	QuestionID string
	Question   i18n.Text
	Value      string
}

type Detail struct {
	Submission *types.Submission
	Answers    []AnswerLine
}

// Detail finds id in the loaded list.
func (c *Console) Detail(id string) (*Detail, bool) {
	for _, sub := range c.submissions {
		if sub.ID == id {
			return &Detail{Submission: sub, Answers: AnswerLines(sub)}, true
		}
	}
	return nil, false
}

// AnswerLines orders a submission's answers by its project type's questions,
// then any remaining keys alphabetically. Keys without a known question are
// labelled with the key itself.
func AnswerLines(sub *types.Submission) []AnswerLine {
	lines := make([]AnswerLine, 0, len(sub.QuestionnaireAnswers))
	seen := map[string]bool{}

	for _, q := range intake.QuestionsFor(sub.ProjectType) {
		answer, ok := sub.QuestionnaireAnswers[q.ID]
		if !ok {
			continue
		}
		seen[q.ID] = true
		lines = append(lines, AnswerLine{QuestionID: q.ID, Question: q.Prompt, Value: answer.String()})
	}

	rest := make([]string, 0)
	for id := range sub.QuestionnaireAnswers {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)

	for _, id := range rest {
		lines = append(lines, AnswerLine{
			QuestionID: id,
			Question:   i18n.Text{En: id},
			Value:      sub.QuestionnaireAnswers[id].String(),
		})
	}

	return lines
}
