package admin

import (
	"context"
	"errors"
	"testing"

	"tasmeem/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	rows      []*types.Submission
	fetches   int
	updates   int
	fetchErr  error
	updateErr error
}

func (f *fakeSource) Submissions(ctx context.Context) ([]*types.Submission, error) {
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]*types.Submission, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeSource) UpdateSubmissionStatus(ctx context.Context, id string, status types.SubmissionStatus) error {
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, r := range f.rows {
		if r.ID == id {
			r.Status = status
			return nil
		}
	}
	return types.ErrSubmissionNotFound
}

func seeded() *fakeSource {
	return &fakeSource{rows: []*types.Submission{
		{ID: "s3", FullName: "Layla", ProjectType: types.ProjectTypeVilla, Status: types.SubmissionStatusPending},
		{ID: "s2", FullName: "Omar", ProjectType: types.ProjectTypeShop, Status: types.SubmissionStatusInProgress},
		{ID: "s1", FullName: "Sara", ProjectType: types.ProjectTypeApartment, Status: types.SubmissionStatusCompleted},
	}}
}

func TestUpdateStatusRefetchesOnceOnSuccess(t *testing.T) {
	source := seeded()
	console := NewConsole(source)
	ctx := context.Background()

	require.NoError(t, console.Refresh(ctx))
	require.Equal(t, 1, source.fetches)

	require.NoError(t, console.UpdateStatus(ctx, "s3", types.SubmissionStatusContacted))
	assert.Equal(t, 2, source.fetches)
	assert.Equal(t, 1, source.updates)
	assert.Equal(t, types.SubmissionStatusContacted, console.Submissions()[0].Status)
}

func TestUpdateStatusFailureDoesNotRefetch(t *testing.T) {
	source := seeded()
	console := NewConsole(source)
	ctx := context.Background()

	require.NoError(t, console.Refresh(ctx))
	source.updateErr = errors.New("permission denied for table submissions")

	err := console.UpdateStatus(ctx, "s3", types.SubmissionStatusContacted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, 1, source.fetches)
	assert.Len(t, console.Submissions(), 3)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	source := seeded()
	console := NewConsole(source)

	err := console.UpdateStatus(context.Background(), "s3", "archived")
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Zero(t, source.updates)
	assert.Zero(t, source.fetches)
}

func TestSetStatusDoesNotRefetch(t *testing.T) {
	source := seeded()
	console := NewConsole(source)

	require.NoError(t, console.SetStatus(context.Background(), "s2", types.SubmissionStatusCompleted))
	assert.Equal(t, 1, source.updates)
	assert.Zero(t, source.fetches)
	assert.Empty(t, console.Submissions())

	err := console.SetStatus(context.Background(), "s2", "")
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Equal(t, 1, source.updates)
}

func TestRefreshFailureKeepsList(t *testing.T) {
	source := seeded()
	console := NewConsole(source)
	ctx := context.Background()

	require.NoError(t, console.Refresh(ctx))
	source.fetchErr = errors.New("connection refused")

	require.Error(t, console.Refresh(ctx))
	assert.Len(t, console.Submissions(), 3)
}

func TestStats(t *testing.T) {
	console := NewConsole(seeded())
	require.NoError(t, console.Refresh(context.Background()))

	assert.Equal(t, Stats{Total: 3, Pending: 1, InProgress: 1, Completed: 1}, console.Stats())
}

func TestDetailOrdersAnswers(t *testing.T) {
	source := &fakeSource{rows: []*types.Submission{{
		ID:          "s1",
		ProjectType: types.ProjectTypeVilla,
		QuestionnaireAnswers: types.Answers{
			"special_requests": types.Text("shaded majlis"),
			"rooms":            types.Single("3-4"),
			"outdoor":          types.Multiple("pool", "garden"),
			"floors":           types.Text("2"),
		},
	}}}
	console := NewConsole(source)
	require.NoError(t, console.Refresh(context.Background()))

	detail, ok := console.Detail("s1")
	require.True(t, ok)

	ids := make([]string, 0, len(detail.Answers))
	values := make([]string, 0, len(detail.Answers))
	for _, line := range detail.Answers {
		ids = append(ids, line.QuestionID)
		values = append(values, line.Value)
	}
	assert.Equal(t, []string{"floors", "outdoor", "special_requests", "rooms"}, ids)
	assert.Equal(t, []string{"2", "pool, garden", "shaded majlis", "3-4"}, values)
	assert.Equal(t, "How many floors does your villa have?", detail.Answers[0].Question.En)

	_, ok = console.Detail("missing")
	assert.False(t, ok)
}
