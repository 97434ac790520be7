package intake

import (
	"net/url"
	"testing"

	"tasmeem/pkg/types"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func questionIDs(qs []Question) []string {
	ids := make([]string, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestQuestionsForVilla(t *testing.T) {
	got := questionIDs(QuestionsFor(types.ProjectTypeVilla))
	want := []string{"floors", "outdoor", "style", "special_requests"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("villa questions mismatch (-want +got):\n%s", diff)
	}
}

func TestEveryProjectTypeHasFourQuestions(t *testing.T) {
	for _, p := range types.ProjectTypes {
		assert.Len(t, QuestionsFor(p), 4, p)
	}
}

func TestQuestionsForFallsBackToApartment(t *testing.T) {
	apartment := questionIDs(QuestionsFor(types.ProjectTypeApartment))
	assert.Equal(t, apartment, questionIDs(QuestionsFor("")))
	assert.Equal(t, apartment, questionIDs(QuestionsFor("castle")))
}

func TestFindQuestion(t *testing.T) {
	q, ok := FindQuestion(types.ProjectTypeVilla, "outdoor")
	assert.True(t, ok)
	assert.Equal(t, QuestionMultiple, q.Kind)

	_, ok = FindQuestion(types.ProjectTypeVilla, "rooms")
	assert.False(t, ok)
}

func TestApplyAnswersSingleChoice(t *testing.T) {
	qs := QuestionsFor(types.ProjectTypeApartment)

	got := ApplyAnswers(types.Answers{}, qs, url.Values{"q_rooms": {"3-4"}})
	assert.Equal(t, types.Single("3-4"), got["rooms"])

	got = ApplyAnswers(got, qs, url.Values{"q_rooms": {"12"}})
	assert.Equal(t, types.Single("3-4"), got["rooms"], "non-option values are ignored")
}

func TestApplyAnswersMultiChoiceToggles(t *testing.T) {
	qs := QuestionsFor(types.ProjectTypeApartment)

	got := ApplyAnswers(types.Answers{}, qs, url.Values{"q_priority": {"lighting"}})
	got = ApplyAnswers(got, qs, url.Values{"q_priority": {"storage", "lighting"}})
	assert.Equal(t, []string{"lighting", "storage"}, got["priority"].Values)

	got = ApplyAnswers(got, qs, url.Values{"q_priority": {"storage"}})
	assert.Equal(t, []string{"storage"}, got["priority"].Values)

	got = ApplyAnswers(got, qs, url.Values{})
	assert.Equal(t, types.AnswerMultiple, got["priority"].Kind)
	assert.Empty(t, got["priority"].Values)
}

func TestApplyAnswersUntouchedLeavesNoKey(t *testing.T) {
	qs := QuestionsFor(types.ProjectTypeApartment)

	got := ApplyAnswers(types.Answers{}, qs, url.Values{"q_special_requests": {""}})
	assert.Empty(t, got)
}

func TestApplyAnswersTextAndInputUntouched(t *testing.T) {
	qs := QuestionsFor(types.ProjectTypeOffice)
	in := types.Answers{}

	got := ApplyAnswers(in, qs, url.Values{"q_special_requests": {"quiet rooms"}})
	assert.Equal(t, types.Text("quiet rooms"), got["special_requests"])
	assert.Empty(t, in)

	got = ApplyAnswers(got, qs, url.Values{"q_special_requests": {""}})
	assert.Equal(t, types.Text(""), got["special_requests"])
}

func TestApplyAnswersKeepsOtherProjectTypeKeys(t *testing.T) {
	in := types.Answers{"rooms": types.Single("5+")}

	got := ApplyAnswers(in, QuestionsFor(types.ProjectTypeVilla), url.Values{"q_floors": {"2"}})
	want := types.Answers{
		"rooms":  types.Single("5+"),
		"floors": types.Single("2"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
}
