package intake

import "tasmeem/pkg/types"

type Identity struct {
	FullName string `form:"full_name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	City     string `form:"city"`
}

type Category struct {
	ProjectType types.ProjectType `form:"project_type"`
}

type Sizing struct {
	AreaSize        string `form:"area_size"`
	Budget          string `form:"budget"`
	Timeline        string `form:"timeline"`
	AdditionalNotes string `form:"additional_notes"`
}

// FormData is everything one visitor has entered so far.
type FormData struct {
	Identity
	Category
	Sizing

	Answers types.Answers

	InspirationImages  []StagedFile
	CurrentSpacePhotos []StagedFile
}

func newFormData() FormData {
	return FormData{Answers: types.Answers{}}
}

// Submission builds the record persisted on submit. Staged images are
// deliberately not carried over.
func (d FormData) Submission() *types.Submission {
	answers := make(types.Answers, len(d.Answers))
	for k, v := range d.Answers {
		answers[k] = v
	}

	return &types.Submission{
		FullName:             d.FullName,
		Email:                d.Email,
		Phone:                d.Phone,
		City:                 d.City,
		ProjectType:          d.ProjectType,
		AreaSize:             nullable(d.AreaSize),
		Budget:               nullable(d.Budget),
		Timeline:             nullable(d.Timeline),
		AdditionalNotes:      nullable(d.AdditionalNotes),
		QuestionnaireAnswers: answers,
		Status:               types.SubmissionStatusPending,
	}
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
