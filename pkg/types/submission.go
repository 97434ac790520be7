package types

import "time"

type ProjectType string

const (
	ProjectTypeApartment  ProjectType = "apartment"
	ProjectTypeVilla      ProjectType = "villa"
	ProjectTypeShop       ProjectType = "shop"
	ProjectTypeRestaurant ProjectType = "restaurant"
	ProjectTypeOffice     ProjectType = "office"
	ProjectTypeSalon      ProjectType = "salon"
)

var ProjectTypes = []ProjectType{
	ProjectTypeApartment,
	ProjectTypeVilla,
	ProjectTypeShop,
	ProjectTypeRestaurant,
	ProjectTypeOffice,
	ProjectTypeSalon,
}

func (p ProjectType) Valid() bool {
	for _, t := range ProjectTypes {
		if p == t {
			return true
		}
	}
	return false
}

type SubmissionStatus string

const (
	SubmissionStatusPending    SubmissionStatus = "pending"
	SubmissionStatusContacted  SubmissionStatus = "contacted"
	SubmissionStatusInProgress SubmissionStatus = "in_progress"
	SubmissionStatusCompleted  SubmissionStatus = "completed"
	SubmissionStatusCancelled  SubmissionStatus = "cancelled"
)

// SubmissionStatuses is the order the admin status picker lists them in.
var SubmissionStatuses = []SubmissionStatus{
	SubmissionStatusPending,
	SubmissionStatusContacted,
	SubmissionStatusInProgress,
	SubmissionStatusCompleted,
	SubmissionStatusCancelled,
}

func (s SubmissionStatus) Valid() bool {
	for _, v := range SubmissionStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Submission is one completed intake. Staged images are never part of it.
type Submission struct {
	ID                   string           `db:"id" json:"id"`
	FullName             string           `db:"full_name" json:"full_name"`
	Email                string           `db:"email" json:"email"`
	Phone                string           `db:"phone" json:"phone"`
	City                 string           `db:"city" json:"city"`
	ProjectType          ProjectType      `db:"project_type" json:"project_type"`
	AreaSize             *string          `db:"area_size" json:"area_size"`
	Budget               *string          `db:"budget" json:"budget"`
	Timeline             *string          `db:"timeline" json:"timeline"`
	AdditionalNotes      *string          `db:"additional_notes" json:"additional_notes"`
	QuestionnaireAnswers Answers          `db:"questionnaire_answers" json:"questionnaire_answers"`
	Status               SubmissionStatus `db:"status" json:"status"`
	CreatedAt            time.Time        `db:"created_at" json:"created_at"`
}
