package intake

import (
	"testing"

	"tasmeem/internal/i18n"
	"tasmeem/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestValidateIdentity(t *testing.T) {
	tests := []struct {
		name string
		in   Identity
		want map[string]string
	}{
		{
			name: "valid",
			in:   validIdentity(),
			want: map[string]string{},
		},
		{
			name: "all empty",
			in:   Identity{},
			want: map[string]string{
				FieldFullName: "Name is required",
				FieldEmail:    "Email is required",
				FieldPhone:    "Phone number is required",
				FieldCity:     "City is required",
			},
		},
		{
			name: "short name and phone",
			in:   Identity{FullName: " S ", Email: "sara@example.com", Phone: " 1234567 ", City: "Riyadh"},
			want: map[string]string{
				FieldFullName: "Name is too short",
				FieldPhone:    "Invalid phone number",
			},
		},
		{
			name: "email without domain dot",
			in:   Identity{FullName: "Sara", Email: "sara@example", Phone: "0501234567", City: "Jeddah"},
			want: map[string]string{FieldEmail: "Invalid email address"},
		},
		{
			name: "email with whitespace",
			in:   Identity{FullName: "Sara", Email: "sara ali@example.com", Phone: "0501234567", City: "Jeddah"},
			want: map[string]string{FieldEmail: "Invalid email address"},
		},
		{
			name: "arabic name counts runes",
			in:   Identity{FullName: "سا", Email: "sara@example.com", Phone: "0501234567", City: "الرياض"},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateIdentity(tt.in, i18n.English))
		})
	}
}

func TestValidateIdentityArabicMessages(t *testing.T) {
	errs := ValidateIdentity(Identity{}, i18n.Arabic)
	assert.Equal(t, "الاسم مطلوب", errs[FieldFullName])
	assert.Equal(t, "المدينة مطلوبة", errs[FieldCity])
}

func TestValidateCategory(t *testing.T) {
	assert.Empty(t, ValidateCategory(Category{ProjectType: types.ProjectTypeSalon}, i18n.English))
	assert.Equal(t,
		map[string]string{FieldProjectType: "Please select a project type"},
		ValidateCategory(Category{}, i18n.English),
	)
	assert.Contains(t, ValidateCategory(Category{ProjectType: "castle"}, i18n.English), FieldProjectType)
}

func TestValidateSizing(t *testing.T) {
	assert.Equal(t, map[string]string{
		FieldAreaSize: "Please select area size",
		FieldBudget:   "Please select budget",
		FieldTimeline: "Please select timeline",
	}, ValidateSizing(Sizing{AdditionalNotes: "anything"}, i18n.English))

	assert.Empty(t, ValidateSizing(Sizing{AreaSize: "small", Budget: "economy", Timeline: "urgent"}, i18n.English))
}

func TestValidateStepLaterStepsAlwaysPass(t *testing.T) {
	empty := newFormData()
	assert.Empty(t, ValidateStep(StepQuestionnaire, empty, i18n.English))
	assert.Empty(t, ValidateStep(StepImages, empty, i18n.English))
	assert.Len(t, ValidateStep(StepIdentity, empty, i18n.English), 4)
}
