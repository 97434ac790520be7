package intake

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"tasmeem/internal/i18n"
)

// Form field names. They double as the keys of a step's error map.
const (
	FieldFullName    = "full_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldCity        = "city"
	FieldProjectType = "project_type"
	FieldAreaSize    = "area_size"
	FieldBudget      = "budget"
	FieldTimeline    = "timeline"
)

var emailReg = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var messages = map[string]i18n.Text{
	"name.required":        {En: "Name is required", Ar: "الاسم مطلوب"},
	"name.short":           {En: "Name is too short", Ar: "الاسم قصير جداً"},
	"email.required":       {En: "Email is required", Ar: "البريد الإلكتروني مطلوب"},
	"email.invalid":        {En: "Invalid email address", Ar: "البريد الإلكتروني غير صالح"},
	"phone.required":       {En: "Phone number is required", Ar: "رقم الهاتف مطلوب"},
	"phone.invalid":        {En: "Invalid phone number", Ar: "رقم الهاتف غير صالح"},
	"city.required":        {En: "City is required", Ar: "المدينة مطلوبة"},
	"projectType.required": {En: "Please select a project type", Ar: "يرجى اختيار نوع المشروع"},
	"areaSize.required":    {En: "Please select area size", Ar: "يرجى اختيار المساحة"},
	"budget.required":      {En: "Please select budget", Ar: "يرجى اختيار الميزانية"},
	"timeline.required":    {En: "Please select timeline", Ar: "يرجى اختيار الجدول الزمني"},
}

func msg(lang i18n.Language, key string) string {
	return messages[key].In(lang)
}

func ValidateIdentity(in Identity, lang i18n.Language) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(in.FullName)
	switch {
	case name == "":
		errs[FieldFullName] = msg(lang, "name.required")
	case utf8.RuneCountInString(name) < 2:
		errs[FieldFullName] = msg(lang, "name.short")
	}

	switch {
	case strings.TrimSpace(in.Email) == "":
		errs[FieldEmail] = msg(lang, "email.required")
	case !emailReg.MatchString(in.Email):
		errs[FieldEmail] = msg(lang, "email.invalid")
	}

	phone := strings.TrimSpace(in.Phone)
	switch {
	case phone == "":
		errs[FieldPhone] = msg(lang, "phone.required")
	case utf8.RuneCountInString(phone) < 8:
		errs[FieldPhone] = msg(lang, "phone.invalid")
	}

	if strings.TrimSpace(in.City) == "" {
		errs[FieldCity] = msg(lang, "city.required")
	}

	return errs
}

func ValidateCategory(in Category, lang i18n.Language) map[string]string {
	errs := map[string]string{}
	if !in.ProjectType.Valid() {
		errs[FieldProjectType] = msg(lang, "projectType.required")
	}
	return errs
}

func ValidateSizing(in Sizing, lang i18n.Language) map[string]string {
	errs := map[string]string{}
	if in.AreaSize == "" {
		errs[FieldAreaSize] = msg(lang, "areaSize.required")
	}
	if in.Budget == "" {
		errs[FieldBudget] = msg(lang, "budget.required")
	}
	if in.Timeline == "" {
		errs[FieldTimeline] = msg(lang, "timeline.required")
	}
	return errs
}

// ValidateStep runs the rule for step against data. The questionnaire and
// image steps always pass.
func ValidateStep(step Step, data FormData, lang i18n.Language) map[string]string {
	switch step {
	case StepIdentity:
		return ValidateIdentity(data.Identity, lang)
	case StepCategory:
		return ValidateCategory(data.Category, lang)
	case StepSizing:
		return ValidateSizing(data.Sizing, lang)
	default:
		return map[string]string{}
	}
}
