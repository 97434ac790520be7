package intake

import (
	"tasmeem/internal/i18n"
	"tasmeem/pkg/types"
)

// Option is one selectable value with its bilingual label.
type Option struct {
	Value       string
	Label       i18n.Text
	Description i18n.Text
}

type ProjectTypeOption struct {
	Type        types.ProjectType
	Icon        string
	Label       i18n.Text
	Description i18n.Text
}

var ProjectTypeOptions = []ProjectTypeOption{
	{
		Type:        types.ProjectTypeApartment,
		Icon:        "home",
		Label:       i18n.Text{En: "Apartment", Ar: "شقة"},
		Description: i18n.Text{En: "Residential apartments", Ar: "الشقق السكنية"},
	},
	{
		Type:        types.ProjectTypeVilla,
		Icon:        "building",
		Label:       i18n.Text{En: "Villa / Palace", Ar: "فيلا / قصر"},
		Description: i18n.Text{En: "Luxury residences", Ar: "المساكن الفاخرة"},
	},
	{
		Type:        types.ProjectTypeShop,
		Icon:        "store",
		Label:       i18n.Text{En: "Shop / Store", Ar: "محل / متجر"},
		Description: i18n.Text{En: "Retail spaces", Ar: "المساحات التجارية"},
	},
	{
		Type:        types.ProjectTypeRestaurant,
		Icon:        "utensils",
		Label:       i18n.Text{En: "Restaurant / Cafe", Ar: "مطعم / كافيه"},
		Description: i18n.Text{En: "Dining establishments", Ar: "المطاعم والمقاهي"},
	},
	{
		Type:        types.ProjectTypeOffice,
		Icon:        "briefcase",
		Label:       i18n.Text{En: "Office / Company", Ar: "مكتب / شركة"},
		Description: i18n.Text{En: "Work environments", Ar: "بيئات العمل"},
	},
	{
		Type:        types.ProjectTypeSalon,
		Icon:        "sparkles",
		Label:       i18n.Text{En: "Beauty Salon", Ar: "صالون تجميل"},
		Description: i18n.Text{En: "Beauty & wellness", Ar: "الجمال والعافية"},
	},
}

// ProjectTypeLabel returns the display label for p, or p itself when unknown.
func ProjectTypeLabel(p types.ProjectType) i18n.Text {
	for _, o := range ProjectTypeOptions {
		if o.Type == p {
			return o.Label
		}
	}
	return i18n.Text{En: string(p), Ar: string(p)}
}

var AreaSizeOptions = []Option{
	{Value: "small", Label: i18n.Text{En: "Small (< 100 sqm)", Ar: "صغير (أقل من 100 متر مربع)"}},
	{Value: "medium", Label: i18n.Text{En: "Medium (100-300 sqm)", Ar: "متوسط (100-300 متر مربع)"}},
	{Value: "large", Label: i18n.Text{En: "Large (300-500 sqm)", Ar: "كبير (300-500 متر مربع)"}},
	{Value: "xlarge", Label: i18n.Text{En: "Very Large (> 500 sqm)", Ar: "كبير جداً (أكثر من 500 متر مربع)"}},
}

var BudgetOptions = []Option{
	{Value: "economy", Label: i18n.Text{En: "Economy", Ar: "اقتصادي"}},
	{Value: "standard", Label: i18n.Text{En: "Standard", Ar: "قياسي"}},
	{Value: "premium", Label: i18n.Text{En: "Premium", Ar: "متميز"}},
	{Value: "luxury", Label: i18n.Text{En: "Luxury", Ar: "فاخر"}},
}

var TimelineOptions = []Option{
	{Value: "urgent", Label: i18n.Text{En: "Urgent (< 1 month)", Ar: "عاجل (أقل من شهر)"}},
	{Value: "normal", Label: i18n.Text{En: "Normal (1-3 months)", Ar: "عادي (1-3 أشهر)"}},
	{Value: "relaxed", Label: i18n.Text{En: "Relaxed (3-6 months)", Ar: "مريح (3-6 أشهر)"}},
	{Value: "flexible", Label: i18n.Text{En: "Flexible", Ar: "مرن"}},
}

// OptionLabel finds value in options, returning the value itself when absent.
func OptionLabel(options []Option, value string) i18n.Text {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return i18n.Text{En: value, Ar: value}
}

var StatusLabels = map[types.SubmissionStatus]i18n.Text{
	types.SubmissionStatusPending:    {En: "Pending", Ar: "قيد الانتظار"},
	types.SubmissionStatusContacted:  {En: "Contacted", Ar: "تم التواصل"},
	types.SubmissionStatusInProgress: {En: "In Progress", Ar: "قيد التنفيذ"},
	types.SubmissionStatusCompleted:  {En: "Completed", Ar: "مكتمل"},
	types.SubmissionStatusCancelled:  {En: "Cancelled", Ar: "ملغي"},
}
