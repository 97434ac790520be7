package intake

import (
	"net/url"

	"tasmeem/internal/i18n"
	"tasmeem/pkg/types"
)

type QuestionKind string

const (
	QuestionSingle   QuestionKind = "single"
	QuestionMultiple QuestionKind = "multiple"
	QuestionText     QuestionKind = "text"
)

type Question struct {
	ID      string
	Kind    QuestionKind
	Prompt  i18n.Text
	Options []Option
}

// HasOption reports whether value is one of q's options.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// FieldName is the form input name used for q on the questionnaire step.
func (q Question) FieldName() string {
	return "q_" + q.ID
}

var specialRequests = Question{
	ID:     "special_requests",
	Kind:   QuestionText,
	Prompt: i18n.Text{En: "Any specific requirements or preferences?", Ar: "هل لديك متطلبات أو تفضيلات محددة؟"},
}

func opt(value, en, ar string) Option {
	return Option{Value: value, Label: i18n.Text{En: en, Ar: ar}}
}

var questionsByType = map[types.ProjectType][]Question{
	types.ProjectTypeApartment: {
		{
			ID:     "rooms",
			Kind:   QuestionSingle,
			Prompt: i18n.Text{En: "How many rooms need to be designed?", Ar: "كم عدد الغرف التي تحتاج للتصميم؟"},
			Options: []Option{
				opt("1-2", "1-2 rooms", "١-٢ غرف"),
				opt("3-4", "3-4 rooms", "٣-٤ غرف"),
				opt("5+", "5+ rooms", "٥+ غرف"),
			},
		},
		{
			ID:     "style",
			Kind:   QuestionSingle,
			Prompt: i18n.Text{En: "What interior style do you prefer?", Ar: "ما هو أسلوب التصميم المفضل لديك؟"},
			Options: []Option{
				opt("modern", "Modern Minimalist", "عصري بسيط"),
				opt("classic", "Classic Elegant", "كلاسيكي أنيق"),
				opt("contemporary", "Contemporary", "معاصر"),
				opt("arabic", "Arabic Traditional", "عربي تقليدي"),
			},
		},
		{
			ID:     "priority",
			Kind:   QuestionMultiple,
			Prompt: i18n.Text{En: "What are your priorities? (Select all that apply)", Ar: "ما هي أولوياتك؟ (اختر كل ما ينطبق)"},
			Options: []Option{
				opt("storage", "Storage Solutions", "حلول التخزين"),
				opt("lighting", "Natural Lighting", "الإضاءة الطبيعية"),
				opt("smart", "Smart Home Features", "ميزات المنزل الذكي"),
				opt("eco", "Eco-Friendly Materials", "مواد صديقة للبيئة"),
			},
		},
		specialRequests,
	},
	types.ProjectTypeVilla: {
		{
			ID:     "floors",
			Kind:   QuestionSingle,
			Prompt: i18n.Text{En: "How many floors does your villa have?", Ar: "كم عدد طوابق الفيلا؟"},
			Options: []Option{
				opt("1", "1 floor", "طابق واحد"),
				opt("2", "2 floors", "طابقين"),
				opt("3+", "3+ floors", "٣+ طوابق"),
			},
		},
		{
			ID:     "outdoor",
			Kind:   QuestionMultiple,
			Prompt: i18n.Text{En: "Which outdoor areas need design?", Ar: "ما هي المناطق الخارجية التي تحتاج للتصميم؟"},
			Options: []Option{
				opt("garden", "Garden/Landscaping", "الحديقة"),
				opt("pool", "Pool Area", "منطقة المسبح"),
				opt("terrace", "Terrace/Balcony", "التراس/الشرفة"),
				opt("parking", "Parking/Driveway", "موقف السيارات"),
			},
		},
		{
			ID:     "style",
			Kind:   QuestionSingle,
			Prompt: i18n.Text{En: "What architectural style do you prefer?", Ar: "ما هو الأسلوب المعماري المفضل لديك؟"},
			Options: []Option{
				opt("modern", "Modern/Contemporary", "عصري/معاصر"),
				opt("mediterranean", "Mediterranean", "متوسطي"),
				opt("islamic", "Islamic/Arabian", "إسلامي/عربي"),
				opt("luxury", "Luxury Palatial", "قصر فاخر"),
			},
		},
		specialRequests,
	},
	types.ProjectTypeShop: {
		{
			ID:     "business_type",
			Kind:   QuestionSingle,
			Prompt: i18n.Text{En: "What type of retail business?", Ar: "ما نوع النشاط التجاري؟"},
			Options: []Option{
				opt("clothing", "Clothing/Fashion", "ملابس/أزياء"),
				opt("electronics", "Electronics", "إلكترونيات"),
				opt("grocery", "Grocery/Supermarket", "بقالة/سوبرماركت"),
				opt("other", "Other Retail", "تجزئة أخرى"),
			},
		},
		{
			ID:     "features",
			Kind:   QuestionMultiple,
			Prompt: i18n.Text{En: "What features do you need?", Ar: "ما هي الميزات التي تحتاجها؟"},
			Options: []Option{
				opt("display", "Display Windows", "واجهات عرض"),
				opt("storage", "Storage Room", "غرفة تخزين"),
				opt("fitting", "Fitting Rooms", "غرف قياس"),
				opt("cashier", "Cashier Counter", "منطقة الكاشير"),
			},
		},
		{
			ID:     "brand_style",
			Kind:   QuestionSingle,
			Prompt: i18n.Text{En: "What brand atmosphere do you want?", Ar: "ما هو جو العلامة التجارية المطلوب؟"},
			Options: []Option{
				opt("premium", "Premium/Luxury", "فاخر/راقي"),
				opt("modern", "Modern/Trendy", "عصري/عصري"),
				opt("friendly", "Friendly/Welcoming", "ودي/مرحب"),
				opt("minimal", "Clean/Minimal", "نظيف/بسيط"),
			},
		},
		specialRequests,
	},
	types.ProjectTypeRestaurant: {
		{
			ID:     "cuisine_type",
			Kind:   QuestionSingle,
			Prompt: i18n.Text{En: "What type of cuisine will you serve?", Ar: "ما نوع المطبخ الذي ستقدمه؟"},
			Options: []Option{
				opt("arabic", "Arabic/Middle Eastern", "عربي/شرق أوسطي"),
				opt("international", "International", "عالمي"),
				opt("fastfood", "Fast Food/Casual", "وجبات سريعة"),
				opt("fine", "Fine Dining", "مطاعم راقية"),
			},
		},
		{
			ID:     "seating",
			Kind:   QuestionSingle,
			Prompt: i18n.Text{En: "Expected seating capacity?", Ar: "سعة الجلوس المتوقعة؟"},
			Options: []Option{
				opt("small", "Up to 30 seats", "حتى ٣٠ مقعد"),
				opt("medium", "30-60 seats", "٣٠-٦٠ مقعد"),
				opt("large", "60-100 seats", "٦٠-١٠٠ مقعد"),
				opt("xlarge", "100+ seats", "١٠٠+ مقعد"),
			},
		},
		{
			ID:     "features",
			Kind:   QuestionMultiple,
			Prompt: i18n.Text{En: "What areas do you need?", Ar: "ما هي المناطق التي تحتاجها؟"},
			Options: []Option{
				opt("outdoor", "Outdoor Seating", "جلوس خارجي"),
				opt("private", "Private Rooms", "غرف خاصة"),
				opt("bar", "Bar/Counter", "بار/كاونتر"),
				opt("kitchen", "Open Kitchen", "مطبخ مفتوح"),
			},
		},
		specialRequests,
	},
	types.ProjectTypeOffice: {
		{
			ID:     "company_size",
			Kind:   QuestionSingle,
			Prompt: i18n.Text{En: "How many employees will use this space?", Ar: "كم عدد الموظفين الذين سيستخدمون هذا المكان؟"},
			Options: []Option{
				opt("small", "1-10 employees", "١-١٠ موظفين"),
				opt("medium", "10-30 employees", "١٠-٣٠ موظف"),
				opt("large", "30-50 employees", "٣٠-٥٠ موظف"),
				opt("xlarge", "50+ employees", "٥٠+ موظف"),
			},
		},
		{
			ID:     "work_style",
			Kind:   QuestionSingle,
			Prompt: i18n.Text{En: "What work environment do you prefer?", Ar: "ما بيئة العمل المفضلة لديك؟"},
			Options: []Option{
				opt("open", "Open Plan", "مفتوح"),
				opt("private", "Private Offices", "مكاتب خاصة"),
				opt("hybrid", "Hybrid/Mixed", "مختلط"),
				opt("cowork", "Co-working Style", "أسلوب العمل المشترك"),
			},
		},
		{
			ID:     "amenities",
			Kind:   QuestionMultiple,
			Prompt: i18n.Text{En: "What amenities do you need?", Ar: "ما هي المرافق التي تحتاجها؟"},
			Options: []Option{
				opt("meeting", "Meeting Rooms", "قاعات اجتماعات"),
				opt("reception", "Reception Area", "منطقة استقبال"),
				opt("kitchen", "Kitchen/Pantry", "مطبخ"),
				opt("lounge", "Break/Lounge Area", "منطقة استراحة"),
			},
		},
		specialRequests,
	},
	types.ProjectTypeSalon: {
		{
			ID:     "services",
			Kind:   QuestionMultiple,
			Prompt: i18n.Text{En: "What services will you offer?", Ar: "ما هي الخدمات التي ستقدمها؟"},
			Options: []Option{
				opt("hair", "Hair Styling", "تصفيف الشعر"),
				opt("nails", "Nail Care", "العناية بالأظافر"),
				opt("skin", "Skin Care/Facial", "العناية بالبشرة"),
				opt("spa", "Spa/Massage", "سبا/مساج"),
			},
		},
		{
			ID:     "stations",
			Kind:   QuestionSingle,
			Prompt: i18n.Text{En: "How many service stations do you need?", Ar: "كم عدد محطات الخدمة التي تحتاجها؟"},
			Options: []Option{
				opt("small", "1-3 stations", "١-٣ محطات"),
				opt("medium", "4-6 stations", "٤-٦ محطات"),
				opt("large", "7-10 stations", "٧-١٠ محطات"),
				opt("xlarge", "10+ stations", "١٠+ محطات"),
			},
		},
		{
			ID:     "ambiance",
			Kind:   QuestionSingle,
			Prompt: i18n.Text{En: "What ambiance do you want to create?", Ar: "ما الأجواء التي تريد خلقها؟"},
			Options: []Option{
				opt("luxury", "Luxury/High-End", "فاخر/راقي"),
				opt("modern", "Modern/Trendy", "عصري/عصري"),
				opt("zen", "Zen/Relaxing", "هادئ/مريح"),
				opt("chic", "Chic/Boutique", "أنيق"),
			},
		},
		specialRequests,
	},
}

// QuestionsFor returns the ordered question set for p. Unknown or empty
// project types get the apartment set.
func QuestionsFor(p types.ProjectType) []Question {
	if qs, ok := questionsByType[p]; ok {
		return qs
	}
	return questionsByType[types.ProjectTypeApartment]
}

// FindQuestion looks id up in p's question set.
func FindQuestion(p types.ProjectType, id string) (Question, bool) {
	for _, q := range QuestionsFor(p) {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// ApplyAnswers merges a posted questionnaire step into answers and returns
// the result. Keys belonging to other project types are left alone.
//
// Single-choice: a posted option value replaces the answer.
// Multi-choice: each option whose checked state differs from the current
// answer is toggled, so the set keeps selection order.
// Text: the raw string is stored once the visitor has typed something.
func ApplyAnswers(answers types.Answers, questions []Question, form url.Values) types.Answers {
	out := make(types.Answers, len(answers))
	for k, v := range answers {
		out[k] = v
	}

	for _, q := range questions {
		posted := form[q.FieldName()]

		switch q.Kind {
		case QuestionSingle:
			if len(posted) == 0 || !q.HasOption(posted[0]) {
				continue
			}
			out[q.ID] = types.Single(posted[0])

		case QuestionMultiple:
			current, had := out[q.ID]
			if !had && len(posted) == 0 {
				continue
			}
			if current.Kind != types.AnswerMultiple {
				current = types.Multiple()
			}
			checked := map[string]bool{}
			for _, v := range posted {
				checked[v] = true
			}
			for _, o := range q.Options {
				if checked[o.Value] != current.Has(o.Value) {
					current = current.Toggle(o.Value)
				}
			}
			out[q.ID] = current

		case QuestionText:
			if len(posted) == 0 {
				continue
			}
			if _, had := out[q.ID]; !had && posted[0] == "" {
				continue
			}
			out[q.ID] = types.Text(posted[0])
		}
	}

	return out
}
