package i18n

var dictionary = map[Language]map[string]string{
	English: {
		"site.name": "Tasmeem Interiors",

		"nav.home":         "Home",
		"nav.services":     "Services",
		"nav.portfolio":    "Portfolio",
		"nav.contact":      "Contact",
		"nav.startProject": "Start Your Project",
		"nav.language":     "العربية",

		"hero.title":     "Your Smart Interior Design Assistant",
		"hero.subtitle":  "Transform your space with AI-powered design consultation. We bring your vision to life with expert guidance and personalized solutions.",
		"hero.cta":       "Start Your Project Now",
		"hero.learnMore": "Learn More",

		"services.title":    "Our Services",
		"services.subtitle": "Comprehensive interior design solutions for every space",

		"portfolio.title":    "Our Portfolio",
		"portfolio.subtitle": "Explore our latest interior design projects",

		"cta.title":    "Ready to Transform Your Space?",
		"cta.subtitle": "Get started with a personalized consultation today",
		"cta.button":   "Start Your Project Now",

		"footer.rights":  "All rights reserved",
		"footer.privacy": "Privacy Policy",
		"footer.terms":   "Terms of Service",

		"form.fullName":            "Full Name",
		"form.fullNamePlaceholder": "Enter your full name",
		"form.email":               "Email",
		"form.emailPlaceholder":    "Enter your email",
		"form.phone":               "Phone Number",
		"form.phonePlaceholder":    "Enter your phone number",
		"form.city":                "City",
		"form.cityPlaceholder":     "Enter your city",

		"wizard.basicInfo":         "Basic Information",
		"wizard.basicInfoSub":      "Tell us a little about yourself",
		"wizard.projectType":       "Project Type",
		"wizard.projectTypeSub":    "Select the type of space you want to design",
		"wizard.details":           "Project Details",
		"wizard.detailsSub":        "Tell us more about your project requirements",
		"wizard.areaSize":          "Project Area",
		"wizard.budget":            "Budget",
		"wizard.timeline":          "Timeline",
		"wizard.select":            "Select...",
		"wizard.notes":             "Additional Notes (Optional)",
		"wizard.notesPlaceholder":  "Tell us about any additional requirements or preferences...",
		"wizard.questions":         "Detailed Questions",
		"wizard.questionsSub":      "Answer the following questions about your",
		"wizard.typeHere":          "Type here...",
		"wizard.images":            "Images",
		"wizard.imagesSub":         "Share inspiration and photos of your current space (optional)",
		"wizard.inspiration":       "Inspiration Images",
		"wizard.inspirationSub":    "Upload images of designs you like",
		"wizard.currentSpace":      "Current Space Photos",
		"wizard.currentSpaceSub":   "Upload photos of your current space",
		"wizard.upload":            "Upload",
		"wizard.remove":            "Remove",
		"wizard.fileLimits":        "PNG, JPG up to 10MB (max 5 files)",
		"wizard.previous":          "Previous",
		"wizard.next":              "Next",
		"wizard.submit":            "Submit",
		"wizard.submitting":        "Submitting...",
		"wizard.stepOf":            "Step",
		"wizard.submitted":         "Your request has been submitted! We'll contact you within 24 hours",
		"wizard.submitFailed":      "Submission failed",

		"admin.panel":          "Admin Panel",
		"admin.signInPrompt":   "Sign in to continue",
		"admin.password":       "Password",
		"admin.signIn":         "Sign In",
		"admin.backHome":       "Back to Home",
		"admin.dashboard":      "Admin Dashboard",
		"admin.manage":         "Manage client submissions",
		"admin.refresh":        "Refresh",
		"admin.logout":         "Logout",
		"admin.total":          "Total",
		"admin.empty":          "No submissions yet",
		"admin.name":           "Name",
		"admin.city":           "City",
		"admin.date":           "Date",
		"admin.status":         "Status",
		"admin.actions":        "Actions",
		"admin.view":           "View",
		"admin.update":         "Update",
		"admin.details":        "Submission Details",
		"admin.contact":        "Contact Information",
		"admin.project":        "Project Information",
		"admin.answers":        "Questionnaire Answers",
		"admin.close":          "Close",
		"admin.loginOK":        "Login successful",
		"admin.loginFailed":    "Login failed",
		"admin.noAccess":       "You do not have admin access",
		"admin.statusUpdated":  "Status updated",
		"admin.updateFailed":   "Update failed",
		"admin.loadFailed":     "Error loading data",
	},
	Arabic: {
		"site.name": "تصميم للديكور",

		"nav.home":         "الرئيسية",
		"nav.services":     "خدماتنا",
		"nav.portfolio":    "أعمالنا",
		"nav.contact":      "تواصل معنا",
		"nav.startProject": "ابدأ مشروعك",
		"nav.language":     "English",

		"hero.title":     "مساعدك الذكي للتصميم الداخلي",
		"hero.subtitle":  "حوّل مساحتك مع استشارات التصميم المدعومة بالذكاء الاصطناعي. نحقق رؤيتك بإرشاد خبير وحلول مخصصة.",
		"hero.cta":       "ابدأ مشروعك الآن",
		"hero.learnMore": "اعرف المزيد",

		"services.title":    "خدماتنا",
		"services.subtitle": "حلول تصميم داخلي شاملة لكل مساحة",

		"portfolio.title":    "أعمالنا",
		"portfolio.subtitle": "استكشف أحدث مشاريع التصميم الداخلي",

		"cta.title":    "جاهز لتحويل مساحتك؟",
		"cta.subtitle": "ابدأ باستشارة مخصصة اليوم",
		"cta.button":   "ابدأ مشروعك الآن",

		"footer.rights":  "جميع الحقوق محفوظة",
		"footer.privacy": "سياسة الخصوصية",
		"footer.terms":   "شروط الخدمة",

		"form.fullName":            "الاسم الكامل",
		"form.fullNamePlaceholder": "أدخل اسمك الكامل",
		"form.email":               "البريد الإلكتروني",
		"form.emailPlaceholder":    "أدخل بريدك الإلكتروني",
		"form.phone":               "رقم الهاتف",
		"form.phonePlaceholder":    "أدخل رقم هاتفك",
		"form.city":                "المدينة",
		"form.cityPlaceholder":     "أدخل مدينتك",

		"wizard.basicInfo":         "المعلومات الأساسية",
		"wizard.basicInfoSub":      "أخبرنا قليلاً عن نفسك",
		"wizard.projectType":       "نوع المشروع",
		"wizard.projectTypeSub":    "اختر نوع المساحة التي تريد تصميمها",
		"wizard.details":           "تفاصيل المشروع",
		"wizard.detailsSub":        "أخبرنا المزيد عن متطلبات مشروعك",
		"wizard.areaSize":          "مساحة المشروع",
		"wizard.budget":            "الميزانية",
		"wizard.timeline":          "الجدول الزمني",
		"wizard.select":            "اختر...",
		"wizard.notes":             "ملاحظات إضافية (اختياري)",
		"wizard.notesPlaceholder":  "أخبرنا بأي متطلبات أو تفضيلات إضافية...",
		"wizard.questions":         "أسئلة تفصيلية",
		"wizard.questionsSub":      "أجب على الأسئلة التالية المتعلقة بـ",
		"wizard.typeHere":          "اكتب هنا...",
		"wizard.images":            "الصور",
		"wizard.imagesSub":         "شارك صور الإلهام وصور مساحتك الحالية (اختياري)",
		"wizard.inspiration":       "صور الإلهام",
		"wizard.inspirationSub":    "ارفع صور التصاميم التي تعجبك",
		"wizard.currentSpace":      "صور المساحة الحالية",
		"wizard.currentSpaceSub":   "ارفع صور مساحتك الحالية",
		"wizard.upload":            "رفع",
		"wizard.remove":            "حذف",
		"wizard.fileLimits":        "PNG, JPG حتى 10 ميجابايت (5 ملفات كحد أقصى)",
		"wizard.previous":          "السابق",
		"wizard.next":              "التالي",
		"wizard.submit":            "إرسال",
		"wizard.submitting":        "جاري الإرسال...",
		"wizard.stepOf":            "الخطوة",
		"wizard.submitted":         "تم إرسال طلبك بنجاح! سنتواصل معك خلال 24 ساعة",
		"wizard.submitFailed":      "حدث خطأ",

		"admin.panel":          "لوحة التحكم",
		"admin.signInPrompt":   "تسجيل الدخول للمتابعة",
		"admin.password":       "كلمة المرور",
		"admin.signIn":         "تسجيل الدخول",
		"admin.backHome":       "العودة للصفحة الرئيسية",
		"admin.dashboard":      "لوحة التحكم",
		"admin.manage":         "إدارة طلبات العملاء",
		"admin.refresh":        "تحديث",
		"admin.logout":         "خروج",
		"admin.total":          "الإجمالي",
		"admin.empty":          "لا توجد طلبات حتى الآن",
		"admin.name":           "الاسم",
		"admin.city":           "المدينة",
		"admin.date":           "التاريخ",
		"admin.status":         "الحالة",
		"admin.actions":        "الإجراءات",
		"admin.view":           "عرض",
		"admin.update":         "تحديث",
		"admin.details":        "تفاصيل الطلب",
		"admin.contact":        "معلومات الاتصال",
		"admin.project":        "معلومات المشروع",
		"admin.answers":        "إجابات الاستبيان",
		"admin.close":          "إغلاق",
		"admin.loginOK":        "تم تسجيل الدخول بنجاح",
		"admin.loginFailed":    "خطأ في تسجيل الدخول",
		"admin.noAccess":       "ليس لديك صلاحية الوصول",
		"admin.statusUpdated":  "تم التحديث بنجاح",
		"admin.updateFailed":   "خطأ في التحديث",
		"admin.loadFailed":     "خطأ في تحميل البيانات",
	},
}
