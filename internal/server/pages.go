package server

import (
	"net/http"

	"tasmeem/internal"
	"tasmeem/internal/i18n"
	"tasmeem/internal/intake"
	"tasmeem/pkg/types"
)

type ServiceCard struct {
	Option intake.ProjectTypeOption
	Image  string
}

type PortfolioItem struct {
	Title    i18n.Text
	Category i18n.Text
	Image    string
}

type HomePageData struct {
	types.BasePageData
	Services  []ServiceCard
	Portfolio []PortfolioItem
}

var serviceImages = map[types.ProjectType]string{
	types.ProjectTypeApartment:  "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=400&h=300&fit=crop",
	types.ProjectTypeVilla:      "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=400&h=300&fit=crop",
	types.ProjectTypeShop:       "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=300&fit=crop",
	types.ProjectTypeRestaurant: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=400&h=300&fit=crop",
	types.ProjectTypeOffice:     "https://images.unsplash.com/photo-1497366216548-37526070297c?w=400&h=300&fit=crop",
	types.ProjectTypeSalon:      "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=400&h=300&fit=crop",
}

var portfolio = []PortfolioItem{
	{
		Title:    i18n.Text{En: "Modern Living Room", Ar: "غرفة معيشة عصرية"},
		Category: i18n.Text{En: "Apartment Design", Ar: "تصميم شقة"},
		Image:    "https://images.unsplash.com/photo-1600210492486-724fe5c67fb0?w=800&h=600&fit=crop",
	},
	{
		Title:    i18n.Text{En: "Luxury Villa Interior", Ar: "ديكور فيلا فاخرة"},
		Category: i18n.Text{En: "Villa Design", Ar: "تصميم فيلا"},
		Image:    "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&h=600&fit=crop",
	},
	{
		Title:    i18n.Text{En: "Contemporary Restaurant", Ar: "مطعم معاصر"},
		Category: i18n.Text{En: "Restaurant Design", Ar: "تصميم مطعم"},
		Image:    "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=800&h=600&fit=crop",
	},
	{
		Title:    i18n.Text{En: "Executive Office Space", Ar: "مكتب تنفيذي"},
		Category: i18n.Text{En: "Office Design", Ar: "تصميم مكتب"},
		Image:    "https://images.unsplash.com/photo-1497366754035-f200968a6e72?w=800&h=600&fit=crop",
	},
	{
		Title:    i18n.Text{En: "Boutique Store", Ar: "متجر بوتيك"},
		Category: i18n.Text{En: "Retail Design", Ar: "تصميم تجاري"},
		Image:    "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800&h=600&fit=crop",
	},
	{
		Title:    i18n.Text{En: "Luxury Beauty Salon", Ar: "صالون تجميل فاخر"},
		Category: i18n.Text{En: "Salon Design", Ar: "تصميم صالون"},
		Image:    "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=800&h=600&fit=crop",
	},
}

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	cards := make([]ServiceCard, 0, len(intake.ProjectTypeOptions))
	for _, o := range intake.ProjectTypeOptions {
		cards = append(cards, ServiceCard{Option: o, Image: serviceImages[o.Type]})
	}

	data := &HomePageData{
		BasePageData: types.BasePageData{Title: i18n.T(s.languageFromContext(r.Context()), "site.name")},
		Services:     cards,
		Portfolio:    portfolio,
	}

	if err := s.renderTemplate(w, r, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

// handlePostLanguage stores the chosen language and sends the visitor back to
// the page they were on.
func (s *Service) handlePostLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := i18n.Parse(r.FormValue("lang"))
	if !ok {
		lang = s.languageFromContext(r.Context()).Other()
	}

	session := s.session(r)
	session.Values[internal.SESSION_KEY_LANGUAGE] = lang.String()
	s.saveSession(w, r, session)

	http.Redirect(w, r, safeReturnPath(r.FormValue("return")), http.StatusSeeOther)
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) handleCSRFFailure(w http.ResponseWriter, r *http.Request) {
	s.logger.WithField("path", r.URL.Path).Warn("csrf validation failed")
	http.Error(w, "forbidden", http.StatusForbidden)
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
