package handler

import (
	"strings"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	projects     *service.ProjectService
	catalog      *service.CatalogService
	experience   *service.ExperienceService
	education    *service.EducationService
	skills       *service.SkillService
	testimonials *service.TestimonialService
	clients      *service.ClientService
	messages     *service.MessageService
	profiles     *service.ProfileService
	settings     *service.SiteSettingService
	dashboard    *service.DashboardService
	accounts     *service.AccountService
	uploadDir    string
	uploadURL    string
}

type siteViewModel struct {
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	OGImageURL      string
	LogoURL         string
	Footer          string
	AnalyticsID     string
	PrimaryColor    string
	SiteURL         string
}

const siteSettingsContextKey = "__site_settings"

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:           db,
		projects:     service.NewProjectService(db),
		catalog:      service.NewCatalogService(db),
		experience:   service.NewExperienceService(db),
		education:    service.NewEducationService(db),
		skills:       service.NewSkillService(db),
		testimonials: service.NewTestimonialService(db),
		clients:      service.NewClientService(db),
		messages:     service.NewMessageService(db),
		profiles:     service.NewProfileService(db),
		settings:     service.NewSiteSettingService(db),
		dashboard:    service.NewDashboardService(db),
		accounts:     service.NewAccountService(db),
		uploadDir:    uploadDir,
		uploadURL:    uploadURL,
	}
}

func (a *API) siteView(c *gin.Context) siteViewModel {
	if cached, exists := c.Get(siteSettingsContextKey); exists {
		if view, ok := cached.(siteViewModel); ok {
			return view
		}
	}

	settings, err := a.settings.GetSettings()
	if err != nil {
		c.Error(err)
	}

	view := siteViewModel{
		MetaTitle:       strings.TrimSpace(settings.MetaTitle),
		MetaDescription: strings.TrimSpace(settings.MetaDescription),
		MetaKeywords:    strings.TrimSpace(settings.MetaKeywords),
		OGImageURL:      strings.TrimSpace(settings.OGImageURL),
		LogoURL:         strings.TrimSpace(settings.LogoURL),
		Footer:          strings.TrimSpace(settings.FooterText),
		AnalyticsID:     strings.TrimSpace(settings.GoogleAnalyticsID),
		PrimaryColor:    strings.TrimSpace(settings.PrimaryColor),
		SiteURL:         strings.TrimSpace(settings.SiteURL),
	}
	if view.MetaTitle == "" {
		view.MetaTitle = "DevFolio"
	}
	if view.PrimaryColor == "" {
		view.PrimaryColor = "#0ea5e9"
	}

	c.Set(siteSettingsContextKey, view)
	return view
}

// renderHTML 在向模板渲染时自动附加站点设置中的 SEO 与品牌信息。
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	view := a.siteView(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = gin.H{
			"metaTitle":       view.MetaTitle,
			"metaDescription": view.MetaDescription,
			"metaKeywords":    view.MetaKeywords,
			"ogImageUrl":      view.OGImageURL,
			"logoUrl":         view.LogoURL,
			"footer":          view.Footer,
			"analyticsId":     view.AnalyticsID,
			"primaryColor":    view.PrimaryColor,
			"siteUrl":         view.SiteURL,
		}
	}

	c.HTML(status, template, payload)
}
