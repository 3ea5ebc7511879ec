package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type siteSettingsRequest struct {
	MaintenanceMode    bool   `json:"maintenanceMode"`
	SiteURL            string `json:"siteUrl"`
	MetaTitle          string `json:"metaTitle"`
	MetaDescription    string `json:"metaDescription"`
	MetaKeywords       string `json:"metaKeywords"`
	OGImageURL         string `json:"ogImageUrl"`
	ShowResumeDownload bool   `json:"showResumeDownload"`
	LogoURL            string `json:"logoUrl"`
	FooterText         string `json:"footerText"`
	ShowTestimonials   bool   `json:"showTestimonials"`
	ShowProjects       bool   `json:"showProjects"`
	ShowServices       bool   `json:"showServices"`
	ContactEmail       string `json:"contactEmail"`
	GoogleAnalyticsID  string `json:"googleAnalyticsId"`
	PrimaryColor       string `json:"primaryColor"`
}

func (r siteSettingsRequest) toInput() service.SiteSettingsInput {
	return service.SiteSettingsInput{
		MaintenanceMode:    r.MaintenanceMode,
		SiteURL:            r.SiteURL,
		MetaTitle:          r.MetaTitle,
		MetaDescription:    r.MetaDescription,
		MetaKeywords:       r.MetaKeywords,
		OGImageURL:         r.OGImageURL,
		ShowResumeDownload: r.ShowResumeDownload,
		LogoURL:            r.LogoURL,
		FooterText:         r.FooterText,
		ShowTestimonials:   r.ShowTestimonials,
		ShowProjects:       r.ShowProjects,
		ShowServices:       r.ShowServices,
		ContactEmail:       r.ContactEmail,
		GoogleAnalyticsID:  r.GoogleAnalyticsID,
		PrimaryColor:       r.PrimaryColor,
	}
}

func siteSettingsPayload(settings service.SiteSettings) gin.H {
	return gin.H{
		"maintenanceMode":    settings.MaintenanceMode,
		"siteUrl":            settings.SiteURL,
		"metaTitle":          settings.MetaTitle,
		"metaDescription":    settings.MetaDescription,
		"metaKeywords":       settings.MetaKeywords,
		"ogImageUrl":         settings.OGImageURL,
		"showResumeDownload": settings.ShowResumeDownload,
		"logoUrl":            settings.LogoURL,
		"footerText":         settings.FooterText,
		"showTestimonials":   settings.ShowTestimonials,
		"showProjects":       settings.ShowProjects,
		"showServices":       settings.ShowServices,
		"contactEmail":       settings.ContactEmail,
		"googleAnalyticsId":  settings.GoogleAnalyticsID,
		"primaryColor":       settings.PrimaryColor,
	}
}

// ShowSiteSettings 渲染站点设置页面
func (a *API) ShowSiteSettings(c *gin.Context) {
	settings, err := a.settings.GetSettings()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "settings.html", gin.H{
			"title": "站点设置",
			"error": "加载站点设置失败",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "settings.html", gin.H{
		"title":    "站点设置",
		"settings": settings,
	})
}

// GetSiteSettings 返回当前站点设置
func (a *API) GetSiteSettings(c *gin.Context) {
	settings, err := a.settings.GetSettings()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取站点设置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": siteSettingsPayload(settings)})
}

// UpdateSiteSettings 校验并保存站点设置
func (a *API) UpdateSiteSettings(c *gin.Context) {
	var req siteSettingsRequest
	if !bindJSON(c, &req, "请填写完整的站点设置") {
		return
	}

	settings, err := a.settings.UpdateSettings(req.toInput())
	if err != nil {
		respondServiceError(c, err, "保存站点设置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "站点设置已保存",
		"settings": siteSettingsPayload(settings),
	})
}
