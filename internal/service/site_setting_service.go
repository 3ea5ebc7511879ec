package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrUnknownSettingKey 表示开关操作指向了不存在或不可切换的设置项。
var ErrUnknownSettingKey = errors.New("unknown setting key")

// SiteSettings 描述后台可配置的站点信息。
// 布尔开关默认放行：缺失的设置行不会隐藏任何前台栏目。
type SiteSettings struct {
	MaintenanceMode    bool
	SiteURL            string
	MetaTitle          string
	MetaDescription    string
	MetaKeywords       string
	OGImageURL         string
	ShowResumeDownload bool
	LogoURL            string
	FooterText         string
	ShowTestimonials   bool
	ShowProjects       bool
	ShowServices       bool
	ContactEmail       string
	GoogleAnalyticsID  string
	PrimaryColor       string
}

// SiteSettingsInput 用于更新站点设置。
type SiteSettingsInput struct {
	MaintenanceMode    bool
	SiteURL            string
	MetaTitle          string `validate:"required"`
	MetaDescription    string `validate:"required"`
	MetaKeywords       string `validate:"required"`
	OGImageURL         string
	ShowResumeDownload bool
	LogoURL            string
	FooterText         string `validate:"required"`
	ShowTestimonials   bool
	ShowProjects       bool
	ShowServices       bool
	ContactEmail       string `validate:"required,email"`
	GoogleAnalyticsID  string
	PrimaryColor       string `validate:"required,hexcolor"`
}

// SiteSettingService 提供站点设置的读取、更新与开关能力。
type SiteSettingService struct {
	db *gorm.DB
}

// NewSiteSettingService 构造 SiteSettingService。
func NewSiteSettingService(gdb *gorm.DB) *SiteSettingService {
	return &SiteSettingService{db: gdb}
}

var settingKeys = []string{
	db.SettingKeyMaintenanceMode,
	db.SettingKeySiteURL,
	db.SettingKeyMetaTitle,
	db.SettingKeyMetaDescription,
	db.SettingKeyMetaKeywords,
	db.SettingKeyOGImageURL,
	db.SettingKeyShowResumeDownload,
	db.SettingKeyLogoURL,
	db.SettingKeyFooterText,
	db.SettingKeyShowTestimonials,
	db.SettingKeyShowProjects,
	db.SettingKeyShowServices,
	db.SettingKeyContactEmail,
	db.SettingKeyGoogleAnalyticsID,
	db.SettingKeyPrimaryColor,
}

// toggleableKeys 列出仪表盘控制中心可直接切换的布尔设置。
var toggleableKeys = map[string]struct{}{
	db.SettingKeyMaintenanceMode:    {},
	db.SettingKeyShowResumeDownload: {},
	db.SettingKeyShowTestimonials:   {},
	db.SettingKeyShowProjects:       {},
	db.SettingKeyShowServices:       {},
}

// GetSettings 读取站点设置，如未设置将返回默认值。
func (s *SiteSettingService) GetSettings() (SiteSettings, error) {
	result := defaultSiteSettings()

	var records []db.SiteSetting
	if err := s.db.Where("key IN ?", settingKeys).Find(&records).Error; err != nil {
		return result, fmt.Errorf("load site settings: %w", err)
	}

	for _, record := range records {
		value := record.Value
		switch record.Key {
		case db.SettingKeyMaintenanceMode:
			result.MaintenanceMode = parseBool(value, result.MaintenanceMode)
		case db.SettingKeySiteURL:
			result.SiteURL = value
		case db.SettingKeyMetaTitle:
			if strings.TrimSpace(value) != "" {
				result.MetaTitle = value
			}
		case db.SettingKeyMetaDescription:
			result.MetaDescription = value
		case db.SettingKeyMetaKeywords:
			result.MetaKeywords = value
		case db.SettingKeyOGImageURL:
			result.OGImageURL = value
		case db.SettingKeyShowResumeDownload:
			result.ShowResumeDownload = parseBool(value, result.ShowResumeDownload)
		case db.SettingKeyLogoURL:
			result.LogoURL = value
		case db.SettingKeyFooterText:
			if strings.TrimSpace(value) != "" {
				result.FooterText = value
			}
		case db.SettingKeyShowTestimonials:
			result.ShowTestimonials = parseBool(value, result.ShowTestimonials)
		case db.SettingKeyShowProjects:
			result.ShowProjects = parseBool(value, result.ShowProjects)
		case db.SettingKeyShowServices:
			result.ShowServices = parseBool(value, result.ShowServices)
		case db.SettingKeyContactEmail:
			result.ContactEmail = value
		case db.SettingKeyGoogleAnalyticsID:
			result.GoogleAnalyticsID = value
		case db.SettingKeyPrimaryColor:
			if strings.TrimSpace(value) != "" {
				result.PrimaryColor = value
			}
		}
	}

	return result, nil
}

// UpdateSettings 校验后在单个事务中逐键 upsert 全部设置。
func (s *SiteSettingService) UpdateSettings(input SiteSettingsInput) (SiteSettings, error) {
	if err := validateInput(input); err != nil {
		return SiteSettings{}, err
	}

	sanitized := SiteSettings{
		MaintenanceMode:    input.MaintenanceMode,
		SiteURL:            strings.TrimSpace(input.SiteURL),
		MetaTitle:          strings.TrimSpace(input.MetaTitle),
		MetaDescription:    strings.TrimSpace(input.MetaDescription),
		MetaKeywords:       strings.TrimSpace(input.MetaKeywords),
		OGImageURL:         strings.TrimSpace(input.OGImageURL),
		ShowResumeDownload: input.ShowResumeDownload,
		LogoURL:            strings.TrimSpace(input.LogoURL),
		FooterText:         strings.TrimSpace(input.FooterText),
		ShowTestimonials:   input.ShowTestimonials,
		ShowProjects:       input.ShowProjects,
		ShowServices:       input.ShowServices,
		ContactEmail:       strings.TrimSpace(input.ContactEmail),
		GoogleAnalyticsID:  strings.TrimSpace(input.GoogleAnalyticsID),
		PrimaryColor:       strings.TrimSpace(input.PrimaryColor),
	}

	values := map[string]string{
		db.SettingKeyMaintenanceMode:    strconv.FormatBool(sanitized.MaintenanceMode),
		db.SettingKeySiteURL:            sanitized.SiteURL,
		db.SettingKeyMetaTitle:          sanitized.MetaTitle,
		db.SettingKeyMetaDescription:    sanitized.MetaDescription,
		db.SettingKeyMetaKeywords:       sanitized.MetaKeywords,
		db.SettingKeyOGImageURL:         sanitized.OGImageURL,
		db.SettingKeyShowResumeDownload: strconv.FormatBool(sanitized.ShowResumeDownload),
		db.SettingKeyLogoURL:            sanitized.LogoURL,
		db.SettingKeyFooterText:         sanitized.FooterText,
		db.SettingKeyShowTestimonials:   strconv.FormatBool(sanitized.ShowTestimonials),
		db.SettingKeyShowProjects:       strconv.FormatBool(sanitized.ShowProjects),
		db.SettingKeyShowServices:       strconv.FormatBool(sanitized.ShowServices),
		db.SettingKeyContactEmail:       sanitized.ContactEmail,
		db.SettingKeyGoogleAnalyticsID:  sanitized.GoogleAnalyticsID,
		db.SettingKeyPrimaryColor:       sanitized.PrimaryColor,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, key := range settingKeys {
			if err := upsertSetting(tx, key, values[key]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return SiteSettings{}, fmt.Errorf("update site settings: %w", err)
	}

	return sanitized, nil
}

// Toggle 切换仪表盘控制中心暴露的布尔设置。
func (s *SiteSettingService) Toggle(key string, value bool) error {
	if _, ok := toggleableKeys[key]; !ok {
		return ErrUnknownSettingKey
	}

	return upsertSetting(s.db, key, strconv.FormatBool(value))
}

func upsertSetting(tx *gorm.DB, key, value string) error {
	setting := db.SiteSetting{Key: key, Value: value}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}

func defaultSiteSettings() SiteSettings {
	return SiteSettings{
		MetaTitle:          "DevFolio",
		FooterText:         "Built with care.",
		ShowResumeDownload: true,
		ShowTestimonials:   true,
		ShowProjects:       true,
		ShowServices:       true,
		PrimaryColor:       "#0ea5e9",
	}
}

func parseBool(value string, fallback bool) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}
