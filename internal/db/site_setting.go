package db

import "gorm.io/gorm"

// SiteSetting 存储后台可配置的站点级键值对。
type SiteSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (SiteSetting) TableName() string {
	return "site_settings"
}

const (
	// SettingKeyMaintenanceMode 表示维护模式开关。
	SettingKeyMaintenanceMode = "maintenance_mode"
	// SettingKeySiteURL 表示站点对外地址。
	SettingKeySiteURL = "site_url"
	// SettingKeyMetaTitle 表示 SEO 标题。
	SettingKeyMetaTitle = "meta_title"
	// SettingKeyMetaDescription 表示 SEO 描述。
	SettingKeyMetaDescription = "meta_description"
	// SettingKeyMetaKeywords 表示 SEO 关键词。
	SettingKeyMetaKeywords = "meta_keywords"
	// SettingKeyOGImageURL 表示社交分享图链接。
	SettingKeyOGImageURL = "og_image_url"
	// SettingKeyShowResumeDownload 表示是否展示简历下载按钮。
	SettingKeyShowResumeDownload = "show_resume_download"
	// SettingKeyLogoURL 表示站点 Logo 链接。
	SettingKeyLogoURL = "logo_url"
	// SettingKeyFooterText 表示页脚文案。
	SettingKeyFooterText = "footer_text"
	// SettingKeyShowTestimonials 表示是否展示客户评价栏目。
	SettingKeyShowTestimonials = "show_testimonials"
	// SettingKeyShowProjects 表示是否展示作品集栏目。
	SettingKeyShowProjects = "show_projects"
	// SettingKeyShowServices 表示是否展示服务栏目。
	SettingKeyShowServices = "show_services"
	// SettingKeyContactEmail 表示联系邮箱。
	SettingKeyContactEmail = "contact_email"
	// SettingKeyGoogleAnalyticsID 表示 GA 统计 ID。
	SettingKeyGoogleAnalyticsID = "google_analytics_id"
	// SettingKeyPrimaryColor 表示主题主色。
	SettingKeyPrimaryColor = "primary_color"
)
