package db

import "gorm.io/gorm"

const (
	// ServiceCategoryService 表示"我的服务"栏目条目。
	ServiceCategoryService = "service"
	// ServiceCategoryVenture 表示"个人项目"栏目条目。
	ServiceCategoryVenture = "venture"
)

// Service 定义前台服务与个人项目栏目的条目模型
// Category 取值 service 或 venture，SortOrder 值越小越靠前
type Service struct {
	gorm.Model
	Title       string `gorm:"size:160;not null"`
	Description string `gorm:"type:text"`
	IconURL     string `gorm:"size:255"`
	Category    string `gorm:"size:20;default:service"`
	SortOrder   int    `gorm:"default:0"`
}
