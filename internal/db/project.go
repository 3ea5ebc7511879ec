package db

import "gorm.io/gorm"

// Project 定义作品集项目模型
// Categories 以 JSON 序列化存储，Category 为主分类
// IsActive 控制是否在前台展示，SortOrder 值越小越靠前
type Project struct {
	gorm.Model
	Title       string   `gorm:"size:160;not null"`
	Category    string   `gorm:"size:80;not null"`
	Categories  []string `gorm:"serializer:json"`
	Description string   `gorm:"type:text"`
	ImageURL    string   `gorm:"size:255"`
	WebpURL     string   `gorm:"size:255"`
	DemoURL     string   `gorm:"size:255"`
	GitHubURL   string   `gorm:"size:255"`
	SortOrder   int      `gorm:"default:0"`
	IsActive    bool     `gorm:"default:true"`
}
