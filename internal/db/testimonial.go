package db

import "gorm.io/gorm"

// Testimonial 定义客户评价模型
// IsActive 控制是否在前台轮播中展示
type Testimonial struct {
	gorm.Model
	Name        string `gorm:"size:120;not null"`
	Role        string `gorm:"size:120;not null"`
	Company     string `gorm:"size:160"`
	Text        string `gorm:"type:text;not null"`
	LinkedInURL string `gorm:"size:255"`
	AvatarURL   string `gorm:"size:255"`
	IsActive    bool   `gorm:"default:true"`
	SortOrder   int    `gorm:"default:0"`
}
