package db

import "gorm.io/gorm"

// Client 定义合作客户 Logo 墙模型
type Client struct {
	gorm.Model
	Name      string `gorm:"size:160;not null"`
	LogoURL   string `gorm:"size:255;not null"`
	SortOrder int    `gorm:"default:0"`
	IsActive  bool   `gorm:"default:true"`
}
