package db

import "gorm.io/gorm"

// Experience 定义简历页的工作经历模型
// EndDate 为空表示在职，SortOrder 值越小越靠前
type Experience struct {
	gorm.Model
	JobTitle    string `gorm:"size:160;not null"`
	Company     string `gorm:"size:160;not null"`
	StartDate   string `gorm:"size:40;not null"`
	EndDate     string `gorm:"size:40"`
	Description string `gorm:"type:text"`
	SortOrder   int    `gorm:"default:0"`
}
