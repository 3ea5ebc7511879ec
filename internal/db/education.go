package db

import "gorm.io/gorm"

// Education 定义简历页的教育经历模型
type Education struct {
	gorm.Model
	Institution string `gorm:"size:160;not null"`
	Degree      string `gorm:"size:120;not null"`
	Field       string `gorm:"size:120;not null"`
	StartDate   string `gorm:"size:40;not null"`
	EndDate     string `gorm:"size:40;not null"`
	SortOrder   int    `gorm:"default:0"`
}
