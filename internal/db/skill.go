package db

import "gorm.io/gorm"

// Skill 定义技能模型，Percentage 为 0-100 的熟练度
// Category 用于前台按分类分组展示
type Skill struct {
	gorm.Model
	Name       string `gorm:"size:120;not null"`
	Percentage int    `gorm:"default:0"`
	Category   string `gorm:"size:80;not null"`
	IconURL    string `gorm:"size:255"`
	SortOrder  int    `gorm:"default:0"`
}
