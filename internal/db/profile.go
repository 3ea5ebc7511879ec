package db

import "gorm.io/gorm"

// Profile 保存前台侧边栏与关于页展示的个人信息
// 全库只维护一条记录，读取时取第一行
type Profile struct {
	gorm.Model
	Name            string `gorm:"size:120;not null"`
	Title           string `gorm:"size:120"`
	Email           string `gorm:"size:255"`
	Phone           string `gorm:"size:50"`
	AltPhone        string `gorm:"size:50"`
	Location        string `gorm:"size:120"`
	Bio             string `gorm:"type:text"`
	AvatarURL       string `gorm:"size:255"`
	ProfileVideoURL string `gorm:"size:255"`
	GitHub          string `gorm:"size:255"`
	LinkedIn        string `gorm:"size:255"`
	WhatsApp        string `gorm:"size:255"`
	CVURL           string `gorm:"size:255"`
}

// TableName 返回自定义表名，保持单数语义
func (Profile) TableName() string {
	return "profiles"
}
