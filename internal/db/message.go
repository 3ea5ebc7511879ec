package db

import "gorm.io/gorm"

// Message 保存前台联系表单提交的站内消息
// IsRead 由后台收件箱切换，删除为显式操作
type Message struct {
	gorm.Model
	Name   string `gorm:"size:120;not null"`
	Email  string `gorm:"size:255;not null"`
	Body   string `gorm:"type:text;not null"`
	IsRead bool   `gorm:"default:false"`
}
