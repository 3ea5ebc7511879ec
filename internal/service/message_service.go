package service

import (
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// inboxLimit 限制后台收件箱单次返回的最大条数
const inboxLimit = 50

// MessageService handles contact intake and the admin inbox.
type MessageService struct {
	db *gorm.DB
}

// NewMessageService creates a MessageService instance.
func NewMessageService(gdb *gorm.DB) *MessageService {
	return &MessageService{db: gdb}
}

// ContactInput 描述前台联系表单提交的字段
// 校验顺序即字段声明顺序：姓名长度优先于邮箱格式
type ContactInput struct {
	Fullname string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Message  string `validate:"required,min=10"`
}

// Submit validates a public contact submission and stores it unread.
func (s *MessageService) Submit(input ContactInput) (*db.Message, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	message := db.Message{
		Name:  strings.TrimSpace(input.Fullname),
		Email: strings.TrimSpace(input.Email),
		Body:  strings.TrimSpace(input.Message),
	}

	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	return &message, nil
}

// List returns the newest messages first, capped at the inbox limit.
func (s *MessageService) List() ([]db.Message, error) {
	var items []db.Message
	if err := s.db.Order("created_at DESC, id DESC").Limit(inboxLimit).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return items, nil
}

// UnreadCount counts messages not yet marked as read.
func (s *MessageService) UnreadCount() (int64, error) {
	var count int64
	if err := s.db.Model(&db.Message{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return count, nil
}

// SetRead toggles the read flag of one message.
func (s *MessageService) SetRead(id uint, read bool) (*db.Message, error) {
	message, err := findByID[db.Message](s.db, id)
	if err != nil {
		return nil, err
	}

	message.IsRead = read
	if err := s.db.Save(message).Error; err != nil {
		return nil, fmt.Errorf("update message: %w", err)
	}

	return message, nil
}

// Delete removes a message; a missing id reports ErrResourceNotFound.
func (s *MessageService) Delete(id uint) error {
	return deleteByID[db.Message](s.db, id)
}
