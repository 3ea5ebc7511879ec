package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrWrongPassword 在当前密码校验失败时返回
	ErrWrongPassword = errors.New("current password is incorrect")
	// ErrPasswordMismatch 在两次输入的新密码不一致时返回
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrUsernameTaken 在目标用户名已被占用时返回
	ErrUsernameTaken = errors.New("username already taken")
)

// AccountService manages the admin account credentials.
type AccountService struct {
	db *gorm.DB
}

// NewAccountService creates an AccountService instance.
func NewAccountService(gdb *gorm.DB) *AccountService {
	return &AccountService{db: gdb}
}

// PasswordChangeInput 描述修改密码所需的字段
type PasswordChangeInput struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required"`
}

// UsernameChangeInput 描述修改用户名所需的字段，需携带当前密码确认
type UsernameChangeInput struct {
	NewUsername     string `validate:"required,min=3"`
	CurrentPassword string `validate:"required"`
}

// ChangePassword verifies the current password and stores a bcrypt hash of
// the new one.
func (s *AccountService) ChangePassword(userID uint, input PasswordChangeInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	if input.NewPassword != input.ConfirmPassword {
		return ErrPasswordMismatch
	}

	user, err := findByID[db.User](s.db, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.Password = string(hashed)
	if err := s.db.Save(user).Error; err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	return nil
}

// ChangeUsername verifies the current password before renaming the account.
func (s *AccountService) ChangeUsername(userID uint, input UsernameChangeInput) (*db.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := findByID[db.User](s.db, userID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return nil, ErrWrongPassword
	}

	newName := strings.TrimSpace(input.NewUsername)

	var existing db.User
	if err := s.db.Where("username = ? AND id <> ?", newName, userID).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	user.Username = newName
	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	return user, nil
}
