package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// ProfileService maintains the single profile row backing the sidebar and
// about sections.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a ProfileService instance.
func NewProfileService(gdb *gorm.DB) *ProfileService {
	return &ProfileService{db: gdb}
}

// ProfileInput 描述更新个人信息时可设置的字段
type ProfileInput struct {
	Name            string `validate:"required"`
	Title           string `validate:"required"`
	Email           string `validate:"required,email"`
	Phone           string `validate:"required"`
	AltPhone        string
	Location        string `validate:"required"`
	Bio             string `validate:"required,min=10"`
	AvatarURL       string
	ProfileVideoURL string
	GitHub          string
	LinkedIn        string
	WhatsApp        string
	CVURL           string
}

// Get returns the profile singleton; a missing row yields the zero value.
func (s *ProfileService) Get() (db.Profile, error) {
	var profile db.Profile
	if err := s.db.Order("id ASC").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db.Profile{}, nil
		}
		return db.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

// Update validates and upserts the profile singleton.
func (s *ProfileService) Update(input ProfileInput) (*db.Profile, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var profile db.Profile
	if err := s.db.Order("id ASC").First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("load profile: %w", err)
		}
	}

	profile.Name = strings.TrimSpace(input.Name)
	profile.Title = strings.TrimSpace(input.Title)
	profile.Email = strings.TrimSpace(input.Email)
	profile.Phone = strings.TrimSpace(input.Phone)
	profile.AltPhone = strings.TrimSpace(input.AltPhone)
	profile.Location = strings.TrimSpace(input.Location)
	profile.Bio = strings.TrimSpace(input.Bio)
	profile.AvatarURL = strings.TrimSpace(input.AvatarURL)
	profile.ProfileVideoURL = strings.TrimSpace(input.ProfileVideoURL)
	profile.GitHub = strings.TrimSpace(input.GitHub)
	profile.LinkedIn = strings.TrimSpace(input.LinkedIn)
	profile.WhatsApp = strings.TrimSpace(input.WhatsApp)
	profile.CVURL = strings.TrimSpace(input.CVURL)

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	return &profile, nil
}

// HealthScore 计算资料完整度：七个关键字段中非空字段的占比，四舍五入为百分数。
func HealthScore(profile db.Profile) int {
	fields := []string{
		profile.AvatarURL,
		profile.Bio,
		profile.GitHub,
		profile.LinkedIn,
		profile.CVURL,
		profile.Title,
		profile.Location,
	}

	completed := 0
	for _, value := range fields {
		if strings.TrimSpace(value) != "" {
			completed++
		}
	}

	return int(math.Round(float64(completed) / float64(len(fields)) * 100))
}
