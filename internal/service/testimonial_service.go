package service

import (
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// TestimonialService wraps testimonial CRUD operations.
type TestimonialService struct {
	db *gorm.DB
}

// NewTestimonialService creates a TestimonialService instance.
func NewTestimonialService(gdb *gorm.DB) *TestimonialService {
	return &TestimonialService{db: gdb}
}

// TestimonialInput 描述创建或更新客户评价时可设置的字段
type TestimonialInput struct {
	Name        string `validate:"required"`
	Role        string `validate:"required"`
	Company     string
	Text        string `validate:"required,min=10"`
	LinkedInURL string
	AvatarURL   string
	Sort        *int
	IsActive    *bool
}

// List returns testimonials ordered by sort value; activeOnly filters the
// public facing set.
func (s *TestimonialService) List(activeOnly bool) ([]db.Testimonial, error) {
	query := s.db.Model(&db.Testimonial{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var items []db.Testimonial
	if err := query.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return items, nil
}

// Create validates and persists a new testimonial.
func (s *TestimonialService) Create(input TestimonialInput) (*db.Testimonial, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sortValue, err := resolveSort[db.Testimonial](s.db, input.Sort)
	if err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	item := db.Testimonial{
		Name:        strings.TrimSpace(input.Name),
		Role:        strings.TrimSpace(input.Role),
		Company:     strings.TrimSpace(input.Company),
		Text:        strings.TrimSpace(input.Text),
		LinkedInURL: strings.TrimSpace(input.LinkedInURL),
		AvatarURL:   strings.TrimSpace(input.AvatarURL),
		SortOrder:   sortValue,
		IsActive:    active,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}

	return &item, nil
}

// Update validates and saves changes to an existing testimonial.
func (s *TestimonialService) Update(id uint, input TestimonialInput) (*db.Testimonial, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	item, err := findByID[db.Testimonial](s.db, id)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Role = strings.TrimSpace(input.Role)
	item.Company = strings.TrimSpace(input.Company)
	item.Text = strings.TrimSpace(input.Text)
	item.LinkedInURL = strings.TrimSpace(input.LinkedInURL)
	item.AvatarURL = strings.TrimSpace(input.AvatarURL)
	if input.Sort != nil {
		item.SortOrder = *input.Sort
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}

	return item, nil
}

// Delete removes a testimonial; a missing id reports ErrResourceNotFound.
func (s *TestimonialService) Delete(id uint) error {
	return deleteByID[db.Testimonial](s.db, id)
}

// Reorder rewrites the sort order following the given id sequence.
func (s *TestimonialService) Reorder(ids []uint) error {
	return reorder[db.Testimonial](s.db, ids)
}
