package service

import (
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// EducationService wraps resume education CRUD operations.
type EducationService struct {
	db *gorm.DB
}

// NewEducationService creates an EducationService instance.
func NewEducationService(gdb *gorm.DB) *EducationService {
	return &EducationService{db: gdb}
}

// EducationInput 描述创建或更新教育经历时可设置的字段
type EducationInput struct {
	Institution string `validate:"required"`
	Degree      string `validate:"required"`
	Field       string `validate:"required"`
	StartDate   string `validate:"required"`
	EndDate     string `validate:"required"`
	Sort        *int
}

// List returns education rows ordered by sort value.
func (s *EducationService) List() ([]db.Education, error) {
	return listOrdered[db.Education](s.db)
}

// Create validates and persists a new education row.
func (s *EducationService) Create(input EducationInput) (*db.Education, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sortValue, err := resolveSort[db.Education](s.db, input.Sort)
	if err != nil {
		return nil, err
	}

	item := db.Education{
		Institution: strings.TrimSpace(input.Institution),
		Degree:      strings.TrimSpace(input.Degree),
		Field:       strings.TrimSpace(input.Field),
		StartDate:   strings.TrimSpace(input.StartDate),
		EndDate:     strings.TrimSpace(input.EndDate),
		SortOrder:   sortValue,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create education: %w", err)
	}

	return &item, nil
}

// Update validates and saves changes to an existing education row.
func (s *EducationService) Update(id uint, input EducationInput) (*db.Education, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	item, err := findByID[db.Education](s.db, id)
	if err != nil {
		return nil, err
	}

	item.Institution = strings.TrimSpace(input.Institution)
	item.Degree = strings.TrimSpace(input.Degree)
	item.Field = strings.TrimSpace(input.Field)
	item.StartDate = strings.TrimSpace(input.StartDate)
	item.EndDate = strings.TrimSpace(input.EndDate)
	if input.Sort != nil {
		item.SortOrder = *input.Sort
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update education: %w", err)
	}

	return item, nil
}

// Delete removes an education row; a missing id reports ErrResourceNotFound.
func (s *EducationService) Delete(id uint) error {
	return deleteByID[db.Education](s.db, id)
}

// Reorder rewrites the sort order following the given id sequence.
func (s *EducationService) Reorder(ids []uint) error {
	return reorder[db.Education](s.db, ids)
}
