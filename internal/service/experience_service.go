package service

import (
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// ExperienceService wraps resume work experience CRUD operations.
type ExperienceService struct {
	db *gorm.DB
}

// NewExperienceService creates an ExperienceService instance.
func NewExperienceService(gdb *gorm.DB) *ExperienceService {
	return &ExperienceService{db: gdb}
}

// ExperienceInput 描述创建或更新工作经历时可设置的字段
// EndDate 为空表示在职
type ExperienceInput struct {
	JobTitle    string `validate:"required"`
	Company     string `validate:"required"`
	StartDate   string `validate:"required"`
	EndDate     string
	Description string `validate:"required,min=10"`
	Sort        *int
}

// List returns experience rows ordered by sort value.
func (s *ExperienceService) List() ([]db.Experience, error) {
	return listOrdered[db.Experience](s.db)
}

// Create validates and persists a new experience row.
func (s *ExperienceService) Create(input ExperienceInput) (*db.Experience, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sortValue, err := resolveSort[db.Experience](s.db, input.Sort)
	if err != nil {
		return nil, err
	}

	item := db.Experience{
		JobTitle:    strings.TrimSpace(input.JobTitle),
		Company:     strings.TrimSpace(input.Company),
		StartDate:   strings.TrimSpace(input.StartDate),
		EndDate:     strings.TrimSpace(input.EndDate),
		Description: strings.TrimSpace(input.Description),
		SortOrder:   sortValue,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}

	return &item, nil
}

// Update validates and saves changes to an existing experience row.
func (s *ExperienceService) Update(id uint, input ExperienceInput) (*db.Experience, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	item, err := findByID[db.Experience](s.db, id)
	if err != nil {
		return nil, err
	}

	item.JobTitle = strings.TrimSpace(input.JobTitle)
	item.Company = strings.TrimSpace(input.Company)
	item.StartDate = strings.TrimSpace(input.StartDate)
	item.EndDate = strings.TrimSpace(input.EndDate)
	item.Description = strings.TrimSpace(input.Description)
	if input.Sort != nil {
		item.SortOrder = *input.Sort
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}

	return item, nil
}

// Delete removes an experience row; a missing id reports ErrResourceNotFound.
func (s *ExperienceService) Delete(id uint) error {
	return deleteByID[db.Experience](s.db, id)
}

// Reorder rewrites the sort order following the given id sequence.
func (s *ExperienceService) Reorder(ids []uint) error {
	return reorder[db.Experience](s.db, ids)
}
