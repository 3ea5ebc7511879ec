package service

import (
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// SkillService wraps skill CRUD operations.
type SkillService struct {
	db *gorm.DB
}

// NewSkillService creates a SkillService instance.
func NewSkillService(gdb *gorm.DB) *SkillService {
	return &SkillService{db: gdb}
}

// SkillInput 描述创建或更新技能时可设置的字段
// Percentage 为 0-100 的熟练度
type SkillInput struct {
	Name       string `validate:"required"`
	Percentage int    `validate:"min=0,max=100"`
	Category   string `validate:"required"`
	IconURL    string
	Sort       *int
}

// List returns skills ordered by sort value.
func (s *SkillService) List() ([]db.Skill, error) {
	return listOrdered[db.Skill](s.db)
}

// ListByCategory groups ordered skills by category, preserving the order
// in which categories first appear.
func (s *SkillService) ListByCategory() ([]string, map[string][]db.Skill, error) {
	skills, err := s.List()
	if err != nil {
		return nil, nil, err
	}

	categories := make([]string, 0, 4)
	grouped := make(map[string][]db.Skill, 4)
	for _, skill := range skills {
		if _, ok := grouped[skill.Category]; !ok {
			categories = append(categories, skill.Category)
		}
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}

	return categories, grouped, nil
}

// Create validates and persists a new skill.
func (s *SkillService) Create(input SkillInput) (*db.Skill, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sortValue, err := resolveSort[db.Skill](s.db, input.Sort)
	if err != nil {
		return nil, err
	}

	skill := db.Skill{
		Name:       strings.TrimSpace(input.Name),
		Percentage: input.Percentage,
		Category:   strings.TrimSpace(input.Category),
		IconURL:    strings.TrimSpace(input.IconURL),
		SortOrder:  sortValue,
	}

	if err := s.db.Create(&skill).Error; err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}

	return &skill, nil
}

// Update validates and saves changes to an existing skill.
func (s *SkillService) Update(id uint, input SkillInput) (*db.Skill, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	skill, err := findByID[db.Skill](s.db, id)
	if err != nil {
		return nil, err
	}

	skill.Name = strings.TrimSpace(input.Name)
	skill.Percentage = input.Percentage
	skill.Category = strings.TrimSpace(input.Category)
	skill.IconURL = strings.TrimSpace(input.IconURL)
	if input.Sort != nil {
		skill.SortOrder = *input.Sort
	}

	if err := s.db.Save(skill).Error; err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}

	return skill, nil
}

// Delete removes a skill; a missing id reports ErrResourceNotFound.
func (s *SkillService) Delete(id uint) error {
	return deleteByID[db.Skill](s.db, id)
}

// Reorder rewrites the sort order following the given id sequence.
func (s *SkillService) Reorder(ids []uint) error {
	return reorder[db.Skill](s.db, ids)
}
