package service

import (
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// ProjectService wraps portfolio project CRUD operations.
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService creates a ProjectService instance.
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// ProjectInput 描述创建或更新项目时可设置的字段
// Sort/IsActive 使用指针判断是否显式传入
type ProjectInput struct {
	Title       string `validate:"required"`
	Category    string `validate:"required"`
	Categories  []string
	Description string `validate:"required,min=10"`
	ImageURL    string `validate:"required"`
	WebpURL     string
	DemoURL     string
	GitHubURL   string
	Sort        *int
	IsActive    *bool
}

// List returns projects ordered by sort value; activeOnly filters the
// public facing set.
func (s *ProjectService) List(activeOnly bool) ([]db.Project, error) {
	query := s.db.Model(&db.Project{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var items []db.Project
	if err := query.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return items, nil
}

// Get loads a single project by id.
func (s *ProjectService) Get(id uint) (*db.Project, error) {
	return findByID[db.Project](s.db, id)
}

// Create validates and persists a new project, appending to the sort order
// when none is given.
func (s *ProjectService) Create(input ProjectInput) (*db.Project, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sortValue, err := resolveSort[db.Project](s.db, input.Sort)
	if err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	project := db.Project{
		Title:       strings.TrimSpace(input.Title),
		Category:    strings.TrimSpace(input.Category),
		Categories:  normalizeCategories(input.Categories, input.Category),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		WebpURL:     strings.TrimSpace(input.WebpURL),
		DemoURL:     strings.TrimSpace(input.DemoURL),
		GitHubURL:   strings.TrimSpace(input.GitHubURL),
		SortOrder:   sortValue,
		IsActive:    active,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return &project, nil
}

// Update validates and saves changes to an existing project.
func (s *ProjectService) Update(id uint, input ProjectInput) (*db.Project, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	project, err := findByID[db.Project](s.db, id)
	if err != nil {
		return nil, err
	}

	project.Title = strings.TrimSpace(input.Title)
	project.Category = strings.TrimSpace(input.Category)
	project.Categories = normalizeCategories(input.Categories, input.Category)
	project.Description = strings.TrimSpace(input.Description)
	project.ImageURL = strings.TrimSpace(input.ImageURL)
	project.WebpURL = strings.TrimSpace(input.WebpURL)
	project.DemoURL = strings.TrimSpace(input.DemoURL)
	project.GitHubURL = strings.TrimSpace(input.GitHubURL)

	if input.Sort != nil {
		project.SortOrder = *input.Sort
	}
	if input.IsActive != nil {
		project.IsActive = *input.IsActive
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	return project, nil
}

// Delete removes a project; a missing id reports ErrResourceNotFound.
func (s *ProjectService) Delete(id uint) error {
	return deleteByID[db.Project](s.db, id)
}

// Reorder rewrites the sort order following the given id sequence.
func (s *ProjectService) Reorder(ids []uint) error {
	return reorder[db.Project](s.db, ids)
}

// normalizeCategories 去重并保证主分类始终包含在分类列表中
func normalizeCategories(categories []string, primary string) []string {
	out := make([]string, 0, len(categories)+1)
	seen := make(map[string]struct{}, len(categories)+1)

	appendOne := func(raw string) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return
		}
		if _, ok := seen[trimmed]; ok {
			return
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	appendOne(primary)
	for _, category := range categories {
		appendOne(category)
	}

	return out
}
