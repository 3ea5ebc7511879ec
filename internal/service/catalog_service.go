package service

import (
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// CatalogService manages the service and venture entries shown in the
// "What I Do" and "Personal Ventures" sections.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a CatalogService instance.
func NewCatalogService(gdb *gorm.DB) *CatalogService {
	return &CatalogService{db: gdb}
}

// ServiceInput 描述创建或更新服务条目时可设置的字段
type ServiceInput struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	IconURL     string `validate:"required"`
	Category    string `validate:"required,oneof=service venture"`
	Sort        *int
}

// List returns catalog entries ordered by sort value. category 为空时返回全部。
func (s *CatalogService) List(category string) ([]db.Service, error) {
	query := s.db.Model(&db.Service{})
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		query = query.Where("category = ?", trimmed)
	}

	var items []db.Service
	if err := query.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return items, nil
}

// Create validates and persists a new catalog entry.
func (s *CatalogService) Create(input ServiceInput) (*db.Service, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sortValue, err := resolveSort[db.Service](s.db, input.Sort)
	if err != nil {
		return nil, err
	}

	item := db.Service{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		IconURL:     strings.TrimSpace(input.IconURL),
		Category:    strings.TrimSpace(input.Category),
		SortOrder:   sortValue,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	return &item, nil
}

// Update validates and saves changes to an existing catalog entry.
func (s *CatalogService) Update(id uint, input ServiceInput) (*db.Service, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	item, err := findByID[db.Service](s.db, id)
	if err != nil {
		return nil, err
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.IconURL = strings.TrimSpace(input.IconURL)
	item.Category = strings.TrimSpace(input.Category)
	if input.Sort != nil {
		item.SortOrder = *input.Sort
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	return item, nil
}

// Delete removes a catalog entry; a missing id reports ErrResourceNotFound.
func (s *CatalogService) Delete(id uint) error {
	return deleteByID[db.Service](s.db, id)
}

// Reorder rewrites the sort order following the given id sequence.
func (s *CatalogService) Reorder(ids []uint) error {
	return reorder[db.Service](s.db, ids)
}
