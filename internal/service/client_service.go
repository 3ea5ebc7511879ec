package service

import (
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// ClientService wraps client logo wall CRUD operations.
type ClientService struct {
	db *gorm.DB
}

// NewClientService creates a ClientService instance.
func NewClientService(gdb *gorm.DB) *ClientService {
	return &ClientService{db: gdb}
}

// ClientInput 描述创建或更新客户条目时可设置的字段
type ClientInput struct {
	Name     string `validate:"required"`
	LogoURL  string `validate:"required"`
	Sort     *int
	IsActive *bool
}

// List returns clients ordered by sort value; activeOnly filters the
// public facing set.
func (s *ClientService) List(activeOnly bool) ([]db.Client, error) {
	query := s.db.Model(&db.Client{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var items []db.Client
	if err := query.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return items, nil
}

// Create validates and persists a new client.
func (s *ClientService) Create(input ClientInput) (*db.Client, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sortValue, err := resolveSort[db.Client](s.db, input.Sort)
	if err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	client := db.Client{
		Name:      strings.TrimSpace(input.Name),
		LogoURL:   strings.TrimSpace(input.LogoURL),
		SortOrder: sortValue,
		IsActive:  active,
	}

	if err := s.db.Create(&client).Error; err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &client, nil
}

// Update validates and saves changes to an existing client.
func (s *ClientService) Update(id uint, input ClientInput) (*db.Client, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	client, err := findByID[db.Client](s.db, id)
	if err != nil {
		return nil, err
	}

	client.Name = strings.TrimSpace(input.Name)
	client.LogoURL = strings.TrimSpace(input.LogoURL)
	if input.Sort != nil {
		client.SortOrder = *input.Sort
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := s.db.Save(client).Error; err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	return client, nil
}

// Delete removes a client; a missing id reports ErrResourceNotFound.
func (s *ClientService) Delete(id uint) error {
	return deleteByID[db.Client](s.db, id)
}

// Reorder rewrites the sort order following the given id sequence.
func (s *ClientService) Reorder(ids []uint) error {
	return reorder[db.Client](s.db, ids)
}
