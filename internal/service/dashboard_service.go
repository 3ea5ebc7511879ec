package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// DashboardService aggregates the counters and activity feed shown on the
// admin dashboard. Everything is recomputed per request, nothing is cached.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a DashboardService instance.
func NewDashboardService(gdb *gorm.DB) *DashboardService {
	return &DashboardService{db: gdb}
}

// DashboardStats 汇总仪表盘顶部卡片的计数。
type DashboardStats struct {
	Projects       int64
	Testimonials   int64
	Skills         int64
	Services       int64
	Clients        int64
	UnreadMessages int64
}

// ActivityItem 表示活动流中的一条记录。
type ActivityItem struct {
	ID        uint
	Type      string
	Name      string
	CreatedAt time.Time
}

// Stats counts the content tables; clients only count active rows and
// messages only unread ones.
func (s *DashboardService) Stats() (DashboardStats, error) {
	var stats DashboardStats

	counts := []struct {
		model any
		where []any
		dst   *int64
	}{
		{model: &db.Project{}, dst: &stats.Projects},
		{model: &db.Testimonial{}, dst: &stats.Testimonials},
		{model: &db.Skill{}, dst: &stats.Skills},
		{model: &db.Service{}, dst: &stats.Services},
		{model: &db.Client{}, where: []any{"is_active = ?", true}, dst: &stats.Clients},
		{model: &db.Message{}, where: []any{"is_read = ?", false}, dst: &stats.UnreadMessages},
	}

	for _, c := range counts {
		query := s.db.Model(c.model)
		if len(c.where) > 0 {
			query = query.Where(c.where[0], c.where[1:]...)
		}
		if err := query.Count(c.dst).Error; err != nil {
			return DashboardStats{}, fmt.Errorf("dashboard counts: %w", err)
		}
	}

	return stats, nil
}

// RecentActivity merges the three newest projects and testimonials into a
// single feed, newest first, capped at five entries.
func (s *DashboardService) RecentActivity() ([]ActivityItem, error) {
	var projects []db.Project
	if err := s.db.Order("created_at DESC, id DESC").Limit(3).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("recent projects: %w", err)
	}

	var testimonials []db.Testimonial
	if err := s.db.Order("created_at DESC, id DESC").Limit(3).Find(&testimonials).Error; err != nil {
		return nil, fmt.Errorf("recent testimonials: %w", err)
	}

	items := make([]ActivityItem, 0, len(projects)+len(testimonials))
	for _, project := range projects {
		items = append(items, ActivityItem{
			ID:        project.ID,
			Type:      "Project",
			Name:      project.Title,
			CreatedAt: project.CreatedAt,
		})
	}
	for _, testimonial := range testimonials {
		items = append(items, ActivityItem{
			ID:        testimonial.ID,
			Type:      "Testimonial",
			Name:      "from " + testimonial.Name,
			CreatedAt: testimonial.CreatedAt,
		})
	}

	slices.SortFunc(items, func(a, b ActivityItem) int {
		if a.CreatedAt.After(b.CreatedAt) {
			return -1
		}
		if a.CreatedAt.Before(b.CreatedAt) {
			return 1
		}
		return 0
	})

	if len(items) > 5 {
		items = items[:5]
	}

	return items, nil
}
