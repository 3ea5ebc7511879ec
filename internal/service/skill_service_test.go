package service

import (
	"errors"
	"testing"

	"github.com/devfolio/internal/db"
)

func TestSkillCreateRejectsPercentageOutOfRange(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.Skill{})
	defer cleanup()

	svc := NewSkillService(gdb)
	_, err := svc.Create(SkillInput{Name: "Go", Percentage: 150, Category: "backend"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSkillListByCategoryPreservesFirstAppearanceOrder(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.Skill{})
	defer cleanup()

	seed := []db.Skill{
		{Name: "React", Category: "frontend", SortOrder: 0},
		{Name: "Node.js", Category: "backend", SortOrder: 1},
		{Name: "Next.js", Category: "frontend", SortOrder: 2},
		{Name: "Docker", Category: "tools", SortOrder: 3},
	}
	for i := range seed {
		if err := gdb.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed skill: %v", err)
		}
	}

	svc := NewSkillService(gdb)
	categories, grouped, err := svc.ListByCategory()
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}

	want := []string{"frontend", "backend", "tools"}
	if len(categories) != len(want) {
		t.Fatalf("expected %v, got %v", want, categories)
	}
	for i, category := range want {
		if categories[i] != category {
			t.Fatalf("expected category order %v, got %v", want, categories)
		}
	}

	if len(grouped["frontend"]) != 2 {
		t.Fatalf("expected 2 frontend skills, got %d", len(grouped["frontend"]))
	}
	if grouped["frontend"][0].Name != "React" {
		t.Fatalf("expected React first in frontend, got %q", grouped["frontend"][0].Name)
	}
}

func TestSkillCreateAppendsSortOrder(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.Skill{})
	defer cleanup()

	if err := gdb.Create(&db.Skill{Name: "Git", Category: "tools", SortOrder: 7}).Error; err != nil {
		t.Fatalf("failed to seed skill: %v", err)
	}

	svc := NewSkillService(gdb)
	skill, err := svc.Create(SkillInput{Name: "Docker", Percentage: 60, Category: "tools"})
	if err != nil {
		t.Fatalf("create skill: %v", err)
	}
	if skill.SortOrder != 8 {
		t.Fatalf("expected sort_order=8, got %d", skill.SortOrder)
	}
}
