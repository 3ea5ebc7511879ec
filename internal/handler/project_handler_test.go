package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/devfolio/internal/db"
	"github.com/gin-gonic/gin"
)

func projectPayload(title string) map[string]any {
	return map[string]any{
		"title":       title,
		"category":    "web development",
		"description": "A project description longer than ten characters.",
		"imageUrl":    "/images/demo.jpg",
	}
}

func postJSON(t *testing.T, handler gin.HandlerFunc, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handler(c)
	return w
}

func TestCreateProjectAssignsSortAndDefaultsActive(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	if err := db.DB.Create(&db.Project{Title: "旧项目", Category: "apps", SortOrder: 4}).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	w := postJSON(t, api.CreateProject, "/admin/api/projects", projectPayload("New Project"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var created db.Project
	if err := db.DB.Where("title = ?", "New Project").First(&created).Error; err != nil {
		t.Fatalf("created project not found: %v", err)
	}
	if created.SortOrder != 5 {
		t.Fatalf("expected sort_order=5, got %d", created.SortOrder)
	}
	if !created.IsActive {
		t.Fatal("expected new project to default to active")
	}
}

func TestCreateProjectRejectsShortDescription(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	payload := projectPayload("Bad Project")
	payload["description"] = "too short"

	w := postJSON(t, api.CreateProject, "/admin/api/projects", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var count int64
	db.DB.Model(&db.Project{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no project rows, got %d", count)
	}
}

func TestGetProjectsSortedStable(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	seed := []db.Project{
		{Title: "B", Category: "apps", SortOrder: 1},
		{Title: "C", Category: "apps", SortOrder: 1},
		{Title: "A", Category: "apps", SortOrder: 0},
	}
	for i := range seed {
		if err := db.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed project: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/api/projects", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.GetProjects(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Projects []db.Project `json:"projects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	titles := make([]string, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		titles = append(titles, p.Title)
	}
	want := []string{"A", "B", "C"}
	for i, title := range want {
		if titles[i] != title {
			t.Fatalf("expected order %v, got %v", want, titles)
		}
	}
}

func TestDeleteProjectMissingReturns404(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodDelete, "/admin/api/projects/999", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "999"}}

	api.DeleteProject(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestUpdateProjectPersistsChanges(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	project := db.Project{Title: "Old", Category: "apps", Description: "A project description longer than ten characters.", ImageURL: "/images/a.jpg", IsActive: true}
	if err := db.DB.Create(&project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	payload := projectPayload("Renamed")
	payload["isActive"] = false
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, "/admin/api/projects/"+strconv.Itoa(int(project.ID)), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: strconv.Itoa(int(project.ID))}}

	api.UpdateProject(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated db.Project
	if err := db.DB.First(&updated, project.ID).Error; err != nil {
		t.Fatalf("updated project not found: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("expected title Renamed, got %q", updated.Title)
	}
	if updated.IsActive {
		t.Fatal("expected project to be inactive after update")
	}
}

func TestDeleteProjectRemovesRowFromList(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	projects := []db.Project{
		{Title: "Keep", Category: "apps", SortOrder: 0},
		{Title: "Drop", Category: "apps", SortOrder: 1},
	}
	for i := range projects {
		if err := db.DB.Create(&projects[i]).Error; err != nil {
			t.Fatalf("failed to seed project: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodDelete, "/admin/api/projects/"+strconv.Itoa(int(projects[1].ID)), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: strconv.Itoa(int(projects[1].ID))}}

	api.DeleteProject(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var remaining []db.Project
	if err := db.DB.Order("sort_order ASC, id ASC").Find(&remaining).Error; err != nil {
		t.Fatalf("failed to load projects: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Title != "Keep" {
		t.Fatalf("expected only Keep to remain, got %+v", remaining)
	}
}

func TestUpdateProjectIdempotent(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	project := db.Project{Title: "Old", Category: "apps", Description: "A project description longer than ten characters.", ImageURL: "/images/a.jpg", IsActive: true}
	if err := db.DB.Create(&project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	payload := projectPayload("Renamed")
	payload["isActive"] = false

	apply := func() db.Project {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPut, "/admin/api/projects/"+strconv.Itoa(int(project.ID)), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Params = gin.Params{gin.Param{Key: "id", Value: strconv.Itoa(int(project.ID))}}

		api.UpdateProject(c)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var row db.Project
		if err := db.DB.First(&row, project.ID).Error; err != nil {
			t.Fatalf("reload project: %v", err)
		}
		return row
	}

	first := apply()
	second := apply()

	if second.Title != first.Title || second.Description != first.Description ||
		second.Category != first.Category || second.ImageURL != first.ImageURL ||
		second.IsActive != first.IsActive || second.SortOrder != first.SortOrder {
		t.Fatalf("expected identical state after repeated update, got %+v then %+v", first, second)
	}

	var count int64
	db.DB.Model(&db.Project{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single project row, got %d", count)
	}
}

func TestReorderProjectsRejectsDuplicateIDs(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	projects := []db.Project{
		{Title: "A", Category: "apps"},
		{Title: "B", Category: "apps"},
	}
	for i := range projects {
		if err := db.DB.Create(&projects[i]).Error; err != nil {
			t.Fatalf("failed to seed project: %v", err)
		}
	}

	payload := map[string]any{"ids": []uint{projects[0].ID, projects[0].ID}}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, "/admin/api/projects/order", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.ReorderProjects(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestReorderProjectsAppliesSequence(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	projects := []db.Project{
		{Title: "A", Category: "apps", SortOrder: 0},
		{Title: "B", Category: "apps", SortOrder: 1},
		{Title: "C", Category: "apps", SortOrder: 2},
	}
	for i := range projects {
		if err := db.DB.Create(&projects[i]).Error; err != nil {
			t.Fatalf("failed to seed project: %v", err)
		}
	}

	payload := map[string]any{"ids": []uint{projects[2].ID, projects[0].ID, projects[1].ID}}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, "/admin/api/projects/order", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.ReorderProjects(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var first db.Project
	if err := db.DB.Order("sort_order ASC, id ASC").First(&first).Error; err != nil {
		t.Fatalf("failed to load projects: %v", err)
	}
	if first.Title != "C" {
		t.Fatalf("expected C first after reorder, got %q", first.Title)
	}
}
