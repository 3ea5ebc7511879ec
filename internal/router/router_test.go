package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/devfolio/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubHTMLRender struct{}

type stubHTMLInstance struct{}

func (r *stubHTMLRender) Instance(string, interface{}) render.Render {
	return &stubHTMLInstance{}
}

func (r *stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (r *stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func setupRouterTestDB(t *testing.T) func() {
	t.Helper()

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.Profile{},
		&db.Project{},
		&db.Service{},
		&db.Experience{},
		&db.Education{},
		&db.Skill{},
		&db.Testimonial{},
		&db.Client{},
		&db.Message{},
		&db.SiteSetting{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	r := SetupRouter("test-secret", t.TempDir(), "/uploads", "")
	r.HTMLRender = &stubHTMLRender{}
	return r
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestSetupRouterServesUploadsAlias(t *testing.T) {
	cleanup := setupRouterTestDB(t)
	defer cleanup()

	uploadDir := t.TempDir()
	fileName := "example.txt"
	fileContent := []byte("hello uploads")
	if err := os.WriteFile(filepath.Join(uploadDir, fileName), fileContent, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	r := SetupRouter("test-secret", uploadDir, "/uploads", "")

	req := httptest.NewRequest(http.MethodGet, "/uploads/"+fileName, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if rr.Body.String() != string(fileContent) {
		t.Fatalf("unexpected body, got %q", rr.Body.String())
	}
}

func TestHealthCheckReportsDatabaseUp(t *testing.T) {
	cleanup := setupRouterTestDB(t)
	defer cleanup()

	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
}

func TestAPIWithoutSessionReturns401AndWritesNothing(t *testing.T) {
	cleanup := setupRouterTestDB(t)
	defer cleanup()

	r := newTestRouter(t)

	payload := map[string]any{
		"title":       "Sneaky",
		"category":    "apps",
		"description": "Should never be persisted at all.",
		"imageUrl":    "/images/x.jpg",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/admin/api/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rr.Code)
	}

	var count int64
	db.DB.Model(&db.Project{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected zero rows after rejected write, got %d", count)
	}
}

func TestAdminPageWithoutSessionRedirectsToLogin(t *testing.T) {
	cleanup := setupRouterTestDB(t)
	defer cleanup()

	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", rr.Code)
	}
	if location := rr.Header().Get("Location"); location != "/admin/login" {
		t.Fatalf("expected redirect to /admin/login, got %q", location)
	}
}

func TestContactEndpointIsPublic(t *testing.T) {
	cleanup := setupRouterTestDB(t)
	defer cleanup()

	r := newTestRouter(t)

	payload := map[string]any{
		"fullname": "Jane Doe",
		"email":    "jane@example.com",
		"message":  "I would like to work with you.",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var count int64
	db.DB.Model(&db.Message{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one stored message, got %d", count)
	}
}

func TestMaintenanceModeBlocksPublicHome(t *testing.T) {
	cleanup := setupRouterTestDB(t)
	defer cleanup()

	if err := db.DB.Create(&db.SiteSetting{Key: db.SettingKeyMaintenanceMode, Value: strconv.FormatBool(true)}).Error; err != nil {
		t.Fatalf("failed to seed setting: %v", err)
	}

	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503 during maintenance, got %d", rr.Code)
	}
}

func loginSession(t *testing.T, r *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("expected login redirect 302, got %d", rr.Code)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie after login")
	}
	return cookies
}

func TestMaintenanceModeBypassedByAdminSession(t *testing.T) {
	cleanup := setupRouterTestDB(t)
	defer cleanup()

	if err := db.DB.Create(&db.SiteSetting{Key: db.SettingKeyMaintenanceMode, Value: strconv.FormatBool(true)}).Error; err != nil {
		t.Fatalf("failed to seed setting: %v", err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.DB.Create(&db.User{Username: "admin", Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	r := newTestRouter(t)
	cookies := loginSession(t, r, "admin", "secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected full page for logged-in admin during maintenance, got %d", rr.Code)
	}
}

func TestHomeServedWhenMaintenanceOff(t *testing.T) {
	cleanup := setupRouterTestDB(t)
	defer cleanup()

	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
}
