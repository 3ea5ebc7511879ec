package service

import (
	"errors"
	"testing"

	"github.com/devfolio/internal/db"
)

func validSiteSettingsInput() SiteSettingsInput {
	return SiteSettingsInput{
		MetaTitle:        "Winter Jackson",
		MetaDescription:  "Portfolio of a software developer.",
		MetaKeywords:     "software, portfolio",
		FooterText:       "Built by Winter.",
		ContactEmail:     "hello@example.com",
		PrimaryColor:     "#112233",
		ShowProjects:     true,
		ShowServices:     true,
		ShowTestimonials: true,
	}
}

func TestGetSettingsDefaultsFailOpen(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.SiteSetting{})
	defer cleanup()

	svc := NewSiteSettingService(gdb)
	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}

	if settings.MaintenanceMode {
		t.Fatal("expected maintenance mode off by default")
	}
	if !settings.ShowProjects || !settings.ShowServices || !settings.ShowTestimonials || !settings.ShowResumeDownload {
		t.Fatalf("expected visibility toggles on by default, got %+v", settings)
	}
	if settings.MetaTitle == "" || settings.PrimaryColor == "" {
		t.Fatalf("expected non-empty branding defaults, got %+v", settings)
	}
}

func TestGetSettingsIgnoresGarbageBoolValue(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.SiteSetting{})
	defer cleanup()

	if err := gdb.Create(&db.SiteSetting{Key: db.SettingKeyShowProjects, Value: "banana"}).Error; err != nil {
		t.Fatalf("failed to seed setting: %v", err)
	}

	svc := NewSiteSettingService(gdb)
	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if !settings.ShowProjects {
		t.Fatal("unparsable toggle value must fall back to visible")
	}
}

func TestUpdateSettingsUpsertsAllKeys(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.SiteSetting{})
	defer cleanup()

	svc := NewSiteSettingService(gdb)
	input := validSiteSettingsInput()
	input.MaintenanceMode = true

	if _, err := svc.UpdateSettings(input); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	var count int64
	gdb.Model(&db.SiteSetting{}).Count(&count)
	if count != int64(len(settingKeys)) {
		t.Fatalf("expected %d setting rows, got %d", len(settingKeys), count)
	}

	// 再次更新同一批键不应新增行
	input.MetaTitle = "Renamed"
	if _, err := svc.UpdateSettings(input); err != nil {
		t.Fatalf("second update: %v", err)
	}

	gdb.Model(&db.SiteSetting{}).Count(&count)
	if count != int64(len(settingKeys)) {
		t.Fatalf("expected row count unchanged, got %d", count)
	}

	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings.MetaTitle != "Renamed" {
		t.Fatalf("expected updated meta title, got %q", settings.MetaTitle)
	}
	if !settings.MaintenanceMode {
		t.Fatal("expected maintenance mode persisted")
	}
}

func TestUpdateSettingsValidatesHexColor(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.SiteSetting{})
	defer cleanup()

	input := validSiteSettingsInput()
	input.PrimaryColor = "blue"

	svc := NewSiteSettingService(gdb)
	_, err := svc.UpdateSettings(input)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := InputMessage(err); got != "Invalid hex color code" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestToggleRejectsNonToggleableKey(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.SiteSetting{})
	defer cleanup()

	svc := NewSiteSettingService(gdb)
	if err := svc.Toggle(db.SettingKeyMetaTitle, true); !errors.Is(err, ErrUnknownSettingKey) {
		t.Fatalf("expected ErrUnknownSettingKey, got %v", err)
	}
	if err := svc.Toggle("definitely_not_a_key", true); !errors.Is(err, ErrUnknownSettingKey) {
		t.Fatalf("expected ErrUnknownSettingKey, got %v", err)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.SiteSetting{})
	defer cleanup()

	svc := NewSiteSettingService(gdb)
	if err := svc.Toggle(db.SettingKeyShowTestimonials, false); err != nil {
		t.Fatalf("toggle off: %v", err)
	}

	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings.ShowTestimonials {
		t.Fatal("expected testimonials hidden after toggle")
	}

	if err := svc.Toggle(db.SettingKeyShowTestimonials, true); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	settings, _ = svc.GetSettings()
	if !settings.ShowTestimonials {
		t.Fatal("expected testimonials visible after second toggle")
	}
}
