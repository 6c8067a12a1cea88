package home

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/config"
	"github.com/aikya-dev/aikya/internal/db/controller/content"
	"github.com/aikya-dev/aikya/internal/db/models"
)

type recordingViews struct {
	lastName string
	lastData fiber.Map
}

func (v *recordingViews) Load() error { return nil }

func (v *recordingViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	v.lastName = name
	if m, ok := data.(fiber.Map); ok {
		v.lastData = m
	}

	_, _ = io.WriteString(w, name)

	return nil
}

func newTestService(t *testing.T, theme config.SiteTheme) (*fiber.App, *gorm.DB, *recordingViews) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.ContentSection{}); err != nil {
		t.Fatalf("failed to migrate content section model: %v", err)
	}

	views := &recordingViews{}
	app := fiber.New(fiber.Config{Views: views})

	cfg := &config.Config{Site: config.Site{Name: "Aikya", Theme: theme}}

	var s Service
	s.Init(app, cfg, db)

	return app, db, views
}

func TestGet_RendersBlocksFromSections(t *testing.T) {
	app, db, views := newTestService(t, config.ThemeBuilder)

	if _, err := content.Set(db, "hero", []byte(`{"title":"Building Tomorrow"}`)); err != nil {
		t.Fatalf("failed to seed section: %v", err)
	}

	// malformed section must not break the page
	if _, err := content.Set(db, "about", []byte(`{broken`)); err != nil {
		t.Fatalf("failed to seed section: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	if views.lastName != "home/builder" {
		t.Fatalf("expected builder template, got %q", views.lastName)
	}

	blocks, ok := views.lastData["blocks"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected blocks map, got %T", views.lastData["blocks"])
	}

	if _, exists := blocks["hero"]; !exists {
		t.Fatalf("expected hero block, got %v", blocks)
	}

	if _, exists := blocks["about"]; exists {
		t.Fatalf("malformed section must be skipped, got %v", blocks)
	}
}

func TestGet_StudioThemePicksStudioTemplate(t *testing.T) {
	app, _, views := newTestService(t, config.ThemeStudio)

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if views.lastName != "home/studio" {
		t.Fatalf("expected studio template, got %q", views.lastName)
	}
}
