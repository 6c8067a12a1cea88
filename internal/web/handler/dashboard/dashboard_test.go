package dashboard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/config"
	"github.com/aikya-dev/aikya/internal/db/controller/content"
	"github.com/aikya-dev/aikya/internal/db/models"
)

// recordingViews captures the data passed to Render so tests can inspect it.
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

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.ContentSection{}); err != nil {
		t.Fatalf("failed to migrate content section model: %v", err)
	}

	return db
}

func TestGet_ListsSections(t *testing.T) {
	db := newTestDB(t)
	views := &recordingViews{}
	app := fiber.New(fiber.Config{Views: views})

	cfg := &config.Config{
		Site: config.Site{Name: "Aikya", Theme: config.ThemeBuilder},
		Webserver: config.Webserver{
			Session: config.Session{ExpiryTime: time.Minute},
		},
	}

	var s Service
	s.Init(app, cfg, db)

	for _, name := range []string{"hero", "about", "contact"} {
		if _, err := content.Set(db, name, []byte(`{}`)); err != nil {
			t.Fatalf("failed to seed section %q: %v", name, err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, Path, nil)

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

	if views.lastName != TemplateName {
		t.Fatalf("expected template %q, got %q", TemplateName, views.lastName)
	}

	rows, ok := views.lastData["rows"].([]Row)
	if !ok {
		t.Fatalf("expected []Row in template data, got %T", views.lastData["rows"])
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// GetAll orders by name
	if rows[0].Name != "about" || rows[1].Name != "contact" || rows[2].Name != "hero" {
		t.Fatalf("unexpected row order: %+v", rows)
	}

	if !strings.HasPrefix(rows[0].EditURL, EditorPathPrefix+"/") {
		t.Fatalf("unexpected edit url %q", rows[0].EditURL)
	}
}

func TestGet_EmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	views := &recordingViews{}
	app := fiber.New(fiber.Config{Views: views})

	cfg := &config.Config{Site: config.Site{Name: "Aikya"}}

	var s Service
	s.Init(app, cfg, db)

	req := httptest.NewRequest(http.MethodGet, Path, nil)

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

	rows, ok := views.lastData["rows"].([]Row)
	if !ok {
		t.Fatalf("expected []Row in template data, got %T", views.lastData["rows"])
	}

	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
