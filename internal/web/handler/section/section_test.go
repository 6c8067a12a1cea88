package section

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/config"
	"github.com/aikya-dev/aikya/internal/db/controller/content"
	"github.com/aikya-dev/aikya/internal/db/models"
	"github.com/aikya-dev/aikya/internal/web/handler/dashboard"
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

func newTestService(t *testing.T) (*fiber.App, *gorm.DB, *recordingViews) {
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

	cfg := &config.Config{Site: config.Site{Name: "Aikya"}}

	var s Service
	s.Init(app, cfg, db)

	return app, db, views
}

func TestGet_RendersSectionValue(t *testing.T) {
	app, db, views := newTestService(t)

	if _, err := content.Set(db, "hero", []byte(`{"title":"Welcome"}`)); err != nil {
		t.Fatalf("failed to seed section: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/sections/hero", nil)

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

	if got := views.lastData["value"]; got != `{"title":"Welcome"}` {
		t.Fatalf("unexpected value in template data: %v", got)
	}
}

func TestGet_UnknownSectionReturns404(t *testing.T) {
	app, _, _ := newTestService(t)

	req := httptest.NewRequest(http.MethodGet, "/sections/missing", nil)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestPost_SavesAndRedirects(t *testing.T) {
	app, db, _ := newTestService(t)

	form := url.Values{"value": {`{"title":"Updated"}`}}
	req := httptest.NewRequest(http.MethodPost, "/sections/hero", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", resp.StatusCode)
	}

	if loc := resp.Header.Get("Location"); loc != dashboard.Path {
		t.Fatalf("expected redirect to %s, got %s", dashboard.Path, loc)
	}

	saved, err := content.Get(db, "hero")
	if err != nil {
		t.Fatalf("expected saved section, got error: %v", err)
	}

	if string(saved.Value) != `{"title":"Updated"}` {
		t.Fatalf("unexpected saved value %q", string(saved.Value))
	}
}

func TestPost_InvalidJSONRendersError(t *testing.T) {
	app, _, views := newTestService(t)

	form := url.Values{"value": {`{"title":`}}
	req := httptest.NewRequest(http.MethodPost, "/sections/hero", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK on render error page, got %d", resp.StatusCode)
	}

	if errMsg, _ := views.lastData["error"].(string); !strings.Contains(errMsg, "valid JSON") {
		t.Fatalf("expected JSON validation error, got %q", errMsg)
	}
}
