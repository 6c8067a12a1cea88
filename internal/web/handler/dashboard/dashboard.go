// Package dashboard provides the console overview page listing the editable
// content sections of the public site.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/config"
	"github.com/aikya-dev/aikya/internal/db/controller/content"
	"github.com/aikya-dev/aikya/internal/web/handler"
	"github.com/aikya-dev/aikya/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"

	// EditorPathPrefix is the path prefix of the per-section editor pages.
	EditorPathPrefix = "/sections"
)

// Row represents a content section for template rendering.
type Row struct {
	Name      string
	Size      int
	UpdatedAt string
	EditURL   string
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	sections, err := content.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list content sections")
		return fiber.ErrInternalServerError
	}

	rows := make([]Row, 0, len(sections))
	names := make([]string, 0, len(sections))

	for _, section := range sections {
		rows = append(rows, Row{
			Name:      section.Name,
			Size:      len(section.Value),
			UpdatedAt: section.UpdatedAt.Format("2006-01-02 15:04"),
			EditURL:   EditorPathPrefix + "/" + section.Name,
		})
		names = append(names, section.Name)
	}

	nav := navigation.NewContext("Dashboard", "dashboard").
		AddBreadcrumb("Home", Path, false).
		AddBreadcrumb("Dashboard", Path, true).
		WithSections(names, EditorPathPrefix)

	return c.Render(TemplateName, fiber.Map{
		"nav":       nav,
		"site_name": s.cfg.Site.Name,
		"theme":     s.cfg.Site.Theme,
		"rows":      rows,
	}, handler.BaseLayout)
}
