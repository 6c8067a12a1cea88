// Package home renders the public marketing site. Every block on the page is
// read from the content sections table, so the console edits show up on the
// next request without a restart.
package home

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/config"
	"github.com/aikya-dev/aikya/internal/db/controller/content"
	"github.com/aikya-dev/aikya/internal/web/handler"
)

const (
	// Path is the path to the public landing page.
	Path = handler.RootPath
)

// Service is the public site handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the public site handler.
var Handler = Service{}

// Init initializes the public site handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get renders the landing page for the configured theme.
func (s *Service) Get(c *fiber.Ctx) error {
	sections, err := content.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load content sections")
		return fiber.ErrInternalServerError
	}

	// sections with values that fail to parse are skipped rather than
	// breaking the whole page
	blocks := make(map[string]interface{}, len(sections))

	for _, section := range sections {
		var doc interface{}
		if err := json.Unmarshal(section.Value, &doc); err != nil {
			log.Warn().Err(err).Str("section", section.Name).Msg("skipping malformed content section")
			continue
		}

		blocks[section.Name] = doc
	}

	return c.Render(s.templateName(), fiber.Map{
		"site_name": s.cfg.Site.Name,
		"blocks":    blocks,
	})
}

// templateName picks the landing template for the configured theme.
func (s *Service) templateName() string {
	if s.cfg.Site.Theme == config.ThemeStudio {
		return "home/studio"
	}

	return "home/builder"
}
