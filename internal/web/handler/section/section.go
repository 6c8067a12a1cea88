// Package section provides the console editor page for a single content
// section. The section value is edited as raw JSON, the server never
// interprets the document beyond checking that it parses.
package section

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/config"
	"github.com/aikya-dev/aikya/internal/db/controller/content"
	"github.com/aikya-dev/aikya/internal/web/handler"
	"github.com/aikya-dev/aikya/internal/web/handler/dashboard"
	"github.com/aikya-dev/aikya/internal/web/navigation"
)

const (
	// Path is the route pattern of the section editor.
	Path = dashboard.EditorPathPrefix + "/:name"

	// TemplateName is the name of the editor template.
	TemplateName = "section/edit"
)

// form is the editor form payload.
type form struct {
	Value string `form:"value"`
}

// Service is the section editor handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the section editor handler.
var Handler = Service{}

// Init initializes the section editor handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)
}

// Get renders the editor for one section.
func (s *Service) Get(c *fiber.Ctx) error {
	name := c.Params("name")

	section, err := content.Get(s.db, name)
	if err != nil {
		if errors.Is(err, content.ErrSectionNotFound) {
			return fiber.ErrNotFound
		}

		log.Error().Err(err).Str("section", name).Msg("failed to load content section")

		return fiber.ErrInternalServerError
	}

	return s.render(c, name, string(section.Value), "")
}

// Post saves the submitted section value.
func (s *Service) Post(c *fiber.Ctx) error {
	name := c.Params("name")

	f := new(form)
	if err := c.BodyParser(f); err != nil {
		return s.render(c, name, "", "invalid form data")
	}

	if !json.Valid([]byte(f.Value)) {
		return s.render(c, name, f.Value, "value is not valid JSON")
	}

	if _, err := content.Set(s.db, name, []byte(f.Value)); err != nil {
		log.Error().Err(err).Str("section", name).Msg("failed to save content section")

		return s.render(c, name, f.Value, "failed to save section")
	}

	return c.Redirect(dashboard.Path)
}

func (s *Service) render(c *fiber.Ctx, name, value, errMsg string) error {
	nav := navigation.NewContext("Edit "+name, "sections").
		AddBreadcrumb("Dashboard", dashboard.Path, false).
		AddBreadcrumb(name, dashboard.EditorPathPrefix+"/"+name, true)

	return c.Render(TemplateName, fiber.Map{
		"nav":       nav,
		"site_name": s.cfg.Site.Name,
		"section":   name,
		"value":     value,
		"error":     errMsg,
	}, handler.BaseLayout)
}
