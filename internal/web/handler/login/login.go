package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/auth"
	"github.com/aikya-dev/aikya/internal/config"
	"github.com/aikya-dev/aikya/internal/web/handler"
	"github.com/aikya-dev/aikya/internal/web/handler/dashboard"
	"github.com/aikya-dev/aikya/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"
)

// form is the login form payload.
type form struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg         *config.Config
	db          *gorm.DB
	authService *auth.Service
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) error {
	if app == nil || cfg == nil || db == nil || authService == nil {
		return errors.New("app, cfg, db or authService is nil")
	}

	s.db = db
	s.cfg = cfg
	s.authService = authService

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"site_name": s.cfg.Site.Name,
	})
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	f := new(form)

	if err := c.BodyParser(f); err != nil {
		return s.renderError(c, ErrInvalidFormData.Error())
	}

	user, err := s.authService.Authenticate(f.Email, f.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserAccountDisabled) {
			return s.renderError(c, ErrAccountDisabled.Error())
		}

		return s.renderError(c, ErrInvalidCredentials.Error())
	}

	sessionID := session.GenerateSessionID()

	userSession := &session.Data{
		User: *user,
	}

	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return s.renderError(c, ErrInternalServerError.Error())
	}

	// set login cookie
	cookieSettings := &fiber.Cookie{
		Name:     "session",
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax", // TODO: make this configurable
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	return c.Redirect(dashboard.Path)
}

func (s *Service) renderError(c *fiber.Ctx, msg string) error {
	return c.Render("login", fiber.Map{
		"site_name": s.cfg.Site.Name,
		"error":     msg,
	})
}
