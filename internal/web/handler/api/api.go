// Package api exposes the JSON API consumed by the aikya CLI and by
// headless integrations. All responses share one envelope: a success flag,
// the payload under data, and a human-readable message on failure.
package api

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/auth"
	"github.com/aikya-dev/aikya/internal/config"
	"github.com/aikya-dev/aikya/internal/db/controller/content"
	"github.com/aikya-dev/aikya/internal/guard"
	"github.com/aikya-dev/aikya/internal/session"
	"github.com/aikya-dev/aikya/internal/web/handler"
)

const (
	// Path is the mount point of the JSON API.
	Path = "/api"
)

// Service is the JSON API handler service.
type Service struct {
	handler.Service
	cfg         *config.Config
	db          *gorm.DB
	authService *auth.Service
	validate    *validator.Validate
}

// Handler is the JSON API handler.
var Handler = Service{}

// loginRequest is the POST /api/auth/login payload.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// signupRequest is the POST /api/auth/signup payload.
type signupRequest struct {
	FullName string `json:"fullName" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// loginResponse is the data payload of a successful login. The token is
// opaque to clients, they store it and echo it back as a bearer credential.
type loginResponse struct {
	session.UserProfile
	Token string `json:"token"`
}

// Init initializes the JSON API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) {
	if app == nil || cfg == nil || db == nil || authService == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.authService = authService
	s.validate = validator.New()

	api := app.Group(Path)

	authGroup := api.Group("/auth")
	authGroup.Post("/login", s.Login)
	authGroup.Post("/signup", s.Signup)
	authGroup.Get("/users", auth.RequireCapability(authService, guard.CapabilityAdmin), s.ListUsers)

	cms := api.Group("/cms")
	cms.Get("/:section", s.GetSection)
	cms.Put("/:section", auth.RequireCapability(authService, guard.CapabilityAdmin), s.PutSection)
}

// Login authenticates an email and password pair and issues a bearer token.
func (s *Service) Login(c *fiber.Ctx) error {
	req := new(loginRequest)

	if err := c.BodyParser(req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := s.validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Email and password are required")
	}

	user, err := s.authService.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserAccountDisabled) {
			return fail(c, fiber.StatusForbidden, "Account is disabled")
		}

		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fail(c, fiber.StatusUnauthorized, "Invalid email or password")
		}

		log.Error().Err(err).Msg("login failed")

		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	token, err := s.authService.IssueToken(user)
	if err != nil {
		log.Error().Err(err).Uint64("user_id", user.ID).Msg("failed to issue token")

		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return ok(c, loginResponse{
		UserProfile: auth.Profile(user),
		Token:       token,
	})
}

// Signup registers a new non-admin account.
func (s *Service) Signup(c *fiber.Ctx) error {
	req := new(signupRequest)

	if err := c.BodyParser(req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := s.validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Full name, a valid email and a password of at least 8 characters are required")
	}

	user, err := s.authService.Signup(req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			return fail(c, fiber.StatusConflict, "An account with this email already exists")
		}

		log.Error().Err(err).Msg("signup failed")

		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    auth.Profile(user),
	})
}

// ListUsers returns all accounts. Admin only.
func (s *Service) ListUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	users, total, err := s.authService.ListUsers(limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")

		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	profiles := make([]session.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, auth.Profile(&users[i]))
	}

	return ok(c, fiber.Map{
		"users": profiles,
		"total": total,
	})
}

// GetSection returns the raw JSON document of one content section. Public.
func (s *Service) GetSection(c *fiber.Ctx) error {
	name := c.Params("section")

	section, err := content.Get(s.db, name)
	if err != nil {
		if errors.Is(err, content.ErrSectionNotFound) {
			return fail(c, fiber.StatusNotFound, "Section not found")
		}

		log.Error().Err(err).Str("section", name).Msg("failed to load content section")

		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	// the stored value is already JSON, hand it through untouched
	return ok(c, json.RawMessage(section.Value))
}

// PutSection replaces the JSON document of one content section, creating the
// section if it does not exist yet. Admin only.
func (s *Service) PutSection(c *fiber.Ctx) error {
	name := c.Params("section")

	body := c.Body()
	if !json.Valid(body) {
		return fail(c, fiber.StatusBadRequest, "Body must be valid JSON")
	}

	section, err := content.Set(s.db, name, body)
	if err != nil {
		if errors.Is(err, content.ErrSectionNameEmpty) {
			return fail(c, fiber.StatusBadRequest, "Section name is required")
		}

		log.Error().Err(err).Str("section", name).Msg("failed to save content section")

		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return ok(c, json.RawMessage(section.Value))
}

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
