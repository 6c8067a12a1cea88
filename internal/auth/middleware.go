package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/aikya-dev/aikya/internal/db/models"
	"github.com/aikya-dev/aikya/internal/guard"
)

const (
	bearerPrefix = "Bearer "

	// LocalUserKey is the fiber.Locals key holding the authenticated user.
	LocalUserKey = "current_user"
)

// requestState adapts a validated request principal to the guard state.
type requestState struct {
	user *models.User
}

func (s requestState) IsAuthenticated() bool { return s.user != nil }

func (s requestState) IsAdmin() bool { return s.user != nil && s.user.IsAdmin }

// CurrentUser returns the user the middleware attached to the request, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals(LocalUserKey).(*models.User)
	if !ok {
		return nil
	}

	return user
}

// RequireCapability creates fiber middleware gating an API route behind the
// given capability. The guard decision is projected onto API status codes:
// an anonymous or invalid credential gets 401, a known user lacking the
// admin flag gets 403. The admin flag is re-read from the database on every
// call, a demoted account loses access with its next request.
func RequireCapability(svc *Service, required guard.Capability) fiber.Handler {
	// API consumers follow status codes, not redirects; the paths only
	// distinguish the two denial classes.
	apiGuard := guard.New("login", "home")

	return func(c *fiber.Ctx) error {
		state := requestState{user: resolveUser(c, svc)}

		decision := apiGuard.Check(state, required)
		if decision.Allowed {
			if state.user != nil {
				c.Locals(LocalUserKey, state.user)
			}

			return c.Next()
		}

		if decision.RedirectTo == apiGuard.HomePath {
			log.Warn().Uint64("user_id", state.user.ID).Str("path", c.Path()).
				Msg("user lacks required capability")

			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Admin access required",
			})
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Authentication required",
		})
	}
}

// resolveUser validates the bearer token and loads the account it names.
// Any failure results in an anonymous request, never an error.
func resolveUser(c *fiber.Ctx, svc *Service) *models.User {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if token == "" {
		return nil
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected bearer token")
		return nil
	}

	user, err := svc.GetUserByID(claims.UserID)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Error().Err(err).Uint64("user_id", claims.UserID).Msg("failed to load token user")
		}

		return nil
	}

	if !user.Active {
		return nil
	}

	return user
}
