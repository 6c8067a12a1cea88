package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aikya-dev/aikya/internal/guard"
	"github.com/aikya-dev/aikya/internal/web/session"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
	homePath      = "/"
)

// consoleGuard gates the admin console pages. Anonymous visitors land on the
// login page, signed-in users without the admin flag land back on the public
// site.
var consoleGuard = guard.New(loginPath, homePath)

// sessionState adapts a console cookie session to guard.State.
type sessionState struct {
	data session.Data
}

func (s sessionState) IsAuthenticated() bool { return s.data.User.ID > 0 }

func (s sessionState) IsAdmin() bool { return s.data.User.ID > 0 && s.data.User.IsAdmin }

// AuthMiddleware is a Fiber middleware that checks for user authentication on
// console pages. Public pages and the JSON API are not its concern, the API
// carries its own bearer-token middleware.
func AuthMiddleware(c *fiber.Ctx) error {
	originalURL := strings.ToLower(c.OriginalURL())
	if strings.HasPrefix(originalURL, "/static") || strings.HasPrefix(originalURL, "/api") {
		return c.Next()
	}

	state := sessionState{}

	if loginCookie := c.Cookies("session"); loginCookie != "" {
		// an unreadable or expired session simply stays anonymous
		_ = state.data.Read(loginCookie)
	}

	// a signed-in admin on the login page has nothing left to do there
	if IsLoginPage(c) {
		if state.IsAdmin() {
			return c.Redirect(dashboardPath)
		}

		return c.Next()
	}

	decision := consoleGuard.Check(state, requiredCapability(originalURL))
	if !decision.Allowed {
		return c.Redirect(decision.RedirectTo)
	}

	return c.Next()
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, loginPath)
}

// requiredCapability maps a console path to the capability it demands. The
// public site and everything unknown stay open, the console itself is
// admin-only.
func requiredCapability(path string) guard.Capability {
	switch {
	case strings.HasPrefix(path, dashboardPath), strings.HasPrefix(path, "/sections"):
		return guard.CapabilityAdmin
	default:
		// /logout stays open: a visitor whose session entry expired must
		// still be able to clear the stale cookie
		return guard.CapabilityNone
	}
}
