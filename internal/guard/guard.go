// Package guard decides whether the current authentication state may reach a
// protected view. The check is cheap and stateless so callers re-evaluate it
// on every navigation instead of caching a decision.
package guard

// Capability is the access level a view requires.
type Capability string

const (
	// CapabilityNone marks a public view.
	CapabilityNone Capability = "none"
	// CapabilityAuthenticated marks a view for signed-in users.
	CapabilityAuthenticated Capability = "authenticated"
	// CapabilityAdmin marks a view for administrators.
	CapabilityAdmin Capability = "admin"
)

// State is the read surface of the auth context the guard consults.
type State interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Decision is the outcome of a guard check.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Allow is the decision granting access.
var Allow = Decision{Allowed: true}

// Redirect builds a denying decision pointing at the given path.
func Redirect(path string) Decision {
	return Decision{RedirectTo: path}
}

// Guard gates access to protected views.
type Guard struct {
	LoginPath string
	HomePath  string
}

// New creates a guard with the given redirect targets.
func New(loginPath, homePath string) *Guard {
	return &Guard{LoginPath: loginPath, HomePath: homePath}
}

// Check evaluates the required capability against the current state.
// Anonymous visitors are sent to the login page. A signed-in user lacking the
// admin flag is sent home instead, the visitor is known and merely lacks
// privilege.
func (g *Guard) Check(state State, required Capability) Decision {
	switch required {
	case CapabilityAuthenticated:
		if !state.IsAuthenticated() {
			return Redirect(g.LoginPath)
		}
	case CapabilityAdmin:
		if !state.IsAuthenticated() {
			return Redirect(g.LoginPath)
		}

		if !state.IsAdmin() {
			return Redirect(g.HomePath)
		}
	case CapabilityNone:
	}

	return Allow
}
