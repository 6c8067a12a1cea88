package app

import (
	"os"

	"github.com/aikya-dev/aikya/internal/authctx"
	"github.com/aikya-dev/aikya/internal/client"
	"github.com/aikya-dev/aikya/internal/session"
)

const (
	defaultServerURL = "http://localhost:8080"

	serverEnvVar   = "AIKYA_SERVER"
	emailEnvVar    = "AIKYA_EMAIL"
	passwordEnvVar = "AIKYA_PASSWORD"
)

var (
	serverURL  string
	useKeyring bool
)

// resolveServerURL picks the API base URL from the flag, the environment or
// the default, in that order.
func resolveServerURL() string {
	if serverURL != "" {
		return serverURL
	}

	if env := os.Getenv(serverEnvVar); env != "" {
		return env
	}

	return defaultServerURL
}

// openSessionStore opens the local credential store. The OS keyring is opt-in,
// the default is a session file under the user config directory with an
// in-memory fallback when that is unavailable.
func openSessionStore() *session.Store {
	if useKeyring {
		return session.New(session.NewKeyringStorage(session.KeyringService))
	}

	return session.OpenDefault()
}

// newAuthContext loads the persisted session into a fresh auth context.
func newAuthContext() *authctx.Context {
	return authctx.New(openSessionStore())
}

// newAPIClient builds an API client carrying the stored bearer token, if any.
func newAPIClient(ctx *authctx.Context) *client.Client {
	c := client.New(resolveServerURL())

	if token := ctx.Token(); token != "" {
		c.SetToken(token)
	}

	return c
}
