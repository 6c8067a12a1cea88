// Package authctx holds the in-memory authentication authority of a running
// process. It mirrors the durable session store: constructed once at startup
// from a single store read, transitioned by Login and Logout, and consulted
// by everything that needs to know who is signed in. State is always derived
// from the store and never drifts from it.
//
// The context follows the single event flow of the process that owns it and
// is not safe for concurrent use.
package authctx

import (
	"github.com/rs/zerolog/log"

	"github.com/aikya-dev/aikya/internal/session"
)

// Context is the process-wide authentication state.
type Context struct {
	store *session.Store

	user          *session.UserProfile
	token         string
	authenticated bool
	admin         bool
}

// New constructs the context by reading the session store once. A session
// with both token and profile starts the context authenticated; anything
// else starts it signed out.
func New(store *session.Store) *Context {
	if store == nil {
		panic("authctx: store is nil")
	}

	ctx := &Context{store: store}

	if sess := store.Load(); sess.Authenticated() {
		ctx.user = sess.Profile
		ctx.token = sess.Token
		ctx.authenticated = true
		ctx.admin = sess.Profile.IsAdmin
	}

	return ctx
}

// Login moves the context to authenticated with the given profile and token,
// replacing any previous session outright. The pair is persisted as a side
// effect; an unavailable storage medium is logged as a warning and the login
// stays valid in memory for the lifetime of this process.
func (c *Context) Login(profile session.UserProfile, token string) {
	c.user = &profile
	c.token = token
	c.authenticated = true
	c.admin = profile.IsAdmin

	if err := c.store.Save(profile, token); err != nil {
		log.Warn().Err(err).Msg("could not persist session, login valid for this process only")
	}
}

// Logout moves the context to signed out and clears the persisted session.
// Logging out while already signed out is a no-op.
func (c *Context) Logout() {
	c.user = nil
	c.token = ""
	c.authenticated = false
	c.admin = false

	if err := c.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("could not clear persisted session")
	}
}

// User returns the signed-in profile, or nil.
func (c *Context) User() *session.UserProfile {
	return c.user
}

// IsAuthenticated reports whether a user is signed in.
func (c *Context) IsAuthenticated() bool {
	return c.authenticated
}

// IsAdmin reports whether the signed-in user is an administrator. It is only
// ever a copy of the profile flag supplied by the authentication API.
func (c *Context) IsAdmin() bool {
	return c.admin
}

// Token returns the persisted bearer token, or an empty string when signed
// out. The token is treated as opaque and never parsed.
func (c *Context) Token() string {
	return c.token
}
