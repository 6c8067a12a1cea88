// Package auth provides authentication and authorization functionality for the application.
//
// Accounts live in the local database with Argon2id password hashing. Two
// credential styles are supported on top of the same accounts:
//
//   - Bearer tokens for the REST API: signed JWTs carrying the user id,
//     email and admin flag, validated on every request and re-checked
//     against the database so a revoked or demoted account loses access
//     immediately.
//   - Cookie sessions for the server-rendered admin console, handled by the
//     web layer on top of this package.
//
// Authorization is capability based: a route requires none, authenticated or
// admin capability, and the fiber middleware in this package projects the
// route guard's decisions onto API status codes (401 for unknown visitors,
// 403 for known users lacking privilege).
//
// Example usage:
//
//	svc := auth.NewService(db, cfg.Webserver.JWTSecret)
//	user, err := svc.Authenticate("editor@aikya.in", password)
//	token, err := svc.IssueToken(user)
//
//	app.Put("/api/cms/:section",
//	    auth.RequireCapability(svc, guard.CapabilityAdmin),
//	    handler,
//	)
package auth
