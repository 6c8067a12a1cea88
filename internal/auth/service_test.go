package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/db/models"
	"github.com/aikya-dev/aikya/internal/guard"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.AutoMigrate(&models.User{}))

	return NewService(db, "test-secret")
}

func TestSignupAndAuthenticate(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Signup("Asha Rao", "asha@aikya.in", "s3cr3t")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.Active)
	assert.False(t, user.IsAdmin, "signup must never grant admin")

	// duplicate email
	_, err = svc.Signup("Other", "asha@aikya.in", "whatever")
	require.ErrorIs(t, err, ErrEmailExists)

	// correct credentials
	got, err := svc.Authenticate("asha@aikya.in", "s3cr3t")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// wrong password and unknown email are indistinguishable
	_, err = svc.Authenticate("asha@aikya.in", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@aikya.in", "s3cr3t")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateDisabledAccount(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Signup("Asha Rao", "asha@aikya.in", "s3cr3t")
	require.NoError(t, err)

	require.NoError(t, svc.db.Model(user).Update("active", false).Error)

	_, err = svc.Authenticate("asha@aikya.in", "s3cr3t")
	require.ErrorIs(t, err, ErrUserAccountDisabled)
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Signup("Asha Rao", "asha@aikya.in", "s3cr3t")
	require.NoError(t, err)
	require.NoError(t, svc.SetAdmin(user.ID, true))

	user, err = svc.GetUserByID(user.ID)
	require.NoError(t, err)

	token, err := svc.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "asha@aikya.in", claims.Email)
	assert.True(t, claims.IsAdmin)

	// tampered token
	_, err = svc.ValidateToken(token + "x")
	require.ErrorIs(t, err, ErrInvalidToken)

	// token signed with a different secret
	other := NewService(svc.db, "other-secret")
	foreign, err := other.IssueToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(foreign)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestProfileCopiesAdminFlagVerbatim(t *testing.T) {
	profile := Profile(&models.User{ID: 7, FullName: "A", Email: "a@x", IsAdmin: true})

	assert.Equal(t, "7", profile.ID)
	assert.True(t, profile.IsAdmin)

	profile = Profile(&models.User{ID: 8, FullName: "B", Email: "b@x"})
	assert.False(t, profile.IsAdmin)
}

func performRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, bearerPrefix+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestRequireCapability(t *testing.T) {
	svc := newTestService(t)

	editor, err := svc.Signup("Editor", "editor@aikya.in", "pw")
	require.NoError(t, err)

	admin, err := svc.Signup("Admin", "admin@aikya.in", "pw")
	require.NoError(t, err)
	require.NoError(t, svc.SetAdmin(admin.ID, true))
	admin, err = svc.GetUserByID(admin.ID)
	require.NoError(t, err)

	editorToken, err := svc.IssueToken(editor)
	require.NoError(t, err)

	adminToken, err := svc.IssueToken(admin)
	require.NoError(t, err)

	testCases := []struct {
		name           string
		required       guard.Capability
		token          string
		expectedStatus int
	}{
		{"public route anonymous", guard.CapabilityNone, "", fiber.StatusOK},
		{"authenticated route anonymous", guard.CapabilityAuthenticated, "", fiber.StatusUnauthorized},
		{"authenticated route garbage token", guard.CapabilityAuthenticated, "garbage", fiber.StatusUnauthorized},
		{"authenticated route editor", guard.CapabilityAuthenticated, editorToken, fiber.StatusOK},
		{"admin route anonymous", guard.CapabilityAdmin, "", fiber.StatusUnauthorized},
		{"admin route editor", guard.CapabilityAdmin, editorToken, fiber.StatusForbidden},
		{"admin route admin", guard.CapabilityAdmin, adminToken, fiber.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/protected",
				RequireCapability(svc, tc.required),
				func(c *fiber.Ctx) error { return c.SendString("ok") },
			)

			resp := performRequest(t, app, tc.token)
			defer func() {
				_ = resp.Body.Close()
			}()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
		})
	}
}

func TestRequireCapabilityDemotedAdmin(t *testing.T) {
	svc := newTestService(t)

	admin, err := svc.Signup("Admin", "admin@aikya.in", "pw")
	require.NoError(t, err)
	require.NoError(t, svc.SetAdmin(admin.ID, true))
	admin, err = svc.GetUserByID(admin.ID)
	require.NoError(t, err)

	token, err := svc.IssueToken(admin)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected",
		RequireCapability(svc, guard.CapabilityAdmin),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)

	resp := performRequest(t, app, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// the token still claims is_admin, but the database wins
	require.NoError(t, svc.SetAdmin(admin.ID, false))

	resp = performRequest(t, app, token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()
}
