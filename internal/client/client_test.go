package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv, New(srv.URL)
}

func TestLogin(t *testing.T) {
	t.Run("success decodes profile and token", func(t *testing.T) {
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/auth/login", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "alice@example.com", body["email"])

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"id":       "1",
					"fullName": "Alice Doe",
					"email":    "alice@example.com",
					"isAdmin":  true,
					"token":    "jwt-token",
				},
			})
		})

		result, err := c.Login("alice@example.com", "password1")
		require.NoError(t, err)

		assert.Equal(t, "jwt-token", result.Token)
		assert.Equal(t, "Alice Doe", result.Profile.FullName)
		assert.True(t, result.Profile.IsAdmin)
	})

	t.Run("401 maps to ErrUnauthorized", func(t *testing.T) {
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Invalid email or password",
			})
		})

		_, err := c.Login("alice@example.com", "wrong")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnauthorized))
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("unreachable server is not ErrUnauthorized", func(t *testing.T) {
		srv, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
		srv.Close()

		_, err := c.Login("alice@example.com", "password1")
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrUnauthorized))
	})
}

func TestBearerToken(t *testing.T) {
	var gotAuth string

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"title": "x"},
		})
	})

	c.SetToken("abc123")

	_, err := c.GetSection("hero")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestGetSection(t *testing.T) {
	t.Run("returns raw document", func(t *testing.T) {
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/cms/hero", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]string{"title": "Welcome"},
			})
		})

		data, err := c.GetSection("hero")
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Welcome"}`, string(data))
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Section not found",
			})
		})

		_, err := c.GetSection("missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestUpdateSection(t *testing.T) {
	t.Run("sends raw body with bearer token", func(t *testing.T) {
		var gotBody []byte

		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)

			buf := make([]byte, r.ContentLength)
			_, _ = r.Body.Read(buf)
			gotBody = buf

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    json.RawMessage(buf),
			})
		})

		c.SetToken("admin-token")

		_, err := c.UpdateSection("hero", json.RawMessage(`{"title":"New"}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"New"}`, string(gotBody))
	})

	t.Run("403 maps to ErrForbidden", func(t *testing.T) {
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Admin access required",
			})
		})

		_, err := c.UpdateSection("hero", json.RawMessage(`{}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrForbidden))
	})
}
