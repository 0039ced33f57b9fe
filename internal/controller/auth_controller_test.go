// FILE: internal/controller/auth_controller_test.go
package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salesdesk-be/internal/mapper"
	"salesdesk-be/internal/pkg/logger"
	"salesdesk-be/internal/pkg/scheduler"
	"salesdesk-be/internal/pkg/serverutils"
	"salesdesk-be/internal/repository/memory"
	"salesdesk-be/internal/service"
	"salesdesk-be/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSheets struct {
	grids map[string][][]string
}

func (s *stubSheets) Values(_ context.Context, a1Range string) ([][]string, error) {
	return s.grids[a1Range], nil
}

type dropPublisher struct{}

func (dropPublisher) Publish(context.Context, events.Event) error { return nil }

const usersRange = "Sheet2!A1:Z100"

type testEnv struct {
	app      *fiber.App
	clock    *scheduler.Manual
	sessions service.ISessionService
}

func newTestApp(t *testing.T) *testEnv {
	t.Helper()
	log := logger.NewNopLogger()
	clock := scheduler.NewManual()

	sessions := service.NewSessionService(
		memory.NewSessionRepository(),
		clock,
		dropPublisher{},
		log,
		10*time.Minute,
		4*time.Second,
		7,
	)
	sheets := &stubSheets{grids: map[string][][]string{
		usersRange: {
			{"Username", "Password"},
			{"alice", "s3cret"},
		},
	}}
	auth := service.NewAuthService(sheets, mapper.NewRosterMapper(), sessions, dropPublisher{}, log, usersRange)

	app := fiber.New()
	api := app.Group("/api")
	NewAuthController(auth, sessions).RegisterRoutes(api)

	guard := serverutils.SessionMiddleware(sessions)
	NewSelectionController(sessions).RegisterRoutes(api, guard)

	return &testEnv{app: app, clock: clock, sessions: sessions}
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func login(t *testing.T, env *testEnv) string {
	t.Helper()
	resp, body := doJSON(t, env.app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "alice",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestApp(t)
	token := login(t, env)

	resp, body := doJSON(t, env.app, fiber.MethodGet, "/api/auth/session", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.Success)

	var data struct {
		Authenticated bool   `json:"authenticated"`
		Username      string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.True(t, data.Authenticated)
	assert.Equal(t, "alice", data.Username)
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	env := newTestApp(t)

	resp, body := doJSON(t, env.app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, body.Success)
	assert.Equal(t, "invalid username or password", body.Message)
}

func TestLoginEndpointValidatesBody(t *testing.T) {
	env := newTestApp(t)

	resp, body := doJSON(t, env.app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, body.Success)
}

func TestSessionEndpointAfterExpiry(t *testing.T) {
	env := newTestApp(t)
	token := login(t, env)

	env.clock.Advance(10 * time.Minute)

	resp, body := doJSON(t, env.app, fiber.MethodGet, "/api/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var data struct {
		Authenticated bool `json:"authenticated"`
		AutoLoggedOut bool `json:"auto_logged_out"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.False(t, data.Authenticated)
	assert.True(t, data.AutoLoggedOut, "expired session should report the pending notice")

	// Once the notice window passes, the same lookup is a plain 401.
	env.clock.Advance(5 * time.Second)
	_, body = doJSON(t, env.app, fiber.MethodGet, "/api/auth/session", token, nil)
	var after struct {
		Authenticated bool `json:"authenticated"`
		AutoLoggedOut bool `json:"auto_logged_out"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &after))
	assert.False(t, after.AutoLoggedOut)
}

func TestActivityEndpointKeepsSessionAlive(t *testing.T) {
	env := newTestApp(t)
	token := login(t, env)

	env.clock.Advance(9 * time.Minute)
	resp, _ := doJSON(t, env.app, fiber.MethodPost, "/api/auth/activity", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env.clock.Advance(9 * time.Minute)
	resp, _ = doJSON(t, env.app, fiber.MethodGet, "/api/auth/session", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogoutEndpointIsIdempotent(t *testing.T) {
	env := newTestApp(t)
	token := login(t, env)

	resp, _ := doJSON(t, env.app, fiber.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, env.app, fiber.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, env.app, fiber.MethodGet, "/api/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSelectionEndpoints(t *testing.T) {
	env := newTestApp(t)
	token := login(t, env)

	resp, body := doJSON(t, env.app, fiber.MethodPost, "/api/selection/compare/toggle", token, fiber.Map{
		"product_id": "widget-a",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Selected []string `json:"selected"`
		Changed  bool     `json:"changed"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, []string{"widget-a"}, data.Selected)
	assert.True(t, data.Changed)

	_, body = doJSON(t, env.app, fiber.MethodGet, "/api/selection/compare", token, nil)
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, []string{"widget-a"}, data.Selected)

	resp, _ = doJSON(t, env.app, fiber.MethodDelete, "/api/selection/compare", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, body = doJSON(t, env.app, fiber.MethodGet, "/api/selection/compare", token, nil)
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Empty(t, data.Selected)
}

func TestSelectionRequiresSession(t *testing.T) {
	env := newTestApp(t)

	resp, _ := doJSON(t, env.app, fiber.MethodGet, "/api/selection/compare", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, env.app, fiber.MethodGet, "/api/selection/compare", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
