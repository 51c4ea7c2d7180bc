package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"planiverse/backend/auth"
	"planiverse/backend/config"
	"planiverse/backend/routes"
	"planiverse/backend/services"
	"planiverse/backend/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

var (
	app     *fiber.App
	cfg     *config.Config
	tracker *services.Tracker
)

func TestMain(m *testing.M) {
	setup()
	os.Exit(m.Run())
}

func setup() {
	cfg = &config.Config{
		ServerPort: "8080",
		JWTSecret:  "testsecret",
		AuthMode:   "local",
		StartDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	hub := store.NewHub()
	documents := store.WithNotify(store.NewMemoryStore(), hub)
	tracker = services.NewTracker(documents, cfg.StartDate)

	app = fiber.New()
	routes.SetupRoutes(app, tracker, hub, auth.LocalVerifier{}, cfg)
}

// openSession signs a user in through the session endpoint and returns the
// issued session token. Local auth mode treats the ID token as the uid.
func openSession(t *testing.T, uid, name string) string {
	t.Helper()

	body := map[string]string{"idToken": uid, "name": name}
	resp := doRequest(t, "POST", "/api/auth/session", "", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	data := result["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func doRequest(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonData)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}
