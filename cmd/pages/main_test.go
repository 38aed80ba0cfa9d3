package main

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ManuelReschke/pagesdemo/internal/pkg/config"
	"github.com/ManuelReschke/pagesdemo/internal/pkg/constants"
)

func testConfig() *config.Config {
	return &config.Config{
		Host:            "localhost",
		Port:            "4000",
		CachePort:       "6379",
		PageCacheTTL:    time.Minute,
		MetricsUser:     "admin",
		ShutdownTimeout: time.Second,
	}
}

func doGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestNewApplication_PageRoutes(t *testing.T) {
	app := NewApplication(testConfig())

	for _, view := range []string{"one", "two"} {
		resp := doGet(t, app, "/"+view)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, view, resp.Header.Get(constants.ViewNameHeader))
		assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `data-view="`+view+`"`)
	}
}

func TestNewApplication_CachedPageGetsOwnRequestID(t *testing.T) {
	app := NewApplication(testConfig())

	first := doGet(t, app, "/one")
	second := doGet(t, app, "/one")
	require.Equal(t, "hit", second.Header.Get("X-Cache"))

	firstID := first.Header.Get(fiber.HeaderXRequestID)
	secondID := second.Header.Get(fiber.HeaderXRequestID)
	assert.NotEmpty(t, firstID)
	assert.NotEmpty(t, secondID)
	assert.NotEqual(t, firstID, secondID)
	assert.Equal(t, "one", second.Header.Get(constants.ViewNameHeader))

	req := httptest.NewRequest(http.MethodGet, "/one", nil)
	req.Header.Set(fiber.HeaderXRequestID, "client-req-42")
	third, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, "hit", third.Header.Get("X-Cache"))
	assert.Equal(t, "client-req-42", third.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, "one", third.Header.Get(constants.ViewNameHeader))
}

func TestNewApplication_ExactMatch(t *testing.T) {
	app := NewApplication(testConfig())

	for _, path := range []string{"/ONE", "/one/", "/three"} {
		resp := doGet(t, app, path)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)
		assert.Empty(t, resp.Header.Get(constants.ViewNameHeader), path)
	}
}

func TestNewApplication_MetricsDisabledByDefault(t *testing.T) {
	app := NewApplication(testConfig())

	resp := doGet(t, app, constants.MetricsRoute)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestNewApplication_MetricsRequiresAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := testConfig()
	cfg.MetricsPasswordHash = string(hash)
	app := NewApplication(cfg)

	resp := doGet(t, app, constants.MetricsRoute)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, constants.MetricsRoute, nil)
	req.Header.Set(fiber.HeaderAuthorization, "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:secret")))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNewApplication_Docs(t *testing.T) {
	app := NewApplication(testConfig())

	resp := doGet(t, app, constants.DocsBasePath+constants.DocsPath)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
