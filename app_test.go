package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/auth"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/commentinfo"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/config"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/database"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/logger"
)

// newRoutedApp builds an App without external connections
func newRoutedApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Environment: "test"}
	cfg.Auth.JWT.Secret = "test-secret"
	log := logger.NewNopLogger()

	app := &App{
		config:   cfg,
		logger:   log,
		database: database.NewDatabaseService(&cfg.Database, log),
		tokens:   auth.NewJWTService(auth.NewConfigFromAuthConfig(&cfg.Auth)),
		registry: prometheus.NewRegistry(),
	}
	// anonymous requests are rejected before the repository is touched
	app.service = commentinfo.NewService(nil, log, nil)
	require.NoError(t, app.setupRoutes())
	return app
}

func TestAppHealthReportsUnavailableDatabase(t *testing.T) {
	app := newRoutedApp(t)

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "database unavailable")
}

func TestAppExposesMetrics(t *testing.T) {
	app := newRoutedApp(t)

	app.router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestAppCommentInfoRoutesRequireCaller(t *testing.T) {
	app := newRoutedApp(t)

	w := httptest.NewRecorder()
	path := "/api/v1/comment-info/" + uuid.NewString() + "/like"
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), commentinfo.MsgUnauthorized)
}

func TestTokenCommand(t *testing.T) {
	dir := t.TempDir()
	yaml := strings.Join([]string{
		"database:",
		"  host: localhost",
		"  user: postgres",
		"  dbname: commentinfo",
		"auth:",
		"  jwt:",
		"    secret: token-test-secret",
		"logging:",
		"  output: stderr",
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	t.Setenv("ENV", "")
	userID := uuid.New()

	var out bytes.Buffer
	rootCommand.SetOut(&out)
	rootCommand.SetArgs([]string{"token", "--config", dir, "--user", userID.String()})
	t.Cleanup(func() {
		rootCommand.SetOut(nil)
		rootCommand.SetArgs(nil)
	})
	require.NoError(t, rootCommand.Execute())

	cfg := &config.AuthConfig{}
	cfg.JWT.Secret = "token-test-secret"
	cfg.JWT.Issuer = "pavilion-network"
	claims, err := auth.NewJWTService(auth.NewConfigFromAuthConfig(cfg)).ValidateAccessToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestTokenCommandRejectsInvalidUser(t *testing.T) {
	rootCommand.SetArgs([]string{"token", "--user", "not-a-uuid"})
	t.Cleanup(func() { rootCommand.SetArgs(nil) })

	err := rootCommand.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user id")
}

func TestAppServesSwaggerUI(t *testing.T) {
	app := newRoutedApp(t)

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger")
}

func TestSeedCommandRejectsInvalidOwner(t *testing.T) {
	rootCommand.SetArgs([]string{"seed", "--owner", "nobody"})
	t.Cleanup(func() { rootCommand.SetArgs(nil) })

	err := rootCommand.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid owner id")
}
