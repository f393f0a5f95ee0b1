//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/premier-dashboard/internal/adapter/postgres/kv"
	"github.com/heartmarshall/premier-dashboard/internal/adapter/postgres/testhelper"
	authpkg "github.com/heartmarshall/premier-dashboard/internal/auth"
	"github.com/heartmarshall/premier-dashboard/internal/config"
	"github.com/heartmarshall/premier-dashboard/internal/export"
	authsvc "github.com/heartmarshall/premier-dashboard/internal/service/auth"
	"github.com/heartmarshall/premier-dashboard/internal/service/dashboard"
	"github.com/heartmarshall/premier-dashboard/internal/transport/middleware"
	"github.com/heartmarshall/premier-dashboard/internal/transport/rest"
)

const (
	adminEmail    = "premier@gmail.com"
	adminPassword = "Premier123"
)

// testLogWriter routes slog output to t.Log.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

type testServer struct {
	URL       string
	Client    *http.Client
	Pool      *pgxpool.Pool
	Workspace *dashboard.Workspace
	logger    *slog.Logger
}

// setupTestServer wires the full HTTP stack on top of a postgres-backed
// workspace. Collections are wiped first, so tests must not run in parallel.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `TRUNCATE collections`)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	ws := openWorkspace(t, pool, logger)
	_, err = ws.Seed(ctx)
	require.NoError(t, err)

	authCfg := config.AuthConfig{
		JWTSecret:      "test-secret-at-least-32-chars-long!!",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 15 * time.Minute,
		AdminEmail:     adminEmail,
		AdminPassword:  adminPassword,
		LoginRateLimit: 100,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	authService, err := authsvc.NewService(logger, jwtMgr, authCfg)
	require.NoError(t, err)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	store := kv.New(pool)
	mux := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler("test-version", ws, rest.PingCheck("storage", store)),
		Auth:       rest.NewAuthHandler(authService, logger),
		Entities:   rest.NewEntityHandler(ws, logger),
		Protect:    middleware.RequireUser(),
		LoginLimit: limiter.Limit(authCfg.LoginRateLimit),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:       srv.URL,
		Client:    srv.Client(),
		Pool:      pool,
		Workspace: ws,
		logger:    logger,
	}
}

// openWorkspace loads a fresh workspace from the same database, as a
// restarted server would.
func openWorkspace(t *testing.T, pool *pgxpool.Pool, logger *slog.Logger) *dashboard.Workspace {
	t.Helper()

	exp, err := export.New("en")
	require.NoError(t, err)

	ws := dashboard.NewWorkspace(logger, kv.New(pool), exp)
	require.NoError(t, ws.Load(context.Background()))
	return ws
}

// restRequest sends a JSON request and returns the response. The caller
// closes the body.
func (ts *testServer) restRequest(t *testing.T, method, path string, body any, token string) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// restJSON sends a request and decodes the JSON response into out when
// out is non-nil.
func (ts *testServer) restJSON(t *testing.T, method, path string, body any, token string, out any) int {
	t.Helper()

	resp := ts.restRequest(t, method, path, body, token)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// login signs in as the configured admin and returns the access token.
func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	var out struct {
		AccessToken string `json:"accessToken"`
	}
	status := ts.restJSON(t, http.MethodPost, "/auth/login",
		map[string]string{"email": adminEmail, "password": adminPassword}, "", &out)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}
