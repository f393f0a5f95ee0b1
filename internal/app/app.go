package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/premier-dashboard/internal/adapter/storage"
	"github.com/heartmarshall/premier-dashboard/internal/auth"
	"github.com/heartmarshall/premier-dashboard/internal/config"
	"github.com/heartmarshall/premier-dashboard/internal/export"
	authsvc "github.com/heartmarshall/premier-dashboard/internal/service/auth"
	"github.com/heartmarshall/premier-dashboard/internal/service/dashboard"
	"github.com/heartmarshall/premier-dashboard/internal/transport/middleware"
	"github.com/heartmarshall/premier-dashboard/internal/transport/rest"
)

// App is the assembled server: storage, workspace, auth and HTTP handler.
type App struct {
	cfg       *config.Config
	log       *slog.Logger
	store     storage.KV
	workspace *dashboard.Workspace
	auth      *authsvc.Service
	limiter   *middleware.RateLimiter
}

// OpenWorkspace opens storage, loads every collection and seeds demo data
// into empty ones unless disabled. The caller must Close the returned store.
func OpenWorkspace(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dashboard.Workspace, storage.KV, error) {
	store, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	exporter, err := export.New(cfg.Export.Locale)
	if err != nil {
		store.Close() //nolint:errcheck
		return nil, nil, fmt.Errorf("create exporter: %w", err)
	}

	ws := dashboard.NewWorkspace(logger, store, exporter)
	if cfg.Storage.SkipSeed {
		err = ws.Load(ctx)
	} else {
		_, err = ws.Seed(ctx)
	}
	if err != nil {
		store.Close() //nolint:errcheck
		return nil, nil, err
	}

	return ws, store, nil
}

// New assembles the application from cfg.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	ws, store, err := OpenWorkspace(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService, err := authsvc.NewService(logger, jwtManager, cfg.Auth)
	if err != nil {
		store.Close() //nolint:errcheck
		return nil, err
	}

	return &App{
		cfg:       cfg,
		log:       logger,
		store:     store,
		workspace: ws,
		auth:      authService,
		limiter:   middleware.NewRateLimiter(5 * time.Minute),
	}, nil
}

// Workspace returns the dashboard workspace.
func (a *App) Workspace() *dashboard.Workspace { return a.workspace }

// Handler builds the HTTP handler with the full middleware stack.
func (a *App) Handler() http.Handler {
	mux := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(BuildVersion(), a.workspace, rest.PingCheck("storage", a.store)),
		Auth:       rest.NewAuthHandler(a.auth, a.log),
		Entities:   rest.NewEntityHandler(a.workspace, a.log),
		Protect:    middleware.RequireUser(),
		LoginLimit: a.limiter.Limit(a.cfg.Auth.LoginRateLimit),
	})

	return middleware.Chain(
		middleware.Recovery(a.log),
		middleware.RequestID(),
		middleware.Logger(a.log),
		middleware.CORS(a.cfg.CORS),
		middleware.Auth(a.auth),
	)(mux)
}

// Close stops background work and releases storage.
func (a *App) Close() error {
	a.limiter.Stop()
	return a.store.Close()
}

// Run is the application entry point. It loads configuration, assembles the
// application and serves HTTP until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("locale", cfg.Export.Locale),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("close application", slog.String("error", err.Error()))
		}
	}()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      a.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
