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

	"github.com/dingla0/TranslationTracker/internal/adapter/postgres"
	feedbackrepo "github.com/dingla0/TranslationTracker/internal/adapter/postgres/feedback"
	segmentrepo "github.com/dingla0/TranslationTracker/internal/adapter/postgres/segment"
	"github.com/dingla0/TranslationTracker/internal/adapter/postgres/tmversion"
	"github.com/dingla0/TranslationTracker/internal/auth"
	"github.com/dingla0/TranslationTracker/internal/config"
	"github.com/dingla0/TranslationTracker/internal/service/feedback"
	"github.com/dingla0/TranslationTracker/internal/service/ledger"
	"github.com/dingla0/TranslationTracker/internal/service/match"
	"github.com/dingla0/TranslationTracker/internal/service/segment"
	"github.com/dingla0/TranslationTracker/internal/transport/middleware"
	"github.com/dingla0/TranslationTracker/internal/transport/rest"
	"github.com/dingla0/TranslationTracker/pkg/ctxutil"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations when enabled and serves HTTP until ctx is
// cancelled, then drains in-flight requests.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("language_pair", cfg.Match.SourceLanguage+"-"+cfg.Match.TargetLanguage),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	handler, cleanup := NewHandler(Deps{
		DB:     pool,
		Checks: map[string]rest.Check{"database": pool.Ping},
		Config: cfg,
		Logger: logger,
	})
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// Deps are the external resources the HTTP stack is built on.
type Deps struct {
	DB     postgres.DB
	Checks map[string]rest.Check
	Config *config.Config
	Logger *slog.Logger
}

// Services groups the application services built on one database handle.
type Services struct {
	Segments *segment.Service
	Matches  *match.Service
	Feedback *feedback.Service
	Ledger   *ledger.Service
}

// NewServices wires repositories and services over db.
func NewServices(db postgres.DB, cfg *config.Config, logger *slog.Logger) *Services {
	txm := postgres.NewTxManager(db)
	segments := segmentrepo.New(db)
	events := feedbackrepo.New(db)
	versions := tmversion.New(db)

	return &Services{
		Segments: segment.NewService(logger, segments, versions, txm, cfg.Match),
		Matches:  match.NewService(logger, segments, cfg.Match),
		Feedback: feedback.NewService(logger, segments, events, txm, cfg.Feedback),
		Ledger:   ledger.NewService(logger, segments, versions, txm),
	}
}

// NewHandler wires services and handlers into one http.Handler. The returned
// func releases background resources.
func NewHandler(d Deps) (http.Handler, func()) {
	cfg, logger := d.Config, d.Logger
	svc := NewServices(d.DB, cfg, logger)

	limiter := middleware.NewRateLimiter(time.Minute)

	mux := rest.Routes(rest.Handlers{
		Health:   rest.NewHealthHandler(BuildVersion(), d.Checks),
		Segments: rest.NewSegmentHandler(svc.Segments, logger),
		Matches:  rest.NewMatchHandler(svc.Matches, logger),
		Feedback: rest.NewFeedbackHandler(svc.Feedback, logger),
		Versions: rest.NewVersionHandler(svc.Ledger, logger),
	}, rest.Guards{
		AdminOnly:   middleware.RequireRole(ctxutil.RoleAdmin),
		SearchLimit: limiter.Limit(cfg.Server.SearchRateLimit),
	})

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtMgr),
	)(mux)

	return handler, limiter.Stop
}

// serve runs srv until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", timeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err, ok := <-errCh; ok {
		return fmt.Errorf("http server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
