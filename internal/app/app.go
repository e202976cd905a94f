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

	"github.com/heartmarshall/reuse-backend/internal/adapter/events"
	"github.com/heartmarshall/reuse-backend/internal/auth"
	"github.com/heartmarshall/reuse-backend/internal/config"
	"github.com/heartmarshall/reuse-backend/internal/domain"
	"github.com/heartmarshall/reuse-backend/internal/service/catalog"
	"github.com/heartmarshall/reuse-backend/internal/service/feed"
	"github.com/heartmarshall/reuse-backend/internal/service/matching"
	"github.com/heartmarshall/reuse-backend/internal/transport/dataloader"
	"github.com/heartmarshall/reuse-backend/internal/transport/middleware"
	"github.com/heartmarshall/reuse-backend/internal/transport/rest"
)

type matchNotifier interface {
	MatchCreated(ctx context.Context, m *domain.Match) error
}

// Run is the application entry point. It loads configuration, opens the
// store, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Backend),
	)

	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	notifier, closeNotifier, err := openNotifier(cfg.Events, logger)
	if err != nil {
		return err
	}
	defer closeNotifier()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHTTPHandler(cfg, logger, store, notifier, jwt, limiter),
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
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

type tokenValidator interface {
	ValidateAccessToken(token string) (string, error)
}

// NewHTTPHandler wires services over store and returns the full middleware
// stack around the router.
func NewHTTPHandler(
	cfg *config.Config,
	logger *slog.Logger,
	store *Store,
	notifier matchNotifier,
	tokens tokenValidator,
	limiter *middleware.RateLimiter,
) http.Handler {
	catalogSvc := catalog.NewService(logger, store.Items, store.Tx)
	engine := matching.NewEngine(logger, catalogSvc, store.Likes, store.Matches, notifier)
	feedSvc := feed.NewService(logger, catalogSvc, engine, cfg.Feed)

	api := rest.NewHandler(catalogSvc, feedSvc, engine, logger)
	health := rest.NewHealthHandler(store.Ping, store.Backend, BuildVersion())

	router := rest.NewRouter(api, health,
		limiter.Limit(cfg.RateLimit),
		dataloader.Middleware(catalogSvc),
	)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
		middleware.Logger(logger),
	)(router)
}

func openNotifier(cfg config.EventsConfig, logger *slog.Logger) (matchNotifier, func(), error) {
	if !cfg.Enabled {
		return events.NewLogNotifier(logger), func() {}, nil
	}

	pub, err := events.Dial(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect events broker: %w", err)
	}
	return pub, func() {
		if err := pub.Close(); err != nil {
			logger.Warn("close events publisher", slog.String("error", err.Error()))
		}
	}, nil
}
