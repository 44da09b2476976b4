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

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/leafcare-backend/internal/adapter/objectstore"
	"github.com/heartmarshall/leafcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leafcare-backend/internal/adapter/postgres/prediction"
	"github.com/heartmarshall/leafcare-backend/internal/adapter/provider/inference"
	"github.com/heartmarshall/leafcare-backend/internal/auth"
	"github.com/heartmarshall/leafcare-backend/internal/config"
	"github.com/heartmarshall/leafcare-backend/internal/observability"
	"github.com/heartmarshall/leafcare-backend/internal/service/history"
	"github.com/heartmarshall/leafcare-backend/internal/service/modelinfo"
	"github.com/heartmarshall/leafcare-backend/internal/service/predict"
	"github.com/heartmarshall/leafcare-backend/internal/transport/middleware"
	"github.com/heartmarshall/leafcare-backend/internal/transport/rest"
)

const rateLimiterCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, connects the
// database, object store and classifier, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	metrics, err := observability.NewMetrics()
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	store, err := objectstore.New(ctx, cfg.Storage, metrics, logger)
	if err != nil {
		return err
	}

	classifier := inference.NewClient(cfg.Inference, nil, metrics, logger)

	limiter := middleware.NewRateLimiter(rateLimiterCleanupInterval)
	defer limiter.Stop()

	handler := newHandler(cfg, logger, deps{
		db:         pool,
		store:      store,
		classifier: classifier,
		metrics:    metrics,
		limiter:    limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
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

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}

// deps are the connected collaborators the HTTP handler is built from.
type deps struct {
	db         *pgxpool.Pool
	store      *objectstore.Store
	classifier *inference.Client
	metrics    *observability.Metrics
	limiter    *middleware.RateLimiter
}

// newHandler wires repositories, services and REST handlers behind the
// middleware chain.
func newHandler(cfg *config.Config, logger *slog.Logger, d deps) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Repositories and services.
	predictions := prediction.New(d.db)
	txManager := postgres.NewTxManager(d.db)

	historySvc := history.NewService(logger, predictions, d.store, txManager, history.Config{
		DefaultPageSize: cfg.History.DefaultPageSize,
		MaxPageSize:     cfg.History.MaxPageSize,
		ModelVersion:    cfg.Model.Version,
		PlaceholderURL:  cfg.Storage.PlaceholderURL,
	})
	predictSvc := predict.NewService(logger, d.classifier, d.store, cfg.Model.Version)
	modelInfoSvc := modelinfo.NewService(logger, d.classifier, modelinfo.Config{
		Version:     cfg.Model.Version,
		Accuracy:    cfg.Model.Accuracy,
		LastUpdated: cfg.Model.LastUpdated,
	})

	mux := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(d.db, d.classifier, d.store, BuildVersion()),
		History:      rest.NewHistoryHandler(historySvc, cfg.History.MaxUploadBytes, logger),
		Predict:      rest.NewPredictHandler(predictSvc, cfg.History.MaxUploadBytes, logger),
		ModelInfo:    rest.NewModelInfoHandler(modelInfoSvc),
		Metrics:      d.metrics.Handler(),
		PredictLimit: d.limiter.Limit(cfg.RateLimit.PredictPerMinute, cfg.RateLimit.PredictBurst),
	})

	// Logger runs inside Auth to see the owner; Metrics wraps the mux
	// directly to see the matched pattern.
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager, logger),
		middleware.Logger(logger),
		middleware.Metrics(d.metrics),
	)(mux)
}
