// Package app wires the service together and runs it until its context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/vadimbarashkov/shorty/internal/adapter/geo"
	"github.com/vadimbarashkov/shorty/internal/adapter/probe"
	"github.com/vadimbarashkov/shorty/internal/config"
	"github.com/vadimbarashkov/shorty/internal/metrics"
	"github.com/vadimbarashkov/shorty/internal/usecase"
	"github.com/vadimbarashkov/shorty/migrations"
	"github.com/vadimbarashkov/shorty/pkg/postgres"
	"github.com/vadimbarashkov/shorty/pkg/redis"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/shorty/internal/adapter/delivery/http"
	pgRepo "github.com/vadimbarashkov/shorty/internal/adapter/repository/postgres"
	redisRepo "github.com/vadimbarashkov/shorty/internal/adapter/repository/redis"
)

const serviceName = "shorty"

func newLogger(cfg config.Log, env string) (*httplog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}

	return httplog.NewLogger(serviceName, httplog.Options{
		LogLevel:       level,
		JSON:           cfg.JSON,
		Concise:        cfg.Concise,
		RequestHeaders: env != config.EnvProd,
		Tags: map[string]string{
			"env": env,
		},
		QuietDownRoutes: []string{
			"/api/v1/ping",
			"/metrics",
		},
		QuietDownPeriod: 10 * time.Second,
	}), nil
}

type counterRepository interface {
	Next(ctx context.Context) (int64, error)
}

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger, err := newLogger(cfg.Log, cfg.Env)
	if err != nil {
		return fmt.Errorf("%s: invalid log level: %w", op, err)
	}

	db, err := postgres.New(
		ctx,
		cfg.Postgres.DSN(),
		postgres.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
		postgres.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
		postgres.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
		postgres.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(migrations.FS, cfg.Postgres.DSN()); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	var counterRepo counterRepository

	switch cfg.Counter.Backend {
	case config.CounterRedis:
		client, err := redis.New(
			ctx,
			cfg.Redis.Addr,
			redis.WithPassword(cfg.Redis.Password),
			redis.WithDB(cfg.Redis.DB),
			redis.WithPoolSize(cfg.Redis.PoolSize),
			redis.WithDialTimeout(cfg.Redis.DialTimeout),
		)
		if err != nil {
			return fmt.Errorf("%s: failed to connect to redis: %w", op, err)
		}
		defer client.Close()

		counterRepo = redisRepo.NewCounterRepository(client, cfg.Counter.Key)
	default:
		counterRepo = pgRepo.NewCounterRepository(db)
	}

	logger.Info("storage ready", slog.String("counter", cfg.Counter.Backend))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, serviceName),
	)
	m := metrics.New(reg)

	urlUseCase := usecase.New(
		pgRepo.NewURLRepository(db),
		counterRepo,
		pgRepo.NewAliasRepository(db),
		pgRepo.NewStatsRepository(db),
		probe.New(
			probe.WithTimeout(cfg.Probe.Timeout),
			probe.WithUserAgent(cfg.Probe.UserAgent),
		),
		geo.New(
			geo.WithBaseURL(cfg.Geo.BaseURL),
			geo.WithToken(cfg.Geo.Token),
			geo.WithTimeout(cfg.Geo.Timeout),
		),
		usecase.WithShortCodeLength(cfg.ShortCodeLength),
		usecase.WithMaxSkips(cfg.Counter.MaxSkips),
		usecase.WithLogger(logger.Logger),
		usecase.WithMetrics(m),
	)

	router := delivery.NewRouter(
		logger,
		urlUseCase,
		delivery.WithBaseURL(cfg.BaseURL),
		delivery.WithMetrics(m, reg),
		delivery.WithDocsPath(cfg.DocsPath),
	)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        router,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", slog.String("addr", server.Addr), slog.String("env", cfg.Env))

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
