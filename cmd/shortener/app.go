package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/atinyakov/shortlink/internal/app/server"
	grpcserver "github.com/atinyakov/shortlink/internal/app/server/grpc"
	"github.com/atinyakov/shortlink/internal/app/service"
	"github.com/atinyakov/shortlink/internal/cache"
	"github.com/atinyakov/shortlink/internal/config"
	"github.com/atinyakov/shortlink/internal/enrich"
	"github.com/atinyakov/shortlink/internal/middleware"
	"github.com/atinyakov/shortlink/internal/repository"
	"github.com/atinyakov/shortlink/internal/storage"
	"github.com/atinyakov/shortlink/internal/worker"
)

// application holds the wired service and everything that must be
// released on shutdown, in acquisition order.
type application struct {
	router http.Handler
	grpc   *grpcserver.Server
	worker *worker.ClickWorker
	nats   *worker.NATSQueue

	closers []func() error
	logger  *zap.Logger
}

func buildApp(ctx context.Context, opts *config.Options, logger *zap.Logger) (*application, error) {
	app := &application{logger: logger}

	store, err := openStorage(opts, logger, app)
	if err != nil {
		app.close()
		return nil, err
	}

	var statsCache service.StatsCache = cache.NewMemory(cache.DefaultTTL)
	if opts.RedisAddr != "" {
		client, closeRedis, err := cache.NewRedisClient(ctx, opts.RedisAddr)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		app.closers = append(app.closers, closeRedis)
		statsCache = cache.NewRedis(client, cache.DefaultTTL, logger)
		logger.Info("using redis stats cache", zap.String("addr", opts.RedisAddr))
	}

	var locator enrich.Locator
	switch {
	case opts.GeoIPPath != "":
		mm, err := enrich.OpenMaxMind(opts.GeoIPPath)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("open geoip database: %w", err)
		}
		app.closers = append(app.closers, mm.Close)
		locator = mm
	case opts.GeoEndpoint != "":
		locator = enrich.NewHTTPLocator(opts.GeoEndpoint)
	default:
		logger.Info("geolocation disabled, locations will be recorded as unknown")
	}

	app.worker = worker.NewClickWorker(logger, store, enrich.New(locator, opts.EnrichTimeout, logger), statsCache, worker.Options{
		Workers:   opts.Workers,
		QueueSize: opts.QueueSize,
		Retries:   2,
	})
	app.worker.Start()

	var queue service.ClickQueue = app.worker
	if opts.NATSURL != "" {
		conn, err := worker.ConnectNATS(opts.NATSURL, logger)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("connect nats: %w", err)
		}
		app.closers = append(app.closers, func() error {
			conn.Close()
			return nil
		})

		app.nats = worker.NewNATSQueue(conn, app.worker, logger)
		if err := app.nats.Subscribe(); err != nil {
			app.close()
			return nil, fmt.Errorf("subscribe clicks: %w", err)
		}
		queue = app.nats
	}

	codes := service.NewCodeGenerator(opts.CodeLength)
	links := service.NewLinkService(store, codes, statsCache, logger, opts.BaseURL)
	resolver := service.NewResolver(store, service.NewClickRecorder(queue))
	stats := service.NewStatsAggregator(store, statsCache, logger)
	auth := service.NewAuth(opts.JWTSecret)

	var limiter *middleware.IPRateLimiter
	if opts.RateLimit > 0 {
		limiter = middleware.NewIPRateLimiter(rate.Limit(opts.RateLimit), max(opts.RateBurst, 1))
	}

	app.router = server.Init(server.Deps{
		Links:         links,
		Resolver:      resolver,
		Stats:         stats,
		Auth:          auth,
		Limiter:       limiter,
		TrustedSubnet: opts.TrustedSubnet,
		Logger:        logger,
	})

	if opts.GRPCAddress != "" {
		app.grpc = grpcserver.New(opts.GRPCAddress, opts.TrustedSubnet, auth, &grpcserver.LinksServer{
			Links:    links,
			Resolver: resolver,
			Stats:    stats,
		}, logger)
	}

	return app, nil
}

func openStorage(opts *config.Options, logger *zap.Logger, app *application) (service.Storage, error) {
	switch {
	case opts.DatabaseDSN != "":
		logger.Info("using db storage")
		db, err := repository.InitDB(opts.DatabaseDSN, logger)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, db.Close)
		return repository.CreateLinkRepository(db, logger), nil

	case opts.FilePath != "":
		logger.Info("using file storage", zap.String("path", opts.FilePath))
		fs, err := storage.NewFileStorage(opts.FilePath, logger)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, fs.Close)
		return fs, nil

	default:
		logger.Info("using in memory storage")
		return storage.CreateMemoryStorage()
	}
}

// shutdown stops accepting clicks, drains the worker pool within ctx and
// releases every resource.
func (a *application) shutdown(ctx context.Context) error {
	var errs []error

	if a.nats != nil {
		if err := a.nats.Close(); err != nil {
			errs = append(errs, fmt.Errorf("drain nats subscription: %w", err))
		}
	}
	if a.worker != nil {
		if err := a.worker.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("drain click worker: %w", err))
		}
	}
	if err := a.close(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (a *application) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
