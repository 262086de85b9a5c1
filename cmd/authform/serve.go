package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authform/modules/authform"
	"github.com/dmitrymomot/authform/pkg/account"
	"github.com/dmitrymomot/authform/pkg/cache"
	"github.com/dmitrymomot/authform/pkg/clientip"
	"github.com/dmitrymomot/authform/pkg/config"
	"github.com/dmitrymomot/authform/pkg/httpclient"
	"github.com/dmitrymomot/authform/pkg/httpserver"
	"github.com/dmitrymomot/authform/pkg/logger"
	"github.com/dmitrymomot/authform/pkg/ratelimit"
	"github.com/dmitrymomot/authform/pkg/requestid"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Loads configuration from the environment, connects the token storage
and serves the validate, login, signup and health endpoints until
interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var cfg authform.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			return serve(ctx, cfg, log)
		},
	}
}

func newLogger(cfg authform.Config) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(logger.ParseEnvironment(cfg.AppEnv), cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	switch f := logger.Format(cfg.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	return logger.New(opts...), nil
}

func serve(ctx context.Context, cfg authform.Config, log *slog.Logger) error {
	storage, closeStorage, err := cache.Open(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.Error("failed to close storage", logger.Error(err))
		}
	}()

	limiter, closeLimiter, err := newLimiter(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLimiter(); err != nil {
			log.Error("failed to close rate limit store", logger.Error(err))
		}
	}()

	translator, err := authform.NewTranslator(ctx, cfg.DefaultLocale, log)
	if err != nil {
		return err
	}

	clientOpts := []httpclient.Option{
		httpclient.WithTimeout(cfg.APITimeout),
		httpclient.WithLogger(log.With(logger.Component("httpclient"))),
	}
	if cfg.APIRetries > 0 {
		clientOpts = append(clientOpts, httpclient.WithRetries(cfg.APIRetries, httpclient.DefaultBackoffStrategy()))
	}
	client := httpclient.New(clientOpts...)

	router := authform.Router(authform.RouterOptions{
		Authentication:  account.NewRemoteAuthentication(cfg.APIEndpoint("/login"), client, account.WithLogger(log)),
		AddAccount:      account.NewRemoteAddAccount(cfg.APIEndpoint("/signup"), client, account.WithLogger(log)),
		SaveAccessToken: account.NewLocalSaveAccessToken(storage),
		Translator:      translator,
		Logger:          log,
		HealthChecks:    []httpserver.Check{storage.Healthcheck},
		Limiter:         limiter,
		RedirectPath:    cfg.RedirectPath,
		MaxBodySize:     cfg.MaxBodySize,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log.With(logger.Component("httpserver"))),
		httpserver.WithStartHook(func(addr string) {
			log.Info("server started",
				slog.String("addr", addr),
				slog.String("storage", cfg.Storage.Driver),
				slog.String("api_url", cfg.APIURL))
		}),
	)
	return srv.Run(ctx, router)
}

// newLimiter keeps rate limit buckets next to the token storage: in Redis
// when the storage driver is redis, in memory otherwise.
func newLimiter(ctx context.Context, cfg authform.Config) (ratelimit.Limiter, func() error, error) {
	noop := func() error { return nil }
	if !cfg.RateLimitEnabled {
		return nil, noop, nil
	}

	var (
		store   ratelimit.Store
		closeFn = noop
	)
	if cfg.Storage.Driver == cache.DriverRedis {
		client, err := cache.ConnectRedis(ctx, cfg.Storage.Redis)
		if err != nil {
			return nil, noop, err
		}
		store, closeFn = ratelimit.NewRedisStore(client, cfg.Storage.Redis.KeyPrefix+"ratelimit:"), client.Close
	} else {
		memory := ratelimit.NewMemoryStore()
		store, closeFn = memory, memory.Close
	}

	limiter, err := ratelimit.NewBucket(store, cfg.RateLimit)
	if err != nil {
		_ = closeFn()
		return nil, noop, err
	}
	return limiter, closeFn, nil
}
