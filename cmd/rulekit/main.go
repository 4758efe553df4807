// Command rulekit serves the validation engine over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/rulekit/modules/validation"
	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/environment"
	"github.com/dmitrymomot/rulekit/pkg/httpserver"
	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/locales"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/requestid"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("service stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	router, err := newRouter(ctx, cfg, log)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("http"))))
	return srv.Run(ctx, router)
}

func newLogger(cfg Config) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(environment.Parse(cfg.AppEnv), cfg.AppName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
			i18n.LoggerExtractor(),
		),
	)
}

func loadCatalogs(ctx context.Context, cfg Config, log *slog.Logger) (*i18n.Catalogs, error) {
	adapter := i18n.NewFSAdapter(nil, locales.FS, ".")
	if cfg.I18nDir != "" {
		adapter = i18n.NewDirectoryAdapter(nil, cfg.I18nDir)
	}

	catalogs, err := i18n.NewCatalogs(ctx, adapter,
		i18n.WithPrefix(locales.Prefix),
		i18n.WithDefaultLanguage(cfg.I18nDefaultLang),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
	)
	if err != nil {
		return nil, fmt.Errorf("load catalogs: %w", err)
	}
	return catalogs, nil
}

func loadRuleSets(cfg Config, registry *validator.Registry, log *slog.Logger) (validation.RuleSets, error) {
	if cfg.RuleSetsFile == "" {
		return validation.RuleSets{}, nil
	}

	sets, err := validation.LoadRuleSetsFile(cfg.RuleSetsFile)
	if err != nil {
		return nil, fmt.Errorf("load rule sets: %w", err)
	}
	for _, u := range sets.Unknown(registry) {
		log.Warn("rule set references unknown rule", slog.String("rule", u))
	}
	log.Info("rule sets loaded", logger.Count("sets", len(sets)))
	return sets, nil
}

func newRouter(ctx context.Context, cfg Config, log *slog.Logger) (http.Handler, error) {
	catalogs, err := loadCatalogs(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	registry := validator.DefaultRegistry()
	sets, err := loadRuleSets(cfg, registry, log)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := validation.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	svc := validation.NewService(
		validation.WithRegistry(registry),
		validation.WithMetrics(metrics),
		validation.WithCatalogs(catalogs),
		validation.WithRuleSets(sets),
		validation.WithSeparator(cfg.ValidationSeparator),
		validation.WithLogger(log.With(logger.Component("validation"))),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		requestid.Middleware,
		environment.Middleware(environment.Parse(cfg.AppEnv)),
		i18n.Middleware(catalogs, nil),
	)

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(log, func(context.Context) error {
		if !catalogs.Has(catalogs.DefaultLanguage()) {
			return i18n.ErrDefaultLanguageMissing
		}
		return nil
	}))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Mount("/", svc.Handle())

	return r, nil
}
