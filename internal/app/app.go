package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-hub/external/footballdata"
	"github.com/riskibarqy/football-hub/external/newsapi"
	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-hub/internal/platform/cache"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/metrics"
	"github.com/riskibarqy/football-hub/internal/platform/ratelimit"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

// App is the wired service: the HTTP server plus the optional cache warmer.
type App struct {
	Server  *http.Server
	Metrics *metrics.Recorder
	warmer  *usecase.Warmer
	logger  *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if cfg.FootballDataToken == "" {
		logger.Warn("FOOTBALL_DATA_TOKEN is empty, football-data requests will be rejected upstream")
	}

	recorder := metrics.NewRecorder(cfg.MetricsNamespace)

	footballClient := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL: cfg.FootballDataBaseURL,
		Token:   cfg.FootballDataToken,
		Timeout: cfg.FootballDataTimeout,
		Logger:  logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballDataCircuitEnabled,
			FailureThreshold: cfg.FootballDataCircuitFailureCount,
			OpenTimeout:      cfg.FootballDataCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FootballDataCircuitHalfOpenReq,
		},
		Budget:  ratelimit.NewBudget(cfg.FootballDataRequestsPerMinute, cfg.FootballDataRequestsPerMinute),
		Metrics: recorder,
	})
	newsClient := newsapi.NewClient(newsapi.ClientConfig{
		BaseURL: cfg.NewsAPIBaseURL,
		APIKey:  cfg.NewsAPIKey,
		Timeout: cfg.NewsAPITimeout,
		Logger:  logger,
		Metrics: recorder,
	})

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	retry := resilience.DefaultRetryPolicy()
	retry.MaxRetries = cfg.RetryMaxRetries
	retry.BaseDelay = cfg.RetryBaseDelay

	gateway := usecase.NewGateway(footballClient, newsClient, usecase.GatewayConfig{
		Clock:               match.NewClock(cfg.Location),
		Retry:               retry,
		OlderMatchesMaxDays: cfg.OlderMatchesMaxDays,
		TeamUpcomingLimit:   cfg.TeamUpcomingLimit,
		Cache:               store,
		ScorersCacheTTL:     cfg.ScorersCacheTTL,
		NewsCacheTTL:        cfg.NewsCacheTTL,
		Logger:              logger,
		Metrics:             recorder,
	})
	dashboardSvc := usecase.NewDashboardService(gateway, logger)

	handler := httpapi.NewHandler(gateway, dashboardSvc, httpapi.HandlerConfig{
		CacheMaxAge:   cfg.CacheTTL,
		ScorersMaxAge: cfg.ScorersCacheTTL,
	}, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Metrics:            recorder,
	})

	app := &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Metrics: recorder,
		logger:  logger,
	}
	if cfg.WarmerEnabled && store != nil {
		app.warmer = usecase.NewWarmer(gateway, store, usecase.WarmerConfig{
			Interval: cfg.WarmerInterval,
			Leagues:  cfg.WarmerLeagues,
			Workers:  cfg.WarmerWorkers,
			Logger:   logger,
		})
	}

	return app, nil
}

// RunBackground starts the cache warmer, if configured, until ctx is cancelled.
func (a *App) RunBackground(ctx context.Context) {
	if a.warmer == nil {
		a.logger.Info("cache warmer disabled")
		return
	}
	go func() {
		if err := a.warmer.Run(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error("cache warmer stopped", "error", err)
		}
	}()
}

func (a *App) WarmerEnabled() bool {
	return a.warmer != nil
}
