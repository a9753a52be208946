package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

const defaultCacheMaxAge = 60 * time.Second

type HandlerConfig struct {
	// CacheMaxAge is advertised through Cache-Control on envelope responses.
	CacheMaxAge time.Duration
	// ScorersMaxAge applies to scorers responses, which change far less often.
	ScorersMaxAge time.Duration
}

type Handler struct {
	gateway          *usecase.Gateway
	dashboardService *usecase.DashboardService
	cacheMaxAge      time.Duration
	scorersMaxAge    time.Duration
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	gateway *usecase.Gateway,
	dashboardService *usecase.DashboardService,
	cfg HandlerConfig,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.CacheMaxAge <= 0 {
		cfg.CacheMaxAge = defaultCacheMaxAge
	}
	if cfg.ScorersMaxAge <= 0 {
		cfg.ScorersMaxAge = usecase.DefaultScorersCacheTTL
	}

	return &Handler{
		gateway:          gateway,
		dashboardService: dashboardService,
		cacheMaxAge:      cfg.CacheMaxAge,
		scorersMaxAge:    cfg.ScorersMaxAge,
		logger:           logger.Named("httpapi"),
		validator:        validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
