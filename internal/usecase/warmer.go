package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-hub/internal/domain/competition"
	"github.com/riskibarqy/football-hub/internal/platform/cache"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

const (
	DefaultWarmerInterval = time.Minute
	defaultWarmerWorkers  = 2
)

type WarmerConfig struct {
	Interval time.Duration
	Leagues  []string
	Workers  int
	Logger   *logging.Logger
}

type warmGateway interface {
	LiveMatches(ctx context.Context) Envelope[MatchList]
	Standings(ctx context.Context, league string) Envelope[*competition.StandingsTable]
}

// WarmReport summarises one refresh round.
type WarmReport struct {
	Refreshed int
	Failed    int
}

// Warmer keeps the response cache fresh for live matches and league tables so page
// loads rarely wait on the upstream.
type Warmer struct {
	gateway  warmGateway
	cache    *cache.Store
	interval time.Duration
	leagues  []string
	workers  int
	logger   *logging.Logger
}

func NewWarmer(gateway warmGateway, store *cache.Store, cfg WarmerConfig) *Warmer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultWarmerInterval
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWarmerWorkers
	}

	leagues := make([]string, 0, len(cfg.Leagues))
	seen := make(map[string]struct{}, len(cfg.Leagues))
	for _, league := range cfg.Leagues {
		code := competition.Resolve(league)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		leagues = append(leagues, code)
	}

	return &Warmer{
		gateway:  gateway,
		cache:    store,
		interval: interval,
		leagues:  leagues,
		workers:  workers,
		logger:   logger.Named("warmer"),
	}
}

// Run refreshes immediately and then on every tick until ctx is cancelled.
func (w *Warmer) Run(ctx context.Context) error {
	w.logger.InfoContext(ctx, "cache warmer started", "interval", w.interval.String(), "leagues", w.leagues)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.WarmOnce(ctx); err != nil {
			w.logger.ErrorContext(ctx, "cache warm round failed", "error", err)
		}

		select {
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "cache warmer stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// WarmOnce reloads the live matches and each configured league table.
// League loads run on a bounded worker pool; the upstream budget still paces them.
func (w *Warmer) WarmOnce(ctx context.Context) (WarmReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Warmer.WarmOnce")
	defer span.End()

	var refreshed, failed atomic.Int32

	// Entries are overwritten only by a successful reload; a failed round keeps them.
	refreshCtx := cache.Refreshing(ctx)
	if env := w.gateway.LiveMatches(refreshCtx); env.Usable() {
		refreshed.Add(1)
	} else {
		failed.Add(1)
	}

	if len(w.leagues) > 0 {
		pool, err := ants.NewPool(w.workers)
		if err != nil {
			return WarmReport{}, fmt.Errorf("create warmer pool: %w", err)
		}
		defer pool.Release()

		var workers sync.WaitGroup
		for _, code := range w.leagues {
			workers.Add(1)
			if err := pool.Submit(func() {
				defer workers.Done()
				if ctx.Err() != nil {
					return
				}
				if env := w.gateway.Standings(refreshCtx, code); env.Usable() {
					refreshed.Add(1)
					return
				}
				failed.Add(1)
			}); err != nil {
				workers.Done()
				return WarmReport{}, fmt.Errorf("submit warm task: %w", err)
			}
		}
		workers.Wait()
	}

	report := WarmReport{Refreshed: int(refreshed.Load()), Failed: int(failed.Load())}
	w.logger.DebugContext(ctx, "cache warm round finished", "refreshed", report.Refreshed, "failed", report.Failed, "entries", w.cache.Len())
	return report, nil
}
