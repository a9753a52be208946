package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/competition"
	"github.com/riskibarqy/football-hub/internal/domain/match"
	usecasemock "github.com/riskibarqy/football-hub/internal/mocks/usecase"
	"github.com/riskibarqy/football-hub/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWarmer_WarmOnce_RefreshesCache(t *testing.T) {
	store := cache.NewStore(time.Minute)
	football := usecasemock.NewFootballDataProvider(t)
	gateway, _ := newTestGateway(t, football, nil, func(cfg *GatewayConfig) {
		cfg.Cache = store
	})

	football.On("ListMatches", mock.Anything, match.Filter{Statuses: match.LiveStatuses}).
		Return(sampleMatches(2, "Premier League"), nil).
		Twice()
	football.On("Standings", mock.Anything, "PL").
		Return(&competition.StandingsTable{Standings: []competition.StandingGroup{}}, nil).
		Twice()
	football.On("Standings", mock.Anything, "PD").
		Return(nil, rateLimited()).
		Twice()

	warmer := NewWarmer(gateway, store, WarmerConfig{Leagues: []string{"Premier League", "PL", "la-liga"}, Workers: 2})

	report, err := warmer.WarmOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, WarmReport{Refreshed: 2, Failed: 1}, report)

	// A second round must bypass the fresh entries and hit the upstream again.
	report, err = warmer.WarmOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Refreshed)

	_, ok := store.Get(context.Background(), "standings:PL")
	assert.True(t, ok)
	_, ok = store.Get(context.Background(), "standings:PD")
	assert.False(t, ok)
}

func TestWarmer_RunStopsOnCancel(t *testing.T) {
	football := usecasemock.NewFootballDataProvider(t)
	gateway, _ := newTestGateway(t, football, nil)
	football.On("ListMatches", mock.Anything, mock.Anything).Return(sampleMatches(0, ""), nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewWarmer(gateway, nil, WarmerConfig{Interval: time.Hour}).Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("warmer did not stop after cancel")
	}
}

func TestWarmer_WarmOnce_KeepsEntriesWhenReloadFails(t *testing.T) {
	store := cache.NewStore(time.Minute)
	football := usecasemock.NewFootballDataProvider(t)
	gateway, _ := newTestGateway(t, football, nil, func(cfg *GatewayConfig) {
		cfg.Cache = store
	})

	cached := &competition.StandingsTable{Standings: []competition.StandingGroup{{Type: "TOTAL"}}}
	store.Set(context.Background(), "standings:PD", cached)

	football.On("ListMatches", mock.Anything, match.Filter{Statuses: match.LiveStatuses}).
		Return(nil, rateLimited()).
		Once()
	football.On("Standings", mock.Anything, "PD").
		Return(nil, rateLimited()).
		Once()

	warmer := NewWarmer(gateway, store, WarmerConfig{Leagues: []string{"PD"}})
	report, err := warmer.WarmOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, WarmReport{Refreshed: 0, Failed: 2}, report)

	env := gateway.Standings(context.Background(), "PD")
	require.True(t, env.Usable())
	assert.Same(t, cached, env.Data)
}

func TestIsBackgroundSpan(t *testing.T) {
	assert.True(t, isBackgroundSpan("usecase.Warmer.WarmOnce"))
	assert.False(t, isBackgroundSpan("usecase.Gateway.LiveMatches"))
}
