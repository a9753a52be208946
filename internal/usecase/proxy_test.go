package usecase

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/competition"
	usecasemock "github.com/riskibarqy/football-hub/internal/mocks/usecase"
	"github.com/riskibarqy/football-hub/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGateway_ProxyCompetition_UnknownSlug(t *testing.T) {
	football := usecasemock.NewFootballDataProvider(t)
	gateway, _ := newTestGateway(t, football, nil)

	result := gateway.ProxyCompetition(context.Background(), "x", competition.ResourceScorers)

	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	require.NotNil(t, result.Failure)
	assert.Equal(t, "Unknown league: x", result.Failure.Error)
}

func TestGateway_ProxyCompetition_MissingToken(t *testing.T) {
	football := usecasemock.NewFootballDataProvider(t)
	gateway, _ := newTestGateway(t, football, nil)

	football.On("FetchResource", mock.Anything, "PL", competition.ResourceStandings).
		Return(competition.ResourceResponse{}, ErrMissingCredentials).
		Once()

	result := gateway.ProxyCompetition(context.Background(), "premier-league", competition.ResourceStandings)

	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	require.NotNil(t, result.Failure)
	assert.Equal(t, "Server configuration error", result.Failure.Error)
}

func TestGateway_ProxyCompetition_PassesThroughUpstreamStatus(t *testing.T) {
	tests := []struct {
		name          string
		resp          competition.ResourceResponse
		wantRateLimit bool
	}{
		{
			name:          "429",
			resp:          competition.ResourceResponse{StatusCode: 429, Status: "429 Too Many Requests", Body: []byte(`{"message":"You reached your request limit."}`)},
			wantRateLimit: true,
		},
		{
			name:          "zero quota on 500",
			resp:          competition.ResourceResponse{StatusCode: 500, Status: "500 Internal Server Error", RequestsAvailable: "0"},
			wantRateLimit: true,
		},
		{
			name: "forbidden",
			resp: competition.ResourceResponse{StatusCode: 403, RequestsAvailable: "4", Body: []byte(`not json`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			football := usecasemock.NewFootballDataProvider(t)
			gateway, _ := newTestGateway(t, football, nil)
			football.On("FetchResource", mock.Anything, "BL1", competition.ResourceScorers).Return(tt.resp, nil).Once()

			result := gateway.ProxyCompetition(context.Background(), "bundesliga", competition.ResourceScorers)

			assert.Equal(t, tt.resp.StatusCode, result.StatusCode)
			require.NotNil(t, result.Failure)
			assert.Equal(t, tt.wantRateLimit, result.Failure.IsRateLimited)
			assert.Contains(t, result.Failure.Error, fmt.Sprintf("Football data API error: %d", tt.resp.StatusCode))
		})
	}
}

func TestGateway_ProxyCompetition_DecodesDetails(t *testing.T) {
	football := usecasemock.NewFootballDataProvider(t)
	gateway, _ := newTestGateway(t, football, nil)
	football.On("FetchResource", mock.Anything, "SA", competition.ResourceStandings).
		Return(competition.ResourceResponse{StatusCode: 404, Status: "404 Not Found", Body: []byte(`{"errorCode":404}`)}, nil).
		Once()

	result := gateway.ProxyCompetition(context.Background(), "serie-a", competition.ResourceStandings)

	require.NotNil(t, result.Failure)
	assert.Equal(t, "Football data API error: 404 Not Found", result.Failure.Error)
	assert.Equal(t, map[string]any{"errorCode": float64(404)}, result.Failure.Details)
}

func TestGateway_ProxyCompetition_SuccessIsCachedWithScorersHint(t *testing.T) {
	football := usecasemock.NewFootballDataProvider(t)
	gateway, _ := newTestGateway(t, football, nil, func(cfg *GatewayConfig) {
		cfg.Cache = cache.NewStore(30 * time.Second)
	})

	body := []byte(`{"count":0,"scorers":[]}`)
	football.On("FetchResource", mock.Anything, "CL", competition.ResourceScorers).
		Return(competition.ResourceResponse{StatusCode: 200, ContentType: "application/json", Body: body}, nil).
		Once()

	first := gateway.ProxyCompetition(context.Background(), "champions-league", competition.ResourceScorers)
	second := gateway.ProxyCompetition(context.Background(), "champions-league", competition.ResourceScorers)

	assert.Nil(t, first.Failure)
	assert.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, body, first.Body)
	assert.Equal(t, time.Hour, first.CacheTTL)
	assert.Equal(t, body, second.Body)
}

func TestGateway_ProxyCompetition_FailuresAreNotCached(t *testing.T) {
	football := usecasemock.NewFootballDataProvider(t)
	gateway, _ := newTestGateway(t, football, nil, func(cfg *GatewayConfig) {
		cfg.Cache = cache.NewStore(30 * time.Second)
	})

	football.On("FetchResource", mock.Anything, "PPL", competition.ResourceStandings).
		Return(competition.ResourceResponse{StatusCode: 503}, nil).
		Twice()

	gateway.ProxyCompetition(context.Background(), "primeira-liga", competition.ResourceStandings)
	result := gateway.ProxyCompetition(context.Background(), "primeira-liga", competition.ResourceStandings)
	assert.Equal(t, 503, result.StatusCode)
}

func TestGateway_ProxyCompetition_KeepsUpstreamSuccessStatus(t *testing.T) {
	football := usecasemock.NewFootballDataProvider(t)
	gateway, _ := newTestGateway(t, football, nil)

	football.On("FetchResource", mock.Anything, "PL", competition.ResourceStandings).
		Return(competition.ResourceResponse{StatusCode: http.StatusNonAuthoritativeInfo, Body: []byte(`{"standings":[]}`)}, nil).
		Once()

	result := gateway.ProxyCompetition(context.Background(), "premier-league", competition.ResourceStandings)
	require.Nil(t, result.Failure)
	assert.Equal(t, http.StatusNonAuthoritativeInfo, result.StatusCode)
	assert.Equal(t, "application/json", result.ContentType)
}
