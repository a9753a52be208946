package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riskibarqy/football-hub/internal/domain/competition"
	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/news"
	usecasemock "github.com/riskibarqy/football-hub/internal/mocks/usecase"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/metrics"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
	"github.com/riskibarqy/football-hub/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var routerNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

type routerFixture struct {
	football *usecasemock.FootballDataProvider
	news     *usecasemock.NewsProvider
	recorder *metrics.Recorder
	router   http.Handler
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	football := usecasemock.NewFootballDataProvider(t)
	newsProvider := usecasemock.NewNewsProvider(t)
	recorder := metrics.NewRecorder("test")

	retry := resilience.DefaultRetryPolicy()
	retry.Sleep = func(context.Context, time.Duration) error { return nil }

	gateway := usecase.NewGateway(football, newsProvider, usecase.GatewayConfig{
		Clock:   match.Clock{Now: func() time.Time { return routerNow }, Location: time.UTC},
		Retry:   retry,
		Logger:  logging.NewNop(),
		Metrics: recorder,
	})
	handler := NewHandler(gateway, usecase.NewDashboardService(gateway, logging.NewNop()), HandlerConfig{CacheMaxAge: time.Minute}, logging.NewNop())

	return &routerFixture{
		football: football,
		news:     newsProvider,
		recorder: recorder,
		router: NewRouter(handler, logging.NewNop(), RouterConfig{
			SwaggerEnabled:     true,
			CORSAllowedOrigins: []string{"*"},
			Metrics:            recorder,
		}),
	}
}

func (f *routerFixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_Healthz(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.get(t, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, map[string]any{"status": "ok"}, decodeBody(t, rec)["data"])
}

func TestRouter_RequestIDIsPropagated(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestRouter_ListMatches_PassesFilter(t *testing.T) {
	f := newRouterFixture(t)
	f.football.
		On("ListMatches", mock.Anything, mock.MatchedBy(func(filter match.Filter) bool {
			return filter.Date == "2026-10-18" && match.JoinStatuses(filter.Statuses) == "FINISHED" && filter.Competition == "PL"
		})).
		Return([]match.Match{{ID: 7, Status: match.StatusFinished}}, nil).
		Once()

	rec := f.get(t, "/v1/matches?date=2026-10-18&status=finished&competition=pl")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=60", rec.Header().Get("Cache-Control"))
	matches := decodeBody(t, rec)["data"].(map[string]any)["matches"].([]any)
	require.Len(t, matches, 1)
	assert.EqualValues(t, 7, matches[0].(map[string]any)["id"])
}

func TestRouter_ListMatches_RejectsMalformedQuery(t *testing.T) {
	f := newRouterFixture(t)

	for _, target := range []string{
		"/v1/matches?date=19-10-2026",
		"/v1/matches?dateFrom=2026-10-19",
		"/v1/matches?dateFrom=2026-10-20&dateTo=2026-10-19",
		"/v1/matches?status=SLEEPING",
	} {
		rec := f.get(t, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		errObj := decodeBody(t, rec)["error"].(map[string]any)
		assert.Equal(t, "INVALID_ARGUMENT", errObj["status"], target)
	}
	f.football.AssertNotCalled(t, "ListMatches", mock.Anything, mock.Anything)
}

func TestRouter_LiveMatches_RateLimitedEnvelope(t *testing.T) {
	f := newRouterFixture(t)
	f.football.
		On("ListMatches", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: quota", usecase.ErrRateLimited)).
		Once()

	rec := f.get(t, "/v1/matches/live")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	body := decodeBody(t, rec)
	assert.Equal(t, "Rate limit reached. Please try again in a minute.", body["error"])
	assert.Equal(t, true, body["isRateLimited"])
	assert.Equal(t, []any{}, body["data"].(map[string]any)["matches"])
}

func TestRouter_TeamUpcoming_ValidatesParams(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusBadRequest, f.get(t, "/v1/teams/abc/matches/upcoming").Code)
	assert.Equal(t, http.StatusBadRequest, f.get(t, "/v1/teams/0/matches/upcoming").Code)
	assert.Equal(t, http.StatusBadRequest, f.get(t, "/v1/teams/86/matches/upcoming?limit=x").Code)
	assert.Equal(t, http.StatusBadRequest, f.get(t, "/v1/teams/86/matches/upcoming?limit=500").Code)

	f.football.
		On("ListMatches", mock.Anything, mock.MatchedBy(func(filter match.Filter) bool {
			return filter.TeamID == 86 && filter.Limit == 5 && filter.DateFrom == "2026-10-19" && filter.DateTo == "2026-11-18"
		})).
		Return([]match.Match{}, nil).
		Once()

	assert.Equal(t, http.StatusOK, f.get(t, "/v1/teams/86/matches/upcoming?limit=5").Code)
}

func TestRouter_Standings_ByLeagueSlug(t *testing.T) {
	f := newRouterFixture(t)
	f.football.
		On("Standings", mock.Anything, "PD").
		Return(&competition.StandingsTable{Standings: []competition.StandingGroup{{Type: "TOTAL"}}}, nil).
		Once()

	rec := f.get(t, "/v1/standings/la-liga")

	require.Equal(t, http.StatusOK, rec.Code)
	groups := decodeBody(t, rec)["data"].(map[string]any)["standings"].([]any)
	assert.Len(t, groups, 1)
}

func TestRouter_TopScorers_UsesScorersMaxAge(t *testing.T) {
	f := newRouterFixture(t)
	f.football.
		On("Scorers", mock.Anything, "PL").
		Return(competition.EmptyScorers(), nil).
		Once()

	rec := f.get(t, "/v1/scorers/PL")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
}

func TestRouter_News(t *testing.T) {
	f := newRouterFixture(t)
	f.news.
		On("Everything", mock.Anything, news.Query{Topic: "arsenal", PageSize: 3}).
		Return([]news.Article{{Title: "Arsenal win"}}, nil).
		Once()

	rec := f.get(t, "/v1/news?q=arsenal&pageSize=3")

	require.Equal(t, http.StatusOK, rec.Code)
	articles := decodeBody(t, rec)["data"].(map[string]any)["articles"].([]any)
	require.Len(t, articles, 1)
	assert.Equal(t, http.StatusBadRequest, f.get(t, "/v1/news?pageSize=many").Code)
}

func TestRouter_ProxyRoutes(t *testing.T) {
	f := newRouterFixture(t)

	unknown := f.get(t, "/api/standings/eredivisie")
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.JSONEq(t, `{"error":"Unknown league: eredivisie"}`, unknown.Body.String())

	f.football.
		On("FetchResource", mock.Anything, "SA", competition.ResourceScorers).
		Return(competition.ResourceResponse{
			StatusCode:  http.StatusOK,
			Status:      "200 OK",
			ContentType: "application/json",
			Body:        []byte(`{"scorers":[]}`),
		}, nil).
		Once()

	rec := f.get(t, "/api/scorers/serie-a")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"scorers":[]}`, rec.Body.String())
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
}

func TestRouter_MetricsEndpointCountsRoutes(t *testing.T) {
	f := newRouterFixture(t)

	f.get(t, "/api/standings/eredivisie")
	rec := f.get(t, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_http_requests_total")
	count, err := testutil.GatherAndCount(f.recorder.Registry(), "test_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRouter_SwaggerServesEmbeddedSpec(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.get(t, "/openapi.yaml")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Football Hub API")
}
