package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-hub/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, cfg RouterConfig) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics.Handler())
	}
	if !cfg.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler, recorder *metrics.Recorder) {
	handle(mux, recorder, "GET /v1/matches", handler.ListMatches)
	handle(mux, recorder, "GET /v1/matches/live", handler.ListLiveMatches)
	handle(mux, recorder, "GET /v1/matches/today", handler.ListTodayMatches)
	handle(mux, recorder, "GET /v1/matches/finished", handler.ListFinishedMatches)
	handle(mux, recorder, "GET /v1/matches/older", handler.ListOlderMatches)
	handle(mux, recorder, "GET /v1/matches/upcoming", handler.ListUpcomingMatches)
	handle(mux, recorder, "GET /v1/teams/{teamID}/matches/upcoming", handler.ListTeamUpcomingMatches)
	handle(mux, recorder, "GET /v1/dashboard", handler.GetDashboard)
	handle(mux, recorder, "GET /v1/news", handler.ListNews)
}

func registerCompetitionRoutes(mux *http.ServeMux, handler *Handler, recorder *metrics.Recorder) {
	handle(mux, recorder, "GET /v1/competitions/{league}/matches", handler.ListLeagueMatches)
	handle(mux, recorder, "GET /v1/competitions/CL/knockout", handler.ListKnockoutMatches)
	handle(mux, recorder, "GET /v1/standings/{league}", handler.GetStandings)
	handle(mux, recorder, "GET /v1/scorers/{league}", handler.GetTopScorers)
}

func registerProxyRoutes(mux *http.ServeMux, handler *Handler, recorder *metrics.Recorder) {
	handle(mux, recorder, "GET /api/standings/{league}", handler.ProxyStandings)
	handle(mux, recorder, "GET /api/scorers/{league}", handler.ProxyScorers)
}

func handle(mux *http.ServeMux, recorder *metrics.Recorder, pattern string, fn http.HandlerFunc) {
	mux.Handle(pattern, ObserveRoute(recorder, pattern, fn))
}
