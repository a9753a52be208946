package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/football-hub/internal/domain/competition"
)

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	league := strings.TrimSpace(r.PathValue("league"))
	writeEnvelope(ctx, w, h.cacheMaxAge, h.gateway.Standings(ctx, league))
}

func (h *Handler) GetTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopScorers")
	defer span.End()

	league := strings.TrimSpace(r.PathValue("league"))
	writeEnvelope(ctx, w, h.scorersMaxAge, h.gateway.TopScorers(ctx, league))
}

// ProxyStandings and ProxyScorers forward to football-data by league slug so browsers
// never see the API token.
func (h *Handler) ProxyStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProxyStandings")
	defer span.End()

	writeProxy(ctx, w, h.gateway.ProxyCompetition(ctx, r.PathValue("league"), competition.ResourceStandings))
}

func (h *Handler) ProxyScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProxyScorers")
	defer span.End()

	writeProxy(ctx, w, h.gateway.ProxyCompetition(ctx, r.PathValue("league"), competition.ResourceScorers))
}
