package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

type teamUpcomingRequest struct {
	TeamID int64 `validate:"required,gt=0"`
	Limit  int   `validate:"omitempty,min=1,max=50"`
}

// ListMatches runs an arbitrary query built from date, dateFrom, dateTo, status, stage
// and competition. A malformed query is a 400, not an envelope.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	filter := matchFilterFromQuery(r)
	if err := filter.Validate(); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	writeEnvelope(ctx, w, h.cacheMaxAge, h.gateway.FetchMatches(ctx, filter))
}

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	writeEnvelope(ctx, w, h.cacheMaxAge, h.gateway.LiveMatches(ctx))
}

func (h *Handler) ListTodayMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTodayMatches")
	defer span.End()

	writeEnvelope(ctx, w, h.cacheMaxAge, h.gateway.TodayMatches(ctx))
}

func (h *Handler) ListFinishedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFinishedMatches")
	defer span.End()

	writeEnvelope(ctx, w, h.cacheMaxAge, h.gateway.FinishedMatches(ctx))
}

func (h *Handler) ListOlderMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOlderMatches")
	defer span.End()

	writeEnvelope(ctx, w, h.cacheMaxAge, h.gateway.OlderFinishedMatches(ctx))
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingMatches")
	defer span.End()

	writeEnvelope(ctx, w, h.cacheMaxAge, h.gateway.UpcomingMatches(ctx))
}

func (h *Handler) ListLeagueMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueMatches")
	defer span.End()

	league := strings.TrimSpace(r.PathValue("league"))
	writeEnvelope(ctx, w, h.cacheMaxAge, h.gateway.LeagueMatches(ctx, league))
}

func (h *Handler) ListKnockoutMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListKnockoutMatches")
	defer span.End()

	writeEnvelope(ctx, w, h.cacheMaxAge, h.gateway.KnockoutMatches(ctx))
}

func (h *Handler) ListTeamUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamUpcomingMatches")
	defer span.End()

	teamID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("teamID")), 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: teamID must be numeric", usecase.ErrInvalidInput))
		return
	}
	limit, err := parseOptionalInt(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: limit must be numeric", usecase.ErrInvalidInput))
		return
	}

	req := teamUpcomingRequest{TeamID: teamID, Limit: limit}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeEnvelope(ctx, w, h.cacheMaxAge, h.gateway.TeamUpcomingMatches(ctx, req.TeamID, req.Limit))
}

func matchFilterFromQuery(r *http.Request) match.Filter {
	query := r.URL.Query()
	return match.Filter{
		Date:        strings.TrimSpace(query.Get("date")),
		DateFrom:    strings.TrimSpace(query.Get("dateFrom")),
		DateTo:      strings.TrimSpace(query.Get("dateTo")),
		Statuses:    match.ParseStatuses(query.Get("status")),
		Stages:      match.ParseStages(query.Get("stage")),
		Competition: strings.ToUpper(strings.TrimSpace(query.Get("competition"))),
	}
}

func parseOptionalInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
