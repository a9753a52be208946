package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-hub/internal/domain/competition"
	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/news"
	"github.com/riskibarqy/football-hub/internal/platform/cache"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/metrics"
	"github.com/riskibarqy/football-hub/internal/platform/ratelimit"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
)

const (
	DefaultOlderMatchesMaxDays = 3
	DefaultTeamUpcomingLimit   = 3
	DefaultScorersCacheTTL     = time.Hour
	DefaultNewsCacheTTL        = 20 * time.Second
)

type GatewayConfig struct {
	Clock               match.Clock
	Retry               resilience.RetryPolicy
	OlderMatchesMaxDays int
	TeamUpcomingLimit   int
	// Cache is optional. Its default TTL is the general revalidate interval.
	Cache           *cache.Store
	ScorersCacheTTL time.Duration
	NewsCacheTTL    time.Duration
	Logger          *logging.Logger
	Metrics         *metrics.Recorder
}

// Gateway turns upstream calls into envelopes. No method returns an error: every failure
// is logged once here and surfaced through Envelope.Error.
type Gateway struct {
	football   FootballDataProvider
	news       NewsProvider
	clock      match.Clock
	retry      resilience.RetryPolicy
	olderDays  int
	teamLimit  int
	cache      *cache.Store
	scorersTTL time.Duration
	newsTTL    time.Duration
	logger     *logging.Logger
	metrics    *metrics.Recorder
}

func NewGateway(football FootballDataProvider, newsProvider NewsProvider, cfg GatewayConfig) *Gateway {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	clock := cfg.Clock
	if clock.Now == nil {
		clock = match.NewClock(clock.Location)
	}
	olderDays := cfg.OlderMatchesMaxDays
	if olderDays <= 0 {
		olderDays = DefaultOlderMatchesMaxDays
	}
	if olderDays > match.OlderCandidateDays {
		olderDays = match.OlderCandidateDays
	}
	teamLimit := cfg.TeamUpcomingLimit
	if teamLimit <= 0 {
		teamLimit = DefaultTeamUpcomingLimit
	}
	scorersTTL := cfg.ScorersCacheTTL
	if scorersTTL <= 0 {
		scorersTTL = DefaultScorersCacheTTL
	}
	newsTTL := cfg.NewsCacheTTL
	if newsTTL <= 0 {
		newsTTL = DefaultNewsCacheTTL
	}

	return &Gateway{
		football:   football,
		news:       newsProvider,
		clock:      clock,
		retry:      resilience.NormalizeRetryPolicy(cfg.Retry),
		olderDays:  olderDays,
		teamLimit:  teamLimit,
		cache:      cfg.Cache,
		scorersTTL: scorersTTL,
		newsTTL:    newsTTL,
		logger:     logger.Named("gateway"),
		metrics:    cfg.Metrics,
	}
}

// FetchMatches runs an arbitrary match query. Invalid filters never reach the upstream.
func (g *Gateway) FetchMatches(ctx context.Context, filter match.Filter) Envelope[MatchList] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.FetchMatches")
	defer span.End()

	return g.fetchMatches(ctx, "Matches", filter)
}

// Matches is the unrestricted query: whatever the upstream considers current.
func (g *Gateway) Matches(ctx context.Context) Envelope[MatchList] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.Matches")
	defer span.End()

	return g.fetchMatches(ctx, "Matches", match.Filter{})
}

func (g *Gateway) TodayMatches(ctx context.Context) Envelope[MatchList] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.TodayMatches")
	defer span.End()

	window := g.clock.TodayWindow()
	return g.fetchMatches(ctx, "Today's Matches", match.Filter{DateFrom: window.From, DateTo: window.To})
}

// FinishedMatches returns yesterday's matches.
func (g *Gateway) FinishedMatches(ctx context.Context) Envelope[MatchList] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.FinishedMatches")
	defer span.End()

	return g.fetchMatches(ctx, "Finished Matches", match.Filter{Date: g.clock.Yesterday()})
}

func (g *Gateway) LiveMatches(ctx context.Context) Envelope[MatchList] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.LiveMatches")
	defer span.End()

	return g.fetchMatches(ctx, "Live Matches", match.Filter{Statuses: match.LiveStatuses})
}

// UpcomingMatches covers [today, today+7] and is the one query that backs off and
// retries. A quota that stays exhausted degrades to an empty, rate-limited success.
func (g *Gateway) UpcomingMatches(ctx context.Context) Envelope[MatchList] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.UpcomingMatches")
	defer span.End()

	const api = "Upcoming Matches"
	window := g.clock.Upcoming()
	filter := match.Filter{DateFrom: window.From, DateTo: window.To, Statuses: match.UpcomingStatuses}

	policy := g.retry
	policy.Notify = func(attempt int, delay time.Duration, err error) {
		g.metrics.RecordRetry("upcoming_matches")
		g.logger.InfoContext(ctx, "upstream unavailable, backing off",
			"api", api,
			"attempt", attempt,
			"max_attempts", policy.Attempts(),
			"delay", delay,
			"error", err,
		)
	}

	var items []match.Match
	err := policy.Do(ctx, isRetryableUpstreamError, func(ctx context.Context, attempt int) error {
		if attempt > 1 {
			// The backoff above is the only wait between attempts.
			ctx = ratelimit.WithoutWait(ctx)
		}
		loaded, err := g.loadMatches(ctx, filter)
		if err != nil {
			return err
		}
		items = loaded
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			g.logger.WarnContext(ctx, "rate limit persisted after retries, returning empty result", "api", api, "attempts", policy.Attempts())
			return Envelope[MatchList]{Data: MatchList{Matches: []match.Match{}}, IsRateLimited: true}
		}
		return g.matchFailure(ctx, api, err)
	}
	return matchesOK(items)
}

// OlderFinishedMatches walks single days from today-2 backwards, at most the configured
// number of days, one request at a time. The first failure ends the walk; days already
// fetched are still returned.
func (g *Gateway) OlderFinishedMatches(ctx context.Context) Envelope[MatchList] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.OlderFinishedMatches")
	defer span.End()

	collected := make([]match.Match, 0, 32)
	succeeded := 0
	for _, day := range g.clock.OlderDays(g.olderDays) {
		api := fmt.Sprintf("Older Matches (%s)", day)
		items, err := g.loadMatches(ctx, match.Filter{Date: day})
		if err != nil {
			if succeeded > 0 {
				g.logger.WarnContext(ctx, "older matches batch stopped early", "api", api, "days_fetched", succeeded, "error", err)
				break
			}
			return g.matchFailure(ctx, api, err)
		}
		collected = append(collected, items...)
		succeeded++
	}
	return matchesOK(collected)
}

// LeagueMatches filters the unrestricted query by competition. league may be a code,
// a name or a slug.
func (g *Gateway) LeagueMatches(ctx context.Context, league string) Envelope[MatchList] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.LeagueMatches")
	defer span.End()

	env := g.fetchMatches(ctx, "Matches", match.Filter{})
	if env.Failed() {
		return env
	}
	name := competition.UpstreamName(competition.Resolve(league))
	env.Data.Matches = match.FilterByCompetitionName(env.Data.Matches, name)
	return env
}

// KnockoutMatches returns Champions League knockout fixtures.
func (g *Gateway) KnockoutMatches(ctx context.Context) Envelope[MatchList] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.KnockoutMatches")
	defer span.End()

	return g.fetchMatches(ctx, "Knockout Matches", match.Filter{
		Competition: competition.CodeChampionsLeague,
		Stages:      match.KnockoutStages,
	})
}

// TeamUpcomingMatches returns the next scheduled fixtures of a team within 30 days.
// A non-positive limit uses the configured default.
func (g *Gateway) TeamUpcomingMatches(ctx context.Context, teamID int64, limit int) Envelope[MatchList] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.TeamUpcomingMatches")
	defer span.End()

	const api = "Team Matches"
	if teamID <= 0 {
		return g.matchFailure(ctx, api, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput))
	}
	if limit <= 0 {
		limit = g.teamLimit
	}
	window := g.clock.TeamUpcoming()
	return g.fetchMatches(ctx, api, match.Filter{
		TeamID:   teamID,
		DateFrom: window.From,
		DateTo:   window.To,
		Statuses: []match.Status{match.StatusScheduled},
		Limit:    limit,
	})
}

// Standings accepts a code, a league name or a slug. Unknown names are sent as codes.
func (g *Gateway) Standings(ctx context.Context, league string) Envelope[*competition.StandingsTable] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.Standings")
	defer span.End()

	code := competition.Resolve(league)
	api := fmt.Sprintf("League Standings (%s)", code)
	if code == "" {
		return g.standingsFailure(ctx, api, fmt.Errorf("%w: league is required", ErrInvalidInput))
	}

	value, err := g.cache.GetOrLoad(ctx, "standings:"+code, func(ctx context.Context) (any, error) {
		return g.football.Standings(ctx, code)
	}, nil)
	if err != nil {
		return g.standingsFailure(ctx, api, err)
	}
	table, _ := value.(*competition.StandingsTable)
	if table == nil {
		table = competition.EmptyStandings()
	}
	return Envelope[*competition.StandingsTable]{Data: table}
}

func (g *Gateway) TopScorers(ctx context.Context, league string) Envelope[*competition.ScorersTable] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.TopScorers")
	defer span.End()

	code := competition.Resolve(league)
	api := fmt.Sprintf("Top Scorers (%s)", code)
	if code == "" {
		return g.scorersFailure(ctx, api, fmt.Errorf("%w: league is required", ErrInvalidInput))
	}

	value, err := g.cache.GetOrLoadTTL(ctx, "scorers:"+code, g.scorersTTL, func(ctx context.Context) (any, error) {
		return g.football.Scorers(ctx, code)
	}, nil)
	if err != nil {
		return g.scorersFailure(ctx, api, err)
	}
	table, _ := value.(*competition.ScorersTable)
	if table == nil {
		table = competition.EmptyScorers()
	}
	return Envelope[*competition.ScorersTable]{Data: table}
}

// News is single shot: no retry and no rate-limit handling.
func (g *Gateway) News(ctx context.Context, topic string, pageSize int) Envelope[ArticleList] {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.News")
	defer span.End()

	query := news.Query{Topic: strings.TrimSpace(topic), PageSize: pageSize}.Normalize()
	key := fmt.Sprintf("news:%s:%d", strings.ToLower(query.Topic), query.PageSize)
	value, err := g.cache.GetOrLoadTTL(ctx, key, g.newsTTL, func(ctx context.Context) (any, error) {
		return g.news.Everything(ctx, query)
	}, nil)
	if err != nil {
		g.logger.WarnContext(ctx, "news request failed", "topic", query.Topic, "error", err)
		return newsFailure(err)
	}
	articles, _ := value.([]news.Article)
	if articles == nil {
		articles = []news.Article{}
	}
	return Envelope[ArticleList]{Data: ArticleList{Articles: articles}}
}

func (g *Gateway) fetchMatches(ctx context.Context, api string, filter match.Filter) Envelope[MatchList] {
	items, err := g.loadMatches(ctx, filter)
	if err != nil {
		return g.matchFailure(ctx, api, err)
	}
	return matchesOK(items)
}

func (g *Gateway) loadMatches(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	value, err := g.cache.GetOrLoad(ctx, matchesCacheKey(filter), func(ctx context.Context) (any, error) {
		return g.football.ListMatches(ctx, filter)
	}, nil)
	if err != nil {
		return nil, err
	}
	items, _ := value.([]match.Match)
	return items, nil
}

func (g *Gateway) matchFailure(ctx context.Context, api string, err error) Envelope[MatchList] {
	g.logFailure(ctx, api, err)
	return failureEnvelope(MatchList{Matches: []match.Match{}}, api, err)
}

func (g *Gateway) standingsFailure(ctx context.Context, api string, err error) Envelope[*competition.StandingsTable] {
	g.logFailure(ctx, api, err)
	return failureEnvelope(competition.EmptyStandings(), api, err)
}

func (g *Gateway) scorersFailure(ctx context.Context, api string, err error) Envelope[*competition.ScorersTable] {
	g.logFailure(ctx, api, err)
	return failureEnvelope(competition.EmptyScorers(), api, err)
}

func (g *Gateway) logFailure(ctx context.Context, api string, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		g.logger.InfoContext(ctx, "rejected match query", "api", api, "error", err)
	case errors.Is(err, ErrRateLimited):
		g.logger.WarnContext(ctx, "upstream rate limit reached", "api", api, "error", err)
	default:
		g.logger.ErrorContext(ctx, "upstream request failed", "api", api, "error", err)
	}
}

// isRetryableUpstreamError limits backoff to an exhausted quota or an unreachable upstream.
func isRetryableUpstreamError(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUpstreamTransport)
}

func matchesCacheKey(filter match.Filter) string {
	return fmt.Sprintf("matches:d=%s:f=%s:t=%s:s=%s:st=%s:c=%s:team=%d:l=%d",
		filter.Date,
		filter.DateFrom,
		filter.DateTo,
		match.JoinStatuses(filter.Statuses),
		match.JoinStages(filter.Stages),
		strings.ToUpper(filter.Competition),
		filter.TeamID,
		filter.Limit,
	)
}
