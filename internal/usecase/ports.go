package usecase

import (
	"context"

	"github.com/riskibarqy/football-hub/internal/domain/competition"
	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/news"
)

// FootballDataProvider is the football-data.org surface the gateway depends on.
// Every error wraps one of the upstream failure kinds declared in errors.go.
type FootballDataProvider interface {
	ListMatches(ctx context.Context, filter match.Filter) ([]match.Match, error)
	Standings(ctx context.Context, code string) (*competition.StandingsTable, error)
	Scorers(ctx context.Context, code string) (*competition.ScorersTable, error)
	// FetchResource returns the raw upstream response without classifying it. Only
	// transport failures and missing credentials are reported as errors.
	FetchResource(ctx context.Context, code string, resource competition.Resource) (competition.ResourceResponse, error)
}

// NewsProvider searches football news. It has no rate limit awareness.
type NewsProvider interface {
	Everything(ctx context.Context, query news.Query) ([]news.Article, error)
}
