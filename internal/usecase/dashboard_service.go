package usecase

import (
	"context"

	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/domain/news"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

// Dashboard is the home page payload. Each section keeps its own envelope so a failing
// section never blanks the others.
type Dashboard struct {
	Live     Envelope[MatchList]   `json:"live"`
	Today    Envelope[MatchList]   `json:"today"`
	Finished Envelope[MatchList]   `json:"finished"`
	Upcoming Envelope[MatchList]   `json:"upcoming"`
	News     Envelope[ArticleList] `json:"news"`
}

type dashboardGateway interface {
	LiveMatches(ctx context.Context) Envelope[MatchList]
	TodayMatches(ctx context.Context) Envelope[MatchList]
	FinishedMatches(ctx context.Context) Envelope[MatchList]
	UpcomingMatches(ctx context.Context) Envelope[MatchList]
	News(ctx context.Context, topic string, pageSize int) Envelope[ArticleList]
}

type DashboardService struct {
	gateway dashboardGateway
	logger  *logging.Logger
}

func NewDashboardService(gateway dashboardGateway, logger *logging.Logger) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardService{gateway: gateway, logger: logger.Named("dashboard")}
}

// Get loads all sections concurrently. A panicking section is reported as unavailable.
func (s *DashboardService) Get(ctx context.Context) Envelope[Dashboard] {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	unavailable := Envelope[MatchList]{Data: MatchList{Matches: []match.Match{}}, Error: "Section unavailable"}
	out := Dashboard{
		Live:     unavailable,
		Today:    unavailable,
		Finished: unavailable,
		Upcoming: unavailable,
		News:     Envelope[ArticleList]{Data: ArticleList{Articles: []news.Article{}}, Error: "Section unavailable"},
	}

	var wg conc.WaitGroup
	wg.Go(func() { out.Live = s.gateway.LiveMatches(ctx) })
	wg.Go(func() { out.Today = s.gateway.TodayMatches(ctx) })
	wg.Go(func() { out.Finished = s.gateway.FinishedMatches(ctx) })
	wg.Go(func() { out.Upcoming = s.gateway.UpcomingMatches(ctx) })
	wg.Go(func() { out.News = s.gateway.News(ctx, news.DefaultTopic, news.DefaultPageSize) })
	if recovered := wg.WaitAndRecover(); recovered != nil {
		s.logger.ErrorContext(ctx, "dashboard section panicked", "panic", recovered.String())
	}

	return Envelope[Dashboard]{
		Data:          out,
		IsRateLimited: out.Live.IsRateLimited || out.Today.IsRateLimited || out.Finished.IsRateLimited || out.Upcoming.IsRateLimited,
	}
}
