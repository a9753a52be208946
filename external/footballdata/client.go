package footballdata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-hub/internal/domain/competition"
	"github.com/riskibarqy/football-hub/internal/domain/match"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/metrics"
	"github.com/riskibarqy/football-hub/internal/platform/ratelimit"
	"github.com/riskibarqy/football-hub/internal/platform/resilience"
	"github.com/riskibarqy/football-hub/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL = "https://api.football-data.org/v4"
	providerName   = "football-data"
	maxBodyBytes   = 6 << 20

	// HeaderRequestsAvailable is the remaining per-minute quota reported on every response.
	HeaderRequestsAvailable = "X-Requests-Available-Minute"
	headerAuthToken         = "X-Auth-Token"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Budget         *ratelimit.Budget
	Metrics        *metrics.Recorder
}

// Client talks to the football-data.org v4 API. It performs exactly one HTTP call per
// method invocation; retrying is left to the caller.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	budget         *ratelimit.Budget
	metrics        *metrics.Recorder
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		logger:         logger.Named("footballdata"),
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		budget:         cfg.Budget,
		metrics:        cfg.Metrics,
	}
}

// ListMatches queries /matches, /competitions/{code}/matches or /teams/{id}/matches
// depending on the filter. A payload without a matches field yields an empty slice.
func (c *Client) ListMatches(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	ctx, span := startSpan(ctx, "footballdata.Client.ListMatches")
	defer span.End()

	path, query := buildMatchesRequest(filter)

	var payload matchesEnvelope
	if err := c.getJSON(ctx, "matches", path, query, &payload); err != nil {
		return nil, err
	}
	if payload.Matches == nil {
		return []match.Match{}, nil
	}
	return payload.Matches, nil
}

func (c *Client) Standings(ctx context.Context, code string) (*competition.StandingsTable, error) {
	ctx, span := startSpan(ctx, "footballdata.Client.Standings")
	defer span.End()

	var table competition.StandingsTable
	if err := c.getJSON(ctx, "standings", competitionPath(code, competition.ResourceStandings), nil, &table); err != nil {
		return nil, err
	}
	if table.Standings == nil {
		table.Standings = []competition.StandingGroup{}
	}
	return &table, nil
}

func (c *Client) Scorers(ctx context.Context, code string) (*competition.ScorersTable, error) {
	ctx, span := startSpan(ctx, "footballdata.Client.Scorers")
	defer span.End()

	var table competition.ScorersTable
	if err := c.getJSON(ctx, "scorers", competitionPath(code, competition.ResourceScorers), nil, &table); err != nil {
		return nil, err
	}
	if table.Scorers == nil {
		table.Scorers = []competition.Scorer{}
	}
	return &table, nil
}

// FetchResource returns the upstream reply for a competition resource as-is.
func (c *Client) FetchResource(ctx context.Context, code string, resource competition.Resource) (competition.ResourceResponse, error) {
	ctx, span := startSpan(ctx, "footballdata.Client.FetchResource")
	defer span.End()

	if c.token == "" {
		return competition.ResourceResponse{}, usecase.ErrMissingCredentials
	}

	var out competition.ResourceResponse
	endpoint := "proxy_" + string(resource)
	err := c.guard(func() error {
		resp, err := c.send(ctx, endpoint, competitionPath(code, resource), nil)
		if err != nil {
			return err
		}
		out = competition.ResourceResponse{
			StatusCode:        resp.statusCode,
			Status:            resp.status,
			RequestsAvailable: resp.requestsAvailable,
			ContentType:       resp.contentType,
			Body:              resp.body,
		}
		c.observe(endpoint, outcomeOf(classifyResponse(resp.statusCode, resp.header, resp.body)), resp.elapsed)
		if competition.IsQuotaExhausted(resp.requestsAvailable) {
			c.budget.Drain()
		}
		return nil
	})
	return out, err
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, target any) error {
	return c.guard(func() error {
		resp, err := c.send(ctx, endpoint, path, query)
		if err != nil {
			return err
		}

		if err := classifyResponse(resp.statusCode, resp.header, resp.body); err != nil {
			if errors.Is(err, usecase.ErrRateLimited) {
				c.budget.Drain()
			}
			c.observe(endpoint, outcomeOf(err), resp.elapsed)
			return crerr.Wrapf(err, "football-data %s", path)
		}

		if err := sonic.Unmarshal(resp.body, target); err != nil {
			c.observe(endpoint, metrics.OutcomeDecode, resp.elapsed)
			return crerr.Wrapf(usecase.ErrUpstreamDecode, "football-data %s: %v", path, err)
		}
		c.observe(endpoint, metrics.OutcomeOK, resp.elapsed)
		return nil
	})
}

// guard runs fn behind the circuit breaker. Only transport failures and 5xx responses
// count against it; an exhausted quota is expected and says nothing about health.
func (c *Client) guard(fn func() error) error {
	if !c.circuitEnabled {
		return fn()
	}
	err := c.breaker.Execute(fn, isCircuitFailure)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.Warn("football-data circuit breaker rejected request", "state", c.breaker.State())
		return fmt.Errorf("%w: %w: football-data is temporarily unavailable", usecase.ErrUpstreamTransport, usecase.ErrDependencyUnavailable)
	}
	return err
}

type rawResponse struct {
	statusCode        int
	status            string
	header            http.Header
	requestsAvailable string
	contentType       string
	body              []byte
	elapsed           time.Duration
}

func (c *Client) send(ctx context.Context, endpoint, path string, query url.Values) (*rawResponse, error) {
	if err := c.budget.Acquire(ctx); err != nil {
		c.observe(endpoint, metrics.OutcomeTransport, 0)
		return nil, fmt.Errorf("%w: wait for request budget: %v", usecase.ErrUpstreamTransport, err)
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", usecase.ErrUpstreamTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(headerAuthToken, c.token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		elapsed := time.Since(started)
		c.observe(endpoint, metrics.OutcomeTransport, elapsed)
		return nil, fmt.Errorf("%w: send request: %s", usecase.ErrUpstreamTransport, sanitizeSensitiveText(err.Error(), c.token))
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		elapsed := time.Since(started)
		c.observe(endpoint, metrics.OutcomeTransport, elapsed)
		return nil, fmt.Errorf("%w: read response body: %v", usecase.ErrUpstreamTransport, err)
	}

	available := resp.Header.Get(HeaderRequestsAvailable)
	c.logger.DebugContext(ctx, "football-data response", "path", path, "status", resp.StatusCode, "requests_available", available)

	return &rawResponse{
		statusCode:        resp.StatusCode,
		status:            resp.Status,
		header:            resp.Header,
		requestsAvailable: available,
		contentType:       resp.Header.Get("Content-Type"),
		body:              append([]byte(nil), buf.B...),
		elapsed:           time.Since(started),
	}, nil
}

func (c *Client) observe(endpoint, outcome string, elapsed time.Duration) {
	c.metrics.ObserveUpstream(providerName, endpoint, outcome, elapsed)
}

func buildMatchesRequest(filter match.Filter) (string, url.Values) {
	query := url.Values{}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}
	if filter.DateFrom != "" {
		query.Set("dateFrom", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query.Set("dateTo", filter.DateTo)
	}
	if len(filter.Statuses) > 0 {
		query.Set("status", match.JoinStatuses(filter.Statuses))
	}
	if len(filter.Stages) > 0 {
		query.Set("stage", match.JoinStages(filter.Stages))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	switch {
	case filter.TeamID > 0:
		return fmt.Sprintf("/teams/%d/matches", filter.TeamID), query
	case filter.Competition != "":
		return competitionPath(filter.Competition, competition.ResourceMatches), query
	default:
		return "/matches", query
	}
}

func competitionPath(code string, resource competition.Resource) string {
	return "/competitions/" + url.PathEscape(strings.ToUpper(strings.TrimSpace(code))) + "/" + string(resource)
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, usecase.ErrUpstreamTransport) {
		return true
	}
	var statusErr *usecase.StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return value
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

type matchesEnvelope struct {
	Matches []match.Match `json:"matches"`
}
