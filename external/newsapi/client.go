package newsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/football-hub/internal/domain/news"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/platform/metrics"
	"github.com/riskibarqy/football-hub/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL = "https://newsapi.org/v2"
	providerName   = "newsapi"
	maxBodyBytes   = 2 << 20
)

var (
	json             = jsoniter.ConfigCompatibleWithStandardLibrary
	apiKeyParamRegex = regexp.MustCompile(`apiKey=[^&\s"']+`)
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	Logger     *logging.Logger
	Metrics    *metrics.Recorder
}

// Client queries the newsapi.org "everything" endpoint. Calls are single shot.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logging.Logger
	metrics    *metrics.Recorder
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

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		logger:     logger.Named("newsapi"),
		metrics:    cfg.Metrics,
	}
}

type everythingResponse struct {
	Status       string         `json:"status"`
	TotalResults int            `json:"totalResults"`
	Articles     []news.Article `json:"articles"`
	Code         string         `json:"code,omitempty"`
	Message      string         `json:"message,omitempty"`
}

// Everything searches articles matching query.Topic. Non-2xx responses come back as
// *usecase.StatusError; everything else that goes wrong is a transport or decode error.
func (c *Client) Everything(ctx context.Context, query news.Query) ([]news.Article, error) {
	query = query.Normalize()

	values := url.Values{}
	values.Set("apiKey", c.apiKey)
	values.Set("q", query.Topic)
	values.Set("pageSize", strconv.Itoa(query.PageSize))
	fullURL := c.baseURL + "/everything?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %s", usecase.ErrUpstreamTransport, sanitizeSensitiveText(err.Error(), c.apiKey))
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(providerName, "everything", metrics.OutcomeTransport, time.Since(started))
		return nil, fmt.Errorf("%w: send request: %s", usecase.ErrUpstreamTransport, sanitizeSensitiveText(err.Error(), c.apiKey))
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		c.metrics.ObserveUpstream(providerName, "everything", metrics.OutcomeTransport, time.Since(started))
		return nil, fmt.Errorf("%w: read response body: %v", usecase.ErrUpstreamTransport, err)
	}
	elapsed := time.Since(started)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.ObserveUpstream(providerName, "everything", metrics.OutcomeStatus, elapsed)
		c.logger.WarnContext(ctx, "news request rejected", "status", resp.StatusCode, "body", abbreviateBody(buf.B))
		return nil, &usecase.StatusError{StatusCode: resp.StatusCode, Body: abbreviateBody(buf.B)}
	}

	var payload everythingResponse
	if err := json.Unmarshal(buf.B, &payload); err != nil {
		c.metrics.ObserveUpstream(providerName, "everything", metrics.OutcomeDecode, elapsed)
		return nil, fmt.Errorf("%w: decode news payload: %v", usecase.ErrUpstreamDecode, err)
	}
	c.metrics.ObserveUpstream(providerName, "everything", metrics.OutcomeOK, elapsed)

	if payload.Articles == nil {
		return []news.Article{}, nil
	}
	return payload.Articles, nil
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "apiKey=REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
