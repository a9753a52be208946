package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/football-hub/internal/domain/competition"
)

// DefaultProxyCacheTTL is the revalidate hint for proxied resources other than scorers.
const DefaultProxyCacheTTL = 30 * time.Second

// ProxyError is the JSON body returned when the proxy cannot pass the upstream body through.
type ProxyError struct {
	Error         string `json:"error"`
	Details       any    `json:"details,omitempty"`
	IsRateLimited bool   `json:"isRateLimited,omitempty"`
}

// ProxyResult is either a raw upstream body (Failure nil) or a ProxyError to encode.
type ProxyResult struct {
	StatusCode  int
	ContentType string
	Body        []byte
	Failure     *ProxyError
	CacheTTL    time.Duration
}

// ProxyCompetition forwards a standings or scorers request for a league slug so the
// upstream token never leaves the server. Non-2xx statuses are passed through.
func (g *Gateway) ProxyCompetition(ctx context.Context, slug string, resource competition.Resource) ProxyResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.Gateway.ProxyCompetition")
	defer span.End()

	code, ok := competition.CodeForSlug(slug)
	if !ok {
		return ProxyResult{
			StatusCode: http.StatusBadRequest,
			Failure:    &ProxyError{Error: "Unknown league: " + slug},
		}
	}

	ttl := DefaultProxyCacheTTL
	if resource == competition.ResourceScorers {
		ttl = g.scorersTTL
	}

	key := fmt.Sprintf("proxy:%s:%s", resource, code)
	value, err := g.cache.GetOrLoadTTL(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return g.football.FetchResource(ctx, code, resource)
	}, func(v any) bool {
		resp, ok := v.(competition.ResourceResponse)
		return ok && resp.OK()
	})
	if err != nil {
		if errors.Is(err, ErrMissingCredentials) {
			g.logger.ErrorContext(ctx, "football-data token is not configured", "slug", slug)
			return ProxyResult{
				StatusCode: http.StatusInternalServerError,
				Failure:    &ProxyError{Error: "Server configuration error"},
			}
		}
		g.logger.ErrorContext(ctx, "proxy request failed", "slug", slug, "resource", resource, "error", err)
		return ProxyResult{
			StatusCode: http.StatusInternalServerError,
			Failure:    &ProxyError{Error: "Internal server error", Details: err.Error()},
		}
	}

	resp, _ := value.(competition.ResourceResponse)
	g.logger.DebugContext(ctx, "proxied competition resource", "code", code, "resource", resource, "status", resp.StatusCode, "requests_available", resp.RequestsAvailable)
	if !resp.OK() {
		g.logger.WarnContext(ctx, "football-data rejected proxied request", "code", code, "resource", resource, "status", resp.StatusCode)
		return ProxyResult{
			StatusCode: resp.StatusCode,
			Failure: &ProxyError{
				Error:         "Football data API error: " + statusLine(resp),
				Details:       decodeDetails(resp.Body),
				IsRateLimited: resp.QuotaExhausted(),
			},
		}
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	return ProxyResult{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        resp.Body,
		CacheTTL:    ttl,
	}
}

func statusLine(resp competition.ResourceResponse) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

// decodeDetails returns the upstream error body as JSON, or nil when it is not JSON.
func decodeDetails(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var details any
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &details); err != nil {
		return nil
	}
	return details
}
