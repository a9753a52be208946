package footballdata

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-hub/internal/domain/competition"
	"github.com/riskibarqy/football-hub/internal/platform/metrics"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

// classifyResponse maps a completed HTTP exchange to an upstream failure kind, or nil
// for a usable 2xx. An exhausted quota wins over the status code: the upstream has
// been seen to answer 200 with a zero quota and an empty body.
func classifyResponse(statusCode int, header http.Header, body []byte) error {
	if header != nil {
		if values, ok := header[http.CanonicalHeaderKey(HeaderRequestsAvailable)]; ok && len(values) > 0 && competition.IsQuotaExhausted(values[0]) {
			return fmt.Errorf("%w: status=%d", usecase.ErrRateLimited, statusCode)
		}
	}
	if statusCode == http.StatusForbidden {
		return fmt.Errorf("%w: status=%d", usecase.ErrUpstreamAuth, statusCode)
	}
	if statusCode < 200 || statusCode >= 300 {
		return &usecase.StatusError{StatusCode: statusCode, Body: abbreviateBody(body)}
	}
	return nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, usecase.ErrRateLimited):
		return metrics.OutcomeRateLimited
	case errors.Is(err, usecase.ErrUpstreamAuth):
		return metrics.OutcomeAuth
	case errors.Is(err, usecase.ErrUpstreamStatus):
		return metrics.OutcomeStatus
	case errors.Is(err, usecase.ErrUpstreamDecode):
		return metrics.OutcomeDecode
	default:
		return metrics.OutcomeTransport
	}
}
