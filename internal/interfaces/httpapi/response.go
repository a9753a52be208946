package httpapi

import (
	"context"
	"errors"
	"net/http"

	"strconv"
	"time"

	sonic "github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/football-hub/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "football-hub"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: err.Error(),
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: err.Error(),
				},
			},
		},
	})
}

// envelopeResult is satisfied by every usecase.Envelope instantiation.
type envelopeResult interface {
	Usable() bool
}

// writeEnvelope sends a gateway envelope as is. Failures are still 200s, the envelope
// carries the error; only clean results are cacheable.
func writeEnvelope(ctx context.Context, w http.ResponseWriter, maxAge time.Duration, env envelopeResult) {
	ctx, span := startSpan(ctx, "httpapi.writeEnvelope")
	defer span.End()

	if env.Usable() {
		setMaxAge(w, maxAge)
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}
	writeJSON(ctx, w, http.StatusOK, env)
}

// writeProxy sends either the raw upstream body or the proxy error document.
func writeProxy(ctx context.Context, w http.ResponseWriter, result usecase.ProxyResult) {
	ctx, span := startSpan(ctx, "httpapi.writeProxy")
	defer span.End()

	if result.Failure != nil {
		body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(result.Failure)
		if err != nil {
			writeInternalError(ctx, w)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(result.StatusCode)
		_, _ = w.Write(body)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	setMaxAge(w, result.CacheTTL)
	w.WriteHeader(result.StatusCode)
	_, _ = w.Write(result.Body)
}

func setMaxAge(w http.ResponseWriter, maxAge time.Duration) {
	if maxAge <= 0 {
		return
	}
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(maxAge/time.Second)))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	const msg = "internal server error"

	writeJSON(ctx, w, http.StatusInternalServerError, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Status:  "INTERNAL",
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  "internalError",
					Message: msg,
				},
			},
		},
	})
}

func mapError(ctx context.Context, err error) mappedError {
	ctx, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "dependencyUnavailable",
			Status:     "UNAVAILABLE",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
