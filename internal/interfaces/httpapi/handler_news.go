package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/football-hub/internal/usecase"
)

type newsRequest struct {
	Topic    string `validate:"max=200"`
	PageSize int    `validate:"omitempty,min=1"`
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	pageSize, err := parseOptionalInt(r.URL.Query().Get("pageSize"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: pageSize must be numeric", usecase.ErrInvalidInput))
		return
	}
	req := newsRequest{Topic: strings.TrimSpace(r.URL.Query().Get("q")), PageSize: pageSize}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeEnvelope(ctx, w, h.cacheMaxAge, h.gateway.News(ctx, req.Topic, req.PageSize))
}
