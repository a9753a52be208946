package httpapi

import (
	"net/http"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	dashboard := h.dashboardService.Get(ctx)
	if dashboard.Failed() {
		h.logger.WarnContext(ctx, "dashboard degraded", "error", dashboard.Error)
	}
	writeEnvelope(ctx, w, h.cacheMaxAge, dashboard)
}
