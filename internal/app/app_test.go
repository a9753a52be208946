package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:                          config.EnvDev,
		ServiceName:                     "football-hub-api",
		HTTPAddr:                        ":0",
		ReadTimeout:                     time.Second,
		WriteTimeout:                    time.Second,
		CORSAllowedOrigins:              []string{"*"},
		MetricsNamespace:                "app_test",
		FootballDataBaseURL:             "http://127.0.0.1:1",
		FootballDataTimeout:             time.Second,
		FootballDataCircuitEnabled:      true,
		FootballDataCircuitFailureCount: 5,
		FootballDataCircuitOpenTimeout:  time.Second,
		FootballDataCircuitHalfOpenReq:  1,
		NewsAPIBaseURL:                  "http://127.0.0.1:1",
		NewsAPITimeout:                  time.Second,
		Location:                        time.UTC,
		OlderMatchesMaxDays:             3,
		TeamUpcomingLimit:               3,
		CacheEnabled:                    true,
		CacheTTL:                        time.Minute,
		ScorersCacheTTL:                 time.Hour,
		NewsCacheTTL:                    20 * time.Second,
		WarmerInterval:                  time.Minute,
		WarmerWorkers:                   1,
	}
}

func TestNew_ServesHealthAndMetrics(t *testing.T) {
	a, err := New(testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	if a.WarmerEnabled() {
		t.Fatalf("expected warmer disabled by default")
	}

	for _, path := range []string{"/healthz", "/metrics"} {
		rec := httptest.NewRecorder()
		a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestNew_WarmerNeedsCache(t *testing.T) {
	cfg := testConfig()
	cfg.WarmerEnabled = true
	cfg.CacheEnabled = false

	a, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	if a.WarmerEnabled() {
		t.Fatalf("expected no warmer without a cache")
	}

	cfg.CacheEnabled = true
	a, err = New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	if !a.WarmerEnabled() {
		t.Fatalf("expected warmer to be built")
	}
}

func TestNew_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, err := New(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
