package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "football-hub-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	base := logging.NewNop()
	logger, shutdown, err := InitUptrace(cfg, base)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if logger != base {
		t.Fatalf("expected the base logger back when uptrace is disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}
