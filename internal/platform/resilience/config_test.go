package resilience

import (
	"testing"
	"time"
)

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	tests := []struct {
		name string
		in   CircuitBreakerConfig
		want CircuitBreakerConfig
	}{
		{
			name: "zero values take football-data defaults",
			in:   CircuitBreakerConfig{Enabled: true},
			want: DefaultCircuitBreakerConfig(),
		},
		{
			name: "open timeout is capped at the quota window",
			in:   CircuitBreakerConfig{Enabled: true, FailureThreshold: 3, OpenTimeout: 5 * time.Minute, HalfOpenMaxReq: 1},
			want: CircuitBreakerConfig{Enabled: true, FailureThreshold: 3, OpenTimeout: MaxOpenTimeout, HalfOpenMaxReq: 1},
		},
		{
			name: "probes never exceed the failure threshold",
			in:   CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenMaxReq: 4},
			want: CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenMaxReq: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCircuitBreakerConfig(tt.in); got != tt.want {
				t.Fatalf("NormalizeCircuitBreakerConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
