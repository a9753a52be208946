package resilience

import "time"

// MaxOpenTimeout is the longest a breaker stays open. football-data quotas reset every
// minute, so probing less often than that only delays recovery.
const MaxOpenTimeout = time.Minute

// CircuitBreakerConfig configures the breaker in front of one upstream API.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

// DefaultCircuitBreakerConfig is tuned for football-data: five consecutive outages open
// the breaker, and after 15s two probes decide whether it closes again.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// NormalizeCircuitBreakerConfig fills unset values from the defaults and caps the open
// timeout at MaxOpenTimeout. Enabled is left as given.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	switch {
	case cfg.OpenTimeout <= 0:
		cfg.OpenTimeout = defaults.OpenTimeout
	case cfg.OpenTimeout > MaxOpenTimeout:
		cfg.OpenTimeout = MaxOpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	if cfg.HalfOpenMaxReq > cfg.FailureThreshold {
		cfg.HalfOpenMaxReq = cfg.FailureThreshold
	}
	return cfg
}
