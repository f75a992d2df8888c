package httpx

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig defines the pacing applied to outgoing requests.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int `koanf:"requests" yaml:"requests"`
	// Window is the time window for rate limiting
	Window time.Duration `koanf:"window" yaml:"window"`
	// Burst allows for temporary bursts above the rate limit
	Burst int `koanf:"burst" yaml:"burst"`
}

// DefaultClientLimit is generous enough that a person clicking through
// screens never notices it; it only smooths out runaway loops.
var DefaultClientLimit = RateLimitConfig{
	RequestsPerWindow: 20,
	Window:            time.Second,
	Burst:             10,
}

// ParseRateLimitFromEnv reads RATELIMIT_{prefix}_{REQUESTS,WINDOW_SEC,BURST}
// over defaultConfig. Invalid or non-positive values are ignored.
func ParseRateLimitFromEnv(prefix string, defaultConfig RateLimitConfig) RateLimitConfig {
	config := defaultConfig

	if val := os.Getenv("RATELIMIT_" + prefix + "_REQUESTS"); val != "" {
		if requests, err := strconv.Atoi(val); err == nil && requests > 0 {
			config.RequestsPerWindow = requests
		}
	}

	if val := os.Getenv("RATELIMIT_" + prefix + "_WINDOW_SEC"); val != "" {
		if windowSec, err := strconv.Atoi(val); err == nil && windowSec > 0 {
			config.Window = time.Duration(windowSec) * time.Second
		}
	}

	if val := os.Getenv("RATELIMIT_" + prefix + "_BURST"); val != "" {
		if burst, err := strconv.Atoi(val); err == nil && burst > 0 {
			config.Burst = burst
		}
	}

	return config
}

// Limit converts the config into a token bucket rate. A zero config means
// no limit.
func (c RateLimitConfig) Limit() rate.Limit {
	if c.RequestsPerWindow <= 0 || c.Window <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(c.RequestsPerWindow) / c.Window.Seconds())
}

// LimitedTransport delays outgoing requests until the limiter admits them.
// It never drops or retries a request; a cancelled context aborts the wait.
type LimitedTransport struct {
	Base    http.RoundTripper
	limiter *rate.Limiter
}

// NewLimitedTransport wraps next with a token bucket built from cfg.
func NewLimitedTransport(next http.RoundTripper, cfg RateLimitConfig) *LimitedTransport {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &LimitedTransport{
		Base:    next,
		limiter: rate.NewLimiter(cfg.Limit(), burst),
	}
}

func (t *LimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	next := t.Base
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(req)
}
