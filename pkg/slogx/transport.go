package slogx

import (
	"log/slog"
	"net/http"
	"time"
)

// Transport logs every outgoing request once it completes. The logger is
// taken from the request context when present, falling back to Base.
type Transport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

// NewTransport wraps next with request logging.
func NewTransport(next http.RoundTripper, logger *slog.Logger) *Transport {
	return &Transport{Base: next, Logger: logger}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.Base
	if next == nil {
		next = http.DefaultTransport
	}

	fallback := t.Logger
	if fallback == nil {
		fallback = slog.Default()
	}
	logger := fromContextOr(req.Context(), fallback).With(
		"req_id", req.Header.Get("X-Request-ID"),
		"method", req.Method,
		"path", req.URL.Path,
	)

	start := time.Now()
	resp, err := next.RoundTrip(req)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		logger.Warn("http_request_failed", "duration_ms", duration, "error", err)
		return nil, err
	}

	logger.Debug("http_request", "status", resp.StatusCode, "duration_ms", duration)
	return resp, nil
}
