package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/topfive/pkg/idx"
)

// HeaderTransport stamps static headers and a fresh X-Request-ID on every
// outgoing request. Headers already set on the request win.
type HeaderTransport struct {
	Base    http.RoundTripper
	Headers map[string]string
}

func (t *HeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request
	req = req.Clone(req.Context())

	for key, value := range t.Headers {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", idx.New().String())
	}

	next := t.Base
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(req)
}

// Chain builds base wrapped by each wrapper in order, so the first wrapper
// is the outermost.
func Chain(base http.RoundTripper, wrappers ...func(http.RoundTripper) http.RoundTripper) http.RoundTripper {
	rt := base
	for i := len(wrappers) - 1; i >= 0; i-- {
		rt = wrappers[i](rt)
	}
	return rt
}
