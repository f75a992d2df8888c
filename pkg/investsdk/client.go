package investsdk

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aussiebroadwan/topfive/pkg/httpx"
	"github.com/aussiebroadwan/topfive/pkg/slogx"
)

// DefaultBaseURL is where the API listens in local development.
const DefaultBaseURL = "http://localhost:5246/api/v1"

// SDKClient is a client for the Top Five investment API.
// It provides access to unauthenticated operations (login, register) and
// creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// DeviceID identifies this client process to the API. It is generated
	// once per SDKClient and sent as X-Device-ID on every request.
	DeviceID string
}

// Options tune the transport stack built by New.
type Options struct {
	// Timeout bounds a single request. Default: 10s
	Timeout time.Duration

	// RateLimit paces outgoing requests. Zero value disables pacing.
	RateLimit httpx.RateLimitConfig

	// Logger receives one line per request. Default: slog.Default()
	Logger *slog.Logger

	// UserAgent is sent on every request. Default: "topfive-sdk"
	UserAgent string
}

// NewSDKClient creates a client with default options.
func NewSDKClient(baseURL string) *SDKClient {
	return New(baseURL, Options{})
}

// New creates a client whose transport stamps request headers, logs each
// request and applies the configured rate limit, in that order.
func New(baseURL string, opts Options) *SDKClient {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "topfive-sdk"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	deviceID := uuid.NewString()

	transport := httpx.Chain(http.DefaultTransport,
		func(next http.RoundTripper) http.RoundTripper {
			return &httpx.HeaderTransport{Base: next, Headers: map[string]string{
				"User-Agent":  opts.UserAgent,
				"X-Device-ID": deviceID,
				"Accept":      "application/json",
			}}
		},
		func(next http.RoundTripper) http.RoundTripper {
			return slogx.NewTransport(next, opts.Logger)
		},
		func(next http.RoundTripper) http.RoundTripper {
			return httpx.NewLimitedTransport(next, opts.RateLimit)
		},
	)

	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		DeviceID: deviceID,
	}
}

// Login authenticates a client by CPF and password and returns a Session
// carrying the issued bearer token. The CPF is sent as given; callers strip
// punctuation beforehand.
func (c *SDKClient) Login(ctx context.Context, cpf, password string) (*Session, error) {
	req := LoginRequest{CPF: cpf, Password: password}

	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login/client", req, nil)
	if err != nil {
		return nil, err
	}

	var env Envelope[LoginData]
	if err := decodeJSON(resp, &env); err != nil {
		return nil, err
	}

	if env.Data.Token == "" {
		return nil, &TransportError{Op: opName(resp), Err: ErrNoToken}
	}

	return c.NewSession(env.Data.Token), nil
}

// Register creates a new CLIENT account. A 2xx response with or without a
// body counts as success.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if req.Role == "" {
		req.Role = RoleClient
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/register", req, nil)
	if err != nil {
		return nil, err
	}

	var env Envelope[MessageData]
	if err := decodeJSON(resp, &env); err != nil {
		return nil, err
	}

	return &RegisterResponse{Message: env.message()}, nil
}

// NewSession wraps an existing bearer token. No request is made; the token
// is validated by the server on first use.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}
