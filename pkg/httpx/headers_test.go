package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/topfive/pkg/httpx"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestHeaderTransport(t *testing.T) {
	t.Parallel()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	client := &http.Client{Transport: &httpx.HeaderTransport{
		Headers: map[string]string{
			"User-Agent":  "topfive/test",
			"X-Device-ID": "device-1",
		},
	}}

	t.Run("stamps static headers and request id", func(t *testing.T) {
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()

		require.Equal(t, "topfive/test", got.Get("User-Agent"))
		require.Equal(t, "device-1", got.Get("X-Device-ID"))
		_, err = ulid.ParseStrict(got.Get("X-Request-ID"))
		require.NoError(t, err)
	})

	t.Run("keeps caller supplied headers", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
		require.NoError(t, err)
		req.Header.Set("X-Request-ID", "fixed")
		req.Header.Set("X-Device-ID", "other")

		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		require.Equal(t, "fixed", got.Get("X-Request-ID"))
		require.Equal(t, "other", got.Get("X-Device-ID"))
	})
}

type recordingTripper struct {
	name  string
	order *[]string
	next  http.RoundTripper
}

func (r *recordingTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	*r.order = append(*r.order, r.name)
	return r.next.RoundTrip(req)
}

func TestChainOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	var order []string
	wrap := func(name string) func(http.RoundTripper) http.RoundTripper {
		return func(next http.RoundTripper) http.RoundTripper {
			return &recordingTripper{name: name, order: &order, next: next}
		}
	}

	client := &http.Client{Transport: httpx.Chain(http.DefaultTransport, wrap("outer"), wrap("inner"))}
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, []string{"outer", "inner"}, order)
}
