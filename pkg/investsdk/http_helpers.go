package investsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an HTTP request with a JSON body (when body is not
// nil). A non-empty token is attached as a bearer Authorization header.
// Failures to reach the server come back as *TransportError.
func (c *SDKClient) doRequest(
	ctx context.Context,
	method, path string,
	body any,
	headers map[string]string,
) (*http.Response, error) {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	return resp, nil
}

// doAuthRequest performs a request authenticated with the session's token.
func (s *Session) doAuthRequest(
	ctx context.Context,
	method, path string,
	body any,
) (*http.Response, error) {
	return s.client.doRequest(ctx, method, path, body, map[string]string{
		"Authorization": "Bearer " + s.token,
	})
}

// decodeJSON reads the whole response and decodes it into target. Any
// non-2xx status becomes a typed error via parseErrorResponse. An empty
// 2xx body leaves target untouched; a non-JSON 2xx body is a transport
// failure wrapping ErrMalformedResponse.
func decodeJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: opName(resp), Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return &TransportError{Op: opName(resp), Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}

	return nil
}

// missingData reports a 2xx response whose envelope carried no data object.
func missingData(resp *http.Response) error {
	return &TransportError{Op: opName(resp), Err: fmt.Errorf("%w: missing data", ErrMalformedResponse)}
}

// opName names the request behind resp for error messages.
func opName(resp *http.Response) string {
	if resp == nil || resp.Request == nil {
		return "request"
	}
	return resp.Request.Method + " " + resp.Request.URL.Path
}
