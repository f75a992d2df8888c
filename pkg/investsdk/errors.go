package investsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ============================================================================
// API Error Codes
// ============================================================================

const (
	// Returned by GET /clients/me when the user has never joined a plan.
	ErrorCodeClientNotFound = "CLIENT_NOT_FOUND"

	ErrorCodeInvalidCredentials     = "INVALID_CREDENTIALS"
	ErrorCodeInactiveUser           = "INACTIVE_USER"
	ErrorCodeCPFAlreadyRegistered   = "CPF_ALREADY_REGISTERED"
	ErrorCodeEmailAlreadyRegistered = "EMAIL_ALREADY_REGISTERED"
	ErrorCodeAlreadyJoined          = "ALREADY_JOINED"
	ErrorCodeInvalidMonthlyValue    = "INVALID_MONTHLY_VALUE"
	ErrorCodeServerError            = "SERVER_ERROR"
)

var (
	// ErrMalformedResponse is wrapped by TransportError when a response body
	// is not the JSON the client expected.
	ErrMalformedResponse = errors.New("malformed response body")

	// ErrNoToken is wrapped by TransportError when a successful login
	// response carries no token.
	ErrNoToken = errors.New("login response carried no token")
)

// ============================================================================
// APIError - server reported business error
// ============================================================================

// APIError is a non-2xx response from the API. Code is taken from
// data.code when the server provides one; Message from the top-level
// message field.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Code is the machine readable error code (e.g., "CLIENT_NOT_FOUND")
	Code string

	// Message is the server supplied human readable message, often English
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "investsdk: HTTP %d", e.StatusCode)
	if e.Code != "" {
		b.WriteString(" " + e.Code)
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	return b.String()
}

// Is matches another *APIError by status and code, so callers can compare
// against a template such as ErrClientNotFound with errors.Is.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.StatusCode == e.StatusCode && t.Code == e.Code
}

// ErrClientNotFound matches the "never joined" response of GET /clients/me.
var ErrClientNotFound = &APIError{
	StatusCode: http.StatusNotFound,
	Code:       ErrorCodeClientNotFound,
}

// ============================================================================
// TransportError - request never produced a usable response
// ============================================================================

// TransportError covers everything that is not a server verdict: refused
// connections, timeouts, unreadable or non-JSON bodies.
type TransportError struct {
	// Op is "<METHOD> <path>" of the failed request
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("investsdk: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Malformed reports whether the server answered but the body could not be
// understood.
func (e *TransportError) Malformed() bool {
	return errors.Is(e.Err, ErrMalformedResponse) || errors.Is(e.Err, ErrNoToken)
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// errorEnvelope is the shape of API error bodies:
// { "message": "...", "data": { "code": "..." } }
type errorEnvelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// parseErrorResponse turns a non-2xx response into a typed error. Only a
// JSON body is a server verdict; empty or non-JSON bodies yield a
// TransportError wrapping ErrMalformedResponse.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	if len(strings.TrimSpace(string(body))) == 0 {
		return &TransportError{Op: opName(resp), Err: fmt.Errorf("%w: empty HTTP %d body", ErrMalformedResponse, resp.StatusCode)}
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &TransportError{Op: opName(resp), Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}
	apiErr.Message = env.Message

	// data may be null, a string or an object; only an object with a code
	// is interesting
	var data struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if len(env.Data) > 0 && json.Unmarshal(env.Data, &data) == nil {
		apiErr.Code = data.Code
		if apiErr.Message == "" {
			apiErr.Message = data.Message
		}
	}

	return apiErr
}
