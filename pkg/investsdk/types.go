package investsdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ============================================================================
// Envelope
// ============================================================================

// Envelope is the wrapper every API response body uses.
type Envelope[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// MessageData is the payload of endpoints that only report a message.
type MessageData struct {
	Message string `json:"message,omitempty"`
}

// UnmarshalJSON tolerates data payloads that are not objects (null, bare
// strings); only an object's message field is kept.
func (m *MessageData) UnmarshalJSON(b []byte) error {
	var raw struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(b, &raw) == nil {
		m.Message = raw.Message
	}
	return nil
}

// message prefers the top-level message and falls back to data.message.
func (e Envelope[T]) message() string {
	if e.Message != "" {
		return e.Message
	}
	if md, ok := any(e.Data).(MessageData); ok {
		return md.Message
	}
	return ""
}

// ============================================================================
// Auth Types
// ============================================================================

const RoleClient = "CLIENT"

// LoginRequest is the body of POST /auth/login/client.
type LoginRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

// LoginData is the data payload of a successful login.
type LoginData struct {
	Token string `json:"token"`
}

// RegisterRequest is the body of POST /auth/register. BirthDate is
// YYYY-MM-DD.
type RegisterRequest struct {
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	BirthDate string `json:"birthDate"`
	Role      string `json:"role"`
}

// RegisterResponse reports the server message of a successful registration.
type RegisterResponse struct {
	Message string
}

// ============================================================================
// Client Types
// ============================================================================

// Status is the server reported lifecycle state of a client. The set is
// open: values other than the constants below can and do appear.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusActive  Status = "ACTIVE"
	StatusExited  Status = "EXITED"
)

// ClientID is accepted from the API as either a JSON string or number.
type ClientID string

func (id *ClientID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ClientID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("client id: %w", err)
	}
	*id = ClientID(n.String())
	return nil
}

func (id ClientID) String() string { return string(id) }

// Client is the profile returned by GET /clients/me.
type Client struct {
	ClientID     ClientID `json:"clientId"`
	Name         string   `json:"name"`
	CPF          string   `json:"cpf,omitempty"`
	Email        string   `json:"email,omitempty"`
	MonthlyValue float64  `json:"monthlyValue"`
	JoinDate     string   `json:"joinDate"`
	Status       Status   `json:"status"`
}

// JoinedAt parses JoinDate. ok is false when the date is missing or in an
// unknown layout.
func (c *Client) JoinedAt() (time.Time, bool) {
	return parseAPITime(c.JoinDate)
}

// JoinRequest is the body of POST /clients/join.
type JoinRequest struct {
	MonthlyValue float64 `json:"monthlyValue"`
}

// JoinResponse reports the outcome message of a join.
type JoinResponse struct {
	Message string
}

// Reactivated reports whether the server treated the join as a return of a
// previously exited client.
func (r *JoinResponse) Reactivated() bool {
	return strings.Contains(r.Message, "Welcome back") || strings.Contains(r.Message, "reactivated")
}

// UpdateMonthlyValueRequest is the body of PUT /clients/{id}/monthly-value.
type UpdateMonthlyValueRequest struct {
	NewMonthlyValue float64 `json:"newMonthlyValue"`
}

// ============================================================================
// Portfolio Types
// ============================================================================

// Portfolio is the data payload of GET /clients/{id}/portfolio.
type Portfolio struct {
	GraphicAccount string  `json:"graphicAccount,omitempty"`
	Summary        Summary `json:"summary"`
	Assets         []Asset `json:"assets"`
}

// Summary holds the aggregate figures, all computed by the server.
type Summary struct {
	TotalInvested           float64 `json:"totalInvested"`
	CurrentPortfolioValue   float64 `json:"currentPortfolioValue"`
	ProfitabilityPercentage float64 `json:"profitabilityPercentage"`
	TotalPL                 float64 `json:"totalPL"`
}

// Asset is a single custody position.
type Asset struct {
	Ticker               string  `json:"ticker"`
	Quantity             float64 `json:"quantity"`
	AveragePrice         float64 `json:"averagePrice"`
	CurrentValue         float64 `json:"currentValue"`
	PL                   float64 `json:"pl"`
	PLPercentage         float64 `json:"plPercentage"`
	PortfolioComposition float64 `json:"portfolioComposition"`
}

// EngineStatus is the data payload of GET /engine/status.
type EngineStatus struct {
	NextPurchaseDate   string  `json:"nextPurchaseDate"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// NextPurchaseAt parses NextPurchaseDate.
func (e *EngineStatus) NextPurchaseAt() (time.Time, bool) {
	return parseAPITime(e.NextPurchaseDate)
}

var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func parseAPITime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range apiTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
