package investsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Client operations - everything a logged-in investor can do

// ============================================================================
// Profile
// ============================================================================

// Me fetches the profile of the client behind the session token. A user who
// has never joined gets an *APIError matching ErrClientNotFound. A 2xx answer
// without a data object is malformed.
func (s *Session) Me(ctx context.Context) (*Client, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/clients/me", nil)
	if err != nil {
		return nil, err
	}

	var env Envelope[*Client]
	if err := decodeJSON(resp, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, missingData(resp)
	}

	return env.Data, nil
}

// ============================================================================
// Adhesion
// ============================================================================

// Join subscribes the user to the plan with the given monthly value. It is
// also used to rejoin after an exit.
func (s *Session) Join(ctx context.Context, monthlyValue float64) (*JoinResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/clients/join", JoinRequest{
		MonthlyValue: monthlyValue,
	})
	if err != nil {
		return nil, err
	}

	var env Envelope[MessageData]
	if err := decodeJSON(resp, &env); err != nil {
		return nil, err
	}

	return &JoinResponse{Message: env.message()}, nil
}

// UpdateMonthlyValue changes the recurring contribution.
func (s *Session) UpdateMonthlyValue(ctx context.Context, id ClientID, value float64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, clientPath(id, "monthly-value"), UpdateMonthlyValueRequest{
		NewMonthlyValue: value,
	})
	if err != nil {
		return err
	}

	return decodeJSON(resp, nil)
}

// Exit leaves the plan. Holdings stay in the client's custody.
func (s *Session) Exit(ctx context.Context, id ClientID) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, clientPath(id, "exit"), nil)
	if err != nil {
		return err
	}

	return decodeJSON(resp, nil)
}

// ============================================================================
// Dashboard
// ============================================================================

// Portfolio fetches holdings and aggregate figures for a client.
func (s *Session) Portfolio(ctx context.Context, id ClientID) (*Portfolio, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, clientPath(id, "portfolio"), nil)
	if err != nil {
		return nil, err
	}

	var env Envelope[*Portfolio]
	if err := decodeJSON(resp, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, missingData(resp)
	}

	return env.Data, nil
}

// EngineStatus fetches progress towards the next scheduled purchase.
func (s *Session) EngineStatus(ctx context.Context) (*EngineStatus, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/engine/status", nil)
	if err != nil {
		return nil, err
	}

	var env Envelope[*EngineStatus]
	if err := decodeJSON(resp, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, missingData(resp)
	}

	return env.Data, nil
}

func clientPath(id ClientID, action string) string {
	return "/clients/" + url.PathEscape(id.String()) + "/" + action
}
