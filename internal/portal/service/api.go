package service

import (
	"context"

	"github.com/aussiebroadwan/topfive/pkg/investsdk"
)

// Authenticator is the unauthenticated half of the API.
type Authenticator interface {
	Login(ctx context.Context, cpf, password string) (*investsdk.Session, error)
	Register(ctx context.Context, req investsdk.RegisterRequest) (*investsdk.RegisterResponse, error)
}

// ClientAPI is the bearer authenticated half of the API. *investsdk.Session
// implements it.
type ClientAPI interface {
	Me(ctx context.Context) (*investsdk.Client, error)
	Join(ctx context.Context, monthlyValue float64) (*investsdk.JoinResponse, error)
	Portfolio(ctx context.Context, id investsdk.ClientID) (*investsdk.Portfolio, error)
	EngineStatus(ctx context.Context) (*investsdk.EngineStatus, error)
	UpdateMonthlyValue(ctx context.Context, id investsdk.ClientID, value float64) error
	Exit(ctx context.Context, id investsdk.ClientID) error
}

// SessionFactory binds a bearer token to a ClientAPI.
type SessionFactory func(token string) ClientAPI

// SDKSessions adapts an SDK client into a SessionFactory.
func SDKSessions(c *investsdk.SDKClient) SessionFactory {
	return func(token string) ClientAPI {
		return c.NewSession(token)
	}
}
