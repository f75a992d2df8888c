package service

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/aussiebroadwan/topfive/pkg/investsdk"
)

var errRefused = &investsdk.TransportError{Op: "GET /clients/me", Err: errors.New("connection refused")}

var errMalformed = &investsdk.TransportError{Op: "POST /clients/join", Err: investsdk.ErrMalformedResponse}

func notFound() error {
	return &investsdk.APIError{StatusCode: http.StatusNotFound, Code: investsdk.ErrorCodeClientNotFound, Message: "Client not found."}
}

// fakeClientAPI records calls and returns canned results.
type fakeClientAPI struct {
	mu    sync.Mutex
	calls []string

	client    *investsdk.Client
	meErr     error
	join      *investsdk.JoinResponse
	joinErr   error
	portfolio *investsdk.Portfolio
	portErr   error
	engine    *investsdk.EngineStatus
	engineErr error
	updateErr error
	exitErr   error

	updatedTo float64
}

func (f *fakeClientAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeClientAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClientAPI) Me(context.Context) (*investsdk.Client, error) {
	f.record("me")
	return f.client, f.meErr
}

func (f *fakeClientAPI) Join(_ context.Context, _ float64) (*investsdk.JoinResponse, error) {
	f.record("join")
	if f.joinErr != nil {
		return nil, f.joinErr
	}
	if f.join == nil {
		return &investsdk.JoinResponse{}, nil
	}
	return f.join, nil
}

func (f *fakeClientAPI) Portfolio(context.Context, investsdk.ClientID) (*investsdk.Portfolio, error) {
	f.record("portfolio")
	return f.portfolio, f.portErr
}

func (f *fakeClientAPI) EngineStatus(context.Context) (*investsdk.EngineStatus, error) {
	f.record("engine")
	return f.engine, f.engineErr
}

func (f *fakeClientAPI) UpdateMonthlyValue(_ context.Context, _ investsdk.ClientID, v float64) error {
	f.record("update")
	if f.updateErr == nil {
		f.updatedTo = v
	}
	return f.updateErr
}

func (f *fakeClientAPI) Exit(context.Context, investsdk.ClientID) error {
	f.record("exit")
	return f.exitErr
}

// factory returns a SessionFactory serving api and remembering the tokens
// it was asked for.
func factory(api *fakeClientAPI, tokens *[]string) SessionFactory {
	return func(token string) ClientAPI {
		if tokens != nil {
			*tokens = append(*tokens, token)
		}
		return api
	}
}

type fakeAuth struct {
	token    string
	loginErr error
	regErr   error

	gotCPF string
	gotReg investsdk.RegisterRequest
}

func (f *fakeAuth) Login(_ context.Context, cpf, _ string) (*investsdk.Session, error) {
	f.gotCPF = cpf
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return investsdk.NewSDKClient("http://127.0.0.1:0").NewSession(f.token), nil
}

func (f *fakeAuth) Register(_ context.Context, req investsdk.RegisterRequest) (*investsdk.RegisterResponse, error) {
	f.gotReg = req
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &investsdk.RegisterResponse{Message: "User registered successfully."}, nil
}
