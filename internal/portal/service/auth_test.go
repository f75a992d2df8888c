package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/topfive/internal/portal/domain"
	"github.com/aussiebroadwan/topfive/pkg/investsdk"
)

func TestAuthServiceLogin(t *testing.T) {
	t.Parallel()

	t.Run("token abc and ACTIVE profile ends on dashboard", func(t *testing.T) {
		var tokens []string
		api := &fakeClientAPI{client: &investsdk.Client{ClientID: "1", Status: investsdk.StatusActive}}
		auth := &fakeAuth{token: "abc"}
		svc := &AuthService{API: auth, Resolver: &SessionResolver{Sessions: factory(api, &tokens)}}

		res := svc.Login(context.Background(), "123.456.789-01", "pw")
		require.Equal(t, domain.ScreenDashboard, res.Screen)
		require.Equal(t, "abc", res.Session.Token)
		require.Equal(t, "12345678901", auth.gotCPF)
		require.Equal(t, []string{"abc"}, tokens)
	})

	t.Run("client not found keeps token abc on adhesion", func(t *testing.T) {
		api := &fakeClientAPI{meErr: notFound()}
		svc := &AuthService{API: &fakeAuth{token: "abc"}, Resolver: &SessionResolver{Sessions: factory(api, nil)}}

		res := svc.Login(context.Background(), "12345678901", "pw")
		require.Equal(t, domain.ScreenAdhesion, res.Screen)
		require.Equal(t, &domain.Session{Token: "abc"}, res.Session)
	})

	t.Run("empty fields never call the api", func(t *testing.T) {
		auth := &fakeAuth{token: "abc"}
		svc := &AuthService{API: auth, Resolver: &SessionResolver{Sessions: factory(&fakeClientAPI{}, nil)}}

		res := svc.Login(context.Background(), "", "")
		require.Equal(t, domain.ScreenLogin, res.Screen)
		require.Equal(t, domain.Failure(TitleAttention, MsgLoginFieldsRequired), res.Notification)
		require.Empty(t, auth.gotCPF)
	})

	t.Run("failures stay on login", func(t *testing.T) {
		cases := []struct {
			err  error
			want *domain.Notification
		}{
			{
				&investsdk.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid CPF or password."},
				domain.Failure(TitleLoginFailed, "CPF ou senha inválidos."),
			},
			{
				&investsdk.APIError{StatusCode: http.StatusUnauthorized},
				domain.Failure(TitleLoginFailed, MsgLoginRejected),
			},
			{
				&investsdk.APIError{StatusCode: http.StatusForbidden, Code: investsdk.ErrorCodeInactiveUser, Message: "nope"},
				domain.Failure(TitleLoginFailed, "Usuário inativo. Entre em contato com o suporte."),
			},
			{
				&investsdk.TransportError{Op: "POST /auth/login/client", Err: investsdk.ErrNoToken},
				domain.Failure(TitleLoginFailed, MsgMalformedResponse),
			},
			{
				&investsdk.TransportError{Op: "POST /auth/login/client", Err: errors.New("dial tcp: refused")},
				domain.Failure(TitleConnectionError, MsgLoginUnreachable),
			},
		}
		for _, tc := range cases {
			api := &fakeClientAPI{}
			svc := &AuthService{API: &fakeAuth{loginErr: tc.err}, Resolver: &SessionResolver{Sessions: factory(api, nil)}}

			res := svc.Login(context.Background(), "12345678901", "pw")
			require.Equal(t, domain.ScreenLogin, res.Screen)
			require.Nil(t, res.Session)
			require.Equal(t, tc.want, res.Notification)
			require.Empty(t, api.Calls())
		}
	})
}

func TestAuthServiceRegister(t *testing.T) {
	t.Parallel()

	t.Run("success returns to login", func(t *testing.T) {
		auth := &fakeAuth{}
		svc := &AuthService{API: auth}

		res := svc.Register(context.Background(), validForm())
		require.Equal(t, domain.ScreenLogin, res.Screen)
		require.Equal(t, domain.Success(TitleSuccess, MsgRegisterSucceeded), res.Notification)
		require.Equal(t, "1990-12-31", auth.gotReg.BirthDate)
	})

	t.Run("invalid form is not sent", func(t *testing.T) {
		auth := &fakeAuth{}
		svc := &AuthService{API: auth}
		form := validForm()
		form.Email = "nope"

		res := svc.Register(context.Background(), form)
		require.Equal(t, domain.ScreenRegister, res.Screen)
		require.Equal(t, domain.Failure(TitleInvalidEmail, MsgRegisterInvalidEmail), res.Notification)
		require.Empty(t, auth.gotReg.CPF)
	})

	t.Run("server codes are translated", func(t *testing.T) {
		err := &investsdk.APIError{StatusCode: http.StatusConflict, Code: investsdk.ErrorCodeCPFAlreadyRegistered, Message: "CPF already registered."}
		svc := &AuthService{API: &fakeAuth{regErr: err}}

		res := svc.Register(context.Background(), validForm())
		require.Equal(t, domain.ScreenRegister, res.Screen)
		require.Equal(t, domain.Failure(TitleRegisterFailed, "Este CPF já está cadastrado."), res.Notification)
	})

	t.Run("unknown messages are shown verbatim", func(t *testing.T) {
		err := &investsdk.APIError{StatusCode: http.StatusBadRequest, Message: "Something odd."}
		svc := &AuthService{API: &fakeAuth{regErr: err}}

		res := svc.Register(context.Background(), validForm())
		require.Equal(t, domain.Failure(TitleRegisterFailed, "Something odd."), res.Notification)
	})

	t.Run("network failure", func(t *testing.T) {
		err := &investsdk.TransportError{Op: "POST /auth/register", Err: errors.New("timeout")}
		svc := &AuthService{API: &fakeAuth{regErr: err}}

		res := svc.Register(context.Background(), validForm())
		require.Equal(t, domain.ScreenRegister, res.Screen)
		require.Equal(t, domain.Failure(TitleConnectionError, "Erro de conexão. Verifique sua internet."), res.Notification)
	})
}
