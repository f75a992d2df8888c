package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/topfive/internal/portal/domain"
	"github.com/aussiebroadwan/topfive/pkg/investsdk"
	"github.com/aussiebroadwan/topfive/pkg/slogx"
)

// Resolution is where the user lands after a profile fetch. Session is nil
// whenever Screen is LOGIN.
type Resolution struct {
	Screen       domain.Screen
	Session      *domain.Session
	Notification *domain.Notification
}

// SessionResolver decides the post-login screen from GET /clients/me.
type SessionResolver struct {
	Sessions SessionFactory
}

// Resolve fetches the profile behind token and maps the outcome:
//
//   - 404 CLIENT_NOT_FOUND: ADHESION, session with token only
//   - 2xx: ScreenForStatus(status), session with token and client
//   - other API error: LOGIN with the server message
//   - transport failure: LOGIN with a connection error
func (r *SessionResolver) Resolve(ctx context.Context, token string) Resolution {
	l := slogx.FromContext(ctx)

	client, err := r.Sessions(token).Me(ctx)
	if err == nil {
		screen := ScreenForStatus(client.Status)
		l.Info("client status resolved", "status", client.Status, "screen", screen)
		return Resolution{
			Screen:  screen,
			Session: &domain.Session{Token: token, Client: client},
		}
	}

	if errors.Is(err, investsdk.ErrClientNotFound) {
		l.Info("client has no adhesion yet", "screen", domain.ScreenAdhesion)
		return Resolution{
			Screen:  domain.ScreenAdhesion,
			Session: &domain.Session{Token: token},
		}
	}

	var apiErr *investsdk.APIError
	if errors.As(err, &apiErr) {
		l.Warn("client status check rejected", "status_code", apiErr.StatusCode, "code", apiErr.Code)
		return Resolution{
			Screen:       domain.ScreenLogin,
			Notification: domain.Failure(TitleError, messageOr(apiErr.Message, MsgStatusCheckFailed)),
		}
	}

	l.Error("client status check failed", "error", err)
	return Resolution{
		Screen:       domain.ScreenLogin,
		Notification: domain.Failure(TitleConnectionError, MsgStatusCheckUnreachable),
	}
}

// ScreenForStatus maps a client status to its screen by exact match. Any
// value outside PENDING, ACTIVE and EXITED lands on SUPPORT.
func ScreenForStatus(status investsdk.Status) domain.Screen {
	switch status {
	case investsdk.StatusPending:
		return domain.ScreenPendingApproval
	case investsdk.StatusActive:
		return domain.ScreenDashboard
	case investsdk.StatusExited:
		return domain.ScreenAccountExited
	default:
		return domain.ScreenSupport
	}
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
