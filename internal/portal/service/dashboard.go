package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/topfive/internal/portal/domain"
	"github.com/aussiebroadwan/topfive/pkg/investsdk"
	"github.com/aussiebroadwan/topfive/pkg/slogx"
)

// ErrNoClient is returned when a dashboard action runs without a joined
// client in the session.
var ErrNoClient = errors.New("session has no client")

// DashboardService runs the dashboard screen's calls.
type DashboardService struct {
	Sessions SessionFactory
}

// Load fetches the portfolio and the engine status. A portfolio failure is
// reported through the returned notification; an engine status failure is
// only logged. The returned dashboard is never nil.
func (s *DashboardService) Load(ctx context.Context, sess *domain.Session) (*domain.Dashboard, *domain.Notification) {
	log := slogx.FromContext(ctx)
	dash := &domain.Dashboard{}

	if sess == nil || sess.Client == nil {
		return dash, domain.Failure(TitleAttention, MsgNoSession)
	}
	api := s.Sessions(sess.Token)

	var notice *domain.Notification
	portfolio, err := api.Portfolio(ctx, sess.Client.ClientID)
	if err != nil {
		log.Warn("portfolio fetch failed", slog.String("client_id", sess.Client.ClientID.String()), slog.Any("error", err))
		var apiErr *investsdk.APIError
		if errors.As(err, &apiErr) {
			notice = domain.Failure(TitleError, MsgPortfolioFailed)
		} else {
			notice = domain.Failure(TitleConnectionError, MsgPortfolioOffline)
		}
	} else {
		dash.Portfolio = portfolio
	}

	status, err := api.EngineStatus(ctx)
	if err != nil {
		log.Warn("engine status fetch failed", slog.Any("error", err))
	} else {
		dash.EngineStatus = status
	}

	return dash, notice
}

// UpdateMonthlyValue validates rawValue and sends it. The parsed value is
// returned only when the server accepted it. Values that are not a number
// of at least MinimumMonthlyValue never reach the network.
func (s *DashboardService) UpdateMonthlyValue(ctx context.Context, sess *domain.Session, rawValue string) (float64, *domain.Notification, error) {
	log := slogx.FromContext(ctx)

	if sess == nil || sess.Client == nil {
		return 0, domain.Failure(TitleAttention, MsgNoSession), ErrNoClient
	}

	value, err := ParseMonthlyValue(rawValue, TitleError, MsgMonthlyValueMinimum)
	if err != nil {
		var verr *ValidationError
		errors.As(err, &verr)
		return 0, verr.Notification(), err
	}

	err = s.Sessions(sess.Token).UpdateMonthlyValue(ctx, sess.Client.ClientID, value)
	if err != nil {
		log.Warn("monthly value update failed", slog.Float64("monthly_value", value), slog.Any("error", err))
		var apiErr *investsdk.APIError
		if errors.As(err, &apiErr) {
			return 0, domain.Failure(TitleError, messageOr(apiErr.Message, MsgMonthlyValueFailed)), err
		}
		return 0, domain.Failure(TitleError, MsgMonthlyValueOffline), err
	}

	log.Info("monthly value updated", slog.Float64("monthly_value", value))
	return value, domain.Success(TitleSuccess, MsgMonthlyValueUpdated), nil
}

// Exit leaves the plan. Callers confirm with the user first.
func (s *DashboardService) Exit(ctx context.Context, sess *domain.Session) (*domain.Notification, error) {
	log := slogx.FromContext(ctx)

	if sess == nil || sess.Client == nil {
		return domain.Failure(TitleAttention, MsgNoSession), ErrNoClient
	}

	if err := s.Sessions(sess.Token).Exit(ctx, sess.Client.ClientID); err != nil {
		log.Warn("exit failed", slog.Any("error", err))
		var apiErr *investsdk.APIError
		if errors.As(err, &apiErr) {
			return domain.Failure(TitleError, MsgExitFailed), err
		}
		return domain.Failure(TitleError, MsgExitOffline), err
	}

	log.Info("client exited plan", slog.String("client_id", sess.Client.ClientID.String()))
	return domain.Success(TitleSuccess, MsgExitSucceeded), nil
}
