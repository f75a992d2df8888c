package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/topfive/internal/portal/domain"
	"github.com/aussiebroadwan/topfive/pkg/investsdk"
	"github.com/aussiebroadwan/topfive/pkg/slogx"
)

// AdhesionService runs the adhesion screen's join action.
type AdhesionService struct {
	Sessions SessionFactory
	Resolver *SessionResolver
}

// Join submits the monthly value for the session's token. On success the
// landing screen is resolved again from the same token, carrying the join
// confirmation unless the resolution has its own notification. Failures
// stay on ADHESION with the session untouched.
func (s *AdhesionService) Join(ctx context.Context, sess *domain.Session, rawValue string) Resolution {
	log := slogx.FromContext(ctx)

	if sess == nil || sess.Token == "" {
		return Resolution{
			Screen:       domain.ScreenLogin,
			Notification: domain.Failure(TitleAttention, MsgNoSession),
		}
	}

	value, err := ParseMonthlyValue(rawValue, TitleMinimumValue, MsgJoinMinimum)
	if err != nil {
		return stayOn(domain.ScreenAdhesion, sess, err)
	}

	resp, err := s.Sessions(sess.Token).Join(ctx, value)
	if err != nil {
		log.Warn("join failed", slog.Float64("monthly_value", value), slog.Any("error", err))
		return Resolution{
			Screen:       domain.ScreenAdhesion,
			Session:      sess,
			Notification: joinFailure(err),
		}
	}

	confirmation := MsgJoinPending
	if resp.Reactivated() {
		confirmation = MsgJoinReactivated
	}
	log.Info("join accepted", slog.Float64("monthly_value", value), slog.Bool("reactivated", resp.Reactivated()))

	res := s.Resolver.Resolve(ctx, sess.Token)
	if res.Notification == nil {
		res.Notification = domain.Success(TitleSuccess, confirmation)
	}
	return res
}

func joinFailure(err error) *domain.Notification {
	var apiErr *investsdk.APIError
	if errors.As(err, &apiErr) {
		return domain.Failure(TitleJoinFailed, translateAPIError(apiErr, MsgJoinRejected))
	}
	if isMalformed(err) {
		return domain.Failure(TitleJoinFailed, MsgMalformedResponse)
	}
	return domain.Failure(TitleConnectionError, MsgJoinUnreachable)
}
