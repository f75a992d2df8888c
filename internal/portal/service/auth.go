package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/topfive/internal/portal/domain"
	"github.com/aussiebroadwan/topfive/pkg/investsdk"
	"github.com/aussiebroadwan/topfive/pkg/slogx"
)

// AuthService runs the login and registration screens' actions.
type AuthService struct {
	API      Authenticator
	Resolver *SessionResolver
}

// Login validates the form, authenticates and, on success, resolves the
// landing screen from the issued token. Every failure lands on LOGIN.
func (s *AuthService) Login(ctx context.Context, cpf, password string) Resolution {
	log := slogx.FromContext(ctx)

	cleaned, err := ValidateLogin(cpf, password)
	if err != nil {
		return stayOn(domain.ScreenLogin, nil, err)
	}

	sess, err := s.API.Login(ctx, cleaned, password)
	if err != nil {
		log.Warn("login failed", slog.Any("error", err))
		return Resolution{
			Screen:       domain.ScreenLogin,
			Notification: loginFailure(err),
		}
	}

	if claims, err := sess.Claims(); err == nil {
		log.Info("login succeeded", slog.String("subject", claims.Subject))
	} else {
		log.Info("login succeeded")
	}

	return s.Resolver.Resolve(ctx, sess.Token())
}

func loginFailure(err error) *domain.Notification {
	var apiErr *investsdk.APIError
	if errors.As(err, &apiErr) {
		return domain.Failure(TitleLoginFailed, translateAPIError(apiErr, MsgLoginRejected))
	}
	if isMalformed(err) {
		return domain.Failure(TitleLoginFailed, MsgMalformedResponse)
	}
	return domain.Failure(TitleConnectionError, MsgLoginUnreachable)
}

// Register validates the form and creates the account. Success returns to
// LOGIN; failures stay on REGISTER.
func (s *AuthService) Register(ctx context.Context, form domain.RegistrationForm) Resolution {
	log := slogx.FromContext(ctx)

	req, err := ValidateRegistration(form)
	if err != nil {
		return stayOn(domain.ScreenRegister, nil, err)
	}

	if _, err := s.API.Register(ctx, req); err != nil {
		log.Warn("registration failed", slog.Any("error", err))

		var apiErr *investsdk.APIError
		switch {
		case errors.As(err, &apiErr):
			return Resolution{
				Screen:       domain.ScreenRegister,
				Notification: domain.Failure(TitleRegisterFailed, translateAPIError(apiErr, MsgRegisterFailed)),
			}
		case isMalformed(err):
			return Resolution{
				Screen:       domain.ScreenRegister,
				Notification: domain.Failure(TitleRegisterFailed, MsgMalformedResponse),
			}
		default:
			return Resolution{
				Screen:       domain.ScreenRegister,
				Notification: domain.Failure(TitleConnectionError, TranslateError(ErrorCodeNetwork, "")),
			}
		}
	}

	log.Info("client registered")
	return Resolution{
		Screen:       domain.ScreenLogin,
		Notification: domain.Success(TitleSuccess, MsgRegisterSucceeded),
	}
}

// translateAPIError prefers a known data.code, then a known literal
// message, then the raw message, then fallback.
func translateAPIError(e *investsdk.APIError, fallback string) string {
	if msg, ok := errorMessages[e.Code]; ok && e.Code != "" {
		return msg
	}
	return TranslateError(e.Message, messageOr(e.Message, fallback))
}

func isMalformed(err error) bool {
	var te *investsdk.TransportError
	return errors.As(err, &te) && te.Malformed()
}

// stayOn keeps the user on screen with the validation problem shown.
func stayOn(screen domain.Screen, sess *domain.Session, err error) Resolution {
	res := Resolution{Screen: screen, Session: sess}
	var verr *ValidationError
	if errors.As(err, &verr) {
		res.Notification = verr.Notification()
	} else {
		res.Notification = domain.Failure(TitleError, err.Error())
	}
	return res
}
