package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/topfive/internal/portal/domain"
	"github.com/aussiebroadwan/topfive/internal/portal/service"
	"github.com/aussiebroadwan/topfive/pkg/slogx"
)

// ErrQuit is returned by Dispatch when the user asked to leave.
var ErrQuit = errors.New("quit requested")

// Notifier shows a notification to the user. It is called while the
// controller is busy and must not call back into it.
type Notifier interface {
	Notify(n *domain.Notification)
}

// NotifierFunc adapts a function into a Notifier.
type NotifierFunc func(n *domain.Notification)

func (f NotifierFunc) Notify(n *domain.Notification) { f(n) }

// Controller is the single owner of the session, the dashboard data and the
// router. Views send it events and render Snapshot; they never transition
// screens on their own. Events are handled one at a time.
type Controller struct {
	Router    *service.ScreenRouter
	Auth      *service.AuthService
	Adhesion  *service.AdhesionService
	Dashboard *service.DashboardService
	Notifier  Notifier

	mu      sync.Mutex
	session *domain.Session
	dash    *domain.Dashboard
}

// NewController wires the screen services around one SessionFactory.
func NewController(auth service.Authenticator, sessions service.SessionFactory, notifier Notifier, logger *slog.Logger) *Controller {
	resolver := &service.SessionResolver{Sessions: sessions}
	if notifier == nil {
		notifier = NotifierFunc(func(*domain.Notification) {})
	}
	return &Controller{
		Router:    service.NewScreenRouter(logger),
		Auth:      &service.AuthService{API: auth, Resolver: resolver},
		Adhesion:  &service.AdhesionService{Sessions: sessions, Resolver: resolver},
		Dashboard: &service.DashboardService{Sessions: sessions},
		Notifier:  notifier,
	}
}

// Snapshot returns the state views render from.
func (c *Controller) Snapshot() domain.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := domain.View{Screen: c.Router.Current()}
	if c.session != nil {
		s := *c.session
		if s.Client != nil {
			client := *s.Client
			s.Client = &client
		}
		v.Session = &s
	}
	if c.dash != nil {
		d := *c.dash
		v.Dashboard = &d
	}
	return v
}

// Dispatch handles one event. It returns ErrQuit for domain.Quit and an
// error for events it does not know; every other outcome, failures
// included, is expressed as a notification and a screen.
func (c *Controller) Dispatch(ctx context.Context, ev domain.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := slogx.FromContext(ctx)
	log.Debug("event", slog.String("type", fmt.Sprintf("%T", ev)), slog.String("screen", c.Router.Current().String()))

	switch ev := ev.(type) {
	case domain.SplashFinished:
		c.Router.Transition(domain.ScreenLogin)

	case domain.LoginSubmitted:
		c.apply(ctx, c.Auth.Login(ctx, ev.CPF, ev.Password))

	case domain.GoToRegister:
		c.Router.Transition(domain.ScreenRegister)

	case domain.RegisterSubmitted:
		c.apply(ctx, c.Auth.Register(ctx, ev.Form))

	case domain.BackToLogin:
		c.logout()

	case domain.JoinSubmitted:
		c.apply(ctx, c.Adhesion.Join(ctx, c.session, ev.MonthlyValue))

	case domain.RejoinRequested:
		if c.session == nil {
			c.expired()
			return nil
		}
		c.session = &domain.Session{Token: c.session.Token}
		c.dash = nil
		c.Router.Transition(domain.ScreenAdhesion)

	case domain.RefreshDashboard:
		if !c.hasClient() {
			c.expired()
			return nil
		}
		c.loadDashboard(ctx)

	case domain.UpdateMonthlyValueSubmitted:
		if !c.hasClient() {
			c.expired()
			return nil
		}
		value, notice, err := c.Dashboard.UpdateMonthlyValue(ctx, c.session, ev.Value)
		if err == nil {
			client := *c.session.Client
			client.MonthlyValue = value
			c.session = &domain.Session{Token: c.session.Token, Client: &client}
		}
		c.notify(notice)

	case domain.ExitConfirmed:
		if !c.hasClient() {
			c.expired()
			return nil
		}
		notice, err := c.Dashboard.Exit(ctx, c.session)
		c.notify(notice)
		if err == nil {
			c.session = nil
			c.dash = nil
			c.Router.Transition(domain.ScreenLogin)
		}

	case domain.Quit:
		return ErrQuit

	default:
		return fmt.Errorf("unknown event %T", ev)
	}

	return nil
}

// apply adopts a resolution: its session replaces the current one, its
// notification is shown and its screen becomes current.
func (c *Controller) apply(ctx context.Context, res service.Resolution) {
	c.session = res.Session
	c.dash = nil
	c.notify(res.Notification)
	c.Router.Transition(res.Screen)

	if res.Screen == domain.ScreenDashboard {
		c.loadDashboard(ctx)
	}
}

func (c *Controller) loadDashboard(ctx context.Context) {
	dash, notice := c.Dashboard.Load(ctx, c.session)
	c.dash = dash
	c.notify(notice)
}

func (c *Controller) hasClient() bool {
	return c.session != nil && c.session.Client != nil
}

func (c *Controller) logout() {
	c.session = nil
	c.dash = nil
	c.Router.Transition(domain.ScreenLogin)
}

func (c *Controller) expired() {
	c.notify(domain.Failure(service.TitleAttention, service.MsgNoSession))
	c.logout()
}

func (c *Controller) notify(n *domain.Notification) {
	if n != nil {
		c.Notifier.Notify(n)
	}
}
