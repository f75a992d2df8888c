package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aussiebroadwan/topfive/internal/portal/domain"
	"github.com/aussiebroadwan/topfive/internal/portal/service"
	"github.com/aussiebroadwan/topfive/internal/portal/tui"
	"github.com/aussiebroadwan/topfive/pkg/investsdk"
	"github.com/aussiebroadwan/topfive/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// View is what the run loop needs from a front end.
type View interface {
	Notifier
	Next(ctx context.Context, v domain.View) (domain.Event, error)
}

// Application wires the API client, the controller and a front end.
type Application struct {
	cfg    Config
	logger *slog.Logger

	client     *investsdk.SDKClient
	controller *Controller
	view       View
}

// New builds an Application on the process's terminal. Logs go to stderr so
// they do not interleave with the screens.
func New(cfg Config) (*Application, error) {
	return NewWithView(cfg, tui.New(cfg.SplashDelay, BuildVersion))
}

// NewWithView builds an Application around an arbitrary front end.
func NewWithView(cfg Config, view View) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &Application{
		cfg:  cfg,
		view: view,
		logger: slogx.New(slogx.Config{
			Service: "topfive",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
			Writer:  os.Stderr,
		}),
	}

	app.client = NewSDKClient(cfg, app.logger)
	app.controller = NewController(app.client, service.SDKSessions(app.client), view, app.logger)

	return app, nil
}

// NewSDKClient builds the API client described by cfg.
func NewSDKClient(cfg Config, logger *slog.Logger) *investsdk.SDKClient {
	return investsdk.New(cfg.APIURL, investsdk.Options{
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
		Logger:    logger,
		UserAgent: "topfive/" + BuildVersion,
	})
}

// Controller exposes the controller, mostly for tests.
func (app *Application) Controller() *Controller { return app.controller }

// Run drives the screens until the user quits, the context is cancelled
// or a signal arrives.
func (app *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = slogx.WithContext(ctx, app.logger)
	app.logger.Info("topfive starting",
		slog.String("api_url", app.cfg.APIURL),
		slog.String("device_id", app.client.DeviceID),
		slog.String("version", BuildVersion),
	)

	for {
		if err := ctx.Err(); err != nil {
			app.logger.Info("shutdown requested", slog.Any("reason", err))
			return nil
		}

		ev, err := app.view.Next(ctx, app.controller.Snapshot())
		if err != nil {
			return fmt.Errorf("view %s: %w", app.controller.Router.Current(), err)
		}
		if ev == nil {
			continue
		}

		if err := app.controller.Dispatch(ctx, ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("topfive stopped")
				return nil
			}
			return err
		}
	}
}
