package service

import (
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/topfive/internal/portal/domain"
)

// ScreenRouter holds the current screen. There is no history: going back
// is an explicit transition like any other, and no transition is refused.
type ScreenRouter struct {
	mu      sync.RWMutex
	current domain.Screen

	// OnTransition, when set, is called after every transition.
	OnTransition func(from, to domain.Screen)

	Logger *slog.Logger
}

// NewScreenRouter starts on SPLASH.
func NewScreenRouter(logger *slog.Logger) *ScreenRouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScreenRouter{current: domain.ScreenSplash, Logger: logger}
}

// Current returns the active screen.
func (r *ScreenRouter) Current() domain.Screen {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Transition makes to the active screen.
func (r *ScreenRouter) Transition(to domain.Screen) {
	r.mu.Lock()
	from := r.current
	r.current = to
	hook := r.OnTransition
	r.mu.Unlock()

	r.Logger.Debug("screen transition", "from", from, "to", to)
	if hook != nil {
		hook(from, to)
	}
}
