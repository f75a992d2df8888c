package domain

import "github.com/aussiebroadwan/topfive/pkg/investsdk"

// Session is what the controller knows about the logged-in user. Client is
// nil until the user has joined a plan.
type Session struct {
	Token  string
	Client *investsdk.Client
}

// Dashboard holds what the dashboard screen fetched on entry. Either part
// may be nil when its call failed.
type Dashboard struct {
	Portfolio    *investsdk.Portfolio
	EngineStatus *investsdk.EngineStatus
}

// View is a read-only snapshot handed to the presentation layer.
type View struct {
	Screen    Screen
	Session   *Session
	Dashboard *Dashboard
}
