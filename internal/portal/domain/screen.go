package domain

// Screen identifies which view is mounted. Exactly one is active at a time.
type Screen string

const (
	ScreenSplash          Screen = "SPLASH"
	ScreenLogin           Screen = "LOGIN"
	ScreenRegister        Screen = "REGISTER"
	ScreenAdhesion        Screen = "ADHESION"
	ScreenPendingApproval Screen = "PENDING_APPROVAL"
	ScreenAccountExited   Screen = "ACCOUNT_EXITED"
	ScreenSupport         Screen = "SUPPORT"
	ScreenDashboard       Screen = "DASHBOARD"
)

func (s Screen) String() string { return string(s) }
