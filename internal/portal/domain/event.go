package domain

// Event is a request from a view to the controller. Views never change
// screens themselves.
type Event interface {
	event()
}

// SplashFinished fires once the splash delay has elapsed.
type SplashFinished struct{}

// LoginSubmitted carries the login form as typed.
type LoginSubmitted struct {
	CPF      string
	Password string
}

// GoToRegister opens the registration form.
type GoToRegister struct{}

// RegistrationForm is the registration form as typed. BirthDate is
// DD/MM/AAAA.
type RegistrationForm struct {
	Name      string
	CPF       string
	Email     string
	Password  string
	BirthDate string
}

// RegisterSubmitted carries the registration form.
type RegisterSubmitted struct {
	Form RegistrationForm
}

// BackToLogin returns to the login screen and discards the session.
type BackToLogin struct{}

// JoinSubmitted carries the adhesion monthly value as typed.
type JoinSubmitted struct {
	MonthlyValue string
}

// RejoinRequested opens adhesion for an exited client.
type RejoinRequested struct{}

// RefreshDashboard reloads portfolio and engine status.
type RefreshDashboard struct{}

// UpdateMonthlyValueSubmitted carries the new contribution as typed.
type UpdateMonthlyValueSubmitted struct {
	Value string
}

// ExitConfirmed is sent only after the user confirmed leaving the plan.
type ExitConfirmed struct{}

// Quit ends the application.
type Quit struct{}

func (SplashFinished) event() {}
func (LoginSubmitted) event() {}
func (GoToRegister) event() {}
func (RegisterSubmitted) event() {}
func (BackToLogin) event() {}
func (JoinSubmitted) event() {}
func (RejoinRequested) event() {}
func (RefreshDashboard) event() {}
func (UpdateMonthlyValueSubmitted) event() {}
func (ExitConfirmed) event() {}
func (Quit) event() {}
