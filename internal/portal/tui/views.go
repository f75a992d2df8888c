package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aussiebroadwan/topfive/internal/portal/domain"
)

// Menu entries.
const (
	optEnter        = "Entrar"
	optRegister     = "Cadastrar"
	optFillForm     = "Preencher cadastro"
	optBackToLogin  = "Voltar ao Login"
	optJoin         = "Realizar adesão"
	optRejoin       = "Realizar nova adesão"
	optRefresh      = "Atualizar"
	optChangeValue  = "Alterar aporte mensal"
	optExitPlan     = "Sair do plano"
	optQuit         = "Fechar aplicativo"
	labelCPF        = "CPF"
	labelPassword   = "Senha"
	labelName       = "Nome completo"
	labelEmail      = "E-mail"
	labelBirthDate  = "Data de Nascimento (DD/MM/AAAA)"
	labelJoinValue  = "Valor do Aporte Mensal (R$)"
	labelNewValue   = "Novo Valor (R$)"
	labelExitPlan   = "Tem certeza que deseja sair do produto"
	changeValueHint = "O novo valor será considerado na sua próxima data de compras (dia 5, 15 ou 25)."
)

// UI turns the current view into prompts and the answers into controller
// events. It never changes screens itself.
type UI struct {
	Out         io.Writer
	Prompt      Prompter
	SplashDelay time.Duration
	Version     string
}

// New returns a UI on the process's terminal.
func New(splashDelay time.Duration, version string) *UI {
	return &UI{
		Out:         os.Stdout,
		Prompt:      &PromptUI{},
		SplashDelay: splashDelay,
		Version:     version,
	}
}

// Notify prints n. It satisfies the controller's Notifier.
func (u *UI) Notify(n *domain.Notification) {
	RenderNotification(u.Out, n)
}

// Next renders v and returns the event produced by the user's answer. A
// nil event with a nil error means nothing to do (a declined
// confirmation). Cancelling a prompt yields domain.Quit.
func (u *UI) Next(ctx context.Context, v domain.View) (domain.Event, error) {
	ev, err := u.next(ctx, v)
	if err != nil && isCancel(err) {
		return domain.Quit{}, nil
	}
	return ev, err
}

func (u *UI) next(ctx context.Context, v domain.View) (domain.Event, error) {
	switch v.Screen {
	case domain.ScreenSplash:
		return u.splash(ctx)
	case domain.ScreenLogin:
		return u.login()
	case domain.ScreenRegister:
		return u.register()
	case domain.ScreenAdhesion:
		return u.adhesion()
	case domain.ScreenPendingApproval, domain.ScreenSupport:
		RenderStatus(u.Out, v.Screen)
		return u.choose(map[string]domain.Event{
			optBackToLogin: domain.BackToLogin{},
			optQuit:        domain.Quit{},
		}, optBackToLogin, optQuit)
	case domain.ScreenAccountExited:
		RenderStatus(u.Out, v.Screen)
		return u.choose(map[string]domain.Event{
			optRejoin:      domain.RejoinRequested{},
			optBackToLogin: domain.BackToLogin{},
			optQuit:        domain.Quit{},
		}, optRejoin, optBackToLogin, optQuit)
	case domain.ScreenDashboard:
		return u.dashboard(v)
	default:
		return nil, fmt.Errorf("no view for screen %q", v.Screen)
	}
}

func (u *UI) splash(ctx context.Context) (domain.Event, error) {
	RenderSplash(u.Out, u.Version)

	timer := time.NewTimer(u.SplashDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return domain.Quit{}, nil
	case <-timer.C:
		return domain.SplashFinished{}, nil
	}
}

func (u *UI) login() (domain.Event, error) {
	RenderStatus(u.Out, domain.ScreenLogin)

	idx, err := u.Prompt.Select(product, []string{optEnter, optRegister, optQuit})
	if err != nil {
		return nil, err
	}
	switch idx {
	case 1:
		return domain.GoToRegister{}, nil
	case 2:
		return domain.Quit{}, nil
	}

	cpf, err := u.Prompt.Input(labelCPF, false)
	if err != nil {
		return nil, err
	}
	password, err := u.Prompt.Input(labelPassword, true)
	if err != nil {
		return nil, err
	}
	return domain.LoginSubmitted{CPF: cpf, Password: password}, nil
}

func (u *UI) register() (domain.Event, error) {
	RenderStatus(u.Out, domain.ScreenRegister)

	idx, err := u.Prompt.Select("Cadastro", []string{optFillForm, optBackToLogin})
	if err != nil {
		return nil, err
	}
	if idx == 1 {
		return domain.BackToLogin{}, nil
	}

	var form domain.RegistrationForm
	fields := []struct {
		label  string
		masked bool
		dst    *string
	}{
		{labelName, false, &form.Name},
		{labelCPF, false, &form.CPF},
		{labelEmail, false, &form.Email},
		{labelPassword, true, &form.Password},
		{labelBirthDate, false, &form.BirthDate},
	}
	for _, f := range fields {
		if *f.dst, err = u.Prompt.Input(f.label, f.masked); err != nil {
			return nil, err
		}
	}
	return domain.RegisterSubmitted{Form: form}, nil
}

func (u *UI) adhesion() (domain.Event, error) {
	RenderStatus(u.Out, domain.ScreenAdhesion)

	idx, err := u.Prompt.Select("Nova Adesão", []string{optJoin, optBackToLogin})
	if err != nil {
		return nil, err
	}
	if idx == 1 {
		return domain.BackToLogin{}, nil
	}

	value, err := u.Prompt.Input(labelJoinValue, false)
	if err != nil {
		return nil, err
	}
	return domain.JoinSubmitted{MonthlyValue: value}, nil
}

func (u *UI) dashboard(v domain.View) (domain.Event, error) {
	RenderDashboard(u.Out, v)

	items := []string{optRefresh, optChangeValue, optExitPlan, optBackToLogin, optQuit}
	idx, err := u.Prompt.Select("Início", items)
	if err != nil {
		return nil, err
	}

	switch items[idx] {
	case optRefresh:
		return domain.RefreshDashboard{}, nil
	case optChangeValue:
		fmt.Fprintln(u.Out, changeValueHint)
		value, err := u.Prompt.Input(labelNewValue, false)
		if err != nil {
			return nil, err
		}
		return domain.UpdateMonthlyValueSubmitted{Value: value}, nil
	case optExitPlan:
		ok, err := u.Prompt.Confirm(labelExitPlan)
		if err != nil || !ok {
			return nil, err
		}
		return domain.ExitConfirmed{}, nil
	case optBackToLogin:
		return domain.BackToLogin{}, nil
	default:
		return domain.Quit{}, nil
	}
}

// choose offers items in order and returns the event mapped to the pick.
func (u *UI) choose(events map[string]domain.Event, items ...string) (domain.Event, error) {
	idx, err := u.Prompt.Select(product, items)
	if err != nil {
		return nil, err
	}
	return events[items[idx]], nil
}
