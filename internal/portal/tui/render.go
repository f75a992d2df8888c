package tui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/schollz/progressbar/v3"

	"github.com/aussiebroadwan/topfive/internal/portal/domain"
	"github.com/aussiebroadwan/topfive/pkg/investsdk"
)

const (
	brand        = "Itaú Corretora"
	product      = "Top Five"
	noAccount    = "FLH-000000"
	rule         = "────────────────────────────────────────"
	loadingText  = "Carregando sua carteira..."
	noAssetsText = "Nenhum ativo na carteira ainda."
)

var (
	styleTitle   = promptui.Styler(promptui.FGBold)
	styleError   = promptui.Styler(promptui.FGRed, promptui.FGBold)
	styleSuccess = promptui.Styler(promptui.FGGreen, promptui.FGBold)
	styleInfo    = promptui.Styler(promptui.FGCyan, promptui.FGBold)
	styleFaint   = promptui.Styler(promptui.FGFaint)
)

// RenderNotification prints n as a boxed message.
func RenderNotification(w io.Writer, n *domain.Notification) {
	if n == nil {
		return
	}
	style := styleInfo
	switch n.Kind {
	case domain.KindError:
		style = styleError
	case domain.KindSuccess:
		style = styleSuccess
	}
	fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", style(n.Title), n.Message, styleFaint(rule))
}

// RenderSplash prints the splash banner.
func RenderSplash(w io.Writer, version string) {
	fmt.Fprintf(w, "\n%s\n%s\n", styleTitle(brand), product)
	if version != "" {
		fmt.Fprintln(w, styleFaint(version))
	}
	fmt.Fprintln(w)
}

func header(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s · %s\n%s\n", styleTitle(brand), title, styleFaint(rule))
}

// RenderStatus prints the static screens: pending approval, account exited
// and support. Other screens print nothing.
func RenderStatus(w io.Writer, screen domain.Screen) {
	switch screen {
	case domain.ScreenPendingApproval:
		header(w, product)
		fmt.Fprintln(w, styleTitle("Estamos analisando sua adesão!"))
		fmt.Fprintln(w, "Aguarde a aprovação dos nossos Gestores Financeiros para começar a investir.")
		fmt.Fprintln(w, styleInfo("STATUS: PENDENTE"))
	case domain.ScreenAccountExited:
		header(w, product)
		fmt.Fprintln(w, styleTitle("Conta Encerrada / Inativa"))
		fmt.Fprintln(w, "Sua adesão anterior foi encerrada. Caso queira voltar a investir conosco, você pode realizar uma nova adesão agora.")
	case domain.ScreenSupport:
		header(w, product)
		fmt.Fprintln(w, styleTitle("Ops! Status não reconhecido"))
		fmt.Fprintln(w, "Identificamos uma situação incomum em seu cadastro. Por favor, entre em contato com nosso suporte técnico para regularizar seu acesso.")
	case domain.ScreenAdhesion:
		header(w, "Nova Adesão")
		fmt.Fprintln(w, styleTitle("Bem-vindo ao Top Five!"))
		fmt.Fprintln(w, "Para começar sua jornada de investimentos, informe quanto deseja investir mensalmente.")
	case domain.ScreenLogin:
		header(w, product)
		fmt.Fprintln(w, styleTitle("Acesse sua Conta"))
	case domain.ScreenRegister:
		header(w, "Cadastro")
		fmt.Fprintln(w, styleTitle("Crie sua Conta"))
	}
}

// RenderDashboard prints the plan overview, engine status and custody of
// the session's client.
func RenderDashboard(w io.Writer, v domain.View) {
	var (
		client    *investsdk.Client
		portfolio *investsdk.Portfolio
		engine    *investsdk.EngineStatus
	)
	if v.Session != nil {
		client = v.Session.Client
	}
	if v.Dashboard != nil {
		portfolio = v.Dashboard.Portfolio
		engine = v.Dashboard.EngineStatus
	}

	account := noAccount
	if portfolio != nil && portfolio.GraphicAccount != "" {
		account = portfolio.GraphicAccount
	}
	header(w, "Conta: "+account)

	if client == nil {
		fmt.Fprintln(w, loadingText)
		return
	}

	fmt.Fprintln(w, styleTitle("Visão Geral do Plano"))
	fmt.Fprintf(w, "Investidor: %s\n", client.Name)
	if client.CPF != "" {
		fmt.Fprintf(w, "CPF: %s\n", maskCPF(client.CPF))
	}

	if portfolio != nil {
		s := portfolio.Summary
		fmt.Fprintf(w, "Valor Atual da Posição: %s\n", Money(s.CurrentPortfolioValue))
		fmt.Fprintf(w, "Valor Investido: %s\n", Money(s.TotalInvested))
		fmt.Fprintf(w, "Resultado: %s (%s)\n", SignedMoney(s.TotalPL), Percent(s.ProfitabilityPercentage))
	}

	fmt.Fprintf(w, "Aporte Mensal: %s\n", Money(client.MonthlyValue))
	fmt.Fprintf(w, "Data de Início: %s\n", Date(client.JoinedAt()))

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleTitle("Motor de Compra"))
	if engine != nil {
		fmt.Fprintf(w, "Próxima: %s\n", Date(engine.NextPurchaseAt()))
		renderProgress(w, engine.ProgressPercentage)
	} else {
		fmt.Fprintf(w, "Próxima: %s\n", NoDate)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleTitle(`Minha Custódia "Top Five"`))
	if portfolio == nil {
		fmt.Fprintln(w, loadingText)
		return
	}
	if len(portfolio.Assets) == 0 {
		fmt.Fprintln(w, noAssetsText)
		return
	}
	renderAssets(w, portfolio.Assets)
}

func renderProgress(w io.Writer, pct float64) {
	if math.IsNaN(pct) {
		pct = 0
	}
	pct = math.Max(0, math.Min(100, pct))

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
	)
	_ = bar.Set(int(math.Round(pct)))
	fmt.Fprintln(w)
}

func renderAssets(w io.Writer, assets []investsdk.Asset) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ATIVO\tCOTAS\tPM\tVALOR\tP/L\tCOMPOSIÇÃO")
	for _, a := range assets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s (%s)\t%s\n",
			a.Ticker,
			Quantity(a.Quantity),
			Money(a.AveragePrice),
			Money(a.CurrentValue),
			SignedMoney(a.PL),
			Percent(a.PLPercentage),
			Percent(a.PortfolioComposition),
		)
	}
	_ = tw.Flush()
}

// maskCPF shows only the last two digits of a CPF.
func maskCPF(cpf string) string {
	if len(cpf) < 2 {
		return cpf
	}
	return strings.Repeat("*", len(cpf)-2) + cpf[len(cpf)-2:]
}
