package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/topfive/internal/portal/domain"
	"github.com/aussiebroadwan/topfive/pkg/investsdk"
)

// MinimumMonthlyValue is the smallest accepted monthly contribution in BRL.
const MinimumMonthlyValue = 100.0

// ValidationError is a form problem caught before any request is sent.
type ValidationError struct {
	Title   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Message
}

// Notification renders the error for display.
func (e *ValidationError) Notification() *domain.Notification {
	return domain.Failure(e.Title, e.Message)
}

var (
	nonDigits     = regexp.MustCompile(`\D`)
	emailPattern  = regexp.MustCompile(`\S+@\S+\.\S+`)
	birthDateForm = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// CleanCPF strips everything but digits.
func CleanCPF(cpf string) string {
	return nonDigits.ReplaceAllString(cpf, "")
}

// ValidateLogin checks the login form and returns the digits-only CPF.
func ValidateLogin(cpf, password string) (string, error) {
	if cpf == "" || password == "" {
		return "", &ValidationError{Title: TitleAttention, Message: MsgLoginFieldsRequired}
	}
	return CleanCPF(cpf), nil
}

// ValidateRegistration checks the registration form in the order the user
// sees the fields and builds the API request. The birth date is converted
// from DD/MM/AAAA to YYYY-MM-DD.
func ValidateRegistration(form domain.RegistrationForm) (investsdk.RegisterRequest, error) {
	if form.Name == "" || form.CPF == "" || form.Email == "" || form.Password == "" || form.BirthDate == "" {
		return investsdk.RegisterRequest{}, &ValidationError{Title: TitleAttention, Message: MsgRegisterFieldsRequired}
	}

	cpf := CleanCPF(form.CPF)
	if len(cpf) != 11 {
		return investsdk.RegisterRequest{}, &ValidationError{Title: TitleInvalidCPF, Message: MsgRegisterInvalidCPF}
	}

	if !emailPattern.MatchString(form.Email) {
		return investsdk.RegisterRequest{}, &ValidationError{Title: TitleInvalidEmail, Message: MsgRegisterInvalidEmail}
	}

	if len([]rune(form.Password)) < 6 {
		return investsdk.RegisterRequest{}, &ValidationError{Title: TitleShortPassword, Message: MsgRegisterShortPassword}
	}

	if !birthDateForm.MatchString(form.BirthDate) {
		return investsdk.RegisterRequest{}, &ValidationError{Title: TitleInvalidDate, Message: MsgRegisterInvalidDate}
	}
	parts := strings.Split(form.BirthDate, "/")

	return investsdk.RegisterRequest{
		Name:      form.Name,
		CPF:       cpf,
		Email:     form.Email,
		Password:  form.Password,
		BirthDate: parts[2] + "-" + parts[1] + "-" + parts[0],
		Role:      investsdk.RoleClient,
	}, nil
}

// ParseMonthlyValue reads an amount typed with either '.' or ',' as the
// decimal separator. Anything that is not a finite number of at least
// MinimumMonthlyValue is rejected with the given title and message.
func ParseMonthlyValue(raw, title, message string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < MinimumMonthlyValue {
		return 0, &ValidationError{Title: title, Message: message}
	}
	return v, nil
}
