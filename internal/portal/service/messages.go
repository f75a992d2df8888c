package service

// Notification titles and messages shown to the user. The product is
// Brazilian, so user facing copy is Portuguese.
const (
	TitleAttention       = "Atenção"
	TitleError           = "Erro"
	TitleSuccess         = "Sucesso"
	TitleConnectionError = "Erro de Conexão"
	TitleLoginFailed     = "Falha no Login"
	TitleRegisterFailed  = "Falha no Cadastro"
	TitleJoinFailed      = "Não foi possível realizar a adesão"
	TitleInvalidCPF      = "CPF Inválido"
	TitleInvalidEmail    = "E-mail Inválido"
	TitleShortPassword   = "Senha Curta"
	TitleInvalidDate     = "Data Inválida"
	TitleMinimumValue    = "Valor Mínimo"

	MsgLoginFieldsRequired    = "Por favor, preencha o CPF e a senha."
	MsgLoginRejected          = "CPF ou senha incorretos. Por favor, tente novamente."
	MsgLoginUnreachable       = "Não foi possível conectar ao servidor. Verifique se a API está ativa."
	MsgMalformedResponse      = "Erro ao processar resposta do servidor."
	MsgStatusCheckFailed      = "Erro ao verificar status do cliente."
	MsgStatusCheckUnreachable = "Não foi possível verificar seu status."

	MsgRegisterFieldsRequired = "Por favor, preencha todos os campos."
	MsgRegisterInvalidCPF     = "O CPF deve conter 11 dígitos."
	MsgRegisterInvalidEmail   = "Por favor, insira um e-mail válido."
	MsgRegisterShortPassword  = "A senha deve ter pelo menos 6 caracteres."
	MsgRegisterInvalidDate    = "Use o formato DD/MM/AAAA."
	MsgRegisterSucceeded      = "Conta criada com sucesso! Agora você pode entrar."
	MsgRegisterFailed         = "Não foi possível criar sua conta."

	MsgJoinMinimum      = "O valor mínimo para investimento mensal é de R$ 100,00."
	MsgJoinPending      = "Sua adesão foi enviada e está aguardando aprovação do Administrador."
	MsgJoinReactivated  = "Bem-vindo de volta! Sua adesão foi reativada com sucesso."
	MsgJoinRejected     = "Verifique os dados e tente novamente."
	MsgJoinUnreachable  = "Não foi possível conectar ao servidor. Verifique se a API está ativa."
	MsgNoSession        = "Sua sessão não está ativa. Faça login novamente."
	MsgPortfolioFailed  = "Não foi possível carregar sua carteira."
	MsgPortfolioOffline = "Falha ao conectar ao servidor."

	MsgMonthlyValueMinimum = "O valor mínimo é R$ 100,00"
	MsgMonthlyValueUpdated = "Valor mensal atualizado com sucesso!"
	MsgMonthlyValueFailed  = "Erro ao atualizar."
	MsgMonthlyValueOffline = "Falha na conexão ao servidor."

	MsgExitSucceeded = "Você cancelou o produto. Redirecionando para o início..."
	MsgExitFailed    = "Erro ao sair."
	MsgExitOffline   = "Falha na conexão."

	// ErrorCodeNetwork is a client side key into the translation table for
	// transport failures.
	ErrorCodeNetwork = "NETWORK_ERROR"

	// MsgUnexpected is the fallback of TranslateError.
	MsgUnexpected = "Ocorreu um erro inesperado."
)

// errorMessages translates server error codes, and a few literal English
// server messages, into user facing copy.
var errorMessages = map[string]string{
	// Auth errors
	"INVALID_CREDENTIALS":         "CPF ou senha inválidos.",
	"INACTIVE_USER":               "Usuário inativo. Entre em contato com o suporte.",
	"NAME_REQUIRED":               "O nome é obrigatório.",
	"CPF_REQUIRED":                "O CPF é obrigatório.",
	"EMAIL_REQUIRED":              "O e-mail é obrigatório.",
	"PASSWORD_REQUIRED":           "A senha é obrigatória.",
	"BIRTHDATE_REQUIRED":          "A data de nascimento é obrigatória.",
	"CLIENT_SHOULD_NOT_HAVE_JKEY": "Clientes não devem possuir Chave J.",
	"CPF_ALREADY_REGISTERED":      "Este CPF já está cadastrado.",
	"EMAIL_ALREADY_REGISTERED":    "Este e-mail já está cadastrado.",
	"JKEY_ALREADY_REGISTERED":     "Esta Chave J já está cadastrada.",
	"JKEY_REQUIRED":               "A Chave J é obrigatória para administradores.",
	"INVALID_ROLE":                "Cargo inválido.",

	// Literal English overrides
	"Invalid CPF or password.":      "CPF ou senha inválidos.",
	"Invalid JKey or password.":     "Chave J ou senha inválidos.",
	"Inactive user.":                "Usuário inativo. Entre em contato com o suporte.",
	"User registered successfully.": "Usuário cadastrado com sucesso!",
	"Name is required.":             "O nome é obrigatório.",
	"CPF is required.":              "O CPF é obrigatório.",
	"Email is required.":            "O e-mail é obrigatório.",
	"Password is required.":         "A senha é obrigatória.",
	"Birth date is required.":       "A data de nascimento é obrigatória.",

	// Client/Join errors
	"CLIENT_NOT_FOUND":      "Cliente não encontrado.",
	"ALREADY_JOINED":        "Você já possui uma adesão ativa.",
	"INVALID_MONTHLY_VALUE": "O valor mínimo para investimento mensal é de R$ 100,00.",

	// Generic / Network
	"SERVER_ERROR":  "Erro interno do servidor. Tente novamente mais tarde.",
	"NETWORK_ERROR": "Erro de conexão. Verifique sua internet.",
}

// TranslateError looks code up in the translation table, returning
// fallback (or MsgUnexpected when fallback is empty) for unknown codes.
func TranslateError(code, fallback string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	if fallback == "" {
		return MsgUnexpected
	}
	return fallback
}
