// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// Cuide.me server handlers, the webhook pipeline and the dashboard.
//
// The API speaks Portuguese to its users, so every Msg* constant is the exact
// text written into a {"detail": "..."} body or shown by the dashboard.
package app

// Server detail messages.
const (
	// MsgEmailAlreadyRegistered is returned by registration for a taken email.
	MsgEmailAlreadyRegistered = "Email já registrado"

	// MsgInvalidEmailOrPassword is returned by login on any credential mismatch.
	MsgInvalidEmailOrPassword = "Email ou senha incorretos"

	// MsgCouldNotValidateCredentials is returned for a missing, malformed,
	// expired or unknown bearer token.
	MsgCouldNotValidateCredentials = "Não foi possível validar as credenciais"

	MsgPatientNotFound = "Paciente não encontrado"

	// MsgWhatsAppSendFailed is returned when the WhatsApp Cloud API rejects
	// an outbound message.
	MsgWhatsAppSendFailed = "Erro ao enviar mensagem pela API do WhatsApp."

	MsgAIUnavailable = "Serviço de IA indisponível"

	MsgSummaryFailed = "Não foi possível gerar o resumo da conversa."

	// MsgEmptyConversation is the summary of a conversation with no messages.
	MsgEmptyConversation = "Ainda não há mensagens nesta conversa."

	MsgInvalidDataProvided = "Dados inválidos"

	MsgVerificationTokenMismatch = "Verification token mismatch"

	MsgInvalidSignature = "Assinatura inválida"

	MsgInvalidCronSecret = "Acesso não autorizado"

	MsgInternalServerError = "Erro interno do servidor"

	MsgMethodNotAllowed = "Method Not Allowed"

	MsgNotFound = "Not Found"

	// MsgAPIRunning is the body of the health endpoint.
	MsgAPIRunning = "API do Cuide.me está funcionando!"
)

// Webhook status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Dashboard messages.
const (
	MsgRegisterSuccess = "Profissional registrado com sucesso!"

	// MsgSessionExpired is shown after any 401 before returning to login.
	MsgSessionExpired = "Sua sessão expirou. Por favor, faça login novamente."

	MsgNetworkError = "Não foi possível conectar ao servidor. Verifique sua conexão."

	MsgUnexpectedError = "Ocorreu um erro inesperado."

	// MsgErrorPrefix precedes the detail of a failed summary.
	MsgErrorPrefix = "Ocorreu um erro: "

	MsgGeneratingSummary = "Gerando resumo..."

	MsgEmptyMessage = "A mensagem não pode ficar em branco."

	MsgNoPatientSelected = "Selecione um paciente."

	MsgLiveDisconnected = "Conexão em tempo real perdida."

	// MsgComposeManualOnly is shown when replying to a patient in automatic mode.
	MsgComposeManualOnly = "Assuma o controle do paciente para responder."

	MsgNoSuggestion = "Nenhuma sugestão disponível."

	MsgEmptyName = "O nome não pode ficar em branco."

	MsgCredentialsRequired = "Email e senha são obrigatórios"
	MsgPasswordsDoNotMatch = "As senhas não coincidem"

	MsgCopied = "Copiado!"

	MsgNoMetrics = "Nenhuma métrica registrada."
)

// WelcomeMessage is sent to a patient the first time they write.
const WelcomeMessage = "Olá! Bem-vindo(a) ao nosso canal de acompanhamento. " +
	"Por aqui, nossa equipe e nosso assistente virtual irão interagir com você para acompanhar sua jornada. " +
	"Sinta-se à vontade para responder às perguntas quando for mais conveniente."

// AlertKeywords flag a patient message as an alert when no AI is configured.
var AlertKeywords = []string{
	"dor",
	"febre",
	"difícil",
	"não tomei",
	"sem dormir",
	"ansioso",
	"triste",
	"passando mal",
	"ajuda",
}
