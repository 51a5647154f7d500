package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
	openai "github.com/sashabaranov/go-openai"
)

const analysisPrompt = `Você é o assistente virtual de uma equipe de saúde que acompanha pacientes pelo WhatsApp.
Analise a mensagem do paciente e responda apenas com um objeto JSON, sem texto adicional, com as chaves:
- "is_alert": true se a mensagem indicar dor, piora, sintomas preocupantes, abandono do tratamento ou pedido de ajuda;
- "auto_reply_text": uma resposta curta, empática e em português para o paciente;
- "extracted_metrics": lista de objetos {"type": string, "value": número} com as métricas informadas (por exemplo peso, horas de sono, glicemia), ou lista vazia.`

const summaryPrompt = `Resuma em português a conversa a seguir entre a equipe de saúde e o paciente.
Destaque sintomas relatados, métricas informadas, adesão ao tratamento e pontos que exigem atenção da equipe.`

type openAIAdapter struct {
	client  *openai.Client
	model   string
	timeout time.Duration

	logger *logger.Logger
}

// NewOpenAIAdapter constructs an [AIAdapter] over an OpenAI-compatible chat
// completion API. cfg.BaseURL, when set, overrides the provider endpoint.
func NewOpenAIAdapter(cfg config.AI, logger *logger.Logger) AIAdapter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &openAIAdapter{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// Analyze implements [AIAdapter]. Replies wrapped in markdown code fences
// are accepted.
func (a *openAIAdapter) Analyze(ctx context.Context, text string) (models.Analysis, error) {
	content, err := a.complete(ctx, analysisPrompt, "Mensagem do paciente: "+text)
	if err != nil {
		return models.Analysis{}, err
	}

	return parseAnalysis(content)
}

// Summarize implements [AIAdapter].
func (a *openAIAdapter) Summarize(ctx context.Context, messages []models.Message) (string, error) {
	summary, err := a.complete(ctx, summaryPrompt, formatTranscript(messages))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(summary), nil
}

func (a *openAIAdapter) complete(ctx context.Context, system, user string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.2,
	})
	if err != nil {
		a.logger.Err(err).Str("func", "*openAIAdapter.complete").Str("model", a.model).Msg("chat completion failed")
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyAIResponse
	}

	return resp.Choices[0].Message.Content, nil
}

func parseAnalysis(content string) (models.Analysis, error) {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	var analysis models.Analysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(cleaned)), &analysis); err != nil {
		return models.Analysis{}, fmt.Errorf("%w: %w", ErrInvalidAIResponse, err)
	}
	analysis.AutoReplyText = strings.TrimSpace(analysis.AutoReplyText)

	return analysis, nil
}

func formatTranscript(messages []models.Message) string {
	var b strings.Builder
	for _, m := range messages {
		speaker := "Paciente"
		if m.Sender == models.SenderProfessional {
			speaker = "Equipe"
		}
		fmt.Fprintf(&b, "[%s] %s: %s\n", m.Timestamp.Format("02/01/2006 15:04"), speaker, m.Text)
	}
	return b.String()
}
