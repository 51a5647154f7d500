package models

// WebhookPayload is the notification body posted by the WhatsApp Cloud API.
// Only the fields needed to read inbound text messages are mapped.
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Messages         []WebhookMessage `json:"messages"`
}

type WebhookMessage struct {
	From      string       `json:"from"`
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      string       `json:"type"`
	Text      *WebhookText `json:"text,omitempty"`
}

type WebhookText struct {
	Body string `json:"body"`
}

// InboundMessage is a text message received from a patient.
type InboundMessage struct {
	From string
	Text string
}

// InboundMessages flattens the payload into the text messages it carries.
// Non-text messages are skipped.
func (p WebhookPayload) InboundMessages() []InboundMessage {
	var out []InboundMessage
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Text == nil || msg.From == "" {
					continue
				}
				out = append(out, InboundMessage{From: msg.From, Text: msg.Text.Body})
			}
		}
	}
	return out
}

// WebhookVerification holds the query parameters of the subscription handshake.
type WebhookVerification struct {
	Mode        string
	VerifyToken string
	Challenge   string
}
