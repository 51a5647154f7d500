package config

import "time"

// DefaultCheckInMessage is sent to patients in automatic mode on every check-in.
const DefaultCheckInMessage = "Olá! Passando para saber como você está hoje. " +
	"Se quiser, conte como foi seu dia, sua alimentação e se sentiu algum desconforto."

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "cuide-me",
			TokenDuration: 60 * time.Minute,
		},
		Storage: Storage{
			Local: Local{Path: "cuide-me.db"},
		},
		Server: Server{
			HTTPAddress:     "localhost:8000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8000",
			RequestTimeout: 30 * time.Second,
		},
		WhatsApp: WhatsApp{
			APIURL:            "https://graph.facebook.com/v20.0",
			RequestsPerSecond: 20,
		},
		AI: AI{
			Model:   "gpt-4o-mini",
			Timeout: 60 * time.Second,
		},
		Workers: Workers{
			CheckInMessage: DefaultCheckInMessage,
		},
	}
}
