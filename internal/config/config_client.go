package config

import (
	"fmt"
	"time"
)

// ClientApp holds dashboard application settings.
type ClientApp struct {
	// LogFile is where the dashboard writes its logs.
	LogFile string
	// Version is shown in the build info window.
	Version string
}

// ClientAdapter holds network settings used by the dashboard transport layer.
type ClientAdapter struct {
	// BaseURL is the backend base URL for HTTP calls and the derived live channel.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups dashboard storage settings.
type ClientStorage struct {
	// Path is the SQLite file holding the persisted session.
	Path string
}

// ClientConfig is the dashboard configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the dashboard config view.
//
// It loads the merged configuration with the same sources as
// [GetStructuredConfig] but applies only the dashboard's validation rules.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Path: cfg.Storage.Local.Path,
		},
	}
}
