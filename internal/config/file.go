package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of a JSON or YAML config file.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		VerifyToken   string   `json:"verify_token" yaml:"verify_token"`
		CronSecret    string   `json:"cron_secret" yaml:"cron_secret"`
		LogFile       string   `json:"log_file" yaml:"log_file"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Local struct {
			Path string `json:"path" yaml:"path"`
		} `json:"local" yaml:"local"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	WhatsApp struct {
		Token             string  `json:"token" yaml:"token"`
		PhoneNumberID     string  `json:"phone_number_id" yaml:"phone_number_id"`
		APIURL            string  `json:"api_url" yaml:"api_url"`
		AppSecret         string  `json:"app_secret" yaml:"app_secret"`
		RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
	} `json:"whatsapp" yaml:"whatsapp"`

	AI struct {
		APIKey  string   `json:"api_key" yaml:"api_key"`
		BaseURL string   `json:"base_url" yaml:"base_url"`
		Model   string   `json:"model" yaml:"model"`
		Timeout Duration `json:"timeout" yaml:"timeout"`
	} `json:"ai" yaml:"ai"`

	Workers struct {
		CheckInInterval Duration `json:"check_in_interval" yaml:"check_in_interval"`
		CheckInMessage  string   `json:"check_in_message" yaml:"check_in_message"`
	} `json:"workers" yaml:"workers"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
			VerifyToken:   f.App.VerifyToken,
			CronSecret:    f.App.CronSecret,
			LogFile:       f.App.LogFile,
		},
		Storage: Storage{
			DB:    DB{DSN: f.Storage.DB.DSN},
			Local: Local{Path: f.Storage.Local.Path},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		WhatsApp: WhatsApp{
			Token:             f.WhatsApp.Token,
			PhoneNumberID:     f.WhatsApp.PhoneNumberID,
			APIURL:            f.WhatsApp.APIURL,
			AppSecret:         f.WhatsApp.AppSecret,
			RequestsPerSecond: f.WhatsApp.RequestsPerSecond,
		},
		AI: AI{
			APIKey:  f.AI.APIKey,
			BaseURL: f.AI.BaseURL,
			Model:   f.AI.Model,
			Timeout: time.Duration(f.AI.Timeout),
		},
		Workers: Workers{
			CheckInInterval: time.Duration(f.Workers.CheckInInterval),
			CheckInMessage:  f.Workers.CheckInMessage,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML. Plain numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(n)
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
