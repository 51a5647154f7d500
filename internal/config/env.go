// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// deploymentEnv holds the unprefixed variable names used by existing
// deployments of the backend. They fill fields left empty by the prefixed names.
type deploymentEnv struct {
	DatabaseURL   string `env:"DATABASE_URL"`
	SecretKey     string `env:"SECRET_KEY"`
	VerifyToken   string `env:"VERIFY_TOKEN"`
	PhoneNumberID string `env:"PHONE_NUMBER_ID"`
	CronSecret    string `env:"CRON_SECRET"`
	OpenAIKey     string `env:"OPENAI_API_KEY"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var legacy deploymentEnv
	if err := env.Parse(&legacy); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	fillEmpty(&cfg.Storage.DB.DSN, legacy.DatabaseURL)
	fillEmpty(&cfg.App.TokenSignKey, legacy.SecretKey)
	fillEmpty(&cfg.App.VerifyToken, legacy.VerifyToken)
	fillEmpty(&cfg.WhatsApp.PhoneNumberID, legacy.PhoneNumberID)
	fillEmpty(&cfg.App.CronSecret, legacy.CronSecret)
	fillEmpty(&cfg.AI.APIKey, legacy.OpenAIKey)

	return nil
}

func fillEmpty(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
