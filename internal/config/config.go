// Package config loads service configuration from environment variables and
// an optional .env file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port               string   `mapstructure:"PORT"`
	Env                string   `mapstructure:"ENV"`
	LogLevel           string   `mapstructure:"LOG_LEVEL"`
	DatabaseURL        string   `mapstructure:"DATABASE_URL"`
	AlertRecipientURLs []string `mapstructure:"ALERT_RECIPIENT_URLS"`
	AlertQueueSize     int      `mapstructure:"ALERT_QUEUE_SIZE"`
	OpenAIAPIKey       string   `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel        string   `mapstructure:"OPENAI_MODEL"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ALERT_QUEUE_SIZE", 64)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("ALERT_RECIPIENT_URLS")
	v.BindEnv("ALERT_QUEUE_SIZE")
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("OPENAI_MODEL")

	// Try reading .env, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.AlertRecipientURLs == nil {
		if recipients := v.GetString("ALERT_RECIPIENT_URLS"); recipients != "" {
			for _, r := range strings.Split(recipients, ",") {
				if r = strings.TrimSpace(r); r != "" {
					cfg.AlertRecipientURLs = append(cfg.AlertRecipientURLs, r)
				}
			}
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}
