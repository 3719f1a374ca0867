// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 30*time.Second)
	v.SetDefault("http.rate_limit_max", 100)
	v.SetDefault("http.rate_limit_window", time.Minute)

	v.SetDefault("github.api_base_url", "https://api.github.com")
	v.SetDefault("github.timeout", 10*time.Second)

	v.SetDefault("jira.timeout", 10*time.Second)

	v.SetDefault("ai.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("ai.model", "openai/gpt-4o-mini")
	v.SetDefault("ai.max_tokens", 1024)
	v.SetDefault("ai.timeout", 30*time.Second)
	v.SetDefault("ai.rate_limit_calls", 10)
	v.SetDefault("ai.rate_limit_period", time.Minute)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"http.rate_limit_max",
		"http.rate_limit_window",
		"github.token",
		"github.webhook_secret",
		"github.api_base_url",
		"github.timeout",
		"jira.base_url",
		"jira.email",
		"jira.api_token",
		"jira.project_key",
		"jira.timeout",
		"ai.api_key",
		"ai.base_url",
		"ai.model",
		"ai.max_tokens",
		"ai.timeout",
		"ai.rate_limit_calls",
		"ai.rate_limit_period",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
