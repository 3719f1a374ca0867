package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Logging LoggingConfig `mapstructure:"logging"`
	GitHub  GitHubConfig  `mapstructure:"github"`
	Jira    JiraConfig    `mapstructure:"jira"`
	AI      AIConfig      `mapstructure:"ai"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.GitHub.WebhookSecret == "" {
		return errors.New("github.webhook_secret is required")
	}
	if c.GitHub.Token == "" {
		return errors.New("github.token is required")
	}
	if c.Jira.BaseURL == "" || c.Jira.Email == "" || c.Jira.APIToken == "" {
		return errors.New("jira credentials are required")
	}
	if c.AI.APIKey == "" {
		return errors.New("ai.api_key is required")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	RateLimitMax    int           `mapstructure:"rate_limit_max"`
	RateLimitWindow time.Duration `mapstructure:"rate_limit_window"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// GitHubConfig describes GitHub API access and webhook validation.
type GitHubConfig struct {
	Token         string        `mapstructure:"token"`
	WebhookSecret string        `mapstructure:"webhook_secret"`
	APIBaseURL    string        `mapstructure:"api_base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// JiraConfig describes Jira Cloud API access.
type JiraConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Email      string        `mapstructure:"email"`
	APIToken   string        `mapstructure:"api_token"`
	ProjectKey string        `mapstructure:"project_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// AIConfig describes the text generation service.
type AIConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	BaseURL         string        `mapstructure:"base_url"`
	Model           string        `mapstructure:"model"`
	MaxTokens       int           `mapstructure:"max_tokens"`
	Timeout         time.Duration `mapstructure:"timeout"`
	RateLimitCalls  int           `mapstructure:"rate_limit_calls"`
	RateLimitPeriod time.Duration `mapstructure:"rate_limit_period"`
}
