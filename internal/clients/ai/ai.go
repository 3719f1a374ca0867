// Package ai implements the text generation client against a
// chat-completions style API (OpenRouter-compatible).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/SBianucci/DevSyncAI/config"
	"github.com/SBianucci/DevSyncAI/internal/entities"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Input limits in characters. Oversized titles and descriptions are
// truncated; an oversized diff is rejected because truncating it would
// document half a change.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 4000
	maxDiffLen        = 8000
)

const maxAttempts = 3

// Client calls the text generation API with client-side rate limiting and
// bounded retry on transient network errors.
type Client struct {
	log       *zap.SugaredLogger
	httpc     *http.Client
	limiter   *rate.Limiter
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
}

// New creates a text generation client from configuration.
func New(log *zap.SugaredLogger, cfg config.AIConfig) *Client {
	calls := cfg.RateLimitCalls
	if calls < 1 {
		calls = 1
	}
	period := cfg.RateLimitPeriod
	if period <= 0 {
		period = time.Minute
	}

	return &Client{
		log:       log,
		httpc:     &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(float64(calls)/period.Seconds()), calls),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// IsConfigured reports whether an API key is present.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// GeneratePRFeedback produces review feedback from the PR title and body.
func (c *Client) GeneratePRFeedback(ctx context.Context, title, body string) (string, error) {
	title = truncate(title, maxTitleLen)
	body = truncate(body, maxDescriptionLen)

	prompt := fmt.Sprintf(feedbackPrompt, title, body)
	text, err := c.complete(ctx, reviewerSystemPrompt, prompt, c.maxTokens)
	if err != nil {
		return "", fmt.Errorf("generate pr feedback: %w", err)
	}
	return text, nil
}

// GenerateDocument produces documentation for a diff, targeted at the given
// audience. Documents get twice the feedback token budget.
func (c *Client) GenerateDocument(ctx context.Context, content string, kind entities.DocKind) (string, error) {
	if len(content) > maxDiffLen {
		return "", fmt.Errorf("%w: diff is %d chars, limit %d", entities.ErrContentTooLarge, len(content), maxDiffLen)
	}

	var system, prompt string
	switch kind {
	case entities.DocTechnical:
		system = architectSystemPrompt
		prompt = fmt.Sprintf(technicalDocPrompt, content)
	case entities.DocNonTechnical:
		system = consultantSystemPrompt
		prompt = fmt.Sprintf(stakeholderDocPrompt, content)
	default:
		return "", fmt.Errorf("%w: unknown document kind %q", entities.ErrInvalidArgument, kind)
	}

	text, err := c.complete(ctx, system, prompt, 2*c.maxTokens)
	if err != nil {
		return "", fmt.Errorf("generate %s document: %w", kind, err)
	}
	return text, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func (c *Client) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("ai api key not configured")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := c.createCompletion(ctx, system, user, maxTokens)
		if err == nil {
			if attempt > 0 {
				c.log.Infow("completion succeeded after retry", "attempts", attempt+1)
			}
			return text, nil
		}

		lastErr = err
		if !isRetryable(err) {
			return "", err
		}
		c.log.Warnw("transient completion error, retrying",
			"attempt", attempt+1, "max_attempts", maxAttempts, "error", err)
	}
	return "", fmt.Errorf("after %d attempts: %w", maxAttempts, lastErr)
}

func (c *Client) createCompletion(ctx context.Context, system, user string, maxTokens int) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, respBody)
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("no completion choices")
	}

	c.log.Debugw("completion received",
		"prompt_tokens", chat.Usage.PromptTokens,
		"completion_tokens", chat.Usage.CompletionTokens,
	)
	return strings.TrimSpace(chat.Choices[0].Message.Content), nil
}

func isRetryable(err error) bool {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, transient := range []string{
		"connection reset by peer",
		"connection refused",
		"timeout",
		"network is unreachable",
	} {
		if strings.Contains(msg, transient) {
			return true
		}
	}
	return false
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
