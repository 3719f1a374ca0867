// Package jira implements the issue tracker client against Jira Cloud REST v3.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SBianucci/DevSyncAI/config"
	"github.com/SBianucci/DevSyncAI/internal/entities"

	"go.uber.org/zap"
)

// Client talks to the Jira Cloud REST API using basic auth.
type Client struct {
	log        *zap.SugaredLogger
	httpc      *http.Client
	baseURL    string
	email      string
	apiToken   string
	projectKey string
}

// Issue is the subset of a Jira issue the bridge reads.
type Issue struct {
	Key     string
	Summary string
	Status  string
}

// New creates a Jira client from configuration.
func New(log *zap.SugaredLogger, cfg config.JiraConfig) *Client {
	return &Client{
		log:        log,
		httpc:      &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		email:      cfg.Email,
		apiToken:   cfg.APIToken,
		projectKey: cfg.ProjectKey,
	}
}

// IsConfigured reports whether credentials are present.
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.email != "" && c.apiToken != ""
}

type transition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	To   struct {
		Name string `json:"name"`
	} `json:"to"`
}

type transitionsResponse struct {
	Transitions []transition `json:"transitions"`
}

// TransitionIssue moves the issue to the named target state. Transition ids
// differ per project workflow, so they are resolved by listing the available
// transitions and matching the target state name.
func (c *Client) TransitionIssue(ctx context.Context, key string, state entities.TargetState) error {
	id, err := c.resolveTransition(ctx, key, string(state))
	if err != nil {
		return err
	}

	payload := map[string]any{"transition": map[string]string{"id": id}}
	if err := c.post(ctx, fmt.Sprintf("/rest/api/3/issue/%s/transitions", key), payload); err != nil {
		return fmt.Errorf("transition issue %s to %q: %w", key, state, err)
	}

	c.log.Infow("issue transitioned", "key", key, "state", state)
	return nil
}

func (c *Client) resolveTransition(ctx context.Context, key, state string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+fmt.Sprintf("/rest/api/3/issue/%s/transitions", key), nil)
	if err != nil {
		return "", fmt.Errorf("list transitions for %s: %w", key, err)
	}
	c.decorate(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("list transitions for %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("list transitions for %s: status %d: %s", key, resp.StatusCode, body)
	}

	var list transitionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return "", fmt.Errorf("decode transitions for %s: %w", key, err)
	}

	for _, t := range list.Transitions {
		if t.Name == state || t.To.Name == state {
			return t.ID, nil
		}
	}
	return "", fmt.Errorf("issue %s has no transition to %q", key, state)
}

// CreateIssue creates an issue in the configured project and returns its key.
func (c *Client) CreateIssue(ctx context.Context, summary, description, issueType string) (string, error) {
	if issueType == "" {
		issueType = "Task"
	}
	payload := map[string]any{
		"fields": map[string]any{
			"project":     map[string]string{"key": c.projectKey},
			"summary":     summary,
			"description": adfParagraph(description),
			"issuetype":   map[string]string{"name": issueType},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal issue: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rest/api/3/issue", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create issue: %w", err)
	}
	c.decorate(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("create issue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("create issue: status %d: %s", resp.StatusCode, respBody)
	}

	var created struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode created issue: %w", err)
	}

	c.log.Infow("issue created", "key", created.Key)
	return created.Key, nil
}

// AddComment posts a plain text comment on the issue. Jira Cloud v3 expects
// comments in Atlassian Document Format.
func (c *Client) AddComment(ctx context.Context, key, text string) error {
	payload := map[string]any{"body": adfParagraph(text)}
	if err := c.post(ctx, fmt.Sprintf("/rest/api/3/issue/%s/comment", key), payload); err != nil {
		return fmt.Errorf("comment on issue %s: %w", key, err)
	}
	return nil
}

// GetIssue fetches key, summary and current status of an issue.
func (c *Client) GetIssue(ctx context.Context, key string) (*Issue, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+fmt.Sprintf("/rest/api/3/issue/%s", key), nil)
	if err != nil {
		return nil, fmt.Errorf("get issue %s: %w", key, err)
	}
	c.decorate(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get issue %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get issue %s: status %d: %s", key, resp.StatusCode, body)
	}

	var raw struct {
		Key    string `json:"key"`
		Fields struct {
			Summary string `json:"summary"`
			Status  struct {
				Name string `json:"name"`
			} `json:"status"`
		} `json:"fields"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode issue %s: %w", key, err)
	}

	return &Issue{Key: raw.Key, Summary: raw.Fields.Summary, Status: raw.Fields.Status.Name}, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.decorate(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, respBody)
	}
	return nil
}

func (c *Client) decorate(req *http.Request) {
	req.SetBasicAuth(c.email, c.apiToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
}

func adfParagraph(text string) map[string]any {
	return map[string]any{
		"type":    "doc",
		"version": 1,
		"content": []any{
			map[string]any{
				"type": "paragraph",
				"content": []any{
					map[string]any{"type": "text", "text": text},
				},
			},
		},
	}
}
