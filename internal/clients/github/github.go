// Package github implements the source host client against the GitHub REST API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SBianucci/DevSyncAI/config"

	"go.uber.org/zap"
)

const (
	acceptJSON = "application/vnd.github.v3+json"
	acceptDiff = "application/vnd.github.v3.diff"
)

// Client talks to the GitHub REST API with token auth.
type Client struct {
	log     *zap.SugaredLogger
	httpc   *http.Client
	baseURL string
	token   string
}

// PullRequest is the subset of PR fields the bridge reads.
type PullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	State  string `json:"state"`
	Merged bool   `json:"merged"`
}

// New creates a GitHub client from configuration.
func New(log *zap.SugaredLogger, cfg config.GitHubConfig) *Client {
	return &Client{
		log:     log,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		token:   cfg.Token,
	}
}

// IsConfigured reports whether an API token is present.
func (c *Client) IsConfigured() bool {
	return c.token != ""
}

// CreateComment posts an issue comment on the PR. GitHub treats PR comments
// as issue comments.
func (c *Client) CreateComment(ctx context.Context, repo string, number int, body string) error {
	payload, err := json.Marshal(map[string]string{"body": body})
	if err != nil {
		return fmt.Errorf("marshal comment: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/issues/%d/comments", c.baseURL, repo, number)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("comment on %s#%d: %w", repo, number, err)
	}
	c.decorate(req, acceptJSON)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("comment on %s#%d: %w", repo, number, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("comment on %s#%d: status %d: %s", repo, number, resp.StatusCode, respBody)
	}

	c.log.Infow("pr comment created", "repo", repo, "number", number)
	return nil
}

// GetDiff fetches the unified diff of a PR via the diff media type.
func (c *Client) GetDiff(ctx context.Context, repo string, number int) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/pulls/%d", c.baseURL, repo, number)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("diff of %s#%d: %w", repo, number, err)
	}
	c.decorate(req, acceptDiff)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("diff of %s#%d: %w", repo, number, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("diff of %s#%d: %w", repo, number, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("diff of %s#%d: status %d: %s", repo, number, resp.StatusCode, body)
	}
	return string(body), nil
}

// GetPullRequest fetches PR details.
func (c *Client) GetPullRequest(ctx context.Context, repo string, number int) (*PullRequest, error) {
	url := fmt.Sprintf("%s/repos/%s/pulls/%d", c.baseURL, repo, number)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get %s#%d: %w", repo, number, err)
	}
	c.decorate(req, acceptJSON)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s#%d: %w", repo, number, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get %s#%d: status %d: %s", repo, number, resp.StatusCode, respBody)
	}

	var pr PullRequest
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decode %s#%d: %w", repo, number, err)
	}
	return &pr, nil
}

func (c *Client) decorate(req *http.Request, accept string) {
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", accept)
}
