// Package mapper converts raw webhook payloads into domain models.
package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/SBianucci/DevSyncAI/internal/entities"
)

// githubPayload mirrors the subset of the GitHub webhook body the bridge
// reads. Everything else in the payload is ignored.
type githubPayload struct {
	RefType     string             `json:"ref_type"`
	Ref         string             `json:"ref"`
	Action      string             `json:"action"`
	PullRequest *githubPullRequest `json:"pull_request"`
	Repository  *githubRepository  `json:"repository"`
}

type githubPullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Merged bool   `json:"merged"`
}

type githubRepository struct {
	FullName string `json:"full_name"`
}

// FromGitHubPayload builds an entities.WebhookEvent from the X-GitHub-Event
// header and the raw JSON body. Unknown event types map through unchanged;
// classification decides what to do with them.
func FromGitHubPayload(eventType string, body []byte) (entities.WebhookEvent, error) {
	var payload githubPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return entities.WebhookEvent{}, fmt.Errorf("%w: %v", entities.ErrMalformedPayload, err)
	}

	ev := entities.WebhookEvent{
		Type:    entities.EventType(eventType),
		RefType: payload.RefType,
		RefName: payload.Ref,
		Action:  payload.Action,
	}
	if payload.Repository != nil {
		ev.Repo = payload.Repository.FullName
	}
	if pr := payload.PullRequest; pr != nil {
		ev.PRNumber = pr.Number
		ev.PRTitle = pr.Title
		ev.PRBody = pr.Body
		ev.Merged = pr.Merged
	}
	return ev, nil
}
