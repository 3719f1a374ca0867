// Package entities contains core business entities and errors.
package entities

// EventType enumerates the GitHub event kinds the bridge reacts to.
type EventType string

const (
	// EventCreate is emitted when a ref (branch, tag) is created.
	EventCreate EventType = "create"
	// EventPullRequest covers the whole pull request lifecycle.
	EventPullRequest EventType = "pull_request"
)

// WebhookEvent is the normalized form of an inbound GitHub event.
// Immutable once mapped from the raw payload.
type WebhookEvent struct {
	Type     EventType
	RefType  string
	RefName  string
	Action   string
	Merged   bool
	Repo     string
	PRNumber int
	PRTitle  string
	PRBody   string
}
