// Package clients contains collaborator interfaces for external services.
package clients

import (
	"context"

	"github.com/SBianucci/DevSyncAI/internal/entities"
)

// IssueTracker exposes issue tracker operations.
type IssueTracker interface {
	TransitionIssue(ctx context.Context, key string, state entities.TargetState) error
	AddComment(ctx context.Context, key, text string) error
}

// SourceHost exposes source host (GitHub) operations.
type SourceHost interface {
	CreateComment(ctx context.Context, repo string, number int, body string) error
	GetDiff(ctx context.Context, repo string, number int) (string, error)
}

// TextGenerator exposes text generation operations.
type TextGenerator interface {
	GeneratePRFeedback(ctx context.Context, title, body string) (string, error)
	GenerateDocument(ctx context.Context, content string, kind entities.DocKind) (string, error)
}
