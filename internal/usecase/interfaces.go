package usecase

import (
	"context"

	"github.com/SBianucci/DevSyncAI/internal/entities"
)

// WebhookUsecaseInterface abstracts event processing for the delivery layer.
type WebhookUsecaseInterface interface {
	ProcessEvent(ctx context.Context, ev entities.WebhookEvent) (entities.Outcome, error)
}
