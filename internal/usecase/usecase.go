package usecase

import (
	"context"
	"time"

	"github.com/SBianucci/DevSyncAI/internal/clients"
	"github.com/SBianucci/DevSyncAI/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	WebhookUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, cl *clients.Clients, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, cl, timeout)
}
