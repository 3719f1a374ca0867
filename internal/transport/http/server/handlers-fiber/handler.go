// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/SBianucci/DevSyncAI/internal/signature"
	"github.com/SBianucci/DevSyncAI/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler implements the HTTP surface using service layer interfaces.
type Handler struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	verifier *signature.Verifier
	health   func() map[string]string
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(
	log *zap.SugaredLogger,
	uc usecase.InterfaceUsecase,
	verifier *signature.Verifier,
	health func() map[string]string,
) *Handler {
	return &Handler{
		log:      log,
		uc:       uc,
		verifier: verifier,
		health:   health,
	}
}

// Register binds all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/webhook", h.PostWebhook)
	app.Get("/health", h.GetHealth)
}
