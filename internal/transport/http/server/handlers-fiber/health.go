package handlers_fiber

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// GetHealth reports liveness and per-collaborator configuration state.
// No business logic runs here.
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  h.health(),
	})
}
