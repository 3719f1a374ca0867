package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/SBianucci/DevSyncAI/internal/entities"
	"github.com/SBianucci/DevSyncAI/internal/mapper"
	"github.com/SBianucci/DevSyncAI/internal/signature"
	"github.com/gofiber/fiber/v2"
)

// EventHeader carries the GitHub event type.
const EventHeader = "X-GitHub-Event"

type messageResponse struct {
	Message string `json:"message"`
}

// PostWebhook receives a GitHub event: verifies the signature over the raw
// body, maps the payload and dispatches the matching workflow.
func (h *Handler) PostWebhook(c *fiber.Ctx) error {
	body := c.Body()

	if err := h.verifier.Verify(body, c.Get(signature.Header)); err != nil {
		h.log.Warnw("webhook rejected", "error", err, "ip", c.IP())
		return writeError(c, err)
	}

	ev, err := mapper.FromGitHubPayload(c.Get(EventHeader), body)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ProcessEvent(c.Context(), ev)
	switch {
	case errors.Is(err, entities.ErrNoTrackingID):
		// Expected for branches and PRs without a tracked issue.
		return c.Status(http.StatusOK).JSON(messageResponse{Message: "no tracking identifier found"})
	case err != nil:
		return writeError(c, err)
	case out.Workflow == entities.WorkflowNone:
		return c.Status(http.StatusOK).JSON(messageResponse{Message: "event ignored"})
	}

	return c.Status(http.StatusOK).JSON(out)
}
