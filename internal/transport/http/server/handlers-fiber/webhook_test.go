package handlers_fiber

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SBianucci/DevSyncAI/internal/entities"
	"github.com/SBianucci/DevSyncAI/internal/signature"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "topsecret"

type ucMock struct{ mock.Mock }

func (m *ucMock) ProcessEvent(ctx context.Context, ev entities.WebhookEvent) (entities.Outcome, error) {
	args := m.Called(ctx, ev)
	return args.Get(0).(entities.Outcome), args.Error(1)
}

func newTestApp(uc *ucMock) *fiber.App {
	app := fiber.New()
	h := NewHandler(zap.NewNop().Sugar(), uc, signature.NewVerifier(testSecret),
		func() map[string]string {
			return map[string]string{"github": "ok", "jira": "ok", "ai": "ok"}
		})
	h.Register(app)
	return app
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func webhookRequest(body []byte, event, sig string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(EventHeader, event)
	if sig != "" {
		req.Header.Set(signature.Header, sig)
	}
	return req
}

func TestPostWebhookRejectsBadSignature(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(uc)
	body := []byte(`{"action":"opened"}`)

	for _, sig := range []string{"", "sha256=" + hex.EncodeToString(bytes.Repeat([]byte{0xab}, 32))} {
		resp, err := app.Test(webhookRequest(body, "pull_request", sig))
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var errResp ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		resp.Body.Close()
		require.Equal(t, BADSIGNATURE, errResp.Error.Code)
	}
	uc.AssertNotCalled(t, "ProcessEvent", mock.Anything, mock.Anything)
}

func TestPostWebhookRejectsMalformedPayload(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(uc)
	body := []byte(`{not json`)

	resp, err := app.Test(webhookRequest(body, "create", sign(body)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	require.Equal(t, BADPAYLOAD, errResp.Error.Code)
	uc.AssertNotCalled(t, "ProcessEvent", mock.Anything, mock.Anything)
}

func TestPostWebhookIgnoredEvent(t *testing.T) {
	uc := &ucMock{}
	uc.On("ProcessEvent", mock.Anything, mock.Anything).
		Return(entities.Outcome{Workflow: entities.WorkflowNone}, nil)
	app := newTestApp(uc)
	body := []byte(`{"action":"closed","pull_request":{"number":7,"merged":false}}`)

	resp, err := app.Test(webhookRequest(body, "pull_request", sign(body)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var msg messageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	require.Equal(t, "event ignored", msg.Message)
}

func TestPostWebhookNoTrackingID(t *testing.T) {
	uc := &ucMock{}
	uc.On("ProcessEvent", mock.Anything, mock.Anything).
		Return(entities.Outcome{}, fmt.Errorf("%w in ref", entities.ErrNoTrackingID))
	app := newTestApp(uc)
	body := []byte(`{"ref":"feature/no-ticket","ref_type":"branch"}`)

	resp, err := app.Test(webhookRequest(body, "create", sign(body)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var msg messageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	require.Equal(t, "no tracking identifier found", msg.Message)
}

func TestPostWebhookReturnsOutcome(t *testing.T) {
	uc := &ucMock{}
	outcome := entities.Outcome{
		Identifier:  "ABC-7",
		Workflow:    entities.WorkflowPROpened,
		TargetState: entities.StateInReview,
		Steps: []entities.StepResult{
			{Name: "transition_issue", OK: true},
			{Name: "generate_feedback", OK: false, Error: "model down"},
		},
		Partial: true,
	}
	uc.On("ProcessEvent", mock.Anything, mock.MatchedBy(func(ev entities.WebhookEvent) bool {
		return ev.Type == entities.EventPullRequest && ev.PRNumber == 7 && ev.Repo == "acme/widgets"
	})).Return(outcome, nil)
	app := newTestApp(uc)
	body := []byte(`{
		"action":"opened",
		"pull_request":{"number":7,"title":"Fix ABC-7"},
		"repository":{"full_name":"acme/widgets"}
	}`)

	resp, err := app.Test(webhookRequest(body, "pull_request", sign(body)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got entities.Outcome
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, outcome, got)
	uc.AssertExpectations(t)
}

func TestPostWebhookInvalidArgument(t *testing.T) {
	uc := &ucMock{}
	uc.On("ProcessEvent", mock.Anything, mock.Anything).
		Return(entities.Outcome{}, fmt.Errorf("%w: pull request number and repository are required", entities.ErrInvalidArgument))
	app := newTestApp(uc)
	body := []byte(`{"action":"opened","pull_request":{"title":"Fix ABC-7"}}`)

	resp, err := app.Test(webhookRequest(body, "pull_request", sign(body)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetHealth(t *testing.T) {
	app := newTestApp(&ucMock{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, "healthy", health.Status)
	require.NotEmpty(t, health.Timestamp)
	require.Equal(t, "ok", health.Services["github"])
}
