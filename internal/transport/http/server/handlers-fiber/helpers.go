package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/SBianucci/DevSyncAI/internal/entities"
	"github.com/gofiber/fiber/v2"
)

// ErrorCode enumerates machine-readable error codes in responses.
type ErrorCode string

const (
	// BADSIGNATURE marks failed webhook authentication.
	BADSIGNATURE ErrorCode = "BAD_SIGNATURE"
	// BADPAYLOAD marks an unparseable or invalid webhook body.
	BADPAYLOAD ErrorCode = "BAD_PAYLOAD"
	// INTERNAL marks everything else.
	INTERNAL ErrorCode = "INTERNAL"
)

// ErrorResponse is the error envelope returned by all endpoints.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrBadSignature):
		status = http.StatusUnauthorized
		code = BADSIGNATURE
		msg = "invalid signature"
	case errors.Is(err, entities.ErrMalformedPayload):
		status = http.StatusBadRequest
		code = BADPAYLOAD
		msg = "invalid JSON payload"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = BADPAYLOAD
		msg = err.Error()
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code ErrorCode, msg string) ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}
