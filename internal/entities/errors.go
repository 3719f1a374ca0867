// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrBadSignature is returned when webhook HMAC verification fails.
	ErrBadSignature = errors.New("bad signature")
	// ErrMalformedPayload signals an unparseable webhook body.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrNoTrackingID signals that no tracking identifier was found.
	// Absence is an expected outcome, not a failure.
	ErrNoTrackingID = errors.New("no tracking identifier")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrContentTooLarge signals input exceeding a generation limit.
	ErrContentTooLarge = errors.New("content too large")
)
