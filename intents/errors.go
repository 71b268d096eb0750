package intents

import (
	"net/http"

	"github.com/telekom/voice-skill-sdk/internal/common/apperrors"
	"github.com/telekom/voice-skill-sdk/internal/common/httpx"
)

// Errors an invoke can fail with. Each carries the SPI error code and the
// HTTP status the dialog manager expects.
var (
	// ErrIntentNotFound is returned when no handler serves the intent and
	// no fallback is registered.
	ErrIntentNotFound = apperrors.New("intent not found").
				SetStatusCode(http.StatusNotFound).
				SetErrorCode(httpx.CodeNotFound)

	// ErrInvalidToken is returned when a token in the invoke context fails
	// validation.
	ErrInvalidToken = apperrors.New("invalid token").
			SetStatusCode(http.StatusBadRequest).
			SetErrorCode(httpx.CodeInvalidToken)

	// ErrBadRequest is returned when the invoke payload is malformed.
	ErrBadRequest = apperrors.New("Bad request").
			SetStatusCode(http.StatusBadRequest).
			SetErrorCode(httpx.CodeBadRequest)

	// ErrTimeout is returned when the handler misses its deadline.
	ErrTimeout = apperrors.New("Time out").
			SetStatusCode(http.StatusGatewayTimeout).
			SetErrorCode(httpx.CodeTimeout)

	// ErrInternal is returned for unhandled failures.
	ErrInternal = apperrors.New("internal error").
			SetStatusCode(http.StatusInternalServerError).
			SetErrorCode(httpx.CodeUnknown)

	// ErrMultiplePushMessages is returned when a handler queues more than
	// one push notification.
	ErrMultiplePushMessages = ErrInternal.New("multiple push messages are not supported")

	// ErrEntityValue is returned when an attribute value cannot be
	// converted to the requested type.
	ErrEntityValue = ErrBadRequest.New("invalid entity value")
)
