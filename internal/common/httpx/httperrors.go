package httpx

import (
	"net/http"

	"github.com/telekom/voice-skill-sdk/internal/common/apperrors"
)

// Error codes the dialog manager understands in invoke error payloads.
const (
	CodeNotFound     = 1   // intent handler not found
	CodeInvalidToken = 2   // token in the invoke context is invalid
	CodeBadRequest   = 3   // invoke payload failed validation
	CodeTimeout      = 4   // handler did not respond in time
	CodeUnknown      = 999 // internal error
)

// StatusForCode maps an SPI error code to its HTTP status code.
func StatusForCode(code int) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidToken, CodeBadRequest:
		return http.StatusBadRequest
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Error represents an HTTP error in the wire format the dialog manager
// expects: a numeric code and a human-readable text.
type Error struct {
	Code       int    `json:"code"`
	Text       string `json:"text"`
	StatusCode int    `json:"-"`
}

// Send writes the error payload to the provided ResponseWriter.
// If the writer is nil, no action is taken.
func (e *Error) Send(w http.ResponseWriter) {
	if w == nil {
		return
	}
	rspJson, err := json.Marshal(e)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("unable to serialize error"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	w.Write(rspJson)
}

// Error returns the error text.
func (e *Error) Error() string {
	return e.Text
}

// Is reports whether the error matches the target error.
func (current Error) Is(other error) bool {
	return current.Error() == other.Error()
}

// SendError sends an application error as an HTTP error payload. The SPI
// code defaults to 999 and the status code to 500 when the error carries
// neither. If the error is nil, no action is taken.
func SendError(w http.ResponseWriter, err apperrors.Error) {
	if err == nil {
		return
	}
	code := err.ErrorCode()
	if code == 0 {
		code = CodeUnknown
	}
	statusCode := err.StatusCode()
	if statusCode == 0 {
		statusCode = StatusForCode(code)
	}
	httperror := &Error{
		Code:       code,
		Text:       err.ErrorAll(),
		StatusCode: statusCode,
	}
	httperror.Send(w)
}

// Common errors

// ErrNotFound returns the error sent when no handler serves the intent.
func ErrNotFound(text string) *Error {
	return &Error{
		Code:       CodeNotFound,
		Text:       text,
		StatusCode: http.StatusNotFound,
	}
}

// ErrReqMethodNotSupported returns an error for unsupported HTTP methods.
func ErrReqMethodNotSupported() *Error {
	return &Error{
		Code:       CodeBadRequest,
		Text:       "request method not supported",
		StatusCode: http.StatusMethodNotAllowed,
	}
}

// ErrUnableToParseReqData returns an error when the request body cannot be parsed.
func ErrUnableToParseReqData() *Error {
	return &Error{
		Code:       CodeBadRequest,
		Text:       "unable to parse request data",
		StatusCode: http.StatusBadRequest,
	}
}

// ErrBadRequest returns an error for invalid request data.
// If no message is provided, a default message is used.
func ErrBadRequest(text ...string) *Error {
	s := "invalid request"
	if len(text) > 0 {
		s = text[0]
	}
	return &Error{
		Code:       CodeBadRequest,
		Text:       s,
		StatusCode: http.StatusBadRequest,
	}
}

// ErrUnAuthorized returns an error for unauthorized requests.
// If no message is provided, a default message is used.
func ErrUnAuthorized(text ...string) *Error {
	s := "unable to authenticate request"
	if len(text) > 0 {
		s = text[0]
	}
	return &Error{
		Code:       CodeInvalidToken,
		Text:       s,
		StatusCode: http.StatusUnauthorized,
	}
}

// ErrRequestTimeout returns the error sent when a handler exceeds its deadline.
func ErrRequestTimeout() *Error {
	return &Error{
		Code:       CodeTimeout,
		Text:       "request timed out",
		StatusCode: http.StatusGatewayTimeout,
	}
}

// ErrInternal returns an error for application-level failures.
// If no message is provided, a default message is used.
func ErrInternal(text ...string) *Error {
	s := "unable to process request"
	if len(text) > 0 {
		s = text[0]
	}
	return &Error{
		Code:       CodeUnknown,
		Text:       s,
		StatusCode: http.StatusInternalServerError,
	}
}
