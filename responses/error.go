package responses

import (
	"github.com/telekom/voice-skill-sdk/internal/common/httpx"
)

// Error codes understood by the dialog manager.
const (
	ErrCodeNotFound     = httpx.CodeNotFound
	ErrCodeInvalidToken = httpx.CodeInvalidToken
	ErrCodeBadRequest   = httpx.CodeBadRequest
	ErrCodeTimeout      = httpx.CodeTimeout
	ErrCodeUnknown      = httpx.CodeUnknown
)

// ErrorResponse is returned explicitly from an intent handler or produced
// by the SDK when invoking the handler fails. The defined combinations:
//
//	{"code": 1, "text": "intent not found"}  HTTP 404
//	{"code": 2, "text": "invalid token"}     HTTP 400
//	{"code": 3, "text": "Bad request"}       HTTP 400
//	{"code": 4, "text": "Time out"}          HTTP 504
//	{"code": 999, "text": "internal error"}  HTTP 500
type ErrorResponse struct {
	Code int    `json:"code"`
	Text string `json:"text"`
}

// NewErrorResponse creates an error response.
func NewErrorResponse(code int, text string) *ErrorResponse {
	return &ErrorResponse{Code: code, Text: text}
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	return e.Text
}

// StatusCode returns the HTTP status code matching the error code.
func (e *ErrorResponse) StatusCode() int {
	return httpx.StatusForCode(e.Code)
}
