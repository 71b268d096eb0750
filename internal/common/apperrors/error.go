// Package apperrors provides the error type used throughout the SDK. It
// implements the standard error interface and adds error chaining, an HTTP
// status code and the skill SPI error code that invoke error payloads carry.
// Methods never mutate the receiver; each returns a derived error so values
// declared at package level stay safe to share.
package apperrors

// Error is the application error interface used across the SDK.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error      // creates a fresh error using current as template
	Msg(msg string) Error      // creates a new error with message, wrapping current
	Err(err ...error) Error    // attaches additional errors to the current error
	SetExpandError(bool) Error // controls whether ErrorAll expands wrapped errors
	SetStatusCode(int) Error   // sets the HTTP status code
	StatusCode() int           // returns the HTTP status code
	SetErrorCode(int) Error    // sets the skill SPI error code
	ErrorCode() int            // returns the skill SPI error code
	ErrorAll() string          // full message including wrapped errors
	UnwrapAll() []error        // all wrapped errors
}
