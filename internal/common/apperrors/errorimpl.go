package apperrors

import (
	"errors"
	"strings"
)

// appError is the concrete implementation of Error.
type appError struct {
	msg           string  // primary error message
	base          error   // base error for errors.Is/As compatibility
	wrappedErrors []error // additional wrapped errors
	statuscode    int     // HTTP status code
	errcode       int     // skill SPI error code
	expandError   bool    // controls error message expansion
}

func (e *appError) Error() string {
	return e.msg
}

// ErrorAll returns the full message including wrapped errors if expandError
// is set. Otherwise it returns the same as Error().
func (e *appError) ErrorAll() string {
	if !e.expandError {
		return e.Error()
	}
	var b strings.Builder
	b.WriteString(e.Error())
	for _, err := range e.wrappedErrors {
		b.WriteString("; ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap returns the base error for compatibility with errors.Is / errors.As.
func (e *appError) Unwrap() error {
	return e.base
}

// UnwrapAll returns all wrapped errors in the order they were added.
func (e *appError) UnwrapAll() []error {
	return e.wrappedErrors
}

// Msg creates a new error with a new message and wraps the original error.
// The new error inherits the status and SPI codes from the original.
func (e *appError) Msg(msg string) Error {
	return &appError{
		msg:           msg,
		base:          e,
		wrappedErrors: append([]error{e}, e.wrappedErrors...),
		statuscode:    e.statuscode,
		errcode:       e.errcode,
	}
}

// New creates a fresh error using the current error as a template. The new
// error inherits the status and SPI codes but starts with a new message.
func (e *appError) New(msg string) Error {
	return &appError{
		msg:        msg,
		base:       e,
		statuscode: e.statuscode,
		errcode:    e.errcode,
	}
}

// Err creates a new error by attaching additional errors to the current one.
// The new error keeps the original message and codes.
func (e *appError) Err(errs ...error) Error {
	all := append([]error{e}, errs...)
	return &appError{
		msg:           e.msg,
		base:          e,
		wrappedErrors: all,
		statuscode:    e.statuscode,
		errcode:       e.errcode,
	}
}

// SetExpandError returns a shallow copy with an updated expansion flag.
func (e *appError) SetExpandError(flag bool) Error {
	cp := *e
	cp.expandError = flag
	return &cp
}

// SetStatusCode returns a shallow copy with an updated HTTP status code.
func (e *appError) SetStatusCode(code int) Error {
	cp := *e
	cp.statuscode = code
	return &cp
}

// StatusCode returns the HTTP status code.
func (e *appError) StatusCode() int {
	return e.statuscode
}

// SetErrorCode returns a shallow copy with an updated skill SPI error code.
func (e *appError) SetErrorCode(code int) Error {
	cp := *e
	cp.errcode = code
	return &cp
}

// ErrorCode returns the skill SPI error code.
func (e *appError) ErrorCode() int {
	return e.errcode
}

// New creates a root-level error with the given message. This is the entry
// point for declaring package-level error values.
func New(msg string) Error {
	return &appError{
		msg: msg,
	}
}

// Is reports whether the error matches the target by checking both the base
// error and all wrapped errors.
func (e *appError) Is(target error) bool {
	if target == nil {
		return false
	}
	if errors.Is(e.base, target) {
		return true
	}
	for _, err := range e.wrappedErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
