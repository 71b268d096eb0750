package httpx

import (
	"net/http"
	"sync"
)

// ResponseWriter wraps http.ResponseWriter and tracks whether headers were
// written, so middleware can decide if it may still send an error payload.
// It is safe for use from multiple goroutines.
type ResponseWriter struct {
	http.ResponseWriter
	mu        sync.Mutex
	written   bool
	discarded bool
	status    int
}

// NewResponseWriter creates a new ResponseWriter wrapping the provided
// http.ResponseWriter.
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w}
}

// WriteHeader implements http.ResponseWriter.WriteHeader.
// If headers were already written, this is a no-op.
func (rw *ResponseWriter) WriteHeader(code int) {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.written || rw.discarded {
		return
	}
	rw.status = code
	rw.written = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write implements http.ResponseWriter.Write.
// If headers were not written, writes a 200 header first.
func (rw *ResponseWriter) Write(b []byte) (int, error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.discarded {
		return len(b), nil
	}
	if !rw.written {
		rw.status = http.StatusOK
		rw.written = true
		rw.ResponseWriter.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Written reports whether headers or body were written.
func (rw *ResponseWriter) Written() bool {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.written
}

// Discard claims the writer for the caller: if nothing was written yet, all
// subsequent writes through the wrapper are silently dropped and Discard
// returns true. Returns false if a response was already sent.
func (rw *ResponseWriter) Discard() bool {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.written {
		return false
	}
	rw.discarded = true
	return true
}

// Status returns the status code. Returns 200 if not set.
func (rw *ResponseWriter) Status() int {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.status == 0 {
		return http.StatusOK
	}
	return rw.status
}

// Flush implements http.Flusher if the underlying writer supports it.
func (rw *ResponseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
