package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/telekom/voice-skill-sdk/internal/common/httpx"
)

// PanicHandler creates middleware that recovers from panics in HTTP
// handlers. When a panic occurs, it logs the panic details and stack trace,
// then returns a generic internal error payload to the dialog manager so a
// single misbehaving handler cannot take the skill down.
func PanicHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := httpx.NewResponseWriter(w)
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()

				log.Ctx(r.Context()).Error().
					Str("panic", fmt.Sprintf("%v", err)).
					Str("stack_trace", string(stack)).
					Msg("panic occurred")

				if !rw.Written() {
					httpx.ErrInternal("unhandled exception").Send(rw)
				}
			}
		}()
		next.ServeHTTP(rw, r)
	})
}
