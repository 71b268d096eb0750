package intents

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/telekom/voice-skill-sdk/config"
	"github.com/telekom/voice-skill-sdk/internal/tracing"
	"github.com/telekom/voice-skill-sdk/responses"
)

// Handler implements an intent. It receives the invoke request and returns
// the response to speak, or an error that the SDK converts into an error
// payload. Returning a *responses.ErrorResponse as the error forwards it to
// the dialog manager unchanged.
type Handler func(ctx context.Context, req *Request) (*responses.Response, error)

// Intent binds a name to its handler.
type Intent struct {
	Name    string
	handler Handler
}

// NewIntent creates an intent. Name and handler are required.
func NewIntent(name string, handler Handler) (Intent, error) {
	if name == "" {
		return Intent{}, ErrInternal.New("intent name is required")
	}
	if handler == nil {
		return Intent{}, ErrInternal.New("intent handler is required")
	}
	return Intent{Name: name, handler: handler}, nil
}

// Handler returns the registered handler function.
func (i Intent) Handler() Handler {
	return i.handler
}

// Invoke calls the intent handler, merges queued push messages into the
// response and returns it. The request is attached to the handler's context.
// A tracing span wraps the call when tracing is enabled in the configuration.
func (i Intent) Invoke(ctx context.Context, req *Request) (*responses.Response, error) {
	if cfg := config.Config(); cfg != nil && cfg.Tracing {
		var span trace.Span
		ctx, span = tracing.StartSpan(ctx, fmt.Sprintf("intent_call: %s", i.Name))
		defer span.End()
	}

	log.Ctx(ctx).Info().Str("intent", i.Name).Msg("calling intent")

	ctx = WithRequest(ctx, req)
	rsp, err := i.handler(ctx, req)
	if err != nil {
		return nil, err
	}
	if rsp == nil {
		return nil, ErrInternal.New("intent handler returned no response")
	}
	if err := appendPushMessages(req, rsp); err != nil {
		return nil, err
	}
	if deadline := ctx.Err(); deadline != nil {
		return nil, ErrTimeout.Err(deadline)
	}
	return rsp, nil
}

// appendPushMessages attaches push messages queued on the request to the
// response. At most one notification per response is supported.
func appendPushMessages(req *Request, rsp *responses.Response) error {
	switch len(req.pushMessages) {
	case 0:
		return nil
	case 1:
		m := req.pushMessages[0]
		rsp.PushNotification = &responses.PushNotification{
			TargetName:     m.targetName,
			MessagePayload: m.payload,
		}
		return nil
	default:
		return ErrMultiplePushMessages
	}
}
