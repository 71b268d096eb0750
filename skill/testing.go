package skill

import (
	"context"

	"github.com/telekom/voice-skill-sdk/intents"
	"github.com/telekom/voice-skill-sdk/responses"
)

// TestIntent invokes a registered intent with synthetic attributes. Unit
// tests use it to exercise handlers without going through HTTP.
func (s *Skill) TestIntent(name string, attributes map[string][]string) (*responses.Response, error) {
	intent, ok := s.GetIntent(name)
	if !ok {
		return nil, intents.ErrIntentNotFound
	}
	return intent.Invoke(context.Background(), intents.NewTestRequest(name, attributes))
}
