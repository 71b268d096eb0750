package skill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telekom/voice-skill-sdk/config"
	"github.com/telekom/voice-skill-sdk/intents"
	"github.com/telekom/voice-skill-sdk/responses"
)

func helloHandler(ctx context.Context, req *intents.Request) (*responses.Response, error) {
	return responses.Tell("Hello, " + req.AttrOr("name", "world")), nil
}

func testSkill(t *testing.T) *Skill {
	t.Helper()
	config.TestInit()
	s, err := New()
	require.NoError(t, err)
	return s
}

func TestInclude(t *testing.T) {
	s := testSkill(t)

	require.NoError(t, s.Include("HELLO", helloHandler))
	assert.Equal(t, []string{"HELLO"}, s.Intents())

	// same handler again is a no-op
	require.NoError(t, s.Include("HELLO", helloHandler))
	assert.Equal(t, []string{"HELLO"}, s.Intents())

	// different handler for the same intent is an error
	other := func(ctx context.Context, req *intents.Request) (*responses.Response, error) {
		return responses.Tell("Other"), nil
	}
	err := s.Include("HELLO", other)
	assert.ErrorIs(t, err, ErrIntentRedefined)

	assert.Error(t, s.Include("", helloHandler))
	assert.Error(t, s.Include("BROKEN", nil))
}

func TestGetIntentFallback(t *testing.T) {
	s := testSkill(t)

	_, ok := s.GetIntent("UNKNOWN")
	assert.False(t, ok)

	require.NoError(t, s.Include(FallbackIntent, helloHandler))
	intent, ok := s.GetIntent("UNKNOWN")
	require.True(t, ok)
	assert.Equal(t, FallbackIntent, intent.Name)

	require.NoError(t, s.Include("HELLO", helloHandler))
	intent, ok = s.GetIntent("HELLO")
	require.True(t, ok)
	assert.Equal(t, "HELLO", intent.Name)
}

func TestTestIntent(t *testing.T) {
	s := testSkill(t)
	require.NoError(t, s.Include("HELLO", helloHandler))

	rsp, err := s.TestIntent("HELLO", map[string][]string{"name": {"Hans"}})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Hans", rsp.Text)

	_, err = s.TestIntent("UNKNOWN", nil)
	assert.ErrorIs(t, err, intents.ErrIntentNotFound)
}

func TestCheckSPIVersion(t *testing.T) {
	assert.NoError(t, checkSPIVersion(""))
	assert.NoError(t, checkSPIVersion("1.0"))
	assert.NoError(t, checkSPIVersion(SPIVersion))
	assert.ErrorIs(t, checkSPIVersion("2.0"), intents.ErrBadRequest)
	assert.ErrorIs(t, checkSPIVersion("not-a-version"), intents.ErrBadRequest)
}
