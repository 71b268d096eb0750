package responses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telekom/voice-skill-sdk/i18n"
	"github.com/telekom/voice-skill-sdk/sessions"
)

func render(t *testing.T, r *Response, intent string, s *sessions.Session) string {
	t.Helper()
	out, err := r.Render(intent, s)
	require.NoError(t, err)
	return string(out)
}

func TestTell(t *testing.T) {
	out := render(t, Tell("Hello"), "HELLO__INTENT", &sessions.Session{})
	assert.JSONEq(t, `{"type":"TELL","text":"Hello"}`, out)
}

func TestAsk(t *testing.T) {
	out := render(t, Ask("Which city?"), "WEATHER__STATUS", &sessions.Session{})
	assert.JSONEq(t, `{"type":"ASK","text":"Which city?"}`, out)

	out = render(t, AskFreetext("Tell me more"), "WEATHER__STATUS", &sessions.Session{})
	assert.JSONEq(t, `{"type":"ASK_FREETEXT","text":"Tell me more"}`, out)
}

func TestTellMessage(t *testing.T) {
	m := i18n.NewKeyedMessage("HELLO", "Hallo {name}", i18n.Map{"name": "Welt"})
	out := render(t, TellMessage(m), "HELLO__INTENT", &sessions.Session{})
	assert.JSONEq(t, `{
		"type": "TELL",
		"text": "Hallo Welt",
		"result": {
			"data": {"key": "HELLO", "value": "Hallo Welt", "kwargs": {"name": "Welt"}},
			"local": true
		}
	}`, out)
}

func TestSessionEcho(t *testing.T) {
	s := &sessions.Session{}
	out := render(t, Ask("Which city?").WithSession("step", "city"), "WEATHER__STATUS", s)
	assert.JSONEq(t, `{
		"type": "ASK",
		"text": "Which city?",
		"session": {"attributes": {"step": "city"}}
	}`, out)
	assert.Equal(t, "city", s.GetOrDefault("step", ""))
}

func TestTellClearsCounters(t *testing.T) {
	s := &sessions.Session{}
	s.SetCount(sessions.CounterName("WEATHER__STATUS", ""), 2)
	s.Set("city", "Berlin")

	out := render(t, Tell("Sunny"), "WEATHER__STATUS", s)
	assert.JSONEq(t, `{
		"type": "TELL",
		"text": "Sunny",
		"session": {"attributes": {"city": "Berlin"}}
	}`, out)
	assert.Equal(t, 0, s.GetCount(sessions.CounterName("WEATHER__STATUS", "")))
}

func TestWithCard(t *testing.T) {
	card := &Card{TitleText: "Weather", Text: "Sunny, 25°"}
	card.WithAction("Call now", CardActionCall, map[string]string{"number": "+49301234567"})

	out := render(t, Tell("Sunny").WithCard(card), "WEATHER__STATUS", &sessions.Session{})
	assert.JSONEq(t, `{
		"type": "TELL",
		"text": "Sunny",
		"card": {
			"type": "GENERIC_DEFAULT",
			"version": 1,
			"data": {
				"titleText": "Weather",
				"text": "Sunny, 25°",
				"action": "internal://deeplink/call/+49301234567",
				"actionText": "Call now"
			}
		}
	}`, out)
}

func TestCardListSections(t *testing.T) {
	card := &Card{
		TitleText: "Shopping list",
		ListSections: []ListSection{
			{Title: "Groceries", Items: []ListItem{{Title: "Milk"}, {Title: "Eggs", IconURL: "http://example.com/egg.png"}}},
		},
	}
	out, err := json.Marshal(card)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "GENERIC_DEFAULT",
		"version": 1,
		"data": {
			"titleText": "Shopping list",
			"listSections": [
				{"title": "Groceries", "items": [{"title": "Milk"}, {"title": "Eggs", "iconUrl": "http://example.com/egg.png"}]}
			]
		}
	}`, string(out))
}

func TestWithCommand(t *testing.T) {
	cmd, err := SystemVolumeTo(5)
	require.NoError(t, err)

	out := render(t, Tell("Volume set").WithCommand(cmd), "VOLUME__SET", &sessions.Session{})
	assert.JSONEq(t, `{
		"type": "TELL",
		"text": "Volume set",
		"result": {
			"data": {"use_kit": {"kit_name": "system", "action": "volume_to", "parameters": {"value": 5}}},
			"local": true
		}
	}`, out)
}

func TestSystemVolumeToRange(t *testing.T) {
	for _, v := range []int{-1, 11} {
		_, err := SystemVolumeTo(v)
		assert.ErrorIs(t, err, ErrVolumeOutOfRange)
	}
	for _, v := range []int{0, 10} {
		_, err := SystemVolumeTo(v)
		assert.NoError(t, err)
	}
}

func TestKitCommands(t *testing.T) {
	cmd := AudioPlayerPlayStream("http://radio.example.com/stream")
	assert.Equal(t, KitAudioPlayer, cmd.UseKit.KitName)
	assert.Equal(t, "play_stream", cmd.UseKit.Action)
	assert.Equal(t, "http://radio.example.com/stream", cmd.UseKit.Parameters["url"])

	cmd = AudioPlayerStop("", "Nothing is playing")
	assert.Equal(t, ContentTypeRadio, cmd.UseKit.Parameters["content_type"])

	cmd = TimerSetTimer()
	assert.Equal(t, KitTimer, cmd.UseKit.KitName)
	assert.Nil(t, cmd.UseKit.Parameters)

	cmd = CalendarSnoozeStart(300)
	assert.Equal(t, 300, cmd.UseKit.Parameters["snooze_seconds"])

	cmd = SystemStop(SkillTypeTimer)
	assert.Equal(t, SkillTypeTimer, cmd.UseKit.Parameters["skill"])
}
