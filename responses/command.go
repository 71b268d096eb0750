package responses

import (
	"fmt"

	"github.com/telekom/voice-skill-sdk/internal/common/apperrors"
)

// KitType names the client kits available for cloud skills.
type KitType string

const (
	KitAudioPlayer KitType = "audio_player"
	KitCalendar    KitType = "calendar"
	KitSystem      KitType = "system"
	KitTimer       KitType = "timer"
)

// Kit is one client kit invocation.
type Kit struct {
	KitName    KitType        `json:"kit_name"`
	Action     string         `json:"action"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Command is a generic client command carried in the response result under
// the "use_kit" key.
type Command struct {
	UseKit Kit
}

func command(kit KitType, action string, params map[string]any) Command {
	if len(params) == 0 {
		params = nil
	}
	return Command{UseKit: Kit{KitName: kit, Action: action, Parameters: params}}
}

// AudioPlayer content types.
const (
	ContentTypeRadio     = "radio"
	ContentTypeVoicemail = "voicemail"
)

// AudioPlayerPlayStream starts playing a generic internet stream.
func AudioPlayerPlayStream(url string) Command {
	return command(KitAudioPlayer, "play_stream", map[string]any{"url": url})
}

// AudioPlayerPlayStreamBeforeText starts playing a stream before pronouncing
// the response text.
func AudioPlayerPlayStreamBeforeText(url string) Command {
	return command(KitAudioPlayer, "play_stream_before_text", map[string]any{"url": url})
}

// AudioPlayerStop stops the currently playing media, optionally saying text
// before stopping.
func AudioPlayerStop(contentType, text string) Command {
	if contentType == "" {
		contentType = ContentTypeRadio
	}
	return command(KitAudioPlayer, "stop", map[string]any{
		"content_type": contentType,
		"notify":       map[string]any{"not_playing": text},
	})
}

// AudioPlayerPause pauses playback, optionally saying text after pausing.
func AudioPlayerPause(contentType, text string) Command {
	if contentType == "" {
		contentType = ContentTypeRadio
	}
	return command(KitAudioPlayer, "pause", map[string]any{
		"content_type": contentType,
		"notify":       map[string]any{"not_playing": text},
	})
}

// AudioPlayerResume resumes paused media.
func AudioPlayerResume(contentType string) Command {
	if contentType == "" {
		contentType = ContentTypeRadio
	}
	return command(KitAudioPlayer, "resume", map[string]any{"content_type": contentType})
}

// CalendarSnoozeStart snoozes a calendar alarm by an optional number of
// seconds.
func CalendarSnoozeStart(snoozeSeconds int) Command {
	params := map[string]any{}
	if snoozeSeconds > 0 {
		params["snooze_seconds"] = snoozeSeconds
	}
	return command(KitCalendar, "snooze_start", params)
}

// CalendarSnoozeCancel cancels the current snooze.
func CalendarSnoozeCancel() Command {
	return command(KitCalendar, "snooze_cancel", nil)
}

// System skill types a stop event can be scoped to.
const (
	SkillTypeTimer        = "Timer"
	SkillTypeConversation = "Conversation"
	SkillTypeMedia        = "Media"
)

// SystemStop stops a foreground activity on the device. With a skill type
// it stops only the skill-related activity.
func SystemStop(skillType string) Command {
	params := map[string]any{}
	if skillType != "" {
		params["skill"] = skillType
	}
	return command(KitSystem, "stop", params)
}

// SystemPause pauses the currently active content.
func SystemPause() Command {
	return command(KitSystem, "pause", nil)
}

// SystemResume resumes paused media.
func SystemResume() Command {
	return command(KitSystem, "resume", nil)
}

// SystemNext switches to the next item in the content channel.
func SystemNext() Command {
	return command(KitSystem, "next", nil)
}

// SystemPrevious switches to the previous item in the content channel.
func SystemPrevious() Command {
	return command(KitSystem, "previous", nil)
}

// SystemSayAgain repeats the last uttered sentence.
func SystemSayAgain() Command {
	return command(KitSystem, "say_again", nil)
}

// SystemVolumeUp increases the volume one notch.
func SystemVolumeUp() Command {
	return command(KitSystem, "volume_up", nil)
}

// SystemVolumeDown decreases the volume one notch.
func SystemVolumeDown() Command {
	return command(KitSystem, "volume_down", nil)
}

// ErrVolumeOutOfRange is returned when a volume value is outside 0-10.
var ErrVolumeOutOfRange = apperrors.New("volume value out of range")

// SystemVolumeTo sets the volume to an absolute value between 0 and 10.
func SystemVolumeTo(value int) (Command, error) {
	if value < 0 || value > 10 {
		return Command{}, ErrVolumeOutOfRange.Msg(fmt.Sprintf("volume value %d is not in expected range (0 - 10)", value))
	}
	return command(KitSystem, "volume_to", map[string]any{"value": value}), nil
}

// TimerSetTimer fires up a timer animation on the device.
func TimerSetTimer() Command {
	return command(KitTimer, "set_timer", nil)
}

// TimerCancelTimer cancels a running timer animation.
func TimerCancelTimer() Command {
	return command(KitTimer, "cancel_timer", nil)
}
