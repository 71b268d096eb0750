package responses

import (
	"time"

	"github.com/telekom/voice-skill-sdk/internal/isoduration"
)

// ReferenceType anchors a relative execution time.
type ReferenceType string

const (
	// SpeechEnd executes the task after the response has been spoken.
	SpeechEnd ReferenceType = "SPEECH_END"
	// ThisResponse executes the task before speech starts.
	ThisResponse ReferenceType = "THIS_RESPONSE"
)

// ExecuteAfter is a relative execution time: a reference event plus an
// optional positive ISO-8601 offset.
type ExecuteAfter struct {
	Reference ReferenceType `json:"reference"`
	Offset    string        `json:"offset,omitempty"`
}

// ExecutionTime is either absolute (executeAt, ISO-8601 timestamp) or
// relative (executeAfter).
type ExecutionTime struct {
	ExecuteAfter *ExecuteAfter `json:"executeAfter,omitempty"`
	ExecuteAt    string        `json:"executeAt,omitempty"`
}

// InvokeData names the intent a delayed task invokes.
type InvokeData struct {
	Intent     string         `json:"intent"`
	SkillID    string         `json:"skillId,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// ClientTask is a delayed task the client executes upon receiving the
// response. The standard use case is invoking an intent after speech end.
type ClientTask struct {
	InvokeData    InvokeData    `json:"invokeData"`
	ExecutionTime ExecutionTime `json:"executionTime"`
}

// InvokeIntent creates a task that invokes an intent right after speech end.
// Parameters are converted into invoke attributes.
func InvokeIntent(intent string, parameters map[string]any) ClientTask {
	return ClientTask{
		InvokeData: InvokeData{Intent: intent, Parameters: parameters},
		ExecutionTime: ExecutionTime{
			ExecuteAfter: &ExecuteAfter{Reference: SpeechEnd, Offset: isoduration.Format(0)},
		},
	}
}

// WithSkillID targets the task at another skill.
func (t ClientTask) WithSkillID(skillID string) ClientTask {
	t.InvokeData.SkillID = skillID
	return t
}

// At schedules the task execution to an absolute point in time.
func (t ClientTask) At(at time.Time) ClientTask {
	t.ExecutionTime = ExecutionTime{ExecuteAt: at.Format(time.RFC3339)}
	return t
}

// After delays the task execution relative to a reference event.
func (t ClientTask) After(event ReferenceType, offset time.Duration) ClientTask {
	t.ExecutionTime = ExecutionTime{
		ExecuteAfter: &ExecuteAfter{Reference: event, Offset: isoduration.Format(offset)},
	}
	return t
}
