// Package responses holds the response model a skill returns to the dialog
// manager: spoken text with a response type, optional companion-app card,
// machine-readable result data, client commands and delayed tasks, push
// notifications and the session echo.
package responses

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/telekom/voice-skill-sdk/i18n"
	"github.com/telekom/voice-skill-sdk/sessions"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Type is the response type returned to the dialog manager.
type Type string

const (
	// TypeTell returns information and ends the dialog turn.
	TypeTell Type = "TELL"
	// TypeAsk prompts the user for a missing attribute.
	TypeAsk Type = "ASK"
	// TypeAskFreetext prompts the user for free text.
	TypeAskFreetext Type = "ASK_FREETEXT"
)

// Response carries a skill's answer back to the device.
type Response struct {
	Text             string
	Type             Type
	Card             *Card
	Result           Result
	PushNotification *PushNotification

	msg      *i18n.Message
	reprompt *repromptSpec
	session  map[string]string
}

type repromptSpec struct {
	stopText     string
	maxReprompts int
	entity       string
}

// Tell creates a terminal response with the given text.
func Tell(text string) *Response {
	return &Response{Text: text, Type: TypeTell, Result: NewResult()}
}

// Ask creates a response prompting the user for a missing attribute.
func Ask(text string) *Response {
	return &Response{Text: text, Type: TypeAsk, Result: NewResult()}
}

// AskFreetext creates a response prompting the user for free text.
func AskFreetext(text string) *Response {
	return &Response{Text: text, Type: TypeAskFreetext, Result: NewResult()}
}

// TellMessage creates a terminal response from a localized message. The
// message key and format arguments are exported into the result data.
func TellMessage(m i18n.Message) *Response {
	r := Tell(m.Value)
	r.msg = &m
	return r
}

// AskMessage creates a prompt response from a localized message.
func AskMessage(m i18n.Message) *Response {
	r := Ask(m.Value)
	r.msg = &m
	return r
}

// AskFreetextMessage creates a free-text prompt from a localized message.
func AskFreetextMessage(m i18n.Message) *Response {
	r := AskFreetext(m.Value)
	r.msg = &m
	return r
}

// Reprompt creates an ASK response bound to a session reprompt counter.
// When the counter exceeds maxReprompts (and maxReprompts is positive) the
// response degrades to a terminal TELL with the stop text and the counter is
// removed from the session. A non-positive maxReprompts reprompts forever.
func Reprompt(text, stopText string, maxReprompts int, entity ...string) *Response {
	r := Ask(text)
	spec := &repromptSpec{stopText: stopText, maxReprompts: maxReprompts}
	if len(entity) > 0 {
		spec.entity = entity[0]
	}
	r.reprompt = spec
	return r
}

// WithCard attaches a companion-app card to the response.
func (r *Response) WithCard(card *Card) *Response {
	r.Card = card
	return r
}

// WithCommand attaches a client kit command to the response result.
func (r *Response) WithCommand(cmd Command) *Response {
	r.Result.Data[useKitKey] = cmd.UseKit
	return r
}

// WithTask attaches a delayed client task to the response result.
func (r *Response) WithTask(task ClientTask) *Response {
	r.Result.DelayedClientTask = &task
	return r
}

// WithSession stores a session attribute that is written into the session
// when the response is rendered.
func (r *Response) WithSession(key, value string) *Response {
	if r.session == nil {
		r.session = map[string]string{}
	}
	r.session[key] = value
	return r
}

// WithNotification attaches a push notification. A response carries at most
// one notification; attaching a second one panics.
func (r *Response) WithNotification(n PushNotification) *Response {
	if r.PushNotification != nil {
		panic("response already carries a push notification")
	}
	r.PushNotification = &n
	return r
}

// PushNotification is delivered to the companion app alongside the response.
type PushNotification struct {
	TargetName     string `json:"targetName"`
	MessagePayload string `json:"messagePayload"`
}

// sessionEcho is the wire shape of the session echoed back to the dialog
// manager.
type sessionEcho struct {
	Attributes map[string]string `json:"attributes"`
}

// rendered is the wire shape of an invoke response.
type rendered struct {
	Type             Type              `json:"type"`
	Text             string            `json:"text"`
	Card             *Card             `json:"card,omitempty"`
	Result           *Result           `json:"result,omitempty"`
	PushNotification *PushNotification `json:"pushNotification,omitempty"`
	Session          *sessionEcho      `json:"session,omitempty"`
}

// Render finalizes the response for an intent: it applies reprompt counting,
// exports localized message metadata into the result, writes pending session
// attributes, clears the intent's reprompt counters on a terminal TELL and
// echoes the session. The returned value marshals into the invoke response
// wire format.
func (r *Response) Render(intentName string, session *sessions.Session) ([]byte, error) {
	text := r.Text
	typ := r.Type

	if r.reprompt != nil && session != nil {
		name := sessions.CounterName(intentName, r.reprompt.entity)
		count := session.GetCount(name) + 1
		if r.reprompt.maxReprompts > 0 && count > r.reprompt.maxReprompts {
			text = r.reprompt.stopText
			typ = TypeTell
			session.PopCount(name)
		} else {
			session.SetCount(name, count)
		}
	}

	result := r.Result
	if r.msg != nil {
		result.Data["key"] = r.msg.Key
		result.Data["value"] = r.msg.Value
		if len(r.msg.Args) > 0 {
			result.Data["args"] = r.msg.Args
		}
		if len(r.msg.KwArgs) > 0 {
			result.Data["kwargs"] = r.msg.KwArgs
		}
	}

	out := rendered{
		Type:             typ,
		Text:             text,
		Card:             r.Card,
		PushNotification: r.PushNotification,
	}
	if !result.IsEmpty() {
		out.Result = &result
	}

	if session != nil {
		for k, v := range r.session {
			session.Set(k, v)
		}
		if typ == TypeTell {
			session.ClearCounters(intentName)
		}
		if len(session.Attributes) > 0 {
			out.Session = &sessionEcho{Attributes: session.Attributes}
		}
	}
	return json.Marshal(out)
}
