// Package intents defines the invoke request model the dialog manager sends
// to a skill and the dispatch machinery that calls intent handlers. The
// in-process Request combines the wire payload with the resolved translation
// and the mutable session.
package intents

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/telekom/voice-skill-sdk/i18n"
	"github.com/telekom/voice-skill-sdk/sessions"
)

var validate = validator.New()

// InvokeRequest is the wire payload of POST {api_base}.
type InvokeRequest struct {
	Context    Context          `json:"context" validate:"required"`
	Session    sessions.Session `json:"session"`
	SPIVersion string           `json:"spiVersion,omitempty"`
}

// Validate checks the request for structural validity.
func (r *InvokeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return ErrBadRequest.Msg(err.Error())
	}
	if err := sessions.ValidateAttributes(r.Session.Attributes); err != nil {
		return ErrBadRequest.Err(err)
	}
	return nil
}

// Context is the invoke context: the recognized intent with its attributes
// and everything known about the caller.
type Context struct {
	Intent            string                   `json:"intent" validate:"required"`
	Locale            string                   `json:"locale"`
	Tokens            map[string]string        `json:"tokens,omitempty"`
	Attributes        map[string][]string      `json:"attributes,omitempty"`
	AttributesV2      map[string][]AttributeV2 `json:"attributesV2,omitempty"`
	Configuration     map[string]any           `json:"configuration,omitempty"`
	SkillID           string                   `json:"skillId,omitempty"`
	ClientTypeName    string                   `json:"clientTypeName,omitempty"`
	UserProfileConfig string                   `json:"userProfileConfig,omitempty"`
}

// AttributeV2 is a recognized entity with its relations to other entities.
type AttributeV2 struct {
	ID           int            `json:"id"`
	Value        string         `json:"value"`
	NestedIn     []int          `json:"nestedIn,omitempty"`
	OverlapsWith []int          `json:"overlapsWith,omitempty"`
	Extras       map[string]any `json:"extras,omitempty"`
}

// Request is the in-process view of one invoke: the wire context plus the
// resolved translation and the mutable session handlers work with.
type Request struct {
	Context

	Session *sessions.Session
	T       *i18n.Translation

	pushMessages []pushMessage
}

type pushMessage struct {
	targetName string
	payload    string
}

// NewRequest builds the in-process request from a validated wire payload.
// When the legacy attributes map is absent it is derived from attributesV2.
func NewRequest(ir *InvokeRequest, t *i18n.Translation) *Request {
	ctx := ir.Context
	if ctx.Attributes == nil && ctx.AttributesV2 != nil {
		ctx.Attributes = make(map[string][]string, len(ctx.AttributesV2))
		for name, items := range ctx.AttributesV2 {
			values := make([]string, len(items))
			for i, item := range items {
				values[i] = item.Value
			}
			ctx.Attributes[name] = values
		}
	}
	if t == nil {
		t = i18n.Null(ctx.Locale)
	}
	session := ir.Session
	if session.Attributes == nil {
		session.Attributes = map[string]string{}
		session.New = true
	}
	return &Request{Context: ctx, Session: &session, T: t}
}

// Attr returns the first value of a named attribute, or the empty string.
func (r *Request) Attr(name string) string {
	return r.AttrOr(name, "")
}

// AttrOr returns the first value of a named attribute, or def when absent.
func (r *Request) AttrOr(name, def string) string {
	if values := r.Attributes[name]; len(values) > 0 {
		return values[0]
	}
	return def
}

// Attrs returns all values of a named attribute.
func (r *Request) Attrs(name string) []string {
	return r.Attributes[name]
}

// AttrV2 returns the first V2 attribute with the given name.
func (r *Request) AttrV2(name string) (AttributeV2, bool) {
	if items := r.AttributesV2[name]; len(items) > 0 {
		return items[0], true
	}
	return AttributeV2{}, false
}

// AttrsV2 returns all V2 attributes with the given name.
func (r *Request) AttrsV2(name string) []AttributeV2 {
	return r.AttributesV2[name]
}

// Token returns a named access token from the invoke context.
func (r *Request) Token(name string) (string, bool) {
	v, ok := r.Tokens[name]
	return v, ok
}

// DecodeConfiguration decodes the skill configuration object from the
// invoke context into the caller's struct.
func (r *Request) DecodeConfiguration(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  v,
		TagName: "json",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(r.Configuration); err != nil {
		return ErrBadRequest.Msg("invalid configuration: " + err.Error())
	}
	return nil
}

// Location returns the device timezone from the "timezone" attribute,
// falling back to UTC when it is absent or unknown.
func (r *Request) Location() *time.Location {
	tz := r.Attr("timezone")
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Now returns the current time in the device timezone.
func (r *Request) Now() time.Time {
	return time.Now().In(r.Location())
}

// Today returns the current date, midnight, in the device timezone.
func (r *Request) Today() time.Time {
	now := r.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// AddPushMessage queues a push notification for delivery with the response.
// A response carries at most one notification; queuing more than one fails
// the invoke.
func (r *Request) AddPushMessage(targetName, payload string) {
	r.pushMessages = append(r.pushMessages, pushMessage{targetName: targetName, payload: payload})
}
