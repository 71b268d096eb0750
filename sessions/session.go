// Package sessions holds the per-conversation state the dialog manager
// round-trips with every invoke: a string key-value bag plus the session ID
// and the flag marking a freshly started session. Handlers mutate the bag;
// the response serializer echoes it back.
package sessions

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Session is the conversation state of one invoke.
type Session struct {
	ID         string
	New        bool
	Attributes map[string]string
}

// sessionWire mirrors the wire shape. The dialog manager has been observed
// sending the session ID as a JSON number, so it is decoded leniently.
type sessionWire struct {
	ID         jsoniter.RawMessage `json:"id"`
	New        bool                `json:"new"`
	Attributes map[string]string   `json:"attributes"`
}

// UnmarshalJSON decodes a session, accepting the ID as string or number.
func (s *Session) UnmarshalJSON(data []byte) error {
	var w sessionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	var id string
	if len(w.ID) > 0 {
		if err := json.Unmarshal(w.ID, &id); err != nil {
			// not a string, take the raw token
			id = strings.Trim(string(w.ID), `"`)
		}
	}
	s.ID = id
	s.New = w.New
	s.Attributes = w.Attributes
	if s.Attributes == nil {
		s.Attributes = map[string]string{}
	}
	return nil
}

// MarshalJSON encodes the session in its wire shape.
func (s Session) MarshalJSON() ([]byte, error) {
	type out struct {
		ID         string            `json:"id,omitempty"`
		New        bool              `json:"new"`
		Attributes map[string]string `json:"attributes,omitempty"`
	}
	return json.Marshal(out{ID: s.ID, New: s.New, Attributes: s.Attributes})
}

// Get returns the value stored under key and whether it exists.
func (s *Session) Get(key string) (string, bool) {
	v, ok := s.Attributes[key]
	return v, ok
}

// GetOrDefault returns the value stored under key, or def when absent.
func (s *Session) GetOrDefault(key, def string) string {
	if v, ok := s.Attributes[key]; ok {
		return v
	}
	return def
}

// Set stores a value under key.
func (s *Session) Set(key, value string) {
	if s.Attributes == nil {
		s.Attributes = map[string]string{}
	}
	s.Attributes[key] = value
}

// Delete removes a key from the session.
func (s *Session) Delete(key string) {
	delete(s.Attributes, key)
}

// repromptSuffix terminates every reprompt counter attribute.
const repromptSuffix = "_reprompt_count"

// CounterName builds the session attribute name of a reprompt counter:
// {INTENT}_reprompt_count, or {INTENT}_{entity}_reprompt_count when the
// reprompt is bound to an entity.
func CounterName(intent, entity string) string {
	if entity != "" {
		return intent + "_" + entity + repromptSuffix
	}
	return intent + repromptSuffix
}

// GetCount returns the value of a reprompt counter. Counters are stored as
// strings; a missing or unparsable value counts as zero.
func (s *Session) GetCount(name string) int {
	v, ok := s.Attributes[name]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// SetCount stores a reprompt counter as a string attribute.
func (s *Session) SetCount(name string, n int) {
	s.Set(name, strconv.Itoa(n))
}

// PopCount removes a reprompt counter and returns its last value.
func (s *Session) PopCount(name string) int {
	n := s.GetCount(name)
	delete(s.Attributes, name)
	return n
}

// ClearCounters removes every reprompt counter belonging to an intent.
// Counters of intents that merely share a name prefix are left alone.
func (s *Session) ClearCounters(intent string) {
	for k := range s.Attributes {
		if k == intent+repromptSuffix ||
			(strings.HasPrefix(k, intent+"_") && strings.HasSuffix(k, repromptSuffix)) {
			delete(s.Attributes, k)
		}
	}
}
