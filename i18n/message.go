// Package i18n provides the localization layer for skills: per-locale
// translation catalogs loaded from YAML or gettext PO files, and a Message
// type that retains its catalog key and format arguments so handlers can
// export them into response results.
package i18n

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Map holds named format arguments for a Message.
type Map map[string]any

// Message is a formatted, localized string. It keeps the catalog key, the
// final value and the arguments used to produce it.
type Message struct {
	Key    string
	Value  string
	Args   []any
	KwArgs Map

	template string
}

// NewMessage creates a message from a template. The key defaults to the
// template itself. Arguments of type Map become named arguments, everything
// else is positional.
func NewMessage(template string, args ...any) Message {
	return NewKeyedMessage(template, template, args...)
}

// NewKeyedMessage creates a message from a catalog key and a template.
func NewKeyedMessage(key, template string, args ...any) Message {
	pos, named := splitArgs(args)
	return Message{
		Key:      key,
		Value:    expand(template, pos, named),
		Args:     pos,
		KwArgs:   named,
		template: template,
	}
}

// String returns the formatted value.
func (m Message) String() string {
	return m.Value
}

// Format returns a new message formatted from the original template with the
// given arguments.
func (m Message) Format(args ...any) Message {
	return NewKeyedMessage(m.Key, m.template, args...)
}

// Join concatenates messages using the receiver's value as separator.
func (m Message) Join(msgs ...Message) Message {
	parts := make([]string, len(msgs))
	for i, msg := range msgs {
		parts[i] = msg.Value
	}
	out := m
	if len(msgs) > 0 {
		out.Key = msgs[0].Key
		out.template = msgs[0].template
	}
	out.Value = strings.Join(parts, m.Value)
	return out
}

// Strip returns a copy with all leading and trailing characters in cutset
// removed from the value. An empty cutset strips whitespace.
func (m Message) Strip(cutset string) Message {
	out := m
	if cutset == "" {
		out.Value = strings.TrimSpace(m.Value)
		return out
	}
	out.Value = strings.Trim(m.Value, cutset)
	return out
}

func splitArgs(args []any) ([]any, Map) {
	var pos []any
	named := Map{}
	for _, a := range args {
		if m, ok := a.(Map); ok {
			for k, v := range m {
				named[k] = v
			}
			continue
		}
		pos = append(pos, a)
	}
	return pos, named
}

var placeholder = regexp.MustCompile(`\{(\w*)\}`)

// expand substitutes {name}, {0} and {} placeholders in the template.
// Unresolvable placeholders are left as-is.
func expand(template string, pos []any, named Map) string {
	next := 0
	return placeholder.ReplaceAllStringFunc(template, func(ph string) string {
		name := ph[1 : len(ph)-1]
		if name == "" {
			if next < len(pos) {
				v := pos[next]
				next++
				return fmt.Sprint(v)
			}
			return ph
		}
		if i, err := strconv.Atoi(name); err == nil {
			if i >= 0 && i < len(pos) {
				return fmt.Sprint(pos[i])
			}
			return ph
		}
		if v, ok := named[name]; ok {
			return fmt.Sprint(v)
		}
		return ph
	})
}
