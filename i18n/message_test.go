package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMessage(t *testing.T) {
	m := NewMessage("{a}=={b}", Map{"a": "1", "b": "1"})
	assert.Equal(t, "1==1", m.Value)
	assert.Equal(t, "{a}=={b}", m.Key)
	assert.Equal(t, Map{"a": "1", "b": "1"}, m.KwArgs)

	m = NewKeyedMessage("key", "{0}!={1}", "0", "1")
	assert.Equal(t, "0!=1", m.Value)
	assert.Equal(t, "key", m.Key)
	assert.Equal(t, []any{"0", "1"}, m.Args)
	assert.Empty(t, m.KwArgs)

	plain := "Chuck Norris can instantiate interfaces"
	m = NewMessage(plain)
	assert.Equal(t, plain, m.Value)
	assert.Equal(t, plain, m.Key)
}

func TestMessageFormat(t *testing.T) {
	m := NewKeyedMessage("key", "{a}=={b}").Format(Map{"a": "1", "b": "1"})
	assert.Equal(t, "1==1", m.Value)
	assert.Equal(t, "key", m.Key)

	m = NewKeyedMessage("key", "{0}!={1}").Format("0", "1")
	assert.Equal(t, "0!=1", m.Value)

	// anonymous placeholders consume positionals in order
	m = NewMessage("{} {} {}", "a", "b", "c")
	assert.Equal(t, "a b c", m.Value)

	// unresolved placeholders stay put
	m = NewMessage("{a} {1}", "x")
	assert.Equal(t, "{a} {1}", m.Value)
}

func TestMessageJoin(t *testing.T) {
	m1 := NewMessage("{a}=={b}", Map{"a": "1", "b": "1"})
	m2 := NewMessage("{c}=={d}", Map{"c": "2", "d": "2"})
	m3 := NewMessage("{e}=={f}", Map{"e": "3", "f": "3"})

	assert.Equal(t, "1==1", NewMessage(" ").Join(m1).Value)
	assert.Equal(t, "1==1 2==2", NewMessage(" ").Join(m1, m2).Value)
	assert.Equal(t, "1==1 2==2 3==3", NewMessage(" ").Join(m1, m2, m3).Value)
}

func TestMessageStrip(t *testing.T) {
	assert.Equal(t, "Message", NewMessage(" !Message?!,. ").Strip(" !?,.").Value)
	assert.Equal(t, "Message", NewMessage("  Message\n").Strip("").Value)
}
