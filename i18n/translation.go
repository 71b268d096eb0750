package i18n

import (
	"math/rand"
	"strings"
)

// Translation is the message catalog of a single locale. A nil or empty
// catalog behaves as a null translation: every key echoes back unchanged.
type Translation struct {
	Locale  string
	catalog map[string][]string
}

// New creates a translation for a locale from a key to variants catalog.
func New(locale string, catalog map[string][]string) *Translation {
	return &Translation{Locale: locale, catalog: catalog}
}

// Null creates a translation without a catalog. Lookups echo the key.
func Null(locale string) *Translation {
	return &Translation{Locale: locale}
}

// GetText returns the message for a key. When the catalog holds multiple
// variants for the key, one is chosen at random. An unknown key is returned
// as its own message.
func (t *Translation) GetText(key string, args ...any) Message {
	variants, ok := t.catalog[key]
	if !ok || len(variants) == 0 {
		return NewKeyedMessage(key, key, args...)
	}
	v := variants[rand.Intn(len(variants))]
	return NewKeyedMessage(key, v, args...)
}

// NGetText returns the message for the singular key when n is 1, otherwise
// for the plural key.
func (t *Translation) NGetText(singular, plural string, n int, args ...any) Message {
	if n == 1 {
		return t.GetText(singular, args...)
	}
	return t.GetText(plural, args...)
}

// GetAllTexts returns all variants of a key as messages. An unknown key
// yields a single message echoing the key.
func (t *Translation) GetAllTexts(key string, args ...any) []Message {
	variants, ok := t.catalog[key]
	if !ok || len(variants) == 0 {
		return []Message{NewKeyedMessage(key, key, args...)}
	}
	msgs := make([]Message, len(variants))
	for i, v := range variants {
		msgs[i] = NewKeyedMessage(key, v, args...)
	}
	return msgs
}

// conjunctionKey is looked up in the catalog when joining lists. Locales
// without it fall back to "and".
const conjunctionKey = "AND"

func (t *Translation) conjunction() string {
	if variants, ok := t.catalog[conjunctionKey]; ok && len(variants) > 0 {
		return variants[0]
	}
	return "and"
}

// NLJoin joins items into a natural-language list: "a and b" for two items,
// "a, b, and c" beyond.
func (t *Translation) NLJoin(items []string) string {
	and := t.conjunction()
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + and + " " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", " + and + " " + items[len(items)-1]
	}
}

// NLBuild prefixes a natural-language list with a header:
// "Header: a and b".
func (t *Translation) NLBuild(header string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return header + ": " + t.NLJoin(items)
}
