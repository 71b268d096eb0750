package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/telekom/voice-skill-sdk/internal/common/apperrors"
)

// ErrInvalidCatalog is returned when a catalog file cannot be parsed.
var ErrInvalidCatalog = apperrors.New("invalid translation catalog")

// Translations maps locale tags to their translation catalogs.
type Translations map[string]*Translation

// Load reads all {locale}.yaml and {locale}.po catalogs from a directory.
// A missing directory yields an empty set: the skill then runs untranslated.
func Load(dir string) (Translations, error) {
	tr := Translations{}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return tr, nil
	}
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		locale := strings.TrimSuffix(name, ext)
		path := filepath.Join(dir, name)

		var catalog map[string][]string
		switch ext {
		case ".yaml", ".yml":
			catalog, err = loadYAML(path)
		case ".po":
			catalog, err = loadPO(path)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		tr[locale] = New(locale, catalog)
	}
	return tr, nil
}

// loadYAML parses a YAML catalog mapping keys to a string or a list of
// variant strings.
func loadYAML(path string) (map[string][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, ErrInvalidCatalog.Msg(fmt.Sprintf("%s: %v", path, err))
	}
	catalog := make(map[string][]string, len(doc))
	for key, v := range doc {
		switch val := v.(type) {
		case string:
			catalog[key] = []string{val}
		case []any:
			variants := make([]string, 0, len(val))
			for _, item := range val {
				s, ok := item.(string)
				if !ok {
					return nil, ErrInvalidCatalog.Msg(fmt.Sprintf("%s: key %q has a non-string variant", path, key))
				}
				variants = append(variants, s)
			}
			catalog[key] = variants
		default:
			return nil, ErrInvalidCatalog.Msg(fmt.Sprintf("%s: key %q has unsupported value", path, key))
		}
	}
	return catalog, nil
}

// Locales returns the sorted list of loaded locales.
func (tr Translations) Locales() []string {
	locales := make([]string, 0, len(tr))
	for l := range tr {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}

// ForLocale returns the best matching translation for a locale tag like
// "de" or "de-DE". When nothing matches, a null translation echoing the
// keys is returned.
func (tr Translations) ForLocale(locale string) *Translation {
	if t, ok := tr[locale]; ok {
		return t
	}

	tags := make([]language.Tag, 0, len(tr))
	tagged := make([]string, 0, len(tr))
	for _, l := range tr.Locales() {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		tagged = append(tagged, l)
	}
	if len(tags) > 0 {
		matcher := language.NewMatcher(tags)
		if wanted, err := language.Parse(locale); err == nil {
			_, index, conf := matcher.Match(wanted)
			if conf > language.No {
				return tr[tagged[index]]
			}
		}
	}
	return Null(locale)
}
