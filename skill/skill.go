// Package skill assembles a voice skill application: the intent registry,
// the HTTP routes the dialog manager calls, authentication and the server
// lifecycle.
package skill

import (
	"reflect"
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/telekom/voice-skill-sdk/config"
	"github.com/telekom/voice-skill-sdk/i18n"
	"github.com/telekom/voice-skill-sdk/intents"
	"github.com/telekom/voice-skill-sdk/internal/common/apperrors"
)

// Version is the SDK version reported by the info endpoint next to the
// skill version.
const Version = "1.0.0"

// SPIVersion is the skill provider interface version this SDK implements.
// Invoke requests carrying a different major version are rejected.
const SPIVersion = "1.4.1"

// FallbackIntent is invoked when the requested intent has no handler.
// Without it an unknown intent is answered with "intent not found".
const FallbackIntent = "FALLBACK_INTENT"

// ErrIntentRedefined is returned when an intent name is registered twice
// with different handlers.
var ErrIntentRedefined = apperrors.New("cannot redefine existing intent handler")

// Skill is a voice skill application: intent handlers plus the translation
// catalogs resolved per invoke locale.
type Skill struct {
	Router *chi.Mux

	mu           sync.RWMutex
	intents      map[string]intents.Intent
	translations i18n.Translations
}

// New creates a skill with translations loaded from the configured locale
// directory. A missing directory yields an empty catalog, every locale then
// resolves to the null translation.
func New() (*Skill, error) {
	translations, err := i18n.Load(config.Config().I18N.Dir)
	if err != nil {
		return nil, err
	}
	return &Skill{
		Router:       chi.NewRouter(),
		intents:      map[string]intents.Intent{},
		translations: translations,
	}, nil
}

// Include registers an intent handler. Registering the same handler twice
// is a no-op, redefining an intent with a different handler is an error.
func (s *Skill) Include(name string, handler intents.Handler) error {
	intent, err := intents.NewIntent(name, handler)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.intents[name]; ok {
		if sameHandler(existing, intent) {
			log.Debug().Str("intent", name).Msg("intent handler already registered")
			return nil
		}
		return ErrIntentRedefined.Msg(name)
	}
	s.intents[name] = intent
	log.Debug().Str("intent", name).Msg("intent handler registered")
	return nil
}

func sameHandler(a, b intents.Intent) bool {
	return reflect.ValueOf(a.Handler()).Pointer() == reflect.ValueOf(b.Handler()).Pointer()
}

// GetIntent resolves an intent by name, falling back to the handler
// registered under FallbackIntent.
func (s *Skill) GetIntent(name string) (intents.Intent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if intent, ok := s.intents[name]; ok {
		return intent, true
	}
	intent, ok := s.intents[FallbackIntent]
	return intent, ok
}

// Intents returns the registered intent names, sorted.
func (s *Skill) Intents() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.intents))
	for name := range s.intents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Skill) intentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.intents)
}
