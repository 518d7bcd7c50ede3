package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// Translator resolves message templates by language and dot-separated key.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// Option configures a Translator instance.
type Option func(*Translator)

// WithDefaultLanguage sets the language used by Match when nothing else fits.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey determines whether T returns the key when a translation
// is not found. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger provides a logger for the translator.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging controls whether missing translations are
// logged. Default is false.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}

// WithNoLogging disables all logging.
func WithNoLogging() Option {
	return func(t *Translator) {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		t.missingLogMode = false
	}
}

// NewTranslator loads translations from adapter and returns a ready Translator.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// Reload fetches translations from the adapter again and swaps them in.
// On error the current translations are kept.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := validateTranslations(translations); err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()
	return nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, messages := range trans {
		if lang == "" {
			return errors.Join(ErrInvalidTranslations, errors.New("empty language code"))
		}
		if messages == nil {
			return errors.Join(ErrInvalidTranslations, fmt.Errorf("nil messages for language %q", lang))
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.translations))
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether lang has a string under key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs:
//
//	tr.T("en", "formcheck.min", "label", "Age", "min", "18")
//	// "Age must be at least 18"
//
// Missing translations yield the key (or "" with WithFallbackToKey(false)).
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td is like T but falls back to defaultValue instead of the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	return sprintf(defaultValue, args)
}

// lookup walks the nested map of lang along the dot-separated key.
// The caller must hold t.mu.
func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			break
		}
		if i == len(parts)-1 {
			if s, ok := val.(string); ok {
				return s, true
			}
			if t.missingLogMode {
				t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
			}
			return "", false
		}
		next, ok := asStringMap(val)
		if !ok {
			break
		}
		current = next
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	return "", false
}

// asStringMap accepts both map[string]any and the map[any]any some YAML
// decoders produce for nested mappings.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes %{name} placeholders using args as name, value pairs.
// An odd trailing arg is ignored and unknown placeholders are kept.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
