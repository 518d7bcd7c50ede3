package formcheck

import (
	"embed"
	"fmt"
	"regexp"

	"github.com/dmitrymomot/formcheck/pkg/i18n"
)

// Translation keys attached to every ValidationError.
const (
	KeyRequired  = "formcheck.required"
	KeyType      = "formcheck.type"
	KeyFormat    = "formcheck.format"
	KeyMax       = "formcheck.max"
	KeyMin       = "formcheck.min"
	KeyMaxLength = "formcheck.max_length"
	KeyMinLength = "formcheck.min_length"
	KeyOneOf     = "formcheck.one_of"
)

var defaultTemplates = map[string]string{
	KeyRequired:  "%{label} is required",
	KeyType:      "%{label} must be a valid %{type}",
	KeyFormat:    "%{label} has an invalid format",
	KeyMax:       "%{label} must be at most %{max}",
	KeyMin:       "%{label} must be at least %{min}",
	KeyMaxLength: "%{label} must be at most %{max} characters long",
	KeyMinLength: "%{label} must be at least %{min} characters long",
	KeyOneOf:     "%{label} must be one of: %{values}",
}

//go:embed locales/*.yaml
var localesFS embed.FS

// Catalog returns the bundled message catalog (English and Simplified Chinese)
// ready to be loaded by i18n.NewTranslator.
func Catalog() i18n.TranslationAdapter {
	return i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), localesFS, "locales")
}

// Renderer turns a translation key and its values into a display message.
type Renderer interface {
	Render(key string, values map[string]any) string
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(key string, values map[string]any) string

func (f RendererFunc) Render(key string, values map[string]any) string {
	return f(key, values)
}

// DefaultRenderer renders messages with the built-in English templates.
// Unknown keys are rendered as the key itself.
func DefaultRenderer() Renderer {
	return RendererFunc(func(key string, values map[string]any) string {
		tmpl, ok := defaultTemplates[key]
		if !ok {
			tmpl = key
		}
		return Interpolate(tmpl, values)
	})
}

// TranslatorRenderer renders messages through an i18n translator for lang,
// falling back to the English templates for keys the catalog lacks.
func TranslatorRenderer(t *i18n.Translator, lang string) Renderer {
	if t == nil {
		return DefaultRenderer()
	}
	return RendererFunc(func(key string, values map[string]any) string {
		args := make([]string, 0, len(values)*2)
		for k, v := range values {
			args = append(args, k, fmt.Sprint(v))
		}
		def, ok := defaultTemplates[key]
		if !ok {
			def = key
		}
		return t.Td(lang, key, def, args...)
	})
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Interpolate replaces %{name} placeholders in tmpl with values.
// Placeholders without a value are kept as is.
func Interpolate(tmpl string, values map[string]any) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := values[match[2:len(match)-1]]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
