package i18n

import (
	"golang.org/x/text/language"
)

// MatchLanguage picks the supported language closest to preferred, which may
// be a single tag ("zh-CN") or an Accept-Language style list
// ("fr-CH, fr;q=0.9, en;q=0.8"). It returns defaultLang when nothing
// matches with at least high confidence.
func MatchLanguage(preferred string, supported []string, defaultLang string) string {
	if preferred == "" || len(supported) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, s)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	wanted, _, err := language.ParseAcceptLanguage(preferred)
	if err != nil || len(wanted) == 0 {
		return defaultLang
	}

	_, idx, conf := language.NewMatcher(tags).Match(wanted...)
	if conf < language.High {
		return defaultLang
	}
	return codes[idx]
}

// Match resolves preferred against the loaded languages of t, falling back
// to the translator's default language.
func (t *Translator) Match(preferred string) string {
	return MatchLanguage(preferred, t.SupportedLanguages(), t.defaultLang)
}
