// Package i18n provides message catalogs with named placeholder substitution
// and language matching, used to localise validation messages.
//
// A Translator delegates storage to a TranslationAdapter. Ready-made adapters
// load from an in-memory map, a single file, a directory on disk or an embedded
// file system; files are decoded by a Parser (YAML via gopkg.in/yaml.v3, or
// JSON). The top-level keys of a file are language codes and messages are
// addressed with dot-separated keys:
//
//	en:
//	  formcheck:
//	    min: "%{label} must be at least %{min}"
//
// # Usage
//
//	adapter := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), "./locales")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//	lang := tr.Match("zh-CN, zh;q=0.9")
//	msg := tr.T(lang, "formcheck.min", "label", "年龄", "min", "18")
//
// # Error Handling
//
// Loading errors wrap the sentinel values in errors.go and can be checked
// with errors.Is. Translation lookups never fail: T falls back to the key and
// Td to an explicit default.
package i18n
