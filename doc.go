// Package formcheck validates untyped, multi-valued form input against a
// declarative set of field checkers, producing typed values or per-field
// error messages in one pass.
//
// Input is a map from field name to raw string values, the shape produced by
// decoding an HTML form or a URL query (url.Values can be passed directly).
// Building that map from a request is up to the caller.
//
// # Architecture
//
// A Checker binds a field name, a display label used in messages, a coercion
// Type and an ordered list of Rule values. A Validator owns the checkers,
// runs them in registration order and keeps the results of the last run.
//
//   - Type: closed set of coercions (string, int64, float64, bool, email, ...)
//   - Value: tagged union produced by a Type, read with tag-checked accessors
//   - Rule: Required, Max, Min, Format, OneOf, Func and CEL based Expr
//   - Renderer: turns translation keys into messages, see TranslatorRenderer
//
// A failed coercion stops the field: its rules never run. Otherwise every rule
// runs and every violation is reported. A missing field is an error only when
// the checker has the Required rule; otherwise it simply has no value.
//
// # Usage
//
//	v := formcheck.New()
//	v.Register(formcheck.NewChecker("name", "Name", formcheck.TypeString).
//		Meet(formcheck.Required(), formcheck.Max(5), formcheck.Min(2))).
//		Register(formcheck.NewChecker("age", "Age", formcheck.TypeInt64).
//			Meet(formcheck.Max(100), formcheck.Min(18)))
//
//	v.Validate(r.Form)
//	if !v.IsValid() {
//		for _, msg := range v.ErrorsFor("age") {
//			// show msg next to the input
//		}
//		return
//	}
//	name, _ := v.MustGet("name").AsString()
//
// # Error Handling
//
// Validator.Err returns ValidationErrors, which satisfies errors.Is with
// ErrValidationFailed and carries a translation key and values per failure.
// MustGet panics when a field has no value, as that is a programming error
// rather than bad input.
//
// # Localisation
//
// Messages use the English templates by default. Catalog returns the bundled
// English and Chinese catalogs for the i18n package:
//
//	tr, err := i18n.NewTranslator(ctx, formcheck.Catalog())
//	v := formcheck.New(formcheck.WithRenderer(formcheck.TranslatorRenderer(tr, "zh")))
package formcheck
