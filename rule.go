package formcheck

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/cel-go/cel"
)

type ruleKind uint8

const (
	ruleRequired ruleKind = iota + 1
	ruleMax
	ruleMin
	ruleFormat
	ruleOneOf
	ruleFunc
	ruleExpr
)

// Rule is a constraint evaluated against a coerced Value.
// Rules are immutable and may be shared between checkers.
type Rule struct {
	kind    ruleKind
	n       int64
	pattern *regexp.Regexp
	values  []string
	fn      func(Value) bool
	prg     cel.Program
	source  string
	message string
}

// Violation is an unrendered rule failure. Template, when set, overrides the
// renderer's message for Key.
type Violation struct {
	Key      string
	Values   map[string]any
	Template string
}

// Required marks the field as mandatory. A missing field yields a single
// KindMissing error and no other rule runs.
func Required() Rule {
	return Rule{kind: ruleRequired}
}

// Max bounds numbers from above, or string length in characters. Inclusive.
func Max(n int64) Rule {
	return Rule{kind: ruleMax, n: n}
}

// Min bounds numbers from below, or string length in characters. Inclusive.
func Min(n int64) Rule {
	return Rule{kind: ruleMin, n: n}
}

// Format requires the value's text form to match pattern. The pattern is not
// anchored implicitly. Panics if pattern does not compile.
func Format(pattern string) Rule {
	return FormatRegexp(regexp.MustCompile(pattern))
}

// FormatRegexp is Format with an already compiled expression.
func FormatRegexp(re *regexp.Regexp) Rule {
	return Rule{kind: ruleFormat, pattern: re}
}

// OneOf requires the value's text form to equal one of values.
func OneOf(values ...string) Rule {
	return Rule{kind: ruleOneOf, values: slices.Clone(values)}
}

// Func requires fn to return true. message is a template that may reference
// %{label}; an empty message falls back to the generic format message.
func Func(fn func(Value) bool, message string) Rule {
	return Rule{kind: ruleFunc, fn: fn, message: message}
}

// WithMessage returns a copy of r that reports template instead of the
// rendered default message.
func (r Rule) WithMessage(template string) Rule {
	r.message = template
	return r
}

// IsRequired reports whether r is the Required rule.
func (r Rule) IsRequired() bool {
	return r.kind == ruleRequired
}

func (r Rule) String() string {
	switch r.kind {
	case ruleRequired:
		return "required"
	case ruleMax:
		return fmt.Sprintf("max(%d)", r.n)
	case ruleMin:
		return fmt.Sprintf("min(%d)", r.n)
	case ruleFormat:
		return fmt.Sprintf("format(%s)", r.pattern)
	case ruleOneOf:
		return fmt.Sprintf("one_of(%s)", strings.Join(r.values, ","))
	case ruleFunc:
		return "func"
	case ruleExpr:
		return fmt.Sprintf("expr(%s)", r.source)
	default:
		return "invalid"
	}
}

// Evaluate checks v against the rule and returns nil when it passes.
// Required always passes here: presence is decided before coercion.
func (r Rule) Evaluate(v Value) *Violation {
	switch r.kind {
	case ruleRequired:
		return nil

	case ruleMax:
		switch v.kind {
		case KindString:
			if int64(utf8.RuneCountInString(v.s)) > r.n {
				return r.violation(KeyMaxLength, "max", r.n)
			}
		case KindInt64:
			if v.i > r.n {
				return r.violation(KeyMax, "max", r.n)
			}
		case KindFloat64:
			if v.f > float64(r.n) {
				return r.violation(KeyMax, "max", r.n)
			}
		case KindBool:
		}
		return nil

	case ruleMin:
		switch v.kind {
		case KindString:
			if int64(utf8.RuneCountInString(v.s)) < r.n {
				return r.violation(KeyMinLength, "min", r.n)
			}
		case KindInt64:
			if v.i < r.n {
				return r.violation(KeyMin, "min", r.n)
			}
		case KindFloat64:
			if v.f < float64(r.n) {
				return r.violation(KeyMin, "min", r.n)
			}
		case KindBool:
		}
		return nil

	case ruleFormat:
		if !r.pattern.MatchString(v.String()) {
			return r.violation(KeyFormat, "pattern", r.pattern.String())
		}
		return nil

	case ruleOneOf:
		if !slices.Contains(r.values, v.String()) {
			return r.violation(KeyOneOf, "values", strings.Join(r.values, ", "))
		}
		return nil

	case ruleFunc:
		if r.fn != nil && !r.fn(v) {
			return r.violation(KeyFormat, "", nil)
		}
		return nil

	case ruleExpr:
		if !evalExpr(r.prg, v) {
			return r.violation(KeyFormat, "expr", r.source)
		}
		return nil

	default:
		return nil
	}
}

func (r Rule) violation(key, name string, value any) *Violation {
	values := map[string]any{}
	if name != "" {
		values[name] = value
	}
	return &Violation{Key: key, Values: values, Template: r.message}
}
