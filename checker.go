package formcheck

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Checker binds a field name, its display label, a coercion Type and an
// ordered list of rules.
type Checker struct {
	field       string
	label       string
	typ         Type
	rules       []Rule
	required    bool
	requiredMsg string
	multiple    bool
}

// NewChecker creates a checker for field. label is used in messages; when
// empty it is derived from the field name ("first_name" becomes "First Name").
func NewChecker(field, label string, typ Type) *Checker {
	if label == "" {
		label = labelFromField(field)
	}
	return &Checker{field: field, label: label, typ: typ}
}

// Meet appends rules, keeping registration order.
func (c *Checker) Meet(rules ...Rule) *Checker {
	for _, r := range rules {
		if r.IsRequired() {
			c.required = true
			c.requiredMsg = r.message
		}
		c.rules = append(c.rules, r)
	}
	return c
}

// Multiple makes the checker validate every non-empty entry of the field
// instead of the first one only.
func (c *Checker) Multiple() *Checker {
	c.multiple = true
	return c
}

func (c *Checker) Field() string { return c.field }
func (c *Checker) Label() string { return c.label }
func (c *Checker) Type() Type { return c.typ }
func (c *Checker) Rules() []Rule { return slices.Clone(c.rules) }
func (c *Checker) IsRequired() bool { return c.required }
func (c *Checker) IsMultiple() bool { return c.multiple }

// Run checks the raw entries of the field. A nil or empty raw slice means the
// field is absent. It returns the coerced values on success; on failure the
// values are nil and errs holds every problem found, rendered with r (nil
// selects DefaultRenderer).
func (c *Checker) Run(raw []string, r Renderer) (values []Value, errs ValidationErrors) {
	values, errs, _ = c.run(raw, r)
	return values, errs
}

func (c *Checker) run(raw []string, r Renderer) ([]Value, ValidationErrors, Outcome) {
	if r == nil {
		r = DefaultRenderer()
	}

	entries := c.entries(raw)
	if len(entries) == 0 {
		if c.required {
			return nil, ValidationErrors{c.fail(r, KindMissing, &Violation{Key: KeyRequired, Template: c.requiredMsg})}, OutcomeMissing
		}
		return nil, nil, OutcomeAbsent
	}

	values := make([]Value, 0, len(entries))
	for _, s := range entries {
		v, err := c.typ.Coerce(s)
		if err != nil {
			viol := &Violation{Key: KeyType, Values: map[string]any{"type": c.typ.String()}}
			return nil, ValidationErrors{c.fail(r, KindCoercion, viol)}, OutcomeCoercion
		}
		values = append(values, v)
	}

	// A rule failing on several entries of a multiple field is reported once
	// per distinct message. Different rules are always reported separately.
	type ruleMessage struct {
		rule int
		msg  string
	}
	var errs ValidationErrors
	seen := make(map[ruleMessage]bool)
	for _, v := range values {
		for i, rule := range c.rules {
			viol := rule.Evaluate(v)
			if viol == nil {
				continue
			}
			fe := c.fail(r, KindRule, viol)
			k := ruleMessage{rule: i, msg: fe.Message}
			if seen[k] {
				continue
			}
			seen[k] = true
			errs = append(errs, fe)
		}
	}
	if len(errs) > 0 {
		return nil, errs, OutcomeRule
	}

	return values, nil, OutcomeValid
}

// entries returns the raw strings to coerce. A single-valued field is missing
// when its first entry is empty; a multiple field skips empty entries.
func (c *Checker) entries(raw []string) []string {
	if !c.multiple {
		if len(raw) == 0 || raw[0] == "" {
			return nil
		}
		return raw[:1]
	}

	var out []string
	for _, s := range raw {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (c *Checker) fail(r Renderer, kind ErrorKind, viol *Violation) ValidationError {
	values := make(map[string]any, len(viol.Values)+2)
	for k, v := range viol.Values {
		values[k] = v
	}
	values["label"] = c.label
	values["field"] = c.field

	msg := ""
	if viol.Template != "" {
		msg = Interpolate(viol.Template, values)
	} else {
		msg = r.Render(viol.Key, values)
	}

	return ValidationError{
		Field:             c.field,
		Label:             c.label,
		Kind:              kind,
		Message:           msg,
		TranslationKey:    viol.Key,
		TranslationValues: values,
	}
}

func labelFromField(field string) string {
	words := strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(field)
	return cases.Title(language.English).String(strings.Join(strings.Fields(words), " "))
}
