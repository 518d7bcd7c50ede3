package schema

import (
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcheck"
)

// Rule keys accepted in a schema. Every rule entry holds exactly one
// constraint key and an optional message.
const (
	keyRequired = "required"
	keyMin      = "min"
	keyMax      = "max"
	keyFormat   = "format"
	keyOneOf    = "one_of"
	keyExpr     = "expr"
	keyMessage  = "message"
)

// RuleKeys lists the constraint keys understood by the schema format.
func RuleKeys() []string {
	return []string{keyRequired, keyMin, keyMax, keyFormat, keyOneOf, keyExpr}
}

// RuleSpec is one entry of a field's rules list, e.g.
//
//	- min: 18
//	- format: '^\d+$'
//	  message: "%{label} must contain digits only"
//
// The bare scalar "required" is accepted as shorthand for {required: true}.
type RuleSpec struct {
	Required bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Min      *int64   `yaml:"min,omitempty" json:"min,omitempty"`
	Max      *int64   `yaml:"max,omitempty" json:"max,omitempty"`
	Format   string   `yaml:"format,omitempty" json:"format,omitempty"`
	OneOf    []string `yaml:"one_of,omitempty" json:"one_of,omitempty"`
	Expr     string   `yaml:"expr,omitempty" json:"expr,omitempty"`
	Message  string   `yaml:"message,omitempty" json:"message,omitempty"`

	key string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (rs *RuleSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value != keyRequired {
			return fmt.Errorf("%w %q at line %d%s", ErrUnknownRule, node.Value, node.Line, didYouMean(node.Value, RuleKeys()))
		}
		*rs = RuleSpec{Required: true, key: keyRequired}
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("%w: rule at line %d must be a mapping", ErrInvalidSchema, node.Line)
	}

	var out RuleSpec
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]

		var err error
		switch k.Value {
		case keyRequired:
			err = v.Decode(&out.Required)
		case keyMin:
			out.Min = new(int64)
			err = v.Decode(out.Min)
		case keyMax:
			out.Max = new(int64)
			err = v.Decode(out.Max)
		case keyFormat:
			err = v.Decode(&out.Format)
		case keyOneOf:
			err = v.Decode(&out.OneOf)
		case keyExpr:
			err = v.Decode(&out.Expr)
		case keyMessage:
			err = v.Decode(&out.Message)
			if err != nil {
				return fmt.Errorf("%w: line %d: %v", ErrInvalidSchema, v.Line, err)
			}
			continue
		default:
			candidates := append(RuleKeys(), keyMessage)
			return fmt.Errorf("%w %q at line %d%s", ErrUnknownRule, k.Value, k.Line, didYouMean(k.Value, candidates))
		}
		if err != nil {
			return fmt.Errorf("%w: rule %q at line %d: %v", ErrInvalidSchema, k.Value, v.Line, err)
		}
		if out.key != "" {
			return fmt.Errorf("%w: line %d holds both %q and %q, use one rule per entry", ErrInvalidSchema, k.Line, out.key, k.Value)
		}
		out.key = k.Value
	}

	if out.key == "" {
		return fmt.Errorf("%w: rule at line %d has no constraint", ErrInvalidSchema, node.Line)
	}
	*rs = out
	return nil
}

// Rule builds the formcheck rule described by rs.
func (rs RuleSpec) Rule() (formcheck.Rule, error) {
	var (
		r   formcheck.Rule
		err error
	)

	switch rs.constraint() {
	case keyRequired:
		if !rs.Required {
			return formcheck.Rule{}, fmt.Errorf("%w: required must be true", ErrInvalidSchema)
		}
		r = formcheck.Required()
	case keyMin:
		r = formcheck.Min(*rs.Min)
	case keyMax:
		r = formcheck.Max(*rs.Max)
	case keyFormat:
		re, cerr := compilePattern(rs.Format)
		if cerr != nil {
			return formcheck.Rule{}, cerr
		}
		r = formcheck.FormatRegexp(re)
	case keyOneOf:
		if len(rs.OneOf) == 0 {
			return formcheck.Rule{}, fmt.Errorf("%w: one_of needs at least one value", ErrInvalidSchema)
		}
		r = formcheck.OneOf(rs.OneOf...)
	case keyExpr:
		r, err = formcheck.Expr(rs.Expr)
		if err != nil {
			return formcheck.Rule{}, err
		}
	default:
		return formcheck.Rule{}, fmt.Errorf("%w: rule has no constraint", ErrInvalidSchema)
	}

	if rs.Message != "" {
		r = r.WithMessage(rs.Message)
	}
	return r, nil
}

// constraint returns the key set on rs. Specs built in Go rather than
// decoded are inspected field by field.
func (rs RuleSpec) constraint() string {
	switch {
	case rs.key != "":
		return rs.key
	case rs.Required:
		return keyRequired
	case rs.Min != nil:
		return keyMin
	case rs.Max != nil:
		return keyMax
	case rs.Format != "":
		return keyFormat
	case rs.OneOf != nil:
		return keyOneOf
	case rs.Expr != "":
		return keyExpr
	default:
		return ""
	}
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: format %q", ErrInvalidSchema, pattern), err)
	}
	return re, nil
}
