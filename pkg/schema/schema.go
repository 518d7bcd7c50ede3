package schema

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcheck"
)

// Schema is a declarative list of field checkers.
type Schema struct {
	Fields []FieldSpec `yaml:"fields" json:"fields"`
}

// FieldSpec describes one checker.
type FieldSpec struct {
	Name     string     `yaml:"name" json:"name"`
	Label    string     `yaml:"label,omitempty" json:"label,omitempty"`
	Type     string     `yaml:"type" json:"type"`
	Multiple bool       `yaml:"multiple,omitempty" json:"multiple,omitempty"`
	Rules    []RuleSpec `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// Parse decodes a YAML or JSON schema and checks that it can be built.
// Unknown keys are rejected.
func Parse(data []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Schema
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSchema)
		}
		if errors.Is(err, ErrUnknownRule) {
			return nil, err
		}
		return nil, errors.Join(ErrInvalidSchema, err)
	}

	if _, err := s.Checkers(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the schema file at path.
func Load(ctx context.Context, path string) (*Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadSchema, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Checkers builds one checker per field, in declaration order.
func (s *Schema) Checkers() ([]*formcheck.Checker, error) {
	if len(s.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields declared", ErrInvalidSchema)
	}

	seen := make(map[string]bool, len(s.Fields))
	checkers := make([]*formcheck.Checker, 0, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field #%d has no name", ErrInvalidSchema, i+1)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = true

		typ, ok := formcheck.ParseType(f.Type)
		if !ok {
			return nil, fmt.Errorf("%w %q for field %q%s", ErrUnknownType, f.Type, f.Name, didYouMean(f.Type, formcheck.TypeNames()))
		}

		c := formcheck.NewChecker(f.Name, f.Label, typ)
		if f.Multiple {
			c.Multiple()
		}
		for _, rs := range f.Rules {
			r, err := rs.Rule()
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			c.Meet(r)
		}
		checkers = append(checkers, c)
	}
	return checkers, nil
}

// Build returns a Validator with every field of the schema registered.
func (s *Schema) Build(opts ...formcheck.Option) (*formcheck.Validator, error) {
	checkers, err := s.Checkers()
	if err != nil {
		return nil, err
	}
	v := formcheck.New(opts...)
	for _, c := range checkers {
		v.Register(c)
	}
	return v, nil
}

// FieldNames returns the declared field names in order.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// UnknownField is an input key that no field of the schema declares.
type UnknownField struct {
	Name       string `json:"name" yaml:"name"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// UnknownFields lists input keys the schema does not declare, sorted by
// name, each with the closest declared field name when one is plausible.
func (s *Schema) UnknownFields(input formcheck.RawInput) []UnknownField {
	declared := s.FieldNames()

	var unknown []UnknownField
	for name := range input {
		if slices.Contains(declared, name) {
			continue
		}
		unknown = append(unknown, UnknownField{Name: name, Suggestion: suggest(name, declared)})
	}
	slices.SortFunc(unknown, func(a, b UnknownField) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return unknown
}
