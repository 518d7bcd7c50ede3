package schema_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck"
	"github.com/dmitrymomot/formcheck/pkg/schema"
)

const ageSchema = `
fields:
  - name: age
    label: Age
    type: int64
    rules:
      - required
      - min: 18
      - max: 100
  - name: code
    type: string
    rules:
      - format: '^\d+$'
        message: "%{label} must contain digits only"
  - name: plan
    type: str
    rules:
      - one_of: [free, pro]
  - name: even
    type: int
    rules:
      - expr: 'value % 2 == 0'
        message: "%{label} must be even"
  - name: tags
    type: string
    multiple: true
    rules:
      - {max: 3}
`

func TestParse(t *testing.T) {
	t.Run("builds checkers in order", func(t *testing.T) {
		s, err := schema.Parse([]byte(ageSchema))
		require.NoError(t, err)
		assert.Equal(t, []string{"age", "code", "plan", "even", "tags"}, s.FieldNames())

		checkers, err := s.Checkers()
		require.NoError(t, err)
		require.Len(t, checkers, 5)
		assert.Equal(t, "Age", checkers[0].Label())
		assert.True(t, checkers[0].IsRequired())
		assert.Len(t, checkers[0].Rules(), 3)
		assert.Equal(t, "Code", checkers[1].Label())
		assert.Equal(t, formcheck.TypeString, checkers[2].Type())
		assert.Equal(t, formcheck.TypeInt64, checkers[3].Type())
		assert.True(t, checkers[4].IsMultiple())
	})

	t.Run("accepts json", func(t *testing.T) {
		s, err := schema.Parse([]byte(`{"fields":[{"name":"age","type":"int64","rules":[{"min":18}]}]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"age"}, s.FieldNames())
	})

	tests := []struct {
		name    string
		doc     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty document",
			doc:     "",
			wantErr: schema.ErrInvalidSchema,
		},
		{
			name:    "no fields",
			doc:     "fields: []\n",
			wantErr: schema.ErrInvalidSchema,
		},
		{
			name:    "unknown top level key",
			doc:     "fields:\n  - name: a\n    type: string\n    lable: A\n",
			wantErr: schema.ErrInvalidSchema,
		},
		{
			name:    "unknown type with suggestion",
			doc:     "fields:\n  - name: a\n    type: strng\n",
			wantErr: schema.ErrUnknownType,
			wantMsg: `did you mean "string"?`,
		},
		{
			name:    "unknown rule with suggestion",
			doc:     "fields:\n  - name: a\n    type: string\n    rules:\n      - maxx: 3\n",
			wantErr: schema.ErrUnknownRule,
			wantMsg: `did you mean "max"?`,
		},
		{
			name:    "two constraints in one entry",
			doc:     "fields:\n  - name: a\n    type: string\n    rules:\n      - {min: 1, max: 3}\n",
			wantErr: schema.ErrInvalidSchema,
		},
		{
			name:    "duplicate field",
			doc:     "fields:\n  - {name: a, type: string}\n  - {name: a, type: int64}\n",
			wantErr: schema.ErrDuplicateField,
		},
		{
			name:    "field without name",
			doc:     "fields:\n  - {type: string}\n",
			wantErr: schema.ErrInvalidSchema,
		},
		{
			name:    "bad pattern",
			doc:     "fields:\n  - name: a\n    type: string\n    rules:\n      - format: '(['\n",
			wantErr: schema.ErrInvalidSchema,
		},
		{
			name:    "bad expression",
			doc:     "fields:\n  - name: a\n    type: string\n    rules:\n      - expr: 'value +'\n",
			wantErr: formcheck.ErrInvalidExpr,
		},
		{
			name:    "empty one_of",
			doc:     "fields:\n  - name: a\n    type: string\n    rules:\n      - one_of: []\n",
			wantErr: schema.ErrInvalidSchema,
		},
		{
			name:    "non integer bound",
			doc:     "fields:\n  - name: a\n    type: string\n    rules:\n      - min: many\n",
			wantErr: schema.ErrInvalidSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := schema.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestSchema_Build(t *testing.T) {
	s, err := schema.Parse([]byte(ageSchema))
	require.NoError(t, err)

	v, err := s.Build()
	require.NoError(t, err)

	t.Run("valid input", func(t *testing.T) {
		v.Validate(formcheck.RawInput{
			"age":  {"20"},
			"code": {"0042"},
			"plan": {"pro"},
			"even": {"4"},
			"tags": {"a", "bc"},
		})
		require.True(t, v.IsValid(), v.Errors().Error())
		age, ok := v.MustGet("age").AsInt64()
		assert.True(t, ok)
		assert.Equal(t, int64(20), age)
		assert.Len(t, v.GetAll("tags"), 2)
	})

	t.Run("custom messages and defaults", func(t *testing.T) {
		v.Validate(formcheck.RawInput{
			"age":  {"17"},
			"code": {"x1"},
			"plan": {"gold"},
			"even": {"3"},
			"tags": {"long"},
		})
		assert.False(t, v.IsValid())
		assert.Equal(t, []string{"Age must be at least 18"}, v.ErrorsFor("age"))
		assert.Equal(t, []string{"Code must contain digits only"}, v.ErrorsFor("code"))
		assert.Equal(t, []string{"Plan must be one of: free, pro"}, v.ErrorsFor("plan"))
		assert.Equal(t, []string{"Even must be even"}, v.ErrorsFor("even"))
		assert.Equal(t, []string{"Tags must be at most 3 characters long"}, v.ErrorsFor("tags"))
	})

	t.Run("missing required", func(t *testing.T) {
		v.Validate(formcheck.RawInput{})
		assert.Equal(t, []string{"age"}, v.Errors().Fields())
		assert.Equal(t, []string{"Age is required"}, v.ErrorsFor("age"))
	})
}

func TestSchema_UnknownFields(t *testing.T) {
	s, err := schema.Parse([]byte(ageSchema))
	require.NoError(t, err)

	got := s.UnknownFields(formcheck.RawInput{
		"age":    {"20"},
		"cdoe":   {"1"},
		"zzzzzz": {"1"},
		"plans":  {"pro"},
	})
	assert.Equal(t, []schema.UnknownField{
		{Name: "cdoe", Suggestion: "code"},
		{Name: "plans", Suggestion: "plan"},
		{Name: "zzzzzz"},
	}, got)

	assert.Empty(t, s.UnknownFields(formcheck.RawInput{"age": {"1"}}))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ageSchema), 0o600))

	t.Run("reads file", func(t *testing.T) {
		s, err := schema.Load(context.Background(), path)
		require.NoError(t, err)
		assert.Len(t, s.Fields, 5)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := schema.Load(context.Background(), filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, schema.ErrReadSchema)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := schema.Load(ctx, path)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRuleSpec_Rule(t *testing.T) {
	n := int64(2)

	t.Run("rule built in code", func(t *testing.T) {
		r, err := schema.RuleSpec{Min: &n, Message: "too short"}.Rule()
		require.NoError(t, err)
		viol := r.Evaluate(formcheck.StringValue("a"))
		require.NotNil(t, viol)
		assert.Equal(t, "too short", viol.Template)
	})

	t.Run("empty rule", func(t *testing.T) {
		_, err := schema.RuleSpec{}.Rule()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
	})
}
