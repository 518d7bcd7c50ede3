package formcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formcheck"
)

func TestValue_Accessors(t *testing.T) {
	t.Run("tag mismatch never converts", func(t *testing.T) {
		v := formcheck.Int64Value(20)

		_, ok := v.AsString()
		assert.False(t, ok)
		_, ok = v.AsFloat64()
		assert.False(t, ok)
		_, ok = v.AsBool()
		assert.False(t, ok)

		i, ok := v.AsInt64()
		assert.True(t, ok)
		assert.Equal(t, int64(20), i)
	})

	t.Run("string", func(t *testing.T) {
		s, ok := formcheck.StringValue("bob").AsString()
		assert.True(t, ok)
		assert.Equal(t, "bob", s)
		_, ok = formcheck.StringValue("20").AsInt64()
		assert.False(t, ok)
	})

	t.Run("float and bool", func(t *testing.T) {
		f, ok := formcheck.Float64Value(1.5).AsFloat64()
		assert.True(t, ok)
		assert.Equal(t, 1.5, f)

		b, ok := formcheck.BoolValue(true).AsBool()
		assert.True(t, ok)
		assert.True(t, b)
	})

	t.Run("zero value holds nothing", func(t *testing.T) {
		var v formcheck.Value
		assert.Equal(t, "invalid", v.Kind().String())
		assert.Nil(t, v.Interface())
		assert.Empty(t, v.String())
	})
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "bob", formcheck.StringValue("bob").String())
	assert.Equal(t, "-3", formcheck.Int64Value(-3).String())
	assert.Equal(t, "1.5", formcheck.Float64Value(1.5).String())
	assert.Equal(t, "1e+21", formcheck.Float64Value(1e21).String())
	assert.Equal(t, "false", formcheck.BoolValue(false).String())
}

func TestValue_Interface(t *testing.T) {
	assert.Equal(t, "x", formcheck.StringValue("x").Interface())
	assert.Equal(t, int64(1), formcheck.Int64Value(1).Interface())
	assert.Equal(t, 2.5, formcheck.Float64Value(2.5).Interface())
	assert.Equal(t, true, formcheck.BoolValue(true).Interface())
}
