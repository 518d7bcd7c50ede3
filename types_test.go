package formcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck"
)

func TestType_Coerce(t *testing.T) {
	tests := []struct {
		name    string
		typ     formcheck.Type
		raw     string
		want    formcheck.Value
		wantErr bool
	}{
		{name: "string verbatim", typ: formcheck.TypeString, raw: " a b ", want: formcheck.StringValue(" a b ")},

		{name: "int", typ: formcheck.TypeInt64, raw: "42", want: formcheck.Int64Value(42)},
		{name: "negative int", typ: formcheck.TypeInt64, raw: "-7", want: formcheck.Int64Value(-7)},
		{name: "int max", typ: formcheck.TypeInt64, raw: "9223372036854775807", want: formcheck.Int64Value(9223372036854775807)},
		{name: "int overflow", typ: formcheck.TypeInt64, raw: "9223372036854775808", wantErr: true},
		{name: "int plus sign", typ: formcheck.TypeInt64, raw: "+1", wantErr: true},
		{name: "int decimal", typ: formcheck.TypeInt64, raw: "1.5", wantErr: true},
		{name: "int spaces", typ: formcheck.TypeInt64, raw: " 1", wantErr: true},
		{name: "int word", typ: formcheck.TypeInt64, raw: "abc", wantErr: true},

		{name: "float", typ: formcheck.TypeFloat64, raw: "1.25", want: formcheck.Float64Value(1.25)},
		{name: "float exponent", typ: formcheck.TypeFloat64, raw: "1e3", want: formcheck.Float64Value(1000)},
		{name: "float integer text", typ: formcheck.TypeFloat64, raw: "3", want: formcheck.Float64Value(3)},
		{name: "float nan", typ: formcheck.TypeFloat64, raw: "NaN", wantErr: true},
		{name: "float inf", typ: formcheck.TypeFloat64, raw: "Inf", wantErr: true},
		{name: "float hex", typ: formcheck.TypeFloat64, raw: "0x1p-2", wantErr: true},
		{name: "float underscore", typ: formcheck.TypeFloat64, raw: "1_000.5", wantErr: true},
		{name: "float plus sign", typ: formcheck.TypeFloat64, raw: "+1.5", wantErr: true},

		{name: "bool true", typ: formcheck.TypeBool, raw: "true", want: formcheck.BoolValue(true)},
		{name: "bool on", typ: formcheck.TypeBool, raw: "on", want: formcheck.BoolValue(true)},
		{name: "bool yes upper", typ: formcheck.TypeBool, raw: "YES", want: formcheck.BoolValue(true)},
		{name: "bool zero", typ: formcheck.TypeBool, raw: "0", want: formcheck.BoolValue(false)},
		{name: "bool off", typ: formcheck.TypeBool, raw: "off", want: formcheck.BoolValue(false)},
		{name: "bool other", typ: formcheck.TypeBool, raw: "maybe", wantErr: true},

		{name: "email", typ: formcheck.TypeEmail, raw: "bob@example.com", want: formcheck.StringValue("bob@example.com")},
		{name: "email with name", typ: formcheck.TypeEmail, raw: "Bob <bob@example.com>", wantErr: true},
		{name: "email without domain dot", typ: formcheck.TypeEmail, raw: "bob@localhost", wantErr: true},
		{name: "email without at", typ: formcheck.TypeEmail, raw: "bob.example.com", wantErr: true},

		{name: "phone", typ: formcheck.TypePhone, raw: "+14155550123", want: formcheck.StringValue("+14155550123")},
		{name: "phone leading zero", typ: formcheck.TypePhone, raw: "0123456", wantErr: true},
		{name: "phone letters", typ: formcheck.TypePhone, raw: "+1415abc", wantErr: true},

		{name: "china mobile", typ: formcheck.TypeChinaMobile, raw: "13800138000", want: formcheck.StringValue("13800138000")},
		{name: "china mobile short", typ: formcheck.TypeChinaMobile, raw: "1380013800", wantErr: true},
		{name: "china mobile prefix", typ: formcheck.TypeChinaMobile, raw: "23800138000", wantErr: true},

		{name: "uuid canonical", typ: formcheck.TypeUUID, raw: "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", want: formcheck.StringValue("6ba7b810-9dad-11d1-80b4-00c04fd430c8")},
		{name: "uuid urn form", typ: formcheck.TypeUUID, raw: "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8", wantErr: true},
		{name: "uuid garbage", typ: formcheck.TypeUUID, raw: "6ba7b810-9dad-11d1-80b4-00c04fd430cz", wantErr: true},

		{name: "url", typ: formcheck.TypeURL, raw: "https://example.com/a?b=c", want: formcheck.StringValue("https://example.com/a?b=c")},
		{name: "url relative", typ: formcheck.TypeURL, raw: "/a/b", wantErr: true},
		{name: "url without host", typ: formcheck.TypeURL, raw: "mailto:bob@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.typ.Coerce(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, formcheck.ErrCoercion)
				assert.Equal(t, formcheck.Value{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.typ.Kind(), got.Kind())
		})
	}
}

func TestType_CoerceIsDeterministic(t *testing.T) {
	for _, raw := range []string{"12", "x", "1.5"} {
		a, errA := formcheck.TypeInt64.Coerce(raw)
		b, errB := formcheck.TypeInt64.Coerce(raw)
		assert.Equal(t, a, b)
		assert.Equal(t, errA, errB)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		name string
		want formcheck.Type
		ok   bool
	}{
		{"string", formcheck.TypeString, true},
		{"STR", formcheck.TypeString, true},
		{"int", formcheck.TypeInt64, true},
		{" integer ", formcheck.TypeInt64, true},
		{"number", formcheck.TypeFloat64, true},
		{"boolean", formcheck.TypeBool, true},
		{"china_mobile", formcheck.TypeChinaMobile, true},
		{"uuid", formcheck.TypeUUID, true},
		{"decimal", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := formcheck.ParseType(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeNames(t *testing.T) {
	names := formcheck.TypeNames()
	assert.Equal(t, []string{"bool", "china_mobile", "email", "float64", "int64", "phone", "string", "url", "uuid"}, names)

	for _, n := range names {
		typ, ok := formcheck.ParseType(n)
		require.True(t, ok, n)
		assert.Equal(t, n, typ.String())
	}
}
