package formcheck

import "strconv"

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt64
	KindFloat64
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value holds one successfully coerced field value.
// The zero Value is invalid and is never produced by a Type.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// StringValue, Int64Value, Float64Value and BoolValue build values of the
// matching kind.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }
func Int64Value(i int64) Value { return Value{kind: KindInt64, i: i} }
func Float64Value(f float64) Value { return Value{kind: KindFloat64, f: f} }
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports which accessor holds the value.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string held by v. ok is false for any other kind;
// numbers are never formatted implicitly.
func (v Value) AsString() (s string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsInt64 returns the integer held by v. ok is false for any other kind.
func (v Value) AsInt64() (i int64, ok bool) {
	if v.kind != KindInt64 {
		return 0, false
	}
	return v.i, true
}

// AsFloat64 returns the float held by v. ok is false for any other kind,
// including KindInt64.
func (v Value) AsFloat64() (f float64, ok bool) {
	if v.kind != KindFloat64 {
		return 0, false
	}
	return v.f, true
}

// AsBool returns the boolean held by v. ok is false for any other kind.
func (v Value) AsBool() (b bool, ok bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Interface returns the held value as a plain Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt64:
		return v.i
	case KindFloat64:
		return v.f
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String renders the value in its canonical text form.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}
