package formcheck

import (
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Type is a coercion strategy turning a raw string into a Value.
type Type uint8

const (
	// TypeString keeps the raw string verbatim.
	TypeString Type = iota + 1
	// TypeInt64 parses a base-10 signed 64-bit integer.
	TypeInt64
	// TypeFloat64 parses a finite decimal floating point number.
	TypeFloat64
	// TypeBool accepts true/false, 1/0, on/off and yes/no.
	TypeBool
	// TypeEmail accepts a bare RFC 5322 address.
	TypeEmail
	// TypePhone accepts an international phone number with optional leading plus.
	TypePhone
	// TypeChinaMobile accepts an 11-digit mainland China mobile number.
	TypeChinaMobile
	// TypeUUID accepts a hyphenated UUID and stores it in canonical lower case.
	TypeUUID
	// TypeURL accepts an absolute URL with scheme and host.
	TypeURL
)

var (
	phoneRegex       = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	chinaMobileRegex = regexp.MustCompile(`^1\d{10}$`)
)

var typeNames = map[Type]string{
	TypeString:      "string",
	TypeInt64:       "int64",
	TypeFloat64:     "float64",
	TypeBool:        "bool",
	TypeEmail:       "email",
	TypePhone:       "phone",
	TypeChinaMobile: "china_mobile",
	TypeUUID:        "uuid",
	TypeURL:         "url",
}

var typeAliases = map[string]Type{
	"str":     TypeString,
	"int":     TypeInt64,
	"i64":     TypeInt64,
	"integer": TypeInt64,
	"float":   TypeFloat64,
	"number":  TypeFloat64,
	"boolean": TypeBool,
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType resolves a type by its name or a common alias, case-insensitively.
func ParseType(name string) (Type, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	t, ok := typeAliases[name]
	return t, ok
}

// TypeNames returns the canonical names of all types, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(typeNames))
	for _, n := range typeNames {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Kind reports the kind of Value the type produces.
func (t Type) Kind() Kind {
	switch t {
	case TypeInt64:
		return KindInt64
	case TypeFloat64:
		return KindFloat64
	case TypeBool:
		return KindBool
	case TypeString, TypeEmail, TypePhone, TypeChinaMobile, TypeUUID, TypeURL:
		return KindString
	default:
		return 0
	}
}

// Coerce parses raw according to the type. It is pure: the same input always
// yields the same Value or the same error. Errors wrap ErrCoercion.
func (t Type) Coerce(raw string) (Value, error) {
	switch t {
	case TypeString:
		return StringValue(raw), nil

	case TypeInt64:
		// ParseInt tolerates a leading plus sign, form input must not.
		if strings.HasPrefix(raw, "+") {
			return Value{}, t.coercionError(raw)
		}
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, t.coercionError(raw)
		}
		return Int64Value(i), nil

	case TypeFloat64:
		if strings.HasPrefix(raw, "+") || strings.ContainsAny(raw, "_xX") {
			return Value{}, t.coercionError(raw)
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, t.coercionError(raw)
		}
		return Float64Value(f), nil

	case TypeBool:
		switch strings.ToLower(raw) {
		case "true", "1", "on", "yes":
			return BoolValue(true), nil
		case "false", "0", "off", "no":
			return BoolValue(false), nil
		}
		return Value{}, t.coercionError(raw)

	case TypeEmail:
		if !isEmail(raw) {
			return Value{}, t.coercionError(raw)
		}
		return StringValue(raw), nil

	case TypePhone:
		if !phoneRegex.MatchString(raw) {
			return Value{}, t.coercionError(raw)
		}
		return StringValue(raw), nil

	case TypeChinaMobile:
		if !chinaMobileRegex.MatchString(raw) {
			return Value{}, t.coercionError(raw)
		}
		return StringValue(raw), nil

	case TypeUUID:
		// uuid.Parse also accepts urn and braced forms, only the plain 36-char form is allowed here.
		if len(raw) != 36 {
			return Value{}, t.coercionError(raw)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return Value{}, t.coercionError(raw)
		}
		return StringValue(id.String()), nil

	case TypeURL:
		u, err := url.ParseRequestURI(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Value{}, t.coercionError(raw)
		}
		return StringValue(raw), nil

	default:
		return Value{}, fmt.Errorf("%w: unsupported type %s", ErrCoercion, t)
	}
}

func (t Type) coercionError(raw string) error {
	return fmt.Errorf("%w: %q is not a valid %s", ErrCoercion, raw, t)
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
