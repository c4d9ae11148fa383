package model

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/broady/srapi"
	"github.com/broady/srapi/ir"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NoValue marks an attribute that has no default, which makes it required.
// Passing NoValue as a constructor value is the same as omitting the key.
var NoValue = ir.NoValue

// Enum is implemented by enum constants; records flatten them to Primitive().
type Enum = ir.EnumValue

// Values maps attribute names to values.
type Values = map[string]any

// Attribute declares one field of a record type: its type, default and the
// constraints a value must meet. Attributes are read-only once the type is built;
// values live in each Record.
type Attribute struct {
	name     string
	desc     ir.TypeDescriptor
	def      any
	minLen   int
	maxLen   int
	oneOf    []string
	rng      *[2]float64
	coerce   func(any) (any, error)
	init     bool
	repr     bool
	wireName string
	metadata map[string]any

	// validator tags, derived at build
	minTag, maxTag, oneOfTag, rangeTag string
	err                                error
}

// AttrOption configures an Attribute.
type AttrOption func(*Attribute)

func newAttribute(name string, desc ir.TypeDescriptor, opts ...AttrOption) *Attribute {
	a := &Attribute{
		name:   name,
		desc:   desc,
		def:    NoValue,
		minLen: -1,
		maxLen: -1,
		init:   true,
		repr:   true,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.compile()
	return a
}

// Default sets the default value, which makes the attribute optional.
func Default(v any) AttrOption {
	return func(a *Attribute) { a.def = v }
}

// MinLen requires present values to have at least n elements (runes for strings).
func MinLen(n int) AttrOption {
	return func(a *Attribute) { a.minLen = n }
}

// MaxLen requires present values to have at most n elements (runes for strings).
func MaxLen(n int) AttrOption {
	return func(a *Attribute) { a.maxLen = n }
}

// OneOf requires the string form of present values to be one of values.
func OneOf(values ...any) AttrOption {
	return func(a *Attribute) {
		a.oneOf = make([]string, len(values))
		for i, v := range values {
			a.oneOf[i] = fmt.Sprint(ir.PrimitiveOf(v))
		}
	}
}

// Range requires present values to be numbers in [lo, hi].
func Range(lo, hi float64) AttrOption {
	return func(a *Attribute) { a.rng = &[2]float64{lo, hi} }
}

// Coerce converts every present value with fn before any check runs.
// See ToString, ToInt and ToFloat.
func Coerce(fn func(any) (any, error)) AttrOption {
	return func(a *Attribute) { a.coerce = fn }
}

// NoInit excludes the attribute from construction and serialization. It is set
// by post-construction hooks through SetInternal.
func NoInit() AttrOption {
	return func(a *Attribute) { a.init = false }
}

// NoRepr hides the attribute from Record.String.
func NoRepr() AttrOption {
	return func(a *Attribute) { a.repr = false }
}

// WireName sets the key used by ToDict and FromDict, "cxp" for "current_xp".
func WireName(s string) AttrOption {
	return func(a *Attribute) { a.wireName = s }
}

// Metadata attaches a free-form entry to the attribute.
func Metadata(key string, value any) AttrOption {
	return func(a *Attribute) {
		if a.metadata == nil {
			a.metadata = make(map[string]any)
		}
		a.metadata[key] = value
	}
}

// compile derives the validator tags for the declared constraints.
func (a *Attribute) compile() {
	if a.minLen >= 0 {
		a.minTag = "min=" + strconv.Itoa(a.minLen)
	}
	if a.maxLen >= 0 {
		a.maxTag = "max=" + strconv.Itoa(a.maxLen)
	}
	if a.minLen >= 0 && a.maxLen >= 0 && a.minLen > a.maxLen {
		a.err = srapi.Errorf(srapi.CodeConfiguration, "attribute %q: min length %d exceeds max length %d", a.name, a.minLen, a.maxLen)
	}
	if a.oneOf != nil {
		quoted := make([]string, len(a.oneOf))
		for i, s := range a.oneOf {
			if strings.Contains(s, "'") {
				a.err = srapi.Errorf(srapi.CodeConfiguration, "attribute %q: allowed value %q contains a quote", a.name, s)
			}
			s = strings.ReplaceAll(s, ",", "0x2C")
			s = strings.ReplaceAll(s, "|", "0x7C")
			quoted[i] = "'" + s + "'"
		}
		a.oneOfTag = "oneof=" + strings.Join(quoted, " ")
	}
	if a.rng != nil {
		lo, hi := a.rng[0], a.rng[1]
		if lo > hi {
			a.err = srapi.Errorf(srapi.CodeConfiguration, "attribute %q: range %g to %g is empty", a.name, lo, hi)
		}
		a.rangeTag = "gte=" + formatFloat(lo) + ",lte=" + formatFloat(hi)
	}
}

// Name returns the attribute name.
func (a *Attribute) Name() string { return a.name }

// Type returns the type descriptor values are checked against.
func (a *Attribute) Type() ir.TypeDescriptor { return a.desc }

// Default returns the default value, NoValue for required attributes.
func (a *Attribute) Default() any { return a.def }

// Required reports whether the attribute has no default.
func (a *Attribute) Required() bool { return a.def == NoValue }

// Init reports whether the attribute is accepted by the constructor.
func (a *Attribute) Init() bool { return a.init }

// Repr reports whether the attribute appears in Record.String.
func (a *Attribute) Repr() bool { return a.repr }

// WireName returns the serialized key, the attribute name unless renamed.
func (a *Attribute) WireName() string {
	if a.wireName != "" {
		return a.wireName
	}
	return a.name
}

// Metadata returns the metadata entry for key.
func (a *Attribute) Metadata(key string) (any, bool) {
	v, ok := a.metadata[key]
	return v, ok
}

// Validate runs the value pipeline and returns the value to store: coercion,
// then (for present values) min length, max length, allowed values and range.
// nil and NoValue skip the constraints.
func (a *Attribute) Validate(value any) (any, error) {
	if a.coerce != nil && value != nil && value != NoValue {
		v, err := a.coerce(value)
		if err != nil {
			if srapi.CodeOf(err) != "" {
				return nil, err
			}
			return nil, srapi.Errorf(srapi.CodeInvalidType, "cannot coerce %s: %v", a.quoted(), err).
				WithDetails(map[string]any{"attribute": a.name, "value": value})
		}
		value = v
	}
	if value == nil || value == NoValue {
		return value, nil
	}

	if a.minTag != "" || a.maxTag != "" {
		n, ok := length(value)
		if !ok {
			return nil, srapi.Errorf(srapi.CodeInvalidType, "%s must have a length to validate, got %s", a.quoted(), typeName(value)).
				WithDetails(map[string]any{"attribute": a.name, "constraint": "length"})
		}
		for _, tag := range []string{a.minTag, a.maxTag} {
			if tag == "" {
				continue
			}
			if err := validate.Var(value, tag); err != nil {
				return nil, a.constraintError(err, value, n)
			}
		}
	}

	if a.oneOfTag != "" {
		s := fmt.Sprint(ir.PrimitiveOf(value))
		if err := validate.Var(s, a.oneOfTag); err != nil {
			return nil, a.constraintError(err, value, 0)
		}
	}

	if a.rangeTag != "" {
		f, ok := number(value)
		if !ok {
			return nil, srapi.Errorf(srapi.CodeInvalidType, "%s must be a number to validate range, got %s", a.quoted(), typeName(value)).
				WithDetails(map[string]any{"attribute": a.name, "constraint": "range"})
		}
		if err := validate.Var(f, a.rangeTag); err != nil {
			return nil, a.constraintError(err, value, 0)
		}
	}
	return value, nil
}

// constraintError turns a failed validator tag into the attribute's message.
func (a *Attribute) constraintError(err error, value any, n int) error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) || len(valErrs) == 0 {
		return srapi.Errorf(srapi.CodeConfiguration, "attribute %q: %v", a.name, err)
	}
	ve := valErrs[0]
	var msg string
	switch ve.Tag() {
	case "min":
		msg = fmt.Sprintf("%s must be at least %d characters long, got %d", a.quoted(), a.minLen, n)
	case "max":
		msg = fmt.Sprintf("%s must be at most %d characters long, got %d", a.quoted(), a.maxLen, n)
	case "oneof":
		allowed := make([]string, len(a.oneOf))
		for i, s := range a.oneOf {
			allowed[i] = "'" + s + "'"
		}
		msg = fmt.Sprintf("%s must be one of %s, got %s", a.quoted(), strings.Join(allowed, ", "), repr(value))
	case "gte", "lte":
		msg = fmt.Sprintf("%s must be in the range %s to %s, got %s",
			a.quoted(), formatFloat(a.rng[0]), formatFloat(a.rng[1]), repr(value))
	default:
		msg = fmt.Sprintf("%s failed %s validation", a.quoted(), ve.Tag())
	}
	return srapi.NewError(srapi.CodeInvalidValue, msg).
		WithDetails(map[string]any{"attribute": a.name, "constraint": ve.Tag(), "value": value})
}

func (a *Attribute) quoted() string { return "'" + a.name + "'" }

func length(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// repr renders v for messages: strings single-quoted, everything else with %v.
func repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return "'" + v + "'"
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", v)
}
