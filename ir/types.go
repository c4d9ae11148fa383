// Package ir defines type descriptors: a closed set of value shapes (primitive,
// concrete Go type, optional, literal set, enum, union, sequence, mapping, tuple,
// and a deferred reference), a checker that validates runtime values against them,
// and a decoder that turns wire values back into checked shapes.
package ir

import "reflect"

// TupleValue is the runtime form of a tuple. Sequences and tuples are distinct:
// a TupleValue never satisfies an ArrayDescriptor.
type TupleValue []any

// EnumValue is implemented by enum constants that know their wire form.
type EnumValue interface {
	Primitive() any
}

var tupleType = reflect.TypeFor[TupleValue]()

// PrimitiveOf returns the underlying primitive of v: EnumValue.Primitive when
// implemented, otherwise v converted to its basic kind (string, int64, uint64,
// float64 or bool). Other values are returned unchanged.
func PrimitiveOf(v any) any {
	if e, ok := v.(EnumValue); ok {
		return e.Primitive()
	}
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().PkgPath() == "" {
		return v
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		return rv.Bool()
	}
	return v
}

// IsTagged reports whether d is a literal set or an enum, the alternatives a
// union tries by exact membership before any structural check.
func IsTagged(d TypeDescriptor) bool {
	switch d.(type) {
	case *LiteralDescriptor, *EnumDescriptor:
		return true
	}
	return false
}

type absent struct{}

func (absent) String() string { return "NoValue" }

// NoValue marks a value that was never supplied. It is distinct from nil, which
// is a supplied "no value".
var NoValue any = absent{}
