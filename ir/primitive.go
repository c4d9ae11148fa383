package ir

import (
	"fmt"
	"reflect"
	"time"
)

// PrimitiveKind identifies the category of a primitive type.
type PrimitiveKind int

const (
	PrimitiveBool  PrimitiveKind = iota
	PrimitiveInt                 // Signed integer (see BitSize)
	PrimitiveUint                // Unsigned integer (see BitSize)
	PrimitiveFloat               // Floating point (see BitSize)
	PrimitiveString
	PrimitiveBytes    // []byte
	PrimitiveTime     // time.Time
	PrimitiveDuration // time.Duration
	PrimitiveAny      // any non-nil value; nil is accepted too
	PrimitiveNull     // only nil; useful as a union alternative
)

// String returns the string representation of the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveBool:
		return "Bool"
	case PrimitiveInt:
		return "Int"
	case PrimitiveUint:
		return "Uint"
	case PrimitiveFloat:
		return "Float"
	case PrimitiveString:
		return "String"
	case PrimitiveBytes:
		return "Bytes"
	case PrimitiveTime:
		return "Time"
	case PrimitiveDuration:
		return "Duration"
	case PrimitiveAny:
		return "Any"
	case PrimitiveNull:
		return "Null"
	default:
		return "Unknown"
	}
}

// PrimitiveDescriptor represents a built-in primitive type.
type PrimitiveDescriptor struct {
	exprBase
	PrimitiveKind PrimitiveKind

	// BitSize specifies the size for numeric types (PrimitiveInt, PrimitiveUint, PrimitiveFloat).
	// Valid values:
	// - 0: any size
	// - 8, 16, 32, 64: the value must fit in that many bits
	//
	// Ignored for non-numeric primitive kinds.
	BitSize int
}

// Kind returns KindPrimitive.
func (d *PrimitiveDescriptor) Kind() DescriptorKind { return KindPrimitive }

func (d *PrimitiveDescriptor) String() string {
	switch d.PrimitiveKind {
	case PrimitiveBool:
		return "bool"
	case PrimitiveInt:
		return sized("int", d.BitSize)
	case PrimitiveUint:
		return sized("uint", d.BitSize)
	case PrimitiveFloat:
		if d.BitSize == 0 {
			return "float"
		}
		return sized("float", d.BitSize)
	case PrimitiveString:
		return "string"
	case PrimitiveBytes:
		return "[]byte"
	case PrimitiveTime:
		return "time.Time"
	case PrimitiveDuration:
		return "time.Duration"
	case PrimitiveAny:
		return "any"
	case PrimitiveNull:
		return "nil"
	default:
		return "unknown"
	}
}

func sized(name string, bits int) string {
	if bits == 0 {
		return name
	}
	return fmt.Sprintf("%s%d", name, bits)
}

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

// matches reports whether the non-nil value v has this primitive shape.
func (d *PrimitiveDescriptor) matches(v any) bool {
	rv := reflect.ValueOf(v)
	switch d.PrimitiveKind {
	case PrimitiveBool:
		return rv.Kind() == reflect.Bool
	case PrimitiveInt:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return d.BitSize == 0 || fitsInt(rv.Int(), d.BitSize)
		}
		return false
	case PrimitiveUint:
		switch rv.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return d.BitSize == 0 || fitsUint(rv.Uint(), d.BitSize)
		}
		return false
	case PrimitiveFloat:
		switch rv.Kind() {
		case reflect.Float32:
			return true
		case reflect.Float64:
			return d.BitSize != 32 || !reflect.Zero(reflect.TypeFor[float32]()).OverflowFloat(rv.Float())
		}
		return false
	case PrimitiveString:
		return rv.Kind() == reflect.String
	case PrimitiveBytes:
		return rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8
	case PrimitiveTime:
		return rv.Type() == timeType
	case PrimitiveDuration:
		return rv.Type() == durationType
	case PrimitiveAny:
		return true
	case PrimitiveNull:
		return false
	}
	return false
}

func fitsInt(n int64, bits int) bool {
	if bits >= 64 {
		return true
	}
	limit := int64(1) << (bits - 1)
	return n >= -limit && n < limit
}

func fitsUint(n uint64, bits int) bool {
	if bits >= 64 {
		return true
	}
	return n < uint64(1)<<bits
}

// Convenience constructors for common primitives.

// Bool returns a PrimitiveDescriptor for bool.
func Bool() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveBool}
}

// String returns a PrimitiveDescriptor for string.
func String() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveString}
}

// Int returns a PrimitiveDescriptor for signed integers of the given bit size.
// Use 0 to accept any signed integer.
func Int(bitSize int) *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveInt, BitSize: bitSize}
}

// Uint returns a PrimitiveDescriptor for unsigned integers of the given bit size.
// Use 0 to accept any unsigned integer.
func Uint(bitSize int) *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveUint, BitSize: bitSize}
}

// Float returns a PrimitiveDescriptor for floating point values of the given bit size.
func Float(bitSize int) *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveFloat, BitSize: bitSize}
}

// Bytes returns a PrimitiveDescriptor for []byte.
func Bytes() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveBytes}
}

// Time returns a PrimitiveDescriptor for time.Time.
func Time() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveTime}
}

// Duration returns a PrimitiveDescriptor for time.Duration.
func Duration() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveDuration}
}

// Any returns a PrimitiveDescriptor that accepts every value.
func Any() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveAny}
}

// Null returns a PrimitiveDescriptor that accepts only nil.
func Null() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveNull}
}
