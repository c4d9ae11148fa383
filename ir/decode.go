package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Decode converts a wire value (typically a string from a query string, or a
// JSON-decoded value) into the shape d describes. Values that cannot be converted
// are returned unchanged, leaving Check to report them; only unresolvable
// references and decode hook failures return an error.
func Decode(d TypeDescriptor, raw any) (any, error) {
	d, err := Resolve(d)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	switch d := d.(type) {
	case *PrimitiveDescriptor:
		return decodePrimitive(d, raw), nil

	case *NamedDescriptor:
		if d.matches(raw) {
			return raw, nil
		}
		if d.DecodeFunc != nil {
			return d.DecodeFunc(raw)
		}
		return convertBasic(raw, d.Type), nil

	case *OptionalDescriptor:
		return Decode(d.Element, raw)

	case *LiteralDescriptor:
		if d.Contains(raw) {
			return raw, nil
		}
		want := fmt.Sprint(raw)
		for _, lit := range d.Values {
			if fmt.Sprint(lit) == want {
				return lit, nil
			}
		}
		return raw, nil

	case *EnumDescriptor:
		if v, ok := d.Lookup(raw); ok {
			return v, nil
		}
		return raw, nil

	case *UnionDescriptor:
		return decodeUnion(d, raw)

	case *ArrayDescriptor:
		rv := reflect.ValueOf(raw)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return raw, nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			v, err := Decode(d.Element, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case *MapDescriptor:
		rv := reflect.ValueOf(raw)
		if rv.Kind() != reflect.Map {
			return raw, nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			v, err := Decode(d.Value, iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(iter.Key().Interface())] = v
		}
		return out, nil

	case *TupleDescriptor:
		rv := reflect.ValueOf(raw)
		if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() != len(d.Elements) {
			return raw, nil
		}
		out := make(TupleValue, rv.Len())
		for i, elem := range d.Elements {
			v, err := Decode(elem, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	return raw, nil
}

// decodeUnion returns the first decoding that checks, trying tagged
// alternatives before structural ones like Check does.
func decodeUnion(d *UnionDescriptor, raw any) (any, error) {
	if check(d, raw, "") == nil {
		return raw, nil
	}
	ordered := make([]TypeDescriptor, 0, len(d.Types))
	var structural []TypeDescriptor
	for _, alt := range d.Types {
		alt, err := Resolve(alt)
		if err != nil {
			return nil, err
		}
		if IsTagged(alt) {
			ordered = append(ordered, alt)
		} else {
			structural = append(structural, alt)
		}
	}
	for _, alt := range append(ordered, structural...) {
		v, err := Decode(alt, raw)
		if err != nil {
			return nil, err
		}
		if check(alt, v, "") == nil {
			return v, nil
		}
	}
	return raw, nil
}

func decodePrimitive(d *PrimitiveDescriptor, raw any) any {
	if d.matches(raw) {
		return raw
	}
	switch d.PrimitiveKind {
	case PrimitiveInt:
		switch v := raw.(type) {
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, bits(d.BitSize)); err == nil {
				return intOf(n, d.BitSize)
			}
		case json.Number:
			if n, err := v.Int64(); err == nil {
				return intOf(n, d.BitSize)
			}
		case float64:
			if v == math.Trunc(v) && v >= math.MinInt64 && v <= math.MaxInt64 {
				return intOf(int64(v), d.BitSize)
			}
		}
	case PrimitiveUint:
		switch v := raw.(type) {
		case string:
			if n, err := strconv.ParseUint(strings.TrimSpace(v), 10, bits(d.BitSize)); err == nil {
				return uintOf(n, d.BitSize)
			}
		case float64:
			if v == math.Trunc(v) && v >= 0 && v <= math.MaxUint32 {
				return uintOf(uint64(v), d.BitSize)
			}
		}
	case PrimitiveFloat:
		switch v := raw.(type) {
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), bits(d.BitSize)); err == nil {
				return floatOf(f, d.BitSize)
			}
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return floatOf(f, d.BitSize)
			}
		case int:
			return floatOf(float64(v), d.BitSize)
		case int64:
			return floatOf(float64(v), d.BitSize)
		}
	case PrimitiveBool:
		if s, ok := raw.(string); ok {
			if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
				return b
			}
		}
	case PrimitiveString:
		if s, ok := PrimitiveOf(raw).(string); ok {
			return s
		}
	case PrimitiveBytes:
		if s, ok := raw.(string); ok {
			return []byte(s)
		}
	case PrimitiveTime:
		if s, ok := raw.(string); ok {
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				return t
			}
		}
	case PrimitiveDuration:
		if s, ok := raw.(string); ok {
			if dur, err := time.ParseDuration(s); err == nil {
				return dur
			}
		}
	}
	return raw
}

func bits(size int) int {
	if size == 0 {
		return 64
	}
	return size
}

// intOf returns n as the Go type the descriptor's size names: int for unsized
// descriptors, so decoded values compare equal to Go int literals. Values out
// of range stay int64 for Check to reject.
func intOf(n int64, size int) any {
	if size != 0 && !fitsInt(n, size) {
		return n
	}
	switch size {
	case 0:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
	case 8:
		return int8(n)
	case 16:
		return int16(n)
	case 32:
		return int32(n)
	}
	return n
}

func uintOf(n uint64, size int) any {
	if size != 0 && !fitsUint(n, size) {
		return n
	}
	switch size {
	case 0:
		return uint(n)
	case 8:
		return uint8(n)
	case 16:
		return uint16(n)
	case 32:
		return uint32(n)
	}
	return n
}

func floatOf(f float64, size int) any {
	if size == 32 {
		return float32(f)
	}
	return f
}

// convertBasic converts raw to t when both share a basic kind, e.g. a wire
// string into a named string type.
func convertBasic(raw any, t reflect.Type) any {
	if t == nil {
		return raw
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() == t.Kind() && rv.Type().ConvertibleTo(t) && t.Kind() != reflect.Struct {
		return rv.Convert(t).Interface()
	}
	return raw
}
