package model

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/broady/srapi/ir"
)

// ToString coerces any value to its string form. Enums become their primitive.
func ToString(v any) (any, error) {
	if e, ok := v.(Enum); ok {
		return fmt.Sprint(e.Primitive()), nil
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}
	return fmt.Sprint(ir.PrimitiveOf(v)), nil
}

// ToInt coerces numbers, bools and numeric strings to int.
func ToInt(v any) (any, error) {
	v = ir.PrimitiveOf(v)
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > math.MaxInt {
			return nil, fmt.Errorf("%d overflows int", rv.Uint())
		}
		return int(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%v is not a finite number", f)
		}
		return int(f), nil
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		n, err := strconv.Atoi(strings.TrimSpace(rv.String()))
		if err != nil {
			return nil, fmt.Errorf("invalid literal for int: %q", rv.String())
		}
		return n, nil
	}
	return nil, fmt.Errorf("%T cannot be converted to int", v)
}

// ToFloat coerces numbers and numeric strings to float64.
func ToFloat(v any) (any, error) {
	v = ir.PrimitiveOf(v)
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return nil, fmt.Errorf("could not convert string to float: %q", rv.String())
		}
		return f, nil
	}
	return nil, fmt.Errorf("%T cannot be converted to float", v)
}
