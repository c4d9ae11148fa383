package model

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/broady/srapi/ir"
)

// Flatten converts a value to its wire form: enums to their primitive, nested
// records to their ToDict, sequences and mappings element-wise, and every other
// scalar to its string form. nil stays nil.
func Flatten(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case *Record:
		if v == nil {
			return nil
		}
		return v.ToDict()
	case Enum:
		return v.Primitive()
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case time.Duration:
		return v.String()
	case ir.TupleValue:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = Flatten(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	named := rv.Type().PkgPath() != ""
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if named {
			return rv.Int()
		}
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if named {
			return rv.Uint()
		}
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.String:
		// Named string types are enum-like; their primitive is the string.
		return rv.String()
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Flatten(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(ir.PrimitiveOf(iter.Key().Interface()))] = Flatten(iter.Value().Interface())
		}
		return out
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}
