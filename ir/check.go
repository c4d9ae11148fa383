package ir

import (
	"fmt"
	"reflect"

	"github.com/broady/srapi"
	"github.com/broady/srapi/internal/humanize"
)

// Check validates value against d. It returns nil on success, a CodeTypeMismatch
// *srapi.Error describing the expected and actual shapes on failure, and a
// CodeConfiguration error when a reference inside d cannot be resolved.
//
// Mapping keys are not checked; only mapping values are.
func Check(d TypeDescriptor, value any) error {
	return check(d, value, "")
}

func check(d TypeDescriptor, v any, path string) error {
	d, err := Resolve(d)
	if err != nil {
		return err
	}

	if v == nil {
		ok, err := Nullable(d)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		return mismatch(d, v, path)
	}

	switch d := d.(type) {
	case *NamedDescriptor:
		if d.matches(v) {
			return nil
		}
		return mismatch(d, v, path)

	case *PrimitiveDescriptor:
		if d.matches(v) {
			return nil
		}
		return mismatch(d, v, path)

	case *LiteralDescriptor:
		if d.Contains(v) {
			return nil
		}
		return notOneOf(d, v, d.Alternatives(), path)

	case *EnumDescriptor:
		if d.Contains(v) {
			return nil
		}
		return notOneOf(d, v, d.Alternatives(), path)

	case *OptionalDescriptor:
		return check(d.Element, v, path)

	case *UnionDescriptor:
		return checkUnion(d, v, path)

	case *ArrayDescriptor:
		rv := reflect.ValueOf(v)
		if !isSequence(rv) {
			return mismatch(d, v, path)
		}
		for i := range rv.Len() {
			if err := check(d.Element, rv.Index(i).Interface(), indexPath(path, i)); err != nil {
				return err
			}
		}
		return nil

	case *MapDescriptor:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Map {
			return mismatch(d, v, path)
		}
		iter := rv.MapRange()
		for iter.Next() {
			p := fmt.Sprintf("%s[%v]", path, iter.Key().Interface())
			if err := check(d.Value, iter.Value().Interface(), p); err != nil {
				return err
			}
		}
		return nil

	case *TupleDescriptor:
		rv := reflect.ValueOf(v)
		if !isTuple(rv) {
			return mismatch(d, v, path)
		}
		if rv.Len() != len(d.Elements) {
			return srapi.Errorf(srapi.CodeTypeMismatch, "expected %s of length %d, not length %d%s",
				d, len(d.Elements), rv.Len(), at(path)).
				WithDetails(map[string]any{"expected": d.String(), "actual": typeName(v), "path": path})
		}
		for i, elem := range d.Elements {
			if err := check(elem, rv.Index(i).Interface(), indexPath(path, i)); err != nil {
				return err
			}
		}
		return nil
	}

	return srapi.Errorf(srapi.CodeConfiguration, "unsupported type descriptor %T", d)
}

// checkUnion tries tagged alternatives (literal sets and enums) by exact
// membership first, then the structural alternatives, in declaration order.
func checkUnion(d *UnionDescriptor, v any, path string) error {
	var structural []TypeDescriptor
	for _, alt := range d.Types {
		alt, err := Resolve(alt)
		if err != nil {
			return err
		}
		if !IsTagged(alt) {
			structural = append(structural, alt)
			continue
		}
		if check(alt, v, path) == nil {
			return nil
		}
	}
	for _, alt := range structural {
		err := check(alt, v, path)
		if err == nil {
			return nil
		}
		if srapi.IsCode(err, srapi.CodeConfiguration) {
			return err
		}
	}

	alts := make([]string, len(d.Types))
	for i, alt := range d.Types {
		alts[i] = alt.String()
	}
	return srapi.Errorf(srapi.CodeTypeMismatch, "expected instance of %s, not %s%s",
		humanize.Or(alts), typeName(v), at(path)).
		WithDetails(map[string]any{
			"expected":     d.String(),
			"actual":       typeName(v),
			"alternatives": alts,
			"path":         path,
		})
}

// Nullable reports whether d accepts nil.
func Nullable(d TypeDescriptor) (bool, error) {
	d, err := Resolve(d)
	if err != nil {
		return false, err
	}
	switch d := d.(type) {
	case *OptionalDescriptor:
		return true, nil
	case *PrimitiveDescriptor:
		return d.PrimitiveKind == PrimitiveAny || d.PrimitiveKind == PrimitiveNull, nil
	case *UnionDescriptor:
		for _, alt := range d.Types {
			ok, err := Nullable(alt)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
	case *LiteralDescriptor:
		return d.Contains(nil), nil
	}
	return false, nil
}

func isSequence(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Type() != tupleType
	case reflect.Array:
		return true
	}
	return false
}

func isTuple(rv reflect.Value) bool {
	return rv.Kind() == reflect.Array || (rv.Kind() == reflect.Slice && rv.Type() == tupleType)
}

func mismatch(d TypeDescriptor, v any, path string) error {
	return srapi.Errorf(srapi.CodeTypeMismatch, "expected instance of %s, not %s%s", d, typeName(v), at(path)).
		WithDetails(map[string]any{"expected": d.String(), "actual": typeName(v), "path": path})
}

func notOneOf(d TypeDescriptor, v any, alts []string, path string) error {
	return srapi.Errorf(srapi.CodeTypeMismatch, "%s is not a valid value%s, expected one of: %s",
		quote(v), at(path), humanize.Or(alts)).
		WithDetails(map[string]any{
			"expected":     d.String(),
			"actual":       typeName(v),
			"alternatives": alts,
			"path":         path,
		})
}

func at(path string) string {
	if path == "" {
		return ""
	}
	return " at " + path
}

func quote(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
