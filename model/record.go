package model

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/broady/srapi"
	"github.com/broady/srapi/endpoint"
	"github.com/broady/srapi/ir"
)

// Record is an instance of a record type. Each record owns its values; records
// are not safe for concurrent mutation.
type Record struct {
	typ      *Type
	values   map[string]any
	building bool
}

// New constructs a record from keyword values keyed by attribute name.
// Attributes not given take their default. It fails, without returning a
// record, when more values are given than the type accepts, a required
// attribute is missing, a value names an attribute the constructor does not
// accept or an unknown name, or any value fails validation.
func (t *Type) New(values Values) (*Record, error) {
	if len(values) > t.initCount {
		return nil, srapi.Errorf(srapi.CodeInvalidArgument,
			"too many keyword arguments passed to %s: expected %d, got %d", t.name, t.initCount, len(values)).
			WithDetail("record", t.name)
	}
	for _, a := range t.attrs {
		if !a.init || !a.Required() {
			continue
		}
		if v, ok := values[a.name]; !ok || v == NoValue {
			return nil, srapi.Errorf(srapi.CodeInvalidArgument, "missing required parameter %s for %s", a.quoted(), t.name).
				WithDetails(map[string]any{"record": t.name, "field": a.name})
		}
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a, ok := t.byName[k]
		if !ok {
			return nil, t.unknownAttribute(k, "got an unexpected keyword argument")
		}
		if !a.init {
			return nil, srapi.Errorf(srapi.CodeInvalidArgument, "%s cannot be passed as a keyword argument to %s", a.quoted(), t.name).
				WithDetails(map[string]any{"record": t.name, "field": a.name})
		}
	}

	r := &Record{typ: t, values: make(map[string]any, len(t.attrs))}
	for _, a := range t.attrs {
		v, ok := values[a.name]
		if !a.init || !ok || v == NoValue {
			v = cloneValue(a.def)
		}
		stored, err := a.Validate(cloneValue(v))
		if err != nil {
			return nil, withRecord(err, t.name, a.name)
		}
		r.values[a.name] = stored
	}
	if err := r.finish(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNew is like New but panics on error.
func (t *Type) MustNew(values Values) *Record {
	r, err := t.New(values)
	if err != nil {
		panic(err)
	}
	return r
}

// FromDict constructs a record from its wire form, keyed by wire name. Missing
// keys take the attribute default; values are decoded against the attribute
// types first, so FromDict(r.ToDict()) reproduces r.
func (t *Type) FromDict(data map[string]any) (*Record, error) {
	values := make(Values, len(data))
	for _, a := range t.attrs {
		if !a.init {
			continue
		}
		raw, ok := data[a.WireName()]
		if !ok {
			continue
		}
		v, err := ir.Decode(a.desc, raw)
		if err != nil {
			return nil, withRecord(err, t.name, a.name)
		}
		values[a.name] = v
	}
	return t.New(values)
}

// FromBound constructs a record from the values bound to the type's operation.
func (t *Type) FromBound(b *endpoint.Bound) (*Record, error) {
	if t.op == nil {
		return nil, srapi.Errorf(srapi.CodeConfiguration, "%s has no operation", t.name)
	}
	if b.Operation() != t.op {
		return nil, srapi.Errorf(srapi.CodeInvalidArgument, "expected operation %s for %s, got %s",
			t.op.Path(), t.name, b.Operation().Path())
	}
	return t.FromDict(b.Values())
}

func (t *Type) unknownAttribute(name, what string) error {
	msg := fmt.Sprintf("%s %s '%s'", t.name, what, name)
	details := map[string]any{"record": t.name, "field": name}
	if guess, ok := t.suggest.Suggest(name); ok {
		msg += fmt.Sprintf("; did you mean '%s'?", guess)
		details["suggestion"] = guess
	}
	return srapi.NewError(srapi.CodeInvalidArgument, msg).WithDetails(details)
}

// finish runs the post-construction hooks, the type check and the rules.
func (r *Record) finish() error {
	r.building = true
	defer func() { r.building = false }()

	for _, hook := range r.typ.postInit {
		if err := hook(r); err != nil {
			if srapi.CodeOf(err) == "" {
				return srapi.Errorf(srapi.CodeInvalidValue, "%s: %v", r.typ.name, err).WithDetail("record", r.typ.name)
			}
			return err
		}
	}
	if err := r.ValidateTypes(); err != nil {
		return err
	}
	for _, ru := range r.typ.rules {
		if err := ru.eval(r); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTypes checks every constructor attribute's value against its type.
// It does nothing for types built with SkipTypeCheck.
func (r *Record) ValidateTypes() error {
	if r.typ.skipTypes {
		return nil
	}
	for _, a := range r.typ.attrs {
		if !a.init {
			continue
		}
		v, ok := r.values[a.name]
		if !ok || v == NoValue {
			continue
		}
		// A nil default admits nil whatever the declared type.
		if v == nil && a.def == nil {
			continue
		}
		if err := ir.Check(a.desc, v); err != nil {
			return withRecord(err, r.typ.name, a.name)
		}
	}
	return nil
}

// withRecord scopes an error from a field's validation to the record.
func withRecord(err error, record, field string) error {
	e, ok := err.(*srapi.Error)
	if !ok {
		return err
	}
	if e.Code == srapi.CodeTypeMismatch || e.Code == srapi.CodeConfiguration {
		e = srapi.Errorf(e.Code, "%s.%s: %s", record, field, e.Message).WithDetails(e.Details)
	}
	return e.WithDetails(map[string]any{"record": record, "field": field})
}

// Type returns the record's type.
func (r *Record) Type() *Type { return r.typ }

// Get returns the value of the named attribute, its default when unset, and
// nil for unknown names. Slices, maps and nested records are copies; changing
// them does not change r.
func (r *Record) Get(name string) any {
	v, _ := r.Lookup(name)
	return v
}

// Lookup is like Get but reports whether name is an attribute.
func (r *Record) Lookup(name string) (any, bool) {
	a, ok := r.typ.byName[name]
	if !ok {
		return nil, false
	}
	if v, ok := r.values[name]; ok && v != NoValue {
		return cloneValue(v), true
	}
	return cloneValue(a.def), true
}

// Set assigns an attribute. The value is validated, then hooks, type check and
// rules run against the would-be record; on any failure the record is unchanged.
// Frozen records reject every assignment.
func (r *Record) Set(name string, value any) error {
	a, ok := r.typ.byName[name]
	if !ok {
		return r.typ.unknownAttribute(name, "has no attribute")
	}
	if r.typ.frozen {
		return srapi.Errorf(srapi.CodeFrozen, "%s is frozen and cannot be modified", r.typ.name).
			WithDetails(map[string]any{"record": r.typ.name, "field": name})
	}
	if value == NoValue && a.Required() {
		return srapi.Errorf(srapi.CodeInvalidArgument, "cannot unset required attribute %s of %s", a.quoted(), r.typ.name).
			WithDetails(map[string]any{"record": r.typ.name, "field": name})
	}
	stored, err := a.Validate(cloneValue(value))
	if err != nil {
		return withRecord(err, r.typ.name, name)
	}
	next := &Record{typ: r.typ, values: make(map[string]any, len(r.values))}
	for k, v := range r.values {
		next.values[k] = v
	}
	next.values[name] = stored
	if err := next.finish(); err != nil {
		return err
	}
	r.values = next.values
	return nil
}

// SetInternal assigns an attribute from a post-construction hook, including
// attributes declared with NoInit. The value is validated but not type checked;
// the type check runs once the hooks return.
func (r *Record) SetInternal(name string, value any) error {
	if !r.building {
		return srapi.Errorf(srapi.CodeInvalidArgument, "%s: SetInternal outside of construction", r.typ.name)
	}
	a, ok := r.typ.byName[name]
	if !ok {
		return r.typ.unknownAttribute(name, "has no attribute")
	}
	stored, err := a.Validate(value)
	if err != nil {
		return withRecord(err, r.typ.name, name)
	}
	r.values[name] = stored
	return nil
}

// Delete always fails: attributes cannot be removed from a record.
func (r *Record) Delete(name string) error {
	if r.typ.frozen {
		return srapi.Errorf(srapi.CodeFrozen, "%s is frozen and cannot be modified", r.typ.name).
			WithDetails(map[string]any{"record": r.typ.name, "field": name})
	}
	return srapi.Errorf(srapi.CodeInvalidArgument, "cannot delete attribute '%s'", name).
		WithDetails(map[string]any{"record": r.typ.name, "field": name})
}

// ToDict returns the wire form: constructor attributes keyed by wire name,
// flattened with Flatten. Unset attributes are omitted.
func (r *Record) ToDict() map[string]any {
	out := make(map[string]any, len(r.typ.attrs))
	for _, a := range r.typ.attrs {
		if !a.init {
			continue
		}
		v, ok := r.values[a.name]
		if !ok || v == NoValue {
			continue
		}
		out[a.WireName()] = Flatten(v)
	}
	return out
}

// Bind binds the record's wire form to its type's operation.
func (r *Record) Bind(opts ...endpoint.BindOption) (*endpoint.Bound, error) {
	if r.typ.op == nil {
		return nil, srapi.Errorf(srapi.CodeConfiguration, "%s has no operation", r.typ.name)
	}
	return r.typ.op.Bind(r.ToDict(), opts...)
}

// Copy returns a deep copy with its own values.
func (r *Record) Copy() *Record {
	out := &Record{typ: r.typ, values: make(map[string]any, len(r.values))}
	for k, v := range r.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

// Equal reports whether o has the same type and attribute values.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.typ != o.typ {
		return false
	}
	for _, a := range r.typ.attrs {
		if !a.equal(r.Get(a.name), o.Get(a.name)) {
			return false
		}
	}
	return true
}

// String renders the constructor attributes shown in repr, such as
// Tweet(username='ana', likes=3).
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.typ.name)
	sb.WriteByte('(')
	first := true
	for _, a := range r.typ.attrs {
		if !a.init || !a.repr {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(a.name)
		sb.WriteByte('=')
		sb.WriteString(repr(r.Get(a.name)))
	}
	sb.WriteByte(')')
	return sb.String()
}

// equal compares two values of the attribute. Typed attributes compare by
// wire form, so []string{"a"} equals the []any{"a"} FromDict decodes and
// int32(5) equals int64(5); Any attributes compare exactly.
func (a *Attribute) equal(x, y any) bool {
	if rx, ok := x.(*Record); ok {
		ry, ok := y.(*Record)
		return ok && rx.Equal(ry)
	}
	if reflect.DeepEqual(x, y) {
		return true
	}
	if x == nil || y == nil || x == NoValue || y == NoValue {
		return false
	}
	d, err := ir.Resolve(ir.Unwrap(a.desc))
	if err != nil {
		return false
	}
	if p, ok := ir.Unwrap(d).(*ir.PrimitiveDescriptor); ok && p.PrimitiveKind == ir.PrimitiveAny {
		return false
	}
	return reflect.DeepEqual(Flatten(x), Flatten(y))
}

// cloneValue deep-copies slices, maps and nested records.
func cloneValue(v any) any {
	if r, ok := v.(*Record); ok {
		if r == nil {
			return v
		}
		return r.Copy()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := range rv.Len() {
			setCloned(out.Index(i), rv.Index(i))
		}
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			elem := reflect.New(rv.Type().Elem()).Elem()
			setCloned(elem, iter.Value())
			out.SetMapIndex(iter.Key(), elem)
		}
		return out.Interface()
	}
	return v
}

func setCloned(dst, src reflect.Value) {
	if src.Kind() == reflect.Interface && src.IsNil() {
		return
	}
	c := cloneValue(src.Interface())
	if c == nil {
		return
	}
	dst.Set(reflect.ValueOf(c))
}
