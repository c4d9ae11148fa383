// Package model builds typed, validated records from explicit attribute
// declarations.
//
// A record type is declared once with a Builder and then constructs records
// from keyword values:
//
//	var Tweet = model.Define("Tweet").
//		Attr("username", ir.String(), model.MaxLen(15)).
//		Attr("theme", ir.Literal("light", "dim", "dark"), model.Default("dark")).
//		Value("likes", ir.Int(0), 0).
//		MustBuild()
//
//	rec, err := Tweet.New(model.Values{"username": "ana"})
//
// Every value goes through the attribute's constraints, then the recursive type
// check against its descriptor, then the type's cross-field rules. A failing
// construction returns no record; a failing Set leaves the record unchanged.
package model

import (
	"github.com/broady/srapi"
	"github.com/broady/srapi/endpoint"
	"github.com/broady/srapi/internal/fuzzy"
	"github.com/broady/srapi/ir"
)

// Type is a built record type. It is immutable and safe for concurrent use.
type Type struct {
	name      string
	attrs     []*Attribute
	byName    map[string]*Attribute
	byWire    map[string]*Attribute
	initCount int
	frozen    bool
	skipTypes bool
	postInit  []func(*Record) error
	rules     []*rule
	op        *endpoint.Operation
	suggest   *fuzzy.Suggester
	desc      *ir.NamedDescriptor
}

// Builder declares a record type.
type Builder struct {
	t        *Type
	registry *ir.Registry
	rules    [][2]string
	err      error
}

// Define starts the declaration of a record type named name.
func Define(name string) *Builder {
	return &Builder{
		t: &Type{
			name:   name,
			byName: make(map[string]*Attribute),
			byWire: make(map[string]*Attribute),
		},
		registry: ir.Default,
	}
}

// Attr declares an attribute checked against desc.
func (b *Builder) Attr(name string, desc ir.TypeDescriptor, opts ...AttrOption) *Builder {
	if b.err != nil {
		return b
	}
	if name == "" {
		b.err = srapi.Errorf(srapi.CodeConfiguration, "%s: attribute without a name", b.t.name)
		return b
	}
	if desc == nil {
		b.err = srapi.Errorf(srapi.CodeConfiguration, "%s: attribute %q has no type", b.t.name, name)
		return b
	}
	if _, dup := b.t.byName[name]; dup {
		b.err = srapi.Errorf(srapi.CodeConfiguration, "%s: duplicate attribute %q", b.t.name, name)
		return b
	}
	a := newAttribute(name, desc, opts...)
	if a.err != nil {
		b.err = srapi.Errorf(srapi.CodeConfiguration, "%s: %s", b.t.name, a.err.(*srapi.Error).Message)
		return b
	}
	if other, dup := b.t.byWire[a.WireName()]; dup {
		b.err = srapi.Errorf(srapi.CodeConfiguration, "%s: attributes %q and %q share the wire name %q",
			b.t.name, other.name, name, a.WireName())
		return b
	}
	b.t.attrs = append(b.t.attrs, a)
	b.t.byName[name] = a
	b.t.byWire[a.WireName()] = a
	if a.init {
		b.t.initCount++
	}
	return b
}

// Value declares an attribute whose default is def, the shorthand for
// Attr(name, desc, Default(def)).
func (b *Builder) Value(name string, desc ir.TypeDescriptor, def any) *Builder {
	return b.Attr(name, desc, Default(def))
}

// Frozen makes records of the type reject every assignment after construction.
func (b *Builder) Frozen() *Builder {
	if b.err == nil {
		b.t.frozen = true
	}
	return b
}

// SkipTypeCheck disables the recursive type check. Length, allowed value, range
// and coercion constraints still apply.
func (b *Builder) SkipTypeCheck() *Builder {
	if b.err == nil {
		b.t.skipTypes = true
	}
	return b
}

// PostInit adds a hook run after the values are set on every construction and
// assignment, before the type check. Hooks may adjust values with SetInternal.
func (b *Builder) PostInit(fn func(*Record) error) *Builder {
	if b.err == nil {
		b.t.postInit = append(b.t.postInit, fn)
	}
	return b
}

// Rule adds a cross-field rule: an expr-lang boolean expression over the
// attribute names, such as `len(username) + len(comment) < 1000`. Enum values
// appear as their primitives. message is reported when the rule is false.
func (b *Builder) Rule(expression, message string) *Builder {
	if b.err == nil {
		b.rules = append(b.rules, [2]string{expression, message})
	}
	return b
}

// Operation ties the type to the endpoint its records are sent to. Build checks
// that every required parameter other than the key is the wire name of an init
// attribute, and that every init attribute names a parameter.
func (b *Builder) Operation(op *endpoint.Operation) *Builder {
	if b.err == nil {
		b.t.op = op
	}
	return b
}

// Registry sets the registry the type's descriptor is registered in, ir.Default
// unless set.
func (b *Builder) Registry(reg *ir.Registry) *Builder {
	if b.err == nil {
		b.registry = reg
	}
	return b
}

// Build returns the record type, or the first declaration error.
func (b *Builder) Build() (*Type, error) {
	if b.err != nil {
		return nil, b.err
	}
	t := b.t
	if t.name == "" {
		return nil, srapi.NewError(srapi.CodeConfiguration, "record type without a name")
	}
	for _, src := range b.rules {
		ru, err := compileRule(t.name, t.attrs, src[0], src[1])
		if err != nil {
			return nil, err
		}
		t.rules = append(t.rules, ru)
	}
	if t.op != nil {
		if err := t.checkOperation(); err != nil {
			return nil, err
		}
	}

	names := make([]string, len(t.attrs))
	for i, a := range t.attrs {
		names[i] = a.name
	}
	t.suggest = fuzzy.NewSuggester(names)
	t.desc = ir.Named(t.name, t.isRecord, t.decode)
	if b.registry != nil {
		if err := b.registry.Register(t.name, t.desc); err != nil {
			return nil, err
		}
	}
	// The builder no longer owns the type.
	b.err = srapi.Errorf(srapi.CodeConfiguration, "%s: builder already used", t.name)
	return t, nil
}

// MustBuild is like Build but panics on a declaration error.
func (b *Builder) MustBuild() *Type {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Type) checkOperation() error {
	for _, p := range t.op.Parameters() {
		if p.IsKey() || !p.Required() {
			continue
		}
		if a, ok := t.byWire[p.Name()]; !ok || !a.init {
			return srapi.Errorf(srapi.CodeConfiguration, "%s: required parameter %q of %s has no attribute",
				t.name, p.Name(), t.op.Path())
		}
	}
	for _, a := range t.attrs {
		if !a.init {
			continue
		}
		if _, ok := t.op.Parameter(a.WireName()); !ok {
			return srapi.Errorf(srapi.CodeConfiguration, "%s: attribute %q is not a parameter of %s",
				t.name, a.WireName(), t.op.Path())
		}
	}
	return nil
}

func (t *Type) isRecord(v any) bool {
	r, ok := v.(*Record)
	return ok && r != nil && r.typ == t
}

func (t *Type) decode(raw any) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return raw, nil
	}
	r, err := t.FromDict(m)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Attributes returns the attributes in declaration order.
func (t *Type) Attributes() []*Attribute {
	out := make([]*Attribute, len(t.attrs))
	copy(out, t.attrs)
	return out
}

// Attribute returns the named attribute.
func (t *Type) Attribute(name string) (*Attribute, bool) {
	a, ok := t.byName[name]
	return a, ok
}

// Frozen reports whether records of the type are immutable.
func (t *Type) Frozen() bool { return t.frozen }

// ChecksTypes reports whether the recursive type check runs.
func (t *Type) ChecksTypes() bool { return !t.skipTypes }

// Operation returns the endpoint the type is tied to, or nil.
func (t *Type) Operation() *endpoint.Operation { return t.op }

// Descriptor returns the descriptor matching records of this type, registered
// under the type name so other types can refer to it with ir.Ref.
func (t *Type) Descriptor() ir.TypeDescriptor { return t.desc }

func (t *Type) String() string { return t.name }
