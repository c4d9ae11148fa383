package ir

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/broady/srapi"
)

// OptionalDescriptor represents T or nil.
type OptionalDescriptor struct {
	exprBase

	// Element is the non-nil type.
	Element TypeDescriptor
}

// Kind returns KindOptional.
func (d *OptionalDescriptor) Kind() DescriptorKind { return KindOptional }

func (d *OptionalDescriptor) String() string { return d.Element.String() + " | nil" }

// Optional returns an OptionalDescriptor wrapping element.
func Optional(element TypeDescriptor) *OptionalDescriptor {
	return &OptionalDescriptor{Element: element}
}

// ArrayDescriptor represents an ordered sequence (Go slice or array).
// TupleValue is not accepted as a sequence.
type ArrayDescriptor struct {
	exprBase

	// Element is the element type.
	Element TypeDescriptor
}

// Kind returns KindArray.
func (d *ArrayDescriptor) Kind() DescriptorKind { return KindArray }

func (d *ArrayDescriptor) String() string { return "[]" + d.Element.String() }

// Slice returns an ArrayDescriptor for a sequence of element.
func Slice(element TypeDescriptor) *ArrayDescriptor {
	return &ArrayDescriptor{Element: element}
}

// MapDescriptor represents a key-value mapping.
//
// Only values are checked against Value. Keys are accepted as-is; Key is kept
// for rendering and decoding.
type MapDescriptor struct {
	exprBase

	// Key is the map key type.
	Key TypeDescriptor

	// Value is the map value type.
	Value TypeDescriptor
}

// Kind returns KindMap.
func (d *MapDescriptor) Kind() DescriptorKind { return KindMap }

func (d *MapDescriptor) String() string {
	return "map[" + d.Key.String() + "]" + d.Value.String()
}

// Map returns a MapDescriptor for a map type.
func Map(key, value TypeDescriptor) *MapDescriptor {
	return &MapDescriptor{Key: key, Value: value}
}

// TupleDescriptor represents a fixed-arity, positionally typed sequence.
// Values are TupleValue or Go arrays of the same length.
type TupleDescriptor struct {
	exprBase

	// Elements holds one descriptor per position.
	Elements []TypeDescriptor
}

// Kind returns KindTuple.
func (d *TupleDescriptor) Kind() DescriptorKind { return KindTuple }

func (d *TupleDescriptor) String() string {
	return "tuple[" + joinDescriptors(d.Elements, ", ") + "]"
}

// Tuple returns a TupleDescriptor with the given positional element types.
func Tuple(elements ...TypeDescriptor) *TupleDescriptor {
	return &TupleDescriptor{Elements: elements}
}

// UnionDescriptor represents a union of alternatives (T1 | T2 | ...).
// Must have at least 1 element.
type UnionDescriptor struct {
	exprBase

	// Types contains the union members in declaration order.
	Types []TypeDescriptor
}

// Kind returns KindUnion.
func (d *UnionDescriptor) Kind() DescriptorKind { return KindUnion }

func (d *UnionDescriptor) String() string { return joinDescriptors(d.Types, " | ") }

// Union returns a UnionDescriptor for a union of types.
func Union(types ...TypeDescriptor) *UnionDescriptor {
	return &UnionDescriptor{Types: types}
}

// ReferenceDescriptor is the deferred form of a descriptor: a name looked up in a
// Registry the first time the descriptor is used. A successful lookup is cached;
// a failed one is retried on the next use, so a reference may be declared before
// its target is registered.
type ReferenceDescriptor struct {
	exprBase

	// Target is the registered name.
	Target string

	registry *Registry
	resolved atomic.Pointer[resolution]
}

type resolution struct{ desc TypeDescriptor }

// Kind returns KindReference.
func (d *ReferenceDescriptor) Kind() DescriptorKind { return KindReference }

func (d *ReferenceDescriptor) String() string { return d.Target }

// Ref returns a ReferenceDescriptor resolved against the Default registry.
func Ref(name string) *ReferenceDescriptor {
	return RefIn(Default, name)
}

// RefIn returns a ReferenceDescriptor resolved against reg.
func RefIn(reg *Registry, name string) *ReferenceDescriptor {
	return &ReferenceDescriptor{Target: name, registry: reg}
}

// maxRefDepth bounds chains of references pointing at references.
const maxRefDepth = 32

// Resolve returns the descriptor the reference points to, following chains of
// references. Failure is a configuration error.
func (d *ReferenceDescriptor) Resolve() (TypeDescriptor, error) {
	if r := d.resolved.Load(); r != nil {
		return r.desc, nil
	}
	var cur TypeDescriptor = d
	for range maxRefDepth {
		ref, ok := cur.(*ReferenceDescriptor)
		if !ok {
			d.resolved.Store(&resolution{desc: cur})
			return cur, nil
		}
		next, ok := ref.registry.Lookup(ref.Target)
		if !ok {
			return nil, srapi.Errorf(srapi.CodeConfiguration, "cannot resolve type %q", ref.Target).
				WithDetail("type", ref.Target)
		}
		cur = next
	}
	return nil, srapi.Errorf(srapi.CodeConfiguration, "reference cycle resolving type %q", d.Target).
		WithDetail("type", d.Target)
}

// Resolve returns d with any reference resolved.
func Resolve(d TypeDescriptor) (TypeDescriptor, error) {
	if ref, ok := d.(*ReferenceDescriptor); ok {
		return ref.Resolve()
	}
	return d, nil
}

// Unwrap returns the non-nil core of d: the element of an Optional, or d itself.
func Unwrap(d TypeDescriptor) TypeDescriptor {
	for {
		opt, ok := d.(*OptionalDescriptor)
		if !ok {
			return d
		}
		d = opt.Element
	}
}

func joinDescriptors(ds []TypeDescriptor, sep string) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}
	return strings.Join(parts, sep)
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
