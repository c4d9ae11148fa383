package ir

import "reflect"

// NamedDescriptor represents a concrete Go type. A value matches when its dynamic
// type is Type (or implements it, for interface types), or when Match accepts it.
type NamedDescriptor struct {
	exprBase

	// Name is used in error messages.
	Name string

	// Type is the Go type, nil when only Match is used.
	Type reflect.Type

	// Match optionally replaces the type identity check.
	Match func(any) bool

	// DecodeFunc optionally converts a wire value into a value of this type.
	DecodeFunc func(any) (any, error)
}

// Kind returns KindNamed.
func (d *NamedDescriptor) Kind() DescriptorKind { return KindNamed }

func (d *NamedDescriptor) String() string { return d.Name }

func (d *NamedDescriptor) matches(v any) bool {
	if d.Match != nil {
		return d.Match(v)
	}
	if d.Type == nil {
		return false
	}
	t := reflect.TypeOf(v)
	if d.Type.Kind() == reflect.Interface {
		return t.Implements(d.Type)
	}
	return t == d.Type
}

// TypeOf returns a NamedDescriptor for the Go type T.
func TypeOf[T any]() *NamedDescriptor {
	t := reflect.TypeFor[T]()
	return &NamedDescriptor{Name: t.String(), Type: t}
}

// Named returns a NamedDescriptor checked by match and decoded by decode.
// decode may be nil.
func Named(name string, match func(any) bool, decode func(any) (any, error)) *NamedDescriptor {
	return &NamedDescriptor{Name: name, Match: match, DecodeFunc: decode}
}
