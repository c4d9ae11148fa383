package ir

import (
	"fmt"
	"reflect"
	"strings"
)

// LiteralDescriptor represents a tagged set of literal values.
// A value matches when it equals one of Values exactly (same Go type and value).
type LiteralDescriptor struct {
	exprBase

	// Values are the accepted literals, in declaration order.
	Values []any
}

// Kind returns KindLiteral.
func (d *LiteralDescriptor) Kind() DescriptorKind { return KindLiteral }

func (d *LiteralDescriptor) String() string {
	parts := make([]string, len(d.Values))
	for i, v := range d.Values {
		if s, ok := v.(string); ok {
			parts[i] = fmt.Sprintf("%q", s)
		} else {
			parts[i] = fmt.Sprint(v)
		}
	}
	return strings.Join(parts, " | ")
}

// Literal returns a LiteralDescriptor accepting exactly values.
func Literal(values ...any) *LiteralDescriptor {
	return &LiteralDescriptor{Values: values}
}

// Contains reports whether v is one of the literals.
func (d *LiteralDescriptor) Contains(v any) bool {
	for _, lit := range d.Values {
		if equal(lit, v) {
			return true
		}
	}
	return false
}

// Alternatives returns the literals rendered for error messages.
func (d *LiteralDescriptor) Alternatives() []string {
	alts := make([]string, len(d.Values))
	for i, v := range d.Values {
		alts[i] = fmt.Sprint(v)
	}
	return alts
}

// EnumDescriptor represents a named set of Go constants, such as the values of a
// `type Theme string` with a const block.
type EnumDescriptor struct {
	exprBase

	// Name is the enum's type name.
	Name string

	// Members contains all enum variants.
	Members []EnumMember
}

// EnumMember represents a single enum variant.
type EnumMember struct {
	// Name is the constant name.
	Name string

	// Value is the Go constant itself.
	Value any
}

// Kind returns KindEnum.
func (d *EnumDescriptor) Kind() DescriptorKind { return KindEnum }

func (d *EnumDescriptor) String() string { return d.Name }

// Enum returns an EnumDescriptor with the given members.
func Enum(name string, members ...EnumMember) *EnumDescriptor {
	return &EnumDescriptor{Name: name, Members: members}
}

// EnumOf returns an EnumDescriptor named after T whose members are values.
// Member names are the primitive forms of the values.
func EnumOf[T comparable](values ...T) *EnumDescriptor {
	members := make([]EnumMember, len(values))
	for i, v := range values {
		members[i] = EnumMember{Name: fmt.Sprint(PrimitiveOf(v)), Value: v}
	}
	return &EnumDescriptor{Name: reflect.TypeFor[T]().Name(), Members: members}
}

// Contains reports whether v is one of the members.
func (d *EnumDescriptor) Contains(v any) bool {
	_, ok := d.member(v)
	return ok
}

func (d *EnumDescriptor) member(v any) (EnumMember, bool) {
	for _, m := range d.Members {
		if equal(m.Value, v) {
			return m, true
		}
	}
	return EnumMember{}, false
}

// Lookup returns the member whose primitive form equals raw, compared by string form.
func (d *EnumDescriptor) Lookup(raw any) (any, bool) {
	if m, ok := d.member(raw); ok {
		return m.Value, true
	}
	want := fmt.Sprint(PrimitiveOf(raw))
	for _, m := range d.Members {
		if fmt.Sprint(PrimitiveOf(m.Value)) == want || m.Name == want {
			return m.Value, true
		}
	}
	return nil, false
}

// Alternatives returns the primitive forms of the members.
func (d *EnumDescriptor) Alternatives() []string {
	alts := make([]string, len(d.Members))
	for i, m := range d.Members {
		alts[i] = fmt.Sprint(PrimitiveOf(m.Value))
	}
	return alts
}

// equal compares values without panicking on uncomparable types.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
