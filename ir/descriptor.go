package ir

// DescriptorKind identifies the category of a type descriptor.
type DescriptorKind int

const (
	KindPrimitive DescriptorKind = iota // Built-in primitive type
	KindNamed                           // Concrete Go type, checked by identity or predicate
	KindOptional                        // T or nil
	KindLiteral                         // Tagged set of literal values
	KindEnum                            // Named set of Go constants
	KindUnion                           // Union of alternatives (T1 | T2 | ...)
	KindArray                           // Ordered sequence ([]T)
	KindMap                             // Key-value mapping (map[K]V)
	KindTuple                           // Fixed-arity tuple
	KindReference                       // Deferred reference to a registered type
)

// String returns the string representation of the descriptor kind.
func (k DescriptorKind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindNamed:
		return "Named"
	case KindOptional:
		return "Optional"
	case KindLiteral:
		return "Literal"
	case KindEnum:
		return "Enum"
	case KindUnion:
		return "Union"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindTuple:
		return "Tuple"
	case KindReference:
		return "Reference"
	default:
		return "Unknown"
	}
}

// TypeDescriptor is the base interface for all type descriptors.
//
// Descriptors are immutable once built and may be shared by any number of
// attributes and goroutines.
type TypeDescriptor interface {
	// Kind returns the descriptor kind for type switching.
	Kind() DescriptorKind

	// String renders the descriptor for error messages, e.g. "[]int" or "string | nil".
	String() string

	// Ensure only types in this package can implement TypeDescriptor.
	sealed()
}

type exprBase struct{}

func (exprBase) sealed() {}
