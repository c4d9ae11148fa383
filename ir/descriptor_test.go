package ir

import "testing"

func TestDescriptorKind_String(t *testing.T) {
	tests := []struct {
		kind DescriptorKind
		want string
	}{
		{KindPrimitive, "Primitive"},
		{KindNamed, "Named"},
		{KindOptional, "Optional"},
		{KindLiteral, "Literal"},
		{KindEnum, "Enum"},
		{KindUnion, "Union"},
		{KindArray, "Array"},
		{KindMap, "Map"},
		{KindTuple, "Tuple"},
		{KindReference, "Reference"},
		{DescriptorKind(999), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("DescriptorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDescriptor_String(t *testing.T) {
	tests := []struct {
		name string
		desc TypeDescriptor
		want string
	}{
		{"string", String(), "string"},
		{"sized int", Int(32), "int32"},
		{"unsized float", Float(0), "float"},
		{"optional", Optional(Int(0)), "int | nil"},
		{"slice", Slice(String()), "[]string"},
		{"map", Map(String(), Int(0)), "map[string]int"},
		{"tuple", Tuple(Int(0), String()), "tuple[int, string]"},
		{"union", Union(Int(0), String()), "int | string"},
		{"literal", Literal("light", "dim", 3), `"light" | "dim" | 3`},
		{"reference", Ref("Tweet"), "Tweet"},
		{"named", TypeOf[*testing.T](), "*testing.T"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.desc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescriptor_Kinds(t *testing.T) {
	tests := []struct {
		desc TypeDescriptor
		want DescriptorKind
	}{
		{Bool(), KindPrimitive},
		{TypeOf[int](), KindNamed},
		{Optional(Bool()), KindOptional},
		{Literal(1), KindLiteral},
		{EnumOf(testColorRed), KindEnum},
		{Union(Bool()), KindUnion},
		{Slice(Bool()), KindArray},
		{Map(String(), Bool()), KindMap},
		{Tuple(Bool()), KindTuple},
		{Ref("x"), KindReference},
	}
	for _, tt := range tests {
		if got := tt.desc.Kind(); got != tt.want {
			t.Errorf("%s.Kind() = %v, want %v", tt.desc, got, tt.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	inner := String()
	if got := Unwrap(Optional(Optional(inner))); got != inner {
		t.Errorf("Unwrap() = %v, want the inner descriptor", got)
	}
	if got := Unwrap(inner); got != inner {
		t.Errorf("Unwrap(non-optional) = %v, want itself", got)
	}
}

type testColor string

const (
	testColorRed  testColor = "red"
	testColorBlue testColor = "blue"
)

type testLevel int

func (l testLevel) Primitive() any { return int(l) * 10 }

func TestPrimitiveOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"plain string", "x", "x"},
		{"named string", testColorRed, "red"},
		{"enum value", testLevel(2), 20},
		{"plain int", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrimitiveOf(tt.in); got != tt.want {
				t.Errorf("PrimitiveOf(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEnumOf(t *testing.T) {
	e := EnumOf(testColorRed, testColorBlue)
	if e.Name != "testColor" {
		t.Errorf("Name = %q, want testColor", e.Name)
	}
	if len(e.Members) != 2 || e.Members[0].Name != "red" {
		t.Errorf("Members = %+v, want red and blue", e.Members)
	}
	if v, ok := e.Lookup("blue"); !ok || v != testColorBlue {
		t.Errorf("Lookup(blue) = %v, %v; want testColorBlue", v, ok)
	}
	if _, ok := e.Lookup("green"); ok {
		t.Error("Lookup(green) should fail")
	}
}
