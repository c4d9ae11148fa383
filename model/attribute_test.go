package model

import (
	"testing"

	"github.com/broady/srapi"
	"github.com/broady/srapi/ir"
	"github.com/google/go-cmp/cmp"
)

func TestAttribute_Validate(t *testing.T) {
	tests := []struct {
		name     string
		attr     *Attribute
		value    any
		want     any
		wantCode srapi.ErrorCode
		wantMsg  string
	}{
		{
			name:  "min length ok",
			attr:  newAttribute("username", ir.String(), MinLen(3)),
			value: "ana",
			want:  "ana",
		},
		{
			name:     "min length",
			attr:     newAttribute("username", ir.String(), MinLen(3)),
			value:    "an",
			wantCode: srapi.CodeInvalidValue,
			wantMsg:  "invalid_value: 'username' must be at least 3 characters long, got 2",
		},
		{
			name:     "max length",
			attr:     newAttribute("username", ir.String(), MaxLen(15)),
			value:    "abcdefghijklmnopqrst",
			wantCode: srapi.CodeInvalidValue,
			wantMsg:  "invalid_value: 'username' must be at most 15 characters long, got 20",
		},
		{
			name:  "length counts runes",
			attr:  newAttribute("username", ir.String(), MaxLen(3)),
			value: "héé",
			want:  "héé",
		},
		{
			name:     "slice length",
			attr:     newAttribute("tags", ir.Slice(ir.String()), MinLen(1)),
			value:    []string{},
			wantCode: srapi.CodeInvalidValue,
			wantMsg:  "invalid_value: 'tags' must be at least 1 characters long, got 0",
		},
		{
			name:     "no length",
			attr:     newAttribute("username", ir.String(), MinLen(1)),
			value:    5,
			wantCode: srapi.CodeInvalidType,
			wantMsg:  "invalid_type: 'username' must have a length to validate, got int",
		},
		{
			name:     "allowed values",
			attr:     newAttribute("theme", ir.String(), OneOf("light", "dim", "dark")),
			value:    "neon",
			wantCode: srapi.CodeInvalidValue,
			wantMsg:  "invalid_value: 'theme' must be one of 'light', 'dim', 'dark', got 'neon'",
		},
		{
			name:  "allowed values compare string forms",
			attr:  newAttribute("font", ir.Any(), OneOf(1, 2, 3)),
			value: "2",
			want:  "2",
		},
		{
			name:  "allowed values with separators",
			attr:  newAttribute("x", ir.String(), OneOf("a b", "c,d", "e|f")),
			value: "c,d",
			want:  "c,d",
		},
		{
			name:  "allowed value with space",
			attr:  newAttribute("x", ir.String(), OneOf("a b", "c,d", "e|f")),
			value: "a b",
			want:  "a b",
		},
		{
			name:     "partial allowed value",
			attr:     newAttribute("x", ir.String(), OneOf("a b", "c,d")),
			value:    "a",
			wantCode: srapi.CodeInvalidValue,
		},
		{
			name:  "range inclusive low",
			attr:  newAttribute("level", ir.Int(0), Range(0, 100)),
			value: 0,
			want:  0,
		},
		{
			name:  "range inclusive high",
			attr:  newAttribute("level", ir.Int(0), Range(0, 100)),
			value: 100,
			want:  100,
		},
		{
			name:     "range",
			attr:     newAttribute("level", ir.Int(0), Range(0, 100)),
			value:    120,
			wantCode: srapi.CodeInvalidValue,
			wantMsg:  "invalid_value: 'level' must be in the range 0 to 100, got 120",
		},
		{
			name:     "range below",
			attr:     newAttribute("ratio", ir.Float(64), Range(0.5, 1)),
			value:    0.25,
			wantCode: srapi.CodeInvalidValue,
			wantMsg:  "invalid_value: 'ratio' must be in the range 0.5 to 1, got 0.25",
		},
		{
			name:     "range needs a number",
			attr:     newAttribute("level", ir.Int(0), Range(0, 100)),
			value:    "7",
			wantCode: srapi.CodeInvalidType,
			wantMsg:  "invalid_type: 'level' must be a number to validate range, got string",
		},
		{
			name:  "nil skips constraints",
			attr:  newAttribute("username", ir.Optional(ir.String()), MinLen(3), OneOf("x")),
			value: nil,
			want:  nil,
		},
		{
			name:  "NoValue skips constraints",
			attr:  newAttribute("username", ir.String(), MinLen(3)),
			value: NoValue,
			want:  NoValue,
		},
		{
			name:  "coercion",
			attr:  newAttribute("level", ir.Int(0), Coerce(ToInt), Range(0, 100)),
			value: "42",
			want:  42,
		},
		{
			name:     "coercion failure",
			attr:     newAttribute("level", ir.Int(0), Coerce(ToInt)),
			value:    "abc",
			wantCode: srapi.CodeInvalidType,
		},
		{
			name:     "coercion runs before length",
			attr:     newAttribute("code", ir.String(), Coerce(ToString), MaxLen(2)),
			value:    123,
			wantCode: srapi.CodeInvalidValue,
			wantMsg:  "invalid_value: 'code' must be at most 2 characters long, got 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.err != nil {
				t.Fatalf("attribute error: %v", tt.attr.err)
			}
			got, err := tt.attr.Validate(tt.value)
			if tt.wantCode != "" {
				if !srapi.IsCode(err, tt.wantCode) {
					t.Fatalf("Validate() error = %v, want code %s", err, tt.wantCode)
				}
				if tt.wantMsg != "" && err.Error() != tt.wantMsg {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAttribute_ValidateIdempotent(t *testing.T) {
	a := newAttribute("username", ir.String(), MinLen(1), MaxLen(15), Coerce(ToString))
	first, err := a.Validate("ana")
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Validate(first)
	if err != nil {
		t.Fatalf("second Validate() error = %v", err)
	}
	if first != second {
		t.Errorf("Validate() = %v then %v", first, second)
	}
}

func TestAttribute_ConstraintDetails(t *testing.T) {
	a := newAttribute("theme", ir.String(), OneOf("light"))
	_, err := a.Validate("neon")
	e, ok := err.(*srapi.Error)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if e.Detail("attribute") != "theme" || e.Detail("constraint") != "oneof" || e.Detail("value") != "neon" {
		t.Errorf("details = %v", e.Details)
	}
}

func TestAttribute_DeclarationErrors(t *testing.T) {
	tests := []struct {
		name string
		attr *Attribute
	}{
		{"min over max", newAttribute("x", ir.String(), MinLen(5), MaxLen(2))},
		{"empty range", newAttribute("x", ir.Int(0), Range(5, 1))},
		{"quote in allowed value", newAttribute("x", ir.String(), OneOf("it's"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !srapi.IsCode(tt.attr.err, srapi.CodeConfiguration) {
				t.Errorf("err = %v, want configuration error", tt.attr.err)
			}
		})
	}
}

func TestAttribute_Accessors(t *testing.T) {
	a := newAttribute("current_xp", ir.Int(0), WireName("cxp"), NoRepr(), Metadata("doc", "Current XP"))
	if a.Name() != "current_xp" || a.WireName() != "cxp" {
		t.Errorf("Name() = %q, WireName() = %q", a.Name(), a.WireName())
	}
	if !a.Required() || a.Default() != NoValue {
		t.Errorf("Required() = %v, Default() = %v", a.Required(), a.Default())
	}
	if a.Repr() || !a.Init() {
		t.Errorf("Repr() = %v, Init() = %v", a.Repr(), a.Init())
	}
	if v, ok := a.Metadata("doc"); !ok || v != "Current XP" {
		t.Errorf("Metadata(doc) = %v, %v", v, ok)
	}
	if a.Type().Kind() != ir.KindPrimitive {
		t.Errorf("Type() = %v", a.Type())
	}

	b := newAttribute("bg", ir.Optional(ir.String()), Default(nil), NoInit())
	if b.Required() || b.Init() || b.WireName() != "bg" {
		t.Errorf("bg: Required() = %v, Init() = %v, WireName() = %q", b.Required(), b.Init(), b.WireName())
	}
}
