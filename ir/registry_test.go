package ir

import (
	"testing"

	"github.com/broady/srapi"
)

func TestRegistry_Builtins(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"bool", "string", "int", "float", "any", "nil"} {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("Lookup(%q) missing builtin", name)
		}
	}
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("Theme", Literal("light", "dark")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	err := reg.Register("Theme", String())
	if !srapi.IsCode(err, srapi.CodeConfiguration) {
		t.Errorf("duplicate Register() = %v, want configuration error", err)
	}
	if err := reg.Register("", String()); err == nil {
		t.Error("empty name should fail")
	}
	if err := reg.Register("X", nil); err == nil {
		t.Error("nil descriptor should fail")
	}

	names := reg.Names()
	found := false
	for i, n := range names {
		if i > 0 && names[i-1] > n {
			t.Fatalf("Names() not sorted: %v", names)
		}
		if n == "Theme" {
			found = true
		}
	}
	if !found {
		t.Errorf("Names() = %v, missing Theme", names)
	}
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	reg := NewRegistry()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	reg.MustRegister("int", Int(0))
}
