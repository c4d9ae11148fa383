// Package testutil provides assertions for srapi errors, bound operations and
// records. It imports only the packages it asserts on, so any package outside
// endpoint and model can use it from tests.
package testutil

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/broady/srapi"
	"github.com/broady/srapi/endpoint"
)

// Delete marks a key Merge removes from the base values.
var Delete = deleteMarker{}

type deleteMarker struct{}

// Merge returns a copy of base with overrides applied. An override of Delete
// removes the key, so table tests can express "everything but x".
func Merge(base map[string]any, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		if v == Delete {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// AssertCode checks that err is an *srapi.Error with the expected code and
// returns it for further checks. It stops the test when err is not an *srapi.Error.
func AssertCode(t *testing.T, err error, code srapi.ErrorCode) *srapi.Error {
	t.Helper()
	var e *srapi.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected error with code %s, got %v", code, err)
	}
	if e.Code != code {
		t.Errorf("expected error code %s, got %s (message: %s)", code, e.Code, e.Message)
	}
	return e
}

// AssertMessage checks that err's message contains substr.
func AssertMessage(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("expected error containing %q, got %q", substr, err.Error())
	}
}

// AssertDetail checks the detail stored under key.
func AssertDetail(t *testing.T, err error, key string, want any) {
	t.Helper()
	var e *srapi.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *srapi.Error, got %T", err)
	}
	if got := e.Detail(key); !reflect.DeepEqual(got, want) {
		t.Errorf("expected detail %s=%v, got %v", key, want, got)
	}
}

// AssertURL binds values to op and checks the request target.
func AssertURL(t *testing.T, op *endpoint.Operation, values map[string]any, want string, opts ...endpoint.BindOption) *endpoint.Bound {
	t.Helper()
	b, err := op.Bind(values, opts...)
	if err != nil {
		t.Fatalf("%s: bind failed: %v", op.Path(), err)
	}
	if got := b.URL(); got != want {
		t.Errorf("%s: expected URL\n%s\ngot\n%s", op.Path(), want, got)
	}
	return b
}
