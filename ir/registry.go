package ir

import (
	"sort"
	"sync"

	"github.com/broady/srapi"
)

// Registry maps names to descriptors for ReferenceDescriptor lookups.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]TypeDescriptor
}

// Default is the registry used by Ref.
var Default = NewRegistry()

// NewRegistry returns a registry that already knows the primitive names
// ("bool", "string", "int", "uint", "float", "bytes", "time", "duration", "any", "nil").
func NewRegistry() *Registry {
	return &Registry{
		types: map[string]TypeDescriptor{
			"bool":     Bool(),
			"string":   String(),
			"int":      Int(0),
			"uint":     Uint(0),
			"float":    Float(0),
			"bytes":    Bytes(),
			"time":     Time(),
			"duration": Duration(),
			"any":      Any(),
			"nil":      Null(),
		},
	}
}

// Register adds desc under name. Registering a name twice is a configuration error.
func (r *Registry) Register(name string, desc TypeDescriptor) error {
	if name == "" {
		return srapi.NewError(srapi.CodeConfiguration, "cannot register a type without a name")
	}
	if desc == nil {
		return srapi.Errorf(srapi.CodeConfiguration, "cannot register nil descriptor for %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[name]; exists {
		return srapi.Errorf(srapi.CodeConfiguration, "type %q is already registered", name).
			WithDetail("type", name)
	}
	r.types[name] = desc
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, desc TypeDescriptor) {
	if err := r.Register(name, desc); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.types[name]
	return d, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
