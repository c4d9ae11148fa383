package endpoint

import (
	"github.com/broady/srapi"
	"github.com/broady/srapi/internal/fuzzy"
)

// Operation is a declared API action: a path and its parameters.
// Operations are read-only after declaration and safe to share.
type Operation struct {
	path    string
	params  []*Parameter
	byName  map[string]*Parameter
	key     *Parameter
	suggest *fuzzy.Suggester
}

// Declare validates and returns an operation. Duplicate parameter names, two
// positional parameters sharing an index and more than one key parameter are
// configuration errors.
func Declare(path string, params ...*Parameter) (*Operation, error) {
	op := &Operation{
		path:   path,
		params: make([]*Parameter, 0, len(params)),
		byName: make(map[string]*Parameter, len(params)),
	}
	positions := make(map[int]string)
	names := make([]string, 0, len(params))
	for _, p := range params {
		if p == nil || p.name == "" {
			return nil, srapi.Errorf(srapi.CodeConfiguration, "operation %q: parameter without a name", path)
		}
		if _, dup := op.byName[p.name]; dup {
			return nil, srapi.Errorf(srapi.CodeConfiguration, "operation %q: duplicate parameter %q", path, p.name)
		}
		if p.positional {
			if p.index < 0 {
				return nil, srapi.Errorf(srapi.CodeConfiguration, "operation %q: parameter %q has negative index %d", path, p.name, p.index)
			}
			if other, taken := positions[p.index]; taken {
				return nil, srapi.Errorf(srapi.CodeConfiguration,
					"operation %q: parameters %q and %q share positional index %d", path, other, p.name, p.index)
			}
			positions[p.index] = p.name
		}
		if p.key {
			if op.key != nil {
				return nil, srapi.Errorf(srapi.CodeConfiguration,
					"operation %q: more than one key parameter (%q, %q)", path, op.key.name, p.name)
			}
			if p.positional {
				return nil, srapi.Errorf(srapi.CodeConfiguration, "operation %q: key parameter %q cannot be positional", path, p.name)
			}
			op.key = p
		}
		op.params = append(op.params, p)
		op.byName[p.name] = p
		names = append(names, p.name)
	}
	op.suggest = fuzzy.NewSuggester(names)
	return op, nil
}

// New is like Declare but panics on a declaration error.
// It is meant for package-level operation variables.
func New(path string, params ...*Parameter) *Operation {
	op, err := Declare(path, params...)
	if err != nil {
		panic(err)
	}
	return op
}

// Path returns the full path, including any group base.
func (o *Operation) Path() string { return o.path }

// Parameters returns the parameters in declaration order.
func (o *Operation) Parameters() []*Parameter {
	out := make([]*Parameter, len(o.params))
	copy(out, o.params)
	return out
}

// Parameter returns the named parameter.
func (o *Operation) Parameter(name string) (*Parameter, bool) {
	p, ok := o.byName[name]
	return p, ok
}

// KeyParameter returns the credential-carrying parameter, if declared.
func (o *Operation) KeyParameter() (*Parameter, bool) {
	return o.key, o.key != nil
}

func (o *Operation) String() string { return o.path }

// Group prefixes the paths of the operations it declares with Base,
// such as "canvas/misc/".
type Group struct {
	Base string
}

// New declares an operation under the group base. It panics on a declaration error.
func (g Group) New(path string, params ...*Parameter) *Operation {
	return New(g.Base+path, params...)
}

// Declare is like New but returns declaration errors.
func (g Group) Declare(path string, params ...*Parameter) (*Operation, error) {
	return Declare(g.Base+path, params...)
}
