package model

import (
	"fmt"
	"sort"

	"github.com/broady/srapi"
	"github.com/broady/srapi/internal/humanize"
	"github.com/broady/srapi/ir"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
)

// rule is a cross-field check compiled against a type's attribute names.
type rule struct {
	source  string
	message string
	program *vm.Program
}

// compileRule compiles source without a typed environment, so attributes are
// dynamically typed and may be passed to builtins or used in arithmetic. Names
// are checked against the attributes separately.
func compileRule(typeName string, attrs []*Attribute, source, message string) (*rule, error) {
	tree, err := parser.Parse(source)
	if err != nil {
		return nil, srapi.Errorf(srapi.CodeConfiguration, "%s: invalid rule %q: %v", typeName, source, err)
	}
	known := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		known[a.name] = true
	}
	names := &ruleNames{seen: map[string]bool{}, locals: map[string]bool{}}
	ast.Walk(&tree.Node, names)
	var unknown []string
	for _, name := range names.idents {
		if !known[name] && !names.locals[name] {
			unknown = append(unknown, fmt.Sprintf("'%s'", name))
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, srapi.Errorf(srapi.CodeConfiguration, "%s: invalid rule %q: unknown attribute %s",
			typeName, source, humanize.Join(unknown, ", ", " and "))
	}

	program, err := expr.Compile(source, expr.AsBool())
	if err != nil {
		return nil, srapi.Errorf(srapi.CodeConfiguration, "%s: invalid rule %q: %v", typeName, source, err)
	}
	if message == "" {
		message = "rule " + source + " does not hold"
	}
	return &rule{source: source, message: message, program: program}, nil
}

// ruleNames collects the identifiers a rule reads and the variables it declares.
type ruleNames struct {
	idents []string
	seen   map[string]bool
	locals map[string]bool
}

func (v *ruleNames) Visit(node *ast.Node) {
	switch n := (*node).(type) {
	case *ast.IdentifierNode:
		if n.Value != "$env" && !v.seen[n.Value] {
			v.seen[n.Value] = true
			v.idents = append(v.idents, n.Value)
		}
	case *ast.VariableDeclaratorNode:
		v.locals[n.Name] = true
	}
}

// eval runs the rule against r. Enum and named scalar values are seen as their
// primitives, so rules compare them with plain literals.
func (ru *rule) eval(r *Record) error {
	env := make(map[string]any, len(r.typ.attrs))
	for _, a := range r.typ.attrs {
		v := r.Get(a.name)
		if v == NoValue {
			v = nil
		}
		env[a.name] = ir.PrimitiveOf(v)
	}
	out, err := expr.Run(ru.program, env)
	if err != nil {
		return srapi.Errorf(srapi.CodeInvalidValue, "%s: rule %q failed: %v", r.typ.name, ru.source, err).
			WithDetails(map[string]any{"record": r.typ.name, "rule": ru.source})
	}
	if ok, _ := out.(bool); !ok {
		return srapi.Errorf(srapi.CodeInvalidValue, "%s: %s", r.typ.name, ru.message).
			WithDetails(map[string]any{"record": r.typ.name, "rule": ru.source})
	}
	return nil
}
