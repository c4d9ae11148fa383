// Package endpoint declares API operations and binds call values to them.
//
// An Operation is a path plus ordered parameter declarations. Operations are
// declared once at package scope and shared; Bind validates a call's values
// against the declaration and returns an independent Bound that renders the
// request target:
//
//	var Welcome = endpoint.New("welcome",
//		endpoint.Param("template", endpoint.Positional(0)),
//		endpoint.Param("username"),
//	)
//
//	b, err := Welcome.Bind(endpoint.Values{"template": 3, "username": "ana"})
//	b.URL() // welcome/3?username=ana
package endpoint

// Values maps parameter names to call values.
type Values = map[string]any

// Parameter describes one argument of an Operation. Parameters are immutable;
// call values are held by Bound, never by the declaration.
type Parameter struct {
	name       string
	required   bool
	doc        string
	positional bool
	index      int
	tier       int
	key        bool
}

// ParamOption configures a Parameter.
type ParamOption func(*Parameter)

// Param declares a parameter. Parameters are required unless Optional is given.
func Param(name string, opts ...ParamOption) *Parameter {
	p := &Parameter{name: name, required: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Optional marks the parameter as optional.
func Optional() ParamOption {
	return func(p *Parameter) { p.required = false }
}

// Doc attaches free-form documentation, such as "max 15 characters".
func Doc(text string) ParamOption {
	return func(p *Parameter) { p.doc = text }
}

// Positional substitutes the value into the path as a segment instead of
// sending it in the query string. Segments are ordered by index.
func Positional(index int) ParamOption {
	return func(p *Parameter) {
		p.positional = true
		p.index = index
	}
}

// Tier sets the minimum credential tier needed to supply the parameter.
// On the key parameter it is the minimum tier for the whole operation.
func Tier(n int) ParamOption {
	return func(p *Parameter) { p.tier = n }
}

// Key marks the parameter as carrying the credential. Its value comes from
// the bound credential, or from the call values when no credential is bound.
func Key() ParamOption {
	return func(p *Parameter) { p.key = true }
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Required reports whether the parameter must be supplied.
func (p *Parameter) Required() bool { return p.required }

// Doc returns the documentation text.
func (p *Parameter) Doc() string { return p.doc }

// Positional returns the segment index and whether the parameter is positional.
func (p *Parameter) Positional() (int, bool) { return p.index, p.positional }

// Tier returns the minimum credential tier, 0 when the parameter is not gated.
func (p *Parameter) Tier() int { return p.tier }

// IsKey reports whether the parameter carries the credential.
func (p *Parameter) IsKey() bool { return p.key }
