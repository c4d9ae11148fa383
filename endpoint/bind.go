package endpoint

import (
	"reflect"
	"sort"

	"github.com/broady/srapi"
	"github.com/broady/srapi/ir"
)

// Credential is the caller's API key and its tier. Tier 0 means the tier is
// unknown; gated parameters then defer enforcement to the server.
type Credential struct {
	Tier  int
	Value string
}

// BindOption configures a Bind call.
type BindOption func(*bindConfig)

type bindConfig struct {
	credential *Credential
}

// WithCredential binds with the given credential. A credential with an empty
// Value is ignored.
func WithCredential(c Credential) BindOption {
	return func(cfg *bindConfig) {
		if c.Value == "" {
			cfg.credential = nil
			return
		}
		cfg.credential = &c
	}
}

// Bind validates values against the declaration and returns a new Bound holding
// them. The operation itself is never modified, so concurrent binds of the same
// operation are independent.
//
// Optional parameters that are absent or nil are left unset. Required
// parameters must be present and truthy. A credential is required when the
// operation declares a key parameter and no key value is given, and it must
// meet the tier of the key parameter and of every gated parameter supplied.
func (o *Operation) Bind(values Values, opts ...BindOption) (*Bound, error) {
	var cfg bindConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Bound{op: o, values: make(map[string]any, len(values))}

	if o.key != nil {
		if err := b.bindKey(cfg.credential, values[o.key.name]); err != nil {
			return nil, err
		}
	} else if cfg.credential != nil {
		b.tier = cfg.credential.Tier
		b.authenticated = true
	}

	for _, p := range o.params {
		if p.key {
			continue
		}
		v, ok := values[p.name]
		if v == ir.NoValue {
			ok = false
		}
		if !p.required && (!ok || v == nil) {
			continue
		}
		if p.required {
			if !ok {
				return nil, srapi.Errorf(srapi.CodeMissingParameter, "missing required parameter %s", p.name).
					WithDetails(map[string]any{"path": o.path, "parameter": p.name})
			}
			if !truthy(v) {
				return nil, srapi.Errorf(srapi.CodeMissingParameter, "missing required value for parameter %s", p.name).
					WithDetails(map[string]any{"path": o.path, "parameter": p.name})
			}
		}
		if p.tier > 0 && (!b.authenticated || (b.tier != 0 && b.tier < p.tier)) {
			return nil, srapi.Errorf(srapi.CodeInsufficientTier,
				"missing required key tier level for %s param for the %s endpoint: expected a tier %d or above key; "+
					"pass such a key, bind with a credential or don't pass the parameter", p.name, o.path, p.tier).
				WithDetails(map[string]any{"path": o.path, "parameter": p.name, "tier": p.tier, "have": b.tier})
		}
		b.values[p.name] = v
	}

	if unknown := o.unknown(values); len(unknown) > 0 {
		name := unknown[0]
		err := srapi.Errorf(srapi.CodeUnknownParameter, "%s endpoint got an unexpected parameter %q", o.path, name).
			WithDetails(map[string]any{"path": o.path, "parameter": name})
		if guess, ok := o.suggest.Suggest(name); ok {
			err = srapi.Errorf(srapi.CodeUnknownParameter, "%s endpoint got an unexpected parameter %q; did you mean %q?",
				o.path, name, guess).WithDetails(err.Details).WithDetail("suggestion", guess)
		}
		return nil, err
	}
	return b, nil
}

func (b *Bound) bindKey(cred *Credential, inline any) error {
	key := b.op.key
	inlineKey := inline != ir.NoValue && truthy(inline)
	switch {
	case cred == nil && !inlineKey:
		return srapi.Errorf(srapi.CodeInsufficientTier,
			"missing required key for %s endpoint: pass a %q value or bind with a credential", b.op.path, key.name).
			WithDetails(map[string]any{"path": b.op.path, "parameter": key.name, "tier": key.tier})
	case cred == nil:
		// An inline key has an unknown tier.
		b.tier = 0
		b.values[key.name] = inline
	default:
		if key.tier > 0 && cred.Tier != 0 && cred.Tier < key.tier {
			return srapi.Errorf(srapi.CodeInsufficientTier,
				"missing required key tier level for %s endpoint: expected a tier %d or above key; "+
					"pass such a key as a value or bind with a credential", b.op.path, key.tier).
				WithDetails(map[string]any{"path": b.op.path, "parameter": key.name, "tier": key.tier, "have": cred.Tier})
		}
		b.tier = cred.Tier
		b.values[key.name] = cred.Value
	}
	b.authenticated = true
	return nil
}

// unknown returns the value names the operation does not declare, sorted.
func (o *Operation) unknown(values Values) []string {
	var names []string
	for name := range values {
		if _, ok := o.byName[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// truthy reports whether v counts as a supplied value: not nil, not a zero
// scalar, not an empty string or container.
func truthy(v any) bool {
	if v == nil || v == ir.NoValue {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
