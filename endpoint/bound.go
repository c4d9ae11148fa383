package endpoint

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/broady/srapi/ir"
)

// Bound is an operation with validated call values. It is owned by the caller
// that bound it.
type Bound struct {
	op            *Operation
	values        map[string]any
	tier          int
	authenticated bool
}

// Operation returns the declaration the values were bound to.
func (b *Bound) Operation() *Operation { return b.op }

// Path returns the declared path, without positional segments or query.
func (b *Bound) Path() string { return b.op.path }

// Value returns the bound value of the named parameter.
func (b *Bound) Value(name string) (any, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Values returns a copy of the bound values.
func (b *Bound) Values() Values {
	out := make(Values, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}

// Tier returns the credential tier used for the bind, 0 when unknown.
func (b *Bound) Tier() int { return b.tier }

// URL returns the request target: the path, then positional values as path
// segments in index order, then the remaining non-nil values as a query string
// in declaration order. Equal bound values always produce the same string.
func (b *Bound) URL() string {
	var (
		positional []*Parameter
		query      []string
	)
	for _, p := range b.op.params {
		v, ok := b.values[p.name]
		if !ok || v == nil {
			continue
		}
		if p.positional {
			positional = append(positional, p)
			continue
		}
		query = append(query, url.QueryEscape(p.name)+"="+url.QueryEscape(FormatValue(v)))
	}
	sort.SliceStable(positional, func(i, j int) bool { return positional[i].index < positional[j].index })

	var sb strings.Builder
	sb.WriteString(b.op.path)
	if len(positional) > 0 {
		path := sb.String()
		sb.Reset()
		sb.WriteString(strings.TrimSuffix(path, "/"))
		for _, p := range positional {
			sb.WriteByte('/')
			sb.WriteString(url.PathEscape(FormatValue(b.values[p.name])))
		}
	}
	if len(query) > 0 {
		sb.WriteByte('?')
		sb.WriteString(strings.Join(query, "&"))
	}
	return sb.String()
}

func (b *Bound) String() string { return b.URL() }

// FormatValue renders a bound value as it appears on the wire: enums as their
// primitive, fmt.Stringer values via String, scalars in their Go literal form.
func FormatValue(v any) string {
	if e, ok := v.(ir.EnumValue); ok {
		v = e.Primitive()
	}
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(ir.PrimitiveOf(v))
}
