package endpoint

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/broady/srapi"
	"github.com/broady/srapi/internal/fuzzy"
	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-version"
)

// Catalog indexes operations by full path. It is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	ops    map[string]*Operation
	logger *slog.Logger
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{ops: make(map[string]*Operation)}
}

// WithLogger sets a custom logger for the catalog.
// If not set, slog.Default() will be used.
func (c *Catalog) WithLogger(logger *slog.Logger) *Catalog {
	c.logger = logger
	return c
}

func (c *Catalog) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// Register adds operations to the catalog. An operation whose path is already
// registered replaces the previous one with a warning.
func (c *Catalog) Register(ops ...*Operation) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, op := range ops {
		if _, exists := c.ops[op.path]; exists {
			c.log().Warn("duplicate operation registration",
				slog.String("path", op.path))
		}
		c.ops[op.path] = op
	}
	return c
}

// Lookup returns the operation registered under path.
func (c *Catalog) Lookup(path string) (*Operation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	op, ok := c.ops[path]
	return op, ok
}

// Operations returns all operations sorted by path.
func (c *Catalog) Operations() []*Operation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Operation, 0, len(c.ops))
	for _, op := range c.ops {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].path < out[j].path })
	return out
}

// Len returns the number of registered operations.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ops)
}

// Suggest returns the registered path closest to path.
func (c *Catalog) Suggest(path string) (string, bool) {
	ops := c.Operations()
	paths := make([]string, len(ops))
	for i, op := range ops {
		paths[i] = op.path
	}
	return fuzzy.Closest(path, paths, fuzzy.DefaultCutoff)
}

// Resolve looks up path and reports a missing operation as an error that
// suggests the closest registered path.
func (c *Catalog) Resolve(path string) (*Operation, error) {
	if op, ok := c.Lookup(path); ok {
		return op, nil
	}
	err := srapi.Errorf(srapi.CodeInvalidArgument, "unknown operation %q", path).WithDetail("path", path)
	if guess, ok := c.Suggest(path); ok {
		err = srapi.Errorf(srapi.CodeInvalidArgument, "unknown operation %q; did you mean %q?", path, guess).
			WithDetails(map[string]any{"path": path, "suggestion": guess})
	}
	return nil, err
}

// catalogFile is the YAML form of a catalog.
type catalogFile struct {
	// Requires constrains the srapi versions the file is written for, such as ">= 0.1, < 1.0".
	Requires   string          `yaml:"requires"`
	Operations []operationFile `yaml:"operations"`
}

type operationFile struct {
	Path   string          `yaml:"path"`
	Params []parameterFile `yaml:"params"`
}

type parameterFile struct {
	Name       string `yaml:"name"`
	Required   *bool  `yaml:"required"`
	Doc        string `yaml:"doc"`
	Positional bool   `yaml:"positional"`
	Index      int    `yaml:"index"`
	Tier       int    `yaml:"tier"`
	Key        bool   `yaml:"key"`
}

// LoadCatalog reads a catalog from YAML:
//
//	requires: ">= 0.1"
//	operations:
//	  - path: welcome
//	    params:
//	      - {name: template, positional: true, index: 0}
//	      - {name: username, doc: max 15 characters}
//	      - {name: key, key: true, tier: 1}
//	      - {name: font, required: false}
//
// Parameters are required unless required is false.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	c := NewCatalog()
	if err := c.Load(r); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads YAML declarations from r and registers them. Nothing is registered
// when any declaration is invalid.
func (c *Catalog) Load(r io.Reader) error {
	var file catalogFile
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&file); err != nil {
		if err == io.EOF {
			return nil
		}
		return srapi.Errorf(srapi.CodeConfiguration, "failed to decode catalog: %v", err)
	}
	if err := checkRequires(file.Requires); err != nil {
		return err
	}
	ops := make([]*Operation, 0, len(file.Operations))
	for i, of := range file.Operations {
		if of.Path == "" {
			return srapi.Errorf(srapi.CodeConfiguration, "catalog operation %d has no path", i)
		}
		params := make([]*Parameter, 0, len(of.Params))
		for _, pf := range of.Params {
			params = append(params, pf.parameter())
		}
		op, err := Declare(of.Path, params...)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}
	c.Register(ops...)
	c.log().Debug("catalog loaded", slog.Int("operations", len(ops)))
	return nil
}

func checkRequires(requires string) error {
	if requires == "" {
		return nil
	}
	constraints, err := version.NewConstraint(requires)
	if err != nil {
		return srapi.Errorf(srapi.CodeConfiguration, "invalid catalog requires %q: %v", requires, err)
	}
	if !constraints.Check(version.Must(version.NewVersion(srapi.Version))) {
		return srapi.Errorf(srapi.CodeConfiguration, "catalog requires srapi %s, have %s", requires, srapi.Version).
			WithDetails(map[string]any{"requires": requires, "version": srapi.Version})
	}
	return nil
}

func (pf parameterFile) parameter() *Parameter {
	var opts []ParamOption
	if pf.Required != nil && !*pf.Required {
		opts = append(opts, Optional())
	}
	if pf.Doc != "" {
		opts = append(opts, Doc(pf.Doc))
	}
	if pf.Positional {
		opts = append(opts, Positional(pf.Index))
	}
	if pf.Tier != 0 {
		opts = append(opts, Tier(pf.Tier))
	}
	if pf.Key {
		opts = append(opts, Key())
	}
	return Param(pf.Name, opts...)
}

// Describe renders a one-line summary of op's parameters for listings:
// "template(0) username [font] key(tier 1)".
func Describe(op *Operation) string {
	parts := make([]string, len(op.params))
	for i, p := range op.params {
		name := p.name
		if p.positional {
			name = fmt.Sprintf("%s(%d)", name, p.index)
		}
		if p.tier > 0 {
			name = fmt.Sprintf("%s(tier %d)", name, p.tier)
		}
		if !p.required {
			name = "[" + name + "]"
		}
		parts[i] = name
	}
	return strings.Join(parts, " ")
}
