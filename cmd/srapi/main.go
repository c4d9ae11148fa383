// Command srapi inspects the Some Random API operations: it renders request
// targets, lists declarations and exports them as OpenAPI.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/bndr/gotabulate"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/broady/srapi"
	"github.com/broady/srapi/api"
	"github.com/broady/srapi/endpoint"
)

type CLI struct {
	Catalog string `help:"YAML file of additional operation declarations." type:"existingfile" short:"c"`
	Verbose bool   `help:"Log debug output." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	URL     URLCmd     `cmd:"" name:"url" help:"Print the request target of an operation."`
	Ops     OpsCmd     `cmd:"" help:"List operations and their parameters."`
	OpenAPI OpenAPICmd `cmd:"" name:"openapi" help:"Print the operations as an OpenAPI document."`
}

// env is what commands run against.
type env struct {
	stdout  io.Writer
	logger  *slog.Logger
	catalog *endpoint.Catalog
}

type VersionCmd struct{}

func (c *VersionCmd) Run(e *env) error {
	fmt.Fprintln(e.stdout, "srapi", Version())
	return nil
}

type URLCmd struct {
	Path   string   `arg:"" help:"Operation path, such as canvas/misc/tweet."`
	Values []string `arg:"" optional:"" help:"Parameter values as name=value."`
	Key    string   `help:"API key." env:"SRAPI_KEY"`
	Tier   int      `help:"Tier of the API key, 0 if unknown." env:"SRAPI_TIER"`
	Full   bool     `help:"Prefix the service base URL." short:"f"`
}

func (c *URLCmd) Run(e *env) error {
	op, err := e.catalog.Resolve(c.Path)
	if err != nil {
		return err
	}
	values := make(endpoint.Values, len(c.Values))
	for _, kv := range c.Values {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return srapi.Errorf(srapi.CodeInvalidArgument, "expected name=value, got %q", kv)
		}
		values[k] = v
	}
	b, err := op.Bind(values, endpoint.WithCredential(endpoint.Credential{Tier: c.Tier, Value: c.Key}))
	if err != nil {
		return err
	}
	e.logger.Debug("bound operation",
		slog.String("path", op.Path()),
		slog.Int("tier", b.Tier()),
		slog.Int("values", len(b.Values())))

	target := b.URL()
	if c.Full {
		target = api.BaseURL + target
	}
	fmt.Fprintln(e.stdout, target)
	return nil
}

type OpsCmd struct {
	Prefix string `arg:"" optional:"" help:"Only list operations under this path prefix."`
	Table  bool   `help:"Render a table with parameter docs." short:"t"`
}

func (c *OpsCmd) Run(e *env) error {
	var ops []*endpoint.Operation
	for _, op := range e.catalog.Operations() {
		if strings.HasPrefix(op.Path(), c.Prefix) {
			ops = append(ops, op)
		}
	}
	if !c.Table {
		for _, op := range ops {
			fmt.Fprintln(e.stdout, strings.TrimSpace(op.Path()+" "+endpoint.Describe(op)))
		}
		return nil
	}
	if len(ops) == 0 {
		return nil
	}

	var rows [][]any
	for _, op := range ops {
		params := op.Parameters()
		if len(params) == 0 {
			rows = append(rows, []any{op.Path(), "", "", ""})
			continue
		}
		for i, p := range params {
			path := ""
			if i == 0 {
				path = op.Path()
			}
			rows = append(rows, []any{path, p.Name(), required(p), p.Doc()})
		}
	}
	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"Operation", "Parameter", "Required", "Doc"})
	t.SetAlign("left")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(60)
	fmt.Fprint(e.stdout, t.Render("grid"))
	return nil
}

func required(p *endpoint.Parameter) string {
	switch {
	case p.IsKey():
		return fmt.Sprintf("key, tier %d", p.Tier())
	case p.Tier() > 0:
		return fmt.Sprintf("tier %d", p.Tier())
	case p.Required():
		return "yes"
	}
	return "no"
}

type OpenAPICmd struct {
	Title string `help:"Document title." default:"Some Random API"`
	YAML  bool   `help:"Print YAML instead of JSON." name:"yaml"`
}

func (c *OpenAPICmd) Run(e *env) error {
	doc, err := e.catalog.OpenAPI(c.Title, Version())
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if c.YAML {
		if out, err = yaml.JSONToYAML(out); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(e.stdout, strings.TrimSpace(string(out)))
	return err
}

func (cli *CLI) env(stdout, stderr io.Writer) (*env, error) {
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	catalog := api.Catalog(logger)
	if cli.Catalog != "" {
		f, err := os.Open(cli.Catalog)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := catalog.Load(f); err != nil {
			return nil, fmt.Errorf("%s: %w", cli.Catalog, err)
		}
	}
	return &env{stdout: stdout, logger: logger, catalog: catalog}, nil
}

// run executes the command line and returns the exit code.
func run(args []string, stdout, stderr io.Writer) (code int) {
	cli := &CLI{}
	exited := false
	parser, err := kong.New(cli,
		kong.Name("srapi"),
		kong.Description("Inspect Some Random API operations and request targets."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) {
			exited = true
			code = c
		}),
	)
	if err != nil {
		fail(stderr, err)
		return 1
	}
	ctx, err := parser.Parse(args)
	if exited {
		return code
	}
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}
	e, err := cli.env(stdout, stderr)
	if err == nil {
		err = ctx.Run(e)
	}
	if err != nil {
		fail(stderr, err)
		return 1
	}
	return 0
}

// fail prints err, in red when stderr is a terminal.
func fail(w io.Writer, err error) {
	msg := err.Error()
	if e, ok := err.(*srapi.Error); ok {
		msg = e.Message
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		c := color.New(color.FgRed, color.Bold)
		c.EnableColor()
		c.Fprint(w, "error: ")
		fmt.Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, "error:", msg)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
