package endpoint

import (
	"context"
	"sort"
	"strings"

	"github.com/broady/srapi"
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI describes the catalog as an OpenAPI 3 document with one GET
// operation per registered operation. Positional parameters become path
// parameters, in index order; the rest are query parameters. Gated
// parameters carry their minimum tier in the x-key-tier extension.
func (c *Catalog) OpenAPI(title, version string) (*openapi3.T, error) {
	if title == "" || version == "" {
		return nil, srapi.NewError(srapi.CodeInvalidArgument, "openapi document needs a title and a version")
	}
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: title, Version: version},
		Paths:   openapi3.NewPaths(),
	}
	for _, op := range c.Operations() {
		template, item := pathItem(op)
		doc.Paths.Set(template, item)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, srapi.Errorf(srapi.CodeConfiguration, "invalid openapi document: %v", err)
	}
	return doc, nil
}

func pathItem(op *Operation) (string, *openapi3.PathItem) {
	oper := openapi3.NewOperation()
	oper.OperationID = operationID(op.path)
	oper.Summary = op.path

	positional := make([]*Parameter, 0)
	for _, p := range op.params {
		if p.positional {
			positional = append(positional, p)
			continue
		}
		param := openapi3.NewQueryParameter(p.name).
			WithRequired(p.required).
			WithSchema(openapi3.NewStringSchema())
		if p.doc != "" {
			param = param.WithDescription(p.doc)
		}
		extend(param, p)
		oper.AddParameter(param)
	}
	sort.SliceStable(positional, func(i, j int) bool { return positional[i].index < positional[j].index })

	template := "/" + strings.TrimSuffix(op.path, "/")
	for _, p := range positional {
		template += "/{" + p.name + "}"
		param := openapi3.NewPathParameter(p.name).WithSchema(openapi3.NewStringSchema())
		if p.doc != "" {
			param = param.WithDescription(p.doc)
		}
		extend(param, p)
		oper.AddParameter(param)
	}

	responses := openapi3.NewResponses()
	responses.Set("200", &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Successful response")})
	oper.Responses = responses

	return template, &openapi3.PathItem{Get: oper}
}

func extend(param *openapi3.Parameter, p *Parameter) {
	if p.tier == 0 && !p.key {
		return
	}
	param.Extensions = make(map[string]any)
	if p.tier > 0 {
		param.Extensions["x-key-tier"] = p.tier
	}
	if p.key {
		param.Extensions["x-credential"] = true
	}
}

// operationID turns "canvas/misc/youtube-comment" into "canvasMiscYoutubeComment".
func operationID(path string) string {
	fields := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '-' || r == '_'
	})
	if len(fields) == 0 {
		return "root"
	}
	var sb strings.Builder
	for i, f := range fields {
		if i == 0 {
			sb.WriteString(f)
			continue
		}
		sb.WriteString(strings.ToUpper(f[:1]) + f[1:])
	}
	return sb.String()
}
