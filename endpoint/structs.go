package endpoint

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/broady/srapi"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var (
	validate      = validator.New()
	schemaEncoder = schema.NewEncoder()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// BindStruct validates v with its `validate` tags, encodes it with its `schema`
// tags and binds the result. Use `schema:"name,omitempty"` for optional
// parameters so zero values stay unset.
//
//	type tweetParams struct {
//		Username string `schema:"username" validate:"required,max=15"`
//		Likes    int    `schema:"likes,omitempty" validate:"gte=0"`
//	}
func (o *Operation) BindStruct(v any, opts ...BindOption) (*Bound, error) {
	if err := validate.Struct(v); err != nil {
		return nil, validationError(err)
	}
	form := url.Values{}
	if err := schemaEncoder.Encode(v, form); err != nil {
		return nil, srapi.Errorf(srapi.CodeInvalidArgument, "failed to encode parameters: %v", err)
	}
	values := make(Values, len(form))
	for name, vs := range form {
		switch len(vs) {
		case 0:
		case 1:
			values[name] = vs[0]
		default:
			values[name] = strings.Join(vs, ",")
		}
	}
	return o.Bind(values, opts...)
}

// Decode stores the bound values into the struct pointed to by dst, matching
// parameter names against `schema` tags. Names dst does not declare are ignored.
func (b *Bound) Decode(dst any) error {
	form := make(url.Values, len(b.values))
	for name, v := range b.values {
		if v == nil {
			continue
		}
		form.Set(name, FormatValue(v))
	}
	if err := schemaDecoder.Decode(dst, form); err != nil {
		return srapi.Errorf(srapi.CodeInvalidArgument, "failed to decode bound values: %v", err)
	}
	return nil
}

func validationError(err error) error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return srapi.Errorf(srapi.CodeConfiguration, "cannot validate parameters: %v", err)
	}
	details := make(map[string]any, len(valErrs))
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msg := formatValidationError(ve)
		details[ve.Field()] = msg
		messages = append(messages, ve.Field()+": "+msg)
	}
	return &srapi.Error{
		Code:    srapi.CodeInvalidValue,
		Message: strings.Join(messages, "; "),
		Details: details,
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", ve.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", ve.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", ve.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "url":
		return "must be a valid URL"
	case "hexcolor":
		return "must be a hex colour"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
