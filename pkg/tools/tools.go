// Package tools exposes query and summary operations over cached updates as named tools
// with JSON input schemas. Unified tools validate their input strictly, the older
// single-purpose tools clamp numeric arguments into range instead.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"

	"github.com/umputun/azupdates/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . UpdatesProvider

// ServiceName is reported by ping
const ServiceName = "azure-updates-mcp"

// ErrUnknownTool is returned when calling a tool that is not registered
var ErrUnknownTool = errors.New("unknown tool")

// UpdatesProvider returns cached updates, newest first
type UpdatesProvider interface {
	Updates(ctx context.Context) ([]domain.Update, error)
}

// Tool describes a registered tool
type Tool struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// InputError reports tool arguments that could not be decoded or failed validation
type InputError struct {
	Tool   string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, e.Reason)
}

type handlerFunc func(ctx context.Context, args json.RawMessage) (any, error)

type entry struct {
	tool    Tool
	handler handlerFunc
}

// Service holds the registered tools
type Service struct {
	provider UpdatesProvider
	validate *validator.Validate
	now      func() time.Time
	entries  []entry
	index    map[string]int
}

// NewService makes a service with all tools registered
func NewService(provider UpdatesProvider) *Service {
	v := validator.New()
	// report json names of failed fields
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	s := &Service{provider: provider, validate: v, now: time.Now, index: map[string]int{}}
	s.registerAll()
	return s
}

// Tools returns all registered tools in registration order
func (s *Service) Tools() []Tool {
	res := make([]Tool, 0, len(s.entries))
	for _, e := range s.entries {
		res = append(res, e.tool)
	}
	return res
}

// Call runs the named tool with raw JSON arguments
func (s *Service) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return s.entries[i].handler(ctx, args)
}

func (s *Service) register(tool Tool, h handlerFunc) {
	s.index[tool.Name] = len(s.entries)
	s.entries = append(s.entries, entry{tool: tool, handler: h})
}

// typed wraps a tool function with argument decoding and validation
func typed[T any](s *Service, name string, fn func(ctx context.Context, in T) (any, error)) handlerFunc {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		var in T
		if len(args) > 0 && string(args) != "null" {
			if err := json.Unmarshal(args, &in); err != nil {
				return nil, &InputError{Tool: name, Reason: err.Error()}
			}
		}
		if err := s.validate.Struct(in); err != nil {
			return nil, &InputError{Tool: name, Reason: validationReason(err)}
		}
		return fn(ctx, in)
	}
}

// validationReason renders validator errors as "field: rule" list
func validationReason(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), rule))
	}
	return strings.Join(parts, ", ")
}

// inputSchema reflects an input struct into an inline object schema
func inputSchema(v any) *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true, Anonymous: true}
	schema := r.Reflect(v)
	schema.Version = ""
	return schema
}

// fetchFailure is the message reported when the upstream feed is unavailable
func fetchFailure(err error) string {
	return fmt.Sprintf("Failed to fetch Azure updates: %v", err)
}
