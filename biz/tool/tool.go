// Package tool holds the provider registry and the transport-neutral
// Tool type. Argument schemas are generated from Go structs and every
// call is schema-validated before the handler runs; failures become
// speakable results, never transport faults.
package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	invopop "github.com/invopop/jsonschema"
	"github.com/odit-bit/bizclock/biz/faults"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// Result is the outcome of a tool call. IsError marks a spoken failure;
// the transport still answers with a normal tool result.
type Result struct {
	Text    string `json:"text"`
	Data    any    `json:"data,omitempty"`
	IsError bool   `json:"isError,omitempty"`
}

func Errorf(format string, args ...any) *Result {
	return &Result{Text: fmt.Sprintf(format, args...), IsError: true}
}

// Handler runs a tool against already schema-validated arguments.
type Handler func(ctx context.Context, args map[string]any) (*Result, error)

// Tool binds a name, an argument schema, and a handler.
type Tool struct {
	Name        string
	Description string

	schemaJSON json.RawMessage
	compiled   *jsonschema.Schema
	handler    Handler
}

// New builds a Tool whose argument schema is reflected from the args
// prototype struct and compiled for validation.
func New(name, description string, args any, h Handler) (*Tool, error) {
	if h == nil {
		return nil, fmt.Errorf("tool %s: nil handler", name)
	}

	r := invopop.Reflector{Anonymous: true, DoNotReference: true, ExpandedStruct: true}
	raw, err := json.Marshal(r.Reflect(args))
	if err != nil {
		return nil, fmt.Errorf("tool %s: marshal schema: %w", name, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("tool %s: reload schema: %w", name, err)
	}
	compiler := jsonschema.NewCompiler()
	resource := name + ".schema.json"
	if err := compiler.AddResource(resource, doc); err != nil {
		return nil, fmt.Errorf("tool %s: add schema: %w", name, err)
	}
	compiled, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("tool %s: compile schema: %w", name, err)
	}

	return &Tool{
		Name:        name,
		Description: description,
		schemaJSON:  raw,
		compiled:    compiled,
		handler:     h,
	}, nil
}

// Schema returns the JSON schema of the tool's arguments.
func (t *Tool) Schema() json.RawMessage {
	return t.schemaJSON
}

// Call validates args and runs the handler. Validation and timezone
// failures surface as results embedding the error text; anything else
// becomes a generic apology. The consumer is a voice agent that must
// always have something to say.
func (t *Tool) Call(ctx context.Context, args map[string]any) *Result {
	if args == nil {
		args = map[string]any{}
	}
	if err := t.compiled.Validate(args); err != nil {
		return Errorf("I'm sorry, I couldn't understand that request: %v", err)
	}

	res, err := t.handler(ctx, args)
	if err == nil {
		return res
	}

	var verr *faults.ValidationError
	var terr *faults.TimezoneError
	switch {
	case errors.As(err, &verr), errors.As(err, &terr):
		return Errorf("I'm sorry, I couldn't look that up: %v", err)
	default:
		slog.Error("tool call failed", "tool", t.Name, "error", err)
		return Errorf("I'm sorry, something went wrong while looking that up. Please try again.")
	}
}
