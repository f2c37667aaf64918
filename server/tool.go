package server

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/felixgeelhaar/mcp-core/protocol"
	"github.com/felixgeelhaar/mcp-core/schema"
)

// Tool is a named, schema-described callable operation.
type Tool struct {
	name          string
	description   string
	inputType     reflect.Type
	inputIsPtr    bool
	inputSchema   any
	validateInput bool
	handler       any
	hasContext    bool
	annotations   *ToolAnnotations
}

// ToolInfo represents metadata about a registered tool.
type ToolInfo struct {
	Name        string
	Description string
	InputSchema any
	Annotations *ToolAnnotations
}

// ToolBuilder provides a fluent API for building tools.
type ToolBuilder struct {
	tool   *Tool
	server *Server
	err    error
}

// Description sets the tool description.
func (b *ToolBuilder) Description(desc string) *ToolBuilder {
	if b.err != nil {
		return b
	}
	b.tool.description = desc
	return b
}

// ValidateInput enables strict decoding of tool inputs: unknown fields
// are rejected before the handler is called.
func (b *ToolBuilder) ValidateInput() *ToolBuilder {
	if b.err != nil {
		return b
	}
	b.tool.validateInput = true
	return b
}

// Handler sets the tool handler and registers the tool.
// Handler signature must be one of:
//   - func(input T) (R, error)
//   - func(ctx context.Context, input T) (R, error)
//
// The handler is adapted to the protocol's JSON-input shape; its result
// and error are forwarded unchanged.
func (b *ToolBuilder) Handler(fn any) *ToolBuilder {
	if b.err != nil {
		return b
	}

	if err := b.adaptHandler(fn); err != nil {
		b.err = err
		return b
	}

	b.tool.handler = fn
	b.err = b.server.registry.registerTool(b.tool)
	return b
}

// Err returns the first error encountered while building or registering.
func (b *ToolBuilder) Err() error {
	return b.err
}

// adaptHandler validates the domain handler signature and derives the
// input type and schema the adapter needs.
func (b *ToolBuilder) adaptHandler(fn any) error {
	fnType := reflect.TypeOf(fn)

	if fnType == nil || fnType.Kind() != reflect.Func {
		return fmt.Errorf("handler must be a function, got %v", fnType)
	}

	numIn := fnType.NumIn()
	if numIn < 1 || numIn > 2 {
		return fmt.Errorf("handler must have 1 or 2 parameters, got %d", numIn)
	}

	var inputParamIdx int
	if numIn == 2 {
		if !fnType.In(0).Implements(reflect.TypeOf((*context.Context)(nil)).Elem()) {
			return fmt.Errorf("first parameter must be context.Context when using 2 parameters")
		}
		b.tool.hasContext = true
		inputParamIdx = 1
	}

	inputType := fnType.In(inputParamIdx)
	if inputType.Kind() == reflect.Ptr {
		b.tool.inputIsPtr = true
		inputType = inputType.Elem()
	}
	b.tool.inputType = inputType
	b.tool.inputSchema = schema.ForType(inputType)

	if fnType.NumOut() != 2 {
		return fmt.Errorf("handler must return (result, error), got %d return values", fnType.NumOut())
	}

	errType := reflect.TypeOf((*error)(nil)).Elem()
	if !fnType.Out(1).Implements(errType) {
		return fmt.Errorf("second return value must be error")
	}

	return nil
}

// Execute runs the tool handler with the given JSON input. The handler's
// result and error pass through unchanged; a panicking handler is not
// recovered here, that is the invocation layer's job.
func (t *Tool) Execute(ctx context.Context, input json.RawMessage) (any, error) {
	inputPtr := reflect.New(t.inputType)

	if len(input) > 0 {
		var err error
		if t.validateInput {
			err = schema.DecodeStrict(input, inputPtr.Interface())
		} else {
			err = json.Unmarshal(input, inputPtr.Interface())
		}
		if err != nil {
			return nil, protocol.NewInvalidParams(fmt.Sprintf("failed to parse input: %v", err))
		}
	}

	fnVal := reflect.ValueOf(t.handler)
	var args []reflect.Value

	if t.hasContext {
		args = append(args, reflect.ValueOf(ctx))
	}
	if t.inputIsPtr {
		args = append(args, inputPtr)
	} else {
		args = append(args, inputPtr.Elem())
	}

	results := fnVal.Call(args)

	resultVal := results[0].Interface()
	errVal := results[1].Interface()

	if errVal != nil {
		return nil, errVal.(error)
	}
	return resultVal, nil
}
