package server

import (
	"context"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

// TextContent represents text content in a prompt message.
type TextContent struct {
	Type string `json:"type"` // Always "text"
	Text string `json:"text"`
}

// ImageContent represents image content in a prompt message.
type ImageContent struct {
	Type     string `json:"type"` // Always "image"
	Data     string `json:"data"` // Base64 encoded
	MimeType string `json:"mimeType"`
}

// PromptMessage represents a message in a prompt result.
type PromptMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content any    `json:"content"`
}

// PromptResult is the result of getting a prompt.
type PromptResult struct {
	Description string          `json:"description,omitempty"`
	Messages    []PromptMessage `json:"messages"`
}

// PromptArgument describes an argument for a prompt. Arguments keep
// their declaration order.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// PromptHandler is the function signature for prompt handlers.
type PromptHandler func(ctx context.Context, args map[string]string) (*PromptResult, error)

// Prompt is a named, parameterized generator of a structured message list.
type Prompt struct {
	name        string
	description string
	arguments   []PromptArgument
	handler     PromptHandler
}

// PromptInfo represents metadata about a registered prompt.
type PromptInfo struct {
	Name        string
	Description string
	Arguments   []PromptArgument
}

// PromptBuilder provides a fluent API for building prompts.
type PromptBuilder struct {
	prompt *Prompt
	server *Server
	err    error
}

// Description sets the prompt description.
func (b *PromptBuilder) Description(desc string) *PromptBuilder {
	if b.err != nil {
		return b
	}
	b.prompt.description = desc
	return b
}

// Argument adds an argument descriptor to the prompt.
func (b *PromptBuilder) Argument(name, description string, required bool) *PromptBuilder {
	if b.err != nil {
		return b
	}
	b.prompt.arguments = append(b.prompt.arguments, PromptArgument{
		Name:        name,
		Description: description,
		Required:    required,
	})
	return b
}

// Handler sets the prompt handler and registers the prompt.
func (b *PromptBuilder) Handler(fn PromptHandler) *PromptBuilder {
	if b.err != nil {
		return b
	}
	b.prompt.handler = fn
	b.err = b.server.registry.registerPrompt(b.prompt)
	return b
}

// Err returns the first error encountered while building or registering.
func (b *PromptBuilder) Err() error {
	return b.err
}

// Get executes the prompt handler with the given arguments. Missing
// required arguments produce a validation error; the handler's result
// and error are otherwise forwarded unchanged.
func (p *Prompt) Get(ctx context.Context, args map[string]string) (*PromptResult, error) {
	for _, arg := range p.arguments {
		if arg.Required {
			if args == nil || args[arg.Name] == "" {
				return nil, protocol.NewInvalidParams("missing required argument: " + arg.Name)
			}
		}
	}

	return p.handler(ctx, args)
}
