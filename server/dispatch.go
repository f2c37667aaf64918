package server

import (
	"context"
	"encoding/json"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

// Dispatch is a pure function of the current registry contents and the
// request: no state is carried between calls, and exactly one handler is
// invoked per call. Handler results and errors pass through verbatim;
// the dispatcher never reclassifies a handler's error.

// ReadResource resolves uri against the registered resources and invokes
// the matched handler. An exact URI registration always wins, even when a
// template would also match; otherwise templates are scanned in
// registration order and the first match is used.
func (s *Server) ReadResource(ctx context.Context, uri string) ([]ResourceContent, error) {
	if res, ok := s.registry.resource(uri); ok {
		return res.handler(ctx)
	}

	for _, tmpl := range s.registry.allResourceTemplates() {
		if vars, ok := tmpl.matcher.match(uri); ok {
			return tmpl.handler(ctx, uri, vars)
		}
	}

	return nil, protocol.NewNotFound("resource not found: " + uri)
}

// CallTool invokes the named tool with raw JSON input.
func (s *Server) CallTool(ctx context.Context, name string, input json.RawMessage) (any, error) {
	tool, ok := s.registry.tool(name)
	if !ok {
		return nil, protocol.NewNotFound("tool not found: " + name)
	}
	return tool.Execute(ctx, input)
}

// GetPrompt renders the named prompt with the given arguments.
func (s *Server) GetPrompt(ctx context.Context, name string, args map[string]string) (*PromptResult, error) {
	prompt, ok := s.registry.prompt(name)
	if !ok {
		return nil, protocol.NewNotFound("prompt not found: " + name)
	}
	return prompt.Get(ctx, args)
}
