// Package mcp provides a framework for building MCP (Model Context Protocol) servers.
//
// mcp-core focuses on the registration and dispatch core of an MCP server:
//   - Typed tool handlers with automatic JSON Schema generation
//   - Exact resources and RFC 6570 Level 1 resource templates
//   - Prompts with declared arguments
//   - list_changed notifications bridged to the bound transport
//   - Middleware chains and pluggable transports (stdio, WebSocket)
//
// Basic usage:
//
//	srv := mcp.NewServer(mcp.ServerInfo{
//	    Name:    "my-server",
//	    Version: "1.0.0",
//	})
//
//	type SearchInput struct {
//	    Query string `json:"query" jsonschema:"required"`
//	}
//
//	srv.Tool("search").
//	    Description("Search for items").
//	    Handler(func(ctx context.Context, input SearchInput) ([]string, error) {
//	        return []string{"result1", "result2"}, nil
//	    })
//
//	mcp.ServeStdio(ctx, srv)
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/felixgeelhaar/mcp-core/middleware"
	"github.com/felixgeelhaar/mcp-core/protocol"
	"github.com/felixgeelhaar/mcp-core/server"
	"github.com/felixgeelhaar/mcp-core/transport"
)

// Re-export core types for convenience

// ServerInfo contains server metadata exposed to clients.
type ServerInfo = server.Info

// Capabilities declares what features the server supports.
type Capabilities = server.Capabilities

// Server is the MCP server instance.
type Server = server.Server

// Option configures a Server.
type Option = server.Option

// Annotation types
type ToolAnnotations = server.ToolAnnotations
type ContentAnnotations = server.ContentAnnotations
type Safety = server.Safety

// Bool returns a pointer to v, for optional annotation hints.
var Bool = server.Bool

// Float returns a pointer to v, for optional annotation hints.
var Float = server.Float

// Resource types
type ResourceContent = server.ResourceContent
type ResourceInfo = server.ResourceInfo
type ResourceTemplateInfo = server.ResourceTemplateInfo

// Prompt types
type PromptResult = server.PromptResult
type PromptMessage = server.PromptMessage
type PromptArgument = server.PromptArgument
type PromptInfo = server.PromptInfo
type TextContent = server.TextContent
type ImageContent = server.ImageContent

// Middleware types
type Middleware = middleware.Middleware
type MiddlewareHandlerFunc = middleware.HandlerFunc
type RateLimitOption = middleware.RateLimitOption
type OTelOption = middleware.OTelOption

// Middleware re-exports.
var (
	RateLimit            = middleware.RateLimit
	RateLimitByMethod    = middleware.RateLimitByMethod
	WithRateLimitKeyFunc = middleware.WithRateLimitKeyFunc
	WithRateLimitLogger  = middleware.WithRateLimitLogger
	OTel                 = middleware.OTel
	WithTracerProvider   = middleware.WithTracerProvider
	WithMeterProvider    = middleware.WithMeterProvider
)

// ServeOption configures how the server is run.
type ServeOption func(*serveOptions)

type serveOptions struct {
	middleware []Middleware
	logger     *zap.Logger
}

// WithMiddleware adds middleware to the request handling chain.
func WithMiddleware(m ...Middleware) ServeOption {
	return func(o *serveOptions) {
		o.middleware = append(o.middleware, m...)
	}
}

// WithLogger enables the default middleware stack using the given logger.
func WithLogger(l *zap.Logger) ServeOption {
	return func(o *serveOptions) {
		o.logger = l
	}
}

// NewServer creates a new MCP server with the given info and options.
func NewServer(info ServerInfo, opts ...Option) *Server {
	return server.New(info, opts...)
}

// ServeStdio runs the server using stdio transport. The transport is
// bound as the server's notification sink before serving, so tools,
// resources, and prompts registered while serving reach the client as
// list_changed notifications.
// This blocks until the context is canceled or an error occurs.
func ServeStdio(ctx context.Context, srv *Server, opts ...ServeOption) error {
	t := transport.NewStdio()
	srv.BindTransport(t)
	handler := newRequestHandler(srv, opts...)
	return t.Serve(ctx, handler)
}

// WebSocketOption configures the WebSocket transport.
type WebSocketOption = transport.WebSocketOption

// ServeWebSocket runs the server using WebSocket transport. Like
// ServeStdio, the transport is bound as the notification sink first;
// list_changed notifications are broadcast to all connected clients.
// This blocks until the context is canceled or an error occurs.
func ServeWebSocket(ctx context.Context, srv *Server, addr string, wsOpts []WebSocketOption, serveOpts ...ServeOption) error {
	t := transport.NewWebSocket(addr, wsOpts...)
	srv.BindTransport(t)
	handler := newRequestHandler(srv, serveOpts...)
	return t.Serve(ctx, handler)
}

// WithWebSocketReadTimeout sets the read timeout for WebSocket messages.
func WithWebSocketReadTimeout(d time.Duration) WebSocketOption {
	return transport.WithWebSocketReadTimeout(d)
}

// WithWebSocketWriteTimeout sets the write timeout for WebSocket messages.
func WithWebSocketWriteTimeout(d time.Duration) WebSocketOption {
	return transport.WithWebSocketWriteTimeout(d)
}

// Middleware re-exports

// Chain composes multiple middleware into a single middleware.
func Chain(middlewares ...Middleware) Middleware {
	return middleware.Chain(middlewares...)
}

// Recover returns middleware that catches panics and converts them to internal errors.
func Recover() Middleware {
	return middleware.Recover()
}

// RecoverWithHandler returns middleware that catches panics and calls the provided handler.
func RecoverWithHandler(handler func(ctx context.Context, req *protocol.Request, panicVal any) (*protocol.Response, error)) Middleware {
	return middleware.RecoverWithHandler(handler)
}

// Timeout returns middleware that enforces a request deadline.
func Timeout(d time.Duration) Middleware {
	return middleware.Timeout(d)
}

// RequestID returns middleware that injects a unique request ID into the context.
func RequestID() Middleware {
	return middleware.RequestID()
}

// RequestIDFromContext returns the request ID from the context, or empty string if not set.
func RequestIDFromContext(ctx context.Context) string {
	return middleware.RequestIDFromContext(ctx)
}

// Logging returns middleware that logs request details.
func Logging(logger *zap.Logger) Middleware {
	return middleware.Logging(logger)
}

// DefaultMiddleware returns the recommended production middleware stack.
func DefaultMiddleware(logger *zap.Logger) []Middleware {
	return middleware.DefaultStack(logger)
}

// DefaultMiddlewareWithTimeout returns the default stack with a timeout middleware.
func DefaultMiddlewareWithTimeout(logger *zap.Logger, timeout time.Duration) []Middleware {
	return middleware.DefaultStackWithTimeout(logger, timeout)
}

// requestHandler adapts Server to transport.Handler.
type requestHandler struct {
	srv        *Server
	handleFunc middleware.HandlerFunc
}

func newRequestHandler(srv *Server, opts ...ServeOption) *requestHandler {
	options := &serveOptions{}
	for _, opt := range opts {
		opt(options)
	}

	h := &requestHandler{srv: srv}

	var chain []Middleware
	if options.logger != nil {
		chain = append(chain, middleware.DefaultStack(options.logger)...)
	}
	chain = append(chain, options.middleware...)

	handler := middleware.HandlerFunc(h.handle)
	handler = applyServerMiddleware(srv.Middleware(), handler)
	if len(chain) > 0 {
		handler = middleware.Chain(chain...)(handler)
	}
	h.handleFunc = handler

	return h
}

// applyServerMiddleware threads middleware registered via srv.Use into
// the chain. The server package declares its own structurally identical
// handler types so it does not import the middleware package.
func applyServerMiddleware(ms []server.Middleware, base middleware.HandlerFunc) middleware.HandlerFunc {
	if len(ms) == 0 {
		return base
	}
	h := server.HandlerFunc(base)
	for i := len(ms) - 1; i >= 0; i-- {
		h = ms[i](h)
	}
	return middleware.HandlerFunc(h)
}

func (h *requestHandler) HandleRequest(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	return h.handleFunc(ctx, req)
}

func (h *requestHandler) handle(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	switch req.Method {
	case protocol.MethodInitialize:
		return h.handleInitialize(req)
	case protocol.MethodInitialized:
		return nil, nil
	case protocol.MethodPing:
		return protocol.NewResponse(req.ID, map[string]any{}), nil
	case protocol.MethodToolsList:
		return h.handleToolsList(req)
	case protocol.MethodToolsCall:
		return h.handleToolsCall(ctx, req)
	case protocol.MethodResourcesList:
		return h.handleResourcesList(req)
	case protocol.MethodResourceTemplatesList:
		return h.handleResourceTemplatesList(req)
	case protocol.MethodResourcesRead:
		return h.handleResourcesRead(ctx, req)
	case protocol.MethodPromptsList:
		return h.handlePromptsList(req)
	case protocol.MethodPromptsGet:
		return h.handlePromptsGet(ctx, req)
	default:
		return nil, protocol.NewMethodNotFound(req.Method)
	}
}

func (h *requestHandler) handleInitialize(req *protocol.Request) (*protocol.Response, error) {
	manifest := h.srv.Manifest()

	capabilities := make(map[string]any)
	if manifest.Capabilities.Tools {
		capabilities["tools"] = map[string]any{"listChanged": true}
	}
	if manifest.Capabilities.Resources {
		capabilities["resources"] = map[string]any{"listChanged": true}
	}
	if manifest.Capabilities.Prompts {
		capabilities["prompts"] = map[string]any{"listChanged": true}
	}

	result := map[string]any{
		"protocolVersion": manifest.ProtocolVersion,
		"serverInfo": map[string]any{
			"name":    manifest.Name,
			"version": manifest.Version,
		},
		"capabilities": capabilities,
	}

	return protocol.NewResponse(req.ID, result), nil
}

func (h *requestHandler) handleToolsList(req *protocol.Request) (*protocol.Response, error) {
	tools := h.srv.Tools()

	toolList := make([]map[string]any, 0, len(tools))
	for _, t := range tools {
		item := map[string]any{
			"name":        t.Name,
			"description": t.Description,
			"inputSchema": t.InputSchema,
		}
		if t.Annotations != nil {
			item["annotations"] = t.Annotations
		}
		toolList = append(toolList, item)
	}

	return protocol.NewResponse(req.ID, map[string]any{"tools": toolList}), nil
}

func (h *requestHandler) handleToolsCall(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return nil, protocol.NewInvalidParams(err.Error())
	}

	result, err := h.srv.CallTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return nil, asProtocolError(err)
	}

	text, ok := result.(string)
	if !ok {
		data, err := json.Marshal(result)
		if err != nil {
			return nil, protocol.NewInternalError(err.Error())
		}
		text = string(data)
	}

	response := map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
	}

	return protocol.NewResponse(req.ID, response), nil
}

func (h *requestHandler) handleResourcesList(req *protocol.Request) (*protocol.Response, error) {
	resources := h.srv.Resources()

	resourceList := make([]map[string]any, 0, len(resources))
	for _, r := range resources {
		item := map[string]any{
			"uri":  r.URI,
			"name": r.Name,
		}
		if r.Description != "" {
			item["description"] = r.Description
		}
		if r.MimeType != "" {
			item["mimeType"] = r.MimeType
		}
		resourceList = append(resourceList, item)
	}

	return protocol.NewResponse(req.ID, map[string]any{"resources": resourceList}), nil
}

func (h *requestHandler) handleResourceTemplatesList(req *protocol.Request) (*protocol.Response, error) {
	templates := h.srv.ResourceTemplates()

	templateList := make([]map[string]any, 0, len(templates))
	for _, t := range templates {
		item := map[string]any{
			"uriTemplate": t.URITemplate,
			"name":        t.Name,
		}
		if t.Description != "" {
			item["description"] = t.Description
		}
		if t.MimeType != "" {
			item["mimeType"] = t.MimeType
		}
		templateList = append(templateList, item)
	}

	return protocol.NewResponse(req.ID, map[string]any{"resourceTemplates": templateList}), nil
}

func (h *requestHandler) handleResourcesRead(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	var params struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return nil, protocol.NewInvalidParams(err.Error())
	}

	contents, err := h.srv.ReadResource(ctx, params.URI)
	if err != nil {
		return nil, asProtocolError(err)
	}

	return protocol.NewResponse(req.ID, map[string]any{"contents": contents}), nil
}

func (h *requestHandler) handlePromptsList(req *protocol.Request) (*protocol.Response, error) {
	prompts := h.srv.Prompts()

	promptList := make([]map[string]any, 0, len(prompts))
	for _, p := range prompts {
		item := map[string]any{
			"name": p.Name,
		}
		if p.Description != "" {
			item["description"] = p.Description
		}
		if len(p.Arguments) > 0 {
			item["arguments"] = p.Arguments
		}
		promptList = append(promptList, item)
	}

	return protocol.NewResponse(req.ID, map[string]any{"prompts": promptList}), nil
}

func (h *requestHandler) handlePromptsGet(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	var params struct {
		Name      string            `json:"name"`
		Arguments map[string]string `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return nil, protocol.NewInvalidParams(err.Error())
	}

	result, err := h.srv.GetPrompt(ctx, params.Name, params.Arguments)
	if err != nil {
		return nil, asProtocolError(err)
	}

	return protocol.NewResponse(req.ID, result), nil
}

// asProtocolError passes protocol errors through untouched so handler
// categorization survives to the wire. Anything else becomes internal.
func asProtocolError(err error) error {
	var mcpErr *protocol.Error
	if errors.As(err, &mcpErr) {
		return mcpErr
	}
	return protocol.NewInternalError(err.Error())
}
