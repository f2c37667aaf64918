package server

import (
	"github.com/felixgeelhaar/mcp-core/protocol"
)

// Info contains server metadata exposed to clients.
type Info struct {
	Name         string
	Version      string
	Capabilities Capabilities
}

// Capabilities declares what features the server supports.
type Capabilities struct {
	Tools     bool
	Resources bool
	Prompts   bool
}

// Manifest represents the server manifest returned to clients.
type Manifest struct {
	Name            string       `json:"name"`
	Version         string       `json:"version"`
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    Capabilities `json:"capabilities"`
}

// Option configures a Server.
type Option func(*Server)

// Server composes the entity registry, the notification bridge, and the
// dispatcher behind one register/read/list/bind surface. Every Server
// owns its own registry; independent servers coexist safely in one
// process. Registration is expected to complete before dispatch traffic
// is served; the registry is still lock-guarded so interleaved calls do
// not corrupt it.
type Server struct {
	info       Info
	registry   *registry
	notifier   *changeNotifier
	middleware []Middleware
}

// New creates a new server with the given info and options.
func New(info Info, opts ...Option) *Server {
	notifier := &changeNotifier{}
	s := &Server{
		info:     info,
		registry: newRegistry(notifier),
		notifier: notifier,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Info returns the server info.
func (s *Server) Info() Info {
	return s.info
}

// Manifest returns the server manifest for initialization.
func (s *Server) Manifest() Manifest {
	return Manifest{
		Name:            s.info.Name,
		Version:         s.info.Version,
		ProtocolVersion: protocol.MCPVersion,
		Capabilities:    s.info.Capabilities,
	}
}

// Use registers middleware to be executed on every request.
func (s *Server) Use(middleware ...Middleware) {
	s.middleware = append(s.middleware, middleware...)
}

// Middleware returns the registered middleware chain.
func (s *Server) Middleware() []Middleware {
	return s.middleware
}

// BindTransport binds a transport for list-changed notifications.
// Binding is optional and rebindable; the most recent bind wins. Every
// successful registration after the bind triggers exactly one matching
// notification on the transport.
func (s *Server) BindTransport(t ListChangedTransport) {
	s.notifier.bind(t)
}

// Tool starts building a new tool with the given name.
func (s *Server) Tool(name string) *ToolBuilder {
	return &ToolBuilder{
		tool:   &Tool{name: name},
		server: s,
	}
}

// Resource starts building a new exact-URI resource.
func (s *Server) Resource(uri string) *ResourceBuilder {
	return &ResourceBuilder{
		resource: &Resource{uri: uri},
		server:   s,
	}
}

// ResourceTemplate starts building a new resource template from a URI
// template string containing {identifier} placeholders.
func (s *Server) ResourceTemplate(uriTemplate string) *ResourceTemplateBuilder {
	return &ResourceTemplateBuilder{
		template: &ResourceTemplate{uriTemplate: uriTemplate},
		server:   s,
	}
}

// Prompt starts building a new prompt with the given name.
func (s *Server) Prompt(name string) *PromptBuilder {
	return &PromptBuilder{
		prompt: &Prompt{name: name},
		server: s,
	}
}

// Tools returns metadata for all registered tools in registration order.
func (s *Server) Tools() []ToolInfo {
	tools := s.registry.allTools()

	result := make([]ToolInfo, 0, len(tools))
	for _, t := range tools {
		result = append(result, ToolInfo{
			Name:        t.name,
			Description: t.description,
			InputSchema: t.inputSchema,
			Annotations: t.annotations,
		})
	}
	return result
}

// Resources returns metadata for all registered exact resources in
// registration order.
func (s *Server) Resources() []ResourceInfo {
	resources := s.registry.allResources()

	result := make([]ResourceInfo, 0, len(resources))
	for _, r := range resources {
		result = append(result, ResourceInfo{
			URI:         r.uri,
			Name:        r.name,
			Description: r.description,
			MimeType:    r.mimeType,
		})
	}
	return result
}

// ResourceTemplates returns metadata for all registered resource
// templates in registration order.
func (s *Server) ResourceTemplates() []ResourceTemplateInfo {
	templates := s.registry.allResourceTemplates()

	result := make([]ResourceTemplateInfo, 0, len(templates))
	for _, t := range templates {
		result = append(result, ResourceTemplateInfo{
			URITemplate: t.uriTemplate,
			Name:        t.name,
			Description: t.description,
			MimeType:    t.mimeType,
		})
	}
	return result
}

// Prompts returns metadata for all registered prompts in registration
// order.
func (s *Server) Prompts() []PromptInfo {
	prompts := s.registry.allPrompts()

	result := make([]PromptInfo, 0, len(prompts))
	for _, p := range prompts {
		result = append(result, PromptInfo{
			Name:        p.name,
			Description: p.description,
			Arguments:   p.arguments,
		})
	}
	return result
}

// GetTool retrieves a tool by exact name.
func (s *Server) GetTool(name string) (*Tool, bool) {
	return s.registry.tool(name)
}

// GetResource retrieves an exact resource by URI.
func (s *Server) GetResource(uri string) (*Resource, bool) {
	return s.registry.resource(uri)
}

// GetResourceTemplate retrieves a resource template by its template
// string.
func (s *Server) GetResourceTemplate(uriTemplate string) (*ResourceTemplate, bool) {
	return s.registry.resourceTemplate(uriTemplate)
}

// GetPromptDefinition retrieves a prompt by exact name.
func (s *Server) GetPromptDefinition(name string) (*Prompt, bool) {
	return s.registry.prompt(name)
}
