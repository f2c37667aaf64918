package server

import (
	"sync"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

// registry owns the four entity collections. Each collection is keyed by
// identity and keeps an insertion-order index so iteration (template
// scans, list endpoints) follows registration order. There is no removal
// operation; a registry lives exactly as long as its owning Server.
type registry struct {
	mu sync.RWMutex

	tools     map[string]*Tool
	toolOrder []string

	resources     map[string]*Resource
	resourceOrder []string

	templates     map[string]*ResourceTemplate
	templateOrder []string

	prompts     map[string]*Prompt
	promptOrder []string

	notifier *changeNotifier
}

func newRegistry(notifier *changeNotifier) *registry {
	return &registry{
		tools:     make(map[string]*Tool),
		resources: make(map[string]*Resource),
		templates: make(map[string]*ResourceTemplate),
		prompts:   make(map[string]*Prompt),
		notifier:  notifier,
	}
}

// registerTool validates and inserts a tool, then signals the change.
// Duplicate names are rejected with a conflict error.
func (r *registry) registerTool(t *Tool) error {
	if t.name == "" {
		return protocol.NewInvalidParams("tool name is required")
	}
	if t.handler == nil {
		return protocol.NewInvalidParams("tool handler is required: " + t.name)
	}

	r.mu.Lock()
	if _, exists := r.tools[t.name]; exists {
		r.mu.Unlock()
		return protocol.NewConflict("tool already registered: " + t.name)
	}
	r.tools[t.name] = t
	r.toolOrder = append(r.toolOrder, t.name)
	r.mu.Unlock()

	r.notifier.toolsChanged()
	return nil
}

func (r *registry) registerResource(res *Resource) error {
	if res.uri == "" {
		return protocol.NewInvalidParams("resource uri is required")
	}
	if res.handler == nil {
		return protocol.NewInvalidParams("resource handler is required: " + res.uri)
	}

	r.mu.Lock()
	if _, exists := r.resources[res.uri]; exists {
		r.mu.Unlock()
		return protocol.NewConflict("resource already registered: " + res.uri)
	}
	r.resources[res.uri] = res
	r.resourceOrder = append(r.resourceOrder, res.uri)
	r.mu.Unlock()

	r.notifier.resourcesChanged()
	return nil
}

// registerResourceTemplate treats a template registration as a change to
// the resource list.
func (r *registry) registerResourceTemplate(tmpl *ResourceTemplate) error {
	if tmpl.uriTemplate == "" {
		return protocol.NewInvalidParams("resource template is required")
	}
	if tmpl.handler == nil {
		return protocol.NewInvalidParams("resource template handler is required: " + tmpl.uriTemplate)
	}

	r.mu.Lock()
	if _, exists := r.templates[tmpl.uriTemplate]; exists {
		r.mu.Unlock()
		return protocol.NewConflict("resource template already registered: " + tmpl.uriTemplate)
	}
	r.templates[tmpl.uriTemplate] = tmpl
	r.templateOrder = append(r.templateOrder, tmpl.uriTemplate)
	r.mu.Unlock()

	r.notifier.resourcesChanged()
	return nil
}

func (r *registry) registerPrompt(p *Prompt) error {
	if p.name == "" {
		return protocol.NewInvalidParams("prompt name is required")
	}
	if p.handler == nil {
		return protocol.NewInvalidParams("prompt handler is required: " + p.name)
	}

	r.mu.Lock()
	if _, exists := r.prompts[p.name]; exists {
		r.mu.Unlock()
		return protocol.NewConflict("prompt already registered: " + p.name)
	}
	r.prompts[p.name] = p
	r.promptOrder = append(r.promptOrder, p.name)
	r.mu.Unlock()

	r.notifier.promptsChanged()
	return nil
}

func (r *registry) tool(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

func (r *registry) resource(uri string) (*Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.resources[uri]
	return res, ok
}

func (r *registry) resourceTemplate(uriTemplate string) (*ResourceTemplate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tmpl, ok := r.templates[uriTemplate]
	return tmpl, ok
}

func (r *registry) prompt(name string) (*Prompt, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prompts[name]
	return p, ok
}

func (r *registry) allTools() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Tool, 0, len(r.toolOrder))
	for _, name := range r.toolOrder {
		result = append(result, r.tools[name])
	}
	return result
}

func (r *registry) allResources() []*Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Resource, 0, len(r.resourceOrder))
	for _, uri := range r.resourceOrder {
		result = append(result, r.resources[uri])
	}
	return result
}

func (r *registry) allResourceTemplates() []*ResourceTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*ResourceTemplate, 0, len(r.templateOrder))
	for _, tmpl := range r.templateOrder {
		result = append(result, r.templates[tmpl])
	}
	return result
}

func (r *registry) allPrompts() []*Prompt {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Prompt, 0, len(r.promptOrder))
	for _, name := range r.promptOrder {
		result = append(result, r.prompts[name])
	}
	return result
}
