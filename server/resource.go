package server

import "context"

// ResourceContent is one content item produced by a resource read.
// Annotations is present only when the handler explicitly supplied it.
type ResourceContent struct {
	URI         string              `json:"uri"`
	MimeType    string              `json:"mimeType,omitempty"`
	Text        string              `json:"text,omitempty"`
	Blob        string              `json:"blob,omitempty"` // base64 encoded binary data
	Annotations *ContentAnnotations `json:"annotations,omitempty"`
}

// ResourceHandler produces the content of an exact-URI resource.
type ResourceHandler func(ctx context.Context) ([]ResourceContent, error)

// TemplateHandler produces content for a URI matched by a resource
// template. vars holds the raw substring captured for each placeholder.
type TemplateHandler func(ctx context.Context, uri string, vars map[string]string) ([]ResourceContent, error)

// Resource is a URI-addressable piece of content keyed by its exact URI.
type Resource struct {
	uri         string
	name        string
	description string
	mimeType    string
	handler     ResourceHandler
}

// ResourceTemplate matches a family of resources through a parameterized
// URI pattern and extracts named variables from a matched URI.
type ResourceTemplate struct {
	uriTemplate string
	name        string
	description string
	mimeType    string
	handler     TemplateHandler
	matcher     *uriTemplate
}

// ResourceInfo represents metadata about a registered exact resource.
type ResourceInfo struct {
	URI         string
	Name        string
	Description string
	MimeType    string
}

// ResourceTemplateInfo represents metadata about a registered resource
// template.
type ResourceTemplateInfo struct {
	URITemplate string
	Name        string
	Description string
	MimeType    string
}

// ResourceBuilder provides a fluent API for building exact resources.
type ResourceBuilder struct {
	resource *Resource
	server   *Server
	err      error
}

// Name sets a human-readable name for the resource.
func (b *ResourceBuilder) Name(name string) *ResourceBuilder {
	if b.err != nil {
		return b
	}
	b.resource.name = name
	return b
}

// Description sets the resource description.
func (b *ResourceBuilder) Description(desc string) *ResourceBuilder {
	if b.err != nil {
		return b
	}
	b.resource.description = desc
	return b
}

// MimeType sets the MIME type of the resource content.
func (b *ResourceBuilder) MimeType(mimeType string) *ResourceBuilder {
	if b.err != nil {
		return b
	}
	b.resource.mimeType = mimeType
	return b
}

// Handler sets the resource handler and registers the resource.
func (b *ResourceBuilder) Handler(fn ResourceHandler) *ResourceBuilder {
	if b.err != nil {
		return b
	}
	b.resource.handler = fn
	b.err = b.server.registry.registerResource(b.resource)
	return b
}

// Err returns the first error encountered while building or registering.
func (b *ResourceBuilder) Err() error {
	return b.err
}

// ResourceTemplateBuilder provides a fluent API for building resource
// templates.
type ResourceTemplateBuilder struct {
	template *ResourceTemplate
	server   *Server
	err      error
}

// Name sets a human-readable name for the template.
func (b *ResourceTemplateBuilder) Name(name string) *ResourceTemplateBuilder {
	if b.err != nil {
		return b
	}
	b.template.name = name
	return b
}

// Description sets the template description.
func (b *ResourceTemplateBuilder) Description(desc string) *ResourceTemplateBuilder {
	if b.err != nil {
		return b
	}
	b.template.description = desc
	return b
}

// MimeType sets the MIME type of matched resources.
func (b *ResourceTemplateBuilder) MimeType(mimeType string) *ResourceTemplateBuilder {
	if b.err != nil {
		return b
	}
	b.template.mimeType = mimeType
	return b
}

// Handler sets the template handler, compiles the URI template, and
// registers it. A template that fails to compile is still registered;
// it simply never matches any URI.
func (b *ResourceTemplateBuilder) Handler(fn TemplateHandler) *ResourceTemplateBuilder {
	if b.err != nil {
		return b
	}
	b.template.handler = fn
	b.template.matcher = compileURITemplate(b.template.uriTemplate)
	b.err = b.server.registry.registerResourceTemplate(b.template)
	return b
}

// Err returns the first error encountered while building or registering.
func (b *ResourceTemplateBuilder) Err() error {
	return b.err
}
