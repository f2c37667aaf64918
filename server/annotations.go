package server

// ToolAnnotations provides metadata hints about a tool's side-effect
// profile. Each hint is independently optional; an absent hint means
// "unknown", not false.
type ToolAnnotations struct {
	// Title is a human-readable title for the tool.
	Title string `json:"title,omitempty"`

	// ReadOnlyHint indicates the tool only reads data (no side effects).
	ReadOnlyHint *bool `json:"readOnlyHint,omitempty"`

	// DestructiveHint indicates the tool might make destructive changes.
	DestructiveHint *bool `json:"destructiveHint,omitempty"`

	// IdempotentHint indicates calling the tool multiple times has the
	// same effect as calling it once (for the same input).
	IdempotentHint *bool `json:"idempotentHint,omitempty"`

	// OpenWorldHint indicates the tool interacts with external systems
	// outside of the host environment.
	OpenWorldHint *bool `json:"openWorldHint,omitempty"`
}

// ContentAnnotations provides display hints attached to emitted resource
// content. Both fields are independently optional.
type ContentAnnotations struct {
	// Audience describes who the content is intended for.
	// Values: "user" (for human consumption), "assistant" (for LLM use).
	Audience []string `json:"audience,omitempty"`

	// Priority suggests relative priority of this content (0.0 to 1.0).
	Priority *float64 `json:"priority,omitempty"`
}

// Bool returns a pointer to a bool value for use in annotations.
func Bool(v bool) *bool {
	return &v
}

// Float returns a pointer to a float64 value for use in annotations.
func Float(v float64) *float64 {
	return &v
}

// Safety holds the side-effect flags a domain action declares about
// itself. The flags are not verified; they are mapped verbatim into
// protocol hints.
type Safety struct {
	ReadOnly   bool
	Idempotent bool
}

// Annotations derives protocol tool annotations from the safety flags.
// Only flags that are set produce a hint, and when neither is set the
// result is nil so the annotations field is omitted entirely rather than
// emitted as an empty object. Destructive and open-world hints are never
// derived here; they require explicit author input on the builder.
func (s Safety) Annotations() *ToolAnnotations {
	if !s.ReadOnly && !s.Idempotent {
		return nil
	}

	a := &ToolAnnotations{}
	if s.ReadOnly {
		a.ReadOnlyHint = Bool(true)
	}
	if s.Idempotent {
		a.IdempotentHint = Bool(true)
	}
	return a
}

// Safety merges the hints derived from s into the tool's annotations,
// leaving any explicitly authored fields (title, destructive or
// open-world hints) untouched.
func (b *ToolBuilder) Safety(s Safety) *ToolBuilder {
	if b.err != nil {
		return b
	}

	derived := s.Annotations()
	if derived == nil {
		return b
	}
	if b.tool.annotations == nil {
		b.tool.annotations = &ToolAnnotations{}
	}
	if derived.ReadOnlyHint != nil {
		b.tool.annotations.ReadOnlyHint = derived.ReadOnlyHint
	}
	if derived.IdempotentHint != nil {
		b.tool.annotations.IdempotentHint = derived.IdempotentHint
	}
	return b
}

// ReadOnly marks the tool as read-only (no side effects).
func (b *ToolBuilder) ReadOnly() *ToolBuilder {
	if b.err != nil {
		return b
	}
	if b.tool.annotations == nil {
		b.tool.annotations = &ToolAnnotations{}
	}
	b.tool.annotations.ReadOnlyHint = Bool(true)
	return b
}

// Destructive marks the tool as potentially destructive.
func (b *ToolBuilder) Destructive() *ToolBuilder {
	if b.err != nil {
		return b
	}
	if b.tool.annotations == nil {
		b.tool.annotations = &ToolAnnotations{}
	}
	b.tool.annotations.DestructiveHint = Bool(true)
	return b
}

// Idempotent marks the tool as idempotent.
func (b *ToolBuilder) Idempotent() *ToolBuilder {
	if b.err != nil {
		return b
	}
	if b.tool.annotations == nil {
		b.tool.annotations = &ToolAnnotations{}
	}
	b.tool.annotations.IdempotentHint = Bool(true)
	return b
}

// OpenWorld marks the tool as accessing external systems.
func (b *ToolBuilder) OpenWorld() *ToolBuilder {
	if b.err != nil {
		return b
	}
	if b.tool.annotations == nil {
		b.tool.annotations = &ToolAnnotations{}
	}
	b.tool.annotations.OpenWorldHint = Bool(true)
	return b
}

// Title sets a human-readable title for the tool.
func (b *ToolBuilder) Title(title string) *ToolBuilder {
	if b.err != nil {
		return b
	}
	if b.tool.annotations == nil {
		b.tool.annotations = &ToolAnnotations{}
	}
	b.tool.annotations.Title = title
	return b
}

// Annotations replaces the tool annotations wholesale.
func (b *ToolBuilder) Annotations(annotations ToolAnnotations) *ToolBuilder {
	if b.err != nil {
		return b
	}
	b.tool.annotations = &annotations
	return b
}
