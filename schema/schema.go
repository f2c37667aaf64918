// Package schema adapts invopop/jsonschema reflection into the
// input-validation capability consumed by the tool layer: generate a
// JSON Schema from a Go type for descriptive metadata, introspect its
// field shape, and strictly decode JSON input.
package schema

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema is the reflected JSON Schema type exposed to callers.
type Schema = jsonschema.Schema

// Generate reflects a JSON Schema from the type of v.
func Generate(v any) *Schema {
	return ForType(reflect.TypeOf(v))
}

// ForType reflects a JSON Schema from t. Definitions are inlined so the
// result is self-contained when serialized into a tool listing.
func ForType(t reflect.Type) *Schema {
	if t == nil {
		return &Schema{}
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	r := &jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	return r.ReflectFromType(t)
}

// Properties returns the property names of an object schema in
// declaration order, or nil for non-object schemas.
func Properties(s *Schema) []string {
	if s == nil || s.Properties == nil {
		return nil
	}

	names := make([]string, 0, s.Properties.Len())
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Required returns the required property names of an object schema.
func Required(s *Schema) []string {
	if s == nil {
		return nil
	}
	return s.Required
}

// DecodeStrict decodes data into v, rejecting unknown fields.
func DecodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
