package server

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/mcp-core/protocol"
	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	srv := New(Info{Name: "notes", Version: "2.1.0"})

	info := srv.Info()
	if info.Name != "notes" {
		t.Errorf("Name = %q, want %q", info.Name, "notes")
	}
	if info.Version != "2.1.0" {
		t.Errorf("Version = %q, want %q", info.Version, "2.1.0")
	}
}

func TestServer_Manifest(t *testing.T) {
	srv := New(Info{
		Name:         "notes",
		Version:      "1.0.0",
		Capabilities: Capabilities{Tools: true, Resources: true},
	})

	m := srv.Manifest()
	if m.ProtocolVersion != protocol.MCPVersion {
		t.Errorf("ProtocolVersion = %q, want %q", m.ProtocolVersion, protocol.MCPVersion)
	}
	if !m.Capabilities.Tools || !m.Capabilities.Resources || m.Capabilities.Prompts {
		t.Errorf("Capabilities = %+v", m.Capabilities)
	}
}

func TestServer_IndependentInstances(t *testing.T) {
	// Registries are instance-owned, not process-wide. Registering on
	// one server must not leak into another.
	a := New(Info{Name: "a", Version: "1.0.0"})
	b := New(Info{Name: "b", Version: "1.0.0"})

	a.Resource("notes:///only-in-a").Handler(noopResourceHandler)

	if len(b.Resources()) != 0 {
		t.Errorf("server b has %d resources, want 0", len(b.Resources()))
	}
	if _, err := b.ReadResource(context.Background(), "notes:///only-in-a"); err == nil {
		t.Error("expected not found on the other server")
	}
}

func TestServer_ListSnapshots(t *testing.T) {
	srv := New(Info{Name: "test", Version: "1.0.0"})

	srv.Resource("notes:///b").Name("B").Handler(noopResourceHandler)
	srv.Resource("notes:///a").Name("A").Handler(noopResourceHandler)
	srv.ResourceTemplate("notes:///users/{id}").Name("User").Handler(noopTemplateHandler)
	srv.Prompt("greet").Description("Say hello").Argument("name", "Who to greet", false).Handler(noopPromptHandler)

	t.Run("resources in registration order", func(t *testing.T) {
		var got []string
		for _, r := range srv.Resources() {
			got = append(got, r.URI)
		}
		want := []string{"notes:///b", "notes:///a"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("resource order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("templates listed separately from resources", func(t *testing.T) {
		if len(srv.Resources()) != 2 {
			t.Errorf("Resources() = %d entries, want 2", len(srv.Resources()))
		}
		templates := srv.ResourceTemplates()
		if len(templates) != 1 {
			t.Fatalf("ResourceTemplates() = %d entries, want 1", len(templates))
		}
		if templates[0].URITemplate != "notes:///users/{id}" {
			t.Errorf("URITemplate = %q", templates[0].URITemplate)
		}
	})

	t.Run("prompt arguments keep declaration order", func(t *testing.T) {
		prompts := srv.Prompts()
		if len(prompts) != 1 {
			t.Fatalf("Prompts() = %d entries, want 1", len(prompts))
		}
		args := prompts[0].Arguments
		if len(args) != 1 || args[0].Name != "name" {
			t.Errorf("Arguments = %+v", args)
		}
	})
}
