// Package testutil provides testing utilities for MCP servers.
//
// This package helps developers write tests for their MCP servers by
// exercising the server facade in memory, without a transport.
//
// Example usage:
//
//	func TestMyServer(t *testing.T) {
//	    srv := mcp.NewServer(mcp.ServerInfo{Name: "test", Version: "1.0.0"})
//	    srv.Tool("greet").Handler(func(ctx context.Context, input GreetInput) (string, error) {
//	        return "Hello, " + input.Name, nil
//	    })
//
//	    tc := testutil.NewTestClient(t, srv)
//
//	    result, err := tc.CallTool("greet", map[string]any{"name": "World"})
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    if result != "Hello, World" {
//	        t.Errorf("result = %q", result)
//	    }
//	}
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/felixgeelhaar/mcp-core/server"
)

// TestClient drives an MCP server in memory.
type TestClient struct {
	t   testing.TB
	srv *server.Server
}

// NewTestClient creates a new test client for the given server.
func NewTestClient(t testing.TB, srv *server.Server) *TestClient {
	t.Helper()
	return &TestClient{t: t, srv: srv}
}

// CallTool calls a tool with the given arguments and returns the text result.
// Non-string handler results are rendered as JSON, matching the wire behavior.
func (tc *TestClient) CallTool(name string, args any) (string, error) {
	tc.t.Helper()

	var input json.RawMessage
	if args != nil {
		data, err := json.Marshal(args)
		if err != nil {
			return "", fmt.Errorf("failed to marshal arguments: %w", err)
		}
		input = data
	}

	result, err := tc.srv.CallTool(context.Background(), name, input)
	if err != nil {
		return "", err
	}

	if s, ok := result.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to render result: %w", err)
	}
	return string(data), nil
}

// ReadResource resolves a URI against the server's resources and templates.
func (tc *TestClient) ReadResource(uri string) ([]server.ResourceContent, error) {
	tc.t.Helper()
	return tc.srv.ReadResource(context.Background(), uri)
}

// GetPrompt renders the named prompt with the given arguments.
func (tc *TestClient) GetPrompt(name string, args map[string]string) (*server.PromptResult, error) {
	tc.t.Helper()
	return tc.srv.GetPrompt(context.Background(), name, args)
}

// ListTools returns the registered tools in registration order.
func (tc *TestClient) ListTools() []server.ToolInfo {
	tc.t.Helper()
	return tc.srv.Tools()
}

// ListResources returns the registered exact resources in registration order.
func (tc *TestClient) ListResources() []server.ResourceInfo {
	tc.t.Helper()
	return tc.srv.Resources()
}

// ListResourceTemplates returns the registered templates in registration order.
func (tc *TestClient) ListResourceTemplates() []server.ResourceTemplateInfo {
	tc.t.Helper()
	return tc.srv.ResourceTemplates()
}

// ListPrompts returns the registered prompts in registration order.
func (tc *TestClient) ListPrompts() []server.PromptInfo {
	tc.t.Helper()
	return tc.srv.Prompts()
}

// AssertToolExists fails the test if the named tool is not registered.
func (tc *TestClient) AssertToolExists(name string) {
	tc.t.Helper()

	if _, ok := tc.srv.GetTool(name); !ok {
		tc.t.Errorf("tool %q not registered", name)
	}
}

// AssertResourceExists fails the test if no registered resource or
// template matches the given URI.
func (tc *TestClient) AssertResourceExists(uri string) {
	tc.t.Helper()

	if _, ok := tc.srv.GetResource(uri); ok {
		return
	}
	if _, ok := tc.srv.GetResourceTemplate(uri); ok {
		return
	}
	if _, err := tc.srv.ReadResource(context.Background(), uri); err == nil {
		return
	}
	tc.t.Errorf("no resource matches %q", uri)
}

// AssertPromptExists fails the test if the named prompt is not registered.
func (tc *TestClient) AssertPromptExists(name string) {
	tc.t.Helper()

	if _, ok := tc.srv.GetPromptDefinition(name); !ok {
		tc.t.Errorf("prompt %q not registered", name)
	}
}

// RecordingTransport implements server.ListChangedTransport and records
// the notifications it receives. Bind it with srv.BindTransport to
// assert on notification behavior.
type RecordingTransport struct {
	mu sync.Mutex

	tools     int
	resources int
	prompts   int

	// Err, when set, is returned from every notify call.
	Err error
}

// NewRecordingTransport creates an empty recording transport.
func NewRecordingTransport() *RecordingTransport {
	return &RecordingTransport{}
}

func (rt *RecordingTransport) NotifyToolListChanged() error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.tools++
	return rt.Err
}

func (rt *RecordingTransport) NotifyResourceListChanged() error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.resources++
	return rt.Err
}

func (rt *RecordingTransport) NotifyPromptListChanged() error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.prompts++
	return rt.Err
}

// ToolNotifications returns how many tool list_changed notifications were sent.
func (rt *RecordingTransport) ToolNotifications() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.tools
}

// ResourceNotifications returns how many resource list_changed notifications were sent.
func (rt *RecordingTransport) ResourceNotifications() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.resources
}

// PromptNotifications returns how many prompt list_changed notifications were sent.
func (rt *RecordingTransport) PromptNotifications() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.prompts
}
