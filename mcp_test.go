package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/felixgeelhaar/mcp-core/protocol"
	"github.com/felixgeelhaar/mcp-core/server"
)

func TestNewServer(t *testing.T) {
	srv := NewServer(ServerInfo{
		Name:    "test-server",
		Version: "1.0.0",
	})

	if srv == nil {
		t.Fatal("expected server to be created")
	}

	info := srv.Info()
	if info.Name != "test-server" {
		t.Errorf("Name = %q, want %q", info.Name, "test-server")
	}
}

func request(t *testing.T, method string, params any) *protocol.Request {
	t.Helper()

	req := &protocol.Request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(`1`),
		Method:  method,
	}
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			t.Fatalf("failed to marshal params: %v", err)
		}
		req.Params = data
	}
	return req
}

func TestRequestHandler_Initialize(t *testing.T) {
	srv := NewServer(ServerInfo{
		Name:    "test-server",
		Version: "1.0.0",
		Capabilities: Capabilities{
			Tools:     true,
			Resources: true,
		},
	})

	handler := newRequestHandler(srv)

	resp, err := handler.HandleRequest(context.Background(), request(t, "initialize", nil))
	if err != nil {
		t.Fatalf("HandleRequest failed: %v", err)
	}

	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatalf("expected map result, got %T", resp.Result)
	}
	if result["protocolVersion"] != protocol.MCPVersion {
		t.Errorf("protocolVersion = %v, want %q", result["protocolVersion"], protocol.MCPVersion)
	}

	capabilities, ok := result["capabilities"].(map[string]any)
	if !ok {
		t.Fatalf("expected capabilities map, got %T", result["capabilities"])
	}
	if _, ok := capabilities["tools"]; !ok {
		t.Error("expected tools capability")
	}
	if _, ok := capabilities["resources"]; !ok {
		t.Error("expected resources capability")
	}
	if _, ok := capabilities["prompts"]; ok {
		t.Error("did not expect prompts capability")
	}
}

func TestRequestHandler_Ping(t *testing.T) {
	srv := NewServer(ServerInfo{Name: "test-server", Version: "1.0.0"})
	handler := newRequestHandler(srv)

	resp, err := handler.HandleRequest(context.Background(), request(t, "ping", nil))
	if err != nil {
		t.Fatalf("HandleRequest failed: %v", err)
	}
	if resp == nil || resp.Error != nil {
		t.Fatalf("expected success response, got %+v", resp)
	}
}

func TestRequestHandler_ToolsList(t *testing.T) {
	srv := NewServer(ServerInfo{Name: "test-server", Version: "1.0.0"})

	type SearchInput struct {
		Query string `json:"query"`
	}

	srv.Tool("search").
		Description("Search for items").
		Safety(Safety{ReadOnly: true}).
		Handler(func(ctx context.Context, input SearchInput) (string, error) {
			return "result", nil
		})

	handler := newRequestHandler(srv)

	resp, err := handler.HandleRequest(context.Background(), request(t, "tools/list", nil))
	if err != nil {
		t.Fatalf("HandleRequest failed: %v", err)
	}

	data, _ := json.Marshal(resp.Result)
	output := string(data)
	if !strings.Contains(output, `"search"`) {
		t.Errorf("expected tool name in result, got %q", output)
	}
	if !strings.Contains(output, `"readOnlyHint":true`) {
		t.Errorf("expected annotations in result, got %q", output)
	}
}

func TestRequestHandler_ToolsCall(t *testing.T) {
	srv := NewServer(ServerInfo{Name: "test-server", Version: "1.0.0"})

	type GreetInput struct {
		Name string `json:"name"`
	}

	srv.Tool("greet").
		Description("Greet someone").
		Handler(func(ctx context.Context, input GreetInput) (string, error) {
			return "hello " + input.Name, nil
		})

	handler := newRequestHandler(srv)

	t.Run("invokes the named tool", func(t *testing.T) {
		req := request(t, "tools/call", map[string]any{
			"name":      "greet",
			"arguments": map[string]string{"name": "world"},
		})

		resp, err := handler.HandleRequest(context.Background(), req)
		if err != nil {
			t.Fatalf("HandleRequest failed: %v", err)
		}

		data, _ := json.Marshal(resp.Result)
		if !strings.Contains(string(data), "hello world") {
			t.Errorf("result = %s, want greeting", data)
		}
	})

	t.Run("unknown tool returns not found", func(t *testing.T) {
		req := request(t, "tools/call", map[string]any{"name": "missing"})

		_, err := handler.HandleRequest(context.Background(), req)
		if err == nil {
			t.Fatal("expected error for unknown tool")
		}

		var mcpErr *protocol.Error
		if !asError(err, &mcpErr) || mcpErr.Code != protocol.CodeNotFound {
			t.Errorf("error = %v, want not found", err)
		}
	})

	t.Run("handler categorization survives to the response", func(t *testing.T) {
		srv.Tool("forbidden").
			Description("Always denied").
			Handler(func(ctx context.Context, input GreetInput) (string, error) {
				return "", protocol.NewUnauthorized("nope")
			})

		req := request(t, "tools/call", map[string]any{
			"name":      "forbidden",
			"arguments": map[string]string{"name": "x"},
		})

		_, err := handler.HandleRequest(context.Background(), req)

		var mcpErr *protocol.Error
		if !asError(err, &mcpErr) {
			t.Fatalf("error = %v, want protocol error", err)
		}
		if mcpErr.Code != protocol.CodeUnauthorized {
			t.Errorf("code = %d, want %d", mcpErr.Code, protocol.CodeUnauthorized)
		}
		if mcpErr.Category != protocol.CategoryAuth {
			t.Errorf("category = %q, want %q", mcpErr.Category, protocol.CategoryAuth)
		}
	})
}

func TestRequestHandler_Resources(t *testing.T) {
	srv := NewServer(ServerInfo{Name: "test-server", Version: "1.0.0"})

	srv.Resource("config://app").
		Name("App Config").
		MimeType("application/json").
		Handler(func(ctx context.Context) ([]ResourceContent, error) {
			return []ResourceContent{{
				URI:      "config://app",
				MimeType: "application/json",
				Text:     `{"debug":true}`,
			}}, nil
		})

	srv.ResourceTemplate("db:///users/{userId}").
		Name("User Record").
		Handler(func(ctx context.Context, uri string, vars map[string]string) ([]ResourceContent, error) {
			return []ResourceContent{{
				URI:  uri,
				Text: "user " + vars["userId"],
			}}, nil
		})

	handler := newRequestHandler(srv)

	t.Run("resources/list returns exact resources only", func(t *testing.T) {
		resp, err := handler.HandleRequest(context.Background(), request(t, "resources/list", nil))
		if err != nil {
			t.Fatalf("HandleRequest failed: %v", err)
		}

		data, _ := json.Marshal(resp.Result)
		output := string(data)
		if !strings.Contains(output, "config://app") {
			t.Errorf("expected exact resource in list, got %q", output)
		}
		if strings.Contains(output, "db:///users") {
			t.Errorf("templates must not appear in resources/list, got %q", output)
		}
	})

	t.Run("resources/templates/list returns templates", func(t *testing.T) {
		resp, err := handler.HandleRequest(context.Background(), request(t, "resources/templates/list", nil))
		if err != nil {
			t.Fatalf("HandleRequest failed: %v", err)
		}

		data, _ := json.Marshal(resp.Result)
		if !strings.Contains(string(data), "db:///users/{userId}") {
			t.Errorf("expected template in list, got %s", data)
		}
	})

	t.Run("resources/read resolves exact URI", func(t *testing.T) {
		req := request(t, "resources/read", map[string]string{"uri": "config://app"})

		resp, err := handler.HandleRequest(context.Background(), req)
		if err != nil {
			t.Fatalf("HandleRequest failed: %v", err)
		}

		data, _ := json.Marshal(resp.Result)
		if !strings.Contains(string(data), `"debug"`) {
			t.Errorf("result = %s, want config content", data)
		}
	})

	t.Run("resources/read resolves template match", func(t *testing.T) {
		req := request(t, "resources/read", map[string]string{"uri": "db:///users/42"})

		resp, err := handler.HandleRequest(context.Background(), req)
		if err != nil {
			t.Fatalf("HandleRequest failed: %v", err)
		}

		data, _ := json.Marshal(resp.Result)
		if !strings.Contains(string(data), "user 42") {
			t.Errorf("result = %s, want extracted variable", data)
		}
	})

	t.Run("resources/read unknown URI returns not found", func(t *testing.T) {
		req := request(t, "resources/read", map[string]string{"uri": "config://missing"})

		_, err := handler.HandleRequest(context.Background(), req)

		var mcpErr *protocol.Error
		if !asError(err, &mcpErr) || mcpErr.Code != protocol.CodeNotFound {
			t.Errorf("error = %v, want not found", err)
		}
	})
}

func TestRequestHandler_Prompts(t *testing.T) {
	srv := NewServer(ServerInfo{Name: "test-server", Version: "1.0.0"})

	srv.Prompt("review").
		Description("Code review prompt").
		Argument("language", "Programming language", true).
		Handler(func(ctx context.Context, args map[string]string) (*PromptResult, error) {
			return &PromptResult{
				Messages: []PromptMessage{{
					Role:    "user",
					Content: TextContent{Type: "text", Text: "review this " + args["language"]},
				}},
			}, nil
		})

	handler := newRequestHandler(srv)

	t.Run("prompts/list includes arguments", func(t *testing.T) {
		resp, err := handler.HandleRequest(context.Background(), request(t, "prompts/list", nil))
		if err != nil {
			t.Fatalf("HandleRequest failed: %v", err)
		}

		data, _ := json.Marshal(resp.Result)
		output := string(data)
		if !strings.Contains(output, `"review"`) || !strings.Contains(output, `"language"`) {
			t.Errorf("result = %q, want prompt with arguments", output)
		}
	})

	t.Run("prompts/get renders the prompt", func(t *testing.T) {
		req := request(t, "prompts/get", map[string]any{
			"name":      "review",
			"arguments": map[string]string{"language": "go"},
		})

		resp, err := handler.HandleRequest(context.Background(), req)
		if err != nil {
			t.Fatalf("HandleRequest failed: %v", err)
		}

		data, _ := json.Marshal(resp.Result)
		if !strings.Contains(string(data), "review this go") {
			t.Errorf("result = %s, want rendered prompt", data)
		}
	})

	t.Run("missing required argument fails", func(t *testing.T) {
		req := request(t, "prompts/get", map[string]any{"name": "review"})

		_, err := handler.HandleRequest(context.Background(), req)

		var mcpErr *protocol.Error
		if !asError(err, &mcpErr) || mcpErr.Code != protocol.CodeInvalidParams {
			t.Errorf("error = %v, want invalid params", err)
		}
	})
}

func TestRequestHandler_UnknownMethod(t *testing.T) {
	srv := NewServer(ServerInfo{Name: "test-server", Version: "1.0.0"})
	handler := newRequestHandler(srv)

	_, err := handler.HandleRequest(context.Background(), request(t, "unknown/method", nil))

	var mcpErr *protocol.Error
	if !asError(err, &mcpErr) || mcpErr.Code != protocol.CodeMethodNotFound {
		t.Errorf("error = %v, want method not found", err)
	}
}

func TestRequestHandler_Middleware(t *testing.T) {
	srv := NewServer(ServerInfo{Name: "test-server", Version: "1.0.0"})

	var order []string
	outer := func(next MiddlewareHandlerFunc) MiddlewareHandlerFunc {
		return func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			order = append(order, "serve")
			return next(ctx, req)
		}
	}
	srv.Use(func(next server.HandlerFunc) server.HandlerFunc {
		return func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			order = append(order, "server")
			return next(ctx, req)
		}
	})

	handler := newRequestHandler(srv, WithMiddleware(outer))

	_, err := handler.HandleRequest(context.Background(), request(t, "ping", nil))
	if err != nil {
		t.Fatalf("HandleRequest failed: %v", err)
	}

	if len(order) != 2 || order[0] != "serve" || order[1] != "server" {
		t.Errorf("order = %v, want serve middleware before server middleware", order)
	}
}

func asError(err error, target **protocol.Error) bool {
	return err != nil && errors.As(err, target)
}
