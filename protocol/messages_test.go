package protocol

import (
	"encoding/json"
	"testing"
)

func TestRequest_IsNotification(t *testing.T) {
	t.Run("request with ID", func(t *testing.T) {
		req := &Request{JSONRPC: JSONRPCVersion, ID: json.RawMessage("1"), Method: MethodPing}

		if req.IsNotification() {
			t.Error("request with ID should not be a notification")
		}
	})

	t.Run("request without ID", func(t *testing.T) {
		req := &Request{JSONRPC: JSONRPCVersion, Method: MethodInitialized}

		if !req.IsNotification() {
			t.Error("request without ID should be a notification")
		}
	})
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse(json.RawMessage("42"), map[string]any{"ok": true})

	if resp.JSONRPC != JSONRPCVersion {
		t.Errorf("JSONRPC = %q, want %q", resp.JSONRPC, JSONRPCVersion)
	}
	if string(resp.ID) != "42" {
		t.Errorf("ID = %s, want 42", resp.ID)
	}
	if resp.Error != nil {
		t.Errorf("Error = %v, want nil", resp.Error)
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(json.RawMessage("7"), NewNotFound("prompt not found: greet"))

	if resp.Result != nil {
		t.Errorf("Result = %v, want nil", resp.Result)
	}
	if resp.Error == nil {
		t.Fatal("expected error to be set")
	}
	if resp.Error.Code != CodeNotFound {
		t.Errorf("Code = %d, want %d", resp.Error.Code, CodeNotFound)
	}
}

func TestNotification_Marshal(t *testing.T) {
	n := Notification{JSONRPC: JSONRPCVersion, Method: MethodToolListChanged}

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded["method"] != MethodToolListChanged {
		t.Errorf("method = %v, want %q", decoded["method"], MethodToolListChanged)
	}
	if _, present := decoded["params"]; present {
		t.Error("empty params should be omitted")
	}
}
