// Package protocol defines the JSON-RPC 2.0 message types, MCP method
// names, and the error taxonomy shared by every layer of mcp-core.
//
// # Request and Response Types
//
// The package defines the core JSON-RPC 2.0 message types:
//
//	type Request struct {
//	    JSONRPC string          `json:"jsonrpc"`
//	    ID      json.RawMessage `json:"id,omitempty"`
//	    Method  string          `json:"method"`
//	    Params  json.RawMessage `json:"params,omitempty"`
//	}
//
//	type Response struct {
//	    JSONRPC string          `json:"jsonrpc"`
//	    ID      json.RawMessage `json:"id,omitempty"`
//	    Result  any             `json:"result,omitempty"`
//	    Error   *Error          `json:"error,omitempty"`
//	}
//
// # Errors
//
// Every error produced or forwarded by the framework is a *Error carrying
// a JSON-RPC code and a Category from the ten-value taxonomy (validation,
// not_found, conflict, permission, timeout, rate_limit, network, internal,
// auth, cancelled). The registration-and-dispatch core itself only ever
// produces CategoryNotFound; all other categories originate in domain
// handlers and are forwarded unchanged.
//
// Helper constructors create properly formatted errors:
//
//	err := protocol.NewNotFound("resource not found: db:///users/1")
//	err := protocol.NewInvalidParams("missing required field: name")
//
// # MCP Method Constants
//
// Standard MCP request and notification method names are defined as
// constants, e.g. MethodToolsCall, MethodResourcesRead,
// MethodToolListChanged.
package protocol
