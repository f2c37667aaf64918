// Package transport provides MCP transport implementations.
package transport

import (
	"context"
	"encoding/json"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

// Handler processes incoming MCP requests.
type Handler interface {
	HandleRequest(ctx context.Context, req *protocol.Request) (*protocol.Response, error)
}

// HandlerFunc is an adapter to allow ordinary functions as handlers.
type HandlerFunc func(ctx context.Context, req *protocol.Request) (*protocol.Response, error)

// HandleRequest calls f(ctx, req).
func (f HandlerFunc) HandleRequest(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	return f(ctx, req)
}

// Transport defines the communication layer interface.
type Transport interface {
	// Serve starts the transport, blocking until ctx is canceled or an error occurs.
	Serve(ctx context.Context, handler Handler) error

	// Addr returns the transport's address description.
	Addr() string
}

// NotificationSender can send JSON-RPC notifications to clients.
type NotificationSender interface {
	SendNotification(method string, params any) error
}

type notificationSenderKey struct{}

// ContextWithNotificationSender returns a context with the notification sender attached.
func ContextWithNotificationSender(ctx context.Context, sender NotificationSender) context.Context {
	return context.WithValue(ctx, notificationSenderKey{}, sender)
}

// NotificationSenderFromContext returns the notification sender from context, or nil if none.
func NotificationSenderFromContext(ctx context.Context) NotificationSender {
	sender, _ := ctx.Value(notificationSenderKey{}).(NotificationSender)
	return sender
}

func marshalNotification(method string, params any) ([]byte, error) {
	var paramsData json.RawMessage
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		paramsData = data
	}

	return json.Marshal(protocol.Notification{
		JSONRPC: "2.0",
		Method:  method,
		Params:  paramsData,
	})
}
