package middleware

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

// PanicHandler is called when a panic is recovered.
type PanicHandler func(ctx context.Context, req *protocol.Request, panicVal any) (*protocol.Response, error)

// Recover returns middleware that catches panics and converts them to
// internal-category errors. The dispatch core itself never recovers a
// panicking domain handler; this middleware is the invocation layer's
// conversion point before a result crosses the protocol boundary.
func Recover() Middleware {
	return RecoverWithHandler(defaultPanicHandler)
}

// RecoverWithHandler returns middleware that catches panics and calls
// the provided handler, allowing custom handling such as alerting.
func RecoverWithHandler(handler PanicHandler) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req *protocol.Request) (resp *protocol.Response, err error) {
			defer func() {
				if r := recover(); r != nil {
					resp, err = handler(ctx, req, r)
				}
			}()
			return next(ctx, req)
		}
	}
}

func defaultPanicHandler(_ context.Context, _ *protocol.Request, panicVal any) (*protocol.Response, error) {
	return nil, protocol.NewInternalError(fmt.Sprintf("panic: %v", panicVal))
}
