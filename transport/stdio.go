package transport

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

// Stdio implements MCP transport over stdin/stdout.
type Stdio struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	mu sync.Mutex
}

// StdioOption configures a Stdio transport.
type StdioOption func(*Stdio)

// WithStdin sets a custom stdin reader.
func WithStdin(r io.Reader) StdioOption {
	return func(s *Stdio) {
		s.in = r
	}
}

// WithStdout sets a custom stdout writer.
func WithStdout(w io.Writer) StdioOption {
	return func(s *Stdio) {
		s.out = w
	}
}

// WithStderr sets a custom stderr writer.
func WithStderr(w io.Writer) StdioOption {
	return func(s *Stdio) {
		s.errOut = w
	}
}

// NewStdio creates a new stdio transport.
func NewStdio(opts ...StdioOption) *Stdio {
	s := &Stdio{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Addr returns the transport address.
func (s *Stdio) Addr() string {
	return "stdio"
}

// Serve starts processing requests from stdin.
func (s *Stdio) Serve(ctx context.Context, handler Handler) error {
	scanner := bufio.NewScanner(s.in)

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			scanErr <- err
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-scanErr:
			return err
		case line, ok := <-lines:
			if !ok {
				return nil // EOF
			}
			s.handleLine(ctx, handler, line)
		}
	}
}

// SendNotification sends a JSON-RPC notification to the client.
func (s *Stdio) SendNotification(method string, params any) error {
	data, err := marshalNotification(method, params)
	if err != nil {
		return err
	}
	return s.writeLine(data)
}

// NotifyToolListChanged tells the client that the tool list changed.
func (s *Stdio) NotifyToolListChanged() error {
	return s.SendNotification(protocol.MethodToolListChanged, nil)
}

// NotifyResourceListChanged tells the client that the resource list changed.
func (s *Stdio) NotifyResourceListChanged() error {
	return s.SendNotification(protocol.MethodResourceListChanged, nil)
}

// NotifyPromptListChanged tells the client that the prompt list changed.
func (s *Stdio) NotifyPromptListChanged() error {
	return s.SendNotification(protocol.MethodPromptListChanged, nil)
}

func (s *Stdio) handleLine(ctx context.Context, handler Handler, line string) {
	var req protocol.Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		s.writeResponse(protocol.NewErrorResponse(nil, protocol.NewParseError(err.Error())))
		return
	}

	ctx = ContextWithNotificationSender(ctx, s)

	resp, err := handler.HandleRequest(ctx, &req)

	// Notifications never get a response.
	if req.IsNotification() {
		return
	}

	if err != nil {
		var mcpErr *protocol.Error
		if errors.As(err, &mcpErr) {
			resp = protocol.NewErrorResponse(req.ID, mcpErr)
		} else {
			resp = protocol.NewErrorResponse(req.ID, protocol.NewInternalError(err.Error()))
		}
	}

	if resp != nil {
		s.writeResponse(resp)
	}
}

func (s *Stdio) writeResponse(resp *protocol.Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	_ = s.writeLine(data)
}

func (s *Stdio) writeLine(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.out.Write(data); err != nil {
		return err
	}
	_, err := s.out.Write([]byte("\n"))
	return err
}
