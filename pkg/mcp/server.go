package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// HandlerFunc is a function that handles an MCP request
type HandlerFunc func(ctx context.Context, params json.RawMessage) (interface{}, error)

// Server is an MCP protocol server over a stdio transport
type Server struct {
	transport *StdioTransport
	handlers  map[string]HandlerFunc
	info      ServerInfo
	caps      ServerCapabilities
}

// NewServer creates a new MCP server on stdin/stdout
func NewServer(name, version string) *Server {
	return NewServerWithTransport(name, version, NewStdioTransport())
}

// NewServerWithTransport creates a new MCP server on the given transport
func NewServerWithTransport(name, version string, transport *StdioTransport) *Server {
	return &Server{
		transport: transport,
		handlers:  make(map[string]HandlerFunc),
		info: ServerInfo{
			Name:    name,
			Version: version,
		},
		caps: ServerCapabilities{
			Tools: make(map[string]interface{}),
		},
	}
}

// SetHandler registers a handler for a method
func (s *Server) SetHandler(method string, handler HandlerFunc) {
	s.handlers[method] = handler
}

// SetCapabilities sets server capabilities
func (s *Server) SetCapabilities(caps ServerCapabilities) {
	s.caps = caps
}

// HandleInitialize handles the initialize request
func (s *Server) HandleInitialize(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req InitializeRequest
	if len(params) > 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, fmt.Errorf("failed to parse initialize request: %w", err)
		}
	}

	return InitializeResponse{
		ProtocolVersion: ProtocolVersion,
		Capabilities:    s.caps,
		ServerInfo:      s.info,
	}, nil
}

// HandlePing handles the ping request
func (s *Server) HandlePing(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return map[string]interface{}{}, nil
}

// Run processes requests until the stream closes or the context is canceled.
// Notifications (requests without an id) are never answered.
func (s *Server) Run(ctx context.Context) error {
	s.SetHandler("initialize", s.HandleInitialize)
	s.SetHandler("ping", s.HandlePing)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		req, err := s.transport.ReadMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			// Malformed line: answer with a parse error and keep serving
			writeErr := s.transport.WriteMessage(
				CreateErrorResponse(nil, ErrCodeParseError, err.Error(), nil))
			if writeErr != nil {
				return writeErr
			}
			continue
		}

		if req.IsNotification() {
			s.handleNotification(ctx, req)
			continue
		}

		resp := s.handleRequest(ctx, req)
		if err := s.transport.WriteMessage(resp); err != nil {
			return err
		}
	}
}

func (s *Server) handleRequest(ctx context.Context, req *JSONRPCRequest) *JSONRPCResponse {
	handler, exists := s.handlers[req.Method]
	if !exists {
		return CreateErrorResponse(req.ID, ErrCodeMethodNotFound,
			fmt.Sprintf("method not found: %s", req.Method), nil)
	}

	result, err := handler(ctx, req.Params)
	if err != nil {
		return CreateErrorResponse(req.ID, ErrCodeInternalError, err.Error(), nil)
	}

	return CreateResponse(req.ID, result)
}

func (s *Server) handleNotification(ctx context.Context, req *JSONRPCRequest) {
	if handler, exists := s.handlers[req.Method]; exists {
		_, _ = handler(ctx, req.Params)
	}
}
