package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meeting-baas/meeting-mcp/internal/middleware"
	"github.com/meeting-baas/meeting-mcp/pkg/mcp"
)

// setupHandlers registers the MCP method handlers
func (s *Server) setupHandlers() {
	s.mcpServer.SetHandler("tools/list", s.handleListTools)
	s.mcpServer.SetHandler("tools/call", s.handleCallTool)
}

// handleListTools advertises the registered tools, minus any group a feature
// flag has disabled.
func (s *Server) handleListTools(ctx context.Context, params json.RawMessage) (interface{}, error) {
	defs := s.registry.Definitions()
	out := make([]mcp.ToolDefinition, 0, len(defs))
	for _, def := range defs {
		if !s.filter.Allowed(def.Name) {
			continue
		}
		out = append(out, mcp.ToolDefinition{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		})
	}

	s.logger.Debug("Listed tools", map[string]interface{}{"count": len(out)})
	return mcp.ListToolsResponse{Tools: out}, nil
}

// handleCallTool routes a tools/call request through the middleware chain and
// into the dispatcher.
func (s *Server) handleCallTool(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var call mcp.CallToolRequest
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, fmt.Errorf("failed to parse tool call: %w", err)
	}

	if !s.filter.Allowed(call.Name) {
		return toToolResult(middleware.ErrorResponse("Tool not found: " + call.Name)), nil
	}

	req := &middleware.Request{
		Method:    "tools/call",
		ToolName:  call.Name,
		Arguments: call.Arguments,
	}

	resp, err := s.middleware.Execute(ctx, req, func(ctx context.Context) (*middleware.Response, error) {
		return s.dispatcher.Dispatch(ctx, call.Name, call.Arguments), nil
	})
	if err != nil {
		// The error middleware converts failures; anything left is a chain
		// misconfiguration.
		return nil, err
	}

	return toToolResult(resp), nil
}

func toToolResult(resp *middleware.Response) mcp.ToolResult {
	content := make([]mcp.ContentBlock, 0, len(resp.Content))
	for _, block := range resp.Content {
		content = append(content, mcp.ContentBlock{Type: block.Type, Text: block.Text})
	}
	return mcp.ToolResult{
		Content: content,
		IsError: resp.IsError,
	}
}
