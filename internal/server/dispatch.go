package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/meeting-baas/meeting-mcp/internal/logging"
	"github.com/meeting-baas/meeting-mcp/internal/metrics"
	"github.com/meeting-baas/meeting-mcp/internal/middleware"
	"github.com/meeting-baas/meeting-mcp/internal/tools"
)

// Dispatcher turns a (tool name, raw argument bag) pair into the uniform
// response envelope. Lookup, validation, invocation, and normalization all
// resolve here; no failure path escapes as a Go error.
type Dispatcher struct {
	registry *tools.Registry
	logger   *logging.Logger
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(registry *tools.Registry, logger *logging.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger,
	}
}

// Dispatch runs one invocation
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]interface{}) *middleware.Response {
	start := time.Now()
	logger := d.logger.Child(map[string]interface{}{
		"tool":       name,
		"invocation": uuid.New().String(),
	})

	if args == nil {
		args = map[string]interface{}{}
	}

	tool, exists := d.registry.Get(name)
	if !exists {
		logger.Warn("Unknown tool requested", nil)
		metrics.RecordInvocation(name, metrics.StatusUnknownTool, time.Since(start))
		return middleware.ErrorResponse("Tool not found: " + name)
	}

	if err := tool.Schema().Validate(args); err != nil {
		logger.Warn("Invalid arguments", map[string]interface{}{"reason": err.Error()})
		metrics.RecordInvocation(name, metrics.StatusInvalid, time.Since(start))
		return middleware.ErrorResponse(fmt.Sprintf("Invalid arguments for %s: %s", name, err.Error()))
	}

	result, err := tool.Execute(ctx, args)
	if err != nil {
		// The backend error stays in the logs; the caller gets the tool's
		// fixed failure sentence.
		logger.Error("Tool execution failed", err, nil)
		metrics.RecordInvocation(name, metrics.StatusError, time.Since(start))
		return middleware.ErrorResponse(tool.FailureText())
	}

	metrics.RecordInvocation(name, metrics.StatusOK, time.Since(start))
	return d.formatResult(logger, tool, result)
}

// formatResult renders a handler result as one text content block. Structured
// payloads are serialized in full; pre-rendered sentences pass through.
func (d *Dispatcher) formatResult(logger *logging.Logger, tool tools.Tool, result *tools.Result) *middleware.Response {
	if result == nil {
		return middleware.TextResponse("")
	}
	if result.Data != nil {
		data, err := json.MarshalIndent(result.Data, "", "  ")
		if err != nil {
			logger.Error("Failed to serialize tool result", err, nil)
			return middleware.ErrorResponse(tool.FailureText())
		}
		return middleware.TextResponse(string(data))
	}
	return middleware.TextResponse(result.Text)
}
