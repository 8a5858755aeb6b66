package builtin

import (
	"context"

	"github.com/meeting-baas/meeting-mcp/internal/middleware"
)

// RequestValidationMiddleware rejects malformed requests before they reach
// the dispatcher. Argument schemas are the dispatcher's concern; this only
// checks the request shape.
type RequestValidationMiddleware struct{}

// NewRequestValidationMiddleware creates a new request validation middleware
func NewRequestValidationMiddleware() *RequestValidationMiddleware {
	return &RequestValidationMiddleware{}
}

// Name returns the middleware name
func (m *RequestValidationMiddleware) Name() string {
	return "validation"
}

// Order returns the execution order
func (m *RequestValidationMiddleware) Order() int {
	return 1
}

// Enabled returns whether the middleware is enabled
func (m *RequestValidationMiddleware) Enabled() bool {
	return true
}

// Execute executes the middleware
func (m *RequestValidationMiddleware) Execute(ctx context.Context, req *middleware.Request, next middleware.Handler) (*middleware.Response, error) {
	if req.Method == "" {
		return middleware.ErrorResponse("Missing method in request"), nil
	}
	if req.Method == "tools/call" && req.ToolName == "" {
		return middleware.ErrorResponse("Missing tool name in request"), nil
	}

	return next(ctx)
}
