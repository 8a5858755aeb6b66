package builtin

import (
	"context"

	"github.com/meeting-baas/meeting-mcp/internal/logging"
	"github.com/meeting-baas/meeting-mcp/internal/middleware"
)

// ErrorHandlingMiddleware is the terminal safety net: any error that escapes
// the layers below becomes a well-formed error envelope, so the caller never
// sees an unhandled failure.
type ErrorHandlingMiddleware struct {
	logger *logging.Logger
}

// NewErrorHandlingMiddleware creates a new error handling middleware
func NewErrorHandlingMiddleware(logger *logging.Logger) *ErrorHandlingMiddleware {
	return &ErrorHandlingMiddleware{logger: logger}
}

// Name returns the middleware name
func (m *ErrorHandlingMiddleware) Name() string {
	return "error-handling"
}

// Order returns the execution order
func (m *ErrorHandlingMiddleware) Order() int {
	return 100
}

// Enabled returns whether the middleware is enabled
func (m *ErrorHandlingMiddleware) Enabled() bool {
	return true
}

// Execute executes the middleware
func (m *ErrorHandlingMiddleware) Execute(ctx context.Context, req *middleware.Request, next middleware.Handler) (*middleware.Response, error) {
	resp, err := next(ctx)
	if err != nil {
		m.logger.Error("Unhandled error", err, map[string]interface{}{
			"method": req.Method,
			"tool":   req.ToolName,
		})
		return middleware.ErrorResponse("Error: " + err.Error()), nil
	}

	return resp, nil
}
