package server

import (
	"github.com/meeting-baas/meeting-mcp/internal/config"
	"github.com/meeting-baas/meeting-mcp/internal/logging"
	"github.com/meeting-baas/meeting-mcp/internal/middleware"
	"github.com/meeting-baas/meeting-mcp/internal/middleware/builtin"
)

// setupBuiltInMiddleware registers the built-in middleware chain
func setupBuiltInMiddleware(manager *middleware.Manager, cfg *config.ServerConfig, logger *logging.Logger) {
	manager.Register(builtin.NewRequestValidationMiddleware())

	enableRequest := true
	if cfg.Logging.EnableRequestLogging != nil {
		enableRequest = *cfg.Logging.EnableRequestLogging
	}
	enableResponse := false
	if cfg.Logging.EnableResponseLogging != nil {
		enableResponse = *cfg.Logging.EnableResponseLogging
	}
	manager.Register(builtin.NewLoggingMiddleware(logger, enableRequest, enableResponse))

	manager.Register(builtin.NewTimeoutMiddleware(cfg.Server.GetTimeout(), logger))
	manager.Register(builtin.NewErrorHandlingMiddleware(logger))
}
