package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/meeting-baas/meeting-mcp/internal/baas"
	"github.com/meeting-baas/meeting-mcp/internal/config"
	"github.com/meeting-baas/meeting-mcp/internal/logging"
	"github.com/meeting-baas/meeting-mcp/internal/metrics"
	"github.com/meeting-baas/meeting-mcp/internal/middleware"
	"github.com/meeting-baas/meeting-mcp/internal/tools"
	"github.com/meeting-baas/meeting-mcp/pkg/mcp"
)

// Server wires the Meeting BaaS MCP service together: configuration, the
// tool registry, the middleware chain, the dispatcher, and the protocol
// server on stdio.
type Server struct {
	cfg        *config.ServerConfig
	logger     *logging.Logger
	registry   *tools.Registry
	dispatcher *Dispatcher
	middleware *middleware.Manager
	filter     *ToolFilter
	mcpServer  *mcp.Server
	metricsSrv *http.Server
}

// NewServer creates a fully wired server from the given config path. An empty
// path falls back to the default config search order.
func NewServer(configPath string) (*Server, error) {
	manager := config.NewConfigManager()
	cfg, err := manager.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(&cfg.Logging)
	logger.Info("Starting server", map[string]interface{}{
		"name":    cfg.Server.GetName(),
		"version": cfg.Server.GetVersion(),
	})

	backend := baas.NewClient(&cfg.API)

	registry := tools.NewRegistry(logger)
	if err := tools.RegisterAllTools(registry, backend); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	logger.Info("Registered tools", map[string]interface{}{"count": registry.Count()})

	mwManager := middleware.NewManager(logger)
	setupBuiltInMiddleware(mwManager, cfg, logger)

	s := &Server{
		cfg:        cfg,
		logger:     logger,
		registry:   registry,
		dispatcher: NewDispatcher(registry, logger),
		middleware: mwManager,
		filter:     NewToolFilter(&cfg.Features),
		mcpServer:  mcp.NewServer(cfg.Server.GetName(), cfg.Server.GetVersion()),
	}
	s.setupHandlers()

	return s, nil
}

// Start runs the server until the context is canceled or stdin closes
func (s *Server) Start(ctx context.Context) error {
	if s.cfg.Server.EnableMetrics != nil && *s.cfg.Server.EnableMetrics {
		s.startMetricsListener()
	}

	err := s.mcpServer.Run(ctx)
	if err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// Stop shuts down auxiliary listeners
func (s *Server) Stop() {
	if s.metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.metricsSrv.Shutdown(ctx); err != nil {
			s.logger.Warn("Metrics listener shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	s.logger.Info("Server stopped", nil)
}

func (s *Server) startMetricsListener() {
	enableHealth := s.cfg.Server.EnableHealthCheck == nil || *s.cfg.Server.EnableHealthCheck
	addr := s.cfg.Server.GetMetricsAddr()

	s.metricsSrv = &http.Server{
		Addr:    addr,
		Handler: metrics.Router(enableHealth),
	}

	s.logger.Info("Starting metrics listener", map[string]interface{}{"addr": addr})
	go func() {
		if err := s.metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Metrics listener failed", err, nil)
		}
	}()
}
