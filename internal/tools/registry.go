package tools

import (
	"fmt"
	"sync"

	"github.com/meeting-baas/meeting-mcp/internal/logging"
)

// ToolDefinition is one tool's advertised identity for tools/list
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Registry maps tool names to tools. It is built once at startup and is
// read-only afterwards; registration of a duplicate name is a startup error.
type Registry struct {
	tools       map[string]Tool
	definitions map[string]ToolDefinition
	order       []string
	mu          sync.RWMutex
	logger      *logging.Logger
}

// NewRegistry creates a new tool registry
func NewRegistry(logger *logging.Logger) *Registry {
	return &Registry{
		tools:       make(map[string]Tool),
		definitions: make(map[string]ToolDefinition),
		logger:      logger,
	}
}

// Register registers a tool. Duplicate names are rejected.
func (r *Registry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool already registered: %s", name)
	}

	r.tools[name] = tool
	r.definitions[name] = ToolDefinition{
		Name:        name,
		Description: tool.Description(),
		InputSchema: tool.Schema().JSONSchema(),
	}
	r.order = append(r.order, name)
	r.logger.Debug(fmt.Sprintf("Registered tool: %s", name), nil)
	return nil
}

// RegisterAll registers multiple tools, stopping at the first failure
func (r *Registry) RegisterAll(tools ...Tool) error {
	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a tool by name. An unknown name is an expected runtime
// condition, reported through the second return value.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, exists := r.tools[name]
	return tool, exists
}

// Definitions returns all tool definitions in registration order
func (r *Registry) Definitions() []ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definitions := make([]ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		definitions = append(definitions, r.definitions[name])
	}
	return definitions
}

// Names returns all registered tool names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Has checks if a tool exists
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.tools[name]
	return exists
}

// Count returns the number of registered tools
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
