package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// ConfigLoader handles loading configuration from multiple sources
type ConfigLoader struct{}

// NewConfigLoader creates a new config loader
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *ServerConfig {
	timeout := 30000
	apiTimeout := 30000
	output := "stderr"
	enableReqLog := true
	enableRespLog := false
	enableMetrics := false
	enableHealthCheck := true

	return &ServerConfig{
		API: APIConfig{
			BaseURL:       stringPtr("https://api.meetingbaas.com"),
			TimeoutMillis: &apiTimeout,
		},
		Server: ServerSettings{
			Name:              stringPtr("meeting-mcp-server"),
			Version:           stringPtr("1.0.0"),
			Timeout:           &timeout,
			EnableMetrics:     &enableMetrics,
			EnableHealthCheck: &enableHealthCheck,
		},
		Logging: LoggingConfig{
			Level:                 "info",
			Format:                "text",
			Output:                &output,
			EnableRequestLogging:  &enableReqLog,
			EnableResponseLogging: &enableRespLog,
		},
		Features: FeaturesConfig{
			Meetings:    &FeatureFlag{Enabled: true},
			Calendars:   &FeatureFlag{Enabled: true},
			Search:      &FeatureFlag{Enabled: true},
			Diagnostics: &FeatureFlag{Enabled: true},
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func (l *ConfigLoader) LoadFromFile(configPath string) (*ServerConfig, error) {
	possiblePaths := []string{}

	if configPath != "" {
		possiblePaths = append(possiblePaths, configPath)
	}

	if envPath := os.Getenv("MEETING_MCP_CONFIG"); envPath != "" {
		possiblePaths = append(possiblePaths, envPath)
	}

	cwd, _ := os.Getwd()
	possiblePaths = append(possiblePaths,
		filepath.Join(cwd, "mcp-config.json"),
	)

	if home, err := os.UserHomeDir(); err == nil {
		possiblePaths = append(possiblePaths,
			filepath.Join(home, ".meetingbaas", "mcp-config.json"),
		)
	}

	for _, path := range possiblePaths {
		if data, err := os.ReadFile(path); err == nil {
			var config ServerConfig
			if err := json.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
			}
			return &config, nil
		}
	}

	return nil, nil // No config file found
}

// MergeWithEnv merges configuration with environment variables.
// A .env file in the working directory is honored before reading the
// environment so local setups only need MEETING_BAAS_API_KEY in .env.
func (l *ConfigLoader) MergeWithEnv(config *ServerConfig) *ServerConfig {
	_ = godotenv.Load()

	merged := *config

	// API config from env
	if key := os.Getenv("MEETING_BAAS_API_KEY"); key != "" {
		merged.API.APIKey = &key
	}
	if baseURL := os.Getenv("MEETING_BAAS_API_URL"); baseURL != "" {
		merged.API.BaseURL = &baseURL
	}
	if timeoutStr := os.Getenv("MEETING_BAAS_TIMEOUT_MS"); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil {
			merged.API.TimeoutMillis = &timeout
		}
	}

	// Logging config from env
	if level := os.Getenv("MEETING_MCP_LOG_LEVEL"); level != "" {
		merged.Logging.Level = level
	}
	if format := os.Getenv("MEETING_MCP_LOG_FORMAT"); format != "" {
		merged.Logging.Format = format
	}
	if output := os.Getenv("MEETING_MCP_LOG_OUTPUT"); output != "" {
		merged.Logging.Output = &output
	}

	// Metrics from env
	if metrics := os.Getenv("MEETING_MCP_ENABLE_METRICS"); metrics != "" {
		enabled := metrics == "true"
		merged.Server.EnableMetrics = &enabled
	}
	if addr := os.Getenv("MEETING_MCP_METRICS_ADDR"); addr != "" {
		merged.Server.MetricsAddr = &addr
	}

	return &merged
}

// Helper functions
func stringPtr(s string) *string {
	return &s
}
