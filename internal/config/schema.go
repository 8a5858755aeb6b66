package config

import "time"

// ServerConfig is the root configuration structure
type ServerConfig struct {
	API      APIConfig      `json:"api"`
	Server   ServerSettings `json:"server"`
	Logging  LoggingConfig  `json:"logging"`
	Features FeaturesConfig `json:"features"`
}

// APIConfig holds Meeting BaaS API connection configuration
type APIConfig struct {
	APIKey        *string `json:"apiKey,omitempty"`
	BaseURL       *string `json:"baseUrl,omitempty"`
	TimeoutMillis *int    `json:"timeoutMillis,omitempty"`
}

// ServerSettings holds server configuration
type ServerSettings struct {
	Name              *string `json:"name,omitempty"`
	Version           *string `json:"version,omitempty"`
	Timeout           *int    `json:"timeout,omitempty"`
	EnableMetrics     *bool   `json:"enableMetrics,omitempty"`
	EnableHealthCheck *bool   `json:"enableHealthCheck,omitempty"`
	MetricsAddr       *string `json:"metricsAddr,omitempty"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level                 string  `json:"level"`
	Format                string  `json:"format"`
	Output                *string `json:"output,omitempty"`
	EnableRequestLogging  *bool   `json:"enableRequestLogging,omitempty"`
	EnableResponseLogging *bool   `json:"enableResponseLogging,omitempty"`
}

// FeaturesConfig holds feature flags controlling which tool groups are exposed
type FeaturesConfig struct {
	Meetings    *FeatureFlag `json:"meetings,omitempty"`
	Calendars   *FeatureFlag `json:"calendars,omitempty"`
	Search      *FeatureFlag `json:"search,omitempty"`
	Diagnostics *FeatureFlag `json:"diagnostics,omitempty"`
}

// FeatureFlag enables or disables one tool group
type FeatureFlag struct {
	Enabled bool `json:"enabled"`
}

// Helper methods for getting values with defaults

func (c *APIConfig) GetAPIKey() string {
	if c.APIKey != nil {
		return *c.APIKey
	}
	return ""
}

func (c *APIConfig) GetBaseURL() string {
	if c.BaseURL != nil {
		return *c.BaseURL
	}
	return "https://api.meetingbaas.com"
}

func (c *APIConfig) GetTimeout() time.Duration {
	if c.TimeoutMillis != nil {
		return time.Duration(*c.TimeoutMillis) * time.Millisecond
	}
	return 30 * time.Second
}

func (s *ServerSettings) GetName() string {
	if s.Name != nil {
		return *s.Name
	}
	return "meeting-mcp-server"
}

func (s *ServerSettings) GetVersion() string {
	if s.Version != nil {
		return *s.Version
	}
	return "1.0.0"
}

func (s *ServerSettings) GetTimeout() time.Duration {
	if s.Timeout != nil {
		return time.Duration(*s.Timeout) * time.Millisecond
	}
	return 30 * time.Second
}

func (s *ServerSettings) GetMetricsAddr() string {
	if s.MetricsAddr != nil {
		return *s.MetricsAddr
	}
	return ":9090"
}
