package config

import (
	"fmt"
	"net/url"
)

// ConfigValidator validates configuration
type ConfigValidator struct{}

// NewConfigValidator creates a new config validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// Validate validates the complete server configuration
func (v *ConfigValidator) Validate(config *ServerConfig) (bool, []string) {
	var errors []string

	errors = append(errors, v.validateAPI(&config.API)...)
	errors = append(errors, v.validateServer(&config.Server)...)
	errors = append(errors, v.validateLogging(&config.Logging)...)

	return len(errors) == 0, errors
}

func (v *ConfigValidator) validateAPI(config *APIConfig) []string {
	var errors []string

	if config.APIKey == nil || *config.APIKey == "" {
		errors = append(errors, "API configuration must have an apiKey (set MEETING_BAAS_API_KEY)")
	}

	if config.BaseURL != nil {
		if u, err := url.Parse(*config.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Sprintf("API baseUrl is not a valid URL: %s", *config.BaseURL))
		}
	}

	if config.TimeoutMillis != nil && *config.TimeoutMillis < 0 {
		errors = append(errors, "API timeoutMillis must be >= 0")
	}

	return errors
}

func (v *ConfigValidator) validateServer(config *ServerSettings) []string {
	var errors []string

	if config.Timeout != nil && *config.Timeout < 0 {
		errors = append(errors, "Server timeout must be >= 0")
	}

	return errors
}

func (v *ConfigValidator) validateLogging(config *LoggingConfig) []string {
	var errors []string

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, config.Level) {
		errors = append(errors, fmt.Sprintf("Logging level must be one of: %v", validLevels))
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, config.Format) {
		errors = append(errors, fmt.Sprintf("Logging format must be one of: %v", validFormats))
	}

	return errors
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
