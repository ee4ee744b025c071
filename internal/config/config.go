package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the taskdeck client
type Config struct {
	API         APIConfig
	Session     SessionConfig
	Web         WebConfig
	Application ApplicationConfig
}

// APIConfig holds remote task service configuration
type APIConfig struct {
	BaseURL  string        `env:"TASKDECK_API_URL"`
	Timeout  time.Duration `env:"TASKDECK_API_TIMEOUT"`
	PageSize int           `env:"TASKDECK_API_PAGE_SIZE"`
}

// SessionConfig holds persisted-session store configuration
type SessionConfig struct {
	Dir      string `env:"TASKDECK_SESSION_DIR"`
	Filename string `env:"TASKDECK_SESSION_FILENAME"`
}

// WebConfig holds the local read-only web view configuration
type WebConfig struct {
	Addr string `env:"TASKDECK_WEB_ADDR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TASKDECK_APP_TIMEOUT"`
	Verbose bool          `env:"TASKDECK_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultSessionDir := filepath.Join(homeDir, ".taskdeck")

	return &Config{
		API: APIConfig{
			BaseURL:  "http://localhost:8080/api/v1",
			Timeout:  30 * time.Second,
			PageSize: 50,
		},
		Session: SessionConfig{
			Dir:      defaultSessionDir,
			Filename: "session.db",
		},
		Web: WebConfig{
			Addr: "127.0.0.1:9091",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetSessionPath returns the full path to the session database file
func (c *Config) GetSessionPath() string {
	return filepath.Join(c.Session.Dir, c.Session.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// API configuration
	if baseURL := os.Getenv("TASKDECK_API_URL"); baseURL != "" {
		c.API.BaseURL = baseURL
	}
	if timeout := os.Getenv("TASKDECK_API_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.API.Timeout = d
		}
	}
	if pageSize := os.Getenv("TASKDECK_API_PAGE_SIZE"); pageSize != "" {
		if n, err := strconv.Atoi(pageSize); err == nil {
			c.API.PageSize = n
		}
	}

	// Session configuration
	if dir := os.Getenv("TASKDECK_SESSION_DIR"); dir != "" {
		c.Session.Dir = dir
	}
	if filename := os.Getenv("TASKDECK_SESSION_FILENAME"); filename != "" {
		c.Session.Filename = filename
	}

	// Web configuration
	if addr := os.Getenv("TASKDECK_WEB_ADDR"); addr != "" {
		c.Web.Addr = addr
	}

	// Application configuration
	if timeout := os.Getenv("TASKDECK_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TASKDECK_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return &ConfigError{Field: "api.base_url", Message: "API base URL cannot be empty"}
	}
	if c.API.Timeout <= 0 {
		return &ConfigError{Field: "api.timeout", Message: "API timeout must be positive"}
	}
	if c.API.PageSize < 1 {
		return &ConfigError{Field: "api.page_size", Message: "page size must be at least 1"}
	}

	if c.Session.Dir == "" {
		return &ConfigError{Field: "session.dir", Message: "session directory cannot be empty"}
	}
	if c.Session.Filename == "" {
		return &ConfigError{Field: "session.filename", Message: "session filename cannot be empty"}
	}

	if c.Web.Addr == "" {
		return &ConfigError{Field: "web.addr", Message: "web listen address cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
