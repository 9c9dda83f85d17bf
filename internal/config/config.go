package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Server modes
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		// URL takes precedence over the individual connection fields
		URL                 string `yaml:"url" env:"DATABASE_URL"`
		Host                string `yaml:"host" env:"DB_HOST"`
		Port                string `yaml:"port" env:"DB_PORT"`
		User                string `yaml:"user" env:"DB_USER"`
		Password            string `yaml:"password" env:"DB_PASSWORD"`
		DBName              string `yaml:"dbname" env:"DB_NAME"`
		SSLMode             string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns        int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns        int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime     string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		HealthCheckInterval string `yaml:"health_check_interval" env:"DB_HEALTH_CHECK_INTERVAL"`
	} `yaml:"database"`

	Geocoder struct {
		Provider string `yaml:"provider" env:"GEOCODER_PROVIDER"`
		APIKey   string `yaml:"api_key" env:"GEOCODER_API_KEY"`
		BaseURL  string `yaml:"base_url" env:"GEOCODER_BASE_URL"`
		Timeout  string `yaml:"timeout" env:"GEOCODER_TIMEOUT"`
	} `yaml:"geocoder"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and the environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = ModeDevelopment
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "devcamper"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.HealthCheckInterval = "30s"

	config.Geocoder.Provider = "mapquest"
	config.Geocoder.Timeout = "10s"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch strings.ToLower(config.Server.Mode) {
	case ModeDevelopment, ModeProduction:
	default:
		return fmt.Errorf("server mode must be %q or %q, got %q", ModeDevelopment, ModeProduction, config.Server.Mode)
	}

	if config.Database.URL == "" && config.Database.Host == "" {
		return fmt.Errorf("database url or host is required")
	}

	durations := map[string]string{
		"server read timeout":            config.Server.ReadTimeout,
		"server write timeout":           config.Server.WriteTimeout,
		"server shutdown timeout":        config.Server.ShutdownTimeout,
		"database connection lifetime":   config.Database.ConnMaxLifetime,
		"database health check interval": config.Database.HealthCheckInterval,
		"geocoder timeout":               config.Geocoder.Timeout,
	}
	for name, value := range durations {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %q", name, value)
		}
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == ModeProduction
}

// ValidateGeocoder checks the settings only the API server needs
func (c *Config) ValidateGeocoder() error {
	if c.Geocoder.APIKey == "" {
		return fmt.Errorf("geocoder API key is required")
	}
	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
