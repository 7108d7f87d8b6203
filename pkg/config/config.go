package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Backing store configuration
	Postgres PostgresConfig
	Redis    RedisConfig

	// Session configuration
	Session SessionConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Origin allowed to make credentialed browser requests
	AllowedOrigin string
}

// PostgresConfig holds the user store connection settings
type PostgresConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	ConnTimeout  time.Duration
}

// RedisConfig holds the session store connection settings
type RedisConfig struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// SessionConfig holds session issuance settings
type SessionConfig struct {
	TTL time.Duration
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	LogLevel       string
	LogFormat      string
	MetricsEnabled bool
}

// Load builds configuration from environment variables, optionally overlaid
// by a YAML file named in USERHUB_CONFIG_FILE. File values win over
// environment values so a mounted config can pin a deployment.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("USERHUB_HOST", "0.0.0.0"),
			Port:            getEnv("USERHUB_PORT", "8080"),
			ReadTimeout:     getEnvDuration("USERHUB_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("USERHUB_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     getEnvDuration("USERHUB_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("USERHUB_SHUTDOWN_TIMEOUT", 30*time.Second),
			AllowedOrigin:   getEnv("USERHUB_ALLOWED_ORIGIN", "http://localhost:3000"),
		},
		Postgres: PostgresConfig{
			URL:          getEnv("USERHUB_POSTGRES_URL", ""),
			MaxOpenConns: getEnvInt("USERHUB_POSTGRES_MAX_CONNS", 25),
			MaxIdleConns: getEnvInt("USERHUB_POSTGRES_IDLE_CONNS", 5),
			ConnTimeout:  getEnvDuration("USERHUB_POSTGRES_TIMEOUT", 3*time.Second),
		},
		Redis: RedisConfig{
			URL:          getEnv("USERHUB_REDIS_URL", "redis://localhost:6379/0"),
			DialTimeout:  getEnvDuration("USERHUB_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvDuration("USERHUB_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvDuration("USERHUB_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Session: SessionConfig{
			TTL: getEnvDuration("USERHUB_SESSION_TTL", 7*24*time.Hour),
		},
		Observability: ObservabilityConfig{
			LogLevel:       getEnv("USERHUB_LOG_LEVEL", "info"),
			LogFormat:      getEnv("USERHUB_LOG_FORMAT", "json"),
			MetricsEnabled: getEnvBool("USERHUB_METRICS_ENABLED", true),
		},
	}

	if path := os.Getenv("USERHUB_CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// fileConfig mirrors Config for YAML decoding. Durations are strings so
// configs can say "30s" or "168h"; absent fields leave the loaded value
// untouched.
type fileConfig struct {
	Server struct {
		Host            string `yaml:"host"`
		Port            string `yaml:"port"`
		ReadTimeout     string `yaml:"read_timeout"`
		WriteTimeout    string `yaml:"write_timeout"`
		IdleTimeout     string `yaml:"idle_timeout"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
		AllowedOrigin   string `yaml:"allowed_origin"`
	} `yaml:"server"`
	Postgres struct {
		URL          string `yaml:"url"`
		MaxOpenConns *int   `yaml:"max_open_conns"`
		MaxIdleConns *int   `yaml:"max_idle_conns"`
		ConnTimeout  string `yaml:"conn_timeout"`
	} `yaml:"postgres"`
	Redis struct {
		URL          string `yaml:"url"`
		DialTimeout  string `yaml:"dial_timeout"`
		ReadTimeout  string `yaml:"read_timeout"`
		WriteTimeout string `yaml:"write_timeout"`
	} `yaml:"redis"`
	Session struct {
		TTL string `yaml:"ttl"`
	} `yaml:"session"`
	Observability struct {
		LogLevel       string `yaml:"log_level"`
		LogFormat      string `yaml:"log_format"`
		MetricsEnabled *bool  `yaml:"metrics_enabled"`
	} `yaml:"observability"`
}

// applyFile overlays YAML values onto the already-loaded configuration.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	overlayString(&c.Server.Host, fc.Server.Host)
	overlayString(&c.Server.Port, fc.Server.Port)
	overlayString(&c.Server.AllowedOrigin, fc.Server.AllowedOrigin)
	if err := overlayDuration(&c.Server.ReadTimeout, fc.Server.ReadTimeout); err != nil {
		return err
	}
	if err := overlayDuration(&c.Server.WriteTimeout, fc.Server.WriteTimeout); err != nil {
		return err
	}
	if err := overlayDuration(&c.Server.IdleTimeout, fc.Server.IdleTimeout); err != nil {
		return err
	}
	if err := overlayDuration(&c.Server.ShutdownTimeout, fc.Server.ShutdownTimeout); err != nil {
		return err
	}

	overlayString(&c.Postgres.URL, fc.Postgres.URL)
	if fc.Postgres.MaxOpenConns != nil {
		c.Postgres.MaxOpenConns = *fc.Postgres.MaxOpenConns
	}
	if fc.Postgres.MaxIdleConns != nil {
		c.Postgres.MaxIdleConns = *fc.Postgres.MaxIdleConns
	}
	if err := overlayDuration(&c.Postgres.ConnTimeout, fc.Postgres.ConnTimeout); err != nil {
		return err
	}

	overlayString(&c.Redis.URL, fc.Redis.URL)
	if err := overlayDuration(&c.Redis.DialTimeout, fc.Redis.DialTimeout); err != nil {
		return err
	}
	if err := overlayDuration(&c.Redis.ReadTimeout, fc.Redis.ReadTimeout); err != nil {
		return err
	}
	if err := overlayDuration(&c.Redis.WriteTimeout, fc.Redis.WriteTimeout); err != nil {
		return err
	}

	if err := overlayDuration(&c.Session.TTL, fc.Session.TTL); err != nil {
		return err
	}

	overlayString(&c.Observability.LogLevel, fc.Observability.LogLevel)
	overlayString(&c.Observability.LogFormat, fc.Observability.LogFormat)
	if fc.Observability.MetricsEnabled != nil {
		c.Observability.MetricsEnabled = *fc.Observability.MetricsEnabled
	}

	return nil
}

func overlayString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func overlayDuration(dst *time.Duration, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value, err)
	}
	*dst = d
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Postgres.URL == "" {
		return fmt.Errorf("postgres URL is required")
	}
	if c.Redis.URL == "" {
		return fmt.Errorf("redis URL is required")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}
	return nil
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
