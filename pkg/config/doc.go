// Package config provides application configuration management from environment variables.
//
// # Overview
//
// This package loads and validates configuration from environment variables
// with sensible defaults, optionally overlaid by a YAML file named in
// USERHUB_CONFIG_FILE.
//
// # Configuration Structure
//
// Server settings:
//
//	USERHUB_HOST="0.0.0.0"
//	USERHUB_PORT="8080"
//	USERHUB_READ_TIMEOUT="15s"
//	USERHUB_WRITE_TIMEOUT="15s"
//	USERHUB_ALLOWED_ORIGIN="http://localhost:3000"
//
// Store settings:
//
//	USERHUB_POSTGRES_URL="postgres://localhost/userhub"
//	USERHUB_POSTGRES_MAX_CONNS="25"
//	USERHUB_REDIS_URL="redis://localhost:6379/0"
//
// Session settings:
//
//	USERHUB_SESSION_TTL="168h"
//
// Observability settings:
//
//	USERHUB_LOG_LEVEL="info"  # debug, info, warn, error
//	USERHUB_LOG_FORMAT="json" # json, text
//	USERHUB_METRICS_ENABLED="true"
//
// # Usage Example
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("Server: %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// # Related Packages
//
//   - pkg/observability: uses observability configuration
package config
