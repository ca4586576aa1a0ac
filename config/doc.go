// Package config provides configuration loading and validation for portico.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (PORTICO_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
//	// Retrieve later
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All config keys map to environment variables with PORTICO_ prefix:
//   - server.port → PORTICO_SERVER_PORT
//   - static.path → PORTICO_STATIC_PATH
//   - static.entry → PORTICO_STATIC_ENTRY
//
// # Configuration Structure
//
// The Config struct contains:
//   - Server: listen host and port for local serve mode
//   - Static: asset root path and entry document name
//   - CORS: cross-origin resource sharing settings
//   - Log: logging level
//   - Env: dev or prod, selects the logging handler
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Static path and entry document must be set
//   - Log level must be debug, info, warn, or error
package config
