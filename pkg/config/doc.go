// Package config provides configuration management for the PAM module.
//
// This package handles loading and validating PAM provisioning
// configuration from environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - PAM_PROVISIONING_WORKFLOW: workflow for identity access changes
//   - PAM_MANAGED_ATTRIBUTE_WORKFLOW: workflow for container mutations
//   - PAM_PENDING_REQUEST_GUARD: pending-workflow conflict guard toggle
//   - PAM_LOG_LEVEL: logging verbosity
//   - DATABASE_URL: database connection
package config
