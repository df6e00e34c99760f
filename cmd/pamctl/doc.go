// Package main provides pamctl, the CLI for the PAM container module.
//
// The PAM module governs access to privileged-access containers (safes)
// aggregated from an external PAM system. It resolves who can reach a
// container directly or through groups, and submits provisioning
// requests as asynchronous workflows.
//
// # Architecture
//
// The module is organized into several packages:
//
//   - pkg/pam/container: container access resolution
//   - pkg/pam/external: external group to stub group bridging
//   - pkg/pam/schema: correlation key resolution
//   - pkg/pam/permission: permission aggregation
//   - pkg/pam/provisioning: provisioning plan orchestration
//   - pkg/workflow: asynchronous workflow launches
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/audit: audit logging
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Run database migrations
//	pamctl db migrate
//
//	# List containers
//	pamctl container list
//
//	# Show who can access a container
//	pamctl container show <container-id>
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - PAM_PROVISIONING_WORKFLOW: workflow for identity access changes
//   - PAM_MANAGED_ATTRIBUTE_WORKFLOW: workflow for container mutations
//   - PAM_LOG_LEVEL: Log level (debug, info, warn, error)
package main
