// Package audit provides audit logging for PAM provisioning operations.
//
// This package implements structured audit logging for security-relevant
// operations such as granting and revoking container access, attaching
// privileged data, and creating containers.
//
// # Event Types
//
// The package defines event types for various operations:
//
//   - Access events (identity add/remove on a container)
//   - Privileged data events (attach/detach)
//   - Container events (create/update)
//
// # Usage
//
//	audit.Log(audit.AccessEvent{...})
//
// Audit events are logged in RFC5424 syslog format suitable for security
// monitoring and compliance requirements.
package audit
