// Package model defines the database models for the PAM module.
//
// This package contains GORM models that map to the PAM PostgreSQL schema.
// The schema mirrors the identity-governance object model the module
// operates on: applications with account/group schemas, identities and
// their accounts (links), managed attributes (groups, containers and
// privileged data), container targets with their associations, and the
// workflow bookkeeping tables used by the provisioning orchestrator.
//
// # Core Models
//
//   - Application: a managed system (the PAM system or an external IdM)
//   - SchemaAttribute: schema definitions with correlation-key indexes
//   - Identity: a governed person
//   - Link: an identity's account on an application
//   - ManagedAttribute: group, Container or PrivilegedData object
//   - Target: a privileged-access container (safe)
//   - TargetAssociation: account- or group-level grant on a container
//   - IdentityEntitlement: aggregated group membership of an identity
//   - WorkflowCase: an in-flight provisioning workflow
//   - WorkflowRequest: a queued workflow launch
package model
