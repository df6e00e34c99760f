// Package provisioning builds and submits container provisioning plans.
//
// Every mutation of container access goes through an asynchronous
// workflow launch carrying a declarative plan: granting and revoking
// identity permissions, attaching and detaching privileged data, and
// creating or updating containers. The orchestrator never writes
// container state directly; the workflow engine owns execution.
package provisioning
