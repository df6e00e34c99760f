// Package workflow defines the asynchronous workflow-launch contract the
// provisioning orchestrator drives, a queue-backed runner that persists
// launches for the workflow engine to pick up, and the access-request
// record carried through approval work items.
package workflow
