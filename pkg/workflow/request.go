package workflow

import (
	"time"

	"github.com/juju/errors"
)

// ApprovalState tracks an access request through its approval work item.
type ApprovalState int

//go:generate go run github.com/dmarkham/enumer -type ApprovalState -trimprefix Approval -transform lower -json -output approvalstate.gen.go
const (
	ApprovalPending ApprovalState = iota
	ApprovalFinished
	ApprovalRejected
)

// AccessRequestItem is one per-account right delta inside an access
// request.
type AccessRequestItem struct {
	ApplicationName string   `json:"applicationName"`
	Instance        string   `json:"instance,omitempty"`
	NativeIdentity  string   `json:"nativeIdentity"`
	AddedRights     []string `json:"addedRights,omitempty"`
	RemovedRights   []string `json:"removedRights,omitempty"`
}

// AccessRequest is the immutable-intent record of an access change,
// carried through an approval work item. Only the approval decision
// mutates it, and only once.
type AccessRequest struct {
	ID                  string              `json:"id"`
	IdentityID          string              `json:"identityId"`
	IdentityDisplayName string              `json:"identityDisplayName,omitempty"`
	ContainerID         string              `json:"containerId"`
	ContainerName       string              `json:"containerName"`
	Items               []AccessRequestItem `json:"items"`
	State               ApprovalState       `json:"state"`
	Approver            string              `json:"approver,omitempty"`
	Created             time.Time           `json:"created"`
	Completed           *time.Time          `json:"completed,omitempty"`
}

// Pending reports whether the request still awaits a decision.
func (r *AccessRequest) Pending() bool {
	return r.State == ApprovalPending
}

// Approve marks the request finished. A request that has already been
// decided cannot be decided again.
func (r *AccessRequest) Approve(approver string) error {
	return r.decide(ApprovalFinished, approver)
}

// Reject marks the request rejected.
func (r *AccessRequest) Reject(approver string) error {
	return r.decide(ApprovalRejected, approver)
}

func (r *AccessRequest) decide(state ApprovalState, approver string) error {
	if r.State != ApprovalPending {
		return errors.BadRequestf("access request %s already %s", r.ID, r.State)
	}
	now := time.Now()
	r.State = state
	r.Approver = approver
	r.Completed = &now
	return nil
}
