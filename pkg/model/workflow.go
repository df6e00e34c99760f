package model

import "time"

// Workflow target classes used by the pending-request guard.
const (
	TargetClassManagedAttribute = "ManagedAttribute"
	TargetClassIdentity         = "Identity"
)

// WorkflowCase tracks an in-flight workflow against an object. A case with
// a nil CompletedAt is still pending and blocks further container-mutating
// submissions for the same target object.
type WorkflowCase struct {
	ID          string     `gorm:"column:id;primaryKey"`
	Name        string     `gorm:"column:name;not null"`
	TargetID    string     `gorm:"column:target_id;not null"`
	TargetClass string     `gorm:"column:target_class;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
}

func (WorkflowCase) TableName() string {
	return "workflow_cases"
}

// WorkflowRequest is a queued workflow launch handed to the async workflow
// engine. Attributes carries the serialized plan and launch arguments.
type WorkflowRequest struct {
	ID           string     `gorm:"column:id;primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	WorkflowName string     `gorm:"column:workflow_name;not null"`
	OwnerName    string     `gorm:"column:owner_name"`
	EventDate    time.Time  `gorm:"column:event_date"`
	Attributes   Attributes `gorm:"column:attributes;type:jsonb"`
}

func (WorkflowRequest) TableName() string {
	return "workflow_requests"
}
