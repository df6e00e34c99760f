package workflow

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
)

// QueueRunner persists workflow launches for the workflow engine to pick
// up. Each launch writes a workflow request row carrying the serialized
// plan and arguments, and - when the launch targets a persistent object -
// an open workflow case row that the pending-request guard counts.
type QueueRunner struct {
	db  *gorm.DB
	now func() time.Time
}

// NewQueueRunner creates a QueueRunner.
func NewQueueRunner(db *gorm.DB) *QueueRunner {
	return &QueueRunner{db: db, now: time.Now}
}

// Ensure QueueRunner implements Runner
var _ Runner = (*QueueRunner)(nil)

// Launch queues the workflow and returns a launched session. The request
// name defaults to the workflow name when the caller supplies none.
func (r *QueueRunner) Launch(workflowName string, plan interface{}, args map[string]interface{}) (*Session, error) {
	requestName := workflowName
	if name, ok := args[ArgRequestName].(string); ok && name != "" {
		requestName = name
	}

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize plan: %w", err)
	}

	attributes := model.Attributes{
		"workflow": workflowName,
		"plan":     json.RawMessage(planJSON),
	}
	for key, value := range args {
		attributes[key] = value
	}

	ownerName, _ := args[ArgLauncher].(string)
	request := model.WorkflowRequest{
		ID:           uuid.NewString(),
		Name:         requestName,
		WorkflowName: workflowName,
		OwnerName:    ownerName,
		EventDate:    r.now(),
		Attributes:   attributes,
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&request).Error; err != nil {
			return err
		}

		targetID, _ := args[ArgTargetID].(string)
		targetClass, _ := args[ArgTargetClass].(string)
		if targetID == "" || targetClass == "" {
			return nil
		}
		wfCase := model.WorkflowCase{
			ID:          uuid.NewString(),
			Name:        requestName,
			TargetID:    targetID,
			TargetClass: targetClass,
		}
		return tx.Create(&wfCase).Error
	})
	if err != nil {
		return nil, err
	}

	return &Session{
		Status:      StatusLaunched,
		RequestName: requestName,
		LaunchMessages: []Message{
			{Type: MessageInfo, Text: fmt.Sprintf("queued workflow %q as %q", workflowName, requestName)},
		},
	}, nil
}
