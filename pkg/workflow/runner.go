package workflow

// Launch statuses reported by a Session.
const (
	StatusLaunched  = "launched"
	StatusApproving = "approving"
	StatusFailed    = "failed"
)

// Message types carried by launch messages.
const (
	MessageInfo  = "info"
	MessageError = "error"
)

// Launch argument keys understood by every runner.
const (
	ArgRequestName = "requestName"
	ArgLauncher    = "launcher"
	ArgTargetID    = "targetId"
	ArgTargetClass = "targetClass"
)

// Message is one launch message surfaced to the caller.
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// WorkItemRef points at an interactive work item opened by a launch, e.g.
// an approval form.
type WorkItemRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Session is the initial state of an asynchronous workflow launch. The
// launch itself proceeds in the background; callers get the session back
// immediately.
type Session struct {
	Status         string
	RequestName    string
	LaunchMessages []Message
	WorkItem       *WorkItemRef
}

// Runner launches named workflows asynchronously. Implementations must
// not block on workflow completion. Submission failures are returned
// unchanged; retry policy, if any, belongs to the runner.
type Runner interface {
	Launch(workflowName string, plan interface{}, args map[string]interface{}) (*Session, error)
}
