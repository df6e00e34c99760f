package provisioning

// Request operations.
const (
	OpModify = "Modify"
	OpCreate = "Create"
	OpAdd    = "Add"
	OpRemove = "Remove"
	OpSet    = "Set"
)

// ArgAssignment marks a permission request as an assignment so the
// workflow engine records an attribute assignment alongside the grant.
const ArgAssignment = "assignment"

// SourceGroupManagement marks plans originating from container
// management rather than account provisioning.
const SourceGroupManagement = "GroupManagement"

// PermissionRequest requests adding or removing rights on one container
// for the enclosing account. TargetCollector names the collector that
// will push the change to the managed system.
type PermissionRequest struct {
	Target          string                 `json:"target"`
	Op              string                 `json:"op"`
	Rights          []string               `json:"rights"`
	TargetCollector string                 `json:"targetCollector,omitempty"`
	Args            map[string]interface{} `json:"args,omitempty"`
}

// NewPermissionRequest builds a permission request flagged as an
// assignment.
func NewPermissionRequest(target, op string, rights []string, targetCollector string) PermissionRequest {
	return PermissionRequest{
		Target:          target,
		Op:              op,
		Rights:          rights,
		TargetCollector: targetCollector,
		Args:            map[string]interface{}{ArgAssignment: "true"},
	}
}

// AccountRequest modifies one account's permissions.
type AccountRequest struct {
	Op                 string              `json:"op"`
	Application        string              `json:"application"`
	Instance           string              `json:"instance,omitempty"`
	NativeIdentity     string              `json:"nativeIdentity"`
	PermissionRequests []PermissionRequest `json:"permissionRequests,omitempty"`
}

// AttributeRequest sets one attribute on an object request.
type AttributeRequest struct {
	Name  string      `json:"name"`
	Op    string      `json:"op"`
	Value interface{} `json:"value"`
}

// ObjectRequest creates or modifies a managed attribute, e.g. a
// container.
type ObjectRequest struct {
	Op                string             `json:"op"`
	Application       string             `json:"application"`
	Type              string             `json:"type"`
	NativeIdentity    string             `json:"nativeIdentity,omitempty"`
	AttributeRequests []AttributeRequest `json:"attributeRequests,omitempty"`
}

// Plan is a declarative provisioning request executed asynchronously by
// the workflow engine. Identity plans carry account requests; container
// plans carry object requests.
type Plan struct {
	IdentityID          string           `json:"identityId,omitempty"`
	IdentityDisplayName string           `json:"identityDisplayName,omitempty"`
	Source              string           `json:"source,omitempty"`
	Requester           string           `json:"requester,omitempty"`
	AccountRequests     []AccountRequest `json:"accountRequests,omitempty"`
	ObjectRequests      []ObjectRequest  `json:"objectRequests,omitempty"`
}
