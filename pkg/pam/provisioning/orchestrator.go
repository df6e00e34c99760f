package provisioning

import (
	"fmt"
	"sort"

	"github.com/juju/errors"
	"github.com/rs/zerolog"

	"github.com/doodlesbykumbi/pam-in-go/pkg/audit"
	"github.com/doodlesbykumbi/pam-in-go/pkg/config"
	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/container"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/schema"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/store"
	"github.com/doodlesbykumbi/pam-in-go/pkg/query"
	"github.com/doodlesbykumbi/pam-in-go/pkg/workflow"
)

// Workflow launch argument keys consumed by the PAM workflows.
const (
	ArgContainerName             = "containerName"
	ArgContainerDisplayName      = "containerDisplayName"
	ArgContainerOwnerName        = "containerOwnerName"
	ArgApplicationName           = "applicationName"
	ArgAppOwner                  = "appOwner"
	ArgOwner                     = "owner"
	ArgContainerTargetID         = "containerTargetId"
	ArgContainersToAggregate     = "pamContainersToAggregate"
	ArgContainerToGroupAggregate = "pamContainerToGroupAggregate"
)

// ResourceObject is the aggregation payload handed to the managed
// attribute workflow so it can re-aggregate the mutated container
// without a full scan.
type ResourceObject struct {
	Identity    string           `json:"identity"`
	DisplayName string           `json:"displayName"`
	ObjectType  string           `json:"objectType"`
	Attributes  model.Attributes `json:"attributes"`
}

// WorkflowResult reports the launch outcome of one provisioning
// workflow.
type WorkflowResult struct {
	Status       string             `json:"status"`
	RequestName  string             `json:"requestName"`
	WorkItemType string             `json:"workItemType,omitempty"`
	WorkItemID   string             `json:"workItemId,omitempty"`
	Messages     []workflow.Message `json:"messages,omitempty"`
}

// DeprovisionResult reports one identity removal. When the identity
// keeps effective access through groups, Groups lists the granting
// groups so callers can tell the requester what still stands in the
// way.
type DeprovisionResult struct {
	WorkflowResult
	IdentityID          string   `json:"identityId"`
	IdentityDisplayName string   `json:"identityDisplayName,omitempty"`
	HasEffectiveAccess  bool     `json:"hasEffectiveAccess"`
	Groups              []string `json:"groups,omitempty"`
}

// SuggestionSource lists the privileged-data values assignable to
// containers of an application. Used to validate attach requests.
type SuggestionSource interface {
	AssignableValues(applicationID string) ([]string, error)
}

// StoreSuggestions sources assignable values from the privileged-data
// managed attributes of the application.
type StoreSuggestions struct {
	objects    store.ObjectStore
	objectType string
}

// NewStoreSuggestions creates a store-backed suggestion source.
func NewStoreSuggestions(objects store.ObjectStore, objectType string) *StoreSuggestions {
	return &StoreSuggestions{objects: objects, objectType: objectType}
}

var _ SuggestionSource = (*StoreSuggestions)(nil)

// AssignableValues returns the values of all privileged-data objects on
// the application.
func (s *StoreSuggestions) AssignableValues(applicationID string) ([]string, error) {
	attrs, err := s.objects.FindManagedAttributes(query.And(
		query.Eq("g.application_id", applicationID),
		query.Eq("g.type", s.objectType),
	))
	if err != nil {
		return nil, errors.Trace(err)
	}
	values := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		values = append(values, attr.Value)
	}
	return values, nil
}

// Deps are the collaborators an Orchestrator needs.
type Deps struct {
	Objects store.ObjectStore
	Access  store.AccessStore
	Cases   store.CaseStore
	Keys    *schema.KeyResolver
	Runner  workflow.Runner
	Config  *config.PAMConfig
	Suggest SuggestionSource
	Log     zerolog.Logger
}

// Orchestrator submits container provisioning requests on behalf of one
// requester. All mutations are expressed as plans and handed to the
// workflow runner; nothing is written synchronously.
type Orchestrator struct {
	objects   store.ObjectStore
	access    store.AccessStore
	cases     store.CaseStore
	keys      *schema.KeyResolver
	runner    workflow.Runner
	cfg       *config.PAMConfig
	suggest   SuggestionSource
	log       zerolog.Logger
	requester string
}

// NewOrchestrator creates an orchestrator for the given requester.
func NewOrchestrator(deps Deps, requester string) *Orchestrator {
	suggest := deps.Suggest
	if suggest == nil {
		suggest = NewStoreSuggestions(deps.Objects, deps.Config.PrivilegedDataObjectType)
	}
	return &Orchestrator{
		objects:   deps.Objects,
		access:    deps.Access,
		cases:     deps.Cases,
		keys:      deps.Keys,
		runner:    deps.Runner,
		cfg:       deps.Config,
		suggest:   suggest,
		log:       deps.Log,
		requester: requester,
	}
}

func (o *Orchestrator) fetchTarget(containerID string) (*model.Target, error) {
	target, err := o.objects.FetchTarget(containerID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if target == nil {
		return nil, errors.NotFoundf("container %s", containerID)
	}
	return target, nil
}

func (o *Orchestrator) containerService(target *model.Target) (*container.Service, error) {
	svc := container.NewService(o.objects, o.access, o.keys, o.log)
	if err := svc.SetTarget(target); err != nil {
		return nil, errors.Trace(err)
	}
	return svc, nil
}

// AddIdentities grants the given rights on the container to each
// identity through its chosen account. One workflow launches per
// identity, in identity-id order. Each identity is submitted
// independently; a failed submission is reported in that identity's
// result and does not block the rest of the batch.
func (o *Orchestrator) AddIdentities(containerID string, identityAccounts map[string]string, rights []string) ([]WorkflowResult, error) {
	target, err := o.fetchTarget(containerID)
	if err != nil {
		return nil, err
	}

	identityIDs := make([]string, 0, len(identityAccounts))
	for identityID := range identityAccounts {
		identityIDs = append(identityIDs, identityID)
	}
	sort.Strings(identityIDs)

	results := make([]WorkflowResult, 0, len(identityIDs))
	for _, identityID := range identityIDs {
		result, err := o.AddIdentity(target, identityID, identityAccounts[identityID], rights)
		if err != nil {
			o.log.Warn().
				Err(err).
				Str("identity", identityID).
				Str("container", target.ID).
				Msg("identity provisioning submission failed")
			results = append(results, failedResult(identityID, err))
			continue
		}
		results = append(results, *result)
	}
	return results, nil
}

// failedResult records one identity's submission failure so the rest of
// a batch can still launch.
func failedResult(identityID string, err error) WorkflowResult {
	return WorkflowResult{
		Status: workflow.StatusFailed,
		Messages: []workflow.Message{
			{Type: workflow.MessageError, Text: fmt.Sprintf("identity %s: %v", identityID, err)},
		},
	}
}

// AddIdentity launches a provisioning workflow granting the rights on
// the container to one identity through one of its accounts.
func (o *Orchestrator) AddIdentity(target *model.Target, identityID, linkID string, rights []string) (*WorkflowResult, error) {
	svc, err := o.containerService(target)
	if err != nil {
		return nil, errors.Trace(err)
	}

	plan, err := o.createProvisioningPlan(identityID, linkID, rights, target, svc.Application())
	if err != nil {
		return nil, errors.Trace(err)
	}

	result, err := o.runIdentityWorkflow(svc, target, plan)
	if err != nil {
		return nil, errors.Trace(err)
	}

	audit.Log(audit.AccessEvent{
		Requester:   o.requester,
		IdentityID:  identityID,
		Container:   target.Name,
		Operation:   "add",
		Rights:      rights,
		RequestName: result.RequestName,
	})
	return result, nil
}

// createProvisioningPlan builds the plan granting the rights on the
// container through the given account.
func (o *Orchestrator) createProvisioningPlan(identityID, linkID string, rights []string, target *model.Target, pamApp *model.Application) (*Plan, error) {
	identity, err := o.objects.FetchIdentity(identityID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if identity == nil {
		return nil, errors.NotFoundf("identity %s", identityID)
	}

	link, err := o.objects.FetchLink(linkID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if link == nil {
		return nil, errors.NotFoundf("account %s", linkID)
	}

	linkApp, err := o.objects.FetchApplication(link.ApplicationID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if linkApp == nil {
		return nil, errors.NotFoundf("application %s", link.ApplicationID)
	}

	acctReq := AccountRequest{
		Op:             OpModify,
		Application:    linkApp.Name,
		Instance:       link.Instance,
		NativeIdentity: link.NativeIdentity,
		PermissionRequests: []PermissionRequest{
			NewPermissionRequest(target.Name, OpAdd, rights, pamApp.TargetSource),
		},
	}
	return &Plan{
		IdentityID:          identity.ID,
		IdentityDisplayName: identity.DisplayableName(),
		Requester:           o.requester,
		AccountRequests:     []AccountRequest{acctReq},
	}, nil
}

// RemoveIdentities revokes the identities' direct access to the
// container. With selectAll set, every identity holding direct access
// is removed and identityIDs is treated as the exception list. Each
// identity is submitted independently; a failed submission is reported
// in that identity's result and does not block the rest of the batch.
func (o *Orchestrator) RemoveIdentities(containerID string, identityIDs []string, selectAll bool) ([]DeprovisionResult, error) {
	target, err := o.fetchTarget(containerID)
	if err != nil {
		return nil, err
	}
	svc, err := o.containerService(target)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if selectAll {
		identityIDs, err = svc.DirectIdentityIDs(identityIDs)
		if err != nil {
			return nil, errors.Trace(err)
		}
	}

	results := make([]DeprovisionResult, 0, len(identityIDs))
	for _, identityID := range identityIDs {
		result, err := o.RemoveIdentity(target, identityID)
		if err != nil {
			o.log.Warn().
				Err(err).
				Str("identity", identityID).
				Str("container", target.ID).
				Msg("identity deprovisioning submission failed")
			results = append(results, DeprovisionResult{
				WorkflowResult: failedResult(identityID, err),
				IdentityID:     identityID,
			})
			continue
		}
		results = append(results, *result)
	}
	return results, nil
}

// RemoveIdentity launches a deprovisioning workflow revoking every
// direct permission the identity holds on the container. The result
// flags identities that keep effective access through groups, since the
// workflow only removes direct grants.
func (o *Orchestrator) RemoveIdentity(target *model.Target, identityID string) (*DeprovisionResult, error) {
	svc, err := o.containerService(target)
	if err != nil {
		return nil, errors.Trace(err)
	}

	hasEffectiveAccess, err := svc.HasEffectiveAccess(identityID)
	if err != nil {
		return nil, errors.Trace(err)
	}

	plan, err := o.createDeprovisioningPlan(svc, identityID, target)
	if err != nil {
		return nil, errors.Trace(err)
	}

	launched, err := o.runIdentityWorkflow(svc, target, plan)
	if err != nil {
		return nil, errors.Trace(err)
	}

	result := &DeprovisionResult{
		WorkflowResult:     *launched,
		IdentityID:         identityID,
		HasEffectiveAccess: hasEffectiveAccess,
	}
	if hasEffectiveAccess {
		identity, err := o.objects.FetchIdentity(identityID)
		if err != nil {
			return nil, errors.Trace(err)
		}
		if identity != nil {
			result.IdentityDisplayName = identity.DisplayableName()
		}
		result.Groups, err = svc.EffectiveGroupNamesForIdentity(identityID)
		if err != nil {
			return nil, errors.Trace(err)
		}
	}

	audit.Log(audit.AccessEvent{
		Requester:   o.requester,
		IdentityID:  identityID,
		Container:   target.Name,
		Operation:   "remove",
		RequestName: launched.RequestName,
	})
	return result, nil
}

// createDeprovisioningPlan builds the plan revoking every direct
// permission the identity holds on the container, one account request
// per granting account.
func (o *Orchestrator) createDeprovisioningPlan(svc *container.Service, identityID string, target *model.Target) (*Plan, error) {
	identity, err := o.objects.FetchIdentity(identityID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if identity == nil {
		return nil, errors.NotFoundf("identity %s", identityID)
	}

	permissionsByLink, err := svc.DirectPermissionsForIdentity(identityID)
	if err != nil {
		return nil, errors.Trace(err)
	}

	plan := &Plan{
		IdentityID:          identity.ID,
		IdentityDisplayName: identity.DisplayableName(),
		Requester:           o.requester,
	}
	for _, lp := range permissionsByLink {
		acctReq := AccountRequest{
			Op:             OpModify,
			Application:    lp.ApplicationName,
			Instance:       lp.Link.Instance,
			NativeIdentity: lp.Link.NativeIdentity,
		}
		for _, perm := range lp.Permissions {
			acctReq.PermissionRequests = append(acctReq.PermissionRequests,
				NewPermissionRequest(target.Name, OpRemove, perm.Rights, perm.Source))
		}
		plan.AccountRequests = append(plan.AccountRequests, acctReq)
	}
	return plan, nil
}

// runIdentityWorkflow launches the identity provisioning workflow with
// the container context args.
func (o *Orchestrator) runIdentityWorkflow(svc *container.Service, target *model.Target, plan *Plan) (*WorkflowResult, error) {
	ma, err := svc.ContainerAttribute()
	if err != nil {
		return nil, errors.Trace(err)
	}

	args := map[string]interface{}{
		workflow.ArgLauncher:    o.requester,
		ArgContainerName:        target.Name,
		ArgContainerDisplayName: container.TargetDisplayName(target, ma),
	}
	if ma != nil && ma.OwnerName != "" {
		args[ArgContainerOwnerName] = ma.OwnerName
	}

	session, err := o.runner.Launch(o.cfg.ProvisioningWorkflow, plan, args)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return resultFromSession(session), nil
}

// AddPrivilegedItems attaches privileged-data items to the container by
// value. Items the container already references are skipped; values not
// assignable to the container are rejected.
func (o *Orchestrator) AddPrivilegedItems(containerID string, values []string) error {
	target, err := o.fetchTarget(containerID)
	if err != nil {
		return err
	}
	svc, err := o.containerService(target)
	if err != nil {
		return errors.Trace(err)
	}
	app := svc.Application()

	ma, err := svc.ContainerAttribute()
	if err != nil {
		return errors.Trace(err)
	}
	if ma == nil {
		return errors.NotFoundf("container attribute for %s", target.ID)
	}

	assignable, err := o.suggest.AssignableValues(app.ID)
	if err != nil {
		return errors.Trace(err)
	}
	assignableSet := make(map[string]struct{}, len(assignable))
	for _, value := range assignable {
		assignableSet[value] = struct{}{}
	}

	current := ma.Attributes.StringList(container.PDValue)
	displays := ma.Attributes.StringList(container.PDDisplay)
	types := ma.Attributes.StringList(container.PDType)
	refs := ma.Attributes.StringList(container.PDRef)

	currentSet := make(map[string]struct{}, len(current))
	for _, value := range current {
		currentSet[value] = struct{}{}
	}

	for _, value := range values {
		if _, ok := currentSet[value]; ok {
			continue
		}
		if _, ok := assignableSet[value]; !ok {
			return errors.BadRequestf("privileged item %s cannot be assigned to container %s", value, target.Name)
		}
		pd, err := o.objects.FetchManagedAttribute(app.ID, value, o.cfg.PrivilegedDataObjectType)
		if err != nil {
			return errors.Trace(err)
		}
		if pd == nil {
			return errors.NotFoundf("privileged data %s", value)
		}
		current = append(current, pd.Value)
		displays = append(displays, pd.DisplayName)
		types = append(types, pd.Attributes.String("type"))
		currentSet[pd.Value] = struct{}{}
	}

	if err := o.updateContainerPrivilegedData(app, ma, current, displays, types, refs); err != nil {
		return errors.Trace(err)
	}

	audit.Log(audit.PrivilegedDataEvent{
		Requester: o.requester,
		Container: target.Name,
		Operation: "attach",
		Values:    values,
	})
	return nil
}

// RemovePrivilegedItems detaches privileged-data items from the
// container by value. With selectAll set, every item is detached and
// values is ignored.
func (o *Orchestrator) RemovePrivilegedItems(containerID string, values []string, selectAll bool) error {
	target, err := o.fetchTarget(containerID)
	if err != nil {
		return err
	}
	svc, err := o.containerService(target)
	if err != nil {
		return errors.Trace(err)
	}
	app := svc.Application()

	ma, err := svc.ContainerAttribute()
	if err != nil {
		return errors.Trace(err)
	}
	if ma == nil {
		return errors.NotFoundf("container attribute for %s", target.ID)
	}

	current := []string{}
	displays := []string{}
	types := []string{}
	refs := []string{}
	if !selectAll {
		current = ma.Attributes.StringList(container.PDValue)
		displays = ma.Attributes.StringList(container.PDDisplay)
		types = ma.Attributes.StringList(container.PDType)
		refs = ma.Attributes.StringList(container.PDRef)
		for _, value := range values {
			index := indexOf(current, value)
			if index < 0 {
				continue
			}
			current = removeAt(current, index)
			if index < len(displays) {
				displays = removeAt(displays, index)
			}
			if index < len(types) {
				types = removeAt(types, index)
			}
			if index < len(refs) {
				refs = removeAt(refs, index)
			}
		}
	}

	if err := o.updateContainerPrivilegedData(app, ma, current, displays, types, refs); err != nil {
		return errors.Trace(err)
	}

	audit.Log(audit.PrivilegedDataEvent{
		Requester: o.requester,
		Container: target.Name,
		Operation: "detach",
		Values:    values,
	})
	return nil
}

// updateContainerPrivilegedData launches the managed attribute workflow
// replacing the container's privileged-data lists.
func (o *Orchestrator) updateContainerPrivilegedData(app *model.Application, ma *model.ManagedAttribute, values, displays, types, refs []string) error {
	attrs := model.Attributes{
		container.PDValue:   values,
		container.PDDisplay: displays,
		container.PDType:    types,
		container.PDRef:     refs,
	}
	return o.launchContainerUpdate(app, ma, attrs)
}

// UpdateContainer launches the managed attribute workflow applying the
// given attribute changes to the container.
func (o *Orchestrator) UpdateContainer(containerID string, attrs model.Attributes) error {
	target, err := o.fetchTarget(containerID)
	if err != nil {
		return err
	}
	svc, err := o.containerService(target)
	if err != nil {
		return errors.Trace(err)
	}

	ma, err := svc.ContainerAttribute()
	if err != nil {
		return errors.Trace(err)
	}
	if ma == nil {
		return errors.NotFoundf("container attribute for %s", target.ID)
	}

	if err := o.launchContainerUpdate(svc.Application(), ma, attrs); err != nil {
		return errors.Trace(err)
	}

	audit.Log(audit.ContainerEvent{
		Requester:   o.requester,
		Container:   target.Name,
		Application: svc.Application().Name,
		Operation:   "update",
	})
	return nil
}

func (o *Orchestrator) launchContainerUpdate(app *model.Application, ma *model.ManagedAttribute, attrs model.Attributes) error {
	inner := model.Attributes{}
	for key, value := range ma.Attributes {
		inner[key] = value
	}
	for key, value := range attrs {
		inner[key] = value
	}

	containerName := ma.DisplayableName()

	objReq := ObjectRequest{
		Op:             OpModify,
		Application:    app.Name,
		Type:           o.cfg.ContainerObjectType,
		NativeIdentity: ma.Value,
	}
	for _, name := range sortedKeys(inner) {
		objReq.AttributeRequests = append(objReq.AttributeRequests,
			AttributeRequest{Name: name, Op: OpSet, Value: inner[name]})
	}

	plan := &Plan{
		Source:         SourceGroupManagement,
		Requester:      o.requester,
		ObjectRequests: []ObjectRequest{objReq},
	}

	if err := o.checkPendingRequest(ma.ID, containerName); err != nil {
		return errors.Trace(err)
	}

	args := map[string]interface{}{
		workflow.ArgRequestName: "Update Container " + containerName,
		workflow.ArgLauncher:    o.requester,
		workflow.ArgTargetID:    ma.ID,
		workflow.ArgTargetClass: model.TargetClassManagedAttribute,
		ArgApplicationName:      app.Name,
		ArgContainerTargetID:    ma.ID,
		ArgOwner:                ma.OwnerName,
		ArgAppOwner:             app.OwnerName,
		ArgContainerToGroupAggregate: ResourceObject{
			Identity:    ma.Value,
			DisplayName: containerName,
			ObjectType:  o.cfg.ContainerObjectType,
			Attributes:  inner,
		},
	}

	_, err := o.runner.Launch(o.cfg.ManagedAttributeWorkflow, plan, args)
	return errors.Trace(err)
}

// ContainerSpec describes a container to create.
type ContainerSpec struct {
	Application string
	Name        string
	DisplayName string
	Attributes  model.Attributes
}

// CreateContainer launches the managed attribute workflow creating a new
// container. The name must be unique among the application's containers.
func (o *Orchestrator) CreateContainer(spec ContainerSpec) error {
	if spec.Name == "" {
		return errors.BadRequestf("container name is required")
	}
	if spec.Application == "" {
		return errors.BadRequestf("container application is required")
	}

	app, err := o.objects.FetchApplicationByName(spec.Application)
	if err != nil {
		return errors.Trace(err)
	}
	if app == nil {
		return errors.NotFoundf("application %s", spec.Application)
	}

	existing, err := o.objects.FindManagedAttributes(query.And(
		query.Eq("g.application_id", app.ID),
		query.Eq("g.type", o.cfg.ContainerObjectType),
	))
	if err != nil {
		return errors.Trace(err)
	}
	for _, attr := range existing {
		if spec.Name == attr.Attributes.String("name") {
			return errors.BadRequestf("container name %s is already used on application %s", spec.Name, app.Name)
		}
	}

	attrs := model.Attributes{"name": spec.Name}
	if spec.DisplayName != "" {
		attrs["displayName"] = spec.DisplayName
	}
	for key, value := range spec.Attributes {
		attrs[key] = value
	}

	objReq := ObjectRequest{
		Op:          OpCreate,
		Application: app.Name,
		Type:        o.cfg.ContainerObjectType,
	}
	for _, name := range sortedKeys(attrs) {
		objReq.AttributeRequests = append(objReq.AttributeRequests,
			AttributeRequest{Name: name, Op: OpSet, Value: attrs[name]})
	}

	plan := &Plan{
		Source:         SourceGroupManagement,
		Requester:      o.requester,
		ObjectRequests: []ObjectRequest{objReq},
	}

	args := map[string]interface{}{
		workflow.ArgRequestName:  "Create Container " + spec.Name,
		workflow.ArgLauncher:     o.requester,
		ArgApplicationName:       app.Name,
		ArgAppOwner:              app.OwnerName,
		ArgContainersToAggregate: spec.Name,
	}

	if _, err := o.runner.Launch(o.cfg.ManagedAttributeWorkflow, plan, args); err != nil {
		return errors.Trace(err)
	}

	audit.Log(audit.ContainerEvent{
		Requester:   o.requester,
		Container:   spec.Name,
		Application: app.Name,
		Operation:   "create",
	})
	return nil
}

// checkPendingRequest rejects container mutations while an earlier
// workflow targeting the same managed attribute is still open. The
// check is best effort; the window between check and launch is
// accepted.
func (o *Orchestrator) checkPendingRequest(attributeID, containerName string) error {
	if !o.cfg.PendingRequestGuard {
		return nil
	}
	pending, err := o.cases.CountPendingCases(attributeID, model.TargetClassManagedAttribute)
	if err != nil {
		return errors.Trace(err)
	}
	if pending > 0 {
		return errors.AlreadyExistsf("pending request for container %s", containerName)
	}
	return nil
}

func resultFromSession(session *workflow.Session) *WorkflowResult {
	result := &WorkflowResult{
		Status:      session.Status,
		RequestName: session.RequestName,
		Messages:    session.LaunchMessages,
	}
	if session.WorkItem != nil {
		result.WorkItemType = session.WorkItem.Type
		result.WorkItemID = session.WorkItem.ID
	}
	return result
}

func sortedKeys(attrs model.Attributes) []string {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return -1
}

func removeAt(values []string, index int) []string {
	return append(values[:index], values[index+1:]...)
}
