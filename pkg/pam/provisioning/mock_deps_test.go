package provisioning

import (
	"github.com/rs/zerolog"

	"github.com/doodlesbykumbi/pam-in-go/pkg/config"
	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/schema"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/store"
	"github.com/doodlesbykumbi/pam-in-go/pkg/query"
	"github.com/doodlesbykumbi/pam-in-go/pkg/workflow"
)

type fakeObjects struct {
	targets    map[string]*model.Target
	apps       map[string]*model.Application
	identities map[string]*model.Identity
	links      map[string]*model.Link
	attrs      []model.ManagedAttribute

	findAttrs func(f query.Filter) []model.ManagedAttribute
}

func (f *fakeObjects) FetchTarget(id string) (*model.Target, error) {
	return f.targets[id], nil
}

func (f *fakeObjects) FindTargets(query.Filter) ([]model.Target, error) {
	return nil, nil
}

func (f *fakeObjects) FetchApplication(id string) (*model.Application, error) {
	return f.apps[id], nil
}

func (f *fakeObjects) FetchApplicationByName(name string) (*model.Application, error) {
	for _, app := range f.apps {
		if app.Name == name {
			return app, nil
		}
	}
	return nil, nil
}

func (f *fakeObjects) FetchIdentity(id string) (*model.Identity, error) {
	return f.identities[id], nil
}

func (f *fakeObjects) FetchLink(id string) (*model.Link, error) {
	return f.links[id], nil
}

func (f *fakeObjects) FindLinks(query.Filter) ([]model.Link, error) {
	return nil, nil
}

func (f *fakeObjects) FetchManagedAttribute(applicationID, value, objectType string) (*model.ManagedAttribute, error) {
	for i := range f.attrs {
		ma := f.attrs[i]
		if ma.ApplicationID == applicationID && ma.Value == value && ma.Type == objectType {
			return &ma, nil
		}
	}
	return nil, nil
}

func (f *fakeObjects) FetchManagedAttributeByID(id string) (*model.ManagedAttribute, error) {
	for i := range f.attrs {
		if f.attrs[i].ID == id {
			ma := f.attrs[i]
			return &ma, nil
		}
	}
	return nil, nil
}

func (f *fakeObjects) FindManagedAttributes(filter query.Filter) ([]model.ManagedAttribute, error) {
	if f.findAttrs != nil {
		return f.findAttrs(filter), nil
	}
	return nil, nil
}

type fakeAccess struct {
	effectiveCount int
	directIDs      []string
	searchConds    []string
	grants         []store.LinkGrant
	groups         []store.GroupRow
}

func (f *fakeAccess) CountIdentities(query.Filter) (int, error) {
	return f.effectiveCount, nil
}

func (f *fakeAccess) SearchIdentityIDs(filter query.Filter) ([]string, error) {
	cond, _ := query.Compile(filter)
	f.searchConds = append(f.searchConds, cond)
	return f.directIDs, nil
}

func (f *fakeAccess) CountGroupAssociations(string) (int, error) {
	return 0, nil
}

func (f *fakeAccess) DirectPermissions(string, string) ([]store.LinkGrant, error) {
	return f.grants, nil
}

func (f *fakeAccess) EffectiveGroups(query.Filter) ([]store.GroupRow, error) {
	return f.groups, nil
}

func (f *fakeAccess) ObjectAssociations(string, string) ([]store.Association, error) {
	return nil, nil
}

type fakeCases struct {
	pending int
	queried [][2]string
}

func (f *fakeCases) CountPendingCases(targetID, targetClass string) (int, error) {
	f.queried = append(f.queried, [2]string{targetID, targetClass})
	return f.pending, nil
}

type fakeSchemas struct {
	attrs map[string][]model.SchemaAttribute
}

func (f *fakeSchemas) ListSchemaAttributes(applicationID, schemaKind string) ([]model.SchemaAttribute, error) {
	return f.attrs[applicationID+"/"+schemaKind], nil
}

type launchRecord struct {
	workflow string
	plan     *Plan
	args     map[string]interface{}
}

type fakeRunner struct {
	launches []launchRecord
	err      error
	errOnce  error
}

func (r *fakeRunner) Launch(workflowName string, plan interface{}, args map[string]interface{}) (*workflow.Session, error) {
	if r.errOnce != nil {
		err := r.errOnce
		r.errOnce = nil
		return nil, err
	}
	if r.err != nil {
		return nil, r.err
	}
	record := launchRecord{workflow: workflowName, args: args}
	record.plan, _ = plan.(*Plan)
	r.launches = append(r.launches, record)

	requestName := workflowName
	if name, ok := args[workflow.ArgRequestName].(string); ok && name != "" {
		requestName = name
	}
	return &workflow.Session{Status: workflow.StatusLaunched, RequestName: requestName}, nil
}

type fakeSuggest struct {
	values []string
}

func (f *fakeSuggest) AssignableValues(string) ([]string, error) {
	return f.values, nil
}

// testWorld is the seeded fixture most orchestrator tests start from: one
// PAM application, one container target with its managed attribute, one
// identity with an account on a managed application.
type testWorld struct {
	objects *fakeObjects
	access  *fakeAccess
	cases   *fakeCases
	runner  *fakeRunner
	suggest *fakeSuggest
	cfg     *config.PAMConfig
}

const (
	pamAppID     = "app-pam"
	unixAppID    = "app-unix"
	safeTargetID = "t-finance"
	safeAttrID   = "ma-finance"
)

func newTestWorld() *testWorld {
	objects := &fakeObjects{
		targets: map[string]*model.Target{
			safeTargetID: {
				ID:             safeTargetID,
				Name:           "Finance-Safe",
				NativeObjectID: "Finance-Safe",
				ApplicationID:  pamAppID,
			},
		},
		apps: map[string]*model.Application{
			pamAppID: {
				ID:           pamAppID,
				Name:         "CyberArk PAM",
				OwnerName:    "pam-admin",
				TargetSource: "CyberArk Collector",
			},
			unixAppID: {ID: unixAppID, Name: "Unix Servers"},
		},
		identities: map[string]*model.Identity{
			"alice": {ID: "alice", Name: "alice", DisplayName: "Alice Ameel"},
			"bob":   {ID: "bob", Name: "bob"},
		},
		links: map[string]*model.Link{
			"l-alice": {
				ID:             "l-alice",
				IdentityID:     "alice",
				ApplicationID:  unixAppID,
				Instance:       "prod",
				NativeIdentity: "alice@unix",
			},
		},
		attrs: []model.ManagedAttribute{{
			ID:            safeAttrID,
			ApplicationID: pamAppID,
			Type:          model.ObjectTypeContainer,
			Value:         "Finance-Safe",
			DisplayName:   "Finance Safe",
			OwnerName:     "carol",
			Attributes:    model.Attributes{"name": "Finance-Safe"},
		}},
	}

	return &testWorld{
		objects: objects,
		access:  &fakeAccess{},
		cases:   &fakeCases{},
		runner:  &fakeRunner{},
		suggest: &fakeSuggest{},
		cfg: &config.PAMConfig{
			ProvisioningWorkflow:     "pam-identity-provisioning",
			ManagedAttributeWorkflow: "entitlement-update",
			ContainerObjectType:      "Container",
			PrivilegedDataObjectType: "PrivilegedData",
			PendingRequestGuard:      true,
		},
	}
}

func (w *testWorld) orchestrator(requester string) *Orchestrator {
	keys := schema.NewKeyResolver(&fakeSchemas{attrs: map[string][]model.SchemaAttribute{
		pamAppID + "/group": {
			{ApplicationID: pamAppID, SchemaKind: model.SchemaGroup, AttributeName: schema.AttrExternalNativeIdentifier, CorrelationKey: 1},
			{ApplicationID: pamAppID, SchemaKind: model.SchemaGroup, AttributeName: schema.AttrExternalSource, CorrelationKey: 2},
		},
	}})
	return NewOrchestrator(Deps{
		Objects: w.objects,
		Access:  w.access,
		Cases:   w.cases,
		Keys:    keys,
		Runner:  w.runner,
		Config:  w.cfg,
		Suggest: w.suggest,
		Log:     zerolog.Nop(),
	}, requester)
}
