package container

import (
	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/store"
	"github.com/doodlesbykumbi/pam-in-go/pkg/query"
)

// fakeObjects is an in-memory ObjectStore seeded per test.
type fakeObjects struct {
	targets    map[string]*model.Target
	apps       map[string]*model.Application
	identities map[string]*model.Identity
	links      map[string]*model.Link
	attrs      []model.ManagedAttribute

	// findAttrs, when set, answers FindManagedAttributes.
	findAttrs func(f query.Filter) []model.ManagedAttribute
	// findLinks, when set, answers FindLinks.
	findLinks func(f query.Filter) []model.Link
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{
		targets:    map[string]*model.Target{},
		apps:       map[string]*model.Application{},
		identities: map[string]*model.Identity{},
		links:      map[string]*model.Link{},
	}
}

func (f *fakeObjects) FetchTarget(id string) (*model.Target, error) {
	return f.targets[id], nil
}

func (f *fakeObjects) FindTargets(query.Filter) ([]model.Target, error) {
	out := make([]model.Target, 0, len(f.targets))
	for _, t := range f.targets {
		out = append(out, *t)
	}
	return out, nil
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

func (f *fakeObjects) FindLinks(filter query.Filter) ([]model.Link, error) {
	if f.findLinks != nil {
		return f.findLinks(filter), nil
	}
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

// fakeAccess records the compiled SQL of every filter it receives and
// answers with canned results.
type fakeAccess struct {
	countConds  []string
	countArgs   [][]interface{}
	count       int
	searchConds []string
	ids         []string
	groupCount  int
	grants      []store.LinkGrant
	groups      []store.GroupRow
	assocs      map[string][]store.Association
}

func (f *fakeAccess) CountIdentities(filter query.Filter) (int, error) {
	cond, args := query.Compile(filter)
	f.countConds = append(f.countConds, cond)
	f.countArgs = append(f.countArgs, args)
	return f.count, nil
}

func (f *fakeAccess) SearchIdentityIDs(filter query.Filter) ([]string, error) {
	cond, _ := query.Compile(filter)
	f.searchConds = append(f.searchConds, cond)
	return f.ids, nil
}

func (f *fakeAccess) CountGroupAssociations(string) (int, error) {
	return f.groupCount, nil
}

func (f *fakeAccess) DirectPermissions(string, string) ([]store.LinkGrant, error) {
	return f.grants, nil
}

func (f *fakeAccess) EffectiveGroups(query.Filter) ([]store.GroupRow, error) {
	return f.groups, nil
}

func (f *fakeAccess) ObjectAssociations(_, objectID string) ([]store.Association, error) {
	return f.assocs[objectID], nil
}

// fakeSchemas serves schema attribute definitions from a map keyed by
// applicationID/schemaKind.
type fakeSchemas struct {
	attrs map[string][]model.SchemaAttribute
}

func (f *fakeSchemas) ListSchemaAttributes(applicationID, schemaKind string) ([]model.SchemaAttribute, error) {
	return f.attrs[applicationID+"/"+schemaKind], nil
}

// correlatedSchemas declares group and account schemas with the external
// correlation keys on key1/key2.
func correlatedSchemas(appID string) *fakeSchemas {
	return &fakeSchemas{attrs: map[string][]model.SchemaAttribute{
		appID + "/group": {
			{ApplicationID: appID, SchemaKind: model.SchemaGroup, AttributeName: "nativeIdentifier", CorrelationKey: 1},
			{ApplicationID: appID, SchemaKind: model.SchemaGroup, AttributeName: "source", CorrelationKey: 2},
		},
		appID + "/account": {
			{ApplicationID: appID, SchemaKind: model.SchemaAccount, AttributeName: "nativeIdentifier", CorrelationKey: 1},
			{ApplicationID: appID, SchemaKind: model.SchemaAccount, AttributeName: "source", CorrelationKey: 2},
		},
	}}
}

// plainSchemas declares schemas without any correlation keys.
func plainSchemas(appID string) *fakeSchemas {
	return &fakeSchemas{attrs: map[string][]model.SchemaAttribute{
		appID + "/group": {
			{ApplicationID: appID, SchemaKind: model.SchemaGroup, AttributeName: "description"},
		},
		appID + "/account": {
			{ApplicationID: appID, SchemaKind: model.SchemaAccount, AttributeName: "description"},
		},
	}}
}
