package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/permission"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/store"
	"github.com/doodlesbykumbi/pam-in-go/pkg/query"
)

func TestDirectPermissionsGroupByLink(t *testing.T) {
	link := model.Link{ID: "l-1", IdentityID: "alice", NativeIdentity: "alice.admin"}
	access := &fakeAccess{grants: []store.LinkGrant{
		{Link: link, ApplicationName: "CyberArk PAM", Rights: []string{"Use Accounts"}, Source: "CollectorA"},
		{Link: link, ApplicationName: "CyberArk PAM", Rights: []string{"List Accounts"}, Source: "CollectorB"},
	}}
	svc := boundService(t, seedObjects(), access, correlatedSchemas(pamAppID))

	perms, err := svc.DirectPermissionsForIdentity("alice")
	require.NoError(t, err)
	require.Len(t, perms, 1)
	assert.Equal(t, "l-1", perms[0].Link.ID)
	assert.Equal(t, "CyberArk PAM", perms[0].ApplicationName)
	assert.Equal(t, []Permission{
		{Rights: []string{"Use Accounts"}, Source: "CollectorA"},
		{Rights: []string{"List Accounts"}, Source: "CollectorB"},
	}, perms[0].Permissions)
}

func TestEffectiveGroupNamesFallBackToValue(t *testing.T) {
	access := &fakeAccess{groups: []store.GroupRow{
		{ID: "g-1", Value: "finance-admins", DisplayName: "Finance Admins"},
		{ID: "g-2", Value: "finance-auditors"},
	}}
	svc := boundService(t, seedObjects(), access, correlatedSchemas(pamAppID))

	names, err := svc.EffectiveGroupNamesForIdentity("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Finance Admins", "finance-auditors"}, names)
}

func TestDirectGrantsFlattenRightsPerSource(t *testing.T) {
	link := model.Link{ID: "l-1", IdentityID: "alice", NativeIdentity: "alice.admin"}
	access := &fakeAccess{grants: []store.LinkGrant{
		{Link: link, ApplicationName: "CyberArk PAM", Rights: []string{"Use Accounts", "List Accounts"}},
	}}
	svc := boundService(t, seedObjects(), access, correlatedSchemas(pamAppID))

	grants, err := svc.DirectGrantsForIdentity("alice")
	require.NoError(t, err)
	source := permission.GrantingSource{Application: "CyberArk PAM", NativeIdentity: "alice.admin"}
	assert.Equal(t, []permission.Grant{
		{Right: "Use Accounts", Source: source},
		{Right: "List Accounts", Source: source},
	}, grants)
}

func TestEffectiveGrantsLocalGroup(t *testing.T) {
	objects := seedObjects()
	objects.attrs = []model.ManagedAttribute{{
		ID:            "g-local",
		ApplicationID: pamAppID,
		Type:          model.ObjectTypeGroup,
		Value:         "finance-admins",
		DisplayName:   "Finance Admins",
	}}
	access := &fakeAccess{
		groups: []store.GroupRow{{ID: "g-local", Value: "finance-admins", DisplayName: "Finance Admins"}},
		assocs: map[string][]store.Association{
			"g-local": {{Rights: []string{"Use Accounts"}}},
		},
	}
	svc := boundService(t, objects, access, correlatedSchemas(pamAppID))

	grants, err := svc.EffectiveGrantsForIdentity("alice")
	require.NoError(t, err)
	assert.Equal(t, []permission.Grant{{
		Right:  "Use Accounts",
		Source: permission.GrantingSource{Application: "CyberArk PAM", Group: "Finance Admins"},
	}}, grants)
}

func TestEffectiveGrantsExternalGroupReadsRightsOffStub(t *testing.T) {
	objects := seedObjects()
	objects.apps["app-ad"] = &model.Application{ID: "app-ad", Name: "Active Directory"}
	stub := model.ManagedAttribute{
		ID:            "g-stub",
		ApplicationID: pamAppID,
		Type:          model.ObjectTypeGroup,
		Value:         "stub-finance",
		Key1:          "cn=finance,dc=example",
		Key2:          "Active Directory",
	}
	external := model.ManagedAttribute{
		ID:            "g-ext",
		ApplicationID: "app-ad",
		Type:          model.ObjectTypeGroup,
		Value:         "cn=finance,dc=example",
		DisplayName:   "Finance (AD)",
	}
	objects.attrs = []model.ManagedAttribute{stub, external}
	objects.findAttrs = func(f query.Filter) []model.ManagedAttribute {
		cond, _ := query.Compile(f)
		assert.Contains(t, cond, "g.key1 = ?")
		assert.Contains(t, cond, "g.key2 = ?")
		return []model.ManagedAttribute{stub}
	}
	access := &fakeAccess{
		groups: []store.GroupRow{{ID: "g-ext", Value: "cn=finance,dc=example", DisplayName: "Finance (AD)"}},
		assocs: map[string][]store.Association{
			// The association lives on the stub, never the external group.
			"g-stub": {{Rights: []string{"Retrieve", "Use Accounts"}}},
		},
	}
	svc := boundService(t, objects, access, correlatedSchemas(pamAppID))

	grants, err := svc.EffectiveGrantsForIdentity("alice")
	require.NoError(t, err)
	source := permission.GrantingSource{Application: "CyberArk PAM", Group: "Finance (AD)"}
	assert.Equal(t, []permission.Grant{
		{Right: "Retrieve", Source: source},
		{Right: "Use Accounts", Source: source},
	}, grants)
}

func TestEffectiveGrantsSkipExternalGroupWithoutStub(t *testing.T) {
	objects := seedObjects()
	objects.apps["app-ad"] = &model.Application{ID: "app-ad", Name: "Active Directory"}
	objects.attrs = []model.ManagedAttribute{{
		ID:            "g-ext",
		ApplicationID: "app-ad",
		Type:          model.ObjectTypeGroup,
		Value:         "cn=orphan,dc=example",
	}}
	access := &fakeAccess{
		groups: []store.GroupRow{{ID: "g-ext", Value: "cn=orphan,dc=example"}},
	}
	svc := boundService(t, objects, access, correlatedSchemas(pamAppID))

	grants, err := svc.EffectiveGrantsForIdentity("alice")
	require.NoError(t, err)
	assert.Empty(t, grants)
}

func TestGrantsForIdentityDirectFirst(t *testing.T) {
	link := model.Link{ID: "l-1", IdentityID: "alice", NativeIdentity: "alice.admin"}
	objects := seedObjects()
	objects.attrs = []model.ManagedAttribute{{
		ID:            "g-local",
		ApplicationID: pamAppID,
		Type:          model.ObjectTypeGroup,
		Value:         "finance-admins",
	}}
	access := &fakeAccess{
		grants: []store.LinkGrant{
			{Link: link, ApplicationName: "CyberArk PAM", Rights: []string{"Use Accounts"}},
		},
		groups: []store.GroupRow{{ID: "g-local", Value: "finance-admins"}},
		assocs: map[string][]store.Association{
			"g-local": {{Rights: []string{"Use Accounts"}}},
		},
	}
	svc := boundService(t, objects, access, correlatedSchemas(pamAppID))

	grants, err := svc.GrantsForIdentity("alice")
	require.NoError(t, err)
	require.Len(t, grants, 2)
	assert.Equal(t, "alice.admin", grants[0].Source.NativeIdentity)
	assert.Equal(t, "finance-admins", grants[1].Source.Group)

	merged := permission.MergeByRight(grants)
	require.Len(t, merged, 1)
	assert.Len(t, merged[0].Sources, 2)
}
