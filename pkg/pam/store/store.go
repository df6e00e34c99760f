package store

import (
	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/query"
)

// ObjectStore fetches persistent objects by identity. Lookups that find
// nothing return (nil, nil); callers decide whether a miss is an error.
type ObjectStore interface {
	// FetchTarget retrieves a container target by id.
	FetchTarget(id string) (*model.Target, error)

	// FindTargets returns container targets matching a predicate over
	// alias t, ordered by name.
	FindTargets(f query.Filter) ([]model.Target, error)

	// FetchApplication retrieves an application by id.
	FetchApplication(id string) (*model.Application, error)

	// FetchApplicationByName retrieves an application by name.
	FetchApplicationByName(name string) (*model.Application, error)

	// FetchIdentity retrieves an identity by id.
	FetchIdentity(id string) (*model.Identity, error)

	// FetchLink retrieves an account link by id.
	FetchLink(id string) (*model.Link, error)

	// FindLinks returns links matching a predicate over alias l.
	FindLinks(f query.Filter) ([]model.Link, error)

	// FetchManagedAttribute retrieves a managed attribute by its
	// (application, value, object type) natural key.
	FetchManagedAttribute(applicationID, value, objectType string) (*model.ManagedAttribute, error)

	// FetchManagedAttributeByID retrieves a managed attribute by id.
	FetchManagedAttributeByID(id string) (*model.ManagedAttribute, error)

	// FindManagedAttributes returns managed attributes matching a
	// predicate over alias g, in deterministic (value, id) order.
	FindManagedAttributes(f query.Filter) ([]model.ManagedAttribute, error)
}

// SchemaStore reads application schema definitions.
type SchemaStore interface {
	// ListSchemaAttributes returns the attribute definitions of an
	// application's account or group schema. An empty result means the
	// application has no such schema.
	ListSchemaAttributes(applicationID, schemaKind string) ([]model.SchemaAttribute, error)
}

// LinkGrant is one granting account with its rights on a container.
type LinkGrant struct {
	Link            model.Link
	ApplicationName string
	Rights          []string
	Source          string
}

// GroupRow is a projection of a membership-granting group.
type GroupRow struct {
	ID          string
	Value       string
	DisplayName string
}

// Association is a projection of one target association's grant.
type Association struct {
	Rights []string
	Source string
}

// AccessStore runs the set-membership queries built by the access
// resolver.
type AccessStore interface {
	// CountIdentities counts distinct identities matching a predicate
	// over alias i.
	CountIdentities(f query.Filter) (int, error)

	// SearchIdentityIDs returns distinct identity ids matching a
	// predicate over alias i, ordered by id.
	SearchIdentityIDs(f query.Filter) ([]string, error)

	// CountGroupAssociations counts group-level associations on a
	// container.
	CountGroupAssociations(targetID string) (int, error)

	// DirectPermissions returns, per granting link, the direct permission
	// grants an identity holds on a container.
	DirectPermissions(targetID, identityID string) ([]LinkGrant, error)

	// EffectiveGroups returns the distinct membership-granting groups
	// matching a predicate over aliases ie and g.
	EffectiveGroups(f query.Filter) ([]GroupRow, error)

	// ObjectAssociations returns the group-level grants an object carries
	// on a container.
	ObjectAssociations(targetID, objectID string) ([]Association, error)
}

// CaseStore inspects workflow cases for the pending-request guard.
type CaseStore interface {
	// CountPendingCases counts incomplete workflow cases targeting the
	// given object.
	CountPendingCases(targetID, targetClass string) (int, error)
}
