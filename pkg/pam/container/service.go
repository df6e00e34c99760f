package container

import (
	"github.com/juju/errors"
	"github.com/rs/zerolog"

	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/external"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/schema"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/store"
	"github.com/doodlesbykumbi/pam-in-go/pkg/query"
)

// Service resolves who has access to one container. All operations
// require a target to be set first. Read-only and safe for concurrent
// use once the target is set.
type Service struct {
	objects store.ObjectStore
	access  store.AccessStore
	keys    *schema.KeyResolver
	log     zerolog.Logger

	target *model.Target
	app    *model.Application
	bridge *external.GroupBridge
}

// NewService creates an unbound container service.
func NewService(objects store.ObjectStore, access store.AccessStore, keys *schema.KeyResolver, log zerolog.Logger) *Service {
	return &Service{
		objects: objects,
		access:  access,
		keys:    keys,
		log:     log,
	}
}

// SetTarget binds the service to a container and resolves its owning
// application.
func (s *Service) SetTarget(target *model.Target) error {
	bridge, err := external.NewGroupBridge(s.objects, s.keys, s.log, target)
	if err != nil {
		return errors.Trace(err)
	}
	s.target = target
	s.app = bridge.Application()
	s.bridge = bridge
	return nil
}

// Target returns the bound container target.
func (s *Service) Target() *model.Target {
	return s.target
}

// Application returns the application owning the bound container.
func (s *Service) Application() *model.Application {
	return s.app
}

// Bridge returns the external-group bridge bound to the container.
func (s *Service) Bridge() *external.GroupBridge {
	return s.bridge
}

func (s *Service) requireTarget() error {
	if s.target == nil {
		return errors.NotAssignedf("container")
	}
	return nil
}

// DirectAccessFilter matches identities (alias i) whose account carries a
// Link-owned association with the container.
func (s *Service) DirectAccessFilter() (query.Filter, error) {
	if err := s.requireTarget(); err != nil {
		return nil, err
	}
	return query.Exists(
		"links l JOIN target_associations ta ON ta.object_id = l.id",
		query.And(
			query.ColumnEq("l.identity_id", "i.id"),
			query.Eq("ta.owner_type", model.OwnerTypeLink),
			query.Eq("ta.target_id", s.target.ID),
		),
	), nil
}

// EffectiveAccessFilter matches identities (alias i) with group-mediated
// access: either through a local group carrying the container's
// Attribute-owned association, or through an external group whose stub
// group carries it. The external path is only built when the PAM
// application's group schema declares a native-identifier correlation
// key.
func (s *Service) EffectiveAccessFilter() (query.Filter, error) {
	if err := s.requireTarget(); err != nil {
		return nil, err
	}

	local := query.Exists(
		entitlementGroupJoin("g")+
			" JOIN target_associations ta ON ta.object_id = g.id",
		query.And(
			query.ColumnEq("ie.identity_id", "i.id"),
			query.Eq("ie.aggregation_state", model.AggregationConnected),
			query.Eq("ta.owner_type", model.OwnerTypeAttribute),
			query.Eq("ta.target_id", s.target.ID),
		),
	)

	nativeKey, err := s.keys.ResolveKey(s.app.ID, schema.AttrExternalNativeIdentifier, false)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if nativeKey == "" {
		return local, nil
	}

	ext := query.Exists(
		entitlementGroupJoin("eg"),
		query.And(
			query.ColumnEq("ie.identity_id", "i.id"),
			query.Eq("ie.aggregation_state", model.AggregationConnected),
			s.stubAssociationExists(nativeKey, "eg.value"),
		),
	)

	return query.Or(local, ext), nil
}

// entitlementGroupJoin joins identity entitlements to the group granting
// them, under the given group alias.
func entitlementGroupJoin(groupAlias string) string {
	g := groupAlias
	return "identity_entitlements ie JOIN managed_attributes " + g +
		" ON " + g + ".attribute = ie.name AND " + g + ".value = ie.value" +
		" AND " + g + ".application_id = ie.application_id"
}

// stubAssociationExists requires a stub group on the container's
// application whose correlation-key column equals the external group's
// value and which carries the container's group-level association.
func (s *Service) stubAssociationExists(nativeKey, externalValueColumn string) query.Filter {
	return query.Exists(
		"managed_attributes sg JOIN target_associations sta ON sta.object_id = sg.id",
		query.And(
			query.ColumnEq("sg."+nativeKey, externalValueColumn),
			query.Eq("sg.application_id", s.app.ID),
			query.Eq("sta.owner_type", model.OwnerTypeAttribute),
			query.Eq("sta.target_id", s.target.ID),
		),
	)
}

// TotalAccessFilter matches identities with direct or effective access.
func (s *Service) TotalAccessFilter() (query.Filter, error) {
	direct, err := s.DirectAccessFilter()
	if err != nil {
		return nil, err
	}
	effective, err := s.EffectiveAccessFilter()
	if err != nil {
		return nil, err
	}
	return query.Or(direct, effective), nil
}

// TotalAccessCount counts identities with access of any kind. Computed as
// one set-counting query so identities holding both direct and indirect
// access are counted once.
func (s *Service) TotalAccessCount() (int, error) {
	f, err := s.TotalAccessFilter()
	if err != nil {
		return 0, err
	}
	return s.access.CountIdentities(f)
}

// HasEffectiveAccess reports whether the identity retains group-mediated
// access to the container.
func (s *Service) HasEffectiveAccess(identityID string) (bool, error) {
	f, err := s.EffectiveAccessFilter()
	if err != nil {
		return false, err
	}
	count, err := s.access.CountIdentities(query.And(f, query.Eq("i.id", identityID)))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DirectIdentityIDs resolves the identities with direct access, excluding
// the given exception ids. Used by select-all deprovisioning.
func (s *Service) DirectIdentityIDs(exceptions []string) ([]string, error) {
	direct, err := s.DirectAccessFilter()
	if err != nil {
		return nil, err
	}
	f := direct
	if len(exceptions) > 0 {
		f = query.And(direct, query.Not(query.InStrings("i.id", exceptions)))
	}
	return s.access.SearchIdentityIDs(f)
}

// GroupCount counts the groups granted access to the container.
func (s *Service) GroupCount() (int, error) {
	if err := s.requireTarget(); err != nil {
		return 0, err
	}
	return s.access.CountGroupAssociations(s.target.ID)
}

// ContainerAttribute fetches the container's managed-attribute
// representation on the PAM application.
func (s *Service) ContainerAttribute() (*model.ManagedAttribute, error) {
	if err := s.requireTarget(); err != nil {
		return nil, err
	}
	return s.objects.FetchManagedAttribute(s.app.ID, s.target.NativeObjectID, model.ObjectTypeContainer)
}

// DisplayName resolves the container's display name: managed-attribute
// display name, then managed-attribute value, then the target's own
// displayable name.
func (s *Service) DisplayName() (string, error) {
	if err := s.requireTarget(); err != nil {
		return "", err
	}
	ma, err := s.ContainerAttribute()
	if err != nil {
		return "", errors.Trace(err)
	}
	return TargetDisplayName(s.target, ma), nil
}

// TargetDisplayName resolves a container display name from its target and
// optional managed attribute.
func TargetDisplayName(target *model.Target, ma *model.ManagedAttribute) string {
	if ma != nil {
		if ma.DisplayName != "" {
			return ma.DisplayName
		}
		if ma.Value != "" {
			return ma.Value
		}
	}
	return target.DisplayableName()
}
