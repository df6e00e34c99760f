package container

import (
	"github.com/juju/errors"

	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/permission"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/schema"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/store"
	"github.com/doodlesbykumbi/pam-in-go/pkg/query"
)

// Permission is one grant carried by a target association.
type Permission struct {
	Rights []string
	Source string
}

// LinkPermissions is the set of direct grants one account holds on the
// container.
type LinkPermissions struct {
	Link            model.Link
	ApplicationName string
	Permissions     []Permission
}

// DirectPermissionsForIdentity returns, per granting account, the direct
// permission grants the identity holds on the container.
func (s *Service) DirectPermissionsForIdentity(identityID string) ([]LinkPermissions, error) {
	if err := s.requireTarget(); err != nil {
		return nil, err
	}

	grants, err := s.access.DirectPermissions(s.target.ID, identityID)
	if err != nil {
		return nil, errors.Trace(err)
	}

	byLink := make(map[string]int, len(grants))
	out := make([]LinkPermissions, 0, len(grants))
	for _, grant := range grants {
		i, ok := byLink[grant.Link.ID]
		if !ok {
			i = len(out)
			byLink[grant.Link.ID] = i
			out = append(out, LinkPermissions{
				Link:            grant.Link,
				ApplicationName: grant.ApplicationName,
			})
		}
		out[i].Permissions = append(out[i].Permissions, Permission{
			Rights: grant.Rights,
			Source: grant.Source,
		})
	}
	return out, nil
}

// EffectiveGroupFilter matches entitlement rows (aliases ie, g) granting
// the identity effective access to the container, through either the
// local-group or the external-stub path.
func (s *Service) EffectiveGroupFilter(identityID string) (query.Filter, error) {
	if err := s.requireTarget(); err != nil {
		return nil, err
	}

	localAssoc := query.Exists(
		"target_associations ta",
		query.And(
			query.ColumnEq("ta.object_id", "g.id"),
			query.Eq("ta.owner_type", model.OwnerTypeAttribute),
			query.Eq("ta.target_id", s.target.ID),
		),
	)

	accessPath := localAssoc
	nativeKey, err := s.keys.ResolveKey(s.app.ID, schema.AttrExternalNativeIdentifier, false)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if nativeKey != "" {
		accessPath = query.Or(localAssoc, s.stubAssociationExists(nativeKey, "g.value"))
	}

	return query.And(
		query.Eq("ie.identity_id", identityID),
		query.Eq("ie.aggregation_state", model.AggregationConnected),
		accessPath,
	), nil
}

// EffectiveGroupsForIdentity returns the groups through which the
// identity holds effective access. Names come from the membership-granting
// group, not the stub.
func (s *Service) EffectiveGroupsForIdentity(identityID string) ([]store.GroupRow, error) {
	f, err := s.EffectiveGroupFilter(identityID)
	if err != nil {
		return nil, err
	}
	return s.access.EffectiveGroups(f)
}

// EffectiveGroupNamesForIdentity returns the displayable names of the
// groups still granting the identity access. Shown to callers after
// deprovisioning direct access.
func (s *Service) EffectiveGroupNamesForIdentity(identityID string) ([]string, error) {
	groups, err := s.EffectiveGroupsForIdentity(identityID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.DisplayName != "" {
			names = append(names, g.DisplayName)
		} else {
			names = append(names, g.Value)
		}
	}
	return names, nil
}

// DirectGrantsForIdentity flattens the identity's direct permissions into
// aggregator tuples sourced from the granting accounts.
func (s *Service) DirectGrantsForIdentity(identityID string) ([]permission.Grant, error) {
	perms, err := s.DirectPermissionsForIdentity(identityID)
	if err != nil {
		return nil, err
	}

	var grants []permission.Grant
	for _, lp := range perms {
		for _, p := range lp.Permissions {
			for _, right := range p.Rights {
				grants = append(grants, permission.Grant{
					Right: right,
					Source: permission.GrantingSource{
						Application:    lp.ApplicationName,
						NativeIdentity: lp.Link.NativeIdentity,
					},
				})
			}
		}
	}
	return grants, nil
}

// EffectiveGrantsForIdentity flattens the identity's group-mediated
// permissions into aggregator tuples sourced from the membership-granting
// groups. For external groups the association rights are read off the
// stub group, while the source name stays the membership group's.
func (s *Service) EffectiveGrantsForIdentity(identityID string) ([]permission.Grant, error) {
	groups, err := s.EffectiveGroupsForIdentity(identityID)
	if err != nil {
		return nil, err
	}

	var grants []permission.Grant
	for _, row := range groups {
		group, err := s.objects.FetchManagedAttributeByID(row.ID)
		if err != nil {
			return nil, errors.Trace(err)
		}
		if group == nil {
			continue
		}

		assocObject := group
		if s.bridge.IsExternal(group) {
			stub, err := s.bridge.FindStubForExternal(group)
			if err != nil {
				return nil, errors.Trace(err)
			}
			if stub == nil {
				continue
			}
			assocObject = stub
		}

		assocs, err := s.access.ObjectAssociations(s.target.ID, assocObject.ID)
		if err != nil {
			return nil, errors.Trace(err)
		}

		source := permission.GrantingSource{
			Application: s.app.Name,
			Group:       group.DisplayableName(),
		}
		for _, assoc := range assocs {
			for _, right := range assoc.Rights {
				grants = append(grants, permission.Grant{Right: right, Source: source})
			}
		}
	}
	return grants, nil
}

// GrantsForIdentity returns the identity's full grant list, direct grants
// first, ready for permission.MergeByRight.
func (s *Service) GrantsForIdentity(identityID string) ([]permission.Grant, error) {
	direct, err := s.DirectGrantsForIdentity(identityID)
	if err != nil {
		return nil, err
	}
	effective, err := s.EffectiveGrantsForIdentity(identityID)
	if err != nil {
		return nil, err
	}
	return append(direct, effective...), nil
}
