// Package external bridges PAM groups and accounts to their counterparts
// on external identity-management applications.
//
// A group's real membership may live on an external application (e.g. a
// directory service). On the PAM side a stub group carries the external
// group's native identifier and source application name in its
// correlation-key columns, and it is the stub - never the external group -
// that holds a container's target-permission records. This package decides
// which side of that split a given group reference is on and crosses it in
// either direction.
package external

import (
	"github.com/juju/errors"
	"github.com/rs/zerolog"

	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/schema"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/store"
	"github.com/doodlesbykumbi/pam-in-go/pkg/query"
)

// GroupBridge resolves local/external group and account references within
// the context of one container.
type GroupBridge struct {
	objects store.ObjectStore
	keys    *schema.KeyResolver
	log     zerolog.Logger

	target *model.Target
	app    *model.Application
}

// NewGroupBridge creates a bridge for the container's target. The target's
// owning application is resolved eagerly; a container without one is a
// broken aggregate.
func NewGroupBridge(objects store.ObjectStore, keys *schema.KeyResolver, log zerolog.Logger, target *model.Target) (*GroupBridge, error) {
	if target == nil {
		return nil, errors.NotAssignedf("container")
	}
	app, err := objects.FetchApplication(target.ApplicationID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if app == nil {
		return nil, errors.NotFoundf("application %s for container %s", target.ApplicationID, target.ID)
	}
	return &GroupBridge{
		objects: objects,
		keys:    keys,
		log:     log,
		target:  target,
		app:     app,
	}, nil
}

// Application returns the PAM application owning the bridge's container.
func (b *GroupBridge) Application() *model.Application {
	return b.app
}

// IsExternal reports whether the group lives on a different application
// than the container.
func (b *GroupBridge) IsExternal(group *model.ManagedAttribute) bool {
	return group.ApplicationID != b.app.ID
}

// FindStubForExternal resolves the PAM-side stub group for an external
// group. Returns nil when the PAM application's group schema has no
// correlation keys (bridging unsupported) or when no stub matches. When
// multiple stubs match, matches on the container's own application win;
// remaining ties resolve to the first match in deterministic order.
func (b *GroupBridge) FindStubForExternal(ext *model.ManagedAttribute) (*model.ManagedAttribute, error) {
	nativeKey, err := b.keys.ResolveKey(b.app.ID, schema.AttrExternalNativeIdentifier, false)
	if err != nil {
		return nil, errors.Trace(err)
	}
	sourceKey, err := b.keys.ResolveKey(b.app.ID, schema.AttrExternalSource, false)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if nativeKey == "" || sourceKey == "" {
		return nil, nil
	}

	extApp, err := b.objects.FetchApplication(ext.ApplicationID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if extApp == nil {
		return nil, errors.NotFoundf("application %s for group %s", ext.ApplicationID, ext.ID)
	}

	matches, err := b.objects.FindManagedAttributes(query.And(
		query.Eq("g.type", model.ObjectTypeGroup),
		query.Eq("g."+nativeKey, ext.Value),
		query.Eq("g."+sourceKey, extApp.Name),
	))
	if err != nil {
		return nil, errors.Trace(err)
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return &matches[0], nil
	}

	// Prefer the stub on the container's own application.
	local := matches[:0:0]
	for _, m := range matches {
		if m.ApplicationID == b.app.ID {
			local = append(local, m)
		}
	}
	if len(local) == 0 {
		local = matches
	}
	if len(local) > 1 {
		b.log.Warn().
			Str("group", ext.Value).
			Str("container", b.target.ID).
			Int("matches", len(local)).
			Msg("multiple stub groups match external group, picking first deterministic match")
	}
	return &local[0], nil
}

// ResolveMembershipGroup loads a group by id and, when it is a stub
// carrying external correlation attributes, returns the real external
// group that membership is defined on. Ambiguous external lookups are a
// misconfiguration. A stub whose external group has not been aggregated
// yet resolves to itself.
func (b *GroupBridge) ResolveMembershipGroup(groupID string) (*model.ManagedAttribute, error) {
	group, err := b.objects.FetchManagedAttributeByID(groupID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if group == nil {
		return nil, errors.NotFoundf("group %s", groupID)
	}

	nativeIdentifier := group.Attributes.String(schema.AttrExternalNativeIdentifier)
	if nativeIdentifier == "" {
		return group, nil
	}

	sourceName := group.Attributes.String(schema.AttrExternalSource)
	sourceApp, err := b.objects.FetchApplicationByName(sourceName)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if sourceApp == nil {
		return nil, errors.NotFoundf("source application %q for group %s", sourceName, groupID)
	}

	matches, err := b.objects.FindManagedAttributes(query.And(
		query.Eq("g.type", model.ObjectTypeGroup),
		query.Eq("g.application_id", sourceApp.ID),
		query.Eq("g.value", nativeIdentifier),
	))
	if err != nil {
		return nil, errors.Trace(err)
	}
	if len(matches) > 1 {
		return nil, errors.NotValidf(
			"external group %q on application %q matches %d groups",
			nativeIdentifier, sourceName, len(matches))
	}
	if len(matches) == 0 {
		return group, nil
	}
	return &matches[0], nil
}

// ExternalLinkFor resolves the real external account behind a
// local/stub link. Returns nil when the link carries no external
// reference or no external account matches. A configured source
// application that cannot be found is an error.
func (b *GroupBridge) ExternalLinkFor(link *model.Link) (*model.Link, error) {
	nativeIdentifier := link.Attributes.String(schema.AttrExternalNativeIdentifier)
	if nativeIdentifier == "" {
		return nil, nil
	}

	sourceName := link.Attributes.String(schema.AttrExternalSource)
	sourceApp, err := b.objects.FetchApplicationByName(sourceName)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if sourceApp == nil {
		return nil, errors.NotFoundf("source application %q for link %s", sourceName, link.ID)
	}

	links, err := b.objects.FindLinks(query.And(
		query.Eq("l.application_id", sourceApp.ID),
		query.Eq("l.native_identity", nativeIdentifier),
	))
	if err != nil {
		return nil, errors.Trace(err)
	}
	if len(links) == 0 {
		return nil, nil
	}
	return &links[0], nil
}
