// Package schema resolves correlation keys from application schema
// definitions.
//
// External identity stores are bridged to the PAM application through
// correlation keys: schema attributes whose values are mirrored into the
// keyN columns of links and managed attributes. The resolver maps a
// logical attribute name to its keyN column for an application's account
// or group schema, building the lookup table once per application-schema
// pair and caching it.
package schema

import (
	"fmt"
	"sync"

	"github.com/juju/errors"

	"github.com/doodlesbykumbi/pam-in-go/pkg/model"
	"github.com/doodlesbykumbi/pam-in-go/pkg/pam/store"
)

// Correlation attributes carried by stub groups and external-referenced
// links. NativeIdentifier holds the external object's native value, Source
// the name of the external application it lives on.
const (
	AttrExternalNativeIdentifier = "nativeIdentifier"
	AttrExternalSource           = "source"
)

// Correlation keys map onto the key1..key4 columns.
const maxCorrelationKey = 4

type schemaTable struct {
	// attribute name -> correlation key index (0 when not a key)
	keys map[string]int
}

// KeyResolver resolves which keyN column carries a logical attribute for
// an application schema. Safe for concurrent use.
type KeyResolver struct {
	schemas store.SchemaStore

	mu    sync.RWMutex
	cache map[string]*schemaTable
}

// NewKeyResolver creates a KeyResolver over the given schema store.
func NewKeyResolver(schemas store.SchemaStore) *KeyResolver {
	return &KeyResolver{
		schemas: schemas,
		cache:   map[string]*schemaTable{},
	}
}

// ResolveKey returns the keyN column name carrying attributeName on the
// application's account or group schema.
//
// A missing schema is a fatal misconfiguration. An attribute the schema
// simply does not define resolves to "" with no error: not every
// application is correlation-enabled. An attribute that exists but is not
// marked as a correlation key is again a fatal misconfiguration, never
// silently defaulted.
func (r *KeyResolver) ResolveKey(applicationID, attributeName string, accountSchema bool) (string, error) {
	schemaKind := model.SchemaGroup
	if accountSchema {
		schemaKind = model.SchemaAccount
	}

	table, err := r.schemaTable(applicationID, schemaKind)
	if err != nil {
		return "", errors.Trace(err)
	}

	index, ok := table.keys[attributeName]
	if !ok {
		return "", nil
	}
	if index <= 0 || index > maxCorrelationKey {
		return "", errors.NotValidf(
			"attribute %q on application %s %s schema is not a correlation key",
			attributeName, applicationID, schemaKind)
	}
	return fmt.Sprintf("key%d", index), nil
}

func (r *KeyResolver) schemaTable(applicationID, schemaKind string) (*schemaTable, error) {
	cacheKey := applicationID + "/" + schemaKind

	r.mu.RLock()
	table, ok := r.cache[cacheKey]
	r.mu.RUnlock()
	if ok {
		return table, nil
	}

	attrs, err := r.schemas.ListSchemaAttributes(applicationID, schemaKind)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if len(attrs) == 0 {
		return nil, errors.NotValidf("application %s has no %s schema", applicationID, schemaKind)
	}

	table = &schemaTable{keys: make(map[string]int, len(attrs))}
	for _, attr := range attrs {
		table.keys[attr.AttributeName] = attr.CorrelationKey
	}

	r.mu.Lock()
	r.cache[cacheKey] = table
	r.mu.Unlock()

	return table, nil
}

// Invalidate drops the cached table for an application schema, forcing a
// reload on next resolution. Used after schema edits.
func (r *KeyResolver) Invalidate(applicationID string) {
	r.mu.Lock()
	delete(r.cache, applicationID+"/"+model.SchemaAccount)
	delete(r.cache, applicationID+"/"+model.SchemaGroup)
	r.mu.Unlock()
}
