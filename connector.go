/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package connector

import (
	"reflect"

	log "github.com/sirupsen/logrus"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/datastore"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/entity"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/errors"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/query"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/registry"
)

// Count is the result object of the batch mutation verbs.
type Count struct {
	Count int `json:"count"`
}

// CallOptions is the per-call options argument of the framework calling
// convention. No options are currently interpreted; the parameter is
// accepted so the verb signatures keep the framework shape.
type CallOptions struct{}

// Callback signatures of the framework calling convention. Every verb
// invokes its callback exactly once: with a populated error and the
// zero result, or with a nil error and the populated result.
type (
	// CreateCallback receives the identifier assigned to the new record.
	CreateCallback func(err error, id int64)
	// AllCallback receives the matching records with their inline ids.
	AllCallback func(err error, records []entity.Properties)
	// CountCallback receives the number of matching records.
	CountCallback func(err error, count int)
	// CountResultCallback receives a {count} result object.
	CountResultCallback func(err error, result Count)
)

// Connector translates framework CRUD and filter operations into
// native calls against the backing store client. One Connector holds
// one long-lived client handle shared across all verb invocations; no
// other state survives a request.
type Connector struct {
	client            datastore.Client
	log               *log.Entry
	updatedAtOnUpdate bool
}

// Option configures a Connector.
type Option func(*Connector)

// WithLogger replaces the default logger.
func WithLogger(entry *log.Entry) Option {
	return func(c *Connector) {
		c.log = entry
	}
}

// WithUpdatedAtOnUpdate makes the update paths refresh the updatedAt
// property. Off by default: historically update never touched
// updatedAt, and callers may depend on that.
func WithUpdatedAtOnUpdate(enabled bool) Option {
	return func(c *Connector) {
		c.updatedAtOnUpdate = enabled
	}
}

// New returns a Connector issuing operations through the given client.
func New(client datastore.Client, opts ...Option) *Connector {
	c := &Connector{
		client: client,
		log:    log.WithField("component", "connector"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the underlying client.
func (c *Connector) Close() error {
	return c.client.Close()
}

// refreshUpdatedAt resolves the updated-at policy for a model: the
// registry definition wins over the connector-level setting.
func (c *Connector) refreshUpdatedAt(model string) bool {
	if def, ok := registry.Lookup(model); ok && def.UpdatedAtOnUpdate != nil {
		return *def.UpdatedAtOnUpdate
	}
	return c.updatedAtOnUpdate
}

// idFromWhere extracts and validates a targeted id from a where
// clause. The second return reports whether an id clause was present.
func idFromWhere(where query.Where) (int64, bool, error) {
	raw, ok := where["id"]
	if !ok {
		return 0, false, nil
	}
	id, err := keys.ParseID(raw)
	if err != nil {
		return 0, true, err
	}
	return id, true, nil
}

// idsFromWhere extracts a batch of targeted ids from a where clause of
// the form {"id": {"in": [...]}}. The second return reports whether
// such a clause was present; each listed id is validated the same way
// a single targeted id is.
func idsFromWhere(where query.Where) ([]int64, bool, error) {
	raw, ok := where["id"]
	if !ok {
		return nil, false, nil
	}

	var cond map[string]interface{}
	switch m := raw.(type) {
	case map[string]interface{}:
		cond = m
	case query.Where:
		cond = m
	default:
		return nil, false, nil
	}
	list, ok := cond["in"]
	if !ok || len(cond) != 1 {
		return nil, false, nil
	}

	rv := reflect.ValueOf(list)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, true, errors.NewInvalidFilterError("id in clause must be a list")
	}
	ids := make([]int64, rv.Len())
	for i := range ids {
		id, err := keys.ParseID(rv.Index(i).Interface())
		if err != nil {
			return nil, true, err
		}
		ids[i] = id
	}
	return ids, true, nil
}

// idFromFilter extracts a targeted id from either the filter's own id
// field or its where clause, whichever the caller used.
func idFromFilter(f *query.Filter) (int64, bool, error) {
	if f == nil {
		return 0, false, nil
	}
	if f.ID != "" {
		id, err := keys.ParseID(f.ID)
		return id, true, err
	}
	return idFromWhere(f.Where)
}
