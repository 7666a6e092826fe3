/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/entity"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/query"
)

// Client is the backing-store surface the connector issues native
// calls through. A single Client is created per connector instance and
// shared across all verb invocations; the implementation manages its
// own connection pooling.
//
// Mutating calls return the number of mutation results the commit
// reported, which is what the connector surfaces as {count}.
type Client interface {
	// Get fetches one record by key. A missing record is reported as a
	// NotFoundError, never as a nil record.
	Get(ctx context.Context, key keys.Key) (entity.Record, error)

	// GetMulti fetches a batch of records by key, skipping keys with no
	// stored record.
	GetMulti(ctx context.Context, ks []keys.Key) ([]entity.Record, error)

	// Put writes one record. An incomplete key is completed by the
	// service; the returned key carries the assigned identifier.
	Put(ctx context.Context, key keys.Key, props entity.Properties) (keys.Key, error)

	// PutMulti writes a batch of records in one commit and returns the
	// written keys, one per mutation result.
	PutMulti(ctx context.Context, ks []keys.Key, props []entity.Properties) ([]keys.Key, error)

	// Delete removes one record and returns the mutation-result count.
	Delete(ctx context.Context, key keys.Key) (int, error)

	// DeleteMulti removes a batch of records in one commit and returns
	// the mutation-result count.
	DeleteMulti(ctx context.Context, ks []keys.Key) (int, error)

	// Run executes a compiled query plan and returns the matching
	// records with their keys.
	Run(ctx context.Context, plan *query.Plan) ([]entity.Record, error)

	// Close releases the underlying connection.
	Close() error
}
