/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package connector

import (
	"context"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/entity"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/errors"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/query"
)

// All finds the records matching a filter. Routing, in order:
//
//  1. where.id carrying an in list: one batch get, missing keys
//     skipped.
//  2. where.id present: single-key fetch, zero-or-one-element result.
//  3. any other filter clause set: compile and run a query.
//  4. no filter at all: unfiltered full-kind fetch.
//
// The id routes go straight to key lookups because the identifier
// lives on the key, not in the stored properties; a compiled query on
// the id field would match nothing. Every branch merges the key
// identifier into each record as its id field before returning.
func (c *Connector) All(ctx context.Context, model string, filter *query.Filter, opts *CallOptions, cb AllCallback) {
	records, err := c.all(ctx, model, filter)
	if err != nil {
		c.log.WithError(err).WithField("model", model).Error("find failed")
		cb(err, nil)
		return
	}
	cb(nil, records)
}

func (c *Connector) all(ctx context.Context, model string, filter *query.Filter) ([]entity.Properties, error) {
	if filter != nil {
		ids, byIDs, err := idsFromWhere(filter.Where)
		if err != nil {
			return nil, err
		}
		if byIDs {
			return c.fetchMany(ctx, model, ids)
		}
		id, byID, err := idFromWhere(filter.Where)
		if err != nil {
			return nil, err
		}
		if byID {
			return c.fetchOne(ctx, keys.Key{Kind: model, ID: id})
		}
		if !filter.Empty() {
			return c.runFiltered(ctx, model, filter)
		}
	}

	recs, err := c.client.Run(ctx, &query.Plan{Root: keys.New(model)})
	if err != nil {
		return nil, err
	}
	return shape(recs), nil
}

func (c *Connector) fetchOne(ctx context.Context, key keys.Key) ([]entity.Properties, error) {
	rec, err := c.client.Get(ctx, key)
	if errors.IsNotFound(err) {
		return []entity.Properties{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []entity.Properties{entity.WithIdentifier(rec)}, nil
}

func (c *Connector) fetchMany(ctx context.Context, model string, ids []int64) ([]entity.Properties, error) {
	ks := make([]keys.Key, len(ids))
	for i, id := range ids {
		ks[i] = keys.Key{Kind: model, ID: id}
	}
	recs, err := c.client.GetMulti(ctx, ks)
	if err != nil {
		return nil, err
	}
	return shape(recs), nil
}

func (c *Connector) runFiltered(ctx context.Context, model string, filter *query.Filter) ([]entity.Properties, error) {
	plan, err := query.Compile(keys.New(model), filter)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		// Empty order list: the compile produced nothing to run.
		return []entity.Properties{}, nil
	}

	recs, err := c.client.Run(ctx, plan)
	if err != nil {
		return nil, err
	}
	return shape(recs), nil
}

func shape(recs []entity.Record) []entity.Properties {
	out := make([]entity.Properties, len(recs))
	for i, rec := range recs {
		out[i] = entity.WithIdentifier(rec)
	}
	return out
}
