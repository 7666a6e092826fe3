/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package connector

import (
	"context"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/entity"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/query"
)

// UpdateAll applies new properties to the records matching a filter
// and reports the mutation count.
//
// A targeted id (filter.id or filter.where.id) becomes one single-key
// update with the new properties as the full payload. Anything else is
// a bulk update-by-query: fetch the matching records, merge the new
// properties onto each in memory, and write them back in one batch
// commit. The bulk path is read-then-write, not an atomic filtered
// update; a concurrent writer can race between the fetch and the
// commit.
func (c *Connector) UpdateAll(ctx context.Context, model string, filter *query.Filter, props entity.Properties, opts *CallOptions, cb CountResultCallback) {
	result, err := c.updateAll(ctx, model, filter, props)
	if err != nil {
		c.log.WithError(err).WithField("model", model).Error("update failed")
		cb(err, Count{})
		return
	}
	cb(nil, result)
}

func (c *Connector) updateAll(ctx context.Context, model string, filter *query.Filter, props entity.Properties) (Count, error) {
	id, byID, err := idFromFilter(filter)
	if err != nil {
		return Count{}, err
	}
	if byID {
		return c.updateOne(ctx, keys.Key{Kind: model, ID: id}, model, props)
	}
	return c.updateByQuery(ctx, model, filter, props)
}

func (c *Connector) updateOne(ctx context.Context, key keys.Key, model string, props entity.Properties) (Count, error) {
	payload := props.Clone()
	if c.refreshUpdatedAt(model) {
		payload = entity.StampForUpdate(payload)
	}
	if _, err := c.client.Put(ctx, key, payload); err != nil {
		return Count{}, err
	}
	return Count{Count: 1}, nil
}

func (c *Connector) updateByQuery(ctx context.Context, model string, filter *query.Filter, props entity.Properties) (Count, error) {
	plan, err := query.Compile(keys.New(model), filter)
	if err != nil {
		return Count{}, err
	}
	if plan == nil {
		return Count{}, nil
	}

	recs, err := c.client.Run(ctx, plan)
	if err != nil {
		return Count{}, err
	}
	if len(recs) == 0 {
		return Count{}, nil
	}

	stamp := c.refreshUpdatedAt(model)
	ks := make([]keys.Key, len(recs))
	payloads := make([]entity.Properties, len(recs))
	for i, rec := range recs {
		ks[i] = rec.Key
		merged := entity.Merge(rec.Props, props)
		if stamp {
			merged = entity.StampForUpdate(merged)
		}
		payloads[i] = merged
	}

	committed, err := c.client.PutMulti(ctx, ks, payloads)
	if err != nil {
		return Count{}, err
	}
	return Count{Count: len(committed)}, nil
}
