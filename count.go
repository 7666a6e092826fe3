/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package connector

import (
	"context"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/errors"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/query"
)

// Count reports how many records match a where clause.
//
// A where.id clause fetches that single key and counts 1 only when the
// fetch finds a record: a null fetch must never be reported as
// existing. Any other where shape falls back to a full-kind fetch and
// counts the results, which is expensive by design; a system that
// counts often should maintain a counter record instead of scanning.
func (c *Connector) CountAll(ctx context.Context, model string, where query.Where, opts *CallOptions, cb CountCallback) {
	n, err := c.count(ctx, model, where)
	if err != nil {
		c.log.WithError(err).WithField("model", model).Error("count failed")
		cb(err, 0)
		return
	}
	cb(nil, n)
}

func (c *Connector) count(ctx context.Context, model string, where query.Where) (int, error) {
	id, byID, err := idFromWhere(where)
	if err != nil {
		return 0, err
	}
	if byID {
		_, err := c.client.Get(ctx, keys.Key{Kind: model, ID: id})
		if errors.IsNotFound(err) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		return 1, nil
	}

	recs, err := c.client.Run(ctx, &query.Plan{Root: keys.New(model)})
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}
