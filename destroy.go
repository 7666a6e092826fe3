/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package connector

import (
	"context"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/query"
)

// DestroyAll removes the records matching a where clause and reports
// the mutation count.
//
// A where.id clause deletes that single key. Anything else fetches the
// entire kind, builds one key per record, and issues one batch delete,
// so destroying an already-empty kind reports {count: 0} rather than
// an error. Like bulk update, the batch path is read-then-delete with
// no isolation against concurrent writers.
func (c *Connector) DestroyAll(ctx context.Context, model string, where query.Where, opts *CallOptions, cb CountResultCallback) {
	result, err := c.destroyAll(ctx, model, where)
	if err != nil {
		c.log.WithError(err).WithField("model", model).Error("destroy failed")
		cb(err, Count{})
		return
	}
	cb(nil, result)
}

func (c *Connector) destroyAll(ctx context.Context, model string, where query.Where) (Count, error) {
	id, byID, err := idFromWhere(where)
	if err != nil {
		return Count{}, err
	}
	if byID {
		n, err := c.client.Delete(ctx, keys.Key{Kind: model, ID: id})
		if err != nil {
			return Count{}, err
		}
		return Count{Count: n}, nil
	}

	recs, err := c.client.Run(ctx, &query.Plan{Root: keys.New(model)})
	if err != nil {
		return Count{}, err
	}

	ks := make([]keys.Key, len(recs))
	for i, rec := range recs {
		ks[i] = rec.Key
	}

	n, err := c.client.DeleteMulti(ctx, ks)
	if err != nil {
		return Count{}, err
	}
	return Count{Count: n}, nil
}
