/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package connector

import (
	"context"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/entity"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
)

// Create inserts a new record and hands the assigned identifier to the
// callback. The key is built without an id, so this path is always an
// insert and never an update; the service assigns the identifier and
// the commit's first mutation result carries it back.
func (c *Connector) Create(ctx context.Context, model string, props entity.Properties, opts *CallOptions, cb CreateCallback) {
	id, err := c.create(ctx, model, props)
	if err != nil {
		c.log.WithError(err).WithField("model", model).Error("create failed")
		cb(err, 0)
		return
	}
	cb(nil, id)
}

func (c *Connector) create(ctx context.Context, model string, props entity.Properties) (int64, error) {
	key := keys.New(model)
	stamped := entity.StampForCreate(props, key)

	committed, err := c.client.Put(ctx, key, stamped)
	if err != nil {
		return 0, err
	}
	return committed.ID, nil
}
