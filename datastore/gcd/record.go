/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gcd

import (
	ds "cloud.google.com/go/datastore"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/entity"
)

// record moves a loose property map across the PropertyLoadSaver
// boundary so entities need no schema struct.
type record struct {
	props entity.Properties
}

func (r *record) Load(ps []ds.Property) error {
	r.props = make(entity.Properties, len(ps))
	for _, p := range ps {
		r.props[p.Name] = p.Value
	}
	return nil
}

func (r *record) Save() ([]ds.Property, error) {
	out := make([]ds.Property, 0, len(r.props))
	for name, value := range r.props {
		out = append(out, ds.Property{Name: name, Value: value})
	}
	return out, nil
}
