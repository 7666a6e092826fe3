/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/mitchellh/mapstructure"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
)

// Reserved property names managed by the connector rather than the caller.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Properties is the loosely-typed property map of a stored record.
type Properties map[string]interface{}

// Clone returns a shallow copy of the property map.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Record is a stored entity: a property map plus the key it was read
// from or will be written under. The key travels out-of-band; callers
// of the connector only ever see the inline id field.
type Record struct {
	Key   keys.Key
	Props Properties
}

// WithIdentifier merges the record's key identifier into the property
// map as the id field. Applied to every record returned from any read
// path.
func WithIdentifier(rec Record) Properties {
	props := rec.Props.Clone()
	props[FieldID] = rec.Key.ID
	return props
}

// StampForCreate prepares caller-supplied properties for an insert:
// createdAt is set to the current time, updatedAt to null, and id to
// the key identifier when the key is complete. createdAt is written
// once here and never overwritten.
func StampForCreate(props Properties, key keys.Key) Properties {
	out := props.Clone()
	out[FieldCreatedAt] = Timestamp(time.Now())
	out[FieldUpdatedAt] = nil
	if !key.Incomplete() {
		out[FieldID] = key.ID
	}
	return out
}

// StampForUpdate refreshes the updatedAt property. Only applied on the
// update paths when the connector's updated-at policy is enabled.
func StampForUpdate(props Properties) Properties {
	out := props.Clone()
	out[FieldUpdatedAt] = Timestamp(time.Now())
	return out
}

// Merge lays the new properties over a stored record's current
// properties, returning the full payload for a write. Reserved fields
// already present on the record survive unless the caller overrides
// them.
func Merge(current, updates Properties) Properties {
	out := current.Clone()
	for k, v := range updates {
		out[k] = v
	}
	return out
}

// Timestamp renders t as an ISO-8601 string, the wire format of the
// createdAt and updatedAt properties.
func Timestamp(t time.Time) string {
	return strfmt.DateTime(t.UTC()).String()
}

// ParseTimestamp parses an ISO-8601 timestamp produced by Timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	dt, err := strfmt.ParseDateTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return time.Time(dt), nil
}

// DecodeProperties converts an arbitrary struct or map into a property
// map, honoring mapstructure tags. Convenience for callers that model
// their records as structs.
func DecodeProperties(src interface{}) (Properties, error) {
	var out Properties
	if err := mapstructure.Decode(src, &out); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	return out, nil
}
