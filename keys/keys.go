/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package keys builds storage keys from model names and identifiers.
//
// A Key names either a whole kind (incomplete, used on the insert path
// where the service assigns the identifier) or a single record within
// a kind. The model name is used verbatim as the kind name: renaming a
// model redirects all future operations to a different, empty kind and
// leaves existing records unreachable under the new name.
package keys

import (
	"encoding/json"
	"strconv"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/errors"
)

// Key identifies a kind and, optionally, one record within it.
// A zero ID marks the key incomplete.
type Key struct {
	Kind string
	ID   int64
}

// New returns an incomplete key for the given kind. The backing store
// assigns the identifier when the entity is written.
func New(kind string) Key {
	return Key{Kind: kind}
}

// NewWithID returns a key naming a specific record. The id is parsed
// and validated; a value that does not resolve to a positive integer
// yields an InvalidIdentifierError rather than a malformed key.
func NewWithID(kind string, id interface{}) (Key, error) {
	n, err := ParseID(id)
	if err != nil {
		return Key{}, err
	}
	return Key{Kind: kind, ID: n}, nil
}

// Incomplete reports whether the key names a kind without an identifier.
func (k Key) Incomplete() bool {
	return k.ID == 0
}

// ParseID converts a loosely-typed id value into a positive integer
// identifier. Identifiers arrive as strings, JSON numbers, or native
// integers depending on the caller.
func ParseID(v interface{}) (int64, error) {
	switch id := v.(type) {
	case string:
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil || n <= 0 {
			return 0, errors.NewInvalidIdentifierError(v)
		}
		return n, nil
	case int:
		if id <= 0 {
			return 0, errors.NewInvalidIdentifierError(v)
		}
		return int64(id), nil
	case int64:
		if id <= 0 {
			return 0, errors.NewInvalidIdentifierError(v)
		}
		return id, nil
	case float64:
		n := int64(id)
		if float64(n) != id || n <= 0 {
			return 0, errors.NewInvalidIdentifierError(v)
		}
		return n, nil
	case json.Number:
		n, err := id.Int64()
		if err != nil || n <= 0 {
			return 0, errors.NewInvalidIdentifierError(v)
		}
		return n, nil
	default:
		return 0, errors.NewInvalidIdentifierError(v)
	}
}
