/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
)

func TestWithIdentifier(t *testing.T) {
	key, err := keys.NewWithID("Customer", "42")
	require.NoError(t, err)

	rec := Record{Key: key, Props: Properties{"name": "Anna"}}
	props := WithIdentifier(rec)

	assert.Equal(t, int64(42), props[FieldID])
	assert.Equal(t, "Anna", props["name"])

	// Source record must stay untouched.
	_, ok := rec.Props[FieldID]
	assert.False(t, ok)
}

func TestStampForCreate(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	props := Properties{"name": "Anna", "age": 30}

	stamped := StampForCreate(props, keys.New("Customer"))

	// updatedAt is null at creation, not a timestamp.
	val, ok := stamped[FieldUpdatedAt]
	require.True(t, ok)
	assert.Nil(t, val)

	created, ok := stamped[FieldCreatedAt].(string)
	require.True(t, ok, "createdAt should be an ISO-8601 string")
	ts, err := ParseTimestamp(created)
	require.NoError(t, err)
	assert.True(t, ts.After(before))

	// Incomplete key contributes no id.
	_, ok = stamped[FieldID]
	assert.False(t, ok)

	// Caller payload untouched.
	_, ok = props[FieldCreatedAt]
	assert.False(t, ok)
}

func TestStampForCreateWithCompleteKey(t *testing.T) {
	key, err := keys.NewWithID("Customer", 7)
	require.NoError(t, err)

	stamped := StampForCreate(Properties{"name": "Bo"}, key)
	assert.Equal(t, int64(7), stamped[FieldID])
}

func TestStampForUpdate(t *testing.T) {
	stamped := StampForUpdate(Properties{"name": "Bo"})

	updated, ok := stamped[FieldUpdatedAt].(string)
	require.True(t, ok)
	_, err := ParseTimestamp(updated)
	require.NoError(t, err)
}

func TestMerge(t *testing.T) {
	current := Properties{"name": "Anna", "age": 30, FieldCreatedAt: "2024-01-01T00:00:00.000Z"}
	updates := Properties{"age": 31}

	merged := Merge(current, updates)

	assert.Equal(t, 31, merged["age"])
	assert.Equal(t, "Anna", merged["name"])
	assert.Equal(t, "2024-01-01T00:00:00.000Z", merged[FieldCreatedAt])
	assert.Equal(t, 30, current["age"], "merge must not mutate the stored record")
}

func TestDecodeProperties(t *testing.T) {
	type customer struct {
		Name string `mapstructure:"name"`
		Age  int    `mapstructure:"age"`
	}

	props, err := DecodeProperties(customer{Name: "Anna", Age: 30})
	require.NoError(t, err)
	assert.Equal(t, "Anna", props["name"])
	assert.Equal(t, 30, props["age"])
}
