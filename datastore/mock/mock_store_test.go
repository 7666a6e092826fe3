/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/entity"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/errors"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/query"
)

func seedCustomers(s *Store) []keys.Key {
	return []keys.Key{
		s.Seed("Customer", entity.Properties{"name": "Anna", "age": int64(30), "type": "Animal"}),
		s.Seed("Customer", entity.Properties{"name": "Bo", "age": int64(25), "type": "Animal"}),
		s.Seed("Customer", entity.Properties{"name": "Cleo", "age": int64(40), "type": "Mineral"}),
	}
}

func TestGetPutRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	key, err := s.Put(ctx, keys.New("Customer"), entity.Properties{"name": "Anna"})
	require.NoError(t, err)
	assert.False(t, key.Incomplete())

	rec, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Anna", rec.Props["name"])
}

func TestGetNotFound(t *testing.T) {
	s := New()
	k, err := keys.NewWithID("Customer", 99)
	require.NoError(t, err)

	_, err = s.Get(context.Background(), k)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestGetMultiSkipsMissing(t *testing.T) {
	s := New()
	ks := seedCustomers(s)
	missing, err := keys.NewWithID("Customer", 99)
	require.NoError(t, err)

	recs, err := s.GetMulti(context.Background(), append(ks, missing))
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestRunPredicates(t *testing.T) {
	s := New()
	seedCustomers(s)
	ctx := context.Background()

	plan, err := query.Compile(keys.New("Customer"), &query.Filter{
		Where: query.Where{"type": "Animal"},
	})
	require.NoError(t, err)

	recs, err := s.Run(ctx, plan)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	plan, err = query.Compile(keys.New("Customer"), &query.Filter{
		Where: query.Where{"age": map[string]interface{}{"gte": 30}},
	})
	require.NoError(t, err)

	recs, err = s.Run(ctx, plan)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	plan, err = query.Compile(keys.New("Customer"), &query.Filter{
		Where: query.Where{"name": map[string]interface{}{"in": []interface{}{"Anna", "Cleo"}}},
	})
	require.NoError(t, err)

	recs, err = s.Run(ctx, plan)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestRunOrderLimitOffset(t *testing.T) {
	s := New()
	seedCustomers(s)
	ctx := context.Background()

	plan, err := query.Compile(keys.New("Customer"), &query.Filter{Order: "age DESC"})
	require.NoError(t, err)

	recs, err := s.Run(ctx, plan)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Cleo", recs[0].Props["name"])
	assert.Equal(t, "Bo", recs[2].Props["name"])

	plan, err = query.Compile(keys.New("Customer"), &query.Filter{Order: "age ASC", Skip: 1, Limit: 1})
	require.NoError(t, err)

	recs, err = s.Run(ctx, plan)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Anna", recs[0].Props["name"])
}

func TestRunProjection(t *testing.T) {
	s := New()
	seedCustomers(s)

	plan, err := query.Compile(keys.New("Customer"), &query.Filter{
		Fields: map[string]bool{"name": true},
	})
	require.NoError(t, err)

	recs, err := s.Run(context.Background(), plan)
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	for _, rec := range recs {
		assert.Contains(t, rec.Props, "name")
		assert.NotContains(t, rec.Props, "age")
	}
}

func TestDeleteCounts(t *testing.T) {
	s := New()
	ks := seedCustomers(s)
	ctx := context.Background()

	n, err := s.Delete(ctx, ks[0])
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, s.Len("Customer"))

	n, err = s.DeleteMulti(ctx, ks[1:])
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, s.Len("Customer"))

	n, err = s.DeleteMulti(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestInjectedErrors(t *testing.T) {
	boom := assert.AnError
	s := New().WithPutError(boom)

	_, err := s.Put(context.Background(), keys.New("Customer"), entity.Properties{})
	assert.Equal(t, boom, err)

	s = New().WithRunError(boom)
	_, err = s.Run(context.Background(), &query.Plan{Root: keys.New("Customer")})
	assert.Equal(t, boom, err)
}
