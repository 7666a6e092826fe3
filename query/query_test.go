/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/errors"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
)

func compile(t *testing.T, f *Filter) *Plan {
	t.Helper()
	plan, err := Compile(keys.New("Customer"), f)
	require.NoError(t, err)
	require.NotNil(t, plan)
	return plan
}

func TestCompileNilFilter(t *testing.T) {
	plan := compile(t, nil)
	assert.Equal(t, "Customer", plan.Root.Kind)
	assert.Empty(t, plan.Predicates)
	assert.Empty(t, plan.Orders)
	assert.Empty(t, plan.Projection)
}

func TestCompileEquality(t *testing.T) {
	plan := compile(t, &Filter{Where: Where{"type": "Animal"}})
	require.Len(t, plan.Predicates, 1)
	assert.Equal(t, Predicate{Field: "type", Op: OpEqual, Value: "Animal"}, plan.Predicates[0])
}

func TestCompileComparisonOperators(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Operator
	}{
		{name: "lt", in: "lt", want: OpLess},
		{name: "lte", in: "lte", want: OpLessOrEqual},
		{name: "gt", in: "gt", want: OpGreater},
		{name: "gte", in: "gte", want: OpGreaterOrEqual},
		{name: "ne", in: "ne", want: OpNotEqual},
		{name: "in", in: "in", want: OpIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := compile(t, &Filter{Where: Where{"age": map[string]interface{}{tt.in: 30}}})
			require.Len(t, plan.Predicates, 1)
			assert.Equal(t, tt.want, plan.Predicates[0].Op)
			assert.Equal(t, "age", plan.Predicates[0].Field)
			assert.Equal(t, 30, plan.Predicates[0].Value)
		})
	}
}

func TestCompileMultipleWhereKeysAreANDed(t *testing.T) {
	plan := compile(t, &Filter{Where: Where{
		"type": "Animal",
		"age":  map[string]interface{}{"gte": 2},
	}})
	require.Len(t, plan.Predicates, 2)
	// Deterministic field order.
	assert.Equal(t, "age", plan.Predicates[0].Field)
	assert.Equal(t, "type", plan.Predicates[1].Field)
}

func TestCompileUnsupportedOperator(t *testing.T) {
	_, err := Compile(keys.New("Customer"), &Filter{
		Where: Where{"name": map[string]interface{}{"regexp": "^A"}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedOperator(err))
}

func TestCompileOrderDescending(t *testing.T) {
	plan := compile(t, &Filter{Order: "age DESC"})
	require.Len(t, plan.Orders, 1)
	assert.Equal(t, OrderSpec{Field: "age", Descending: true}, plan.Orders[0])
}

func TestCompileOrderAscending(t *testing.T) {
	for _, dir := range []string{"ASC", "asc", "whatever"} {
		plan := compile(t, &Filter{Order: "age " + dir})
		require.Len(t, plan.Orders, 1)
		assert.Equal(t, OrderSpec{Field: "age", Descending: false}, plan.Orders[0])
	}
}

func TestCompileOrderMissingDirectionSkipped(t *testing.T) {
	// No direction token: the entry is skipped, not a failure.
	plan := compile(t, &Filter{Order: []string{"age", "name ASC"}})
	require.Len(t, plan.Orders, 1)
	assert.Equal(t, "name", plan.Orders[0].Field)
}

func TestCompileEmptyOrderShortCircuits(t *testing.T) {
	plan, err := Compile(keys.New("Customer"), &Filter{Order: []string{}, Where: Where{"type": "Animal"}})
	require.NoError(t, err)
	assert.Nil(t, plan, "an explicitly empty order list compiles to no query at all")
}

func TestCompileOrderInvalidType(t *testing.T) {
	_, err := Compile(keys.New("Customer"), &Filter{Order: 42})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidFilter(err))

	_, err = Compile(keys.New("Customer"), &Filter{Order: []interface{}{"age DESC", 1}})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidFilter(err))
}

func TestCompilePagination(t *testing.T) {
	plan := compile(t, &Filter{Limit: 10, Skip: 20})
	assert.Equal(t, 10, plan.Limit)
	assert.Equal(t, 20, plan.Offset)
}

func TestCompileProjection(t *testing.T) {
	plan := compile(t, &Filter{Fields: map[string]bool{"emails": true, "age": false}})
	assert.Equal(t, []string{"emails"}, plan.Projection)
}

func TestCompileAllFalseProjectionSelectsEverything(t *testing.T) {
	// No true entry: empty select list, which means all fields.
	plan := compile(t, &Filter{Fields: map[string]bool{"emails": false, "age": false}})
	assert.Empty(t, plan.Projection)
}

func TestFilterEmpty(t *testing.T) {
	assert.True(t, (*Filter)(nil).Empty())
	assert.True(t, (&Filter{}).Empty())
	assert.False(t, (&Filter{Limit: 1}).Empty())
	assert.False(t, (&Filter{Where: Where{"a": 1}}).Empty())
	assert.False(t, (&Filter{Fields: map[string]bool{"a": true}}).Empty())
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter(map[string]interface{}{
		"where": map[string]interface{}{"type": "Animal"},
		"order": "age DESC",
		"limit": float64(5),
		"skip":  float64(2),
		"fields": map[string]interface{}{
			"emails": true,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, Where{"type": "Animal"}, f.Where)
	assert.Equal(t, "age DESC", f.Order)
	assert.Equal(t, 5, f.Limit)
	assert.Equal(t, 2, f.Skip)
	assert.Equal(t, map[string]bool{"emails": true}, f.Fields)
}

func TestParseFilterInvalid(t *testing.T) {
	_, err := ParseFilter(map[string]interface{}{"limit": "lots"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidFilter(err))
}
