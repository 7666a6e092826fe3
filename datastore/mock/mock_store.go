/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the Client
// interface for testing.
package mock

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/entity"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/errors"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/query"
)

// Store is an in-memory mock of datastore.Client. Queries are
// evaluated against the stored records, so the mock is immediately
// consistent, unlike the real service.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	data   map[string]map[int64]entity.Properties

	getErr    error
	putErr    error
	deleteErr error
	runErr    error
}

// New creates an empty mock Store.
func New() *Store {
	return &Store{
		nextID: 1,
		data:   make(map[string]map[int64]entity.Properties),
	}
}

// WithGetError makes Get and GetMulti return an error
func (s *Store) WithGetError(err error) *Store {
	s.getErr = err
	return s
}

// WithPutError makes Put and PutMulti return an error
func (s *Store) WithPutError(err error) *Store {
	s.putErr = err
	return s
}

// WithDeleteError makes Delete and DeleteMulti return an error
func (s *Store) WithDeleteError(err error) *Store {
	s.deleteErr = err
	return s
}

// WithRunError makes Run return an error
func (s *Store) WithRunError(err error) *Store {
	s.runErr = err
	return s
}

// Get retrieves one record by key
func (s *Store) Get(ctx context.Context, key keys.Key) (entity.Record, error) {
	if s.getErr != nil {
		return entity.Record{}, s.getErr
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	props, ok := s.data[key.Kind][key.ID]
	if !ok {
		return entity.Record{}, errors.NewNotFoundError(key.Kind, key.ID)
	}
	return entity.Record{Key: key, Props: props.Clone()}, nil
}

// GetMulti retrieves a batch of records, skipping missing keys
func (s *Store) GetMulti(ctx context.Context, ks []keys.Key) ([]entity.Record, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Record, 0, len(ks))
	for _, k := range ks {
		if props, ok := s.data[k.Kind][k.ID]; ok {
			out = append(out, entity.Record{Key: k, Props: props.Clone()})
		}
	}
	return out, nil
}

// Put stores one record, assigning an id when the key is incomplete
func (s *Store) Put(ctx context.Context, key keys.Key, props entity.Properties) (keys.Key, error) {
	if s.putErr != nil {
		return keys.Key{}, s.putErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(key, props), nil
}

// PutMulti stores a batch of records in one call
func (s *Store) PutMulti(ctx context.Context, ks []keys.Key, props []entity.Properties) ([]keys.Key, error) {
	if s.putErr != nil {
		return nil, s.putErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]keys.Key, len(ks))
	for i := range ks {
		out[i] = s.put(ks[i], props[i])
	}
	return out, nil
}

// Delete removes one record. Like the real service, the commit counts
// one mutation result whether or not the key existed.
func (s *Store) Delete(ctx context.Context, key keys.Key) (int, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data[key.Kind], key.ID)
	return 1, nil
}

// DeleteMulti removes a batch of records
func (s *Store) DeleteMulti(ctx context.Context, ks []keys.Key) (int, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range ks {
		delete(s.data[k.Kind], k.ID)
	}
	return len(ks), nil
}

// Run evaluates a compiled plan against the stored records
func (s *Store) Run(ctx context.Context, plan *query.Plan) ([]entity.Record, error) {
	if s.runErr != nil {
		return nil, s.runErr
	}
	if plan == nil {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	kind := s.data[plan.Root.Kind]
	ids := make([]int64, 0, len(kind))
	for id := range kind {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var recs []entity.Record
	for _, id := range ids {
		props := kind[id]
		if !matchesAll(plan.Predicates, props) {
			continue
		}
		recs = append(recs, entity.Record{
			Key:   keys.Key{Kind: plan.Root.Kind, ID: id},
			Props: props.Clone(),
		})
	}

	sortRecords(recs, plan.Orders)

	if plan.Offset > 0 {
		if plan.Offset >= len(recs) {
			recs = nil
		} else {
			recs = recs[plan.Offset:]
		}
	}
	if plan.Limit > 0 && plan.Limit < len(recs) {
		recs = recs[:plan.Limit]
	}

	if len(plan.Projection) > 0 {
		for i, rec := range recs {
			projected := make(entity.Properties, len(plan.Projection))
			for _, field := range plan.Projection {
				if v, ok := rec.Props[field]; ok {
					projected[field] = v
				}
			}
			recs[i].Props = projected
		}
	}

	return recs, nil
}

// Close is a no-op for the mock
func (s *Store) Close() error {
	return nil
}

// Helper methods for testing

// Seed stores a record under the next free id and returns its key
func (s *Store) Seed(kind string, props entity.Properties) keys.Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(keys.New(kind), props)
}

// Len returns the number of records stored under a kind
func (s *Store) Len(kind string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[kind])
}

// Props returns a copy of the stored properties for a key
func (s *Store) Props(key keys.Key) (entity.Properties, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	props, ok := s.data[key.Kind][key.ID]
	if !ok {
		return nil, false
	}
	return props.Clone(), true
}

// Clear removes all data
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]map[int64]entity.Properties)
}

func (s *Store) put(key keys.Key, props entity.Properties) keys.Key {
	if key.Incomplete() {
		key.ID = s.nextID
		s.nextID++
	} else if key.ID >= s.nextID {
		s.nextID = key.ID + 1
	}
	if s.data[key.Kind] == nil {
		s.data[key.Kind] = make(map[int64]entity.Properties)
	}
	s.data[key.Kind][key.ID] = props.Clone()
	return key
}

func matchesAll(preds []query.Predicate, props entity.Properties) bool {
	for _, p := range preds {
		if !matches(p, props) {
			return false
		}
	}
	return true
}

func matches(p query.Predicate, props entity.Properties) bool {
	val, ok := props[p.Field]
	if !ok {
		return false
	}

	if p.Op == query.OpIn {
		rv := reflect.ValueOf(p.Value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return false
		}
		for i := 0; i < rv.Len(); i++ {
			if cmp, comparable := compare(val, rv.Index(i).Interface()); comparable && cmp == 0 {
				return true
			}
		}
		return false
	}

	cmp, comparable := compare(val, p.Value)
	if !comparable {
		return false
	}
	switch p.Op {
	case query.OpEqual:
		return cmp == 0
	case query.OpNotEqual:
		return cmp != 0
	case query.OpLess:
		return cmp < 0
	case query.OpLessOrEqual:
		return cmp <= 0
	case query.OpGreater:
		return cmp > 0
	case query.OpGreaterOrEqual:
		return cmp >= 0
	default:
		return false
	}
}

func sortRecords(recs []entity.Record, orders []query.OrderSpec) {
	if len(orders) == 0 {
		return
	}
	sort.SliceStable(recs, func(i, j int) bool {
		for _, o := range orders {
			cmp, comparable := compare(recs[i].Props[o.Field], recs[j].Props[o.Field])
			if !comparable || cmp == 0 {
				continue
			}
			if o.Descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// compare orders two loosely-typed property values. Numeric values
// compare across integer and float representations.
func compare(a, b interface{}) (int, bool) {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}

	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		default:
			return 0, true
		}
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case av == bv:
			return 0, true
		case !av:
			return -1, true
		default:
			return 1, true
		}
	default:
		return 0, false
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
