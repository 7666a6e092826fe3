/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gcd

import (
	"context"
	"errors"
	"fmt"

	ds "cloud.google.com/go/datastore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/entity"
	connerrors "github.com/grendes-wunder/loopback-connector-google-cloud-datastore/errors"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/keys"
	"github.com/grendes-wunder/loopback-connector-google-cloud-datastore/query"
)

// Store implements datastore.Client on Google Cloud Datastore.
type Store struct {
	client    *ds.Client
	namespace string
}

// New connects to Cloud Datastore for the configured project. When a
// key file is configured it is used for credentials; otherwise the
// client falls back to application default credentials.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if cfg.KeyFilename != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.KeyFilename))
	}

	client, err := ds.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create datastore client: %w", err)
	}

	return &Store{client: client, namespace: cfg.Namespace}, nil
}

// Get fetches a single record by key.
func (s *Store) Get(ctx context.Context, key keys.Key) (entity.Record, error) {
	var r record
	if err := s.client.Get(ctx, s.nativeKey(key), &r); err != nil {
		if errors.Is(err, ds.ErrNoSuchEntity) {
			return entity.Record{}, connerrors.NewNotFoundError(key.Kind, key.ID)
		}
		return entity.Record{}, fmt.Errorf("get %s/%d: %w", key.Kind, key.ID, err)
	}
	return entity.Record{Key: key, Props: r.props}, nil
}

// GetMulti fetches a batch of records, skipping keys with no stored
// record.
func (s *Store) GetMulti(ctx context.Context, ks []keys.Key) ([]entity.Record, error) {
	if len(ks) == 0 {
		return nil, nil
	}

	nks := make([]*ds.Key, len(ks))
	for i, k := range ks {
		nks[i] = s.nativeKey(k)
	}

	recs := make([]record, len(ks))
	err := s.client.GetMulti(ctx, nks, recs)

	var merr ds.MultiError
	switch {
	case err == nil:
		merr = make(ds.MultiError, len(ks))
	case errors.As(err, &merr):
		// Per-key errors handled below.
	default:
		return nil, fmt.Errorf("get multi: %w", err)
	}

	out := make([]entity.Record, 0, len(ks))
	for i, k := range ks {
		if merr[i] != nil {
			if errors.Is(merr[i], ds.ErrNoSuchEntity) {
				continue
			}
			return nil, fmt.Errorf("get multi %s/%d: %w", k.Kind, k.ID, merr[i])
		}
		out = append(out, entity.Record{Key: k, Props: recs[i].props})
	}
	return out, nil
}

// Put writes one record and returns the key the service committed,
// with the assigned identifier when the input key was incomplete.
func (s *Store) Put(ctx context.Context, key keys.Key, props entity.Properties) (keys.Key, error) {
	nk, err := s.client.Put(ctx, s.nativeKey(key), &record{props: props})
	if err != nil {
		return keys.Key{}, fmt.Errorf("put %s: %w", key.Kind, err)
	}
	return fromNativeKey(nk), nil
}

// PutMulti writes a batch of records in a single commit.
func (s *Store) PutMulti(ctx context.Context, ks []keys.Key, props []entity.Properties) ([]keys.Key, error) {
	if len(ks) != len(props) {
		return nil, fmt.Errorf("put multi: %d keys for %d records", len(ks), len(props))
	}
	if len(ks) == 0 {
		return nil, nil
	}

	nks := make([]*ds.Key, len(ks))
	recs := make([]record, len(ks))
	for i := range ks {
		nks[i] = s.nativeKey(ks[i])
		recs[i] = record{props: props[i]}
	}

	committed, err := s.client.PutMulti(ctx, nks, recs)
	if err != nil {
		return nil, fmt.Errorf("put multi: %w", err)
	}

	out := make([]keys.Key, len(committed))
	for i, nk := range committed {
		out[i] = fromNativeKey(nk)
	}
	return out, nil
}

// Delete removes one record. The commit reports one mutation result
// whether or not the key existed.
func (s *Store) Delete(ctx context.Context, key keys.Key) (int, error) {
	if err := s.client.Delete(ctx, s.nativeKey(key)); err != nil {
		return 0, fmt.Errorf("delete %s/%d: %w", key.Kind, key.ID, err)
	}
	return 1, nil
}

// DeleteMulti removes a batch of records in a single commit.
func (s *Store) DeleteMulti(ctx context.Context, ks []keys.Key) (int, error) {
	if len(ks) == 0 {
		return 0, nil
	}

	nks := make([]*ds.Key, len(ks))
	for i, k := range ks {
		nks[i] = s.nativeKey(k)
	}
	if err := s.client.DeleteMulti(ctx, nks); err != nil {
		return 0, fmt.Errorf("delete multi: %w", err)
	}
	return len(ks), nil
}

// Run executes a compiled query plan.
func (s *Store) Run(ctx context.Context, plan *query.Plan) ([]entity.Record, error) {
	if plan == nil {
		return nil, nil
	}

	q := ds.NewQuery(plan.Root.Kind)
	if s.namespace != "" {
		q = q.Namespace(s.namespace)
	}
	for _, p := range plan.Predicates {
		q = q.FilterField(p.Field, string(p.Op), p.Value)
	}
	for _, o := range plan.Orders {
		field := o.Field
		if o.Descending {
			field = "-" + field
		}
		q = q.Order(field)
	}
	if plan.Limit > 0 {
		q = q.Limit(plan.Limit)
	}
	if plan.Offset > 0 {
		q = q.Offset(plan.Offset)
	}
	if len(plan.Projection) > 0 {
		q = q.Project(plan.Projection...)
	}

	var out []entity.Record
	it := s.client.Run(ctx, q)
	for {
		var r record
		nk, err := it.Next(&r)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("run query on %s: %w", plan.Root.Kind, err)
		}
		out = append(out, entity.Record{Key: fromNativeKey(nk), Props: r.props})
	}
	return out, nil
}

// Close releases the underlying gRPC connection.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) nativeKey(k keys.Key) *ds.Key {
	var nk *ds.Key
	if k.Incomplete() {
		nk = ds.IncompleteKey(k.Kind, nil)
	} else {
		nk = ds.IDKey(k.Kind, k.ID, nil)
	}
	nk.Namespace = s.namespace
	return nk
}

func fromNativeKey(nk *ds.Key) keys.Key {
	return keys.Key{Kind: nk.Kind, ID: nk.ID}
}
