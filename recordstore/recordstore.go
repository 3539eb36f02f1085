// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/raypark-console/kv"
	"github.com/danielhkuo/raypark-console/metrics"
)

// Record is anything stored in a collection. IDs are unique per collection.
type Record interface {
	RecordID() string
}

// State describes what a read found under a key.
type State int

const (
	Absent State = iota
	Corrupt
	Present
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Corrupt:
		return "corrupt"
	case Present:
		return "present"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Snapshot is the result of Inspect. Value is the zero value unless State
// is Present; Err holds the decode error when State is Corrupt.
type Snapshot[V any] struct {
	State State
	Value V
	Err   error
}

// inspect reads and decodes key. Only backend failures are returned as err.
func inspect[V any](ctx context.Context, store kv.Store, key string) (Snapshot[V], error) {
	var snap Snapshot[V]
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return snap, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		snap.State = Absent
		metrics.RecordLoads.WithLabelValues(key, Absent.String()).Inc()
		return snap, nil
	}
	var v V
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.Warn("stored collection is unreadable, treating as empty", "key", key, "error", err)
		snap.State = Corrupt
		snap.Err = err
		metrics.RecordLoads.WithLabelValues(key, Corrupt.String()).Inc()
		return snap, nil
	}
	snap.State = Present
	snap.Value = v
	metrics.RecordLoads.WithLabelValues(key, Present.String()).Inc()
	return snap, nil
}

func write(ctx context.Context, store kv.Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	metrics.RecordSaves.WithLabelValues(key).Inc()
	return nil
}

// Store is a single named collection saved as one JSON array.
type Store[T Record] struct {
	kv  kv.Store
	key string
}

func New[T Record](store kv.Store, key string) *Store[T] {
	return &Store[T]{kv: store, key: key}
}

func (s *Store[T]) Key() string { return s.key }

// Inspect reports whether the collection is absent, corrupt or present.
func (s *Store[T]) Inspect(ctx context.Context) (Snapshot[[]T], error) {
	return inspect[[]T](ctx, s.kv, s.key)
}

// Load never fails on bad data: absent and corrupt both yield an empty
// collection. The returned slice is never nil.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	snap, err := s.Inspect(ctx)
	if err != nil {
		return nil, err
	}
	if snap.Value == nil {
		return []T{}, nil
	}
	return snap.Value, nil
}

// LoadOrInit returns defaults() when the stored collection is empty.
// Nothing is written until the caller saves.
func (s *Store[T]) LoadOrInit(ctx context.Context, defaults func() []T) ([]T, error) {
	coll, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(coll) == 0 {
		return defaults(), nil
	}
	return coll, nil
}

// Save overwrites the whole collection (last write wins).
func (s *Store[T]) Save(ctx context.Context, coll []T) error {
	if coll == nil {
		coll = []T{}
	}
	return write(ctx, s.kv, s.key, coll)
}

// Upsert returns a copy of coll with the record matching id replaced by
// patch(record). An unknown id returns an unchanged copy.
func Upsert[T Record](coll []T, id string, patch func(T) T) []T {
	out := make([]T, len(coll))
	for i, r := range coll {
		if r.RecordID() == id {
			out[i] = patch(r)
			continue
		}
		out[i] = r
	}
	return out
}

// Remove returns a copy of coll without the record matching id.
func Remove[T Record](coll []T, id string) []T {
	out := make([]T, 0, len(coll))
	for _, r := range coll {
		if r.RecordID() != id {
			out = append(out, r)
		}
	}
	return out
}

func Find[T Record](coll []T, id string) (T, bool) {
	for _, r := range coll {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}
