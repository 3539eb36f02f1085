// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package recordstore

import (
	"context"

	"golang.org/x/exp/slices"

	"github.com/danielhkuo/raypark-console/kv"
)

// DateStore keeps one collection per calendar date under a single key,
// stored as a JSON object of date -> array.
//
// Every SaveForDate reads and rewrites the whole object, so the cost of a
// one-day edit grows with the number of days ever recorded.
type DateStore[T Record] struct {
	kv  kv.Store
	key string
}

func NewDateStore[T Record](store kv.Store, key string) *DateStore[T] {
	return &DateStore[T]{kv: store, key: key}
}

func (s *DateStore[T]) Key() string { return s.key }

func (s *DateStore[T]) Inspect(ctx context.Context) (Snapshot[map[string][]T], error) {
	return inspect[map[string][]T](ctx, s.kv, s.key)
}

// LoadAll returns the outer mapping; absent or corrupt data is an empty map.
func (s *DateStore[T]) LoadAll(ctx context.Context) (map[string][]T, error) {
	snap, err := s.Inspect(ctx)
	if err != nil {
		return nil, err
	}
	if snap.Value == nil {
		return map[string][]T{}, nil
	}
	return snap.Value, nil
}

// LoadForDate returns found=false when nothing was saved for date.
func (s *DateStore[T]) LoadForDate(ctx context.Context, date string) ([]T, bool, error) {
	all, err := s.LoadAll(ctx)
	if err != nil {
		return nil, false, err
	}
	coll, ok := all[date]
	if !ok {
		return nil, false, nil
	}
	if coll == nil {
		coll = []T{}
	}
	return coll, true, nil
}

// LoadOrInitForDate falls back to defaults() without persisting it.
func (s *DateStore[T]) LoadOrInitForDate(ctx context.Context, date string, defaults func() []T) ([]T, error) {
	coll, ok, err := s.LoadForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if !ok {
		return defaults(), nil
	}
	return coll, nil
}

// SaveForDate replaces the collection for date and leaves other dates as
// they were.
func (s *DateStore[T]) SaveForDate(ctx context.Context, date string, coll []T) error {
	all, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}
	if coll == nil {
		coll = []T{}
	}
	all[date] = coll
	return write(ctx, s.kv, s.key, all)
}

// Dates lists every recorded date in ascending order.
func (s *DateStore[T]) Dates(ctx context.Context) ([]string, error) {
	all, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(all))
	for d := range all {
		dates = append(dates, d)
	}
	slices.Sort(dates)
	return dates, nil
}
