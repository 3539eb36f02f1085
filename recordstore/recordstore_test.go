// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package recordstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/raypark-console/kv"
	"github.com/danielhkuo/raypark-console/models"
)

type failingKV struct{}

var errBackend = errors.New("backend down")

func (failingKV) Get(context.Context, string) (string, bool, error) { return "", false, errBackend }
func (failingKV) Set(context.Context, string, string) error         { return errBackend }
func (failingKV) Delete(context.Context, string) error              { return errBackend }

func sampleDeliveries() []models.DeliveryRecord {
	return []models.DeliveryRecord{
		{ID: "delivery-a", Date: "2024-06-01", Supplier: "Fresh Foods Ltd", Condition: models.ConditionGood},
		{ID: "delivery-b", Date: "2024-06-01", Supplier: "Dairy Delights", Condition: models.ConditionAcceptable},
		{ID: "delivery-c", Date: "2024-06-02", Supplier: "Bakery Supplies", Condition: models.ConditionRejected},
	}
}

func TestLoad_AbsentIsEmpty(t *testing.T) {
	s := New[models.DeliveryRecord](kv.NewMemoryStore(), "delivery-records")

	coll, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, coll)
	assert.Empty(t, coll)

	snap, err := s.Inspect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Absent, snap.State)
}

func TestLoad_CorruptIsEmpty(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{"not json", "{{{"},
		{"wrong shape", `{"id":"x"}`},
		{"truncated", `[{"id":"delivery-a"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := kv.NewMemoryStore()
			require.NoError(t, store.Set(ctx, "delivery-records", tc.raw))
			s := New[models.DeliveryRecord](store, "delivery-records")

			coll, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, coll)

			snap, err := s.Inspect(ctx)
			require.NoError(t, err)
			assert.Equal(t, Corrupt, snap.State)
			assert.Error(t, snap.Err)
		})
	}
}

func TestLoad_BackendErrorSurfaces(t *testing.T) {
	s := New[models.DeliveryRecord](failingKV{}, "delivery-records")

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, errBackend)

	err = s.Save(context.Background(), sampleDeliveries())
	assert.ErrorIs(t, err, errBackend)
}

func TestLoadOrInit_DoesNotPersist(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	s := New[models.EquipmentRecord](store, "equipment-records")

	calls := 0
	coll, err := s.LoadOrInit(ctx, func() []models.EquipmentRecord {
		calls++
		return []models.EquipmentRecord{{ID: "equip-0", Name: "Grinder"}}
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Len(t, coll, 1)

	_, ok, _ := store.Get(ctx, "equipment-records")
	assert.False(t, ok, "defaults must not be written until the first save")
}

func TestLoadOrInit_UsesStoredData(t *testing.T) {
	ctx := context.Background()
	s := New[models.EquipmentRecord](kv.NewMemoryStore(), "equipment-records")
	require.NoError(t, s.Save(ctx, []models.EquipmentRecord{{ID: "equip-5", Name: "Oven", Notes: "descaled"}}))

	coll, err := s.LoadOrInit(ctx, func() []models.EquipmentRecord {
		t.Error("defaults should not be used when data exists")
		return nil
	})
	require.NoError(t, err)
	require.Len(t, coll, 1)
	assert.Equal(t, "descaled", coll[0].Notes)
}

func TestSave_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	s := New[models.DeliveryRecord](store, "delivery-records")
	require.NoError(t, s.Save(ctx, sampleDeliveries()))
	first, _, _ := store.Get(ctx, "delivery-records")

	coll, err := s.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, coll))
	second, _, _ := store.Get(ctx, "delivery-records")

	assert.Equal(t, first, second)
}

func TestSave_NilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	s := New[models.DeliveryRecord](store, "delivery-records")

	require.NoError(t, s.Save(ctx, nil))
	raw, ok, _ := store.Get(ctx, "delivery-records")
	assert.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestUpsert_OnlyTargetChanges(t *testing.T) {
	ctx := context.Background()
	s := New[models.DeliveryRecord](kv.NewMemoryStore(), "delivery-records")
	orig := sampleDeliveries()
	require.NoError(t, s.Save(ctx, orig))

	coll, err := s.Load(ctx)
	require.NoError(t, err)
	updated := Upsert(coll, "delivery-b", func(d models.DeliveryRecord) models.DeliveryRecord {
		d.Temperature = "4.2"
		return d
	})
	require.NoError(t, s.Save(ctx, updated))

	reloaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, len(orig))
	for i := range orig {
		if orig[i].ID == "delivery-b" {
			want := orig[i]
			want.Temperature = "4.2"
			assert.Equal(t, want, reloaded[i])
			continue
		}
		assert.Equal(t, orig[i], reloaded[i])
	}
}

func TestUpsert_UnknownIDIsNoop(t *testing.T) {
	orig := sampleDeliveries()
	out := Upsert(orig, "delivery-zzz", func(d models.DeliveryRecord) models.DeliveryRecord {
		t.Error("patch should not run for an unknown id")
		return d
	})
	assert.Equal(t, orig, out)
}

func TestUpsert_DoesNotMutateInput(t *testing.T) {
	orig := sampleDeliveries()
	_ = Upsert(orig, "delivery-a", func(d models.DeliveryRecord) models.DeliveryRecord {
		d.Supplier = "changed"
		return d
	})
	assert.Equal(t, "Fresh Foods Ltd", orig[0].Supplier)
}

func TestRemove_DoubleDeleteIsNoop(t *testing.T) {
	orig := sampleDeliveries()

	once := Remove(orig, "delivery-b")
	require.Len(t, once, 2)
	_, found := Find(once, "delivery-b")
	assert.False(t, found)

	twice := Remove(once, "delivery-b")
	assert.Equal(t, once, twice)
	assert.Len(t, orig, 3, "input must not be modified")
}

func TestFind(t *testing.T) {
	rec, ok := Find(sampleDeliveries(), "delivery-c")
	assert.True(t, ok)
	assert.Equal(t, "Bakery Supplies", rec.Supplier)

	_, ok = Find(sampleDeliveries(), "missing")
	assert.False(t, ok)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "absent", Absent.String())
	assert.Equal(t, "corrupt", Corrupt.String())
	assert.Equal(t, "present", Present.String())
	assert.Equal(t, fmt.Sprintf("State(%d)", 7), State(7).String())
}
