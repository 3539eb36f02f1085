// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package recordstore provides load/modify/save over collections kept as JSON
documents in a kv.Store.

# Collections

A Store is one named collection saved as a JSON array:

	deliveries := recordstore.New[models.DeliveryRecord](store, "delivery-records")
	coll, err := deliveries.Load(ctx)
	coll = recordstore.Remove(coll, id)
	err = deliveries.Save(ctx, coll)

Upsert and Remove are pure functions over slices; nothing touches the
store until Save, which rewrites the whole collection.

# Date Partitioned Collections

A DateStore keeps one collection per ISO date inside a single JSON object:

	checklist := recordstore.NewDateStore[models.ChecklistItem](store, "checklist:closing")
	items, err := checklist.LoadOrInitForDate(ctx, "2024-06-01", template)
	err = checklist.SaveForDate(ctx, "2024-06-01", items)

SaveForDate rewrites every date, so its cost grows with history length.

# Failure Semantics

Load, LoadAll and the date variants treat a missing key and an unreadable
value the same way: an empty collection. Errors are returned only when
the backend itself fails. Callers that need to tell the two apart use
Inspect, which reports Absent, Corrupt or Present.
*/
package recordstore
