// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cafe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/catalog"
	"github.com/danielhkuo/raypark-console/kv"
	"github.com/danielhkuo/raypark-console/models"
	"github.com/danielhkuo/raypark-console/recordstore"
)

const (
	EquipmentKey = "equipment-records"

	autoFillMaintenanceNote = "Routine maintenance completed"
)

// DaysSince counts whole calendar days from date to now. ok is false for
// an empty or unparseable date.
func DaysSince(date string, now time.Time) (days int, ok bool) {
	if date == "" {
		return 0, false
	}
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return 0, false
	}
	today, _ := time.Parse(models.DateLayout, Today(now))
	return int(today.Sub(d).Hours() / 24), true
}

// MaintenanceStatus buckets days since the last service.
func MaintenanceStatus(days int, ok bool) string {
	switch {
	case !ok:
		return models.MaintenanceNever
	case days == 0:
		return models.MaintenanceToday
	case days <= 7:
		return models.MaintenanceRecent
	case days <= 14:
		return models.MaintenanceDue
	}
	return models.MaintenanceOverdue
}

// EquipmentLog tracks the last maintenance date of each catalog item.
type EquipmentLog struct {
	mu    sync.Mutex
	store *recordstore.Store[models.EquipmentRecord]
	cat   catalog.Catalog
	now   func() time.Time
}

func NewEquipmentLog(store kv.Store, cat catalog.Catalog, opts Options) *EquipmentLog {
	opts = opts.withDefaults()
	return &EquipmentLog{
		store: recordstore.New[models.EquipmentRecord](store, EquipmentKey),
		cat:   cat,
		now:   opts.Now,
	}
}

func (l *EquipmentLog) defaults() []models.EquipmentRecord {
	records := make([]models.EquipmentRecord, len(l.cat.Equipment))
	for i, name := range l.cat.Equipment {
		records[i] = models.EquipmentRecord{ID: fmt.Sprintf("equip-%d", i), Name: name}
	}
	return records
}

func (l *EquipmentLog) row(r models.EquipmentRecord) models.EquipmentRow {
	now := l.now()
	days, ok := DaysSince(r.LastMaintenance, now)
	out := models.EquipmentRow{EquipmentRecord: r, Status: MaintenanceStatus(days, ok)}
	if ok {
		out.DaysSince = &days
		d, _ := time.Parse(models.DateLayout, r.LastMaintenance)
		today, _ := time.Parse(models.DateLayout, Today(now))
		out.Since = humanize.RelTime(d, today, "ago", "from now")
	}
	return out
}

func (l *EquipmentLog) list(records []models.EquipmentRecord) models.EquipmentList {
	out := models.EquipmentList{Records: make([]models.EquipmentRow, 0, len(records))}
	for _, r := range records {
		out.Records = append(out.Records, l.row(r))
	}
	return out
}

// List returns every equipment record, seeded from the catalog on first use.
func (l *EquipmentLog) List(ctx context.Context, s *auth.Session) (models.EquipmentList, error) {
	if err := s.Require(); err != nil {
		return models.EquipmentList{}, err
	}
	records, err := l.store.LoadOrInit(ctx, l.defaults)
	if err != nil {
		return models.EquipmentList{}, err
	}
	return l.list(records), nil
}

// Update patches the maintenance date and/or notes of one record.
func (l *EquipmentLog) Update(ctx context.Context, s *auth.Session, id string, req models.EquipmentUpdateRequest) (models.EquipmentRow, error) {
	if err := s.Require(); err != nil {
		return models.EquipmentRow{}, err
	}
	if req.LastMaintenance != nil && *req.LastMaintenance != "" && !ValidDate(*req.LastMaintenance) {
		return models.EquipmentRow{}, ErrInvalidDate
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.store.LoadOrInit(ctx, l.defaults)
	if err != nil {
		return models.EquipmentRow{}, err
	}
	if _, ok := recordstore.Find(records, id); !ok {
		return models.EquipmentRow{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	records = recordstore.Upsert(records, id, func(r models.EquipmentRecord) models.EquipmentRecord {
		if req.LastMaintenance != nil {
			r.LastMaintenance = *req.LastMaintenance
		}
		if req.Notes != nil {
			r.Notes = *req.Notes
		}
		return r
	})
	if err := l.store.Save(ctx, records); err != nil {
		return models.EquipmentRow{}, err
	}

	r, _ := recordstore.Find(records, id)
	return l.row(r), nil
}

// AutoFill marks every record without a date as maintained today.
func (l *EquipmentLog) AutoFill(ctx context.Context, s *auth.Session) (models.EquipmentList, error) {
	if err := s.Require(); err != nil {
		return models.EquipmentList{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.store.LoadOrInit(ctx, l.defaults)
	if err != nil {
		return models.EquipmentList{}, err
	}
	today := Today(l.now())
	for _, r := range records {
		records = recordstore.Upsert(records, r.ID, func(r models.EquipmentRecord) models.EquipmentRecord {
			if r.LastMaintenance == "" {
				r.LastMaintenance = today
			}
			if r.Notes == "" {
				r.Notes = autoFillMaintenanceNote
			}
			return r
		})
	}
	if err := l.store.Save(ctx, records); err != nil {
		return models.EquipmentList{}, err
	}
	return l.list(records), nil
}
