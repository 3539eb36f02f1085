// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cafe

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/catalog"
	"github.com/danielhkuo/raypark-console/kv"
	"github.com/danielhkuo/raypark-console/models"
	"github.com/danielhkuo/raypark-console/recordstore"
)

const TemperatureKey = "temperature-readings"

// ReadingStatus compares a recorded value against a unit's maximum.
// Empty values have no status; anything that does not parse fails.
func ReadingStatus(value string, maxTemp float64) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return models.StatusNone
	}
	num, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(num) {
		return models.StatusFail
	}
	if num <= maxTemp {
		return models.StatusPass
	}
	return models.StatusFail
}

// TemperatureLog keeps one AM/PM reading per unit per day in a flat list.
type TemperatureLog struct {
	mu    sync.Mutex
	store *recordstore.Store[models.TemperatureReading]
	cat   catalog.Catalog
	rnd   *rand.Rand
}

func NewTemperatureLog(store kv.Store, cat catalog.Catalog, opts Options) *TemperatureLog {
	opts = opts.withDefaults()
	return &TemperatureLog{
		store: recordstore.New[models.TemperatureReading](store, TemperatureKey),
		cat:   cat,
		rnd:   opts.Rand,
	}
}

// Day returns one row per catalog unit for date. Units without a reading
// get an empty row that is not saved.
func (l *TemperatureLog) Day(ctx context.Context, s *auth.Session, date string) (models.TemperatureDay, error) {
	if err := s.Require(); err != nil {
		return models.TemperatureDay{}, err
	}
	if !ValidDate(date) {
		return models.TemperatureDay{}, ErrInvalidDate
	}

	readings, err := l.store.Load(ctx)
	if err != nil {
		return models.TemperatureDay{}, err
	}
	return l.day(readings, date), nil
}

func (l *TemperatureLog) day(readings []models.TemperatureReading, date string) models.TemperatureDay {
	day := models.TemperatureDay{Date: date, Rows: make([]models.TemperatureRow, 0, len(l.cat.Units))}
	for _, u := range l.cat.Units {
		r, ok := recordstore.Find(readings, models.ReadingID(date, u.Name))
		if !ok {
			r = models.TemperatureReading{Date: date, Unit: u.Name}
		}
		day.Rows = append(day.Rows, row(r, u))
	}
	return day
}

func row(r models.TemperatureReading, u models.UnitSpec) models.TemperatureRow {
	return models.TemperatureRow{
		TemperatureReading: r,
		MaxTemp:            u.MaxTemp,
		Kind:               u.Kind,
		AMStatus:           ReadingStatus(r.AM, u.MaxTemp),
		PMStatus:           ReadingStatus(r.PM, u.MaxTemp),
	}
}

// Record sets the AM and/or PM value for one unit on date, creating the
// reading on first use. Nil values are left as they were.
func (l *TemperatureLog) Record(ctx context.Context, s *auth.Session, date, unit string, am, pm *string) (models.TemperatureRow, error) {
	if err := s.Require(); err != nil {
		return models.TemperatureRow{}, err
	}
	if !ValidDate(date) {
		return models.TemperatureRow{}, ErrInvalidDate
	}
	spec, ok := l.cat.Unit(unit)
	if !ok {
		return models.TemperatureRow{}, fmt.Errorf("%w: %s", ErrUnknownUnit, unit)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	readings, err := l.store.Load(ctx)
	if err != nil {
		return models.TemperatureRow{}, err
	}
	id := models.ReadingID(date, unit)
	if _, found := recordstore.Find(readings, id); !found {
		readings = append(readings, models.TemperatureReading{Date: date, Unit: unit})
	}
	readings = recordstore.Upsert(readings, id, func(r models.TemperatureReading) models.TemperatureReading {
		if am != nil {
			r.AM = *am
		}
		if pm != nil {
			r.PM = *pm
		}
		return r
	})
	if err := l.store.Save(ctx, readings); err != nil {
		return models.TemperatureRow{}, err
	}

	r, _ := recordstore.Find(readings, id)
	return row(r, spec), nil
}

// AutoFill fills every empty reading for date with a plausible safe value.
// Readings already entered are kept.
func (l *TemperatureLog) AutoFill(ctx context.Context, s *auth.Session, date string) (models.TemperatureDay, error) {
	if err := s.Require(); err != nil {
		return models.TemperatureDay{}, err
	}
	if !ValidDate(date) {
		return models.TemperatureDay{}, ErrInvalidDate
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	readings, err := l.store.Load(ctx)
	if err != nil {
		return models.TemperatureDay{}, err
	}
	for _, u := range l.cat.Units {
		id := models.ReadingID(date, u.Name)
		if _, found := recordstore.Find(readings, id); !found {
			readings = append(readings, models.TemperatureReading{Date: date, Unit: u.Name})
		}
		readings = recordstore.Upsert(readings, id, func(r models.TemperatureReading) models.TemperatureReading {
			if r.AM == "" {
				r.AM = l.sample(u.Kind, "am")
			}
			if r.PM == "" {
				r.PM = l.sample(u.Kind, "pm")
			}
			return r
		})
	}
	if err := l.store.Save(ctx, readings); err != nil {
		return models.TemperatureDay{}, err
	}
	return l.day(readings, date), nil
}

// Fridges land in 4-7°C and freezers in -19.5 to -18°C, always passing.
func (l *TemperatureLog) sample(kind, period string) string {
	var base, spread float64
	if kind == models.KindFridge {
		base, spread = 4, 2
		if period == "pm" {
			base = 5
		}
	} else {
		base, spread = -19.5, 1.5
		if period == "pm" {
			base, spread = -19, 1
		}
	}
	return strconv.FormatFloat(base+l.rnd.Float64()*spread, 'f', 1, 64)
}
