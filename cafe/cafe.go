// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cafe

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/danielhkuo/raypark-console/catalog"
	"github.com/danielhkuo/raypark-console/kv"
	"github.com/danielhkuo/raypark-console/models"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrUnknownKind      = errors.New("unknown checklist kind")
	ErrUnknownUnit      = errors.New("unknown storage unit")
	ErrInvalidCondition = errors.New("condition must be one of: Good, Acceptable, Rejected")
)

// Options tune time and randomness; zero values use the wall clock and a
// randomly seeded generator. A *rand.Rand is not safe for concurrent use,
// so NewServices hands each service its own generator seeded from Rand.
type Options struct {
	Now  func() time.Time
	Rand *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// split returns a copy of o with a generator of its own, seeded from o.Rand.
func (o Options) split() Options {
	o.Rand = rand.New(rand.NewPCG(o.Rand.Uint64(), o.Rand.Uint64()))
	return o
}

// Services bundles every page service over one store.
type Services struct {
	Temperature *TemperatureLog
	Checklists  *Checklists
	Equipment   *EquipmentLog
	Deliveries  *DeliveryLog
	Dashboard   *Dashboard

	now func() time.Time
}

func NewServices(store kv.Store, cat catalog.Catalog, opts Options) *Services {
	opts = opts.withDefaults()
	s := &Services{
		Temperature: NewTemperatureLog(store, cat, opts.split()),
		Checklists:  NewChecklists(store, cat, opts),
		Equipment:   NewEquipmentLog(store, cat, opts),
		Deliveries:  NewDeliveryLog(store, opts.split()),
		now:         opts.Now,
	}
	s.Dashboard = &Dashboard{services: s, now: opts.Now}
	return s
}

// Today is the current date on the services' clock.
func (s *Services) Today() string {
	return Today(s.now())
}

// Today formats t as an ISO calendar date in t's location.
func Today(t time.Time) string {
	return t.Format(models.DateLayout)
}

// ValidDate reports whether s is a real YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}
