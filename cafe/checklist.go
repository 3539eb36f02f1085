// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cafe

import (
	"context"
	"fmt"
	"sync"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/catalog"
	"github.com/danielhkuo/raypark-console/kv"
	"github.com/danielhkuo/raypark-console/models"
	"github.com/danielhkuo/raypark-console/recordstore"
)

// ChecklistKey is the store key for a checklist kind.
func ChecklistKey(kind string) string { return "checklist:" + kind }

// ComputeProgress derives completion from the items; it is never stored.
func ComputeProgress(items []models.ChecklistItem) models.Progress {
	p := models.Progress{Total: len(items)}
	for _, it := range items {
		if it.Checked {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = float64(p.Completed) / float64(p.Total) * 100
		p.Complete = p.Completed == p.Total
	}
	return p
}

// Checklists serves the opening and closing checklists, one list per day.
type Checklists struct {
	mu     sync.Mutex
	cat    catalog.Catalog
	stores map[string]*recordstore.DateStore[models.ChecklistItem]
}

func NewChecklists(store kv.Store, cat catalog.Catalog, _ Options) *Checklists {
	c := &Checklists{cat: cat, stores: make(map[string]*recordstore.DateStore[models.ChecklistItem])}
	for _, kind := range []string{models.ChecklistOpening, models.ChecklistClosing} {
		c.stores[kind] = recordstore.NewDateStore[models.ChecklistItem](store, ChecklistKey(kind))
	}
	return c
}

func (c *Checklists) template(kind string) func() []models.ChecklistItem {
	tasks, _ := c.cat.Tasks(kind)
	return func() []models.ChecklistItem {
		items := make([]models.ChecklistItem, len(tasks))
		for i, task := range tasks {
			items[i] = models.ChecklistItem{ID: fmt.Sprintf("task-%d", i), Text: task}
		}
		return items
	}
}

func (c *Checklists) resolve(s *auth.Session, kind string) (*recordstore.DateStore[models.ChecklistItem], error) {
	if err := s.Require(); err != nil {
		return nil, err
	}
	store, ok := c.stores[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return store, nil
}

func (c *Checklists) resolveDay(s *auth.Session, kind, date string) (*recordstore.DateStore[models.ChecklistItem], error) {
	store, err := c.resolve(s, kind)
	if err != nil {
		return nil, err
	}
	if !ValidDate(date) {
		return nil, ErrInvalidDate
	}
	return store, nil
}

func dayView(kind, date string, items []models.ChecklistItem) models.ChecklistDay {
	return models.ChecklistDay{Kind: kind, Date: date, Items: items, Progress: ComputeProgress(items)}
}

// Day returns the checklist for date, seeded from the template if the day
// has not been touched yet. Seeding is not saved until the first change.
func (c *Checklists) Day(ctx context.Context, s *auth.Session, kind, date string) (models.ChecklistDay, error) {
	store, err := c.resolveDay(s, kind, date)
	if err != nil {
		return models.ChecklistDay{}, err
	}
	items, err := store.LoadOrInitForDate(ctx, date, c.template(kind))
	if err != nil {
		return models.ChecklistDay{}, err
	}
	return dayView(kind, date, items), nil
}

// Toggle flips one item and saves the day.
func (c *Checklists) Toggle(ctx context.Context, s *auth.Session, kind, date, id string) (models.ChecklistDay, error) {
	return c.mutate(ctx, s, kind, date, func(items []models.ChecklistItem) ([]models.ChecklistItem, error) {
		if _, ok := recordstore.Find(items, id); !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return recordstore.Upsert(items, id, func(it models.ChecklistItem) models.ChecklistItem {
			it.Checked = !it.Checked
			return it
		}), nil
	})
}

// CheckAll marks every item of the day as done.
func (c *Checklists) CheckAll(ctx context.Context, s *auth.Session, kind, date string) (models.ChecklistDay, error) {
	return c.mutate(ctx, s, kind, date, func(items []models.ChecklistItem) ([]models.ChecklistItem, error) {
		for _, it := range items {
			items = recordstore.Upsert(items, it.ID, func(it models.ChecklistItem) models.ChecklistItem {
				it.Checked = true
				return it
			})
		}
		return items, nil
	})
}

func (c *Checklists) mutate(ctx context.Context, s *auth.Session, kind, date string, fn func([]models.ChecklistItem) ([]models.ChecklistItem, error)) (models.ChecklistDay, error) {
	store, err := c.resolveDay(s, kind, date)
	if err != nil {
		return models.ChecklistDay{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := store.LoadOrInitForDate(ctx, date, c.template(kind))
	if err != nil {
		return models.ChecklistDay{}, err
	}
	items, err = fn(items)
	if err != nil {
		return models.ChecklistDay{}, err
	}
	if err := store.SaveForDate(ctx, date, items); err != nil {
		return models.ChecklistDay{}, err
	}
	return dayView(kind, date, items), nil
}

// History lists the dates that have a saved checklist of this kind.
func (c *Checklists) History(ctx context.Context, s *auth.Session, kind string) (models.ChecklistHistory, error) {
	store, err := c.resolve(s, kind)
	if err != nil {
		return models.ChecklistHistory{}, err
	}
	dates, err := store.Dates(ctx)
	if err != nil {
		return models.ChecklistHistory{}, err
	}
	return models.ChecklistHistory{Kind: kind, Dates: dates}, nil
}
