// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cafe

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/kv"
	"github.com/danielhkuo/raypark-console/models"
	"github.com/danielhkuo/raypark-console/recordstore"
)

const DeliveryKey = "delivery-records"

var (
	sampleSuppliers = []string{"Fresh Foods Ltd", "Dairy Delights", "Coffee Beans Co", "Bakery Supplies"}
	sampleItems     = []string{"Fresh milk, eggs, butter", "Coffee beans, tea", "Bread, pastries", "Vegetables, fruits"}
)

const sampleDeliveryCount = 3

// DeliveryLog is a free-form list of deliveries, newest first.
type DeliveryLog struct {
	mu    sync.Mutex
	store *recordstore.Store[models.DeliveryRecord]
	now   func() time.Time
	rnd   *rand.Rand
}

func NewDeliveryLog(store kv.Store, opts Options) *DeliveryLog {
	opts = opts.withDefaults()
	return &DeliveryLog{
		store: recordstore.New[models.DeliveryRecord](store, DeliveryKey),
		now:   opts.Now,
		rnd:   opts.Rand,
	}
}

func newDeliveryID() string { return "delivery-" + uuid.NewString() }

func (l *DeliveryLog) List(ctx context.Context, s *auth.Session) (models.DeliveryList, error) {
	if err := s.Require(); err != nil {
		return models.DeliveryList{}, err
	}
	records, err := l.store.Load(ctx)
	if err != nil {
		return models.DeliveryList{}, err
	}
	return models.DeliveryList{Records: records}, nil
}

// Add creates a blank delivery dated today at the top of the list.
func (l *DeliveryLog) Add(ctx context.Context, s *auth.Session) (models.DeliveryRecord, error) {
	if err := s.Require(); err != nil {
		return models.DeliveryRecord{}, err
	}
	rec := models.DeliveryRecord{
		ID:        newDeliveryID(),
		Date:      Today(l.now()),
		Condition: models.ConditionGood,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.store.Load(ctx)
	if err != nil {
		return models.DeliveryRecord{}, err
	}
	if err := l.store.Save(ctx, append([]models.DeliveryRecord{rec}, records...)); err != nil {
		return models.DeliveryRecord{}, err
	}
	return rec, nil
}

// Update patches the non-nil fields of one delivery.
func (l *DeliveryLog) Update(ctx context.Context, s *auth.Session, id string, req models.DeliveryUpdateRequest) (models.DeliveryRecord, error) {
	if err := s.Require(); err != nil {
		return models.DeliveryRecord{}, err
	}
	if req.Date != nil && !ValidDate(*req.Date) {
		return models.DeliveryRecord{}, ErrInvalidDate
	}
	var cond models.Condition
	if req.Condition != nil {
		c, ok := models.ParseCondition(*req.Condition)
		if !ok {
			return models.DeliveryRecord{}, ErrInvalidCondition
		}
		cond = c
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.store.Load(ctx)
	if err != nil {
		return models.DeliveryRecord{}, err
	}
	if _, ok := recordstore.Find(records, id); !ok {
		return models.DeliveryRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	records = recordstore.Upsert(records, id, func(r models.DeliveryRecord) models.DeliveryRecord {
		if req.Date != nil {
			r.Date = *req.Date
		}
		if req.Supplier != nil {
			r.Supplier = *req.Supplier
		}
		if req.Items != nil {
			r.Items = *req.Items
		}
		if req.Temperature != nil {
			r.Temperature = *req.Temperature
		}
		if req.Condition != nil {
			r.Condition = cond
		}
		return r
	})
	if err := l.store.Save(ctx, records); err != nil {
		return models.DeliveryRecord{}, err
	}

	r, _ := recordstore.Find(records, id)
	return r, nil
}

// Delete removes a delivery. Deleting an unknown id succeeds.
func (l *DeliveryLog) Delete(ctx context.Context, s *auth.Session, id string) error {
	if err := s.Require(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.store.Load(ctx)
	if err != nil {
		return err
	}
	return l.store.Save(ctx, recordstore.Remove(records, id))
}

// AutoFill prepends a few sample deliveries dated today.
func (l *DeliveryLog) AutoFill(ctx context.Context, s *auth.Session) (models.DeliveryList, error) {
	if err := s.Require(); err != nil {
		return models.DeliveryList{}, err
	}
	today := Today(l.now())

	l.mu.Lock()
	defer l.mu.Unlock()

	samples := make([]models.DeliveryRecord, sampleDeliveryCount)
	for i := range samples {
		samples[i] = models.DeliveryRecord{
			ID:          newDeliveryID(),
			Date:        today,
			Supplier:    sampleSuppliers[i%len(sampleSuppliers)],
			Items:       sampleItems[i%len(sampleItems)],
			Temperature: strconv.FormatFloat(3+l.rnd.Float64()*2, 'f', 1, 64),
			Condition:   models.ConditionGood,
		}
	}

	records, err := l.store.Load(ctx)
	if err != nil {
		return models.DeliveryList{}, err
	}
	records = append(samples, records...)
	if err := l.store.Save(ctx, records); err != nil {
		return models.DeliveryList{}, err
	}
	return models.DeliveryList{Records: records}, nil
}
