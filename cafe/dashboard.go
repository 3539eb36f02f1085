// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cafe

import (
	"context"
	"time"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/models"
)

// Dashboard summarises one day across every page.
type Dashboard struct {
	services *Services
	now      func() time.Time
}

// Summary reads each page for date (today when empty). Nothing is saved.
func (d *Dashboard) Summary(ctx context.Context, s *auth.Session, date string) (models.DashboardSummary, error) {
	if err := s.Require(); err != nil {
		return models.DashboardSummary{}, err
	}
	if date == "" {
		date = Today(d.now())
	}
	if !ValidDate(date) {
		return models.DashboardSummary{}, ErrInvalidDate
	}

	sum := models.DashboardSummary{Date: date, FailingUnits: []string{}}

	temps, err := d.services.Temperature.Day(ctx, s, date)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	sum.ReadingsExpected = 2 * len(temps.Rows)
	for _, r := range temps.Rows {
		if r.AMStatus != models.StatusNone {
			sum.ReadingsLogged++
		}
		if r.PMStatus != models.StatusNone {
			sum.ReadingsLogged++
		}
		if r.AMStatus == models.StatusFail || r.PMStatus == models.StatusFail {
			sum.FailingUnits = append(sum.FailingUnits, r.Unit)
		}
	}

	opening, err := d.services.Checklists.Day(ctx, s, models.ChecklistOpening, date)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	sum.Opening = opening.Progress

	closing, err := d.services.Checklists.Day(ctx, s, models.ChecklistClosing, date)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	sum.Closing = closing.Progress

	equipment, err := d.services.Equipment.List(ctx, s)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	for _, r := range equipment.Records {
		if r.Status == models.MaintenanceOverdue {
			sum.EquipmentOverdue++
		}
	}

	deliveries, err := d.services.Deliveries.List(ctx, s)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	for _, r := range deliveries.Records {
		if r.Date == date {
			sum.DeliveriesToday++
		}
	}

	return sum, nil
}
