// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package catalog holds the fixed reference lists the pages are seeded from:
// checklist task templates, storage units and equipment.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/raypark-console/models"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is read-only after construction.
type Catalog struct {
	OpeningTasks []string          `yaml:"opening_tasks"`
	ClosingTasks []string          `yaml:"closing_tasks"`
	Units        []models.UnitSpec `yaml:"units"`
	Equipment    []string          `yaml:"equipment"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		OpeningTasks: []string{
			"Turn on all lights",
			"Unlock doors and entrance",
			"Turn on coffee machines and espresso maker",
			"Check temperature logs (fridges & freezers)",
			"Inspect all food storage areas for cleanliness",
			"Prep fresh ingredients for the day",
			"Fill and organize display case",
			"Check and restock condiments",
			"Turn on POS system and check register",
			"Clean and sanitize all work surfaces",
			"Set up outdoor seating (if applicable)",
			"Check toilets and restock supplies",
			"Turn on music/ambiance systems",
			"Review reservations or special orders",
			"Ensure staff uniforms and appearance standards",
		},
		ClosingTasks: []string{
			"Clean and sanitize all work surfaces",
			"Clean coffee machines and espresso maker",
			"Empty and clean all bins",
			"Sweep and mop all floors",
			"Clean and restock toilets",
			"Wash all dishes and utensils",
			"Wipe down tables and chairs",
			"Clean display cases and counters",
			"Store all perishable food properly",
			"Check and record closing temperatures",
			"Turn off all kitchen equipment",
			"Lock all windows and secure premises",
			"Count cash register and prepare deposit",
			"Turn off lights and music systems",
			"Set alarm and lock all doors",
		},
		Units: []models.UnitSpec{
			{Name: "Under Counter Fridge 1", MaxTemp: 8, Kind: models.KindFridge},
			{Name: "Under Counter Fridge 2", MaxTemp: 8, Kind: models.KindFridge},
			{Name: "Drinks Fridge", MaxTemp: 8, Kind: models.KindFridge},
			{Name: "Carte D'or Freezer", MaxTemp: -18, Kind: models.KindFreezer},
			{Name: "Kitchen Tall Fridge", MaxTemp: 8, Kind: models.KindFridge},
			{Name: "Kitchen Tall Freezer", MaxTemp: -18, Kind: models.KindFreezer},
			{Name: "Passageway Freezer", MaxTemp: -18, Kind: models.KindFreezer},
			{Name: "Outdoor Walls Freezer", MaxTemp: -18, Kind: models.KindFreezer},
			{Name: "Outdoor Double Door Freezer", MaxTemp: -18, Kind: models.KindFreezer},
			{Name: "Stock Room Walls Freezer", MaxTemp: -18, Kind: models.KindFreezer},
			{Name: "Stock Room Grey Freezer", MaxTemp: -18, Kind: models.KindFreezer},
			{Name: "Stock Room Tall White Freezer", MaxTemp: -18, Kind: models.KindFreezer},
			{Name: "Stock Room Double Door Fridge", MaxTemp: 8, Kind: models.KindFridge},
		},
		Equipment: []string{
			"Coffee Machine 1",
			"Coffee Machine 2",
			"Espresso Maker",
			"Grinder",
			"Dishwasher",
			"Oven",
			"Microwave",
			"Toaster",
			"Blender",
			"Food Processor",
			"Ice Machine",
			"Point of Sale (POS) System",
		},
	}
}

// Load reads a YAML override. Sections left out of the file keep their
// built-in values. An empty path returns Default().
func Load(path string) (Catalog, error) {
	cat := Default()
	if path == "" {
		return cat, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var override Catalog
	if err := yaml.Unmarshal(b, &override); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	if len(override.OpeningTasks) > 0 {
		cat.OpeningTasks = override.OpeningTasks
	}
	if len(override.ClosingTasks) > 0 {
		cat.ClosingTasks = override.ClosingTasks
	}
	if len(override.Units) > 0 {
		cat.Units = override.Units
	}
	if len(override.Equipment) > 0 {
		cat.Equipment = override.Equipment
	}

	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// Validate rejects unit kinds other than fridge/freezer and duplicate unit names.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Units))
	for _, u := range c.Units {
		if u.Name == "" {
			return fmt.Errorf("%w: unit without a name", ErrInvalidCatalog)
		}
		if u.Kind != models.KindFridge && u.Kind != models.KindFreezer {
			return fmt.Errorf("%w: unit %q has kind %q", ErrInvalidCatalog, u.Name, u.Kind)
		}
		if seen[u.Name] {
			return fmt.Errorf("%w: duplicate unit %q", ErrInvalidCatalog, u.Name)
		}
		seen[u.Name] = true
	}
	return nil
}

// Tasks returns the template for a checklist kind.
func (c Catalog) Tasks(kind string) ([]string, bool) {
	switch kind {
	case models.ChecklistOpening:
		return c.OpeningTasks, true
	case models.ChecklistClosing:
		return c.ClosingTasks, true
	}
	return nil, false
}

func (c Catalog) Unit(name string) (models.UnitSpec, bool) {
	for _, u := range c.Units {
		if u.Name == name {
			return u, true
		}
	}
	return models.UnitSpec{}, false
}
