// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the console.

# Domain Types

Records persisted in the key-value store:

  - ChecklistItem: id, text, checked (one slice per date and kind)
  - TemperatureReading: date, unit, am, pm (one per date and unit)
  - EquipmentRecord: id, name, lastMaintenance, notes
  - DeliveryRecord: id, date, supplier, items, temperature, condition

Static reference data:

  - UnitSpec: storage unit name, max safe temperature, kind

Every persisted record implements RecordID so the record store can match
it for upsert and remove.

# Request Types

  - LoginRequest: username, password
  - TemperatureUpdateRequest: date, am, pm
  - EquipmentUpdateRequest: lastMaintenance, notes
  - DeliveryUpdateRequest: date, supplier, items, temperature, condition

Update requests use pointer fields; nil means "leave unchanged".

# Response Types

  - TemperatureDay: rows with pass/fail status per period
  - ChecklistDay: items plus derived Progress
  - EquipmentList: records with days since maintenance
  - DeliveryList: records, newest first
  - DashboardSummary: today's state across all pages
  - ErrorResponse: error, message

# Constants

Unit kinds:

	KindFridge  = "fridge"
	KindFreezer = "freezer"

Delivery conditions:

	ConditionGood       = "Good"
	ConditionAcceptable = "Acceptable"
	ConditionRejected   = "Rejected"
*/
package models
