package models

import "strings"

// DateLayout is the ISO calendar date used as the join key between
// "today" and every persisted collection.
const DateLayout = "2006-01-02"

// Unit kinds
const (
	KindFridge  = "fridge"
	KindFreezer = "freezer"
)

// Checklist kinds
const (
	ChecklistOpening = "opening"
	ChecklistClosing = "closing"
)

// Temperature status values
const (
	StatusNone = ""
	StatusPass = "pass"
	StatusFail = "fail"
)

// Maintenance status buckets
const (
	MaintenanceNever   = "never"
	MaintenanceToday   = "today"
	MaintenanceRecent  = "recent"
	MaintenanceDue     = "due"
	MaintenanceOverdue = "overdue"
)

// Condition is the state a delivery arrived in.
type Condition string

const (
	ConditionGood       Condition = "Good"
	ConditionAcceptable Condition = "Acceptable"
	ConditionRejected   Condition = "Rejected"
)

// ParseCondition matches case-insensitively and returns the canonical value.
func ParseCondition(s string) (Condition, bool) {
	for _, c := range []Condition{ConditionGood, ConditionAcceptable, ConditionRejected} {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}

// Domain types

type ChecklistItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

func (c ChecklistItem) RecordID() string { return c.ID }

type TemperatureReading struct {
	Date string `json:"date"`
	Unit string `json:"unit"`
	AM   string `json:"am"`
	PM   string `json:"pm"`
}

// RecordID identifies a reading by its (date, unit) pair.
func (t TemperatureReading) RecordID() string { return ReadingID(t.Date, t.Unit) }

func ReadingID(date, unit string) string { return date + "/" + unit }

type UnitSpec struct {
	Name    string  `json:"name" yaml:"name"`
	MaxTemp float64 `json:"max_temp" yaml:"max_temp"`
	Kind    string  `json:"kind" yaml:"kind"`
}

type EquipmentRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	LastMaintenance string `json:"lastMaintenance"`
	Notes           string `json:"notes"`
}

func (e EquipmentRecord) RecordID() string { return e.ID }

type DeliveryRecord struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Supplier    string    `json:"supplier"`
	Items       string    `json:"items"`
	Temperature string    `json:"temperature"`
	Condition   Condition `json:"condition"`
}

func (d DeliveryRecord) RecordID() string { return d.ID }

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Nil fields are left unchanged.
type TemperatureUpdateRequest struct {
	Date string  `json:"date"`
	AM   *string `json:"am"`
	PM   *string `json:"pm"`
}

type EquipmentUpdateRequest struct {
	LastMaintenance *string `json:"lastMaintenance"`
	Notes           *string `json:"notes"`
}

type DeliveryUpdateRequest struct {
	Date        *string `json:"date"`
	Supplier    *string `json:"supplier"`
	Items       *string `json:"items"`
	Temperature *string `json:"temperature"`
	Condition   *string `json:"condition"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
}

type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

type TemperatureRow struct {
	TemperatureReading
	MaxTemp  float64 `json:"max_temp"`
	Kind     string  `json:"kind"`
	AMStatus string  `json:"am_status"`
	PMStatus string  `json:"pm_status"`
}

type TemperatureDay struct {
	Date string           `json:"date"`
	Rows []TemperatureRow `json:"rows"`
}

type Progress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
	Complete  bool    `json:"complete"`
}

type ChecklistDay struct {
	Kind     string          `json:"kind"`
	Date     string          `json:"date"`
	Items    []ChecklistItem `json:"items"`
	Progress Progress        `json:"progress"`
}

type ChecklistHistory struct {
	Kind  string   `json:"kind"`
	Dates []string `json:"dates"`
}

type EquipmentRow struct {
	EquipmentRecord
	DaysSince *int   `json:"days_since,omitempty"`
	Status    string `json:"status"`
	Since     string `json:"since,omitempty"`
}

type EquipmentList struct {
	Records []EquipmentRow `json:"records"`
}

type DeliveryList struct {
	Records []DeliveryRecord `json:"records"`
}

type DashboardSummary struct {
	Date             string   `json:"date"`
	ReadingsLogged   int      `json:"readings_logged"`
	ReadingsExpected int      `json:"readings_expected"`
	FailingUnits     []string `json:"failing_units"`
	Opening          Progress `json:"opening"`
	Closing          Progress `json:"closing"`
	EquipmentOverdue int      `json:"equipment_overdue"`
	DeliveriesToday  int      `json:"deliveries_today"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
