// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/raypark-console/auth"
	"github.com/danielhkuo/raypark-console/kv"
	"github.com/danielhkuo/raypark-console/models"
	"github.com/danielhkuo/raypark-console/testutil"
)

func strPtr(s string) *string { return &s }

func TestAuthHandler_Login(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(auth.NewGate(cfg.AdminUsername, cfg.AdminPassword, 0, auth.NewSessions(store)))

	testCases := []struct {
		name           string
		body           any
		expectedStatus int
	}{
		{"valid credentials", models.LoginRequest{Username: "bossman", Password: "raygreen"}, http.StatusOK},
		{"wrong password", models.LoginRequest{Username: "bossman", Password: "raygren"}, http.StatusUnauthorized},
		{"wrong username", models.LoginRequest{Username: "Bossman", Password: "raygreen"}, http.StatusUnauthorized},
		{"empty", models.LoginRequest{}, http.StatusUnauthorized},
		{"invalid JSON", "not an object", http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/login", tc.body, nil)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if tc.expectedStatus != http.StatusOK {
				return
			}
			var resp models.LoginResponse
			testutil.AssertJSON(t, w, &resp)
			v, ok, err := store.Get(req.Context(), auth.FlagPrefix+resp.Token)
			if err != nil || !ok || v != "true" {
				t.Errorf("Expected auth flag for token, got %q %v %v", v, ok, err)
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	store := kv.NewMemoryStore()
	handler := NewAuthHandler(auth.NewGate("u", "p", 0, auth.NewSessions(store)))

	w := httptest.NewRecorder()
	handler.Me(w, httptest.NewRequest("GET", "/auth/me", nil))

	var resp models.SessionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Authenticated {
		t.Error("Expected anonymous request to be logged out")
	}

	sess := testutil.CreateTestSession(t, store)
	w = httptest.NewRecorder()
	handler.Me(w, testutil.WithSession(httptest.NewRequest("GET", "/auth/me", nil), sess))
	testutil.AssertJSON(t, w, &resp)
	if !resp.Authenticated {
		t.Error("Expected logged-in session")
	}
}

func TestTemperatureHandler(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := testutil.NewTestServices(store)
	sess := testutil.CreateTestSession(t, store)
	handler := NewTemperatureHandler(svc)

	t.Run("day defaults to today", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetDay(w, testutil.WithSession(httptest.NewRequest("GET", "/temperature", nil), sess))

		testutil.AssertStatus(t, w, http.StatusOK)
		var day models.TemperatureDay
		testutil.AssertJSON(t, w, &day)
		if day.Date != testutil.TestDate {
			t.Errorf("Expected date %s, got %s", testutil.TestDate, day.Date)
		}
		if len(day.Rows) != 13 {
			t.Errorf("Expected 13 units, got %d", len(day.Rows))
		}
	})

	testCases := []struct {
		name           string
		unit           string
		body           any
		expectedStatus int
		expectedAM     string
	}{
		{"fridge over max", "Under Counter Fridge 1", models.TemperatureUpdateRequest{AM: strPtr("9.0")}, http.StatusOK, models.StatusFail},
		{"fridge under max", "Under Counter Fridge 2", models.TemperatureUpdateRequest{AM: strPtr("7.9")}, http.StatusOK, models.StatusPass},
		{"explicit date", "Drinks Fridge", models.TemperatureUpdateRequest{Date: "2024-05-30", AM: strPtr("3")}, http.StatusOK, models.StatusPass},
		{"unknown unit", "Walk-in Cooler", models.TemperatureUpdateRequest{AM: strPtr("3")}, http.StatusNotFound, ""},
		{"bad date", "Drinks Fridge", models.TemperatureUpdateRequest{Date: "30/05/2024", AM: strPtr("3")}, http.StatusBadRequest, ""},
		{"no values", "Drinks Fridge", models.TemperatureUpdateRequest{}, http.StatusBadRequest, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("PUT", "/temperature/x", tc.body, nil)
			req.SetPathValue("unit", tc.unit)
			w := httptest.NewRecorder()

			handler.Record(w, testutil.WithSession(req, sess))

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if tc.expectedStatus != http.StatusOK {
				return
			}
			var row models.TemperatureRow
			testutil.AssertJSON(t, w, &row)
			if row.AMStatus != tc.expectedAM {
				t.Errorf("Expected am status %q, got %q", tc.expectedAM, row.AMStatus)
			}
		})
	}

	t.Run("logged out", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetDay(w, httptest.NewRequest("GET", "/temperature", nil))
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestChecklistHandler(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := testutil.NewTestServices(store)
	sess := testutil.CreateTestSession(t, store)
	handler := NewChecklistHandler(svc)

	toggle := func(kind, id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/checklists/"+kind+"/items/"+id+"/toggle?date=2024-06-01", nil)
		req.SetPathValue("kind", kind)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.Toggle(w, testutil.WithSession(req, sess))
		return w
	}

	w := toggle(models.ChecklistClosing, "task-0")
	testutil.AssertStatus(t, w, http.StatusOK)
	w = toggle(models.ChecklistClosing, "task-1")
	testutil.AssertStatus(t, w, http.StatusOK)

	var day models.ChecklistDay
	testutil.AssertJSON(t, w, &day)
	if day.Progress.Completed != 2 || day.Progress.Total != 15 {
		t.Errorf("Expected 2/15, got %d/%d", day.Progress.Completed, day.Progress.Total)
	}

	testutil.AssertStatus(t, toggle(models.ChecklistClosing, "task-42"), http.StatusNotFound)
	testutil.AssertStatus(t, toggle("midday", "task-0"), http.StatusNotFound)

	req := httptest.NewRequest("GET", "/checklists/closing/history", nil)
	req.SetPathValue("kind", models.ChecklistClosing)
	w = httptest.NewRecorder()
	handler.GetHistory(w, testutil.WithSession(req, sess))
	testutil.AssertStatus(t, w, http.StatusOK)

	var history models.ChecklistHistory
	testutil.AssertJSON(t, w, &history)
	if len(history.Dates) != 1 || history.Dates[0] != "2024-06-01" {
		t.Errorf("Expected history [2024-06-01], got %v", history.Dates)
	}

	req = httptest.NewRequest("POST", "/checklists/opening/check-all", nil)
	req.SetPathValue("kind", models.ChecklistOpening)
	w = httptest.NewRecorder()
	handler.CheckAll(w, testutil.WithSession(req, sess))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &day)
	if !day.Progress.Complete || day.Date != testutil.TestDate {
		t.Errorf("Expected complete opening checklist for today, got %+v", day.Progress)
	}
}

func TestEquipmentHandler(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := testutil.NewTestServices(store)
	sess := testutil.CreateTestSession(t, store)
	handler := NewEquipmentHandler(svc)

	testCases := []struct {
		name           string
		id             string
		body           any
		expectedStatus int
	}{
		{"set date and notes", "equip-2", models.EquipmentUpdateRequest{LastMaintenance: strPtr("2024-05-10"), Notes: strPtr("Descaled")}, http.StatusOK},
		{"clear date", "equip-2", models.EquipmentUpdateRequest{LastMaintenance: strPtr("")}, http.StatusOK},
		{"bad date", "equip-2", models.EquipmentUpdateRequest{LastMaintenance: strPtr("last week")}, http.StatusBadRequest},
		{"unknown id", "equip-200", models.EquipmentUpdateRequest{Notes: strPtr("x")}, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("PATCH", "/equipment/"+tc.id, tc.body, nil)
			req.SetPathValue("id", tc.id)
			w := httptest.NewRecorder()

			handler.Update(w, testutil.WithSession(req, sess))

			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}

	w := httptest.NewRecorder()
	handler.List(w, testutil.WithSession(httptest.NewRequest("GET", "/equipment", nil), sess))
	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.EquipmentList
	testutil.AssertJSON(t, w, &list)
	if len(list.Records) != 12 {
		t.Fatalf("Expected 12 records, got %d", len(list.Records))
	}
	if list.Records[2].Notes != "Descaled" || list.Records[2].Status != models.MaintenanceNever {
		t.Errorf("Unexpected record after updates: %+v", list.Records[2])
	}
}

func TestDeliveryHandler(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := testutil.NewTestServices(store)
	sess := testutil.CreateTestSession(t, store)
	handler := NewDeliveryHandler(svc)

	w := httptest.NewRecorder()
	handler.Add(w, testutil.WithSession(httptest.NewRequest("POST", "/deliveries", nil), sess))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var rec models.DeliveryRecord
	testutil.AssertJSON(t, w, &rec)

	patch := func(body any) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("PATCH", "/deliveries/"+rec.ID, body, nil)
		req.SetPathValue("id", rec.ID)
		w := httptest.NewRecorder()
		handler.Update(w, testutil.WithSession(req, sess))
		return w
	}

	testutil.AssertStatus(t, patch(models.DeliveryUpdateRequest{Condition: strPtr("Acceptable"), Temperature: strPtr("4.2")}), http.StatusOK)
	testutil.AssertStatus(t, patch(models.DeliveryUpdateRequest{Condition: strPtr("Melted")}), http.StatusBadRequest)
	testutil.AssertStatus(t, patch(models.DeliveryUpdateRequest{Date: strPtr("")}), http.StatusBadRequest)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("DELETE", "/deliveries/"+rec.ID, nil)
		req.SetPathValue("id", rec.ID)
		w = httptest.NewRecorder()
		handler.Delete(w, testutil.WithSession(req, sess))
		testutil.AssertStatus(t, w, http.StatusNoContent)
	}

	w = httptest.NewRecorder()
	handler.List(w, testutil.WithSession(httptest.NewRequest("GET", "/deliveries", nil), sess))
	var list models.DeliveryList
	testutil.AssertJSON(t, w, &list)
	if len(list.Records) != 0 {
		t.Errorf("Expected no deliveries, got %d", len(list.Records))
	}
}
