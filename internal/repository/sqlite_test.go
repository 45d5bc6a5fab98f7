package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteDB {
	db, err := NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	return db
}

func TestSQLiteDB_AddAndListFacilities(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	facilities := []*Facility{
		{Category: models.CategoryMedical, Name: "Ziauddin Hospital", Phone: "+92211111111", Latitude: 24.85, Longitude: 67.03, UpdatedAt: time.Now()},
		{Category: models.CategoryMedical, Name: "Aga Khan Hospital", Phone: "+92212222222", Latitude: 24.89, Longitude: 67.07, UpdatedAt: time.Now()},
		{Category: models.CategoryPolice, Name: "Clifton Police Station", Latitude: 24.81, Longitude: 67.03, UpdatedAt: time.Now()},
	}
	for _, f := range facilities {
		if err := db.AddFacility(ctx, f); err != nil {
			t.Fatalf("AddFacility failed: %v", err)
		}
		if f.ID == 0 {
			t.Error("expected assigned ID after insert")
		}
	}

	medical, err := db.ListByCategory(ctx, models.CategoryMedical)
	if err != nil {
		t.Fatalf("ListByCategory failed: %v", err)
	}
	if len(medical) != 2 {
		t.Fatalf("expected 2 medical facilities, got %d", len(medical))
	}
	// Ordered by name
	if medical[0].Name != "Aga Khan Hospital" {
		t.Errorf("first facility = %s, want Aga Khan Hospital", medical[0].Name)
	}

	disaster, err := db.ListByCategory(ctx, models.CategoryDisaster)
	if err != nil {
		t.Fatalf("ListByCategory failed: %v", err)
	}
	if len(disaster) != 0 {
		t.Errorf("expected 0 disaster facilities, got %d", len(disaster))
	}

	all, err := db.ListAllFacilities(ctx)
	if err != nil {
		t.Fatalf("ListAllFacilities failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 facilities across categories, got %d", len(all))
	}
	// Ordered by category, then name
	if all[0].Name != "Aga Khan Hospital" || all[2].Name != "Clifton Police Station" {
		t.Errorf("unexpected ordering: %s, %s, %s", all[0].Name, all[1].Name, all[2].Name)
	}
}

func TestSQLiteDB_ReplaceAll(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	db.AddFacility(ctx, &Facility{Category: models.CategoryMedical, Name: "Old Hospital", Latitude: 24.8, Longitude: 67.0, UpdatedAt: time.Now()})

	replacement := []Facility{
		{Category: models.CategoryMedical, Name: "New Hospital", Latitude: 24.9, Longitude: 67.1},
		{Category: models.CategoryPolice, Name: "New Station", Latitude: 24.7, Longitude: 67.2},
	}
	if err := db.ReplaceAll(ctx, replacement); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	n, err := db.CountFacilities(ctx)
	if err != nil {
		t.Fatalf("CountFacilities failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 facilities after replace, got %d", n)
	}

	medical, _ := db.ListByCategory(ctx, models.CategoryMedical)
	if len(medical) != 1 || medical[0].Name != "New Hospital" {
		t.Errorf("unexpected medical facilities after replace: %+v", medical)
	}
	if medical[0].UpdatedAt.IsZero() {
		t.Error("ReplaceAll did not fill UpdatedAt")
	}
}

func TestSQLiteDB_AddAndListEvents(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	events := []*models.DispatchEvent{
		{ID: "e1", Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Urgency: 1, Facility: "A", Status: "dispatched", CreatedAt: base},
		{ID: "e2", Category: models.CategoryPolice, Subservice: "emergency_response", Urgency: 2, Facility: "B", Status: "dispatched", CreatedAt: base.Add(10 * time.Minute)},
		{ID: "e3", Category: models.CategoryMedical, Subservice: "triage_advice", Urgency: 3, Facility: "C", Status: "dispatched", CreatedAt: base.Add(20 * time.Minute)},
	}
	for _, e := range events {
		if err := db.AddEvent(ctx, e); err != nil {
			t.Fatalf("AddEvent failed: %v", err)
		}
	}

	all, err := db.ListEvents(ctx, EventFilter{Limit: 10})
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	// Newest first
	if all[0].ID != "e3" {
		t.Errorf("first event = %s, want e3", all[0].ID)
	}

	medical := models.CategoryMedical
	filtered, err := db.ListEvents(ctx, EventFilter{Category: &medical, Limit: 10})
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("expected 2 medical events, got %d", len(filtered))
	}

	since := base.Add(5 * time.Minute)
	recent, err := db.ListEvents(ctx, EventFilter{Since: &since, Limit: 10})
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 events since cutoff, got %d", len(recent))
	}

	limited, err := db.ListEvents(ctx, EventFilter{Limit: 1})
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 event with limit, got %d", len(limited))
	}
}

func TestSQLiteDB_DuplicateEventID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()
	e := &models.DispatchEvent{ID: "dup", Category: models.CategoryMedical, Subservice: "ambulance_dispatch", Urgency: 1, Status: "dispatched", CreatedAt: time.Now()}

	if err := db.AddEvent(ctx, e); err != nil {
		t.Fatalf("first AddEvent failed: %v", err)
	}
	if err := db.AddEvent(ctx, e); err == nil {
		t.Error("expected error for duplicate event ID, got nil")
	}
}

func TestLoadSeedFile(t *testing.T) {
	seed := `{
		"medical": {
			"candidates": [
				{"name": "Seed Hospital", "lat": 24.86, "lon": 67.01, "contact": "+92 (21) 123-4567", "address": "Saddar"},
				{"name": "", "lat": 24.86, "lon": 67.01, "contact": "115"},
				{"name": "Bad Coords", "lat": 200, "lon": 67.01}
			]
		},
		"police": {
			"candidates": [
				{"name": "Seed Station", "lat": 24.81, "lon": 67.03, "contact": "15"}
			]
		}
	}`
	path := filepath.Join(t.TempDir(), "facilities.json")
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("writing seed file: %v", err)
	}

	facilities, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile failed: %v", err)
	}
	if len(facilities) != 2 {
		t.Fatalf("expected 2 valid facilities, got %d", len(facilities))
	}

	byName := map[string]Facility{}
	for _, f := range facilities {
		byName[f.Name] = f
	}
	hospital, ok := byName["Seed Hospital"]
	if !ok {
		t.Fatal("Seed Hospital missing")
	}
	if hospital.Category != models.CategoryMedical {
		t.Errorf("category = %s, want medical", hospital.Category)
	}
	if hospital.Phone != "+92211234567" {
		t.Errorf("phone = %q, want normalized +92211234567", hospital.Phone)
	}

	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
