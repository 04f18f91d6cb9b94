package services

import (
	"testing"

	"fleetadmin/internal/domain/models"
)

func sampleEntries() []models.ServiceEntry {
	return []models.ServiceEntry{
		{VehicleID: "A", Kind: models.ServiceTires, Remaining: 8000, Status: ClassifyStatus(8000, models.ServiceTires)},
		{VehicleID: "B", Kind: models.ServiceMaintenance, Remaining: 3000, Status: ClassifyStatus(3000, models.ServiceMaintenance)},
		{VehicleID: "C", Kind: models.ServiceLicense, Remaining: 2, Status: ClassifyStatus(2, models.ServiceLicense)},
	}
}

func TestApplyServiceFiltersByStatus(t *testing.T) {
	out := ApplyServiceFilters(sampleEntries(), models.FilterState{Statuses: []models.StatusCategory{models.StatusRequired}})
	if len(out) != 1 || out[0].VehicleID != "C" {
		t.Fatalf("expected only the required entry, got %+v", out)
	}
}

func TestApplyServiceFiltersEmptySelectionKeepsAll(t *testing.T) {
	if out := ApplyServiceFilters(sampleEntries(), models.FilterState{}); len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out))
	}
}

func TestApplyServiceFiltersCombinesDimensions(t *testing.T) {
	f := models.FilterState{
		Kinds:    []models.ServiceKind{models.ServiceMaintenance, models.ServiceTires},
		Statuses: []models.StatusCategory{models.StatusGood, models.StatusRequired},
	}
	out := ApplyServiceFilters(sampleEntries(), f)
	if len(out) != 1 || out[0].VehicleID != "A" {
		t.Fatalf("expected only the good tires entry, got %+v", out)
	}
}

func TestSortServiceEntries(t *testing.T) {
	in := []models.ServiceEntry{
		{VehicleID: "good", Remaining: 9000, Status: models.StatusInfo{Category: models.StatusGood}},
		{VehicleID: "unknown", Remaining: 1, Status: models.StatusInfo{Category: models.StatusUnknown}},
		{VehicleID: "req-low", Remaining: 100, Status: models.StatusInfo{Category: models.StatusRequired}},
		{VehicleID: "up", Remaining: 2000, Status: models.StatusInfo{Category: models.StatusUpcoming}},
		{VehicleID: "req-overdue", Remaining: -300, Status: models.StatusInfo{Category: models.StatusRequired}},
	}
	out := SortServiceEntries(in)

	want := []string{"req-overdue", "req-low", "up", "good", "unknown"}
	for i, id := range want {
		if out[i].VehicleID != id {
			t.Fatalf("position %d: got %s want %s", i, out[i].VehicleID, id)
		}
	}
	if in[0].VehicleID != "good" {
		t.Fatalf("input slice was reordered")
	}
}

func TestSortServiceEntriesIsStable(t *testing.T) {
	in := []models.ServiceEntry{
		{VehicleID: "first", Remaining: 10, Status: models.StatusInfo{Category: models.StatusUpcoming}},
		{VehicleID: "second", Remaining: 10, Status: models.StatusInfo{Category: models.StatusUpcoming}},
	}
	out := SortServiceEntries(in)
	if out[0].VehicleID != "first" || out[1].VehicleID != "second" {
		t.Fatalf("equal entries changed order: %+v", out)
	}
}

func TestParseFilterStateDropsUnknownValues(t *testing.T) {
	f := ParseFilterState([]string{"tires", "wash", "tires"}, []string{"required", "late", ""})
	if len(f.Kinds) != 1 || f.Kinds[0] != models.ServiceTires {
		t.Fatalf("kinds = %v", f.Kinds)
	}
	if len(f.Statuses) != 1 || f.Statuses[0] != models.StatusRequired {
		t.Fatalf("statuses = %v", f.Statuses)
	}
}
