package services

import (
	"testing"
	"time"

	"fleetadmin/internal/domain/models"
)

var testToday = time.Date(2025, time.January, 1, 9, 30, 0, 0, time.UTC)

func entryFor(t *testing.T, entries []models.ServiceEntry, id string, kind models.ServiceKind) models.ServiceEntry {
	t.Helper()
	for _, e := range entries {
		if e.VehicleID == id && e.Kind == kind {
			return e
		}
	}
	t.Fatalf("no %s entry for %s", kind, id)
	return models.ServiceEntry{}
}

func TestBuildServiceListOverdueMaintenance(t *testing.T) {
	vehicles := []models.VehicleRecord{{
		VehicleID:           "V1",
		KmToNextMaintenance: "-200",
		KmLeftForTireChange: "6000",
		DaysToRenewLicense:  "3",
	}}

	entries := BuildServiceList(vehicles, testToday)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	m := entryFor(t, entries, "V1", models.ServiceMaintenance)
	if m.Status.Category != models.StatusRequired {
		t.Fatalf("maintenance category = %s", m.Status.Category)
	}
	if rt := FormatEntryRemaining(m); rt.Text != "Overdue by 200 Km" || !rt.Overdue {
		t.Fatalf("maintenance remaining = %+v", rt)
	}
	if m.ExpectedDate != "2024-12-28" {
		t.Fatalf("maintenance expected date = %s", m.ExpectedDate)
	}

	tires := entryFor(t, entries, "V1", models.ServiceTires)
	if tires.Status.Category != models.StatusGood {
		t.Fatalf("tires category = %s", tires.Status.Category)
	}
	if tires.ExpectedDate != "2025-05-01" {
		t.Fatalf("tires expected date = %s", tires.ExpectedDate)
	}

	lic := entryFor(t, entries, "V1", models.ServiceLicense)
	if lic.Status.Category != models.StatusRequired || lic.Status.Overdue {
		t.Fatalf("license status = %+v", lic.Status)
	}
	if lic.ExpectedDate != "2025-01-04" {
		t.Fatalf("license expected date = %s", lic.ExpectedDate)
	}
	if m.DisplayLabel != "V1" {
		t.Fatalf("label should fall back to id, got %q", m.DisplayLabel)
	}
}

func TestBuildServiceListReadsKmWithUnits(t *testing.T) {
	vehicles := []models.VehicleRecord{{
		VehicleID:           "V1",
		KmToNextMaintenance: "12,500 km",
		KmLeftForTireChange: "6000km",
		DaysToRenewLicense:  "90",
	}}
	entries := BuildServiceList(vehicles, testToday)

	m := entryFor(t, entries, "V1", models.ServiceMaintenance)
	if m.Remaining != 12500 || m.Status.Category != models.StatusGood {
		t.Fatalf("maintenance = %+v", m)
	}
	if rt := FormatEntryRemaining(m); rt.Text != "12,500 Km" {
		t.Fatalf("maintenance remaining text = %q", rt.Text)
	}
	tires := entryFor(t, entries, "V1", models.ServiceTires)
	if tires.Remaining != 6000 || tires.Status.Category != models.StatusGood {
		t.Fatalf("tires = %+v", tires)
	}
}

func TestBuildServiceListSkipsVehiclesWithoutID(t *testing.T) {
	vehicles := []models.VehicleRecord{
		{VehicleID: "", LicensePlate: "B 1 AA"},
		{VehicleID: "  "},
		{VehicleID: "V2", LicensePlate: "B 2 BB"},
		{VehicleID: "V3"},
	}
	entries := BuildServiceList(vehicles, testToday)
	if len(entries) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.VehicleID == "" {
			t.Fatalf("entry built for vehicle without id")
		}
	}
	if got := entryFor(t, entries, "V2", models.ServiceTires).DisplayLabel; got != "B 2 BB" {
		t.Fatalf("label = %q", got)
	}
}

func TestBuildServiceListParsesSpreadsheetValues(t *testing.T) {
	vehicles := []models.VehicleRecord{{
		VehicleID:           "V4",
		KmToNextMaintenance: "12,500",
		KmLeftForTireChange: "abc",
		DaysToRenewLicense:  "45 days",
		LicenseRenewalDate:  "2025-02-15",
	}}
	entries := BuildServiceList(vehicles, testToday)

	if got := entryFor(t, entries, "V4", models.ServiceMaintenance).Remaining; got != 12500 {
		t.Fatalf("maintenance remaining = %v", got)
	}
	tires := entryFor(t, entries, "V4", models.ServiceTires)
	if tires.Remaining != 0 || tires.Status.Text != "Immediate Tire Change Required" {
		t.Fatalf("unparsable km should count as 0, got %+v", tires)
	}
	lic := entryFor(t, entries, "V4", models.ServiceLicense)
	if lic.Remaining != 45 || lic.ExpectedDate != "2025-02-15" {
		t.Fatalf("license entry = %+v", lic)
	}
}

func TestBuildServiceListRoundsProjectedDays(t *testing.T) {
	vehicles := []models.VehicleRecord{{VehicleID: "V5", KmToNextMaintenance: "75", KmLeftForTireChange: "70"}}
	entries := BuildServiceList(vehicles, testToday)

	if got := entryFor(t, entries, "V5", models.ServiceMaintenance).ExpectedDate; got != "2025-01-03" {
		t.Fatalf("75 km should project 2 days, got %s", got)
	}
	if got := entryFor(t, entries, "V5", models.ServiceTires).ExpectedDate; got != "2025-01-02" {
		t.Fatalf("70 km should project 1 day, got %s", got)
	}
}
