package services

import (
	"math"
	"testing"

	"fleetadmin/internal/domain/models"
)

func ptr(v float64) *float64 { return &v }

func TestFormatRemaining(t *testing.T) {
	cases := []struct {
		kind    models.ServiceKind
		value   *float64
		text    string
		overdue bool
	}{
		{models.ServiceMaintenance, nil, "N/A", false},
		{models.ServiceTires, ptr(math.NaN()), "N/A", false},
		{models.ServiceMaintenance, ptr(12500), "12,500 Km", false},
		{models.ServiceTires, ptr(0), "0 Km", false},
		{models.ServiceMaintenance, ptr(-200), "Overdue by 200 Km", true},
		{models.ServiceLicense, ptr(45), "45 Days", false},
		{models.ServiceLicense, ptr(-3), "Overdue by 3 Days", true},
		{models.ServiceMaintenance, ptr(1e20), "100,000,000,000,000,000,000 Km", false},
	}
	for _, tc := range cases {
		got := FormatRemaining(tc.kind, tc.value)
		if got.Text != tc.text || got.Overdue != tc.overdue {
			t.Fatalf("%s: got %+v want %q overdue=%v", tc.kind, got, tc.text, tc.overdue)
		}
	}
}

func TestBuildServiceRowsHonorsVisibility(t *testing.T) {
	entries := BuildServiceList([]models.VehicleRecord{{
		VehicleID:           "V1",
		LicensePlate:        "B 1234 XY",
		KmToNextMaintenance: "-200",
		KmLeftForTireChange: "6000",
		DaysToRenewLicense:  "40",
	}}, testToday)

	cols := models.DefaultColumnVisibility()
	cols.ExpectedDate = false
	rows := BuildServiceRows(entries, cols)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.RowClass != "maintenance-service critical-row" || first.VehicleID != "V1" {
		t.Fatalf("unexpected row %+v", first)
	}
	if len(first.Cells) != 4 {
		t.Fatalf("expected 4 visible cells, got %d", len(first.Cells))
	}
	for _, c := range first.Cells {
		if c.Column == models.ColumnExpectedDate {
			t.Fatalf("hidden column rendered")
		}
	}
	if c := first.Cells[2]; c.Class != "status-indicator critical" || c.Icon != "exclamation-triangle" {
		t.Fatalf("status cell = %+v", c)
	}
	if c := first.Cells[3]; c.Text != "Overdue by 200 Km" || c.Class != "overdue-value" {
		t.Fatalf("remaining cell = %+v", c)
	}
	if rows[1].Cells[1].Text != "Tire Change" || rows[1].Cells[3].Class != "" {
		t.Fatalf("tires row = %+v", rows[1])
	}
}

func TestBuildExportRows(t *testing.T) {
	entries := []models.ServiceEntry{
		{VehicleID: "V9", Kind: models.ServiceLicense, Remaining: 12, Status: ClassifyStatus(12, models.ServiceLicense)},
	}
	cols := models.ColumnVisibility{Vehicle: true, ExpectedDate: true, Remaining: true}

	rows := BuildExportRows(entries, cols)
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(rows))
	}
	wantHeader := []string{"Vehicle", "Expected Date", "Remaining"}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Fatalf("header %d = %q want %q", i, rows[0][i], h)
		}
	}
	if got := rows[1]; got[0] != "N/A" || got[1] != "N/A" || got[2] != "12 Days" {
		t.Fatalf("export row = %v", got)
	}
}

func TestColumnHeader(t *testing.T) {
	if got := ColumnHeader(models.ColumnRemaining, true); got != "Remaining Distance" {
		t.Fatalf("table header = %q", got)
	}
	if got := ColumnHeader(models.ColumnServiceType, false); got != "Service Type" {
		t.Fatalf("export header = %q", got)
	}
}
