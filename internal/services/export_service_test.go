package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"

	"github.com/xuri/excelize/v2"
)

func TestExportUpcomingServicesXLSX(t *testing.T) {
	svc := ExportService{Upcoming: newUpcoming(fleetFixture())}

	data, filename, err := svc.UpcomingServicesXLSX(models.FilterState{})
	if err != nil {
		t.Fatalf("UpcomingServicesXLSX returned error: %v", err)
	}
	if len(data) == 0 || filename != "upcoming_services_20250101T093000Z.xlsx" {
		t.Fatalf("unexpected output: %d bytes, name %q", len(data), filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated workbook unreadable: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(UpcomingServicesSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected header plus 6 rows, got %d", len(rows))
	}
	if rows[0][0] != "Vehicle" || rows[0][4] != "Remaining" {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][0] != "B 1 AA" || rows[1][4] != "Overdue by 200 Km" {
		t.Fatalf("first row = %v", rows[1])
	}
}

func TestExportUpcomingServicesPDF(t *testing.T) {
	svc := ExportService{Upcoming: newUpcoming(fleetFixture())}

	data, filename, err := svc.UpcomingServicesPDF(models.FilterState{})
	if err != nil {
		t.Fatalf("UpcomingServicesPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a pdf")
	}
	if !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("filename = %q", filename)
	}
}

func TestExportUpcomingServicesEmpty(t *testing.T) {
	svc := ExportService{Upcoming: newUpcoming(fleetFixture())}
	f := models.FilterState{Statuses: []models.StatusCategory{models.StatusUnknown}}

	if _, _, err := svc.UpcomingServicesXLSX(f); !errors.Is(err, domain.ErrNoExportRows) {
		t.Fatalf("expected ErrNoExportRows, got %v", err)
	}
	if _, _, err := svc.UpcomingServicesPDF(f); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
