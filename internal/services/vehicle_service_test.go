package services

import (
	"bytes"
	"strings"
	"testing"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/xuri/excelize/v2"
)

func TestVehicleServiceImport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	f := excelize.NewFile()
	rows := [][]any{
		{repositories.SheetVehicleID, repositories.SheetLicensePlate, repositories.SheetKmToNextMaintenance, repositories.SheetLicenseRenewalDate},
		{"V1", "B 1 AA", "-200", "04/01/2025"},
		{"V2", "", "100", ""},
		{"V3", "B 3 CC", "12,500 km", "45748"},
		{"V4", "B 4 DD", "900", "next spring"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	f.Close()

	mock.ExpectExec("INSERT INTO vehicles .* ON DUPLICATE KEY UPDATE").
		WithArgs("V1", "B 1 AA", nil, nil, nil, nil, nil, nil, "-200", nil, nil, "2025-04-01").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO vehicles .* ON DUPLICATE KEY UPDATE").
		WithArgs("V3", "B 3 CC", nil, nil, nil, nil, nil, nil, "12,500 km", nil, nil, "2025-04-01").
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := VehicleService{Repo: repositories.VehicleRepository{DB: db}}
	res, err := svc.Import(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if res.Imported != 2 || res.Skipped != 2 || len(res.Errors) != 2 {
		t.Fatalf("unexpected import result %+v", res)
	}
	if !strings.HasPrefix(res.Errors[0], "V2:") {
		t.Fatalf("error should name the vehicle, got %q", res.Errors[0])
	}
	if !strings.HasPrefix(res.Errors[1], "V4:") || !strings.Contains(res.Errors[1], "next spring") {
		t.Fatalf("unreadable renewal date should be reported, got %q", res.Errors[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleServiceCreateValidates(t *testing.T) {
	svc := VehicleService{}
	if _, err := svc.Create(models.VehiclePayload{LicensePlate: "  "}); !domain.IsValidation(err) {
		t.Fatalf("blank plate: got %v", err)
	}
	if _, err := svc.Create(models.VehiclePayload{LicensePlate: "B 1 AA", LicenseRenewalDate: "2025/01/01"}); !domain.IsValidation(err) {
		t.Fatalf("bad date: got %v", err)
	}
}

func TestVehicleServiceCreateGeneratesID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO vehicles").WillReturnResult(sqlmock.NewResult(1, 1))

	rec, err := VehicleService{Repo: repositories.VehicleRepository{DB: db}}.Create(models.VehiclePayload{LicensePlate: "B  7   GG"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !strings.HasPrefix(rec.VehicleID, "V-") || len(rec.VehicleID) != 10 {
		t.Fatalf("generated id = %q", rec.VehicleID)
	}
	if rec.LicensePlate != "B 7 GG" {
		t.Fatalf("plate not normalized: %q", rec.LicensePlate)
	}
}
