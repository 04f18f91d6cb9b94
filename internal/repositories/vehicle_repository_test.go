package repositories

import (
	"testing"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

var vehicleRowColumns = []string{
	"vehicle_id", "license_plate", "vehicle_type", "model", "vehicle_status", "driver_name",
	"current_location", "current_km", "km_to_next_maintenance", "km_left_for_tire_change",
	"days_to_renew_license", "license_renewal_date", "last_maintenance_date",
}

func TestVehicleRepositoryListSearchAndPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM vehicles WHERE \\(vehicle_id LIKE \\? OR license_plate LIKE \\?\\) ORDER BY vehicle_id ASC LIMIT \\? OFFSET \\?").
		WithArgs("%B 1%", "%B 1%", 10, 10).
		WillReturnRows(sqlmock.NewRows(vehicleRowColumns).
			AddRow("V1", "B 1 AA", "Van", "HiAce", "Active", "Budi", "Depot", "120,000", "-200", "6000", "3", "2025-01-04", "").
			AddRow("V2", "B 10 CC", "", "", "", "", "", "", "", "", "", "", ""))

	list, err := VehicleRepository{DB: db}.List(" B 1 ", domain.Pagination{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 vehicles, got %d", len(list))
	}
	if list[0].KmToNextMaintenance != "-200" || list[0].LicenseRenewalDate != "2025-01-04" {
		t.Fatalf("unexpected first vehicle %+v", list[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM vehicles WHERE vehicle_id = \\?").WithArgs("V404").
		WillReturnRows(sqlmock.NewRows(vehicleRowColumns))

	if _, err := (VehicleRepository{DB: db}).GetByID("V404"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestVehicleRepositoryCreateDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO vehicles").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'V1' for key 'PRIMARY'"})

	err = VehicleRepository{DB: db}.Create(models.VehicleRecord{VehicleID: "V1", LicensePlate: "B 1 AA"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestVehicleRepositoryUpdateMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE vehicles").WillReturnResult(sqlmock.NewResult(0, 0))

	err = VehicleRepository{DB: db}.Update("V9", models.VehicleRecord{LicensePlate: "B 9 ZZ"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestVehicleRepositoryTouchLastMaintenance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.columns").WithArgs("vehicles", "last_maintenance_date").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("last_maintenance_date"))
	mock.ExpectExec("UPDATE vehicles SET last_maintenance_date = \\?").
		WithArgs("2025-01-10", "V1", "2025-01-10").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := (VehicleRepository{DB: db}).TouchLastMaintenance("V1", "2025-01-10"); err != nil {
		t.Fatalf("TouchLastMaintenance returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleRepositoryTouchSkipsWithoutColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.columns").WithArgs("vehicles", "last_maintenance_date").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

	if err := (VehicleRepository{DB: db}).TouchLastMaintenance("V1", "2025-01-10"); err != nil {
		t.Fatalf("TouchLastMaintenance returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
