package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "fleetadmin/internal/config"
	intdb "fleetadmin/internal/db"
	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

const vehicleColumns = `
	vehicle_id,
	COALESCE(license_plate,''),
	COALESCE(vehicle_type,''),
	COALESCE(model,''),
	COALESCE(vehicle_status,''),
	COALESCE(driver_name,''),
	COALESCE(current_location,''),
	COALESCE(current_km,''),
	COALESCE(km_to_next_maintenance,''),
	COALESCE(km_left_for_tire_change,''),
	COALESCE(days_to_renew_license,''),
	COALESCE(DATE_FORMAT(license_renewal_date, '%Y-%m-%d'),''),
	COALESCE(DATE_FORMAT(last_maintenance_date, '%Y-%m-%d'),'')
`

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListVehicleRecords returns every vehicle; it is the snapshot the service engine works on.
func (r VehicleRepository) ListVehicleRecords() ([]models.VehicleRecord, error) {
	return r.List("", domain.Pagination{})
}

// List filters by vehicle id or plate when q is set and pages when p is enabled.
func (r VehicleRepository) List(q string, p domain.Pagination) ([]models.VehicleRecord, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database belum terhubung"}
	}

	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	args := []any{}
	if q = strings.TrimSpace(q); q != "" {
		query += ` WHERE (vehicle_id LIKE ? OR license_plate LIKE ?)`
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY vehicle_id ASC`
	if p.Enabled() {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, p.PageSize, p.Offset())
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.VehicleRecord{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VehicleRepository) GetByID(id string) (models.VehicleRecord, error) {
	row := r.db().QueryRow(`SELECT `+vehicleColumns+` FROM vehicles WHERE vehicle_id = ?`, id)
	v, err := scanVehicle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return v, domain.NotFoundError{Resource: "vehicle", Err: err}
	}
	return v, err
}

func (r VehicleRepository) Create(v models.VehicleRecord) error {
	_, err := r.db().Exec(`
		INSERT INTO vehicles (
			vehicle_id, license_plate, vehicle_type, model, vehicle_status, driver_name,
			current_location, current_km, km_to_next_maintenance, km_left_for_tire_change,
			days_to_renew_license, license_renewal_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, vehicleArgs(v)...)
	return mapVehicleWriteErr(err)
}

func (r VehicleRepository) Update(id string, v models.VehicleRecord) error {
	args := vehicleArgs(v)[1:]
	args = append(args, id)
	res, err := r.db().Exec(`
		UPDATE vehicles
		SET license_plate = ?, vehicle_type = ?, model = ?, vehicle_status = ?, driver_name = ?,
			current_location = ?, current_km = ?, km_to_next_maintenance = ?, km_left_for_tire_change = ?,
			days_to_renew_license = ?, license_renewal_date = ?
		WHERE vehicle_id = ?
	`, args...)
	if err != nil {
		return mapVehicleWriteErr(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}

// Upsert inserts or replaces a vehicle by id; used by sheet imports.
func (r VehicleRepository) Upsert(v models.VehicleRecord) error {
	_, err := r.db().Exec(`
		INSERT INTO vehicles (
			vehicle_id, license_plate, vehicle_type, model, vehicle_status, driver_name,
			current_location, current_km, km_to_next_maintenance, km_left_for_tire_change,
			days_to_renew_license, license_renewal_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			license_plate = VALUES(license_plate),
			vehicle_type = VALUES(vehicle_type),
			model = VALUES(model),
			vehicle_status = VALUES(vehicle_status),
			driver_name = VALUES(driver_name),
			current_location = VALUES(current_location),
			current_km = VALUES(current_km),
			km_to_next_maintenance = VALUES(km_to_next_maintenance),
			km_left_for_tire_change = VALUES(km_left_for_tire_change),
			days_to_renew_license = VALUES(days_to_renew_license),
			license_renewal_date = VALUES(license_renewal_date)
	`, vehicleArgs(v)...)
	return mapVehicleWriteErr(err)
}

func (r VehicleRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM vehicles WHERE vehicle_id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}

// TouchLastMaintenance records the latest maintenance date on the vehicle when
// the schema has the column.
func (r VehicleRepository) TouchLastMaintenance(id, date string) error {
	db := r.db()
	if db == nil || !intdb.HasColumn(db, "vehicles", "last_maintenance_date") {
		return nil
	}
	_, err := db.Exec(`
		UPDATE vehicles
		SET last_maintenance_date = ?
		WHERE vehicle_id = ? AND (last_maintenance_date IS NULL OR last_maintenance_date < ?)
	`, date, id, date)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(s rowScanner) (models.VehicleRecord, error) {
	var v models.VehicleRecord
	err := s.Scan(
		&v.VehicleID,
		&v.LicensePlate,
		&v.VehicleType,
		&v.Model,
		&v.VehicleStatus,
		&v.DriverName,
		&v.CurrentLocation,
		&v.CurrentKm,
		&v.KmToNextMaintenance,
		&v.KmLeftForTireChange,
		&v.DaysToRenewLicense,
		&v.LicenseRenewalDate,
		&v.LastMaintenanceDate,
	)
	return v, err
}

func vehicleArgs(v models.VehicleRecord) []any {
	return []any{
		strings.TrimSpace(v.VehicleID),
		strings.TrimSpace(v.LicensePlate),
		intdb.NullIfEmpty(strings.TrimSpace(v.VehicleType)),
		intdb.NullIfEmpty(strings.TrimSpace(v.Model)),
		intdb.NullIfEmpty(strings.TrimSpace(v.VehicleStatus)),
		intdb.NullIfEmpty(strings.TrimSpace(v.DriverName)),
		intdb.NullIfEmpty(strings.TrimSpace(v.CurrentLocation)),
		intdb.NullIfEmpty(strings.TrimSpace(v.CurrentKm)),
		intdb.NullIfEmpty(strings.TrimSpace(v.KmToNextMaintenance)),
		intdb.NullIfEmpty(strings.TrimSpace(v.KmLeftForTireChange)),
		intdb.NullIfEmpty(strings.TrimSpace(v.DaysToRenewLicense)),
		intdb.NullIfEmpty(strings.TrimSpace(v.LicenseRenewalDate)),
	}
}

func mapVehicleWriteErr(err error) error {
	if isDuplicateEntry(err) {
		return domain.ConflictError{Resource: "vehicle", Msg: "Vehicle ID atau License Plate sudah terdaftar (duplikat).", Err: err}
	}
	return err
}

func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
