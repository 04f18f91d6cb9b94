package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "fleetadmin/internal/config"
	intdb "fleetadmin/internal/db"
	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
)

const driverColumns = `
	id,
	COALESCE(name,''),
	COALESCE(license_number,''),
	COALESCE(DATE_FORMAT(license_expiry, '%Y-%m-%d'),''),
	COALESCE(vehicle_id,''),
	COALESCE(phone,''),
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),'')
`

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns drivers, newest first, optionally only the one assigned to vehicleID.
func (r DriverRepository) List(vehicleID string) ([]models.Driver, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "drivers") {
		return []models.Driver{}, nil
	}

	query := `SELECT ` + driverColumns + ` FROM drivers`
	args := []any{}
	if vehicleID = strings.TrimSpace(vehicleID); vehicleID != "" {
		query += ` WHERE vehicle_id = ?`
		args = append(args, vehicleID)
	}
	query += ` ORDER BY id DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DriverRepository) GetByID(id int64) (models.Driver, error) {
	row := r.db().QueryRow(`SELECT `+driverColumns+` FROM drivers WHERE id = ?`, id)
	d, err := scanDriver(row)
	if errors.Is(err, sql.ErrNoRows) {
		return d, domain.NotFoundError{Resource: "driver", Err: err}
	}
	return d, err
}

// AssignedTo returns the id of the driver holding vehicleID, or 0.
func (r DriverRepository) AssignedTo(vehicleID string) (int64, error) {
	var id int64
	err := r.db().QueryRow(`SELECT id FROM drivers WHERE vehicle_id = ? LIMIT 1`, vehicleID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return id, err
}

func (r DriverRepository) Create(p models.DriverPayload) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO drivers (name, license_number, license_expiry, vehicle_id, phone)
		VALUES (?, ?, ?, ?, ?)
	`, driverArgs(p)...)
	if err != nil {
		return 0, mapDriverWriteErr(err)
	}
	return res.LastInsertId()
}

func (r DriverRepository) Update(id int64, p models.DriverPayload) error {
	args := append(driverArgs(p), id)
	res, err := r.db().Exec(`
		UPDATE drivers
		SET name = ?, license_number = ?, license_expiry = ?, vehicle_id = ?, phone = ?
		WHERE id = ?
	`, args...)
	if err != nil {
		return mapDriverWriteErr(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}

func (r DriverRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM drivers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}

func driverArgs(p models.DriverPayload) []any {
	return []any{
		strings.TrimSpace(p.Name),
		strings.TrimSpace(p.LicenseNumber),
		strings.TrimSpace(p.LicenseExpiry),
		intdb.NullIfEmpty(strings.TrimSpace(p.VehicleID)),
		intdb.NullIfEmpty(strings.TrimSpace(p.Phone)),
	}
}

func scanDriver(s rowScanner) (models.Driver, error) {
	var d models.Driver
	err := s.Scan(&d.ID, &d.Name, &d.LicenseNumber, &d.LicenseExpiry, &d.VehicleID, &d.Phone, &d.CreatedAt)
	return d, err
}

func mapDriverWriteErr(err error) error {
	if isDuplicateEntry(err) {
		return domain.ConflictError{Resource: "driver", Msg: "nomor SIM sudah terdaftar", Err: err}
	}
	return err
}
