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

type MaintenanceRepository struct {
	DB *sql.DB
}

func (r MaintenanceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns maintenance records, newest first, optionally for one vehicle.
func (r MaintenanceRepository) List(vehicleID string) ([]models.MaintenanceRecord, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "maintenance_records") {
		return []models.MaintenanceRecord{}, nil
	}

	query := `
		SELECT id, vehicle_id, DATE_FORMAT(maintenance_date, '%Y-%m-%d'), maintenance_type,
			next_kilometers, COALESCE(notes,'')
		FROM maintenance_records`
	args := []any{}
	if vehicleID = strings.TrimSpace(vehicleID); vehicleID != "" {
		query += ` WHERE vehicle_id = ?`
		args = append(args, vehicleID)
	}
	query += ` ORDER BY maintenance_date DESC, id DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.MaintenanceRecord{}
	for rows.Next() {
		rec, err := scanMaintenance(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r MaintenanceRepository) GetByID(id int64) (models.MaintenanceRecord, error) {
	row := r.db().QueryRow(`
		SELECT id, vehicle_id, DATE_FORMAT(maintenance_date, '%Y-%m-%d'), maintenance_type,
			next_kilometers, COALESCE(notes,'')
		FROM maintenance_records
		WHERE id = ?
	`, id)
	rec, err := scanMaintenance(row)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, domain.NotFoundError{Resource: "maintenance record", Err: err}
	}
	return rec, err
}

func (r MaintenanceRepository) Create(p models.MaintenancePayload) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO maintenance_records (vehicle_id, maintenance_date, maintenance_type, next_kilometers, notes)
		VALUES (?, ?, ?, ?, ?)
	`, strings.TrimSpace(p.VehicleID), strings.TrimSpace(p.Date), strings.TrimSpace(p.Type), p.NextKilometers, intdb.NullIfEmpty(strings.TrimSpace(p.Notes)))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r MaintenanceRepository) Update(id int64, p models.MaintenancePayload) error {
	res, err := r.db().Exec(`
		UPDATE maintenance_records
		SET vehicle_id = ?, maintenance_date = ?, maintenance_type = ?, next_kilometers = ?, notes = ?
		WHERE id = ?
	`, strings.TrimSpace(p.VehicleID), strings.TrimSpace(p.Date), strings.TrimSpace(p.Type), p.NextKilometers, intdb.NullIfEmpty(strings.TrimSpace(p.Notes)), id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "maintenance record"}
	}
	return nil
}

func (r MaintenanceRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM maintenance_records WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "maintenance record"}
	}
	return nil
}

func scanMaintenance(s rowScanner) (models.MaintenanceRecord, error) {
	var (
		rec  models.MaintenanceRecord
		next sql.NullInt64
	)
	if err := s.Scan(&rec.ID, &rec.VehicleID, &rec.Date, &rec.Type, &next, &rec.Notes); err != nil {
		return rec, err
	}
	if next.Valid {
		n := next.Int64
		rec.NextKilometers = &n
	}
	return rec, nil
}
