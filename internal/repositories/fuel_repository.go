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

const fuelColumns = `
	id, vehicle_id, DATE_FORMAT(fuel_date, '%Y-%m-%d'),
	amount, distance, consumption, COALESCE(cost, 0)
`

type FuelRepository struct {
	DB *sql.DB
}

func (r FuelRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns fuel records, newest first, optionally for one vehicle.
func (r FuelRepository) List(vehicleID string) ([]models.FuelRecord, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "fuel_records") {
		return []models.FuelRecord{}, nil
	}

	query := `SELECT ` + fuelColumns + ` FROM fuel_records`
	args := []any{}
	if vehicleID = strings.TrimSpace(vehicleID); vehicleID != "" {
		query += ` WHERE vehicle_id = ?`
		args = append(args, vehicleID)
	}
	query += ` ORDER BY fuel_date DESC, id DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FuelRecord{}
	for rows.Next() {
		rec, err := scanFuel(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r FuelRepository) GetByID(id int64) (models.FuelRecord, error) {
	rec, err := scanFuel(r.db().QueryRow(`SELECT `+fuelColumns+` FROM fuel_records WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return rec, domain.NotFoundError{Resource: "fuel record", Err: err}
	}
	return rec, err
}

func (r FuelRepository) Create(rec models.FuelRecord) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO fuel_records (vehicle_id, fuel_date, amount, distance, consumption, cost)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.VehicleID, rec.Date, rec.Amount, rec.Distance, rec.Consumption, rec.Cost)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r FuelRepository) Update(rec models.FuelRecord) error {
	res, err := r.db().Exec(`
		UPDATE fuel_records
		SET vehicle_id = ?, fuel_date = ?, amount = ?, distance = ?, consumption = ?, cost = ?
		WHERE id = ?
	`, rec.VehicleID, rec.Date, rec.Amount, rec.Distance, rec.Consumption, rec.Cost, rec.ID)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "fuel record"}
	}
	return nil
}

func (r FuelRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM fuel_records WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "fuel record"}
	}
	return nil
}

func scanFuel(s rowScanner) (models.FuelRecord, error) {
	var rec models.FuelRecord
	err := s.Scan(&rec.ID, &rec.VehicleID, &rec.Date, &rec.Amount, &rec.Distance, &rec.Consumption, &rec.Cost)
	return rec, err
}
