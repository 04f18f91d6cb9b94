package services

import (
	"fmt"
	"strings"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/utils"
)

type FuelService struct {
	Repo        repositories.FuelRepository
	VehicleRepo repositories.VehicleRepository
	RequestID   string
}

// Record stores a fuel entry with its consumption (distance / amount).
func (s FuelService) Record(p models.FuelPayload) (models.FuelRecord, error) {
	rec, err := fuelRecord(0, p)
	if err != nil {
		return rec, err
	}
	if _, err := s.VehicleRepo.GetByID(rec.VehicleID); err != nil {
		return rec, err
	}
	id, err := s.Repo.Create(rec)
	if err != nil {
		return rec, err
	}
	rec.ID = id
	utils.LogEvent(s.RequestID, "fuel", "create", fmt.Sprintf("id=%d vehicle_id=%s", id, rec.VehicleID))
	return rec, nil
}

func (s FuelService) Update(id int64, p models.FuelPayload) (models.FuelRecord, error) {
	if id <= 0 {
		return models.FuelRecord{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	rec, err := fuelRecord(id, p)
	if err != nil {
		return rec, err
	}
	if _, err := s.VehicleRepo.GetByID(rec.VehicleID); err != nil {
		return rec, err
	}
	if err := s.Repo.Update(rec); err != nil {
		return rec, err
	}
	utils.LogEvent(s.RequestID, "fuel", "update", fmt.Sprintf("id=%d", id))
	return rec, nil
}

func fuelRecord(id int64, p models.FuelPayload) (models.FuelRecord, error) {
	rec := models.FuelRecord{
		ID:        id,
		VehicleID: strings.TrimSpace(p.VehicleID),
		Date:      strings.TrimSpace(p.Date),
		Amount:    p.Amount,
		Distance:  p.Distance,
		Cost:      p.Cost,
	}
	switch {
	case rec.VehicleID == "":
		return rec, domain.ValidationError{Field: "vehicle", Msg: "vehicle wajib diisi"}
	case !utils.IsDate(rec.Date):
		return rec, domain.ValidationError{Field: "date", Msg: "format date harus YYYY-MM-DD"}
	case rec.Amount <= 0:
		return rec, domain.ValidationError{Field: "amount", Msg: "amount harus lebih dari 0"}
	case rec.Distance <= 0:
		return rec, domain.ValidationError{Field: "distance", Msg: "distance harus lebih dari 0"}
	case rec.Cost < 0:
		return rec, domain.ValidationError{Field: "cost", Msg: "cost tidak boleh negatif"}
	}
	rec.Consumption = rec.Distance / rec.Amount
	return rec, nil
}
