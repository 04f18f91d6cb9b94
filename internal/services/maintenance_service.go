package services

import (
	"fmt"
	"strings"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/utils"
)

type MaintenanceService struct {
	Repo        repositories.MaintenanceRepository
	VehicleRepo repositories.VehicleRepository
	RequestID   string
}

// Record stores a maintenance entry and moves the vehicle's last maintenance date forward.
func (s MaintenanceService) Record(p models.MaintenancePayload) (int64, error) {
	if err := validateMaintenance(p); err != nil {
		return 0, err
	}
	if _, err := s.VehicleRepo.GetByID(strings.TrimSpace(p.VehicleID)); err != nil {
		return 0, err
	}
	id, err := s.Repo.Create(p)
	if err != nil {
		return 0, err
	}
	if err := s.VehicleRepo.TouchLastMaintenance(strings.TrimSpace(p.VehicleID), strings.TrimSpace(p.Date)); err != nil {
		utils.LogFailure(s.RequestID, "maintenance", "touch_vehicle", err)
	}
	utils.LogEvent(s.RequestID, "maintenance", "create", fmt.Sprintf("id=%d vehicle_id=%s", id, p.VehicleID))
	return id, nil
}

func (s MaintenanceService) Update(id int64, p models.MaintenancePayload) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if err := validateMaintenance(p); err != nil {
		return err
	}
	if err := s.Repo.Update(id, p); err != nil {
		return err
	}
	if err := s.VehicleRepo.TouchLastMaintenance(strings.TrimSpace(p.VehicleID), strings.TrimSpace(p.Date)); err != nil {
		utils.LogFailure(s.RequestID, "maintenance", "touch_vehicle", err)
	}
	utils.LogEvent(s.RequestID, "maintenance", "update", fmt.Sprintf("id=%d", id))
	return nil
}

func validateMaintenance(p models.MaintenancePayload) error {
	if strings.TrimSpace(p.VehicleID) == "" {
		return domain.ValidationError{Field: "vehicle", Msg: "vehicle wajib diisi"}
	}
	if !utils.IsDate(p.Date) {
		return domain.ValidationError{Field: "date", Msg: "format date harus YYYY-MM-DD"}
	}
	if strings.TrimSpace(p.Type) == "" {
		return domain.ValidationError{Field: "type", Msg: "type wajib diisi"}
	}
	if p.NextKilometers != nil && *p.NextKilometers < 0 {
		return domain.ValidationError{Field: "nextKilometers", Msg: "nextKilometers tidak boleh negatif"}
	}
	return nil
}
