package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/utils"
)

// LicenseWarningDays is how close to expiry a driver license is flagged.
const LicenseWarningDays = 30

type DriverService struct {
	Repo        repositories.DriverRepository
	VehicleRepo repositories.VehicleRepository
	Now         func() time.Time
	RequestID   string
}

// List returns drivers with their license state relative to today.
func (s DriverService) List(vehicleID string) ([]models.Driver, error) {
	list, err := s.Repo.List(vehicleID)
	if err != nil {
		return nil, err
	}
	today := s.today()
	for i := range list {
		withLicenseState(&list[i], today)
	}
	return list, nil
}

func (s DriverService) Get(id int64) (models.Driver, error) {
	d, err := s.Repo.GetByID(id)
	if err != nil {
		return d, err
	}
	withLicenseState(&d, s.today())
	return d, nil
}

// Create stores a driver. An assigned vehicle must exist and have no other driver.
func (s DriverService) Create(p models.DriverPayload) (models.Driver, error) {
	p, err := s.checkDriver(0, p)
	if err != nil {
		return models.Driver{}, err
	}
	id, err := s.Repo.Create(p)
	if err != nil {
		return models.Driver{}, err
	}
	utils.LogEvent(s.RequestID, "drivers", "create", fmt.Sprintf("id=%d vehicle_id=%s", id, p.VehicleID))
	return s.fromPayload(id, p), nil
}

func (s DriverService) Update(id int64, p models.DriverPayload) (models.Driver, error) {
	if id <= 0 {
		return models.Driver{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	p, err := s.checkDriver(id, p)
	if err != nil {
		return models.Driver{}, err
	}
	if err := s.Repo.Update(id, p); err != nil {
		return models.Driver{}, err
	}
	utils.LogEvent(s.RequestID, "drivers", "update", fmt.Sprintf("id=%d vehicle_id=%s", id, p.VehicleID))
	return s.fromPayload(id, p), nil
}

func (s DriverService) checkDriver(id int64, p models.DriverPayload) (models.DriverPayload, error) {
	p.Name = utils.NormalizeSpace(p.Name)
	p.LicenseNumber = strings.ToUpper(strings.TrimSpace(p.LicenseNumber))
	p.LicenseExpiry = strings.TrimSpace(p.LicenseExpiry)
	p.VehicleID = strings.TrimSpace(p.VehicleID)
	p.Phone = strings.TrimSpace(p.Phone)

	switch {
	case p.Name == "":
		return p, domain.ValidationError{Field: "name", Msg: "name wajib diisi"}
	case p.LicenseNumber == "":
		return p, domain.ValidationError{Field: "licenseNumber", Msg: "licenseNumber wajib diisi"}
	case !utils.IsDate(p.LicenseExpiry):
		return p, domain.ValidationError{Field: "licenseExpiry", Msg: "format licenseExpiry harus YYYY-MM-DD"}
	}
	if p.VehicleID == "" {
		return p, nil
	}

	if _, err := s.VehicleRepo.GetByID(p.VehicleID); err != nil {
		return p, err
	}
	holder, err := s.Repo.AssignedTo(p.VehicleID)
	if err != nil {
		return p, err
	}
	if holder != 0 && holder != id {
		return p, domain.ConflictError{Resource: "driver", Msg: "kendaraan sudah memiliki driver"}
	}
	return p, nil
}

func (s DriverService) fromPayload(id int64, p models.DriverPayload) models.Driver {
	d := models.Driver{
		ID:            id,
		Name:          p.Name,
		LicenseNumber: p.LicenseNumber,
		LicenseExpiry: p.LicenseExpiry,
		VehicleID:     p.VehicleID,
		Phone:         p.Phone,
	}
	withLicenseState(&d, s.today())
	return d
}

func (s DriverService) today() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// LicenseState classifies a license expiry date against today. Unreadable dates
// are "unknown" and carry no day count.
func LicenseState(expiry string, today time.Time) (string, *int) {
	exp, err := utils.ParseDate(expiry)
	if err != nil {
		return "unknown", nil
	}
	t := today.In(time.Local)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	days := int(math.Round(exp.Sub(start).Hours() / 24))

	switch {
	case days < 0:
		return models.LicenseExpired, &days
	case days < LicenseWarningDays:
		return models.LicenseExpiring, &days
	default:
		return models.LicenseValid, &days
	}
}

func withLicenseState(d *models.Driver, today time.Time) {
	d.LicenseState, d.DaysUntilExpiry = LicenseState(d.LicenseExpiry, today)
}
