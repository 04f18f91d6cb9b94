package services

import (
	"fmt"
	"io"
	"strings"

	"fleetadmin/internal/domain"
	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/repositories"
	"fleetadmin/internal/utils"

	"github.com/google/uuid"
)

// VehicleService validates vehicle writes before they reach the repository.
type VehicleService struct {
	Repo      repositories.VehicleRepository
	RequestID string
}

// ImportResult reports what a sheet import did.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

func (s VehicleService) Create(p models.VehiclePayload) (models.VehicleRecord, error) {
	rec, err := normalizeVehicle(p.ToRecord())
	if err != nil {
		return rec, err
	}
	if rec.VehicleID == "" {
		rec.VehicleID = NewVehicleID()
	}
	if err := s.Repo.Create(rec); err != nil {
		return rec, err
	}
	utils.LogEvent(s.RequestID, "vehicles", "create", "vehicle_id="+rec.VehicleID)
	return rec, nil
}

func (s VehicleService) Update(id string, p models.VehiclePayload) (models.VehicleRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.VehicleRecord{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	rec, err := normalizeVehicle(p.ToRecord())
	if err != nil {
		return rec, err
	}
	rec.VehicleID = id
	if err := s.Repo.Update(id, rec); err != nil {
		return rec, err
	}
	utils.LogEvent(s.RequestID, "vehicles", "update", "vehicle_id="+id)
	return rec, nil
}

// Import upserts every row of an XLSX vehicles sheet. Renewal dates are converted
// to YYYY-MM-DD; rows that fail, including unreadable dates, are reported and
// skipped while the rest are still written.
func (s VehicleService) Import(r io.Reader) (ImportResult, error) {
	records, err := repositories.ReadVehicleSheet(r)
	if err != nil {
		return ImportResult{}, err
	}

	res := ImportResult{}
	for _, raw := range records {
		date, ok := repositories.ParseSheetDate(raw.LicenseRenewalDate)
		if !ok {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("%s: License Renewal Date %q tidak dikenali", raw.VehicleID, raw.LicenseRenewalDate))
			continue
		}
		raw.LicenseRenewalDate = date
		rec, err := normalizeVehicle(raw)
		if err == nil {
			err = s.Repo.Upsert(rec)
		}
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", raw.VehicleID, err))
			continue
		}
		res.Imported++
	}
	utils.LogEvent(s.RequestID, "vehicles", "import", fmt.Sprintf("imported=%d skipped=%d", res.Imported, res.Skipped))
	return res, nil
}

// NewVehicleID returns a short unique vehicle id.
func NewVehicleID() string {
	return "V-" + strings.ToUpper(uuid.NewString()[:8])
}

func normalizeVehicle(v models.VehicleRecord) (models.VehicleRecord, error) {
	v.VehicleID = strings.TrimSpace(v.VehicleID)
	v.LicensePlate = utils.NormalizeSpace(v.LicensePlate)
	if v.LicensePlate == "" {
		return v, domain.ValidationError{Field: "licensePlate", Msg: "licensePlate wajib diisi"}
	}
	v.LicenseRenewalDate = strings.TrimSpace(v.LicenseRenewalDate)
	if v.LicenseRenewalDate != "" && !utils.IsDate(v.LicenseRenewalDate) {
		return v, domain.ValidationError{Field: "licenseRenewalDate", Msg: "format licenseRenewalDate harus YYYY-MM-DD"}
	}
	return v, nil
}
