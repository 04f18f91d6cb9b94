package services

import (
	"math"

	"fleetadmin/internal/domain/models"
)

// ServiceStats summarizes the unfiltered service list for the dashboard cards.
type ServiceStats struct {
	Maintenance   int `json:"maintenance"`
	Tires         int `json:"tires"`
	License       int `json:"license"`
	Critical      int `json:"critical"`
	TotalVehicles int `json:"totalVehicles"`

	MaintenancePercentage int `json:"maintenancePercentage"`
	TiresPercentage       int `json:"tiresPercentage"`
	LicensePercentage     int `json:"licensePercentage"`
	CriticalPercentage    int `json:"criticalPercentage"`
}

// ComputeServiceStats counts required/upcoming entries per kind and required ones
// as critical. Percentages are relative to totalVehicles.
func ComputeServiceStats(entries []models.ServiceEntry, totalVehicles int) ServiceStats {
	st := ServiceStats{TotalVehicles: totalVehicles}
	for _, e := range entries {
		cat := e.Status.Category
		if cat != models.StatusRequired && cat != models.StatusUpcoming {
			continue
		}
		switch e.Kind {
		case models.ServiceMaintenance:
			st.Maintenance++
		case models.ServiceTires:
			st.Tires++
		case models.ServiceLicense:
			st.License++
		default:
			continue
		}
		if cat == models.StatusRequired {
			st.Critical++
		}
	}
	st.MaintenancePercentage = percentOf(st.Maintenance, totalVehicles)
	st.TiresPercentage = percentOf(st.Tires, totalVehicles)
	st.LicensePercentage = percentOf(st.License, totalVehicles)
	st.CriticalPercentage = percentOf(st.Critical, totalVehicles)
	return st
}

func percentOf(n, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(n)/float64(total)*100 + 0.5))
}
