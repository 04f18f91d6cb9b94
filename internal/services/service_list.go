package services

import (
	"strings"
	"time"

	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/utils"
)

// DailyUsageKm is the assumed distance a vehicle covers per day when projecting
// maintenance and tire dates from remaining kilometres.
const DailyUsageKm = 50

// BuildServiceList derives one entry per service kind for every vehicle that has an id.
// Filters are not applied here; today anchors projected dates.
func BuildServiceList(vehicles []models.VehicleRecord, today time.Time) []models.ServiceEntry {
	out := make([]models.ServiceEntry, 0, len(vehicles)*len(models.ServiceKinds))
	for _, v := range vehicles {
		id := strings.TrimSpace(v.VehicleID)
		if id == "" {
			continue
		}
		label := utils.FirstNonEmpty(v.LicensePlate, id)
		for _, kind := range models.ServiceKinds {
			remaining := remainingFor(v, kind)
			out = append(out, models.ServiceEntry{
				VehicleID:    id,
				DisplayLabel: label,
				Kind:         kind,
				Remaining:    remaining,
				ExpectedDate: expectedDate(v, remaining, kind, today),
				Status:       ClassifyStatus(remaining, kind),
			})
		}
	}
	return out
}

func remainingFor(v models.VehicleRecord, kind models.ServiceKind) float64 {
	switch kind {
	case models.ServiceMaintenance:
		return utils.ParseNumber(v.KmToNextMaintenance)
	case models.ServiceTires:
		return utils.ParseNumber(v.KmLeftForTireChange)
	case models.ServiceLicense:
		return float64(utils.ParseWholeNumber(v.DaysToRenewLicense))
	}
	return 0
}

func expectedDate(v models.VehicleRecord, remaining float64, kind models.ServiceKind, today time.Time) string {
	if kind == models.ServiceLicense {
		if d := strings.TrimSpace(v.LicenseRenewalDate); d != "" {
			return d
		}
		return utils.FormatDate(utils.AddDays(today, int(remaining)))
	}
	days := utils.RoundHalfUp(remaining / DailyUsageKm)
	return utils.FormatDate(utils.AddDays(today, int(days)))
}
