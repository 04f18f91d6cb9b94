package services

import (
	"fmt"
	"strconv"

	"fleetadmin/internal/domain/models"
	"fleetadmin/internal/utils"
)

const (
	colorCritical = "#ef4444"
	colorWarning  = "#f59e0b"
	colorGood     = "#22c55e"
	colorNeutral  = "#94a3b8"
)

type kindThresholds struct {
	critical float64
	warning  float64
	unit     string

	immediateText, immediateTooltip string
	requiredText, requiredTooltip   string
	upcomingText, upcomingTooltip   string
	goodText, goodTooltip           string
	overdueText, overdueTooltip     string
}

var statusThresholds = map[models.ServiceKind]kindThresholds{
	models.ServiceMaintenance: {
		critical:         1000,
		warning:          5000,
		unit:             "Km",
		immediateText:    "Immediate Maintenance Required",
		immediateTooltip: "Vehicle is overdue for maintenance",
		requiredText:     "Maintenance Required",
		requiredTooltip:  "Vehicle requires maintenance soon",
		upcomingText:     "Upcoming Maintenance",
		upcomingTooltip:  "Maintenance is needed within 5000 km",
		goodText:         "Maintenance Good",
		goodTooltip:      "Vehicle is well maintained",
		overdueText:      "Maintenance Overdue",
		overdueTooltip:   "Maintenance overdue by %s Km",
	},
	models.ServiceTires: {
		critical:         1000,
		warning:          5000,
		unit:             "Km",
		immediateText:    "Immediate Tire Change Required",
		immediateTooltip: "Vehicle is overdue for tire change",
		requiredText:     "Tire Change Required",
		requiredTooltip:  "Vehicle requires tire change soon",
		upcomingText:     "Upcoming Tire Change",
		upcomingTooltip:  "Tire change is needed within 5000 km",
		goodText:         "Tires Good",
		goodTooltip:      "Vehicle tires are in good condition",
		overdueText:      "Tire Change Overdue",
		overdueTooltip:   "Tire change overdue by %s Km",
	},
	models.ServiceLicense: {
		critical:         7,
		warning:          30,
		unit:             "Days",
		immediateText:    "License Renewal Overdue",
		immediateTooltip: "Vehicle license is expired",
		requiredText:     "License Renewal Required",
		requiredTooltip:  "Vehicle license expires within 7 days",
		upcomingText:     "Upcoming License Renewal",
		upcomingTooltip:  "Vehicle license expires within 30 days",
		goodText:         "License Valid",
		goodTooltip:      "Vehicle license is valid",
		overdueText:      "License Renewal Overdue",
		overdueTooltip:   "License renewal overdue by %s days",
	},
}

// ClassifyStatus maps a signed remaining value (km or days) of a service kind to
// its severity. The category is decided on max(remaining, 0); a negative raw value
// switches the wording to overdue and reports the deficit in the tooltip.
func ClassifyStatus(remaining float64, kind models.ServiceKind) models.StatusInfo {
	th, ok := statusThresholds[kind]
	if !ok {
		return models.StatusInfo{
			Category: models.StatusUnknown,
			Class:    "neutral",
			Icon:     "help-circle",
			Text:     "Unknown Status",
			Tooltip:  "Status information not available",
			Color:    colorNeutral,
		}
	}

	clamped := remaining
	if clamped < 0 {
		clamped = 0
	}

	var info models.StatusInfo
	switch {
	case clamped <= 0:
		info = models.StatusInfo{Category: models.StatusRequired, Class: "critical", Icon: "exclamation-triangle", Text: th.immediateText, Tooltip: th.immediateTooltip, Color: colorCritical}
	case clamped < th.critical:
		info = models.StatusInfo{Category: models.StatusRequired, Class: "critical", Icon: "exclamation-circle", Text: th.requiredText, Tooltip: th.requiredTooltip, Color: colorCritical}
	case clamped < th.warning:
		info = models.StatusInfo{Category: models.StatusUpcoming, Class: "warning", Icon: "exclamation", Text: th.upcomingText, Tooltip: th.upcomingTooltip, Color: colorWarning}
	default:
		info = models.StatusInfo{Category: models.StatusGood, Class: "good", Icon: "check-circle", Text: th.goodText, Tooltip: th.goodTooltip, Color: colorGood}
	}

	if remaining < 0 {
		info.Category = models.StatusRequired
		info.Class = "critical"
		info.Icon = "exclamation-triangle"
		info.Text = th.overdueText
		info.Tooltip = fmt.Sprintf(th.overdueTooltip, formatMagnitude(kind, -remaining))
		info.Overdue = true
	}
	return info
}

// formatMagnitude prints a non-negative quantity the way the table shows it:
// grouped for km, plain for days.
func formatMagnitude(kind models.ServiceKind, v float64) string {
	if kind == models.ServiceLicense {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return utils.FormatThousands(v)
}
