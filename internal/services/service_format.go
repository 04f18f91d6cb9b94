package services

import (
	"fmt"
	"math"
	"strings"

	"fleetadmin/internal/domain/models"
)

var serviceKindLabels = map[models.ServiceKind]string{
	models.ServiceMaintenance: "Routine Maintenance",
	models.ServiceTires:       "Tire Change",
	models.ServiceLicense:     "License Renewal",
}

// ServiceKindLabel is the human label of a kind; unknown kinds print as-is.
func ServiceKindLabel(kind models.ServiceKind) string {
	if l, ok := serviceKindLabels[kind]; ok {
		return l
	}
	return string(kind)
}

// FormatRemaining renders a remaining value for a kind. A nil value prints "N/A".
func FormatRemaining(kind models.ServiceKind, remaining *float64) models.RemainingText {
	if remaining == nil || math.IsNaN(*remaining) {
		return models.RemainingText{Text: "N/A"}
	}
	v := *remaining
	if v < 0 {
		return models.RemainingText{
			Text:    fmt.Sprintf("Overdue by %s %s", formatMagnitude(kind, -v), remainingUnit(kind)),
			Overdue: true,
		}
	}
	return models.RemainingText{Text: fmt.Sprintf("%s %s", formatMagnitude(kind, v), remainingUnit(kind))}
}

// FormatEntryRemaining is FormatRemaining for a built entry.
func FormatEntryRemaining(e models.ServiceEntry) models.RemainingText {
	r := e.Remaining
	return FormatRemaining(e.Kind, &r)
}

func remainingUnit(kind models.ServiceKind) string {
	if kind == models.ServiceLicense {
		return "Days"
	}
	return "Km"
}

var columnHeaders = map[string]string{
	models.ColumnVehicle:      "Vehicle",
	models.ColumnServiceType:  "Service Type",
	models.ColumnExpectedDate: "Expected Date",
	models.ColumnStatus:       "Status",
	models.ColumnRemaining:    "Remaining",
}

// ColumnHeader is the export header of a column. The table shows
// "Remaining Distance" for the remaining column.
func ColumnHeader(name string, table bool) string {
	if table && name == models.ColumnRemaining {
		return "Remaining Distance"
	}
	return columnHeaders[name]
}

// ServiceCell is one rendered table cell.
type ServiceCell struct {
	Column  string `json:"column"`
	Text    string `json:"text"`
	Class   string `json:"class,omitempty"`
	Icon    string `json:"icon,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
}

// ServiceRow is a table row; VehicleID backs the always-present actions column.
type ServiceRow struct {
	VehicleID string        `json:"vehicleId"`
	RowClass  string        `json:"rowClass"`
	Cells     []ServiceCell `json:"cells"`
}

// BuildServiceRows renders entries into table rows holding only the visible columns.
func BuildServiceRows(entries []models.ServiceEntry, cols models.ColumnVisibility) []ServiceRow {
	visible := cols.Visible()
	rows := make([]ServiceRow, 0, len(entries))
	for _, e := range entries {
		row := ServiceRow{
			VehicleID: e.VehicleID,
			RowClass:  strings.TrimSpace(fmt.Sprintf("%s-service %s-row", e.Kind, e.Status.Class)),
			Cells:     make([]ServiceCell, 0, len(visible)),
		}
		for _, col := range visible {
			row.Cells = append(row.Cells, tableCell(e, col))
		}
		rows = append(rows, row)
	}
	return rows
}

func tableCell(e models.ServiceEntry, col string) ServiceCell {
	cell := ServiceCell{Column: col}
	switch col {
	case models.ColumnVehicle:
		cell.Text = e.DisplayLabel
	case models.ColumnServiceType:
		cell.Text = ServiceKindLabel(e.Kind)
	case models.ColumnExpectedDate:
		cell.Text = e.ExpectedDate
	case models.ColumnStatus:
		cell.Text = e.Status.Text
		cell.Class = "status-indicator " + e.Status.Class
		cell.Icon = e.Status.Icon
		cell.Tooltip = e.Status.Tooltip
	case models.ColumnRemaining:
		rt := FormatEntryRemaining(e)
		cell.Text = rt.Text
		if rt.Overdue {
			cell.Class = "overdue-value"
		}
	}
	return cell
}

// BuildExportRows renders entries as plain values for spreadsheet export. The first
// row is the header; columns follow the same visibility config as the table.
func BuildExportRows(entries []models.ServiceEntry, cols models.ColumnVisibility) [][]string {
	visible := cols.Visible()
	header := make([]string, 0, len(visible))
	for _, col := range visible {
		header = append(header, ColumnHeader(col, false))
	}
	out := make([][]string, 0, len(entries)+1)
	out = append(out, header)
	for _, e := range entries {
		row := make([]string, 0, len(visible))
		for _, col := range visible {
			row = append(row, exportValue(e, col))
		}
		out = append(out, row)
	}
	return out
}

func exportValue(e models.ServiceEntry, col string) string {
	switch col {
	case models.ColumnVehicle:
		return orNA(e.DisplayLabel)
	case models.ColumnServiceType:
		return ServiceKindLabel(e.Kind)
	case models.ColumnExpectedDate:
		return orNA(e.ExpectedDate)
	case models.ColumnStatus:
		return e.Status.Text
	case models.ColumnRemaining:
		return FormatEntryRemaining(e).Text
	}
	return ""
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
